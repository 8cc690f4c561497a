package service

import (
	"time"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/logging"
)

// ExpireIdleBattles drops battles nobody touched for longer than the
// configured idle timeout. Unfinished ones are recorded as abandoned.
// It returns how many battles were dropped.
func (s *BattleService) ExpireIdleBattles(now time.Time) int {
	timeout := s.cfg.Battle.IdleTimeout
	if timeout <= 0 {
		return 0
	}

	s.mu.Lock()
	var idle []*session
	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := now.Sub(sess.lastActive) > timeout
		sess.mu.Unlock()
		if expired {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.mu.Lock()
		s.recordOutcome(sess, outcomeOf(sess.battle.Phase()))
		sess.mu.Unlock()
		logging.Info("battle expired due to inactivity", logging.Fields{
			constants.LogFieldBattleID: sess.id,
			constants.LogFieldPlayer:   sess.playerName,
		})
	}
	return len(idle)
}
