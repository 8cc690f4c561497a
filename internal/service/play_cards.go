package service

import (
	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/logging"
)

// NoTarget lets the engine aim at the first living enemy.
const NoTarget = -1

// PlayCards plays the selected cards in order. A single card goes through
// engine.PlayCard; larger selections are validated as a whole first.
func (s *BattleService) PlayCards(id string, cardIDs []string, target int) (*BattleView, error) {
	var opts []engine.PlayOption
	if target != NoTarget {
		opts = append(opts, engine.AtEnemy(target))
	}
	return s.withSession(id, func(sess *session) error {
		if len(cardIDs) == 1 {
			return sess.battle.PlayCard(cardIDs[0], opts...)
		}
		played, err := sess.battle.PlaySelection(cardIDs, opts...)
		if err != nil {
			return err
		}
		logging.Debug("selection played", logging.Fields{
			constants.LogFieldBattleID: id,
			constants.LogFieldCount:    played,
		})
		return nil
	})
}

// EndTurn commits the player's turn and resolves the enemy turn.
func (s *BattleService) EndTurn(id string) (*BattleView, error) {
	return s.withSession(id, func(sess *session) error {
		return sess.battle.EndTurn()
	})
}

// Abandon ends a battle on the player's request. A battle that has not
// finished is recorded as abandoned; either way it leaves memory.
func (s *BattleService) Abandon(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return ErrBattleNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.recordOutcome(sess, outcomeOf(sess.battle.Phase()))
	return nil
}
