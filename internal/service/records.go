package service

import (
	"strconv"
	"strings"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/dedupe"
	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/keys"
	"github.com/ericogr/deckbattle/internal/logging"
)

// recordOutcome writes the battle record and profile stats once per
// battle. The caller holds sess.mu. Repository failures are logged; the
// battle itself is unaffected.
func (s *BattleService) recordOutcome(sess *session, outcome string) {
	if sess.recorded {
		return
	}
	sess.recorded = true

	st := sess.battle.State()
	names := make([]string, 0, len(st.Enemies))
	for _, e := range st.Enemies {
		names = append(names, e.Name)
	}
	rec := &game.BattleRecord{
		BattleID:   sess.id,
		PlayerName: sess.playerName,
		Outcome:    outcome,
		Turns:      st.TurnCount,
		Seed:       sess.seed,
		Enemies:    strings.Join(names, ","),
		Encounter:  keys.EncounterKey(names),
		PlayerHP:   st.Player.HP,
		Summary:    strings.Join(sess.battle.Log(), "\n"),
	}
	fields := logging.Fields{
		constants.LogFieldBattleID: sess.id,
		constants.LogFieldPlayer:   sess.playerName,
		constants.LogFieldOutcome:  outcome,
		constants.LogFieldTurn:     st.TurnCount,
	}
	logging.Info("battle finished", fields)

	if s.repo == nil {
		return
	}
	if err := s.repo.SaveBattleRecord(rec); err != nil {
		logging.Error("failed to save battle record", err, fields)
		return
	}
	if err := s.repo.UpdateStatsOnBattleEnd(rec); err != nil {
		logging.Error("failed to update player stats", err, fields)
	}
}

// History returns the most recent finished battles.
func (s *BattleService) History(limit int) ([]game.BattleRecord, error) {
	v, err, _ := dedupe.HistoryGroup.Do("history:"+strconv.Itoa(limit), func() (interface{}, error) {
		return s.repo.ListBattleRecords(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.BattleRecord), nil
}

// Leaderboard returns the best players by wins.
func (s *BattleService) Leaderboard(limit int) ([]game.Profile, error) {
	v, err, _ := dedupe.LeaderboardGroup.Do("leaderboard:"+strconv.Itoa(limit), func() (interface{}, error) {
		return s.repo.GetTopPlayers(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.Profile), nil
}

// Profile returns the stats of one player. Unknown players get an empty
// profile.
func (s *BattleService) Profile(playerName string) (*game.Profile, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return nil, ErrInvalidPlayerName
	}
	v, err, _ := dedupe.ProfileGroup.Do("profile:"+name, func() (interface{}, error) {
		return s.repo.GetProfile(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Profile), nil
}
