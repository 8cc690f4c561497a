package storage

import (
	"github.com/ericogr/deckbattle/internal/game"
)

type Repository interface {
	// SaveBattleRecord stores a finished battle. Saving the same battle id
	// twice keeps the first record.
	SaveBattleRecord(r *game.BattleRecord) error
	// ListBattleRecords returns the most recent battles first.
	ListBattleRecords(limit int) ([]game.BattleRecord, error)
	// UpdateStatsOnBattleEnd adds the record's outcome to its player's
	// profile, creating the profile on first use.
	UpdateStatsOnBattleEnd(r *game.BattleRecord) error
	GetProfile(playerName string) (*game.Profile, error)
	// Leaderboard
	GetTopPlayers(limit int) ([]game.Profile, error)
}
