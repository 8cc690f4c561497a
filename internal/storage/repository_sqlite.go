package storage

import (
	"errors"
	"strings"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		return constants.MaxListLimit
	}
	return limit
}

func (r *sqliteRepository) SaveBattleRecord(rec *game.BattleRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "battle_id"}},
		DoNothing: true,
	}).Create(rec).Error
}

func (r *sqliteRepository) ListBattleRecords(limit int) ([]game.BattleRecord, error) {
	var records []game.BattleRecord
	if err := r.db.Order("created_at DESC").Order("id DESC").Limit(clampLimit(limit)).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(rec *game.BattleRecord) error {
	name := strings.TrimSpace(rec.PlayerName)
	if name == "" {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p game.Profile
		if err := tx.Where("player_name = ?", name).First(&p).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			p = game.Profile{PlayerName: name}
		}
		p.BattlesPlayed++
		switch rec.Outcome {
		case game.OutcomeVictory:
			p.Wins++
		case game.OutcomeDefeat:
			p.Losses++
		case game.OutcomeAbandoned:
			p.Abandons++
		}
		return tx.Save(&p).Error
	})
}

func (r *sqliteRepository) GetProfile(playerName string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("player_name = ?", playerName).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.Profile{PlayerName: playerName}, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetTopPlayers returns top N players ordered by Wins desc, then BattlesPlayed asc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.Profile, error) {
	var profiles []game.Profile
	if err := r.db.Model(&game.Profile{}).
		Order("wins DESC").
		Order("battles_played ASC").
		Order("player_name ASC").
		Limit(clampLimit(limit)).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
