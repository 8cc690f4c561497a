package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/deckbattle/internal/game"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db)
}

func TestBattleRecords_SaveOnceAndList(t *testing.T) {
	repo := newTestRepo(t)

	first := &game.BattleRecord{BattleID: "b-1", PlayerName: "ana", Outcome: game.OutcomeVictory, Turns: 4}
	require.NoError(t, repo.SaveBattleRecord(first))
	dup := &game.BattleRecord{BattleID: "b-1", PlayerName: "ana", Outcome: game.OutcomeDefeat, Turns: 9}
	require.NoError(t, repo.SaveBattleRecord(dup))
	require.NoError(t, repo.SaveBattleRecord(&game.BattleRecord{BattleID: "b-2", PlayerName: "bo", Outcome: game.OutcomeDefeat}))

	records, err := repo.ListBattleRecords(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b-2", records[0].BattleID)
	assert.Equal(t, game.OutcomeVictory, records[1].Outcome)

	records, err = repo.ListBattleRecords(1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestProfiles_StatsAndLeaderboard(t *testing.T) {
	repo := newTestRepo(t)

	for _, rec := range []game.BattleRecord{
		{PlayerName: "ana", Outcome: game.OutcomeVictory},
		{PlayerName: "ana", Outcome: game.OutcomeDefeat},
		{PlayerName: "bo", Outcome: game.OutcomeVictory},
		{PlayerName: "bo", Outcome: game.OutcomeVictory},
		{PlayerName: "cy", Outcome: game.OutcomeAbandoned},
		{PlayerName: "  ", Outcome: game.OutcomeVictory},
	} {
		rec := rec
		require.NoError(t, repo.UpdateStatsOnBattleEnd(&rec))
	}

	ana, err := repo.GetProfile("ana")
	require.NoError(t, err)
	assert.Equal(t, 2, ana.BattlesPlayed)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 1, ana.Losses)

	unknown, err := repo.GetProfile("nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, unknown.BattlesPlayed)

	top, err := repo.GetTopPlayers(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bo", top[0].PlayerName)
	assert.Equal(t, "ana", top[1].PlayerName)
}
