package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/deckbattle/internal/catalog"
	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/game"
)

type mockRepo struct {
	mu       sync.Mutex
	records  []game.BattleRecord
	stats    map[string]*game.Profile
	saveErr  error
	statsHit int
}

func newMockRepo() *mockRepo {
	return &mockRepo{stats: map[string]*game.Profile{}}
}

func (m *mockRepo) SaveBattleRecord(r *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *mockRepo) ListBattleRecords(limit int) ([]game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]game.BattleRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *mockRepo) UpdateStatsOnBattleEnd(r *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsHit++
	p, ok := m.stats[r.PlayerName]
	if !ok {
		p = &game.Profile{PlayerName: r.PlayerName}
		m.stats[r.PlayerName] = p
	}
	p.BattlesPlayed++
	switch r.Outcome {
	case game.OutcomeVictory:
		p.Wins++
	case game.OutcomeDefeat:
		p.Losses++
	case game.OutcomeAbandoned:
		p.Abandons++
	}
	return nil
}

func (m *mockRepo) GetProfile(name string) (*game.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.stats[name]; ok {
		cp := *p
		return &cp, nil
	}
	return &game.Profile{PlayerName: name}, nil
}

func (m *mockRepo) GetTopPlayers(limit int) ([]game.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Profile
	for _, p := range m.stats {
		out = append(out, *p)
	}
	return out, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// testConfig is a small deterministic setup: a single strong strike card
// against one enemy.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.EnemyRoster = []config.EnemyEntry{{ID: "rat", Name: "Rat", MaxHP: 12, BaseAttack: 5}}
	cfg.CardList = append(cfg.CardList, config.CardEntry{
		ID: "smash", Name: "Smash", Cost: 1, Tags: []string{"attack"},
		Effects: []config.EffectStep{{Kind: config.StepDamage, Amount: 6}},
	})
	cfg.StarterDeck = []config.DeckEntry{{Card: "smash", Count: 6}}
	cfg.Battle.IdleTimeout = 10 * time.Minute
	return cfg
}

func newTestService(t *testing.T, cfg *config.Config) (*BattleService, *mockRepo, *fakeClock) {
	t.Helper()
	cat, err := catalog.New(cfg.CardList)
	require.NoError(t, err)
	repo := newMockRepo()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewBattleService(cfg, cat, repo, WithClock(clock.now)), repo, clock
}

func TestStartBattle(t *testing.T) {
	svc, _, _ := newTestService(t, testConfig())

	v, err := svc.StartBattle("  ana ", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, v.BattleID)
	assert.Equal(t, "ana", v.PlayerName)
	assert.Equal(t, int64(42), v.Seed)
	assert.Equal(t, game.PhaseBattle, v.State.Phase)
	assert.Len(t, v.State.Hand, 5)
	assert.Len(t, v.State.Deck, 1)
	assert.Equal(t, 30, v.State.Player.HP)
	assert.Equal(t, "Rat", v.State.Enemies[0].Name)
	assert.Equal(t, []string{v.BattleID}, svc.ActiveBattles())

	_, err = svc.StartBattle("   ", 1)
	assert.ErrorIs(t, err, ErrInvalidPlayerName)
}

func TestStartBattle_SameSeedSameDeckOrder(t *testing.T) {
	cfg := config.Default()
	svc, _, _ := newTestService(t, cfg)

	a, err := svc.StartBattle("ana", 7)
	require.NoError(t, err)
	b, err := svc.StartBattle("bo", 7)
	require.NoError(t, err)

	ids := func(v *BattleView) []string {
		var out []string
		for _, c := range append(v.State.Hand, v.State.Deck...) {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, ids(a), ids(b))
}

func TestPlayCards_VictoryIsRecordedOnce(t *testing.T) {
	svc, repo, _ := newTestService(t, testConfig())
	v, err := svc.StartBattle("ana", 3)
	require.NoError(t, err)

	hand := v.State.Hand
	v, err = svc.PlayCards(v.BattleID, []string{hand[0].ID, hand[1].ID}, NoTarget)
	require.NoError(t, err)
	assert.Equal(t, game.PhaseVictory, v.State.Phase)

	_, err = svc.PlayCards(v.BattleID, []string{hand[2].ID}, NoTarget)
	assert.ErrorIs(t, err, engine.ErrBattleOver)
	_, err = svc.EndTurn(v.BattleID)
	assert.ErrorIs(t, err, engine.ErrBattleOver)
	require.NoError(t, svc.Abandon(v.BattleID))

	require.Len(t, repo.records, 1)
	assert.Equal(t, game.OutcomeVictory, repo.records[0].Outcome)
	assert.Equal(t, "Rat", repo.records[0].Enemies)
	assert.Equal(t, 1, repo.statsHit)
	assert.Empty(t, svc.ActiveBattles())
}

func TestPlayCards_RejectionsPassThrough(t *testing.T) {
	svc, repo, _ := newTestService(t, testConfig())
	v, err := svc.StartBattle("ana", 3)
	require.NoError(t, err)
	hand := v.State.Hand

	_, err = svc.PlayCards(v.BattleID, []string{hand[0].ID, hand[1].ID, hand[2].ID, hand[3].ID}, NoTarget)
	assert.ErrorIs(t, err, engine.ErrSelectionTooLarge)
	_, err = svc.PlayCards(v.BattleID, []string{"nope"}, NoTarget)
	assert.ErrorIs(t, err, engine.ErrCardNotInHand)
	_, err = svc.PlayCards(v.BattleID, []string{hand[0].ID}, 4)
	assert.ErrorIs(t, err, engine.ErrInvalidTarget)
	_, err = svc.PlayCards("missing", []string{hand[0].ID}, NoTarget)
	assert.ErrorIs(t, err, ErrBattleNotFound)

	st, err := svc.GetState(v.BattleID)
	require.NoError(t, err)
	assert.Len(t, st.State.Hand, 5)
	assert.Empty(t, repo.records)
}

func TestEndTurn_AdvancesTurn(t *testing.T) {
	svc, _, _ := newTestService(t, testConfig())
	v, err := svc.StartBattle("ana", 3)
	require.NoError(t, err)

	v, err = svc.EndTurn(v.BattleID)
	require.NoError(t, err)
	assert.Equal(t, 2, v.State.TurnCount)
	assert.Equal(t, 25, v.State.Player.HP)

	log, err := svc.GetLog(v.BattleID)
	require.NoError(t, err)
	assert.Equal(t, "Turn 2 begins", log[0])
}

func TestAbandon_RecordsUnfinishedBattle(t *testing.T) {
	svc, repo, _ := newTestService(t, testConfig())
	v, err := svc.StartBattle("ana", 3)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(v.BattleID))
	assert.ErrorIs(t, svc.Abandon(v.BattleID), ErrBattleNotFound)
	_, err = svc.GetState(v.BattleID)
	assert.ErrorIs(t, err, ErrBattleNotFound)

	require.Len(t, repo.records, 1)
	assert.Equal(t, game.OutcomeAbandoned, repo.records[0].Outcome)
	p, err := svc.Profile("ana")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Abandons)
}

func TestRecordOutcome_RepoFailureDoesNotBreakBattle(t *testing.T) {
	svc, repo, _ := newTestService(t, testConfig())
	repo.saveErr = errors.New("disk full")
	v, err := svc.StartBattle("ana", 3)
	require.NoError(t, err)

	hand := v.State.Hand
	v, err = svc.PlayCards(v.BattleID, []string{hand[0].ID, hand[1].ID}, NoTarget)
	require.NoError(t, err)
	assert.Equal(t, game.PhaseVictory, v.State.Phase)
	assert.Equal(t, 0, repo.statsHit)
}

func TestHistoryAndLeaderboard(t *testing.T) {
	svc, _, _ := newTestService(t, testConfig())
	for _, name := range []string{"ana", "bo"} {
		v, err := svc.StartBattle(name, 3)
		require.NoError(t, err)
		require.NoError(t, svc.Abandon(v.BattleID))
	}

	hist, err := svc.History(10)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "bo", hist[0].PlayerName)

	top, err := svc.Leaderboard(10)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	_, err = svc.Profile(" ")
	assert.ErrorIs(t, err, ErrInvalidPlayerName)
}
