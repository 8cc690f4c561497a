package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ericogr/deckbattle/internal/catalog"
	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/storage"
)

var (
	ErrBattleNotFound    = errors.New("battle not found")
	ErrInvalidPlayerName = errors.New("invalid player name")
)

// BattleView is what callers see of a live battle.
type BattleView struct {
	BattleID   string           `json:"battle_id"`
	PlayerName string           `json:"player_name"`
	Seed       int64            `json:"seed"`
	State      game.BattleState `json:"state"`
	Log        []string         `json:"log"`
}

type session struct {
	// mu serializes every operation on the battle.
	mu         sync.Mutex
	id         string
	playerName string
	seed       int64
	battle     *engine.Battle
	startedAt  time.Time
	lastActive time.Time
	// recorded is set once the outcome was written to the repository.
	recorded bool
}

func (s *session) view() *BattleView {
	return &BattleView{
		BattleID:   s.id,
		PlayerName: s.playerName,
		Seed:       s.seed,
		State:      s.battle.State(),
		Log:        s.battle.Log(),
	}
}

// BattleService owns the live battles. Battles are kept in memory only;
// finished outcomes go to the repository.
type BattleService struct {
	repo    storage.Repository
	catalog *catalog.Catalog
	cfg     *config.Config
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type Option func(*BattleService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *BattleService) { s.now = now }
}

func NewBattleService(cfg *config.Config, cat *catalog.Catalog, repo storage.Repository, opts ...Option) *BattleService {
	s := &BattleService{
		repo:     repo,
		catalog:  cat,
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Catalog exposes the card catalog battles are built from.
func (s *BattleService) Catalog() *catalog.Catalog { return s.catalog }

func (s *BattleService) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrBattleNotFound
	}
	return sess, nil
}

// withSession runs fn with the session locked and marks it active.
func (s *BattleService) withSession(id string, fn func(sess *session) error) (*BattleView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.lastActive = s.now()
	if sess.battle.Over() {
		s.recordOutcome(sess, outcomeOf(sess.battle.Phase()))
	}
	return sess.view(), nil
}

// GetState returns the current view of a battle.
func (s *BattleService) GetState(id string) (*BattleView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// GetLog returns the battle log, most recent first.
func (s *BattleService) GetLog(id string) ([]string, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.battle.Log(), nil
}

// ActiveBattles lists the ids of every battle held in memory, sorted.
func (s *BattleService) ActiveBattles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func outcomeOf(p game.Phase) string {
	switch p {
	case game.PhaseVictory:
		return game.OutcomeVictory
	case game.PhaseDefeat:
		return game.OutcomeDefeat
	}
	return game.OutcomeAbandoned
}
