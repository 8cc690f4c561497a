package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ericogr/deckbattle/internal/catalog"
	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/util"
)

// StartBattle builds a battle from the configured roster and starter deck
// and opens its first player turn. A zero seed picks one from the clock;
// the seed is returned so a battle can be replayed.
func (s *BattleService) StartBattle(playerName string, seed int64) (*BattleView, error) {
	name := strings.TrimSpace(playerName)
	if name == "" || utf8.RuneCountInString(name) > constants.MaxPlayerNameLength {
		return nil, ErrInvalidPlayerName
	}
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	id := uuid.NewString()
	b, err := BuildBattle(s.cfg, s.catalog, seed, engine.WithLogFields(logging.Fields{constants.LogFieldBattleID: id}))
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session{
		id:         id,
		playerName: name,
		seed:       seed,
		battle:     b,
		startedAt:  now,
		lastActive: now,
	}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID: id,
		constants.LogFieldPlayer:   name,
		constants.LogFieldSeed:     seed,
	})
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// BuildBattle deals a fresh battle from cfg: the starter deck is shuffled
// with a source seeded by seed and the whole enemy roster is fielded.
// The same seed always yields the same battle.
func BuildBattle(cfg *config.Config, cat *catalog.Catalog, seed int64, opts ...engine.Option) (*engine.Battle, error) {
	rng := util.New(seed)

	deck, err := cat.BuildDeck(cfg.StarterDeck)
	if err != nil {
		return nil, fmt.Errorf("failed to build starter deck: %w", err)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	bc := cfg.Battle
	enemies := make([]game.Enemy, 0, len(cfg.EnemyRoster))
	for _, e := range cfg.EnemyRoster {
		enemies = append(enemies, game.Enemy{
			ID:         e.ID,
			Name:       e.Name,
			BaseAttack: e.BaseAttack,
			Combatant:  game.Combatant{HP: e.MaxHP, MaxHP: e.MaxHP},
		})
	}

	return engine.NewBattle(engine.Setup{
		Player: game.Player{
			Combatant: game.Combatant{HP: bc.PlayerMaxHP, MaxHP: bc.PlayerMaxHP},
			Energy:    bc.PlayerMaxEnergy,
			MaxEnergy: bc.PlayerMaxEnergy,
		},
		Enemies: enemies,
		Deck:    deck,
		Rules: engine.Rules{
			HandSize:     bc.HandSize,
			MaxHandSize:  bc.MaxHandSize,
			LogCap:       bc.LogCap,
			MaxSelection: bc.MaxSelection,
		},
	}, rng, opts...)
}
