package engine

import (
	"errors"
	"fmt"

	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/logging"
)

// Rejections. Each one is returned before any state is touched, so the
// caller can simply re-prompt.
var (
	ErrBattleOver         = errors.New("battle is over")
	ErrNotPlayerTurn      = errors.New("not the player's turn")
	ErrNotEnemyTurn       = errors.New("not the enemy's turn")
	ErrCardNotInHand      = errors.New("card is not in hand")
	ErrInsufficientEnergy = errors.New("not enough energy")
	ErrEmptySelection     = errors.New("no cards selected")
	ErrSelectionTooLarge  = errors.New("too many cards selected")
	ErrDuplicateSelection = errors.New("card selected more than once")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrInvalidSetup       = errors.New("invalid battle setup")
)

// Rules are the tunable constants of a battle.
type Rules struct {
	// HandSize is the hand the player is topped up to at the start of
	// each turn.
	HandSize int
	// MaxHandSize stops any draw once the hand holds this many cards.
	MaxHandSize int
	LogCap      int
	// MaxSelection bounds how many cards PlaySelection accepts at once.
	MaxSelection int
}

// DefaultRules returns the standard battle constants.
func DefaultRules() Rules {
	return Rules{HandSize: 5, MaxHandSize: 10, LogCap: DefaultLogCap, MaxSelection: 3}
}

func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.HandSize <= 0 {
		r.HandSize = d.HandSize
	}
	if r.MaxHandSize <= 0 {
		r.MaxHandSize = d.MaxHandSize
	}
	if r.MaxHandSize < r.HandSize {
		r.MaxHandSize = r.HandSize
	}
	if r.LogCap <= 0 {
		r.LogCap = d.LogCap
	}
	if r.MaxSelection <= 0 {
		r.MaxSelection = d.MaxSelection
	}
	return r
}

// Setup describes a battle before it starts. The deck is drawn front to
// back.
type Setup struct {
	Player  game.Player
	Enemies []game.Enemy
	Deck    []game.Card
	Rules   Rules
}

// Shuffler produces a uniform random permutation; *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type Option func(*Battle)

// WithLogFields attaches fields (for example the battle id) to every battle
// log entry mirrored to the structured logger.
func WithLogFields(fields logging.Fields) Option {
	return func(b *Battle) {
		b.log.fields = fields
	}
}

// Battle is the turn state machine. It exclusively owns its BattleState;
// every accessor hands out copies. A Battle is not safe for concurrent use:
// callers serialize operations, and each exported method leaves the state
// consistent before returning.
type Battle struct {
	state game.BattleState
	rules Rules
	log   *BattleLog
	rng   Shuffler

	// inPlay is the card whose effect is resolving. It sits outside every
	// pile until the effect returns.
	inPlay        *game.Card
	exhaustInPlay bool
}

// NewBattle validates the setup, starts the battle and enters the first
// player turn (turn 1).
func NewBattle(setup Setup, rng Shuffler, opts ...Option) (*Battle, error) {
	if err := validateSetup(setup); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: shuffler is required", ErrInvalidSetup)
	}
	rules := setup.Rules.withDefaults()
	b := &Battle{
		rules: rules,
		log:   NewBattleLog(rules.LogCap),
		rng:   rng,
	}
	for _, o := range opts {
		o(b)
	}

	p := clonePlayer(setup.Player)
	if p.HP <= 0 || p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.Block = 0
	enemies := cloneEnemies(setup.Enemies)
	for i := range enemies {
		if enemies[i].HP <= 0 || enemies[i].HP > enemies[i].MaxHP {
			enemies[i].HP = enemies[i].MaxHP
		}
		enemies[i].Block = 0
	}
	b.state = game.BattleState{
		Player:      p,
		Enemies:     enemies,
		Deck:        cloneCards(setup.Deck),
		Hand:        []game.Card{},
		DiscardPile: []game.Card{},
		Exhausted:   []game.Card{},
		Turn:        game.TurnPlayer,
		TurnCount:   1,
		Phase:       game.PhaseBattle,
	}
	b.log.Add("Battle start!")
	b.beginPlayerTurn(false)
	return b, nil
}

func validateSetup(s Setup) error {
	if s.Player.MaxHP <= 0 {
		return fmt.Errorf("%w: player max hp must be positive", ErrInvalidSetup)
	}
	if s.Player.MaxEnergy <= 0 {
		return fmt.Errorf("%w: player max energy must be positive", ErrInvalidSetup)
	}
	if len(s.Enemies) == 0 {
		return fmt.Errorf("%w: at least one enemy is required", ErrInvalidSetup)
	}
	for _, e := range s.Enemies {
		if e.MaxHP <= 0 {
			return fmt.Errorf("%w: enemy %q max hp must be positive", ErrInvalidSetup, e.Name)
		}
		if e.BaseAttack < 0 {
			return fmt.Errorf("%w: enemy %q base attack must not be negative", ErrInvalidSetup, e.Name)
		}
	}
	seen := make(map[string]struct{}, len(s.Deck))
	for _, c := range s.Deck {
		if c.ID == "" {
			return fmt.Errorf("%w: card %q has no instance id", ErrInvalidSetup, c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate card id %q", ErrInvalidSetup, c.ID)
		}
		if c.Cost < 0 {
			return fmt.Errorf("%w: card %q has negative cost", ErrInvalidSetup, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// State returns a deep snapshot of the battle.
func (b *Battle) State() game.BattleState { return cloneState(&b.state) }

// Log returns the battle log, most recent first.
func (b *Battle) Log() []string { return b.log.Entries() }

func (b *Battle) Phase() game.Phase { return b.state.Phase }

func (b *Battle) Turn() game.Turn { return b.state.Turn }

func (b *Battle) Rules() Rules { return b.rules }

// Over reports whether the battle reached a terminal phase.
func (b *Battle) Over() bool { return b.state.Phase != game.PhaseBattle }
