package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/game"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Effect step kinds understood by the card catalog.
const (
	StepDamage      = "damage"
	StepBlock       = "block"
	StepHeal        = "heal"
	StepEnergy      = "energy"
	StepDraw        = "draw"
	StepDiscard     = "discard"
	StepStatus      = "status"
	StepExhaustSelf = "exhaust_self"
	StepLog         = "log"
)

// EffectStep is one entry of a card's ordered effect list.
type EffectStep struct {
	Kind string `yaml:"kind"`
	// Target is player, enemy or all_enemies. Damage and status default to
	// the enemy.
	Target  string             `yaml:"target,omitempty"`
	Amount  int                `yaml:"amount,omitempty"`
	Status  *game.StatusEffect `yaml:"status,omitempty"`
	Message string             `yaml:"message,omitempty"`
}

type CardEntry struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Cost        int          `yaml:"cost"`
	Tags        []string     `yaml:"tags"`
	Rarity      string       `yaml:"rarity,omitempty"`
	Exhaust     bool         `yaml:"exhaust,omitempty"`
	Ethereal    bool         `yaml:"ethereal,omitempty"`
	Effects     []EffectStep `yaml:"effects"`
}

type EnemyEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	MaxHP      int    `yaml:"max_hp"`
	BaseAttack int    `yaml:"base_attack"`
}

// DeckEntry adds Count copies of a catalog card to the starter deck.
type DeckEntry struct {
	Card  string `yaml:"card"`
	Count int    `yaml:"count"`
}

type BattleConfig struct {
	PlayerMaxHP     int `yaml:"player_max_hp"`
	PlayerMaxEnergy int `yaml:"player_max_energy"`
	HandSize        int `yaml:"hand_size"`
	MaxHandSize     int `yaml:"max_hand_size"`
	LogCap          int `yaml:"log_cap"`
	MaxSelection    int `yaml:"max_selection"`
	// IdleTimeout abandons battles nobody touched for this long.
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Config is the whole application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Battle   BattleConfig   `yaml:"battle"`
	// EnemyRoster is the encounter every new battle fights, in slot order.
	EnemyRoster []EnemyEntry `yaml:"enemy_roster"`
	CardList    []CardEntry  `yaml:"card_list"`
	StarterDeck []DeckEntry  `yaml:"starter_deck"`
}

// Load reads the YAML (or JSON) file at path on top of Default(). A missing
// file is not an error: the defaults are returned. Environment overrides are
// applied last and the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// built-in defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config document without touching the filesystem or the
// environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides the listen address and database path from the
// environment when set.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(constants.EnvAddr)); v != "" {
		c.Server.Address = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.EnvDBPath)); v != "" {
		c.Database.Path = v
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every section and the references between them.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return invalid("server.address is empty")
	}
	if c.Database.Path == "" {
		return invalid("database.path is empty")
	}
	bc := c.Battle
	for key, v := range map[string]int{
		"player_max_hp":     bc.PlayerMaxHP,
		"player_max_energy": bc.PlayerMaxEnergy,
		"hand_size":         bc.HandSize,
		"max_hand_size":     bc.MaxHandSize,
		"log_cap":           bc.LogCap,
		"max_selection":     bc.MaxSelection,
	} {
		if v <= 0 {
			return invalid("battle.%s must be positive, got %d", key, v)
		}
	}
	if bc.MaxHandSize < bc.HandSize {
		return invalid("battle.max_hand_size (%d) is smaller than battle.hand_size (%d)", bc.MaxHandSize, bc.HandSize)
	}
	if bc.IdleTimeout <= 0 {
		return invalid("battle.idle_timeout must be positive")
	}

	if len(c.EnemyRoster) == 0 {
		return invalid("enemy_roster is empty")
	}
	enemyIDs := make(map[string]struct{}, len(c.EnemyRoster))
	for _, e := range c.EnemyRoster {
		if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Name) == "" {
			return invalid("enemy entry missing 'id' or 'name'")
		}
		if _, dup := enemyIDs[e.ID]; dup {
			return invalid("duplicate enemy id '%s'", e.ID)
		}
		enemyIDs[e.ID] = struct{}{}
		if e.MaxHP <= 0 {
			return invalid("enemy '%s' max_hp must be positive", e.ID)
		}
		if e.BaseAttack < 0 {
			return invalid("enemy '%s' base_attack must not be negative", e.ID)
		}
	}

	if len(c.CardList) == 0 {
		return invalid("card_list is empty")
	}
	cardIDs := make(map[string]struct{}, len(c.CardList))
	for _, card := range c.CardList {
		if err := validateCard(card); err != nil {
			return err
		}
		key := strings.ToLower(card.ID)
		if _, dup := cardIDs[key]; dup {
			return invalid("duplicate card id '%s'", card.ID)
		}
		cardIDs[key] = struct{}{}
	}

	if len(c.StarterDeck) == 0 {
		return invalid("starter_deck is empty")
	}
	for _, d := range c.StarterDeck {
		if _, ok := cardIDs[strings.ToLower(d.Card)]; !ok {
			return invalid("starter_deck references unknown card '%s'", d.Card)
		}
		if d.Count <= 0 {
			return invalid("starter_deck entry '%s' count must be positive", d.Card)
		}
	}
	return nil
}

func validateCard(card CardEntry) error {
	if strings.TrimSpace(card.ID) == "" || strings.TrimSpace(card.Name) == "" {
		return invalid("card entry missing 'id' or 'name'")
	}
	if card.Cost < 0 {
		return invalid("card '%s' cost must not be negative", card.ID)
	}
	for _, t := range card.Tags {
		if !game.ValidTag(game.Tag(t)) {
			return invalid("card '%s' has unknown tag '%s'", card.ID, t)
		}
	}
	switch game.Rarity(card.Rarity) {
	case "", game.RarityCommon, game.RarityUncommon, game.RarityRare:
	default:
		return invalid("card '%s' has unknown rarity '%s'", card.ID, card.Rarity)
	}
	if len(card.Effects) == 0 {
		return invalid("card '%s' has no effects", card.ID)
	}
	for i, step := range card.Effects {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("card '%s' effect %d: %w", card.ID, i, err)
		}
	}
	return nil
}

func validateStep(s EffectStep) error {
	switch game.Target(s.Target) {
	case "", game.TargetPlayer, game.TargetEnemy, game.TargetAllEnemies:
	default:
		return invalid("unknown target '%s'", s.Target)
	}
	switch s.Kind {
	case StepDamage, StepBlock, StepHeal, StepDraw, StepDiscard:
		if s.Amount < 0 {
			return invalid("%s amount must not be negative", s.Kind)
		}
	case StepEnergy, StepExhaustSelf:
	case StepStatus:
		if s.Status == nil || s.Status.ID == "" {
			return invalid("status step needs a status with an id")
		}
		if s.Status.Duration <= 0 {
			return invalid("status '%s' duration must be positive", s.Status.ID)
		}
	case StepLog:
		if strings.TrimSpace(s.Message) == "" {
			return invalid("log step needs a message")
		}
	default:
		return invalid("unknown effect kind '%s'", s.Kind)
	}
	return nil
}
