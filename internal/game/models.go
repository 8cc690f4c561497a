package game

import (
	"gorm.io/gorm"
)

// Combatant holds the state shared by the player and every enemy.
type Combatant struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	// Block absorbs incoming enemy attacks before HP. Card damage dealt to
	// enemies never touches it (enemies have no block mechanic).
	Block int `json:"block"`
	// Statuses is kept in application order. Entries sharing an ID are
	// independent stacks.
	Statuses []StatusEffect `json:"statuses"`
}

// IsDefeated reports whether the combatant has no HP left.
func (c *Combatant) IsDefeated() bool { return c.HP <= 0 }

type Player struct {
	Combatant
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`
}

type Enemy struct {
	Combatant
	ID   string `json:"id"`
	Name string `json:"name"`
	// BaseAttack is the attack before status modifiers. Modifiers are
	// computed from the ledger on demand and never written back here.
	BaseAttack int `json:"base_attack"`
}

// StatusEffect is a named, timed, numeric modifier attached to a combatant.
type StatusEffect struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Duration    int     `json:"duration" yaml:"duration"`
	Value       float64 `json:"value" yaml:"value"`
	Description string  `json:"description" yaml:"description"`
}

// Card is a single card instance. ID is unique across every pile of a
// battle; TemplateID names the catalog entry it was built from.
type Card struct {
	ID          string `json:"id"`
	TemplateID  string `json:"template_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Tags        []Tag  `json:"tags"`
	Rarity      Rarity `json:"rarity,omitempty"`
	// Exhaust removes the card from play once it resolves.
	Exhaust bool `json:"exhaust"`
	// Ethereal cards still in hand when the player commits the turn are
	// discarded.
	Ethereal bool `json:"ethereal"`
	// Effect is opaque to the battle engine; it is invoked once per play.
	Effect Effect `json:"-"`
}

// HasTag reports whether the card carries tag t.
func (c Card) HasTag(t Tag) bool {
	for _, x := range c.Tags {
		if x == t {
			return true
		}
	}
	return false
}

// BattleState is the full state of one battle. The engine's Battle owns the
// only mutable copy; everything handed out is a snapshot.
type BattleState struct {
	Player      Player  `json:"player"`
	Enemies     []Enemy `json:"enemies"`
	Deck        []Card  `json:"deck"`
	Hand        []Card  `json:"hand"`
	DiscardPile []Card  `json:"discard_pile"`
	Exhausted   []Card  `json:"exhausted"`
	Turn        Turn    `json:"turn"`
	TurnCount   int     `json:"turn_count"`
	Phase       Phase   `json:"phase"`
}

// BattleRecord stores the outcome of a finished battle.
type BattleRecord struct {
	gorm.Model
	BattleID   string `json:"battle_id" gorm:"uniqueIndex;size:36"`
	PlayerName string `json:"player_name" gorm:"index"`
	Outcome    string `json:"outcome"`
	Turns      int    `json:"turns"`
	Seed       int64  `json:"seed"`
	// Enemies is a comma-separated list of enemy names in roster order.
	Enemies string `json:"enemies"`
	// Encounter is the order-independent roster key, see keys.EncounterKey.
	Encounter string `json:"encounter" gorm:"index"`
	PlayerHP  int    `json:"player_hp"`
	// Summary holds the final battle log, most recent first, one entry per line.
	Summary string `json:"summary"`
}

func (BattleRecord) TableName() string { return "battle_records" }

// Profile stores aggregate stats per player name.
type Profile struct {
	gorm.Model
	PlayerName    string `json:"player_name" gorm:"uniqueIndex"`
	BattlesPlayed int    `json:"battles_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Abandons      int    `json:"abandons"`
}

// Unify global profile table name as "player_profiles"
func (Profile) TableName() string { return "player_profiles" }
