package config

import (
	"time"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/game"
)

func status(id, name string, duration int, value float64, desc string) *game.StatusEffect {
	return &game.StatusEffect{ID: id, Name: name, Duration: duration, Value: value, Description: desc}
}

// Default returns the built-in configuration: one slime, the standard
// starter deck and a catalog that exercises every status.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Address: constants.DefaultAddr},
		Database: DatabaseConfig{Path: constants.DefaultDBPath},
		Battle: BattleConfig{
			PlayerMaxHP:     30,
			PlayerMaxEnergy: 3,
			HandSize:        5,
			MaxHandSize:     10,
			LogCap:          20,
			MaxSelection:    3,
			IdleTimeout:     30 * time.Minute,
		},
		EnemyRoster: []EnemyEntry{
			{ID: "slime", Name: "Slime", MaxHP: 20, BaseAttack: 8},
		},
		CardList: defaultCards(),
		StarterDeck: []DeckEntry{
			{Card: "strike", Count: 4},
			{Card: "defend", Count: 4},
			{Card: "adrenaline", Count: 1},
			{Card: "quickDraw", Count: 1},
			{Card: "hexBlade", Count: 1},
			{Card: "weaken", Count: 1},
		},
	}
}

func defaultCards() []CardEntry {
	return []CardEntry{
		{
			ID: "strike", Name: "Strike", Description: "Deal 6 damage to an enemy.",
			Cost: 1, Tags: []string{"attack"}, Rarity: "common",
			Effects: []EffectStep{{Kind: StepDamage, Amount: 6}},
		},
		{
			ID: "defend", Name: "Defend", Description: "Gain 5 block.",
			Cost: 1, Tags: []string{"defense"}, Rarity: "common",
			Effects: []EffectStep{{Kind: StepBlock, Amount: 5}},
		},
		{
			ID: "adrenaline", Name: "Adrenaline", Description: "Gain 2 energy. Draw 1 card. Exhaust.",
			Cost: 0, Tags: []string{"energy", "draw"}, Rarity: "uncommon", Exhaust: true,
			Effects: []EffectStep{{Kind: StepEnergy, Amount: 2}, {Kind: StepDraw, Amount: 1}},
		},
		{
			ID: "quickDraw", Name: "Quick Draw", Description: "Draw 2 cards, then discard 1.",
			Cost: 1, Tags: []string{"draw", "discard"}, Rarity: "common",
			Effects: []EffectStep{{Kind: StepDraw, Amount: 2}, {Kind: StepDiscard, Amount: 1}},
		},
		{
			ID: "hexBlade", Name: "Hex Blade", Description: "Deal 6 damage and apply 3 poison for 3 turns.",
			Cost: 1, Tags: []string{"attack", "status"}, Rarity: "uncommon",
			Effects: []EffectStep{
				{Kind: StepDamage, Amount: 6},
				{Kind: StepStatus, Status: status(game.StatusPoison, "Poison", 3, 3, "Takes 3 damage every turn.")},
			},
		},
		{
			ID: "weaken", Name: "Weaken", Description: "Reduce an enemy's attack by 25% for 2 turns.",
			Cost: 1, Tags: []string{"status", "debuff"}, Rarity: "common",
			Effects: []EffectStep{
				{Kind: StepStatus, Status: status(game.StatusWeaken, "Weakened", 2, 0.25, "Attack reduced by 25%.")},
			},
		},
		{
			ID: "frostNova", Name: "Frost Nova", Description: "Freeze every enemy for their next action. Exhaust.",
			Cost: 2, Tags: []string{"status", "debuff"}, Rarity: "rare", Exhaust: true,
			Effects: []EffectStep{
				{Kind: StepStatus, Target: string(game.TargetAllEnemies), Status: status(game.StatusFreeze, "Frozen", 1, 0, "Cannot act.")},
			},
		},
		{
			ID: "corrupt", Name: "Corrupt", Description: "The enemy deals no damage for 2 turns.",
			Cost: 2, Tags: []string{"status", "debuff"}, Rarity: "rare",
			Effects: []EffectStep{
				{Kind: StepStatus, Status: status(game.StatusCorrupt, "Corrupted", 2, 0, "Attacks deal no damage.")},
			},
		},
		{
			ID: "shieldWall", Name: "Shield Wall", Description: "Negate every enemy attack this turn.",
			Cost: 2, Tags: []string{"defense", "buff"}, Rarity: "rare",
			Effects: []EffectStep{
				{Kind: StepStatus, Target: string(game.TargetPlayer), Status: status(game.StatusShieldWall, "Shield Wall", 1, 0, "Enemy attacks are negated.")},
			},
		},
		{
			ID: "flameAura", Name: "Flame Aura", Description: "Attackers take 3 damage for 2 turns.",
			Cost: 1, Tags: []string{"buff", "reflect"}, Rarity: "uncommon",
			Effects: []EffectStep{
				{Kind: StepStatus, Target: string(game.TargetPlayer), Status: status(game.StatusFlameAura, "Flame Aura", 2, 3, "Reflects 3 damage to attackers.")},
			},
		},
		{
			ID: "explosiveTrap", Name: "Explosive Trap", Description: "After 2 turns the enemy takes 12 damage.",
			Cost: 1, Tags: []string{"trap", "delay"}, Rarity: "uncommon",
			Effects: []EffectStep{
				{Kind: StepStatus, Status: status(game.StatusExplosiveTrap, "Explosive Trap", 2, 12, "Explodes for 12 damage.")},
			},
		},
		{
			ID: "barricade", Name: "Barricade", Description: "Gain 8 block. Block is kept next turn.",
			Cost: 2, Tags: []string{"defense", "buff"}, Rarity: "uncommon",
			Effects: []EffectStep{
				{Kind: StepBlock, Amount: 8},
				{Kind: StepStatus, Target: string(game.TargetPlayer), Status: status(game.StatusBarricade, "Barricade", 2, 0, "Block is not reset.")},
			},
		},
		{
			ID: "secondWind", Name: "Second Wind", Description: "Heal 6 HP. Ethereal.",
			Cost: 1, Tags: []string{"heal"}, Rarity: "uncommon", Ethereal: true,
			Effects: []EffectStep{{Kind: StepHeal, Amount: 6}},
		},
		{
			ID: "whirlwind", Name: "Whirlwind", Description: "Deal 4 damage to every enemy.",
			Cost: 1, Tags: []string{"attack"}, Rarity: "uncommon",
			Effects: []EffectStep{{Kind: StepDamage, Target: string(game.TargetAllEnemies), Amount: 4}},
		},
	}
}
