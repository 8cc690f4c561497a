package game

// Tag classifies a card for catalog lookups and UI grouping.
type Tag string

const (
	TagAttack  Tag = "attack"
	TagDefense Tag = "defense"
	TagEnergy  Tag = "energy"
	TagDraw    Tag = "draw"
	TagDiscard Tag = "discard"
	TagStatus  Tag = "status"
	TagDebuff  Tag = "debuff"
	TagHeal    Tag = "heal"
	TagBuff    Tag = "buff"
	TagReflect Tag = "reflect"
	TagTrap    Tag = "trap"
	TagDelay   Tag = "delay"
)

// ValidTag reports whether t is one of the known tags.
func ValidTag(t Tag) bool {
	switch t {
	case TagAttack, TagDefense, TagEnergy, TagDraw, TagDiscard, TagStatus,
		TagDebuff, TagHeal, TagBuff, TagReflect, TagTrap, TagDelay:
		return true
	}
	return false
}

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Turn says whose actions are being resolved.
type Turn string

const (
	TurnPlayer Turn = "player"
	TurnEnemy  Turn = "enemy"
)

// Phase is the battle outcome overlay. Victory and Defeat are terminal.
type Phase string

const (
	PhaseBattle  Phase = "battle"
	PhaseVictory Phase = "victory"
	PhaseDefeat  Phase = "defeat"
)

// Outcome values stored on BattleRecord.
const (
	OutcomeVictory   = "victory"
	OutcomeDefeat    = "defeat"
	OutcomeAbandoned = "abandoned"
)

// Well-known status effect ids. The engine resolves their behavior by
// querying the ledger for these ids.
const (
	StatusPoison        = "poison"
	StatusExplosiveTrap = "explosiveTrap"
	StatusWeaken        = "weaken"
	StatusCorrupt       = "corrupt"
	StatusFreeze        = "freeze"
	StatusShieldWall    = "shieldWall"
	StatusFlameAura     = "flameAura"
	StatusBarricade     = "barricade"
)
