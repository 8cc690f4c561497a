package game

// Target selects who a targeted effect primitive applies to.
type Target string

const (
	TargetPlayer Target = "player"
	// TargetEnemy is the enemy the card was aimed at (the first living
	// enemy when the caller did not choose one).
	TargetEnemy      Target = "enemy"
	TargetAllEnemies Target = "all_enemies"
)

// EffectContext is the bounded set of capabilities a card effect may use.
// Player, Enemy and State return snapshots taken when the effect was
// invoked; they do not observe the effect's own mutations.
type EffectContext interface {
	DealDamage(target Target, amount int)
	GainBlock(amount int)
	HealPlayer(amount int)
	GainEnergy(amount int)
	DrawCards(n int)
	DiscardCards(n int)
	ApplyStatus(target Target, eff StatusEffect)
	ExhaustCard(cardID string)
	AddToHand(card Card)
	RemoveFromHand(cardID string)
	Log(msg string)

	Player() Player
	// Enemy returns the targeted enemy; false when no living enemy exists.
	Enemy() (Enemy, bool)
	State() BattleState
	// Card is the card being played.
	Card() Card
}

// Effect is the behavior of a card.
type Effect interface {
	Resolve(ctx EffectContext)
}

// EffectFunc adapts a plain function to Effect.
type EffectFunc func(ctx EffectContext)

func (f EffectFunc) Resolve(ctx EffectContext) { f(ctx) }
