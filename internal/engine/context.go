package engine

import (
	"strconv"

	"github.com/ericogr/deckbattle/internal/game"
)

// --- Effect context ----------------------------------------------------

// effectContext is handed to a card effect. Mutations go straight to the
// battle; the read accessors return snapshots taken before the effect ran.
// Each primitive is fail-soft: a missing or defeated target turns that
// primitive into a no-op and the rest of the effect still runs.
type effectContext struct {
	b      *Battle
	card   game.Card
	target int

	player   game.Player
	enemy    game.Enemy
	hasEnemy bool
	state    game.BattleState
}

var _ game.EffectContext = (*effectContext)(nil)

func newEffectContext(b *Battle, card game.Card, target int) *effectContext {
	ec := &effectContext{
		b:      b,
		card:   card,
		target: target,
		player: clonePlayer(b.state.Player),
		state:  cloneState(&b.state),
	}
	if target >= 0 {
		ec.enemy = cloneEnemy(b.state.Enemies[target])
		ec.hasEnemy = true
	}
	return ec
}

// targetEnemies resolves a target to live enemy pointers.
func (ec *effectContext) targetEnemies(t game.Target) []*game.Enemy {
	enemies := ec.b.state.Enemies
	switch t {
	case game.TargetEnemy:
		if ec.target < 0 || enemies[ec.target].IsDefeated() {
			return nil
		}
		return []*game.Enemy{&enemies[ec.target]}
	case game.TargetAllEnemies:
		out := make([]*game.Enemy, 0, len(enemies))
		for i := range enemies {
			if !enemies[i].IsDefeated() {
				out = append(out, &enemies[i])
			}
		}
		return out
	}
	return nil
}

func (ec *effectContext) DealDamage(target game.Target, amount int) {
	if target == game.TargetPlayer {
		DealDamage(&ec.b.state.Player.Combatant, amount)
		return
	}
	for _, e := range ec.targetEnemies(target) {
		DealDamage(&e.Combatant, amount)
		if e.IsDefeated() {
			ec.b.log.Add(e.Name + " is defeated!")
		}
	}
}

func (ec *effectContext) GainBlock(amount int) {
	GainBlock(&ec.b.state.Player.Combatant, amount)
}

func (ec *effectContext) HealPlayer(amount int) {
	HealPlayer(&ec.b.state.Player, amount)
}

func (ec *effectContext) GainEnergy(amount int) {
	GainEnergy(&ec.b.state.Player, amount)
}

func (ec *effectContext) DrawCards(n int) {
	if n <= 0 {
		return
	}
	ec.b.drawCards(n)
}

func (ec *effectContext) DiscardCards(n int) {
	if n <= 0 {
		return
	}
	ec.b.discardCards(n)
}

func (ec *effectContext) ApplyStatus(target game.Target, eff game.StatusEffect) {
	if eff.ID == "" || eff.Duration <= 0 {
		return
	}
	if target == game.TargetPlayer {
		ApplyStatus(&ec.b.state.Player.Combatant, eff)
		return
	}
	for _, e := range ec.targetEnemies(target) {
		ApplyStatus(&e.Combatant, eff)
	}
}

func (ec *effectContext) ExhaustCard(cardID string) { ec.b.exhaustCard(cardID) }

func (ec *effectContext) AddToHand(card game.Card) { ec.b.addToHand(card) }

func (ec *effectContext) RemoveFromHand(cardID string) { ec.b.removeFromHand(cardID) }

func (ec *effectContext) Log(msg string) { ec.b.log.Add(msg) }

func (ec *effectContext) Player() game.Player { return clonePlayer(ec.player) }

func (ec *effectContext) Enemy() (game.Enemy, bool) {
	if !ec.hasEnemy {
		return game.Enemy{}, false
	}
	return cloneEnemy(ec.enemy), true
}

func (ec *effectContext) State() game.BattleState { return cloneState(&ec.state) }

func (ec *effectContext) Card() game.Card { return ec.card }

// describeTarget is used in log lines about the played card.
func (ec *effectContext) describeTarget() string {
	if !ec.hasEnemy {
		return "no target"
	}
	return ec.enemy.Name + " (slot " + strconv.Itoa(ec.target) + ")"
}
