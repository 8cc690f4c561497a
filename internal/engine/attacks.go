package engine

import (
	"strconv"

	"github.com/ericogr/deckbattle/internal/game"
)

// resolveEnemyActions lets every living enemy act in roster order.
func (b *Battle) resolveEnemyActions() {
	p := &b.state.Player
	for i := range b.state.Enemies {
		e := &b.state.Enemies[i]
		if e.IsDefeated() {
			continue
		}
		if HasStatus(&e.Combatant, game.StatusFreeze) {
			b.log.Add(e.Name + " is frozen and cannot act!")
			continue
		}
		if HasStatus(&p.Combatant, game.StatusShieldWall) {
			b.log.Add("Shield Wall negates " + e.Name + "'s attack!")
			continue
		}
		b.execEnemyAttack(e)
	}
}

// execEnemyAttack hits the player with the enemy's effective attack. Block
// soaks damage first; a landed hit triggers flame aura reflection.
func (b *Battle) execEnemyAttack(e *game.Enemy) {
	p := &b.state.Player
	atk := EffectiveAttack(e)
	blocked, taken := absorbHit(p, atk)

	switch {
	case atk == 0:
		b.log.Add(e.Name + " attacks but deals no damage")
	case taken == 0:
		b.log.Add(e.Name + " attacks for " + strconv.Itoa(atk) + " (block absorbs all " + strconv.Itoa(blocked) + ")")
	default:
		b.log.Add(e.Name + " attacks for " + strconv.Itoa(atk) + " (block " + strconv.Itoa(blocked) + ", player takes " + strconv.Itoa(taken) + ")")
	}

	if atk <= 0 || !HasStatus(&p.Combatant, game.StatusFlameAura) {
		return
	}
	reflected := DealDamage(&e.Combatant, statusAmount(SumStatus(&p.Combatant, game.StatusFlameAura)))
	if reflected > 0 {
		b.log.Add("Flame Aura burns " + e.Name + " for " + strconv.Itoa(reflected))
	}
}
