package engine

import (
	"strconv"
	"strings"

	"github.com/ericogr/deckbattle/internal/game"
)

// beginPlayerTurn runs the start-of-turn sequence: block reset (unless
// barricade holds it), energy refill, player poison tick, player status
// decay, then the hand is topped up. The outcome is evaluated last.
func (b *Battle) beginPlayerTurn(next bool) {
	p := &b.state.Player
	b.state.Turn = game.TurnPlayer
	if next {
		b.state.TurnCount++
	}
	b.log.Add("Turn " + strconv.Itoa(b.state.TurnCount) + " begins")

	if HasStatus(&p.Combatant, game.StatusBarricade) {
		if p.Block > 0 {
			b.log.Add("Barricade keeps " + strconv.Itoa(p.Block) + " block")
		}
	} else {
		p.Block = 0
	}
	p.Energy = p.MaxEnergy

	b.logTick(playerName, tickDamage(&p.Combatant, false))
	decay(&p.Combatant)

	if missing := b.rules.HandSize - len(b.state.Hand); missing > 0 {
		b.drawCards(missing)
	}
	b.evaluate()
}

// logTick writes one aggregated line for a damage-over-time pass.
func (b *Battle) logTick(name string, res tickResult) {
	if res.total() == 0 {
		return
	}
	parts := make([]string, 0, 2)
	if res.poison > 0 {
		parts = append(parts, "poison "+strconv.Itoa(res.poison))
	}
	if res.trap > 0 {
		parts = append(parts, "explosive trap "+strconv.Itoa(res.trap))
	}
	b.log.Add(name + " takes " + strconv.Itoa(res.total()) + " status damage (" + strings.Join(parts, ", ") + ")")
}
