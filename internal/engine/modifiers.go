package engine

import (
	"math"

	"github.com/ericogr/deckbattle/internal/game"
)

// --- Modifier helpers --------------------------------------------------

// EffectiveAttack returns the enemy's attack after status modifiers. Weaken
// scales the base attack by (1 - summed weaken value); corrupt forces zero
// regardless of weaken.
func EffectiveAttack(e *game.Enemy) int {
	a := e.BaseAttack
	if HasStatus(&e.Combatant, game.StatusWeaken) {
		ratio := SumStatus(&e.Combatant, game.StatusWeaken)
		a = int(math.Floor(float64(a) * (1.0 - ratio)))
	}
	if HasStatus(&e.Combatant, game.StatusCorrupt) {
		a = 0
	}
	if a < 0 {
		a = 0
	}
	return a
}
