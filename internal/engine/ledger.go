package engine

import (
	"math"

	"github.com/ericogr/deckbattle/internal/game"
)

// ApplyStatus appends eff to the combatant's ledger. Stacks are never
// merged: two poison entries both persist and both tick.
func ApplyStatus(c *game.Combatant, eff game.StatusEffect) {
	c.Statuses = append(c.Statuses, eff)
}

// HasStatus reports whether any stack of id is active.
func HasStatus(c *game.Combatant, id string) bool {
	for _, s := range c.Statuses {
		if s.ID == id && s.Duration > 0 {
			return true
		}
	}
	return false
}

// SumStatus sums Value across every active stack of id.
func SumStatus(c *game.Combatant, id string) float64 {
	total := 0.0
	for _, s := range c.Statuses {
		if s.ID == id && s.Duration > 0 {
			total += s.Value
		}
	}
	return total
}

// tickResult is the damage dealt by one damage-over-time pass.
type tickResult struct {
	poison int
	trap   int
}

func (t tickResult) total() int { return t.poison + t.trap }

// tickDamage applies damage-over-time stacks in insertion order before any
// duration is decremented. Poison always deals its value; when traps is set
// an explosive trap deals its value on its last turn (Duration == 1).
func tickDamage(c *game.Combatant, traps bool) tickResult {
	var res tickResult
	for _, s := range c.Statuses {
		if s.Duration <= 0 {
			continue
		}
		switch {
		case s.ID == game.StatusPoison:
			res.poison += DealDamage(c, statusAmount(s.Value))
		case traps && s.ID == game.StatusExplosiveTrap && s.Duration == 1:
			res.trap += DealDamage(c, statusAmount(s.Value))
		}
	}
	return res
}

// decay decrements every duration once and drops expired stacks.
func decay(c *game.Combatant) {
	kept := c.Statuses[:0]
	for _, s := range c.Statuses {
		s.Duration--
		if s.Duration > 0 {
			kept = append(kept, s)
		}
	}
	// clear the tail so dropped entries are not retained by the backing array
	for i := len(kept); i < len(c.Statuses); i++ {
		c.Statuses[i] = game.StatusEffect{}
	}
	c.Statuses = kept
}

func statusAmount(v float64) int {
	return int(math.Floor(v))
}
