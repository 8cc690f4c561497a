package engine

import "github.com/ericogr/deckbattle/internal/game"

// DealDamage removes amount HP from c, ignoring block, and returns the HP
// actually lost. Negative amounts deal nothing; HP never drops below zero.
func DealDamage(c *game.Combatant, amount int) int {
	if amount <= 0 || c.HP <= 0 {
		return 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}

// GainBlock adds amount to c's block. There is no upper bound.
func GainBlock(c *game.Combatant, amount int) {
	if amount <= 0 {
		return
	}
	c.Block += amount
}

// HealPlayer restores up to amount HP without exceeding MaxHP and returns
// the HP gained.
func HealPlayer(p *game.Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// GainEnergy adds amount energy clamped to [0, MaxEnergy] and returns the
// change.
func GainEnergy(p *game.Player, amount int) int {
	before := p.Energy
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
	if p.Energy < 0 {
		p.Energy = 0
	}
	return p.Energy - before
}

// absorbHit resolves an enemy attack against the player: block is consumed
// first and the remainder comes off HP.
func absorbHit(p *game.Player, amount int) (blocked, taken int) {
	if amount <= 0 {
		return 0, 0
	}
	blocked = amount
	if blocked > p.Block {
		blocked = p.Block
	}
	p.Block -= blocked
	taken = DealDamage(&p.Combatant, amount-blocked)
	return blocked, taken
}
