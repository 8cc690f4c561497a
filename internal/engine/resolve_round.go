package engine

import "github.com/ericogr/deckbattle/internal/game"

// CommitPlayerTurn closes the player's action phase. Ethereal cards still in
// hand are discarded and the turn passes to the enemies. Call
// ResolveEnemyTurn afterwards; any delay in between is presentation only.
func (b *Battle) CommitPlayerTurn() error {
	if b.Over() {
		return ErrBattleOver
	}
	if b.state.Turn != game.TurnPlayer {
		return ErrNotPlayerTurn
	}
	kept := make([]game.Card, 0, len(b.state.Hand))
	for _, c := range b.state.Hand {
		if c.Ethereal {
			b.state.DiscardPile = append(b.state.DiscardPile, c)
			b.log.Add(c.Name + " fades away")
			continue
		}
		kept = append(kept, c)
	}
	b.state.Hand = kept
	b.state.Turn = game.TurnEnemy
	b.log.Add("Player ends the turn")
	return nil
}

// ResolveEnemyTurn runs the whole enemy turn to completion: enemy actions,
// damage-over-time ticks, status decay on every combatant and outcome
// evaluation. While the battle goes on, the next player turn begins before
// it returns.
func (b *Battle) ResolveEnemyTurn() error {
	if b.Over() {
		return ErrBattleOver
	}
	if b.state.Turn != game.TurnEnemy {
		return ErrNotEnemyTurn
	}

	b.resolveEnemyActions()

	for i := range b.state.Enemies {
		e := &b.state.Enemies[i]
		b.logTick(e.Name, tickDamage(&e.Combatant, true))
	}
	b.logTick(playerName, tickDamage(&b.state.Player.Combatant, false))

	for i := range b.state.Enemies {
		decay(&b.state.Enemies[i].Combatant)
	}
	decay(&b.state.Player.Combatant)

	if b.evaluate() {
		return nil
	}
	b.beginPlayerTurn(true)
	return nil
}

// EndTurn is CommitPlayerTurn immediately followed by ResolveEnemyTurn.
func (b *Battle) EndTurn() error {
	if err := b.CommitPlayerTurn(); err != nil {
		return err
	}
	return b.ResolveEnemyTurn()
}

// evaluate checks the enemies first, then the player, and moves the battle
// into its terminal phase. It reports whether the battle is over.
func (b *Battle) evaluate() bool {
	if b.Over() {
		return true
	}
	switch {
	case allEnemiesDefeated(b.state.Enemies):
		b.state.Phase = game.PhaseVictory
		b.log.Add("All enemies defeated. Victory!")
	case b.state.Player.IsDefeated():
		b.state.Phase = game.PhaseDefeat
		b.log.Add("The player has fallen. Defeat!")
	}
	return b.Over()
}
