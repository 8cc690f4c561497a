// Package autoplay drives a battle without a human: every player turn it
// keeps playing the most expensive affordable card at the weakest living
// enemy, then ends the turn.
package autoplay

import (
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/game"
)

// maxPlaysPerTurn bounds zero-cost draw loops.
const maxPlaysPerTurn = 50

// Result summarises an automated run.
type Result struct {
	Phase       game.Phase
	Turns       int
	CardsPlayed int
}

// Run plays b until it ends or maxTurns player turns were taken. A battle
// still running at the cap reports PhaseBattle.
func Run(b *engine.Battle, maxTurns int) Result {
	res := Result{}
	for !b.Over() && b.State().TurnCount <= maxTurns {
		res.CardsPlayed += playTurn(b)
		if b.Over() {
			break
		}
		if err := b.EndTurn(); err != nil {
			break
		}
	}
	st := b.State()
	res.Phase = st.Phase
	res.Turns = st.TurnCount
	return res
}

func playTurn(b *engine.Battle) int {
	played := 0
	for played < maxPlaysPerTurn && !b.Over() {
		st := b.State()
		card, ok := pickCard(st)
		if !ok {
			break
		}
		target := pickTarget(st)
		if target < 0 {
			break
		}
		if err := b.PlayCard(card, engine.AtEnemy(target)); err != nil {
			break
		}
		played++
	}
	return played
}

// pickCard returns the costliest card the player can pay for, first in hand
// order on ties.
func pickCard(st game.BattleState) (string, bool) {
	best := -1
	for i, c := range st.Hand {
		if c.Cost > st.Player.Energy {
			continue
		}
		if best < 0 || c.Cost > st.Hand[best].Cost {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return st.Hand[best].ID, true
}

// pickTarget returns the slot of the living enemy with the least HP, or -1.
func pickTarget(st game.BattleState) int {
	target := -1
	for i, e := range st.Enemies {
		if e.IsDefeated() {
			continue
		}
		if target < 0 || e.HP < st.Enemies[target].HP {
			target = i
		}
	}
	return target
}
