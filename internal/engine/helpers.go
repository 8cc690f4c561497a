package engine

import "github.com/ericogr/deckbattle/internal/game"

// cloneStatuses returns an independent copy of a ledger.
func cloneStatuses(in []game.StatusEffect) []game.StatusEffect {
	if in == nil {
		return nil
	}
	out := make([]game.StatusEffect, len(in))
	copy(out, in)
	return out
}

func clonePlayer(p game.Player) game.Player {
	p.Statuses = cloneStatuses(p.Statuses)
	return p
}

func cloneEnemy(e game.Enemy) game.Enemy {
	e.Statuses = cloneStatuses(e.Statuses)
	return e
}

func cloneEnemies(in []game.Enemy) []game.Enemy {
	out := make([]game.Enemy, len(in))
	for i := range in {
		out[i] = cloneEnemy(in[i])
	}
	return out
}

// cloneCards copies a pile. Tags are shared read-only between copies; the
// engine never mutates a card after construction.
func cloneCards(in []game.Card) []game.Card {
	out := make([]game.Card, len(in))
	copy(out, in)
	return out
}

func cloneState(s *game.BattleState) game.BattleState {
	return game.BattleState{
		Player:      clonePlayer(s.Player),
		Enemies:     cloneEnemies(s.Enemies),
		Deck:        cloneCards(s.Deck),
		Hand:        cloneCards(s.Hand),
		DiscardPile: cloneCards(s.DiscardPile),
		Exhausted:   cloneCards(s.Exhausted),
		Turn:        s.Turn,
		TurnCount:   s.TurnCount,
		Phase:       s.Phase,
	}
}

// indexOfCard returns the position of the card with id in pile, or -1.
func indexOfCard(pile []game.Card, id string) int {
	for i := range pile {
		if pile[i].ID == id {
			return i
		}
	}
	return -1
}

// removeCardAt removes pile[i] without aliasing the result onto the input's
// backing array.
func removeCardAt(pile []game.Card, i int) []game.Card {
	out := make([]game.Card, 0, len(pile)-1)
	out = append(out, pile[:i]...)
	return append(out, pile[i+1:]...)
}

// firstLivingEnemy returns the index of the first enemy with HP left, or -1.
func firstLivingEnemy(enemies []game.Enemy) int {
	for i := range enemies {
		if !enemies[i].IsDefeated() {
			return i
		}
	}
	return -1
}

func allEnemiesDefeated(enemies []game.Enemy) bool {
	return firstLivingEnemy(enemies) < 0
}

const playerName = "Player"
