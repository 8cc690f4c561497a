package engine

import "github.com/ericogr/deckbattle/internal/game"

// drawCards moves up to n cards from the front of the deck into the hand.
// An empty deck is refilled by shuffling the discard pile; when both are
// empty, or the hand is full, drawing stops short. It returns the number of
// cards drawn.
func (b *Battle) drawCards(n int) int {
	drawn := 0
	for drawn < n {
		if len(b.state.Hand) >= b.rules.MaxHandSize {
			break
		}
		if len(b.state.Deck) == 0 {
			if len(b.state.DiscardPile) == 0 {
				break
			}
			b.reshuffle()
		}
		card := b.state.Deck[0]
		b.state.Deck = removeCardAt(b.state.Deck, 0)
		b.state.Hand = append(b.state.Hand, card)
		drawn++
	}
	return drawn
}

// reshuffle turns the discard pile into a freshly shuffled deck.
func (b *Battle) reshuffle() {
	deck := b.state.DiscardPile
	b.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	b.state.Deck = deck
	b.state.DiscardPile = []game.Card{}
	b.log.Add("Discard pile shuffled into the deck")
}

// discardCards moves up to n cards from the end of the hand to the discard
// pile, last card first.
func (b *Battle) discardCards(n int) int {
	moved := 0
	for moved < n && len(b.state.Hand) > 0 {
		last := len(b.state.Hand) - 1
		b.state.DiscardPile = append(b.state.DiscardPile, b.state.Hand[last])
		b.state.Hand = b.state.Hand[:last:last]
		moved++
	}
	return moved
}

// exhaustCard permanently removes the card with id from whichever pile holds
// it. The card being played is handled by the resolution pipeline.
func (b *Battle) exhaustCard(id string) bool {
	if b.inPlay != nil && b.inPlay.ID == id {
		b.exhaustInPlay = true
		return true
	}
	for _, pile := range []*[]game.Card{&b.state.Hand, &b.state.Deck, &b.state.DiscardPile} {
		if i := indexOfCard(*pile, id); i >= 0 {
			card := (*pile)[i]
			*pile = removeCardAt(*pile, i)
			b.state.Exhausted = append(b.state.Exhausted, card)
			b.log.Add(card.Name + " is exhausted")
			return true
		}
	}
	return false
}

// addToHand puts a new card into the hand, or onto the discard pile when the
// hand is full. A card whose id is already in the battle is rejected.
func (b *Battle) addToHand(card game.Card) bool {
	if card.ID == "" || b.ownsCard(card.ID) {
		b.log.Add("Cannot add " + card.Name + ": card id already in play")
		return false
	}
	if len(b.state.Hand) >= b.rules.MaxHandSize {
		b.state.DiscardPile = append(b.state.DiscardPile, card)
		b.log.Add("Hand is full; " + card.Name + " goes to the discard pile")
		return true
	}
	b.state.Hand = append(b.state.Hand, card)
	return true
}

// removeFromHand moves the card with id from the hand to the discard pile.
func (b *Battle) removeFromHand(id string) bool {
	i := indexOfCard(b.state.Hand, id)
	if i < 0 {
		return false
	}
	card := b.state.Hand[i]
	b.state.Hand = removeCardAt(b.state.Hand, i)
	b.state.DiscardPile = append(b.state.DiscardPile, card)
	return true
}

// ownsCard reports whether id is anywhere in the battle's card pool.
func (b *Battle) ownsCard(id string) bool {
	if b.inPlay != nil && b.inPlay.ID == id {
		return true
	}
	for _, pile := range [][]game.Card{b.state.Deck, b.state.Hand, b.state.DiscardPile, b.state.Exhausted} {
		if indexOfCard(pile, id) >= 0 {
			return true
		}
	}
	return false
}
