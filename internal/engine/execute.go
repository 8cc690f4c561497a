package engine

import (
	"fmt"
	"strconv"

	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/game"
	"github.com/ericogr/deckbattle/internal/logging"
)

type playOptions struct {
	enemy int
}

// PlayOption customizes a single card play.
type PlayOption func(*playOptions)

// AtEnemy aims the card at the enemy in slot i. Without it the first living
// enemy is targeted.
func AtEnemy(i int) PlayOption {
	return func(o *playOptions) { o.enemy = i }
}

func buildPlayOptions(opts []PlayOption) playOptions {
	po := playOptions{enemy: -1}
	for _, o := range opts {
		o(&po)
	}
	return po
}

// PlayCard plays the card with cardID from the hand. The energy cost is
// debited, the effect runs exactly once, and the card then moves to the
// discard pile (or out of play when it exhausts). The outcome is evaluated
// after resolution.
func (b *Battle) PlayCard(cardID string, opts ...PlayOption) error {
	po := buildPlayOptions(opts)
	if err := b.checkPlayable(po); err != nil {
		return err
	}
	i := indexOfCard(b.state.Hand, cardID)
	if i < 0 {
		return ErrCardNotInHand
	}
	if b.state.Hand[i].Cost > b.state.Player.Energy {
		return ErrInsufficientEnergy
	}
	b.resolveCard(i, po.enemy)
	return nil
}

func (b *Battle) checkPlayable(po playOptions) error {
	if b.Over() {
		return ErrBattleOver
	}
	if b.state.Turn != game.TurnPlayer {
		return ErrNotPlayerTurn
	}
	if po.enemy >= len(b.state.Enemies) || po.enemy < -1 {
		return ErrInvalidTarget
	}
	return nil
}

// resolveCard runs the card pipeline for hand[i]. The card leaves the hand
// before its effect runs so hand-manipulating primitives can never route it
// twice.
func (b *Battle) resolveCard(i int, enemy int) {
	card := b.state.Hand[i]
	b.state.Hand = removeCardAt(b.state.Hand, i)
	b.state.Player.Energy -= card.Cost

	target := enemy
	if target < 0 {
		target = firstLivingEnemy(b.state.Enemies)
	}

	b.inPlay = &card
	b.exhaustInPlay = false
	ec := newEffectContext(b, card, target)
	b.log.Add("Player plays " + card.Name + " (cost " + strconv.Itoa(card.Cost) + ") at " + ec.describeTarget())
	b.invoke(ec)
	b.inPlay = nil

	if card.Exhaust || b.exhaustInPlay {
		b.state.Exhausted = append(b.state.Exhausted, card)
		b.log.Add(card.Name + " is exhausted")
	} else {
		b.state.DiscardPile = append(b.state.DiscardPile, card)
	}
	b.exhaustInPlay = false
	b.evaluate()
}

// invoke runs the card effect. A panicking effect is logged and treated as
// having finished; whatever it applied before panicking stays applied.
func (b *Battle) invoke(ec *effectContext) {
	if ec.card.Effect == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Error("card effect panicked", fmt.Errorf("%v", r), logging.Fields{constants.LogFieldCardID: ec.card.ID})
			b.log.Add(ec.card.Name + " fizzles")
		}
	}()
	ec.card.Effect.Resolve(ec)
}
