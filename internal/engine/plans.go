package engine

// --- Selection planning ------------------------------------------------

// PlaySelection plays several cards committed together, in the given order.
// The whole selection is rejected before anything happens when it is empty,
// larger than Rules.MaxSelection, names a card twice or a card not in hand,
// or when its summed cost exceeds the energy available right now. Once
// accepted, a card that left the hand or became unaffordable because of an
// earlier card is skipped. It returns the number of cards played.
func (b *Battle) PlaySelection(cardIDs []string, opts ...PlayOption) (int, error) {
	po := buildPlayOptions(opts)
	if err := b.checkPlayable(po); err != nil {
		return 0, err
	}
	if err := b.planSelection(cardIDs); err != nil {
		return 0, err
	}

	played := 0
	for _, id := range cardIDs {
		if b.Over() {
			break
		}
		i := indexOfCard(b.state.Hand, id)
		if i < 0 {
			b.log.Add("Selected card is no longer in hand; skipped")
			continue
		}
		if b.state.Hand[i].Cost > b.state.Player.Energy {
			b.log.Add("Not enough energy for " + b.state.Hand[i].Name + "; skipped")
			continue
		}
		b.resolveCard(i, po.enemy)
		played++
	}
	return played, nil
}

// planSelection validates a selection against the current hand and energy.
func (b *Battle) planSelection(cardIDs []string) error {
	if len(cardIDs) == 0 {
		return ErrEmptySelection
	}
	if len(cardIDs) > b.rules.MaxSelection {
		return ErrSelectionTooLarge
	}
	seen := make(map[string]struct{}, len(cardIDs))
	total := 0
	for _, id := range cardIDs {
		if _, dup := seen[id]; dup {
			return ErrDuplicateSelection
		}
		seen[id] = struct{}{}
		i := indexOfCard(b.state.Hand, id)
		if i < 0 {
			return ErrCardNotInHand
		}
		total += b.state.Hand[i].Cost
	}
	if total > b.state.Player.Energy {
		return ErrInsufficientEnergy
	}
	return nil
}
