// Package catalog turns configured card templates into playable cards.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/game"
)

var ErrUnknownCard = errors.New("unknown card")

// Template is a catalog card. Cards built from it share its effect.
type Template struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cost        int         `json:"cost"`
	Tags        []game.Tag  `json:"tags"`
	Rarity      game.Rarity `json:"rarity,omitempty"`
	Exhaust     bool        `json:"exhaust"`
	Ethereal    bool        `json:"ethereal"`
	effect      Program
}

// Catalog is an immutable set of card templates keyed by id.
type Catalog struct {
	byID  map[string]Template
	order []string
}

// New builds a catalog from configured card entries. Entries are expected to
// have passed config validation; an unknown step kind is still reported.
func New(entries []config.CardEntry) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Template, len(entries))}
	for _, e := range entries {
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate card id '%s'", e.ID)
		}
		prog, err := Compile(e.Effects)
		if err != nil {
			return nil, fmt.Errorf("card '%s': %w", e.ID, err)
		}
		tags := make([]game.Tag, 0, len(e.Tags))
		for _, t := range e.Tags {
			tags = append(tags, game.Tag(t))
		}
		c.byID[e.ID] = Template{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Cost:        e.Cost,
			Tags:        tags,
			Rarity:      game.Rarity(e.Rarity),
			Exhaust:     e.Exhaust,
			Ethereal:    e.Ethereal,
			effect:      prog,
		}
		c.order = append(c.order, e.ID)
	}
	return c, nil
}

// Get returns the template with id.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// List returns every template in configuration order.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ByTag returns the templates carrying tag, in configuration order.
func (c *Catalog) ByTag(tag game.Tag) []Template {
	var out []Template
	for _, id := range c.order {
		t := c.byID[id]
		for _, x := range t.Tags {
			if x == tag {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Instance builds a card with the given instance id from the template.
func (t Template) Instance(instanceID string) game.Card {
	tags := make([]game.Tag, len(t.Tags))
	copy(tags, t.Tags)
	return game.Card{
		ID:          instanceID,
		TemplateID:  t.ID,
		Name:        t.Name,
		Description: t.Description,
		Cost:        t.Cost,
		Tags:        tags,
		Rarity:      t.Rarity,
		Exhaust:     t.Exhaust,
		Ethereal:    t.Ethereal,
		Effect:      t.effect,
	}
}

// BuildDeck expands deck entries into card instances numbered per template
// ("strike#1", "strike#2", ...), in entry order.
func (c *Catalog) BuildDeck(entries []config.DeckEntry) ([]game.Card, error) {
	seq := make(map[string]int)
	var deck []game.Card
	for _, e := range entries {
		t, ok := c.byID[e.Card]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, e.Card)
		}
		for i := 0; i < e.Count; i++ {
			seq[t.ID]++
			deck = append(deck, t.Instance(t.ID+"#"+strconv.Itoa(seq[t.ID])))
		}
	}
	return deck, nil
}

// Tags returns the distinct tags used by the catalog, sorted.
func (c *Catalog) Tags() []game.Tag {
	seen := make(map[game.Tag]struct{})
	for _, t := range c.byID {
		for _, x := range t.Tags {
			seen[x] = struct{}{}
		}
	}
	out := make([]game.Tag, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
