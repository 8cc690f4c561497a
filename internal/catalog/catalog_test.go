package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/engine"
	"github.com/ericogr/deckbattle/internal/game"
)

type keepOrder struct{}

func (keepOrder) Shuffle(n int, swap func(i, j int)) {}

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(config.Default().CardList)
	require.NoError(t, err)
	return c
}

func TestCatalog_Lookups(t *testing.T) {
	c := defaultCatalog(t)

	strike, ok := c.Get("strike")
	require.True(t, ok)
	assert.Equal(t, 1, strike.Cost)
	assert.Equal(t, []game.Tag{game.TagAttack}, strike.Tags)

	_, ok = c.Get("nope")
	assert.False(t, ok)

	list := c.List()
	require.NotEmpty(t, list)
	assert.Equal(t, "strike", list[0].ID)
	assert.Equal(t, "defend", list[1].ID)

	var draws []string
	for _, tpl := range c.ByTag(game.TagDraw) {
		draws = append(draws, tpl.ID)
	}
	assert.Equal(t, []string{"adrenaline", "quickDraw"}, draws)
	assert.Contains(t, c.Tags(), game.TagTrap)
}

func TestCatalog_RejectsDuplicatesAndUnknownKinds(t *testing.T) {
	entries := []config.CardEntry{
		{ID: "a", Name: "A", Effects: []config.EffectStep{{Kind: config.StepBlock, Amount: 1}}},
		{ID: "a", Name: "A", Effects: []config.EffectStep{{Kind: config.StepBlock, Amount: 1}}},
	}
	_, err := New(entries)
	assert.Error(t, err)

	_, err = New([]config.CardEntry{{ID: "b", Name: "B", Effects: []config.EffectStep{{Kind: "warp"}}}})
	assert.Error(t, err)
}

func TestBuildDeck_NumbersInstances(t *testing.T) {
	c := defaultCatalog(t)
	deck, err := c.BuildDeck([]config.DeckEntry{{Card: "strike", Count: 2}, {Card: "defend", Count: 1}, {Card: "strike", Count: 1}})
	require.NoError(t, err)

	ids := make([]string, 0, len(deck))
	for _, card := range deck {
		ids = append(ids, card.ID)
		assert.NotNil(t, card.Effect)
	}
	assert.Equal(t, []string{"strike#1", "strike#2", "defend#1", "strike#3"}, ids)
	assert.Equal(t, "strike", deck[3].TemplateID)

	_, err = c.BuildDeck([]config.DeckEntry{{Card: "ghost", Count: 1}})
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestInstance_DoesNotShareTags(t *testing.T) {
	c := defaultCatalog(t)
	tpl, _ := c.Get("hexBlade")
	card := tpl.Instance("x")
	card.Tags[0] = game.TagHeal
	again, _ := c.Get("hexBlade")
	assert.Equal(t, game.TagAttack, again.Tags[0])
}

// battleWith starts a battle whose deck is the given catalog cards, in order.
func battleWith(t *testing.T, c *Catalog, enemy game.Enemy, ids ...string) *engine.Battle {
	t.Helper()
	entries := make([]config.DeckEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, config.DeckEntry{Card: id, Count: 1})
	}
	deck, err := c.BuildDeck(entries)
	require.NoError(t, err)
	b, err := engine.NewBattle(engine.Setup{
		Player:  game.Player{Combatant: game.Combatant{HP: 30, MaxHP: 30}, Energy: 3, MaxEnergy: 3},
		Enemies: []game.Enemy{enemy},
		Deck:    deck,
	}, keepOrder{})
	require.NoError(t, err)
	return b
}

func slime() game.Enemy {
	return game.Enemy{ID: "slime", Name: "Slime", BaseAttack: 8, Combatant: game.Combatant{HP: 20, MaxHP: 20}}
}

func TestDefaultCards_InBattle(t *testing.T) {
	c := defaultCatalog(t)

	t.Run("strike", func(t *testing.T) {
		b := battleWith(t, c, slime(), "strike")
		require.NoError(t, b.PlayCard("strike#1"))
		assert.Equal(t, 14, b.State().Enemies[0].HP)
	})

	t.Run("hexBlade poisons", func(t *testing.T) {
		b := battleWith(t, c, slime(), "hexBlade")
		require.NoError(t, b.PlayCard("hexBlade#1"))
		s := b.State()
		assert.Equal(t, 14, s.Enemies[0].HP)
		require.Len(t, s.Enemies[0].Statuses, 1)
		assert.Equal(t, game.StatusPoison, s.Enemies[0].Statuses[0].ID)
		assert.Equal(t, 3, s.Enemies[0].Statuses[0].Duration)
	})

	t.Run("adrenaline exhausts and draws", func(t *testing.T) {
		deck := []string{"adrenaline", "strike", "strike", "strike", "strike", "defend"}
		b := battleWith(t, c, slime(), deck...)
		require.NoError(t, b.PlayCard("adrenaline#1"))
		s := b.State()
		assert.Equal(t, 3, s.Player.Energy)
		assert.Len(t, s.Hand, 5)
		require.Len(t, s.Exhausted, 1)
		assert.Equal(t, "adrenaline#1", s.Exhausted[0].ID)
	})

	t.Run("weaken lowers the next attack", func(t *testing.T) {
		b := battleWith(t, c, slime(), "weaken")
		require.NoError(t, b.PlayCard("weaken#1"))
		require.NoError(t, b.EndTurn())
		assert.Equal(t, 24, b.State().Player.HP)
	})

	t.Run("barricade keeps block", func(t *testing.T) {
		b := battleWith(t, c, slime(), "barricade")
		require.NoError(t, b.PlayCard("barricade#1"))
		require.NoError(t, b.EndTurn())
		s := b.State()
		assert.Equal(t, 30, s.Player.HP)
		assert.Equal(t, 0, s.Player.Block)
	})

	t.Run("frost nova freezes", func(t *testing.T) {
		b := battleWith(t, c, slime(), "frostNova")
		require.NoError(t, b.PlayCard("frostNova#1"))
		require.NoError(t, b.EndTurn())
		assert.Equal(t, 30, b.State().Player.HP)
	})
}
