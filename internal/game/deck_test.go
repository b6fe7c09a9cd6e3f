package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardDeck_Size(t *testing.T) {
	for decks := MinDecks; decks <= MaxDecks; decks++ {
		d, err := NewStandardDeck(decks, nil)
		require.NoError(t, err)
		assert.Equal(t, 52*decks, d.Remaining())
		assert.Equal(t, 52*decks, d.Size())
	}
}

func TestNewDeck_InvalidCount(t *testing.T) {
	for _, decks := range []int{0, -1} {
		d, err := NewStandardDeck(decks, nil)
		assert.ErrorIs(t, err, ErrInvalidDeckCount)
		assert.Nil(t, d)
	}
}

func TestNewDeck_MultipleDecksMultiplicity(t *testing.T) {
	d, err := NewStandardDeck(3, nil)
	require.NoError(t, err)

	counts := map[string]int{}
	ids := map[int]bool{}
	for _, c := range d.cards {
		counts[c.String()]++
		assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
		ids[c.ID] = true
		assert.Equal(t, CardValues[c.Rank], c.Value)
	}

	assert.Len(t, counts, 52)
	for k, v := range counts {
		assert.Equal(t, 3, v, "card %s", k)
	}
}

func TestDeck_DrawRemovesCard(t *testing.T) {
	d, err := NewStandardDeck(2, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)

	seen := map[int]bool{}
	for want := d.Size() - 1; want >= 0; want-- {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c.ID], "card %d drawn twice", c.ID)
		seen[c.ID] = true
		assert.Equal(t, want, d.Remaining())
	}

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 0, d.Remaining())
}

func TestDeck_SeededDrawsRepeat(t *testing.T) {
	a, err := NewStandardDeck(1, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)
	b, err := NewStandardDeck(1, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		assert.Equal(t, ca, cb)
	}
}

func TestNewDeck_CustomRanks(t *testing.T) {
	d, err := NewDeck([]Rank{Ace}, []Suit{Spades, Hearts}, CardValues, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())

	for d.Remaining() > 0 {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.True(t, c.IsAce())
		assert.Equal(t, 11, c.Value)
	}
}
