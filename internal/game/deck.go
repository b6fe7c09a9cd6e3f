package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	MinDecks = 1
	MaxDecks = 10
)

var (
	ErrInvalidDeckCount = errors.New("deck count must be at least 1")
	ErrDeckExhausted    = errors.New("deck exhausted")
)

// Deck is the shoe for a whole session. Cards leave it on Draw and never come
// back, so it only ever shrinks.
type Deck struct {
	cards []Card
	size  int
	pick  func(n int) int
}

// NewDeck builds decks copies of every rank and suit combination. Each copy
// holds its own Card instances, told apart by ID. A nil rng gets a randomly
// seeded source.
func NewDeck(ranks []Rank, suits []Suit, values map[Rank]int, decks int, rng *rand.Rand) (*Deck, error) {
	if decks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeckCount, decks)
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	d := &Deck{
		cards: make([]Card, 0, len(ranks)*len(suits)*decks),
		pick:  rng.IntN,
	}

	id := 0
	for i := 0; i < decks; i++ {
		for _, rank := range ranks {
			for _, suit := range suits {
				d.cards = append(d.cards, Card{ID: id, Suit: suit, Rank: rank, Value: values[rank]})
				id++
			}
		}
	}
	d.size = len(d.cards)

	return d, nil
}

func NewStandardDeck(decks int, rng *rand.Rand) (*Deck, error) {
	return NewDeck(Ranks, Suits, CardValues, decks, rng)
}

// Draw takes a uniformly random card out of the deck.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	i := d.pick(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Size is the number of cards the deck was built with.
func (d *Deck) Size() int {
	return d.size
}
