package game

const (
	Blackjack = 21
	aceDrop   = 10
)

// Hand holds one party's cards for a single round. hard[i] is set once the
// Ace at cards[i] has been downgraded from 11 to 1; it is never cleared.
type Hand struct {
	cards []Card
	hard  []bool
}

func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 10),
		hard:  make([]bool, 0, 10),
	}
}

// Add appends a card and reconciles Aces, returning the new total.
func (h *Hand) Add(c Card) int {
	h.cards = append(h.cards, c)
	h.hard = append(h.hard, false)
	return h.Reconcile()
}

// Value is the effective value of the i-th card.
func (h *Hand) Value(i int) int {
	if h.hard[i] {
		return 1
	}
	return h.cards[i].Value
}

func (h *Hand) Total() int {
	total := 0
	for i := range h.cards {
		total += h.Value(i)
	}
	return total
}

// Reconcile walks the Aces in deal order and downgrades soft ones while the
// hand is over 21. Running it again on a reconciled hand changes nothing.
func (h *Hand) Reconcile() int {
	total := h.Total()
	for i, c := range h.cards {
		if total <= Blackjack {
			break
		}
		if c.IsAce() && !h.hard[i] {
			h.hard[i] = true
			total -= aceDrop
		}
	}
	return total
}

// Soft reports whether an Ace in the hand still counts as 11.
func (h *Hand) Soft() bool {
	for i, c := range h.cards {
		if c.IsAce() && !h.hard[i] {
			return true
		}
	}
	return false
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand's cards.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == Blackjack
}

func (h *Hand) IsBust() bool {
	return h.Total() > Blackjack
}
