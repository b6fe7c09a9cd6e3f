package game

import (
	"io"
)

// stackedDeck returns a deck that deals the given ranks in order.
func stackedDeck(ranks ...Rank) *Deck {
	d := &Deck{pick: func(int) int { return 0 }}
	for i, r := range ranks {
		d.cards = append(d.cards, Card{ID: i, Suit: Spades, Rank: r, Value: CardValues[r]})
	}
	d.size = len(d.cards)
	return d
}

func handOf(ranks ...Rank) *Hand {
	h := NewHand()
	for i, r := range ranks {
		h.Add(Card{ID: i, Suit: Hearts, Rank: r, Value: CardValues[r]})
	}
	return h
}

type fakeDisplay struct {
	views    []View
	messages []string
}

func (d *fakeDisplay) Render(v View) {
	d.views = append(d.views, v)
}

func (d *fakeDisplay) Announce(message string) {
	d.messages = append(d.messages, message)
}

type fakeInput struct {
	actions  []string
	prompted int
	prompts  []string
	err      error
}

func (in *fakeInput) PromptAction() (string, error) {
	in.prompted++
	if in.err != nil {
		return "", in.err
	}
	if len(in.actions) == 0 {
		return "", io.EOF
	}
	a := in.actions[0]
	in.actions = in.actions[1:]
	return a, nil
}

func (in *fakeInput) PromptContinue(message string) error {
	in.prompts = append(in.prompts, message)
	return nil
}

// standInput stands on every prompt.
type standInput struct {
	fakeInput
}

func (in *standInput) PromptAction() (string, error) {
	in.prompted++
	return "S", nil
}

type fakeRecorder struct {
	results []RoundResult
	err     error
}

func (r *fakeRecorder) RecordRound(result RoundResult) error {
	r.results = append(r.results, result)
	return r.err
}
