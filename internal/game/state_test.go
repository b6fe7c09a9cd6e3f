package game

import (
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playRound(t *testing.T, deck *Deck, actions ...string) (RoundResult, *fakeDisplay, *fakeInput) {
	t.Helper()
	display := &fakeDisplay{}
	input := &fakeInput{actions: actions}
	result, err := NewRound(deck, display, input).Play()
	require.NoError(t, err)
	return result, display, input
}

func TestRound_BlackjackOnDeal(t *testing.T) {
	result, display, input := playRound(t, stackedDeck(Ace, King, Nine))

	assert.Equal(t, PlayerBlackjack, result.Outcome)
	assert.True(t, result.Win())
	assert.Equal(t, 0, input.prompted)
	assert.Equal(t, 1, result.DealerCards)
	require.Len(t, display.views, 1)
	assert.Equal(t, PhaseDealing, display.views[0].Phase)
	assert.Len(t, display.views[0].Player, 2)
	assert.Len(t, display.views[0].Dealer, 1)
}

func TestRound_UnrecognizedInputDrawsNothing(t *testing.T) {
	deck := stackedDeck(Ten, Six, Nine, Eight, Two)
	result, display, input := playRound(t, deck, "x", "", "hitme", "h")

	assert.Equal(t, PlayerBust, result.Outcome)
	assert.Equal(t, 24, result.PlayerTotal)
	assert.Equal(t, 4, input.prompted)
	assert.Equal(t, 1, deck.Remaining())
	assert.Len(t, display.views, 2)
}

func TestRound_HitTo21SkipsDealer(t *testing.T) {
	result, _, _ := playRound(t, stackedDeck(Five, Six, Nine, Ten, Two), "HIT")

	assert.Equal(t, PlayerWin21, result.Outcome)
	assert.Equal(t, 3, result.PlayerCards)
	assert.Equal(t, 1, result.DealerCards)
}

func TestRound_TwoAcesOnDeal(t *testing.T) {
	result, display, _ := playRound(t, stackedDeck(Ace, Ace, Five, Nine), " hit ")

	assert.Equal(t, 12, display.views[0].PlayerTotal)
	assert.Equal(t, PlayerWin21, result.Outcome)
}

func TestRound_DealerDrawsUntil16(t *testing.T) {
	deck := stackedDeck(Ten, Eight, Five, Six, Three, Nine, Two)
	result, display, _ := playRound(t, deck, "stand")

	assert.Equal(t, DealerBust, result.Outcome)
	assert.Equal(t, 23, result.DealerTotal)
	assert.Equal(t, 4, result.DealerCards)
	assert.Equal(t, 1, deck.Remaining())

	var totals []int
	for _, v := range display.views {
		if v.Phase == PhaseDealerTurn {
			totals = append(totals, v.DealerTotal)
		}
	}
	assert.Equal(t, []int{11, 14, 23}, totals)
}

func TestRound_DealerStopsOn16(t *testing.T) {
	result, _, _ := playRound(t, stackedDeck(Ten, Nine, Ten, Six, Five), "s")

	assert.Equal(t, 16, result.DealerTotal)
	assert.Equal(t, PlayerWinByValue, result.Outcome)
}

func TestRound_DealerBlackjack(t *testing.T) {
	result, _, _ := playRound(t, stackedDeck(Ten, Nine, Ace, King), "S")

	assert.Equal(t, DealerBlackjack, result.Outcome)
	assert.False(t, result.Win())
}

func TestRound_DealerSoftAceReconciled(t *testing.T) {
	result, _, _ := playRound(t, stackedDeck(Ten, Eight, Ace, Two, Nine, Five), "S")

	// A+2 = 13, +9 = 22 -> 12, +5 = 17
	assert.Equal(t, 17, result.DealerTotal)
	assert.Equal(t, PlayerWinByValue, result.Outcome)
}

func TestRound_DealerPause(t *testing.T) {
	var slept []time.Duration
	r := NewRound(stackedDeck(Ten, Nine, Five, Five, Nine), &fakeDisplay{}, &fakeInput{actions: []string{"S"}})
	r.pause = 10 * time.Millisecond
	r.sleep = func(d time.Duration) { slept = append(slept, d) }

	_, err := r.Play()
	require.NoError(t, err)
	assert.Len(t, slept, 2)
	assert.Equal(t, PhaseResolved, r.Phase())
}

func TestRound_DeckExhausted(t *testing.T) {
	_, err := NewRound(stackedDeck(Ten, Nine), &fakeDisplay{}, &fakeInput{}).Play()
	assert.ErrorIs(t, err, ErrDeckExhausted)

	_, err = NewRound(stackedDeck(Two, Three, Four), &fakeDisplay{}, &fakeInput{actions: []string{"H"}}).Play()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestRound_InputError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewRound(stackedDeck(Two, Three, Four), &fakeDisplay{}, &fakeInput{err: boom}).Play()
	assert.ErrorIs(t, err, boom)

	_, err = NewRound(stackedDeck(Two, Three, Four), &fakeDisplay{}, &fakeInput{}).Play()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRound_DealerPolicy(t *testing.T) {
	deck, err := NewStandardDeck(MaxDecks, rand.New(rand.NewPCG(3, 5)))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		display := &fakeDisplay{}
		result, err := NewRound(deck, display, &standInput{}).Play()
		require.NoError(t, err)

		dealerTotals := []int{}
		for _, v := range display.views {
			dealerTotals = append(dealerTotals, v.DealerTotal)
		}
		last := len(dealerTotals) - 1
		for _, total := range dealerTotals[:last] {
			assert.Less(t, total, DealerStandsOn)
		}
		if display.views[0].PlayerTotal < Blackjack {
			assert.GreaterOrEqual(t, result.DealerTotal, DealerStandsOn)
		} else {
			assert.Equal(t, 1, result.DealerCards)
		}
	}
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, ActionHit, ParseAction("h"))
	assert.Equal(t, ActionHit, ParseAction("Hit\n"))
	assert.Equal(t, ActionStand, ParseAction("S"))
	assert.Equal(t, ActionStand, ParseAction("stand"))
	assert.Equal(t, ActionUnknown, ParseAction("double"))
	assert.Equal(t, ActionUnknown, ParseAction(""))
}
