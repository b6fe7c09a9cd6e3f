package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"fortio.org/log"
	"github.com/google/uuid"
)

const (
	MinRounds     = 1
	MaxRounds     = 10
	DefaultRounds = 5
)

// Recorder receives every finished round. Its errors are logged and do not
// stop the session.
type Recorder interface {
	RecordRound(result RoundResult) error
}

type SessionConfig struct {
	// ID names the session in logs and the ledger. Empty means a new UUID.
	ID          string
	Decks       int
	Rounds      int
	DealerPause time.Duration
	// Rand seeds the deck. Nil means a random seed.
	Rand *rand.Rand
}

// Summary is the tally handed back when a session ends.
type Summary struct {
	SessionID    string
	Wins         int
	Rounds       int
	RoundsPlayed int
	Message      string
}

type Session struct {
	ID string

	decks    int
	rounds   int
	pause    time.Duration
	sleep    func(time.Duration)
	deck     *Deck
	display  Display
	input    Input
	recorder Recorder

	wins   int
	played int
}

// ClampDecks forces a deck count into 1..10.
func ClampDecks(n int) int {
	if n > MaxDecks {
		return MaxDecks
	}
	if n < MinDecks {
		return MinDecks
	}
	return n
}

// ClampRounds caps the round count at 10 and falls back to the default of 5
// for anything below 1.
func ClampRounds(n int) int {
	if n > MaxRounds {
		return MaxRounds
	}
	if n < MinRounds {
		return DefaultRounds
	}
	return n
}

// NewSession builds the one deck used for every round of the session. The
// recorder may be nil.
func NewSession(cfg SessionConfig, display Display, input Input, recorder Recorder) (*Session, error) {
	decks := ClampDecks(cfg.Decks)
	rounds := ClampRounds(cfg.Rounds)
	if decks != cfg.Decks || rounds != cfg.Rounds {
		log.Infof("Clamped configuration: decks %d -> %d, rounds %d -> %d", cfg.Decks, decks, cfg.Rounds, rounds)
	}

	deck, err := NewStandardDeck(decks, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck: %w", err)
	}

	id := cfg.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &Session{
		ID:       id,
		decks:    decks,
		rounds:   rounds,
		pause:    cfg.DealerPause,
		sleep:    time.Sleep,
		deck:     deck,
		display:  display,
		input:    input,
		recorder: recorder,
	}, nil
}

func (s *Session) Decks() int {
	return s.decks
}

func (s *Session) Rounds() int {
	return s.rounds
}

func (s *Session) Deck() *Deck {
	return s.deck
}

// Run plays every round in order. On error the summary covers the rounds
// finished so far.
func (s *Session) Run() (Summary, error) {
	log.S(log.Info, "session started",
		log.Str("session", s.ID),
		log.Attr("decks", s.decks),
		log.Attr("rounds", s.rounds))

	s.display.Announce(fmt.Sprintf("A game of Blackjack with %d deck(s) and %d round(s).", s.decks, s.rounds))
	if err := s.input.PromptContinue("Press enter to continue."); err != nil {
		return s.summary(), err
	}

	for n := 1; n <= s.rounds; n++ {
		result, err := s.newRound(n).Play()
		if err != nil {
			return s.summary(), fmt.Errorf("round %d: %w", n, err)
		}

		s.played++
		if result.Win() {
			s.wins++
		}
		s.record(result)
		s.display.Announce(result.Outcome.Message())

		prompt := fmt.Sprintf("Press enter to advance to round %d/%d.", n+1, s.rounds)
		if n == s.rounds {
			prompt = "Press enter to display the final score."
		}
		if err := s.input.PromptContinue(prompt); err != nil {
			return s.summary(), err
		}
	}

	summary := s.summary()
	s.display.Announce(fmt.Sprintf("You won %d/%d rounds of Blackjack.", summary.Wins, summary.Rounds))
	s.display.Announce(summary.Message)
	s.display.Announce("Thank you for playing.")

	log.S(log.Info, "session finished",
		log.Str("session", s.ID),
		log.Attr("wins", summary.Wins),
		log.Attr("rounds", summary.Rounds))

	return summary, nil
}

func (s *Session) newRound(n int) *Round {
	r := NewRound(s.deck, s.display, s.input)
	r.Number = n
	r.Rounds = s.rounds
	r.pause = s.pause
	r.sleep = s.sleep
	return r
}

func (s *Session) record(result RoundResult) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordRound(result); err != nil {
		log.Errf("Failed to record round %d: %v", result.Round, err)
	}
}

func (s *Session) summary() Summary {
	return Summary{
		SessionID:    s.ID,
		Wins:         s.wins,
		Rounds:       s.rounds,
		RoundsPlayed: s.played,
		Message:      SummaryMessage(s.wins, s.rounds),
	}
}

// SummaryMessage grades the final score.
func SummaryMessage(wins, rounds int) string {
	switch {
	case wins == 0:
		return "Better luck next time."
	case wins == rounds:
		return "Pure luck I guess!"
	case wins*2 == rounds:
		return "Not bad!"
	case wins*2 > rounds:
		return "Impressive."
	default:
		return "Decent."
	}
}
