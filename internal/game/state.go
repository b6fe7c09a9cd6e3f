package game

import (
	"fmt"
	"strings"
	"time"

	"fortio.org/log"
)

// DealerStandsOn is the total at which the dealer stops drawing.
const DealerStandsOn = 16

type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// View is a snapshot of the table handed to a Display. It owns copies of the
// cards so rendering can never touch the live hands.
type View struct {
	Round         int
	Rounds        int
	Phase         Phase
	Dealer        []Card
	DealerTotal   int
	Player        []Card
	PlayerTotal   int
	DeckRemaining int
}

type Display interface {
	Render(v View)
	Announce(message string)
}

type Input interface {
	// PromptAction blocks for one line of player input.
	PromptAction() (string, error)
	PromptContinue(message string) error
}

type Action int

const (
	ActionUnknown Action = iota
	ActionHit
	ActionStand
)

// ParseAction accepts H, HIT, S and STAND in any case.
func ParseAction(s string) Action {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HIT":
		return ActionHit
	case "S", "STAND":
		return ActionStand
	}
	return ActionUnknown
}

// RoundResult is what a finished round reports back to the session.
type RoundResult struct {
	Round       int
	Outcome     Outcome
	PlayerTotal int
	PlayerCards int
	DealerTotal int
	DealerCards int
}

func (r RoundResult) Win() bool {
	return r.Outcome.Win()
}

// Round plays a single hand of Blackjack against the shared deck.
type Round struct {
	Number int
	Rounds int

	deck    *Deck
	display Display
	input   Input
	pause   time.Duration
	sleep   func(time.Duration)

	phase  Phase
	player *Hand
	dealer *Hand
}

func NewRound(deck *Deck, display Display, input Input) *Round {
	return &Round{
		Number:  1,
		Rounds:  1,
		deck:    deck,
		display: display,
		input:   input,
		sleep:   time.Sleep,
		player:  NewHand(),
		dealer:  NewHand(),
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Play runs the round from the deal to the outcome.
func (r *Round) Play() (RoundResult, error) {
	if err := r.deal(); err != nil {
		return RoundResult{}, err
	}

	stood, err := r.playerTurn()
	if err != nil {
		return RoundResult{}, err
	}

	if stood {
		if err := r.dealerTurn(); err != nil {
			return RoundResult{}, err
		}
	}

	r.phase = PhaseResolved
	result := RoundResult{
		Round:       r.Number,
		Outcome:     Resolve(r.player, r.dealer),
		PlayerTotal: r.player.Total(),
		PlayerCards: r.player.Len(),
		DealerTotal: r.dealer.Total(),
		DealerCards: r.dealer.Len(),
	}

	log.S(log.Debug, "round resolved",
		log.Attr("round", r.Number),
		log.Str("outcome", result.Outcome.String()),
		log.Attr("player", result.PlayerTotal),
		log.Attr("player_soft", r.player.Soft()),
		log.Attr("dealer", result.DealerTotal),
		log.Attr("dealer_soft", r.dealer.Soft()))

	return result, nil
}

func (r *Round) deal() error {
	r.phase = PhaseDealing

	for i := 0; i < 2; i++ {
		if err := r.hit(r.player); err != nil {
			return fmt.Errorf("failed to deal player: %w", err)
		}
	}
	if err := r.hit(r.dealer); err != nil {
		return fmt.Errorf("failed to deal dealer: %w", err)
	}

	if r.player.IsBlackjack() {
		log.Debugf("Round %d: player dealt a blackjack", r.Number)
	}
	r.render()
	return nil
}

// playerTurn reports whether the player stood. A player who reaches 21 or
// busts leaves the loop without standing and the dealer does not play.
func (r *Round) playerTurn() (bool, error) {
	r.phase = PhasePlayerTurn

	for r.player.Total() < Blackjack && r.dealer.Total() < Blackjack {
		line, err := r.input.PromptAction()
		if err != nil {
			return false, fmt.Errorf("failed to read action: %w", err)
		}

		switch ParseAction(line) {
		case ActionHit:
			if err := r.hit(r.player); err != nil {
				return false, fmt.Errorf("failed to hit: %w", err)
			}
			if r.player.IsBust() {
				log.Debugf("Round %d: player busts with %d", r.Number, r.player.Total())
			}
			r.render()
		case ActionStand:
			return true, nil
		default:
			log.Debugf("Ignoring unrecognized action %q", line)
		}
	}

	return false, nil
}

func (r *Round) dealerTurn() error {
	r.phase = PhaseDealerTurn

	for r.dealer.Total() < DealerStandsOn {
		if err := r.hit(r.dealer); err != nil {
			return fmt.Errorf("failed to draw for dealer: %w", err)
		}
		if r.dealer.IsBust() {
			log.Debugf("Round %d: dealer busts with %d", r.Number, r.dealer.Total())
		}
		r.render()
		if r.pause > 0 {
			r.sleep(r.pause)
		}
	}
	return nil
}

func (r *Round) hit(h *Hand) error {
	card, err := r.deck.Draw()
	if err != nil {
		return err
	}
	h.Add(card)
	return nil
}

func (r *Round) View() View {
	return View{
		Round:         r.Number,
		Rounds:        r.Rounds,
		Phase:         r.phase,
		Dealer:        r.dealer.Cards(),
		DealerTotal:   r.dealer.Total(),
		Player:        r.player.Cards(),
		PlayerTotal:   r.player.Total(),
		DeckRemaining: r.deck.Remaining(),
	}
}

func (r *Round) render() {
	r.display.Render(r.View())
}
