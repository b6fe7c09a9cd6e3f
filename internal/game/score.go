package game

type Outcome int

const (
	PlayerBlackjack Outcome = iota
	PlayerWin21
	PlayerBust
	DealerBlackjack
	Dealer21
	DealerBust
	DealerWinByValue
	PlayerWinByValue
	Draw
)

var outcomeNames = map[Outcome]string{
	PlayerBlackjack:  "player_blackjack",
	PlayerWin21:      "player_21",
	PlayerBust:       "player_bust",
	DealerBlackjack:  "dealer_blackjack",
	Dealer21:         "dealer_21",
	DealerBust:       "dealer_bust",
	DealerWinByValue: "dealer_win",
	PlayerWinByValue: "player_win",
	Draw:             "draw",
}

var outcomeMessages = map[Outcome]string{
	PlayerBlackjack:  "You have a Blackjack!\nYou win!",
	PlayerWin21:      "You win with 21!",
	PlayerBust:       "You bust, Dealer wins!",
	DealerBlackjack:  "Dealer wins with a Blackjack!",
	Dealer21:         "Dealer wins with 21!",
	DealerBust:       "Dealer busts, You win!",
	DealerWinByValue: "Dealer wins!",
	PlayerWinByValue: "You win!",
	Draw:             "Draw!",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Message is the line shown to the player when the round ends.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Win reports whether the outcome counts toward the player's wins.
func (o Outcome) Win() bool {
	switch o {
	case PlayerBlackjack, PlayerWin21, DealerBust, PlayerWinByValue:
		return true
	}
	return false
}

// Evaluate applies the outcome table to final totals and card counts. The
// first matching row wins, and the player's rows come before the dealer's.
func Evaluate(playerTotal, playerCards, dealerTotal, dealerCards int) Outcome {
	switch {
	case playerTotal == Blackjack && playerCards == 2:
		return PlayerBlackjack
	case playerTotal == Blackjack:
		return PlayerWin21
	case playerTotal > Blackjack:
		return PlayerBust
	case dealerTotal == Blackjack && dealerCards == 2:
		return DealerBlackjack
	case dealerTotal == Blackjack:
		return Dealer21
	case dealerTotal > Blackjack:
		return DealerBust
	case Blackjack-dealerTotal < Blackjack-playerTotal:
		return DealerWinByValue
	case Blackjack-dealerTotal > Blackjack-playerTotal:
		return PlayerWinByValue
	default:
		return Draw
	}
}

func Resolve(player, dealer *Hand) Outcome {
	return Evaluate(player.Total(), player.Len(), dealer.Total(), dealer.Len())
}
