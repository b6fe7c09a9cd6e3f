package console

const (
	Description = "Play a game of Blackjack. You can define the amount of decks of cards for the game and the amount of rounds you want to play."

	Epilog = "For example, a Blackjack game with 2 decks and 5 rounds:\n  termjack -p 2 5"

	Rules = "Rules of Blackjack:\n" +
		" 1. The goal is to have a hand value closer to 21 than the dealer without going over.\n" +
		" 2. You can 'Hit' to get more cards or 'Stand' to keep your current hand.\n" +
		" 3. The dealer must hit if their hand value is less than 16.\n" +
		" 4. If your hand value goes over 21, you bust and lose.\n" +
		" 5. If both you and the dealer have the same value, it's a draw.\n" +
		" 6. Blackjack is when you have an Ace and a 10-valued card.\n\n" +
		"Hand Values:\n" +
		" · Number cards are worth their face value.\n" +
		" · Jacks, queens and king are worth 10.\n" +
		" · Aces vary depending on the situation as either 1 or 11.\n\n" +
		"type: 'termjack -p 2 5' to play 5 rounds of Blackjack with 2 decks.\n"

	ActionPrompt = "Type S for Stand or H for Hit: "
)
