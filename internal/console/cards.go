package console

import (
	"fmt"
	"strings"

	"termjack/internal/game"
)

const (
	cardTop    = "┌─────────┐"
	cardBlank  = "│         │"
	cardBottom = "└─────────┘"
	cardIndent = "    "
	cardGap    = " "
)

// CardLines draws the cards side by side as boxed ASCII art, one string per
// terminal row. An empty hand draws nothing.
func CardLines(cards []game.Card) []string {
	if len(cards) == 0 {
		return nil
	}

	rows := []func(game.Card) string{
		func(game.Card) string { return cardTop },
		func(c game.Card) string { return fmt.Sprintf("│%-9s│", c.Rank) },
		func(game.Card) string { return cardBlank },
		func(game.Card) string { return cardBlank },
		func(c game.Card) string { return fmt.Sprintf("│    %s    │", c.Suit) },
		func(game.Card) string { return cardBlank },
		func(game.Card) string { return cardBlank },
		func(c game.Card) string { return fmt.Sprintf("│%8s │", c.Rank) },
		func(game.Card) string { return cardBottom },
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for _, c := range cards {
			sb.WriteString(cardIndent)
			sb.WriteString(row(c))
			sb.WriteString(cardGap)
		}
		lines = append(lines, sb.String())
	}
	return lines
}
