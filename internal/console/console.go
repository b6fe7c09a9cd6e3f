package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"

	"termjack/internal/game"
)

const (
	clearScreen = "\033[H\033[2J"
	bell        = "\a"
)

// Console is the line-oriented frontend. It works on any reader and writer,
// so it also serves pipes and tests.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// Clear wipes the terminal before every render, Bell rings after it.
	// Both only make sense on a real terminal.
	Clear bool
	Bell  bool
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Render(v game.View) {
	var sb strings.Builder
	if c.Clear {
		sb.WriteString(clearScreen)
	}

	sb.WriteString("\nDealers Cards:\n")
	writeHand(&sb, v.Dealer, v.DealerTotal)
	sb.WriteString("\n\nYour Cards:\n")
	writeHand(&sb, v.Player, v.PlayerTotal)
	sb.WriteString("\n")

	if c.Bell {
		sb.WriteString(bell)
	}
	c.write(sb.String())
}

func writeHand(sb *strings.Builder, cards []game.Card, total int) {
	for _, line := range CardLines(cards) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "Total Value: %d\n", total)
}

func (c *Console) Announce(message string) {
	c.write("\n" + message + "\n")
}

func (c *Console) PromptAction() (string, error) {
	c.write(ActionPrompt)
	return c.readLine()
}

func (c *Console) PromptContinue(message string) error {
	c.write(message)
	_, err := c.readLine()
	return err
}

// readLine returns one line without its newline. A final line with no
// newline is still returned; io.EOF only comes back once nothing is left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		log.Errf("Failed to write to console: %v", err)
	}
}
