package console

import (
	"io"
	"strings"

	"fortio.org/terminal/ansipixels"

	"termjack/internal/game"
)

const (
	ctrlC     = 3
	ctrlD     = 4
	backspace = 8
	del       = 127
)

// Screen is the full-screen frontend. It redraws the whole table on every
// change and on terminal resize.
type Screen struct {
	ap       *ansipixels.AnsiPixels
	view     game.View
	hasView  bool
	messages []string
	prompt   string
	pending  []byte
}

// NewScreen puts the terminal in raw mode; Close must be called to restore it.
func NewScreen(fps float64) (*Screen, error) {
	ap := ansipixels.NewAnsiPixels(fps)
	if err := ap.Open(); err != nil {
		return nil, err
	}

	s := &Screen{ap: ap}
	ap.OnResize = func() error {
		s.draw()
		return nil
	}
	return s, nil
}

func (s *Screen) Close() {
	s.ap.MoveCursor(0, s.ap.H-1)
	s.ap.Restore()
}

// Render replaces the table and drops messages from the previous round.
func (s *Screen) Render(v game.View) {
	if !s.hasView || v.Round != s.view.Round {
		s.messages = nil
	}
	s.view = v
	s.hasView = true
	s.draw()
}

func (s *Screen) Announce(message string) {
	s.messages = append(s.messages, strings.Split(message, "\n")...)
	s.draw()
}

func (s *Screen) PromptAction() (string, error) {
	return s.readLine(ActionPrompt)
}

func (s *Screen) PromptContinue(message string) error {
	_, err := s.readLine(message)
	return err
}

// readLine collects keystrokes until enter. Ctrl-C and Ctrl-D end input.
// Bytes read past the enter key are kept for the next prompt.
func (s *Screen) readLine(prompt string) (string, error) {
	var line []byte
	data := s.pending
	s.pending = nil
	for {
		var (
			done bool
			err  error
		)
		line, s.pending, done, err = editLine(line, data)
		if err != nil {
			return "", err
		}
		if done {
			s.prompt = ""
			return string(line), nil
		}

		s.prompt = prompt + string(line)
		s.draw()

		if err := s.ap.ReadOrResizeOrSignal(); err != nil {
			return "", err
		}
		data = append([]byte(nil), s.ap.Data...)
	}
}

// editLine applies keystrokes in data to line. It stops at the first enter
// and returns the unread remainder.
func editLine(line, data []byte) ([]byte, []byte, bool, error) {
	for i, b := range data {
		switch {
		case b == '\r' || b == '\n':
			rest := data[i+1:]
			if b == '\r' && len(rest) > 0 && rest[0] == '\n' {
				rest = rest[1:]
			}
			if len(rest) == 0 {
				rest = nil
			}
			return line, rest, true, nil
		case b == ctrlC || b == ctrlD:
			return line, nil, false, io.EOF
		case b == backspace || b == del:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		case b >= ' ' && b < del:
			line = append(line, b)
		}
	}
	return line, nil, false, nil
}

func (s *Screen) draw() {
	ap := s.ap
	ap.ClearScreen()

	y := 1
	if s.hasView {
		v := s.view
		ap.WriteCentered(y, "Blackjack - round %d/%d", v.Round, v.Rounds)
		y += 2
		y = s.drawHand(y, "Dealer's Cards", v.Dealer, v.DealerTotal)
		y++
		y = s.drawHand(y, "Your Cards", v.Player, v.PlayerTotal)
		ap.WriteRight(ap.H-1, "%d cards   ", v.DeckRemaining)
	}

	y++
	for _, m := range s.messages {
		ap.WriteAt(2, y, "%s", m)
		y++
	}

	if s.prompt != "" {
		ap.WriteAt(2, ap.H-2, "%s", s.prompt)
	}

	ap.EndSyncMode()
}

func (s *Screen) drawHand(y int, title string, cards []game.Card, total int) int {
	s.ap.WriteAt(2, y, "%s", title)
	y++
	for _, line := range CardLines(cards) {
		s.ap.WriteAt(0, y, "%s", line)
		y++
	}
	s.ap.WriteAt(2, y, "Total Value: %d", total)
	return y + 1
}
