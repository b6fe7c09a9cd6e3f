package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"termjack/internal/config"
	"termjack/internal/console"
	"termjack/internal/database"
	"termjack/internal/game"
	"termjack/internal/player"
)

const screenFPS = 30

type options struct {
	decks  int
	rounds int
	ansi   bool
	pause  time.Duration
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var rules, play bool
	flag.BoolVar(&rules, "rules", false, "Show the rules of Blackjack.")
	flag.BoolVar(&rules, "r", false, "Shorthand for -rules.")
	flag.BoolVar(&play, "play", false, "Play a game of Blackjack with DECKS decks (1 - 10) and ROUNDS rounds (1 - 10).")
	flag.BoolVar(&play, "p", false, "Shorthand for -play.")
	ansi := flag.Bool("ansi", cfg.ANSI, "Use the full-screen terminal display.")
	pause := flag.Duration("pause", cfg.DealerPause, "Pause between dealer draws.")

	cli.ArgsHelp = "[DECKS ROUNDS]"
	cli.MaxArgs = 2
	os.Args = append([]string{os.Args[0]}, playArgs(os.Args[1:])...)
	cli.Main()

	switch {
	case rules:
		fmt.Print(console.Rules)
		return
	case !play:
		usage()
		return
	}

	opts := options{
		decks:  cfg.Decks,
		rounds: cfg.Rounds,
		ansi:   *ansi,
		pause:  *pause,
	}
	if opts.decks, opts.rounds, err = counts(flag.Args(), cfg.Decks, cfg.Rounds); err != nil {
		cli.ErrUsage("%v", err)
	}

	os.Exit(run(cfg, opts))
}

// playArgs ends flag parsing right after -p when a negative number follows
// it, so "-p -1 5" reads -1 as DECKS instead of an unknown flag.
func playArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			break
		}
		switch a {
		case "-p", "--p", "-play", "--play":
		default:
			continue
		}
		if i+1 < len(args) && isInt(args[i+1]) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i+1]...)
			out = append(out, "--")
			return append(out, args[i+1:]...)
		}
		break
	}
	return args
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// counts reads the optional DECKS ROUNDS pair. Range clamping is left to the
// session.
func counts(args []string, decks, rounds int) (int, int, error) {
	if len(args) == 0 {
		return decks, rounds, nil
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("-play needs both DECKS and ROUNDS, got %d argument(s)", len(args))
	}
	d, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("DECKS must be an integer, got %q", args[0])
	}
	r, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ROUNDS must be an integer, got %q", args[1])
	}
	return d, r, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, console.Description)
	fmt.Fprintln(os.Stderr)
	flag.Usage()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, console.Epilog)
}

func run(cfg *config.Config, opts options) int {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Errf("Failed to open round ledger: %v", err)
		return 1
	}
	defer db.Close()

	sessionID := uuid.New().String()
	tracker, err := player.NewTracker(player.NewRepository(db.DB), sessionID)
	if err != nil {
		log.Errf("Failed to start round ledger: %v", err)
		return 1
	}

	var (
		display game.Display
		input   game.Input
	)
	if opts.ansi {
		screen, err := console.NewScreen(screenFPS)
		if err != nil {
			log.Errf("Failed to open terminal: %v", err)
			return 1
		}
		defer screen.Close()
		display, input = screen, screen
	} else {
		c := console.New(os.Stdin, os.Stdout)
		tty := term.IsTerminal(int(os.Stdout.Fd()))
		c.Clear, c.Bell = tty, tty
		display, input = c, c
	}

	session, err := game.NewSession(game.SessionConfig{
		ID:          sessionID,
		Decks:       opts.decks,
		Rounds:      opts.rounds,
		DealerPause: opts.pause,
	}, display, input, tracker)
	if err != nil {
		log.Errf("Failed to start session: %v", err)
		return 1
	}

	summary, err := session.Run()
	p := tracker.Player()
	recorded, rerr := tracker.Rounds()
	if rerr != nil {
		log.Warnf("Failed to read round ledger: %v", rerr)
	}
	log.S(log.Info, "final tally",
		log.Str("session", summary.SessionID),
		log.Attr("wins", p.Wins),
		log.Attr("losses", p.Losses),
		log.Attr("draws", p.Draws),
		log.Attr("win_rate", fmt.Sprintf("%.1f%%", p.WinRate())),
		log.Attr("played", summary.RoundsPlayed),
		log.Attr("recorded", len(recorded)))

	switch {
	case err == nil:
		return 0
	case errors.Is(err, io.EOF):
		log.Infof("Input closed after %d/%d rounds", summary.RoundsPlayed, summary.Rounds)
		return 0
	case errors.Is(err, game.ErrDeckExhausted):
		log.Errf("The deck ran out of cards after %d rounds; play with more decks.", summary.RoundsPlayed)
		return 1
	default:
		log.Errf("Game stopped: %v", err)
		return 1
	}
}
