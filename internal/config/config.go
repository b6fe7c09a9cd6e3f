package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultDecks        = 1
	DefaultRounds       = 5
	DefaultDealerPause  = 850 * time.Millisecond
	DefaultDatabasePath = ":memory:"
)

type Config struct {
	Decks        int
	Rounds       int
	DealerPause  time.Duration
	DatabasePath string
	ANSI         bool
}

// Load reads settings from the environment, after merging in a .env file
// when one is present. Range checks are left to the game, which clamps.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Decks:        DefaultDecks,
		Rounds:       DefaultRounds,
		DealerPause:  DefaultDealerPause,
		DatabasePath: DefaultDatabasePath,
	}

	var err error
	if cfg.Decks, err = intEnv("BLACKJACK_DECKS", cfg.Decks); err != nil {
		return nil, err
	}
	if cfg.Rounds, err = intEnv("BLACKJACK_ROUNDS", cfg.Rounds); err != nil {
		return nil, err
	}

	if v := os.Getenv("BLACKJACK_DEALER_PAUSE"); v != "" {
		if cfg.DealerPause, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("BLACKJACK_DEALER_PAUSE: %w", err)
		}
		if cfg.DealerPause < 0 {
			return nil, fmt.Errorf("BLACKJACK_DEALER_PAUSE must not be negative, got %s", v)
		}
	}

	if v := os.Getenv("BLACKJACK_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if v := os.Getenv("BLACKJACK_ANSI"); v != "" {
		if cfg.ANSI, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("BLACKJACK_ANSI: %w", err)
		}
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
