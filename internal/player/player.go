package player

import (
	"database/sql"
	"fmt"

	"termjack/internal/game"
)

// Player is the running tally for one session.
type Player struct {
	SessionID string
	Wins      int
	Losses    int
	Draws     int
	Games     int
}

// Round is one ledger row.
type Round struct {
	SessionID   string
	Number      int
	Outcome     string
	Win         bool
	PlayerTotal int
	PlayerCards int
	DealerTotal int
	DealerCards int
}

type Repository interface {
	GetOrCreate(sessionID string) (*Player, error)
	Save(player *Player) error
	SaveRound(round Round) error
	Rounds(sessionID string) ([]Round, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(sessionID string) (*Player, error) {
	player := &Player{SessionID: sessionID}

	err := r.db.QueryRow(`
		SELECT wins, losses, draws, games
		FROM players WHERE session_id = ?
	`, sessionID).Scan(&player.Wins, &player.Losses, &player.Draws, &player.Games)

	if err == sql.ErrNoRows {
		_, err = r.db.Exec(`INSERT INTO players (session_id) VALUES (?)`, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, draws = ?, games = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE session_id = ?
	`, player.Wins, player.Losses, player.Draws, player.Games, player.SessionID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SaveRound(round Round) error {
	_, err := r.db.Exec(`
		INSERT INTO rounds (
			session_id, round, outcome, win,
			player_total, player_cards, dealer_total, dealer_cards
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, round.SessionID, round.Number, round.Outcome, round.Win,
		round.PlayerTotal, round.PlayerCards, round.DealerTotal, round.DealerCards)

	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Rounds(sessionID string) ([]Round, error) {
	rows, err := r.db.Query(`
		SELECT session_id, round, outcome, win,
			player_total, player_cards, dealer_total, dealer_cards
		FROM rounds
		WHERE session_id = ?
		ORDER BY round
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.SessionID, &rd.Number, &rd.Outcome, &rd.Win,
			&rd.PlayerTotal, &rd.PlayerCards, &rd.DealerTotal, &rd.DealerCards); err != nil {
			return nil, err
		}
		rounds = append(rounds, rd)
	}

	return rounds, rows.Err()
}

func (p *Player) AddWin() {
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) AddDraw() {
	p.Draws++
	p.Games++
}

// Apply counts a round outcome. Draw is the only outcome that is neither a
// win nor a loss.
func (p *Player) Apply(outcome game.Outcome) {
	switch {
	case outcome.Win():
		p.AddWin()
	case outcome == game.Draw:
		p.AddDraw()
	default:
		p.AddLoss()
	}
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

// Tracker feeds finished rounds from a game.Session into a Repository.
type Tracker struct {
	repo   Repository
	player *Player
}

func NewTracker(repo Repository, sessionID string) (*Tracker, error) {
	p, err := repo.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	return &Tracker{repo: repo, player: p}, nil
}

func (t *Tracker) RecordRound(result game.RoundResult) error {
	t.player.Apply(result.Outcome)

	err := t.repo.SaveRound(Round{
		SessionID:   t.player.SessionID,
		Number:      result.Round,
		Outcome:     result.Outcome.String(),
		Win:         result.Win(),
		PlayerTotal: result.PlayerTotal,
		PlayerCards: result.PlayerCards,
		DealerTotal: result.DealerTotal,
		DealerCards: result.DealerCards,
	})
	if err != nil {
		return err
	}

	return t.repo.Save(t.player)
}

func (t *Tracker) Player() *Player {
	return t.player
}

// Rounds lists the rounds recorded so far in this session.
func (t *Tracker) Rounds() ([]Round, error) {
	return t.repo.Rounds(t.player.SessionID)
}
