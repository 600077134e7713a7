// internal/store/store.go
//
// Persistence of finished games.
// A Result is written once, when a game ends (completed or aborted); nothing
// about an in-progress game is ever stored.
//
// Implementations:
//   - memory.go: map-based, for tests and when no database is configured.
//   - sqlite.go: SQLite file via mattn/go-sqlite3.

package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/robalobadob/yahtzee/internal/game"
)

// Game modes recorded with each result.
const (
	ModeStandard = "standard"
	ModeDaily    = "daily"
)

const defaultLimit = 20

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyRecorded = errors.New("result already recorded")
)

// Result is the record of one finished game.
type Result struct {
	ID             string         `json:"id"`
	Player         string         `json:"player"`
	Mode           string         `json:"mode"`
	Date           string         `json:"date"` // YYYY-MM-DD (UTC)
	Seed           int64          `json:"seed"`
	Turns          int            `json:"turns"`
	Completed      bool           `json:"completed"`
	Scores         map[string]int `json:"scores"` // category label → score (bonus: count)
	UpperSubtotal  int            `json:"upperSubtotal"`
	UpperBonus     int            `json:"upperBonus"`
	LowerTotal     int            `json:"lowerTotal"`
	GrandTotal     int            `json:"grandTotal"`
	YahtzeeBonuses int            `json:"yahtzeeBonuses"`
	FinishedAt     time.Time      `json:"finishedAt"`
}

// NewResult snapshots a game that has ended.
func NewResult(g *game.Game, player, mode, date string, seed int64, at time.Time) *Result {
	bonuses, _ := g.Card.Get(game.YahtzeeBonus)
	return &Result{
		ID:             g.ID,
		Player:         player,
		Mode:           mode,
		Date:           date,
		Seed:           seed,
		Turns:          g.Turn,
		Completed:      g.Completed(),
		Scores:         g.Card.Scores(),
		UpperSubtotal:  g.Card.UpperSubtotal(),
		UpperBonus:     g.Card.UpperBonus(),
		LowerTotal:     g.Card.LowerTotal(),
		GrandTotal:     g.Card.GrandTotal(),
		YahtzeeBonuses: bonuses,
		FinishedAt:     at.UTC().Truncate(time.Second),
	}
}

// Store defines the persistence interface for finished games.
type Store interface {
	// Save records a result. A second result with the same ID, or a second
	// daily result for the same player and date, returns ErrAlreadyRecorded.
	Save(ctx context.Context, r *Result) error

	// Get retrieves a result by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Result, error)

	// Top lists completed games by grand total, best first.
	Top(ctx context.Context, limit int) ([]Result, error)

	// Daily lists completed daily games for date, best first.
	Daily(ctx context.Context, date string, limit int) ([]Result, error)

	// AlreadyPlayed reports whether player has a daily result for date.
	AlreadyPlayed(ctx context.Context, player, date string) (bool, error)

	// Delete removes a result by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	Close() error
}

// rank orders results the way every leaderboard does: grand total desc,
// then earlier finish, then ID.
func rank(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.GrandTotal != b.GrandTotal {
			return a.GrandTotal > b.GrandTotal
		}
		if !a.FinishedAt.Equal(b.FinishedAt) {
			return a.FinishedAt.Before(b.FinishedAt)
		}
		return a.ID < b.ID
	})
}

func normLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
