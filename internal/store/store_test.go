package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/yahtzee/internal/dice"
	"github.com/robalobadob/yahtzee/internal/game"
)

var base = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func result(id, player, mode, date string, grand int, completed bool, offset time.Duration) *Result {
	return &Result{
		ID:         id,
		Player:     player,
		Mode:       mode,
		Date:       date,
		Completed:  completed,
		Scores:     map[string]int{"Chance": grand},
		GrandTotal: grand,
		FinishedAt: base.Add(offset),
	}
}

// backends runs fn against every Store implementation.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "yahtzee.db"))
		if err != nil {
			t.Fatalf("OpenSQLite() error = %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		fn(t, s)
	})
}

func TestStore_SaveGetDelete(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		r := result("g1", "ann", ModeStandard, "2026-10-17", 200, true, 0)
		r.Scores = map[string]int{"Aces": 3, "YAHTZEE BONUS": 1}
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := s.Save(ctx, r); !errors.Is(err, ErrAlreadyRecorded) {
			t.Errorf("second Save() error = %v, want ErrAlreadyRecorded", err)
		}

		got, err := s.Get(ctx, "g1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Player != "ann" || got.GrandTotal != 200 || !got.Completed {
			t.Errorf("Get() = %+v", got)
		}
		if got.Scores["Aces"] != 3 || got.Scores["YAHTZEE BONUS"] != 1 {
			t.Errorf("Scores = %v", got.Scores)
		}
		if !got.FinishedAt.Equal(base) {
			t.Errorf("FinishedAt = %v, want %v", got.FinishedAt, base)
		}

		if err := s.Delete(ctx, "g1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := s.Get(ctx, "g1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
		}
		if err := s.Delete(ctx, "g1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("second Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_TopRanking(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		for _, r := range []*Result{
			result("a", "ann", ModeStandard, "2026-10-17", 150, true, 3*time.Second),
			result("b", "bob", ModeStandard, "2026-10-17", 250, true, 2*time.Second),
			result("c", "cat", ModeStandard, "2026-10-17", 150, true, 1*time.Second),
			result("d", "dan", ModeStandard, "2026-10-17", 400, false, 0),
		} {
			if err := s.Save(ctx, r); err != nil {
				t.Fatalf("Save(%s) error = %v", r.ID, err)
			}
		}

		top, err := s.Top(ctx, 0)
		if err != nil {
			t.Fatalf("Top() error = %v", err)
		}
		want := []string{"b", "c", "a"}
		if len(top) != len(want) {
			t.Fatalf("Top() returned %d results, want %d", len(top), len(want))
		}
		for i, id := range want {
			if top[i].ID != id {
				t.Errorf("Top()[%d] = %s, want %s", i, top[i].ID, id)
			}
		}

		top, _ = s.Top(ctx, 1)
		if len(top) != 1 || top[0].ID != "b" {
			t.Errorf("Top(1) = %v", top)
		}
	})
}

func TestStore_DailyOncePerPlayer(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		date := "2026-10-17"

		played, err := s.AlreadyPlayed(ctx, "ann", date)
		if err != nil || played {
			t.Fatalf("AlreadyPlayed() = %v, %v; want false, nil", played, err)
		}
		if err := s.Save(ctx, result("d1", "ann", ModeDaily, date, 180, true, 0)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := s.Save(ctx, result("d2", "ann", ModeDaily, date, 300, true, time.Second)); !errors.Is(err, ErrAlreadyRecorded) {
			t.Errorf("repeat daily Save() error = %v, want ErrAlreadyRecorded", err)
		}
		if err := s.Save(ctx, result("d3", "bob", ModeDaily, date, 220, true, time.Second)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := s.Save(ctx, result("s1", "ann", ModeStandard, date, 500, true, 0)); err != nil {
			t.Fatalf("standard Save() error = %v", err)
		}

		played, _ = s.AlreadyPlayed(ctx, "ann", date)
		if !played {
			t.Error("AlreadyPlayed() = false after daily result")
		}

		lb, err := s.Daily(ctx, date, 10)
		if err != nil {
			t.Fatalf("Daily() error = %v", err)
		}
		if len(lb) != 2 || lb[0].ID != "d3" || lb[1].ID != "d1" {
			t.Errorf("Daily() = %+v", lb)
		}
		if lb, _ := s.Daily(ctx, "2026-10-18", 10); len(lb) != 0 {
			t.Errorf("Daily() for other date = %+v", lb)
		}
	})
}

func TestOpenSQLite_MigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yahtzee.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := s.Save(context.Background(), result("x", "ann", ModeStandard, "2026-10-17", 1, true, 0)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_ = s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	if _, err := s.Get(context.Background(), "x"); err != nil {
		t.Errorf("Get() after reopen error = %v", err)
	}
}

func TestNewResult(t *testing.T) {
	seq, _ := dice.NewSequence(6)
	g := game.New(game.DefaultRules(), seq)
	_ = g.StartTurn()
	_ = g.StopRolling()
	if _, err := g.Choose(game.Yahtzee); err != nil {
		t.Fatalf("Choose() error = %v", err)
	}
	g.Abort()

	at := base.Add(1500 * time.Millisecond)
	r := NewResult(g, "ann", ModeDaily, "2026-10-17", 42, at)
	if r.ID != g.ID || r.Turns != 1 || r.Completed {
		t.Errorf("NewResult() = %+v", r)
	}
	if r.GrandTotal != 50 || r.LowerTotal != 50 || r.YahtzeeBonuses != 0 {
		t.Errorf("totals = %+v", r)
	}
	if r.Scores["YAHTZEE"] != 50 {
		t.Errorf("Scores = %v", r.Scores)
	}
	if !r.FinishedAt.Equal(base.Add(time.Second)) {
		t.Errorf("FinishedAt = %v, want truncated to the second", r.FinishedAt)
	}
}
