package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/yahtzee/internal/config"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		args     []string
		wantCmd  string
		wantArgs int
	}{
		{nil, "play", 0},
		{[]string{"-daily"}, "play", 1},
		{[]string{"serve", "-port", "9000"}, "serve", 2},
		{[]string{"history"}, "history", 0},
	}
	for _, tt := range tests {
		cmd, args := splitCommand(tt.args)
		if cmd != tt.wantCmd || len(args) != tt.wantArgs {
			t.Errorf("splitCommand(%v) = %q, %v", tt.args, cmd, args)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if err := run(context.Background(), "dance", nil, config.Config{}); err == nil {
		t.Fatal("expected error")
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	cfg.DBPath = filepath.Join(dir, "history.db")
	cfg.OutputFile = filepath.Join(dir, "output.txt")
	return cfg
}

func TestPlay_DailyOncePerPlayer(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	args := []string{"-daily", "-player", "ann"}

	var out bytes.Buffer
	if err := runPlay(ctx, cfg, args, strings.NewReader("\nx\n"), &out); err != nil {
		t.Fatalf("first runPlay() error = %v", err)
	}
	if !strings.Contains(out.String(), "Turn #1 Roll #1") {
		t.Errorf("first game did not start:\n%s", out.String())
	}

	out.Reset()
	if err := runPlay(ctx, cfg, args, strings.NewReader("\nx\n"), &out); err != nil {
		t.Fatalf("second runPlay() error = %v", err)
	}
	if !strings.Contains(out.String(), "ann has already played the daily game") {
		t.Errorf("second game was not refused:\n%s", out.String())
	}

	out.Reset()
	if err := runPlay(ctx, cfg, []string{"-daily", "-player", "bob"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("other player runPlay() error = %v", err)
	}
	if strings.Contains(out.String(), "already played") {
		t.Error("another player was refused")
	}
}

func TestPlay_SameSeedSameDice(t *testing.T) {
	ctx := context.Background()
	play := func() string {
		cfg := testConfig(t)
		var out bytes.Buffer
		if err := runPlay(ctx, cfg, []string{"-seed", "42"}, strings.NewReader("\nx\n"), &out); err != nil {
			t.Fatalf("runPlay() error = %v", err)
		}
		return out.String()
	}
	if a, b := play(), play(); a != b {
		t.Errorf("outputs differ for the same seed:\n%s\n---\n%s", a, b)
	}
}

func TestPlay_WithoutDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = ""
	var out bytes.Buffer
	if err := runPlay(context.Background(), cfg, nil, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runPlay() error = %v", err)
	}
}

func TestHistory_Empty(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	if err := runPlay(context.Background(), cfg, []string{"-player", "ann"}, strings.NewReader("\nx\n"), &out); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := runHistory(context.Background(), cfg, nil, &out); err != nil {
		t.Fatalf("runHistory() error = %v", err)
	}
	// aborted games are recorded but never ranked
	if !strings.Contains(out.String(), "No completed games recorded.") {
		t.Errorf("history =\n%s", out.String())
	}

	if err := runHistory(context.Background(), cfg, []string{"-date", "yesterday"}, &out); err == nil {
		t.Error("expected error for malformed -date")
	}
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
	}{
		{name: "argument", args: []string{"s3cret"}},
		{name: "stdin", in: "s3cret\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runHashPassword(tt.args, strings.NewReader(tt.in), &out); err != nil {
				t.Fatalf("runHashPassword() error = %v", err)
			}
			hash := strings.TrimSpace(out.String())
			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")); err != nil {
				t.Errorf("hash does not match: %v", err)
			}
		})
	}

	if err := runHashPassword(nil, strings.NewReader(""), &bytes.Buffer{}); err != errNoPassword {
		t.Errorf("empty input error = %v, want errNoPassword", err)
	}
}
