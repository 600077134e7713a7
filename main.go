// main.go
//
// Entry point for the yahtzee binary.
//
// Subcommands:
//   play            console game (default when no subcommand is given)
//   serve           HTTP history/evaluator service
//   history         print the leaderboard of recorded games
//   hash-password   bcrypt a password for ADMIN_PASSWORD_HASH
//
// Configuration is read from the environment (and a .env file when present);
// each subcommand accepts flags that override it.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/config"
	"github.com/robalobadob/yahtzee/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logs, err := cfg.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := splitCommand(os.Args[1:])
	if err := run(ctx, cmd, args, cfg); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// splitCommand returns the subcommand name and its arguments; "play" when
// the first argument is missing or is a flag.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "play", args
	}
	return args[0], args[1:]
}

func run(ctx context.Context, cmd string, args []string, cfg config.Config) error {
	switch cmd {
	case "play":
		return runPlay(ctx, cfg, args, os.Stdin, os.Stdout)
	case "serve":
		return runServe(ctx, cfg, args)
	case "history":
		return runHistory(ctx, cfg, args, os.Stdout)
	case "hash-password":
		return runHashPassword(args, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q (want play, serve, history or hash-password)", cmd)
	}
}

// openStore opens the SQLite history at path, or an in-memory store when
// path is empty.
func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	return st, nil
}
