// play.go
//
// The console game. A finished (or abandoned) game is recorded in the history
// store on a best-effort basis: store problems are logged, never fatal.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/assets"
	"github.com/robalobadob/yahtzee/internal/config"
	"github.com/robalobadob/yahtzee/internal/console"
	"github.com/robalobadob/yahtzee/internal/daily"
	"github.com/robalobadob/yahtzee/internal/dice"
	"github.com/robalobadob/yahtzee/internal/game"
	"github.com/robalobadob/yahtzee/internal/store"
)

func runPlay(ctx context.Context, cfg config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	if err := cfg.ParsePlay(fs, args); err != nil {
		return err
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("history unavailable, game will not be recorded")
	} else {
		defer st.Close()
	}

	date := daily.DateKey(time.Now())
	mode := store.ModeStandard
	seed := cfg.Seed
	switch {
	case cfg.Daily:
		mode = store.ModeDaily
		if st != nil {
			played, err := st.AlreadyPlayed(ctx, cfg.Player, date)
			if err != nil {
				log.Warn().Err(err).Msg("check daily history")
			} else if played {
				fmt.Fprintf(out, "%s has already played the daily game for %s.\n", cfg.Player, date)
				return nil
			}
		}
		seed = daily.SeedForKey(date, cfg.DailySalt)
	case seed == 0:
		if seed, err = dice.NewSeed(); err != nil {
			return err
		}
	}

	banner, err := assets.Banner()
	if err != nil {
		log.Warn().Err(err).Msg("load banner")
	}

	g := game.New(cfg.Rules.Game(), dice.NewSeeded(seed))
	log.Info().Str("game", g.ID).Str("player", cfg.Player).Str("mode", mode).Int64("seed", seed).Msg("game started")

	sess := console.NewSession(g, in, out, console.Options{OutputFile: cfg.OutputFile, Banner: banner})
	if err := sess.Run(); err != nil {
		return err
	}
	log.Info().Str("game", g.ID).Str("phase", string(g.Phase)).Int("grandTotal", g.Card.GrandTotal()).Msg("game over")

	if st == nil {
		return nil
	}
	res := store.NewResult(g, cfg.Player, mode, date, seed, time.Now())
	if err := st.Save(ctx, res); err != nil {
		log.Warn().Err(err).Str("game", g.ID).Msg("record game")
	}
	return nil
}
