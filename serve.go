// serve.go
//
// The HTTP history/evaluator service.

package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/config"
	"github.com/robalobadob/yahtzee/internal/httpserver"
)

func runServe(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	if err := cfg.ParseServe(fs, args); err != nil {
		return err
	}
	if cfg.AdminPasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := httpserver.New(st, cfg)
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting yahtzee server")
	return srv.Start(ctx, ":"+cfg.Port)
}
