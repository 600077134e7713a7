// internal/config/config.go
//
// Typed configuration for every subcommand.
// Values come from the environment (a .env file is loaded first by main),
// then subcommand flags override them.
//
// Environment variables:
//   LOG_LEVEL, LOG_FILE
//   YAHTZEE_PLAYER, YAHTZEE_SEED, YAHTZEE_OUTPUT_FILE, YAHTZEE_DB, DAILY_SALT
//   PORT, CLIENT_ORIGIN, JWT_SECRET, JWT_EXPIRES_DAYS, ADMIN_PASSWORD_HASH
//   YAHTZEE_*_SCORE, YAHTZEE_UPPER_BONUS_THRESHOLD, YAHTZEE_MAX_ROLLS

package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/game"
)

// Rules mirrors game.Rules with env bindings.
type Rules struct {
	FullHouse           int `env:"FULL_HOUSE_SCORE"      envDefault:"25"`
	SmallStraight       int `env:"SMALL_STRAIGHT_SCORE"  envDefault:"30"`
	LargeStraight       int `env:"LARGE_STRAIGHT_SCORE"  envDefault:"40"`
	Yahtzee             int `env:"YAHTZEE_SCORE"         envDefault:"50"`
	YahtzeeBonus        int `env:"BONUS_SCORE"           envDefault:"100"`
	UpperBonus          int `env:"UPPER_BONUS_SCORE"     envDefault:"35"`
	UpperBonusThreshold int `env:"UPPER_BONUS_THRESHOLD" envDefault:"63"`
	MaxRolls            int `env:"MAX_ROLLS"             envDefault:"3"`
}

// Game converts to engine rules, clamping invalid values.
func (r Rules) Game() game.Rules {
	return game.Rules{
		FullHouse:           r.FullHouse,
		SmallStraight:       r.SmallStraight,
		LargeStraight:       r.LargeStraight,
		Yahtzee:             r.Yahtzee,
		YahtzeeBonus:        r.YahtzeeBonus,
		UpperBonus:          r.UpperBonus,
		UpperBonusThreshold: r.UpperBonusThreshold,
		MaxRolls:            r.MaxRolls,
	}.Normalize()
}

// Config holds all configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	Player     string `env:"YAHTZEE_PLAYER"      envDefault:"player"`
	Seed       int64  `env:"YAHTZEE_SEED"`
	OutputFile string `env:"YAHTZEE_OUTPUT_FILE" envDefault:"output.txt"`
	DBPath     string `env:"YAHTZEE_DB"          envDefault:"./data/yahtzee.db"`
	DailySalt  string `env:"DAILY_SALT"          envDefault:"local_dev_salt"`
	Daily      bool   // -daily flag only

	Port              string `env:"PORT"                envDefault:"5175"`
	ClientOrigin      string `env:"CLIENT_ORIGIN"       envDefault:"http://localhost:5173"`
	JWTSecret         string `env:"JWT_SECRET"          envDefault:"dev_secret_change_me"`
	JWTExpiresDays    int    `env:"JWT_EXPIRES_DAYS"    envDefault:"14"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	HistoryLimit int    // history -limit flag
	HistoryDate  string // history -date flag

	Rules Rules `envPrefix:"YAHTZEE_"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParsePlay applies the play subcommand flags.
func (c *Config) ParsePlay(fs *flag.FlagSet, args []string) error {
	fs.BoolVar(&c.Daily, "daily", c.Daily, "play today's shared dice")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "dice seed (0 = random)")
	fs.StringVar(&c.Player, "player", c.Player, "player name recorded in history")
	fs.StringVar(&c.OutputFile, "output", c.OutputFile, "file the final scorecard is written to")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "history database path (empty = in memory)")
	return fs.Parse(args)
}

// ParseServe applies the serve subcommand flags.
func (c *Config) ParseServe(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.Port, "port", c.Port, "HTTP port")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "history database path (empty = in memory)")
	return fs.Parse(args)
}

// ParseHistory applies the history subcommand flags.
func (c *Config) ParseHistory(fs *flag.FlagSet, args []string) error {
	fs.IntVar(&c.HistoryLimit, "limit", 10, "number of games to list")
	fs.StringVar(&c.HistoryDate, "date", "", "list the daily leaderboard for YYYY-MM-DD")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "history database path")
	return fs.Parse(args)
}

// SetupLogging sets the global zerolog level and destination.
// Logs go to stderr (stdout is the game display) or to LogFile when set.
// The returned closer releases the log file, if any.
func (c Config) SetupLogging() (io.Closer, error) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogFile == "" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
