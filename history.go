// history.go
//
// history and hash-password: small commands around the history store.

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/yahtzee/internal/config"
	"github.com/robalobadob/yahtzee/internal/store"
)

var errNoPassword = errors.New("no password given")

func runHistory(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	if err := cfg.ParseHistory(fs, args); err != nil {
		return err
	}
	if cfg.HistoryDate != "" {
		if _, err := time.Parse("2006-01-02", cfg.HistoryDate); err != nil {
			return fmt.Errorf("bad -date %q: want YYYY-MM-DD", cfg.HistoryDate)
		}
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	var rows []store.Result
	if cfg.HistoryDate != "" {
		rows, err = st.Daily(ctx, cfg.HistoryDate, cfg.HistoryLimit)
	} else {
		rows, err = st.Top(ctx, cfg.HistoryLimit)
	}
	if err != nil {
		return err
	}
	return printResults(out, rows)
}

func printResults(out io.Writer, rows []store.Result) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No completed games recorded.")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tSCORE\tMODE\tDATE\tBONUSES\tID")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\t%s\n", i+1, r.Player, r.GrandTotal, r.Mode, r.Date, r.YahtzeeBonuses, r.ID)
	}
	return tw.Flush()
}

// runHashPassword prints the bcrypt hash of the password given as the only
// argument, or of the first line of in.
func runHashPassword(args []string, in io.Reader, out io.Writer) error {
	var pw string
	if len(args) > 0 {
		pw = args[0]
	} else {
		sc := bufio.NewScanner(in)
		if sc.Scan() {
			pw = strings.TrimRight(sc.Text(), "\r")
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	if pw == "" {
		return errNoPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(h))
	return err
}
