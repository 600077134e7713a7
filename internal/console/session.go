// internal/console/session.go
//
// The console turn loop.
// Responsibilities:
//   - Prompt for each turn, the re-roll choices and the category choice.
//   - Translate answers into game.Game operations; any rejected answer re-prompts.
//   - Show the final scorecard and export it to a file when the game ends
//     (normally, by "X", or because input ran out).

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/game"
)

const (
	pressEnterMsg = "Press the Enter key to continue: "

	rerollMsg1 = "Enter: S for ScoreCard; D for Dice; X to Exit"
	rerollMsg2 = "Or: A series of numbers to re-roll dice as follows:"
	rerollMsg3 = "\t\tYou may re-roll any of the dice by entering the die #s without spaces."
	rerollMsg4 = "\t\tFor example, to re-roll dice #1, #3 & #4, enter 134 or enter 0 for none."
	rerollMsg5 = "\t\tYou have %d roll(s) left this turn."
	rerollMsg6 = "Which of the dice would you like to roll again? "

	categoryMsg1 = "Enter: 1-14 for category; S for ScoreCard; D for Dice; X to Exit"
	categoryMsg2 = "Which category would you like to choose? "

	exportErrMsg = "Error opening file: "
)

// Options configures a Session.
type Options struct {
	OutputFile string   // exported scorecard; empty skips the export
	Banner     []string // welcome lines
}

// Session runs one game against a line-based input and a text output.
type Session struct {
	Game *game.Game

	in   *bufio.Scanner
	view *Renderer
	opts Options
}

// NewSession wires g to the given streams.
func NewSession(g *game.Game, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		Game: g,
		in:   bufio.NewScanner(in),
		view: NewRenderer(out),
		opts: opts,
	}
}

// Run plays until the game finishes or the player exits, then shows and
// exports the final scorecard. Export failure is reported but not returned.
func (s *Session) Run() error {
	g := s.Game
	s.view.println()
	s.view.Lines(s.opts.Banner...)

	for !g.Over() {
		s.view.println()
		s.view.println(pressEnterMsg)
		if _, ok := s.readLine(); !ok {
			break
		}
		if err := g.StartTurn(); err != nil {
			return err
		}
		log.Debug().Str("game", g.ID).Int("turn", g.Turn).Ints("hand", g.Hand[:]).Msg("turn started")
		s.view.Dice(g)

		s.rollPhase()
		if g.Phase == game.PhaseAwaitingCategory {
			s.view.Scorecard(g.Card)
			s.categoryPhase()
		}
	}

	s.view.Scorecard(g.Card)
	s.export()
	return nil
}

// rollPhase handles the re-roll prompt until rolling ends or the player exits.
func (s *Session) rollPhase() {
	g := s.Game
	for g.Phase == game.PhaseRolling {
		s.view.println()
		s.view.println(rerollMsg1)
		s.view.println()
		s.view.Lines(rerollMsg2, rerollMsg3, rerollMsg4)
		s.view.println()
		s.view.printf(rerollMsg5+"\n", g.RollsLeft())
		s.view.println()
		s.view.printf(rerollMsg6)

		line, ok := s.readLine()
		if !ok {
			return
		}
		cmd, positions, err := ParseReroll(line)
		if err != nil {
			s.invalid(line, err)
			continue
		}
		switch cmd {
		case CmdExit:
			g.Abort()
		case CmdScorecard:
			s.view.Scorecard(g.Card)
		case CmdDice:
			s.view.Dice(g)
		case CmdEndTurn:
			_ = g.StopRolling()
		case CmdReroll:
			if err := g.Reroll(positions); err != nil {
				s.invalid(line, err)
				continue
			}
			s.view.Dice(g)
		}
	}
}

// categoryPhase handles the category prompt until a category is taken or the player exits.
func (s *Session) categoryPhase() {
	g := s.Game
	for g.Phase == game.PhaseAwaitingCategory {
		s.view.println()
		s.view.println(categoryMsg1)
		s.view.println()
		s.view.printf(categoryMsg2)

		line, ok := s.readLine()
		if !ok {
			return
		}
		cmd, c, err := ParseCategory(line)
		if err != nil {
			s.invalid(line, err)
			continue
		}
		switch cmd {
		case CmdExit:
			g.Abort()
		case CmdScorecard:
			s.view.Scorecard(g.Card)
		case CmdDice:
			s.view.Dice(g)
		case CmdCategory:
			out, err := g.Choose(c)
			if err != nil {
				s.invalid(line, err)
				continue
			}
			ev := log.Debug().Str("game", g.ID).Int("turn", g.Turn).Str("category", c.String()).Int("score", out.Score)
			if c == game.YahtzeeBonus {
				ev = ev.Str("bonus", out.Bonus.String())
				if out.Bonus == game.BonusNone {
					log.Warn().Str("game", g.ID).Int("turn", g.Turn).Msg("yahtzee bonus chosen with nothing to score")
				}
			}
			ev.Msg("category scored")
			s.view.Scorecard(g.Card)
		}
	}
}

// readLine returns the next input line. At end of input the game is aborted.
func (s *Session) readLine() (string, bool) {
	if s.in.Scan() {
		return s.in.Text(), true
	}
	if err := s.in.Err(); err != nil {
		log.Error().Err(err).Msg("read input")
	} else {
		log.Info().Str("game", s.Game.ID).Msg("input closed")
	}
	s.Game.Abort()
	return "", false
}

func (s *Session) invalid(line string, err error) {
	log.Debug().Str("input", line).Err(err).Msg("invalid input")
	s.view.Invalid()
}

// export writes the final scorecard; failures go to the console and the log.
func (s *Session) export() {
	if s.opts.OutputFile == "" {
		return
	}
	if err := Export(s.opts.OutputFile, s.Game.Card); err != nil {
		s.view.println(exportErrMsg + s.opts.OutputFile)
		log.Error().Err(err).Str("file", s.opts.OutputFile).Msg("export scorecard")
		return
	}
	log.Info().Str("file", s.opts.OutputFile).Msg("scorecard exported")
}

// Export writes the scorecard text to path, replacing any existing file.
func Export(path string, card *game.Scorecard) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	NewRenderer(w).Scorecard(card)
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
