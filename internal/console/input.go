// internal/console/input.go
//
// Parsing of the two console prompts.
//   - Re-roll prompt:  S, D, X, 0, or a string of die numbers ("134").
//   - Category prompt: S, D, X, or a category number 1–14.
// Letters are case-insensitive and surrounding whitespace is ignored.
// Anything else is ErrInvalidInput; callers show one generic message.

package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/robalobadob/yahtzee/internal/game"
)

// ErrInvalidInput covers every malformed console entry.
var ErrInvalidInput = errors.New("invalid input")

// Command is what a console line asks for.
type Command int

const (
	CmdScorecard Command = iota + 1
	CmdDice
	CmdExit
	CmdEndTurn
	CmdReroll
	CmdCategory
)

const (
	respExit      = "X"
	respScorecard = "S"
	respDice      = "D"
	respEndTurn   = "0"
)

// ParseReroll reads a re-roll prompt answer.
// For CmdReroll the returned positions are 1-based, distinct and in [1,5].
func ParseReroll(line string) (Command, []int, error) {
	s := strings.TrimSpace(line)
	if cmd, ok := common(s); ok {
		return cmd, nil, nil
	}
	if s == respEndTurn {
		return CmdEndTurn, nil, nil
	}
	if s == "" {
		return 0, nil, ErrInvalidInput
	}

	s = strings.ReplaceAll(s, " ", "")
	var seen [game.HandSize + 1]bool
	positions := make([]int, 0, len(s))
	for _, r := range s {
		p := int(r - '0')
		if p < 1 || p > game.HandSize || seen[p] {
			return 0, nil, ErrInvalidInput
		}
		seen[p] = true
		positions = append(positions, p)
	}
	return CmdReroll, positions, nil
}

// ParseCategory reads a category prompt answer.
func ParseCategory(line string) (Command, game.Category, error) {
	s := strings.TrimSpace(line)
	if cmd, ok := common(s); ok {
		return cmd, 0, nil
	}
	if s == "" {
		return 0, 0, ErrInvalidInput
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, 0, ErrInvalidInput
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, ErrInvalidInput
	}
	c := game.Category(n)
	if !c.Valid() {
		return 0, 0, ErrInvalidInput
	}
	return CmdCategory, c, nil
}

// common handles the letters accepted at both prompts.
func common(s string) (Command, bool) {
	switch strings.ToUpper(s) {
	case respExit:
		return CmdExit, true
	case respScorecard:
		return CmdScorecard, true
	case respDice:
		return CmdDice, true
	}
	return 0, false
}
