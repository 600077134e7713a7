// internal/game/engine.go
//
// Core game engine for a single Yahtzee session.
// Responsibilities:
//   - Create new games with a fresh scorecard and an injected dice source.
//   - Drive the turn/roll state machine: roll, re-roll selected dice, stop early.
//   - Validate and apply category choices (including the Yahtzee-bonus slot).
//   - Track state transitions: turn_complete → … → finished, or aborted on exit.
//
// Notes:
//   - Phase is an enum defined in types.go.
//   - Wrong-phase calls return ErrWrongPhase and leave the game untouched.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/yahtzee/internal/dice"
)

var (
	ErrWrongPhase = errors.New("action not allowed in current phase")
	ErrInvalidDie = errors.New("invalid die selection")
)

// Outcome describes what a category choice did.
type Outcome struct {
	Category Category
	Score    int         // points recorded; for the bonus slot, the new count or the filled Yahtzee score
	Bonus    BonusAction // only meaningful when Category == YahtzeeBonus
}

// New constructs a game ready for its first turn.
func New(rules Rules, r dice.Roller) *Game {
	rules = rules.Normalize()
	return &Game{
		ID:     uuid.NewString(),
		Rules:  rules,
		Card:   NewScorecard(rules),
		Phase:  PhaseAwaitingRoll,
		roller: r,
	}
}

// StartTurn begins the next turn: every die is rolled and the roll count is 1.
// With a one-roll budget the turn goes straight to category selection.
func (g *Game) StartTurn() error {
	if g.Phase != PhaseAwaitingRoll && g.Phase != PhaseTurnComplete {
		return fmt.Errorf("%w: start turn in %s", ErrWrongPhase, g.Phase)
	}
	g.Turn++
	for i := range g.Hand {
		g.Hand[i] = dice.Roll(g.roller)
	}
	g.Rolls = 1
	g.Phase = PhaseRolling
	g.checkBudget()
	return nil
}

// Reroll re-rolls the dice at the given 1-based positions.
// Positions must be non-empty, distinct and within [1, HandSize].
// Unselected dice keep their values.
func (g *Game) Reroll(positions []int) error {
	if g.Phase != PhaseRolling {
		return fmt.Errorf("%w: reroll in %s", ErrWrongPhase, g.Phase)
	}
	if err := validatePositions(positions); err != nil {
		return err
	}
	for _, p := range positions {
		g.Hand[p-1] = dice.Roll(g.roller)
	}
	g.Rolls++
	g.checkBudget()
	return nil
}

// StopRolling ends rolling early and moves to category selection.
func (g *Game) StopRolling() error {
	if g.Phase != PhaseRolling {
		return fmt.Errorf("%w: stop rolling in %s", ErrWrongPhase, g.Phase)
	}
	g.Phase = PhaseAwaitingCategory
	return nil
}

// RollsLeft reports how many re-rolls remain this turn.
func (g *Game) RollsLeft() int {
	if g.Phase != PhaseRolling {
		return 0
	}
	return g.Rules.MaxRolls - g.Rolls
}

// Choose scores category c from the current hand.
//
// The Yahtzee-bonus slot dispatches on Scorecard.BonusAction. A BonusNone
// choice still ends the turn without changing the card; callers can tell from
// Outcome.Bonus.
func (g *Game) Choose(c Category) (Outcome, error) {
	if g.Phase != PhaseAwaitingCategory {
		return Outcome{}, fmt.Errorf("%w: choose in %s", ErrWrongPhase, g.Phase)
	}
	if !c.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if g.Card.Used(c, g.Hand) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrCategoryUsed, c)
	}

	out := Outcome{Category: c}
	var err error
	if c == YahtzeeBonus {
		out.Bonus = g.Card.BonusAction(g.Hand)
		switch out.Bonus {
		case BonusFillYahtzee:
			out.Score, err = g.Card.FillYahtzeeFromBonus(g.Hand)
		case BonusIncrement:
			out.Score, err = g.Card.AddYahtzeeBonus(g.Hand)
		}
	} else {
		out.Score, err = g.Card.Record(c, g.Hand)
	}
	if err != nil {
		return Outcome{}, err
	}

	if g.Card.Complete() {
		g.Phase = PhaseFinished
	} else {
		g.Phase = PhaseTurnComplete
	}
	return out, nil
}

// Abort ends the game at the player's request. No-op once the game is over.
func (g *Game) Abort() {
	if !g.Over() {
		g.Phase = PhaseAborted
	}
}

// Over reports whether the game reached a terminal phase.
func (g *Game) Over() bool {
	return g.Phase == PhaseFinished || g.Phase == PhaseAborted
}

// Completed reports whether every non-bonus category was filled.
func (g *Game) Completed() bool { return g.Phase == PhaseFinished }

// checkBudget closes rolling once the turn's rolls are spent.
func (g *Game) checkBudget() {
	if g.Rolls >= g.Rules.MaxRolls {
		g.Phase = PhaseAwaitingCategory
	}
}

// validatePositions checks a re-roll selection.
func validatePositions(positions []int) error {
	if len(positions) == 0 {
		return fmt.Errorf("%w: nothing selected", ErrInvalidDie)
	}
	var seen [HandSize + 1]bool
	for _, p := range positions {
		if p < 1 || p > HandSize {
			return fmt.Errorf("%w: die #%d", ErrInvalidDie, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: die #%d selected twice", ErrInvalidDie, p)
		}
		seen[p] = true
	}
	return nil
}
