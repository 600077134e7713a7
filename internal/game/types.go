// internal/game/types.go
//
// Core type definitions for the Yahtzee game engine.
// Defines:
//   - Category: one of the fourteen scorecard slots (numbered 1–14).
//   - Hand:     the five current die faces.
//   - DieCount: (face, multiplicity) grouping of a hand.
//   - Rules:    scoring constants and the per-turn roll budget.
//   - Phase:    turn/roll state of a session.
//   - Game:     state for a single in-progress or finished session.

package game

import (
	"fmt"

	"github.com/robalobadob/yahtzee/internal/dice"
)

const (
	// HandSize is the number of dice in a hand.
	HandSize = 5
	// NumCategories counts every scorecard slot, bonus included.
	NumCategories = 14
	// CategoriesToComplete is the number of non-bonus slots that end the game.
	CategoriesToComplete = 13
)

// Category identifies a scorecard slot. Values match the numbers the player types.
type Category int

const (
	Aces Category = iota + 1
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
	YahtzeeBonus
)

var categoryLabels = [NumCategories + 1]string{
	Aces:          "Aces",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	ThreeOfAKind:  "3 of a kind",
	FourOfAKind:   "4 of a kind",
	FullHouse:     "Full House",
	SmallStraight: "Sm. Straight",
	LargeStraight: "Lg. Straight",
	Yahtzee:       "YAHTZEE",
	Chance:        "Chance",
	YahtzeeBonus:  "YAHTZEE BONUS",
}

// Categories returns every category in scorecard order.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := Aces; c <= YahtzeeBonus; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the fourteen categories.
func (c Category) Valid() bool { return c >= Aces && c <= YahtzeeBonus }

// Upper reports whether c belongs to the upper section (Aces..Sixes).
func (c Category) Upper() bool { return c >= Aces && c <= Sixes }

// Face is the die value an upper category counts. Zero for lower categories.
func (c Category) Face() int {
	if !c.Upper() {
		return 0
	}
	return int(c)
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryLabels[c]
}

// Hand holds the five current die faces, each in [1,6].
type Hand [HandSize]int

// Sum adds all five faces.
func (h Hand) Sum() int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

// Valid reports whether every face is in [1, dice.Sides].
func (h Hand) Valid() bool {
	for _, d := range h {
		if d < 1 || d > dice.Sides {
			return false
		}
	}
	return true
}

// DieCount is one (face value, multiplicity) pair of a hand.
type DieCount struct {
	Face  int
	Count int
}

// Rules holds the scoring constants. Zero values are legal; negatives are clamped.
type Rules struct {
	FullHouse           int // fixed full house score (25)
	SmallStraight       int // fixed small straight score (30)
	LargeStraight       int // fixed large straight score (40)
	Yahtzee             int // fixed Yahtzee score (50)
	YahtzeeBonus        int // value of each extra Yahtzee (100)
	UpperBonus          int // upper-section bonus (35)
	UpperBonusThreshold int // upper subtotal needed for the bonus (63)
	MaxRolls            int // rolls per turn, first roll included (3)
}

// DefaultRules returns the standard scoring constants.
func DefaultRules() Rules {
	return Rules{
		FullHouse:           25,
		SmallStraight:       30,
		LargeStraight:       40,
		Yahtzee:             50,
		YahtzeeBonus:        100,
		UpperBonus:          35,
		UpperBonusThreshold: 63,
		MaxRolls:            3,
	}
}

// Normalize clamps negative scores to 0 and guarantees at least one roll per turn.
func (r Rules) Normalize() Rules {
	for _, v := range []*int{
		&r.FullHouse, &r.SmallStraight, &r.LargeStraight, &r.Yahtzee,
		&r.YahtzeeBonus, &r.UpperBonus, &r.UpperBonusThreshold,
	} {
		if *v < 0 {
			*v = 0
		}
	}
	if r.MaxRolls < 1 {
		r.MaxRolls = 1
	}
	return r
}

// Phase is the turn/roll state of a session.
type Phase string

const (
	PhaseAwaitingRoll     Phase = "awaiting_roll"
	PhaseRolling          Phase = "rolling"
	PhaseAwaitingCategory Phase = "awaiting_category"
	PhaseTurnComplete     Phase = "turn_complete"
	PhaseFinished         Phase = "finished"
	PhaseAborted          Phase = "aborted"
)

// Game holds the state of a single Yahtzee session.
// It is owned by exactly one caller; nothing in it is safe for concurrent use.
type Game struct {
	ID    string     // Unique game identifier (UUID).
	Rules Rules      // Scoring constants in force for this game.
	Hand  Hand       // Current dice.
	Card  *Scorecard // Scores recorded so far.
	Turn  int        // Turns started (1-based once play begins).
	Rolls int        // Rolls made in the current turn.
	Phase Phase      // Current state.

	roller dice.Roller
}
