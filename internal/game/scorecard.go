// internal/game/scorecard.go
//
// Scorecard: fourteen slots, each unset or holding a score.
// Responsibilities:
//   - Record a category once (the Yahtzee-bonus counter is the only slot that changes later).
//   - Decide what choosing the Yahtzee-bonus slot does for a given hand.
//   - Compute section subtotals, the upper bonus and the grand total.
//
// Notes:
//   - Unset is kept distinct from a recorded zero.
//   - The bonus slot stores a count of extra Yahtzees; its worth is count × Rules.YahtzeeBonus.

package game

import (
	"errors"
	"fmt"
)

const scoreUnset = -1

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrCategoryUsed    = errors.New("category already used")
	// ErrBonusSlot is returned by Record for YahtzeeBonus; that slot has its own operations.
	ErrBonusSlot = errors.New("yahtzee bonus is not recorded directly")
	ErrNoBonus   = errors.New("yahtzee bonus not available")
)

// BonusAction is what choosing the Yahtzee-bonus slot does for the current hand.
type BonusAction int

const (
	// BonusNone: the slot may be picked but changes nothing.
	BonusNone BonusAction = iota
	// BonusFillYahtzee: base Yahtzee is unset and gets scored from the hand.
	BonusFillYahtzee
	// BonusIncrement: base Yahtzee already maxed and the hand is another Yahtzee.
	BonusIncrement
)

func (a BonusAction) String() string {
	switch a {
	case BonusFillYahtzee:
		return "fill_yahtzee"
	case BonusIncrement:
		return "increment"
	default:
		return "none"
	}
}

// Scorecard records category scores for one game.
type Scorecard struct {
	rules  Rules
	scores [NumCategories + 1]int // index 0 unused
}

// NewScorecard returns a card with every category unset.
func NewScorecard(rules Rules) *Scorecard {
	s := &Scorecard{rules: rules.Normalize()}
	for i := range s.scores {
		s.scores[i] = scoreUnset
	}
	return s
}

// Rules returns the constants the card totals with.
func (s *Scorecard) Rules() Rules { return s.rules }

// Get returns the stored value for c and whether it is set.
// For YahtzeeBonus the value is the bonus count, not points.
func (s *Scorecard) Get(c Category) (int, bool) {
	if !c.Valid() || s.scores[c] == scoreUnset {
		return 0, false
	}
	return s.scores[c], true
}

// Points returns what c contributes to its section total.
func (s *Scorecard) Points(c Category) int {
	v, ok := s.Get(c)
	if !ok {
		return 0
	}
	if c == YahtzeeBonus {
		return v * s.rules.YahtzeeBonus
	}
	return v
}

// Used reports whether c can no longer be chosen with hand h.
//
// Every slot except the bonus is used once set. The bonus slot is used when
// base Yahtzee already holds the maximum and h is not another Yahtzee.
func (s *Scorecard) Used(c Category, h Hand) bool {
	if c != YahtzeeBonus {
		_, ok := s.Get(c)
		return ok
	}
	y, ok := s.Get(Yahtzee)
	return ok && y == s.rules.Yahtzee && !h.IsYahtzee()
}

// Record scores c from h. YahtzeeBonus must go through BonusAction instead.
// Recording Yahtzee also opens the bonus counter at 0.
func (s *Scorecard) Record(c Category, h Hand) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if c == YahtzeeBonus {
		return 0, ErrBonusSlot
	}
	if _, ok := s.Get(c); ok {
		return 0, fmt.Errorf("%w: %s", ErrCategoryUsed, c)
	}
	score := Score(c, h, s.rules)
	s.scores[c] = score
	if c == Yahtzee {
		s.scores[YahtzeeBonus] = 0
	}
	return score, nil
}

// BonusAction decides which bonus operation applies to h.
func (s *Scorecard) BonusAction(h Hand) BonusAction {
	y, ok := s.Get(Yahtzee)
	switch {
	case !ok:
		return BonusFillYahtzee
	case y == s.rules.Yahtzee && h.IsYahtzee():
		return BonusIncrement
	default:
		return BonusNone
	}
}

// FillYahtzeeFromBonus scores base Yahtzee from h and resets the bonus counter.
// Only valid while Yahtzee is unset.
func (s *Scorecard) FillYahtzeeFromBonus(h Hand) (int, error) {
	if s.BonusAction(h) != BonusFillYahtzee {
		return 0, fmt.Errorf("%w: %s", ErrCategoryUsed, Yahtzee)
	}
	score := Score(Yahtzee, h, s.rules)
	s.scores[Yahtzee] = score
	s.scores[YahtzeeBonus] = 0
	return score, nil
}

// AddYahtzeeBonus bumps the bonus counter and returns the new count.
// Only valid when base Yahtzee holds the maximum and h is a Yahtzee.
func (s *Scorecard) AddYahtzeeBonus(h Hand) (int, error) {
	if s.BonusAction(h) != BonusIncrement {
		return 0, ErrNoBonus
	}
	s.scores[YahtzeeBonus]++
	return s.scores[YahtzeeBonus], nil
}

// Filled counts the non-bonus categories that hold a score.
func (s *Scorecard) Filled() int {
	n := 0
	for c := Aces; c < YahtzeeBonus; c++ {
		if _, ok := s.Get(c); ok {
			n++
		}
	}
	return n
}

// Complete reports whether all thirteen non-bonus categories are set.
func (s *Scorecard) Complete() bool { return s.Filled() == CategoriesToComplete }

// UpperSubtotal sums Aces..Sixes, unset counting as 0.
func (s *Scorecard) UpperSubtotal() int {
	total := 0
	for c := Aces; c <= Sixes; c++ {
		total += s.Points(c)
	}
	return total
}

// UpperBonus is the fixed bonus once the upper subtotal reaches the threshold.
func (s *Scorecard) UpperBonus() int {
	if s.UpperSubtotal() >= s.rules.UpperBonusThreshold {
		return s.rules.UpperBonus
	}
	return 0
}

// UpperTotal is the upper subtotal plus any earned bonus.
func (s *Scorecard) UpperTotal() int { return s.UpperSubtotal() + s.UpperBonus() }

// LowerTotal sums the lower section, the bonus slot counted as count × bonus value.
func (s *Scorecard) LowerTotal() int {
	total := 0
	for c := ThreeOfAKind; c <= YahtzeeBonus; c++ {
		total += s.Points(c)
	}
	return total
}

// GrandTotal is UpperTotal + LowerTotal.
func (s *Scorecard) GrandTotal() int { return s.UpperTotal() + s.LowerTotal() }

// Scores returns the set categories keyed by label. The bonus entry is the count.
func (s *Scorecard) Scores() map[string]int {
	out := make(map[string]int, NumCategories)
	for _, c := range Categories() {
		if v, ok := s.Get(c); ok {
			out[c.String()] = v
		}
	}
	return out
}
