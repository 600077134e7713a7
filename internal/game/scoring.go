// internal/game/scoring.go
//
// Category evaluation over a single hand.
// Every function here is pure: it reads the hand and the rules and never
// touches a scorecard. The Yahtzee-bonus slot is stateful and lives in
// scorecard.go.

package game

import "sort"

const (
	smallStraightRun = 4
	largeStraightRun = 5
)

// Counts groups h into (face, multiplicity) pairs sorted by face ascending.
func Counts(h Hand) []DieCount {
	sorted := h
	sort.Ints(sorted[:])

	out := make([]DieCount, 0, HandSize)
	for _, d := range sorted {
		if n := len(out); n > 0 && out[n-1].Face == d {
			out[n-1].Count++
			continue
		}
		out = append(out, DieCount{Face: d, Count: 1})
	}
	return out
}

// IsYahtzee reports whether all five dice show the same face.
func (h Hand) IsYahtzee() bool {
	for i := 1; i < HandSize; i++ {
		if h[i] != h[0] {
			return false
		}
	}
	return true
}

// Score computes what c is worth for h under rules.
//
// For YahtzeeBonus the result is the value of one extra bonus when h is a
// Yahtzee, which is only meaningful next to a scorecard; use
// Scorecard.BonusAction to decide what choosing that slot actually does.
func Score(c Category, h Hand, rules Rules) int {
	if c.Upper() {
		return upper(h, c.Face())
	}

	counts := Counts(h)
	switch c {
	case ThreeOfAKind:
		return ofAKind(h, counts, 3)
	case FourOfAKind:
		return ofAKind(h, counts, 4)
	case FullHouse:
		if isFullHouse(counts) {
			return rules.FullHouse
		}
	case SmallStraight:
		if longestRun(counts) >= smallStraightRun {
			return rules.SmallStraight
		}
	case LargeStraight:
		if longestRun(counts) >= largeStraightRun {
			return rules.LargeStraight
		}
	case Yahtzee:
		if len(counts) == 1 {
			return rules.Yahtzee
		}
	case Chance:
		return h.Sum()
	case YahtzeeBonus:
		if len(counts) == 1 {
			return rules.YahtzeeBonus
		}
	}
	return 0
}

// upper sums the dice showing face.
func upper(h Hand, face int) int {
	score := 0
	for _, d := range h {
		if d == face {
			score += d
		}
	}
	return score
}

// ofAKind scores the whole hand when any face appears at least n times.
func ofAKind(h Hand, counts []DieCount, n int) int {
	for _, dc := range counts {
		if dc.Count >= n {
			return h.Sum()
		}
	}
	return 0
}

// isFullHouse accepts exactly two groups of sizes 2 and 3.
func isFullHouse(counts []DieCount) bool {
	if len(counts) != 2 {
		return false
	}
	a, b := counts[0].Count, counts[1].Count
	return (a == 2 && b == 3) || (a == 3 && b == 2)
}

// longestRun returns the longest stretch of consecutive faces in counts.
// counts must be sorted by face, as Counts returns them.
func longestRun(counts []DieCount) int {
	if len(counts) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(counts); i++ {
		if counts[i].Face == counts[i-1].Face+1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}
