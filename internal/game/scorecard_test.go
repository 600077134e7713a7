package game

import (
	"errors"
	"testing"
)

func TestScorecard_UnsetVersusZero(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	if _, ok := sc.Get(Aces); ok {
		t.Fatal("Aces set on a new card")
	}
	score, err := sc.Record(Aces, Hand{2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if v, ok := sc.Get(Aces); !ok || v != 0 || score != 0 {
		t.Errorf("Get(Aces) = %d, %v; want 0, true", v, ok)
	}
}

func TestScorecard_RecordTwice(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	if _, err := sc.Record(Chance, Hand{1, 1, 1, 1, 2}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, err := sc.Record(Chance, Hand{6, 6, 6, 6, 6}); !errors.Is(err, ErrCategoryUsed) {
		t.Errorf("second Record() error = %v, want ErrCategoryUsed", err)
	}
	if v, _ := sc.Get(Chance); v != 6 {
		t.Errorf("Chance = %d, want 6 (unchanged)", v)
	}
}

func TestScorecard_RecordRejectsBonusAndInvalid(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	if _, err := sc.Record(YahtzeeBonus, Hand{1, 1, 1, 1, 1}); !errors.Is(err, ErrBonusSlot) {
		t.Errorf("Record(bonus) error = %v, want ErrBonusSlot", err)
	}
	if _, err := sc.Record(Category(0), Hand{1, 1, 1, 1, 1}); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Record(0) error = %v, want ErrInvalidCategory", err)
	}
}

func TestScorecard_RecordYahtzeeOpensBonus(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	if _, ok := sc.Get(YahtzeeBonus); ok {
		t.Fatal("bonus set on a new card")
	}
	if _, err := sc.Record(Yahtzee, Hand{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if v, ok := sc.Get(YahtzeeBonus); !ok || v != 0 {
		t.Errorf("bonus = %d, %v; want 0, true", v, ok)
	}
}

func TestScorecard_BonusAction(t *testing.T) {
	yahtzee := Hand{5, 5, 5, 5, 5}
	other := Hand{5, 5, 5, 5, 4}

	tests := []struct {
		name     string
		base     *Hand // hand used to record Yahtzee first; nil leaves it unset
		hand     Hand
		want     BonusAction
		wantUsed bool
	}{
		{name: "base unset, yahtzee hand", hand: yahtzee, want: BonusFillYahtzee},
		{name: "base unset, other hand", hand: other, want: BonusFillYahtzee},
		{name: "base maxed, yahtzee hand", base: &yahtzee, hand: yahtzee, want: BonusIncrement},
		{name: "base maxed, other hand", base: &yahtzee, hand: other, want: BonusNone, wantUsed: true},
		{name: "base scratched, yahtzee hand", base: &other, hand: yahtzee, want: BonusNone},
		{name: "base scratched, other hand", base: &other, hand: other, want: BonusNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScorecard(DefaultRules())
			if tt.base != nil {
				if _, err := sc.Record(Yahtzee, *tt.base); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}
			if got := sc.BonusAction(tt.hand); got != tt.want {
				t.Errorf("BonusAction() = %s, want %s", got, tt.want)
			}
			if got := sc.Used(YahtzeeBonus, tt.hand); got != tt.wantUsed {
				t.Errorf("Used(bonus) = %v, want %v", got, tt.wantUsed)
			}
		})
	}
}

func TestScorecard_FillYahtzeeFromBonus(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	score, err := sc.FillYahtzeeFromBonus(Hand{2, 2, 2, 2, 2})
	if err != nil {
		t.Fatalf("FillYahtzeeFromBonus() error = %v", err)
	}
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
	if v, _ := sc.Get(Yahtzee); v != 50 {
		t.Errorf("Yahtzee = %d, want 50", v)
	}
	if v, ok := sc.Get(YahtzeeBonus); !ok || v != 0 {
		t.Errorf("bonus = %d, %v; want 0, true", v, ok)
	}
	if _, err := sc.FillYahtzeeFromBonus(Hand{2, 2, 2, 2, 2}); !errors.Is(err, ErrCategoryUsed) {
		t.Errorf("second fill error = %v, want ErrCategoryUsed", err)
	}
}

func TestScorecard_FillYahtzeeFromBonusNonYahtzee(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	if score, err := sc.FillYahtzeeFromBonus(Hand{1, 2, 3, 4, 5}); err != nil || score != 0 {
		t.Fatalf("FillYahtzeeFromBonus() = %d, %v; want 0, nil", score, err)
	}
	if v, ok := sc.Get(Yahtzee); !ok || v != 0 {
		t.Errorf("Yahtzee = %d, %v; want 0, true", v, ok)
	}
}

func TestScorecard_AddYahtzeeBonus(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	y := Hand{3, 3, 3, 3, 3}
	if _, err := sc.AddYahtzeeBonus(y); !errors.Is(err, ErrNoBonus) {
		t.Fatalf("AddYahtzeeBonus() before base error = %v, want ErrNoBonus", err)
	}
	if _, err := sc.Record(Yahtzee, y); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	for want := 1; want <= 3; want++ {
		n, err := sc.AddYahtzeeBonus(y)
		if err != nil {
			t.Fatalf("AddYahtzeeBonus() error = %v", err)
		}
		if n != want {
			t.Errorf("count = %d, want %d", n, want)
		}
	}
	if _, err := sc.AddYahtzeeBonus(Hand{3, 3, 3, 3, 1}); !errors.Is(err, ErrNoBonus) {
		t.Errorf("AddYahtzeeBonus(non-yahtzee) error = %v, want ErrNoBonus", err)
	}
	if got := sc.Points(YahtzeeBonus); got != 300 {
		t.Errorf("Points(bonus) = %d, want 300", got)
	}
	if got := sc.LowerTotal(); got != 350 {
		t.Errorf("LowerTotal() = %d, want 350", got)
	}
}

func TestScorecard_Totals(t *testing.T) {
	sc := NewScorecard(DefaultRules())
	record := func(c Category, h Hand) {
		t.Helper()
		if _, err := sc.Record(c, h); err != nil {
			t.Fatalf("Record(%s) error = %v", c, err)
		}
	}
	// Three of each face: 3+6+9+12+15+18 = 63.
	record(Aces, Hand{1, 1, 1, 2, 3})
	record(Twos, Hand{2, 2, 2, 1, 3})
	record(Threes, Hand{3, 3, 3, 1, 2})
	record(Fours, Hand{4, 4, 4, 1, 2})
	record(Fives, Hand{5, 5, 5, 1, 2})
	if sc.UpperBonus() != 0 {
		t.Errorf("UpperBonus() before threshold = %d, want 0", sc.UpperBonus())
	}
	record(Sixes, Hand{6, 6, 6, 1, 2})

	if got := sc.UpperSubtotal(); got != 63 {
		t.Errorf("UpperSubtotal() = %d, want 63", got)
	}
	if got := sc.UpperBonus(); got != 35 {
		t.Errorf("UpperBonus() = %d, want 35", got)
	}
	record(FullHouse, Hand{2, 2, 3, 3, 3})
	record(Chance, Hand{6, 6, 6, 6, 5})
	if got := sc.LowerTotal(); got != 25+29 {
		t.Errorf("LowerTotal() = %d, want %d", got, 25+29)
	}
	if got := sc.GrandTotal(); got != 63+35+25+29 {
		t.Errorf("GrandTotal() = %d, want %d", got, 63+35+25+29)
	}
	if sc.Filled() != 8 || sc.Complete() {
		t.Errorf("Filled() = %d, Complete() = %v", sc.Filled(), sc.Complete())
	}
	if got := sc.Scores(); got["Sixes"] != 18 || got["Full House"] != 25 || len(got) != 8 {
		t.Errorf("Scores() = %v", got)
	}
}
