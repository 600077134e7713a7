package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	tm := time.Date(2026, 3, 1, 5, 0, 0, 0, loc) // 2026-02-28 19:00 UTC
	if got := DateKey(tm); got != "2026-02-28" {
		t.Errorf("DateKey() = %q, want 2026-02-28", got)
	}
}

func TestSeed_StablePerDateAndSalt(t *testing.T) {
	morning := time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)

	if Seed(morning, "salt") != Seed(evening, "salt") {
		t.Error("same date produced different seeds")
	}
	if Seed(morning, "salt") == Seed(nextDay, "salt") {
		t.Error("different dates produced the same seed")
	}
	if Seed(morning, "salt") == Seed(morning, "other") {
		t.Error("different salts produced the same seed")
	}
	if Seed(morning, "salt") != SeedForKey("2026-10-17", "salt") {
		t.Error("Seed and SeedForKey disagree")
	}
}
