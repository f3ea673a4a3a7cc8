package quiz

import (
	"testing"
	"time"

	"moneyquest/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestUpdateStreakFirstPlay(t *testing.T) {
	save := model.NewQuizSaveState()
	UpdateStreak(save, day(t, "2025-10-05"))
	if save.Streak != 1 {
		t.Fatalf("streak = %d, want 1", save.Streak)
	}
	if save.LastPlayed != "2025-10-05" {
		t.Fatalf("lastPlayed = %q, want 2025-10-05", save.LastPlayed)
	}
}

func TestUpdateStreakConsecutiveDay(t *testing.T) {
	save := model.NewQuizSaveState()
	save.Streak = 3
	save.LastPlayed = "2025-10-04"
	UpdateStreak(save, day(t, "2025-10-05"))
	if save.Streak != 4 {
		t.Fatalf("streak = %d, want 4", save.Streak)
	}
}

func TestUpdateStreakSameDayIdempotent(t *testing.T) {
	save := model.NewQuizSaveState()
	save.Streak = 7
	save.LastPlayed = "2025-10-05"
	save.StreakFreezes = 2

	UpdateStreak(save, day(t, "2025-10-05"))
	if save.Streak != 7 {
		t.Fatalf("same-day replay changed streak to %d, want 7", save.Streak)
	}
	if save.StreakFreezes != 2 {
		t.Fatalf("same-day replay consumed a freeze: %d, want 2", save.StreakFreezes)
	}
}

func TestUpdateStreakGapWithFreeze(t *testing.T) {
	save := model.NewQuizSaveState()
	save.Streak = 5
	save.LastPlayed = "2025-10-03"
	save.StreakFreezes = 2

	used := UpdateStreak(save, day(t, "2025-10-05"))
	if !used {
		t.Fatal("expected a freeze to be consumed")
	}
	if save.Streak != 6 {
		t.Fatalf("streak = %d, want 6 (freeze preserves it)", save.Streak)
	}
	if save.StreakFreezes != 1 {
		t.Fatalf("freezes = %d, want 1", save.StreakFreezes)
	}
	if save.LastPlayed != "2025-10-05" {
		t.Fatalf("lastPlayed = %q, want 2025-10-05", save.LastPlayed)
	}
}

func TestUpdateStreakGapWithoutFreeze(t *testing.T) {
	save := model.NewQuizSaveState()
	save.Streak = 5
	save.LastPlayed = "2025-10-01"
	save.StreakFreezes = 0

	used := UpdateStreak(save, day(t, "2025-10-05"))
	if used {
		t.Fatal("no freeze available, none should be consumed")
	}
	if save.Streak != 1 {
		t.Fatalf("streak = %d, want 1 (reset)", save.Streak)
	}
}
