package quiz

import (
	"testing"

	"moneyquest/internal/model"
)

func completedSession(t *testing.T, n int, answers []string) *Session {
	t.Helper()
	s := newTestSession(t, n)
	for _, a := range answers {
		mustSubmit(t, s, a)
		if s.Completed() {
			return s
		}
		mustNext(t, s)
	}
	if !s.Completed() {
		t.Fatal("session did not complete")
	}
	return s
}

func TestRecordOncePerDay(t *testing.T) {
	save := model.NewQuizSaveState()
	s := completedSession(t, 3, []string{"True", "True", "True"})

	if !Record(save, s) {
		t.Fatal("first Record should apply")
	}
	points := save.TotalPoints
	if points != 50 {
		t.Fatalf("total points = %d, want 50", points)
	}
	if save.Streak != 1 {
		t.Fatalf("streak = %d, want 1", save.Streak)
	}
	if len(save.History) != 1 {
		t.Fatalf("history len = %d, want 1", len(save.History))
	}
	if !save.Badges[BadgePerfectDay] {
		t.Fatal("perfect day badge not awarded")
	}

	// Same-day replay: the guard holds even on a fresh session.
	replay := completedSession(t, 3, []string{"True", "True", "True"})
	if Record(save, replay) {
		t.Fatal("second Record on the same day should be a no-op")
	}
	if save.TotalPoints != points || len(save.History) != 1 {
		t.Fatal("replay must not change points or history")
	}
}

func TestRecordCategoryStats(t *testing.T) {
	save := model.NewQuizSaveState()
	s := completedSession(t, 3, []string{"True", "False", "True"})
	Record(save, s)

	stat := save.CategoryStats["credit"]
	if stat.Attempted != 3 || stat.Correct != 2 {
		t.Fatalf("credit stats = %+v, want 2/3", stat)
	}
	if stat.Correct > stat.Attempted {
		t.Fatal("correct exceeds attempted")
	}
}

func TestRecordProgressFinishSkipsPerfectBadge(t *testing.T) {
	save := model.NewQuizSaveState()
	s := completedSession(t, 5, []string{"True", "True", "True", "True", "True"})
	if !s.FinishedByProgress {
		t.Fatal("expected a progress finish")
	}
	Record(save, s)

	if save.Badges[BadgePerfectDay] {
		t.Fatal("progress finish must not award the perfect day badge")
	}
	summary := save.History[0]
	if !summary.FinishedProgress {
		t.Fatal("day summary should mark the progress finish")
	}
	if summary.Total != 5 || summary.Correct != 4 {
		t.Fatalf("summary = %+v, want 4 correct of 5", summary)
	}
}

func TestRecordStreakBadges(t *testing.T) {
	save := model.NewQuizSaveState()
	save.Streak = 4
	save.LastPlayed = "2025-10-04"

	s := completedSession(t, 3, []string{"True", "True", "True"})
	Record(save, s)

	if save.Streak != 5 {
		t.Fatalf("streak = %d, want 5", save.Streak)
	}
	if !save.Badges[BadgeStreak5] {
		t.Fatal("streak_5 badge not awarded")
	}
	if save.Badges[BadgeStreak10] {
		t.Fatal("streak_10 badge awarded too early")
	}
}

func TestRecordCenturionBadge(t *testing.T) {
	save := model.NewQuizSaveState()
	s := completedSession(t, 3, []string{"True", "True", "True"})
	s.Score = 120 // as if the day ran long with bonuses
	Record(save, s)

	if !save.Badges[BadgeCenturion] {
		t.Fatal("centurion badge not awarded at score >= 100")
	}
	if save.TotalPoints != 120 {
		t.Fatalf("total points = %d, want 120", save.TotalPoints)
	}
}

func TestRecordRequiresCompletion(t *testing.T) {
	save := model.NewQuizSaveState()
	s := newTestSession(t, 3)
	mustSubmit(t, s, "True")

	if Record(save, s) {
		t.Fatal("Record on an in-flight session should be a no-op")
	}
	if save.TotalPoints != 0 || len(save.History) != 0 {
		t.Fatal("in-flight Record must not mutate the save")
	}
}
