package store

import (
	"path/filepath"
	"testing"

	"moneyquest/internal/model"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestSnapshotsOrdered(t *testing.T) {
	l := openTestLedger(t)

	// Insert out of order; listing must come back sorted by month.
	snaps := []model.MonthlySnapshot{
		{Month: 2, NetWorth: 300, Cash: 140, Savings: 160, CreditScore: 700},
		{Month: 1, NetWorth: 275, Cash: 150, Savings: 125, CreditScore: 694},
		{Month: 3, NetWorth: 280, Cash: 100, Savings: 180, CreditScore: 702},
	}
	for _, s := range snaps {
		if err := l.SaveSnapshot(s); err != nil {
			t.Fatalf("SaveSnapshot: %v", err)
		}
	}

	got, err := l.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("snapshot count = %d, want 3", len(got))
	}
	for i, s := range got {
		if s.Month != i+1 {
			t.Fatalf("snapshot %d month = %d, want %d", i, s.Month, i+1)
		}
	}
	if got[1].NetWorth != 300 || got[1].CreditScore != 700 {
		t.Fatalf("month 2 = %+v", got[1])
	}
}

func TestSnapshotReplaceSameMonth(t *testing.T) {
	l := openTestLedger(t)

	if err := l.SaveSnapshot(model.MonthlySnapshot{Month: 1, NetWorth: 100}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := l.SaveSnapshot(model.MonthlySnapshot{Month: 1, NetWorth: 250}); err != nil {
		t.Fatalf("SaveSnapshot replace: %v", err)
	}

	got, err := l.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(got) != 1 || got[0].NetWorth != 250 {
		t.Fatalf("snapshots = %+v, want single month with net worth 250", got)
	}
}

func TestSaveDayAndAggregates(t *testing.T) {
	l := openTestLedger(t)

	day := model.DayResult{
		Date: "2025-10-05", Score: 46, TimeSecs: 62, Correct: 4, Total: 5,
		FinishedProgress: true,
	}
	answers := []model.QAResult{
		{QuestionID: "q1", Category: "budget", Correct: true, Seconds: 8.5},
		{QuestionID: "q2", Category: "budget", Correct: false, UserAnswer: "1200", Seconds: 20},
		{QuestionID: "q3", Category: "credit", Correct: true, UsedHint: true, Seconds: 12},
		{QuestionID: "q4", Category: "credit", Correct: true, Seconds: 9},
	}
	if err := l.SaveDay(day, answers); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	days, err := l.ListDays()
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("day count = %d, want 1", len(days))
	}
	got := days[0]
	if got.Date != day.Date || got.Score != day.Score || got.TimeSecs != day.TimeSecs ||
		got.Correct != day.Correct || got.Total != day.Total || !got.FinishedProgress {
		t.Fatalf("day = %+v, want %+v", got, day)
	}

	totals, err := l.CategoryTotals()
	if err != nil {
		t.Fatalf("CategoryTotals: %v", err)
	}
	if got := totals["budget"]; got.Correct != 1 || got.Attempted != 2 {
		t.Fatalf("budget totals = %+v, want 1/2", got)
	}
	if got := totals["credit"]; got.Correct != 2 || got.Attempted != 2 {
		t.Fatalf("credit totals = %+v, want 2/2", got)
	}

	count, err := l.DayCount()
	if err != nil {
		t.Fatalf("DayCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("DayCount = %d, want 1", count)
	}
}

func TestSaveDayReplacesAnswers(t *testing.T) {
	l := openTestLedger(t)

	day := model.DayResult{Date: "2025-10-05", Score: 10, Correct: 1, Total: 1}
	first := []model.QAResult{{QuestionID: "q1", Category: "loans", Correct: false}}
	if err := l.SaveDay(day, first); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	second := []model.QAResult{{QuestionID: "q1", Category: "loans", Correct: true}}
	if err := l.SaveDay(day, second); err != nil {
		t.Fatalf("SaveDay replace: %v", err)
	}

	totals, err := l.CategoryTotals()
	if err != nil {
		t.Fatalf("CategoryTotals: %v", err)
	}
	if got := totals["loans"]; got.Correct != 1 || got.Attempted != 1 {
		t.Fatalf("loans totals = %+v, want 1/1 after replace", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	l := openTestLedger(t)

	if err := l.SaveSnapshot(model.MonthlySnapshot{Month: 1, NetWorth: 275}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	day := model.DayResult{Date: "2025-10-05", Score: 30, Correct: 3, Total: 3}
	if err := l.SaveDay(day, []model.QAResult{{QuestionID: "q1", Category: "scams", Correct: true}}); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	if err := l.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	snaps, err := l.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	days, err := l.ListDays()
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(snaps) != 0 || len(days) != 0 {
		t.Fatalf("reset left %d snapshots, %d days", len(snaps), len(days))
	}
}
