package save

import (
	"path/filepath"
	"reflect"
	"testing"

	"moneyquest/internal/model"
)

func TestPlayerRoundTrip(t *testing.T) {
	state := model.NewPlayerState()
	state.Month = 4
	state.Cash = -35 // cash may go negative via rounding
	state.Debt = 180
	state.CreditScore = 702
	state.Choices["phone_plan"] = "basic"
	state.Choices["credit_card"] = "pay_full"
	state.History = []model.MonthlySnapshot{
		{Month: 1, NetWorth: 275, Cash: 150, Savings: 125, Debt: 0, CreditScore: 694},
		{Month: 2, NetWorth: 300, Cash: 140, Savings: 160, Debt: 0, CreditScore: 700},
		{Month: 3, NetWorth: 280, Cash: 100, Savings: 180, Debt: 0, CreditScore: 702},
	}

	data, err := EncodePlayer(state)
	if err != nil {
		t.Fatalf("EncodePlayer: %v", err)
	}
	got, err := DecodePlayer(data)
	if err != nil {
		t.Fatalf("DecodePlayer: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, state)
	}
}

func TestPlayerRoundTripEmpty(t *testing.T) {
	state := model.NewPlayerState()
	data, err := EncodePlayer(state)
	if err != nil {
		t.Fatalf("EncodePlayer: %v", err)
	}
	got, err := DecodePlayer(data)
	if err != nil {
		t.Fatalf("DecodePlayer: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Fatalf("empty-history round trip mismatch:\n got %+v\nwant %+v", got, state)
	}
}

func TestDecodePlayerDefaults(t *testing.T) {
	// Legacy save with only a couple of fields present.
	got, err := DecodePlayer([]byte("cash = 42\nmonth = 3\n"))
	if err != nil {
		t.Fatalf("DecodePlayer: %v", err)
	}
	if got.Cash != 42 || got.Month != 3 {
		t.Fatalf("explicit fields lost: %+v", got)
	}
	if got.Savings != 100 || got.Debt != 0 || got.CreditScore != 680 {
		t.Fatalf("balance defaults wrong: %+v", got)
	}
	if got.Income.HoursPerWeek != 20 || got.Income.WagePerHour != 15 || got.Income.WithholdingRate != 0.12 {
		t.Fatalf("income defaults wrong: %+v", got.Income)
	}
	if got.Budget.Needs != 0.5 || got.Budget.Wants != 0.3 || got.Budget.Savings != 0.2 {
		t.Fatalf("budget defaults wrong: %+v", got.Budget)
	}
	if got.Choices == nil || got.History == nil {
		t.Fatal("maps/slices should be initialized")
	}
}

func TestDecodePlayerClampsRanges(t *testing.T) {
	got, err := DecodePlayer([]byte("credit_score = 9000\ndebt = -5\nsavings = -1\n"))
	if err != nil {
		t.Fatalf("DecodePlayer: %v", err)
	}
	if got.CreditScore != 850 {
		t.Fatalf("credit score = %d, want clamped 850", got.CreditScore)
	}
	if got.Debt != 0 || got.Savings != 0 {
		t.Fatalf("debt/savings = %d/%d, want clamped 0/0", got.Debt, got.Savings)
	}
}

func TestDecodePlayerMalformed(t *testing.T) {
	if _, err := DecodePlayer([]byte("cash = [not toml")); err == nil {
		t.Fatal("malformed save should be rejected")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	profile := model.NewQuizSaveState()
	profile.DisplayName = "Avery"
	profile.TotalPoints = 230
	profile.Streak = 6
	profile.LastPlayed = "2025-10-05"
	profile.LastRecorded = "2025-10-05"
	profile.StreakFreezes = 1
	profile.RoomCode = "ECON1A"
	profile.Badges["streak_5"] = true
	profile.CategoryStats["budget"] = model.CategoryStat{Correct: 7, Attempted: 9}
	profile.History = []model.DayResult{
		{
			Date: "2025-10-04", Score: 35, TimeSecs: 91, Correct: 3, Total: 5,
			FinishedProgress: false, Categories: []string{"budget", "credit", "loans", "budget", "scams"},
		},
		{
			Date: "2025-10-05", Score: 46, TimeSecs: 62, Correct: 4, Total: 5,
			FinishedProgress: true, Categories: []string{"budget", "credit", "saving", "paycheck"},
		},
	}

	data, err := EncodeProfile(profile)
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}
	got, err := DecodeProfile(data)
	if err != nil {
		t.Fatalf("DecodeProfile: %v", err)
	}
	if !reflect.DeepEqual(got, profile) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, profile)
	}
}

func TestProfileRoundTripEmptyMaps(t *testing.T) {
	profile := model.NewQuizSaveState()
	data, err := EncodeProfile(profile)
	if err != nil {
		t.Fatalf("EncodeProfile: %v", err)
	}
	got, err := DecodeProfile(data)
	if err != nil {
		t.Fatalf("DecodeProfile: %v", err)
	}
	if !reflect.DeepEqual(got, profile) {
		t.Fatalf("empty profile round trip mismatch:\n got %+v\nwant %+v", got, profile)
	}
}

func TestDecodeProfileDefaults(t *testing.T) {
	got, err := DecodeProfile([]byte("total_points = 80\n"))
	if err != nil {
		t.Fatalf("DecodeProfile: %v", err)
	}
	if got.TotalPoints != 80 {
		t.Fatalf("total points = %d, want 80", got.TotalPoints)
	}
	if got.DisplayName != "You" || got.StreakFreezes != 3 {
		t.Fatalf("defaults wrong: %+v", got)
	}
	if got.Badges == nil || got.CategoryStats == nil || got.History == nil {
		t.Fatal("maps/slices should be initialized")
	}
}

func TestLoadMissingFilesAreFresh(t *testing.T) {
	dir := t.TempDir()

	state, err := LoadPlayer(filepath.Join(dir, PlayerFile))
	if err != nil {
		t.Fatalf("LoadPlayer: %v", err)
	}
	if !reflect.DeepEqual(state, model.NewPlayerState()) {
		t.Fatal("missing player save should yield a fresh state")
	}

	profile, err := LoadProfile(filepath.Join(dir, ProfileFile))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if !reflect.DeepEqual(profile, model.NewQuizSaveState()) {
		t.Fatal("missing profile save should yield a fresh profile")
	}
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	playerPath := filepath.Join(dir, "saves", PlayerFile)

	state := model.NewPlayerState()
	state.Cash = 321
	if err := WritePlayer(playerPath, state); err != nil {
		t.Fatalf("WritePlayer: %v", err)
	}
	got, err := LoadPlayer(playerPath)
	if err != nil {
		t.Fatalf("LoadPlayer: %v", err)
	}
	if got.Cash != 321 {
		t.Fatalf("cash = %d, want 321", got.Cash)
	}
}
