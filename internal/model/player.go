// Package model defines the persisted and in-session data structures
// shared by the finance simulator and the daily quiz.
package model

// Income holds the player's paycheck parameters.
type Income struct {
	HoursPerWeek    float64 `toml:"hours_per_week"`
	WagePerHour     float64 `toml:"wage_per_hour"`
	WithholdingRate float64 `toml:"withholding_rate"`
}

// Budget is the needs/wants/savings split as fractions of net income.
// The three fractions are each >= 0 and sum to at most 1.
type Budget struct {
	Needs   float64 `toml:"needs"`
	Wants   float64 `toml:"wants"`
	Savings float64 `toml:"savings"`
}

// MonthlySnapshot is an immutable record appended once per closed month.
type MonthlySnapshot struct {
	Month       int `toml:"month"`
	NetWorth    int `toml:"net_worth"`
	Cash        int `toml:"cash"`
	Savings     int `toml:"savings"`
	Debt        int `toml:"debt"`
	CreditScore int `toml:"credit_score"`
}

// PlayerState is the full finance-sim state. It is created fresh at
// game start or restored from a save, and mutated only by CloseMonth
// (and explicit reset). History is append-only.
type PlayerState struct {
	Month       int               `toml:"month"`
	Cash        int               `toml:"cash"`
	Savings     int               `toml:"savings"`
	Debt        int               `toml:"debt"`
	CreditScore int               `toml:"credit_score"`
	Income      Income            `toml:"income"`
	Budget      Budget            `toml:"budget"`
	Choices     map[string]string `toml:"choices"`
	History     []MonthlySnapshot `toml:"history"`
}

// NewPlayerState returns the starting state for a new game.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Month:       1,
		Cash:        200,
		Savings:     100,
		Debt:        0,
		CreditScore: 680,
		Income: Income{
			HoursPerWeek:    20,
			WagePerHour:     15,
			WithholdingRate: 0.12,
		},
		Budget: Budget{
			Needs:   0.50,
			Wants:   0.30,
			Savings: 0.20,
		},
		Choices: map[string]string{},
		History: []MonthlySnapshot{},
	}
}

// Normalize clamps internally-computed fields into their legal ranges
// and ensures maps/slices are non-nil. Called after loading a save.
func (s *PlayerState) Normalize() {
	if s.Month < 1 {
		s.Month = 1
	}
	if s.Savings < 0 {
		s.Savings = 0
	}
	if s.Debt < 0 {
		s.Debt = 0
	}
	if s.CreditScore < 300 {
		s.CreditScore = 300
	}
	if s.CreditScore > 850 {
		s.CreditScore = 850
	}
	if s.Choices == nil {
		s.Choices = map[string]string{}
	}
	if s.History == nil {
		s.History = []MonthlySnapshot{}
	}
}
