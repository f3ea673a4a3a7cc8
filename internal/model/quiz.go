package model

// CategoryStat counts correctness per question category.
// Attempted >= Correct >= 0 always.
type CategoryStat struct {
	Correct   int `toml:"correct"`
	Attempted int `toml:"attempted"`
}

// DayResult summarizes one completed daily set. Appended to the quiz
// save history exactly once per calendar day.
type DayResult struct {
	Date             string   `toml:"date"`
	Score            int      `toml:"score"`
	TimeSecs         int      `toml:"time_secs"`
	Correct          int      `toml:"correct"`
	Total            int      `toml:"total"`
	FinishedProgress bool     `toml:"finished_by_progress"`
	Categories       []string `toml:"categories"`
}

// QAResult records one answered question within a session.
type QAResult struct {
	QuestionID string
	Category   string
	Correct    bool
	UsedHint   bool
	UserAnswer string
	Explain    string
	Seconds    float64
}

// QuizSaveState is the persisted quiz profile. TotalPoints is
// monotonic non-decreasing across days; Streak and StreakFreezes
// never go negative. LastRecorded guards the once-per-day completion
// side effect and survives restarts.
type QuizSaveState struct {
	DisplayName   string                  `toml:"display_name"`
	TotalPoints   int                     `toml:"total_points"`
	Streak        int                     `toml:"streak"`
	LastPlayed    string                  `toml:"last_played"`
	LastRecorded  string                  `toml:"last_recorded"`
	StreakFreezes int                     `toml:"streak_freezes"`
	History       []DayResult             `toml:"history"`
	CategoryStats map[string]CategoryStat `toml:"category_stats"`
	Badges        map[string]bool         `toml:"badges"`
	RoomCode      string                  `toml:"room_code"`
}

// NewQuizSaveState returns a fresh profile.
func NewQuizSaveState() *QuizSaveState {
	return &QuizSaveState{
		DisplayName:   "You",
		StreakFreezes: 3,
		History:       []DayResult{},
		CategoryStats: map[string]CategoryStat{},
		Badges:        map[string]bool{},
	}
}

// Normalize clamps counters and ensures maps/slices are non-nil.
// Called after loading a save.
func (q *QuizSaveState) Normalize() {
	if q.DisplayName == "" {
		q.DisplayName = "You"
	}
	if q.TotalPoints < 0 {
		q.TotalPoints = 0
	}
	if q.Streak < 0 {
		q.Streak = 0
	}
	if q.StreakFreezes < 0 {
		q.StreakFreezes = 0
	}
	if q.History == nil {
		q.History = []DayResult{}
	}
	if q.CategoryStats == nil {
		q.CategoryStats = map[string]CategoryStat{}
	}
	if q.Badges == nil {
		q.Badges = map[string]bool{}
	}
}
