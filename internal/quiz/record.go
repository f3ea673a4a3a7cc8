package quiz

import "moneyquest/internal/model"

// Badge ids awarded at day completion.
const (
	BadgePerfectDay = "perfect_day"
	BadgeStreak5    = "streak_5"
	BadgeStreak10   = "streak_10"
	BadgeCenturion  = "centurion"
)

// Record applies the day-completion side effect to the quiz save:
// streak update, category counters, badges, lifetime points, and the
// day summary. Guarded by the persisted last-recorded date so it
// fires at most once per calendar day; replays return false with the
// save untouched.
func Record(save *model.QuizSaveState, s *Session) bool {
	if !s.Completed() {
		return false
	}
	day := s.Date.Format(DateFormat)
	if save.LastRecorded == day {
		return false
	}

	UpdateStreak(save, s.Date)

	categories := make([]string, 0, len(s.Results))
	for _, r := range s.Results {
		stat := save.CategoryStats[r.Category]
		stat.Attempted++
		if r.Correct {
			stat.Correct++
		}
		save.CategoryStats[r.Category] = stat
		categories = append(categories, r.Category)
	}

	correct := s.CorrectCount()
	if !s.FinishedByProgress && correct == len(s.Questions) {
		save.Badges[BadgePerfectDay] = true
	}
	if save.Streak >= 5 {
		save.Badges[BadgeStreak5] = true
	}
	if save.Streak >= 10 {
		save.Badges[BadgeStreak10] = true
	}
	if s.Score >= 100 {
		save.Badges[BadgeCenturion] = true
	}

	save.TotalPoints += s.Score
	save.History = append(save.History, model.DayResult{
		Date:             day,
		Score:            s.Score,
		TimeSecs:         s.ElapsedSecs(),
		Correct:          correct,
		Total:            len(s.Questions),
		FinishedProgress: s.FinishedByProgress,
		Categories:       categories,
	})
	save.LastRecorded = day
	return true
}
