package quiz

import (
	"time"

	"moneyquest/internal/model"
)

// DateFormat is the calendar-day format used across saves and the
// history store.
const DateFormat = "2006-01-02"

// UpdateStreak advances the cross-day streak for a session played on
// playingDate. Same-day replays are idempotent; a one-day gap extends
// the streak; a longer gap consumes a streak freeze if one remains,
// otherwise the streak resets to 1. The last-played date is always
// updated. Returns whether a freeze was consumed.
func UpdateStreak(save *model.QuizSaveState, playingDate time.Time) bool {
	day := playingDate.Format(DateFormat)

	last, err := time.Parse(DateFormat, save.LastPlayed)
	if save.LastPlayed == "" || err != nil {
		save.Streak = 1
		save.LastPlayed = day
		return false
	}

	playing, _ := time.Parse(DateFormat, day)
	delta := int(playing.Sub(last).Hours() / 24)

	usedFreeze := false
	switch {
	case delta == 1:
		save.Streak++
	case delta > 1:
		if save.StreakFreezes > 0 {
			save.StreakFreezes--
			save.Streak++
			usedFreeze = true
		} else {
			save.Streak = 1
		}
	}
	// delta <= 0: same-day replay (or clock skew), streak unchanged.

	save.LastPlayed = day
	return usedFreeze
}
