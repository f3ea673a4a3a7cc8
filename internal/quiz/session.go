package quiz

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"moneyquest/internal/model"
)

// Scoring constants. Arbitrary and fixed, like the rest of the game.
const (
	PointsCorrect        = 10
	PointsCorrectHint    = 5
	PointsPerfectBonus   = 20
	PointsProgressFinish = 6
)

// State is the session position in the submit/next cycle.
type State int

// Session states.
const (
	StateAwaitingAnswer State = iota
	StateAnswered
	StateCompleted
)

// Submission errors. These reject the input locally with no state
// change; the caller prompts the user to correct it.
var (
	ErrEmptyAnswer     = errors.New("answer is empty")
	ErrInvalidNumber   = errors.New("answer is not a number")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrSessionComplete = errors.New("session already complete")
	ErrNotAnswered     = errors.New("current question not answered yet")
)

// Outcome describes the result of one submission.
type Outcome struct {
	Correct          bool
	Points           int
	Explain          string
	FinishedProgress bool
}

// Session drives one daily question set. It is created once per day
// and discarded on replay; all operations run to completion before
// the next is accepted.
type Session struct {
	Date      time.Time
	Questions []model.Question
	Results   []model.QAResult

	Idx                int
	Score              int
	Combo              int
	AnsweredCount      int
	Progress           float64
	FinishedByProgress bool

	StartedAt time.Time
	EndedAt   time.Time

	answered      bool
	usedHint      bool
	completed     bool
	questionStart time.Time

	now func() time.Time
}

// NewSession builds a session for the given day. Questions are
// sanitized into display copies; the source slice is untouched.
func NewSession(date time.Time, questions []model.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("no questions for session")
	}
	qs := make([]model.Question, len(questions))
	for i, q := range questions {
		qs[i] = SanitizeQuestion(q)
	}
	s := &Session{
		Date:      date,
		Questions: qs,
		Results:   []model.QAResult{},
		now:       time.Now,
	}
	s.StartedAt = s.now()
	s.questionStart = s.StartedAt
	return s, nil
}

// State returns the current machine state.
func (s *Session) State() State {
	switch {
	case s.completed:
		return StateCompleted
	case s.answered:
		return StateAnswered
	default:
		return StateAwaitingAnswer
	}
}

// Completed reports whether the session reached its terminal state.
func (s *Session) Completed() bool { return s.completed }

// UsedHint reports whether a hint was taken on the current question.
func (s *Session) UsedHint() bool { return s.usedHint }

// Current returns the question at the cursor.
func (s *Session) Current() model.Question {
	return s.Questions[s.Idx]
}

// CorrectCount counts correct results so far.
func (s *Session) CorrectCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Correct {
			n++
		}
	}
	return n
}

// ElapsedSecs is the wall time from session start to completion, or
// to now for a session still in flight.
func (s *Session) ElapsedSecs() int {
	end := s.EndedAt
	if end.IsZero() {
		end = s.now()
	}
	return int(end.Sub(s.StartedAt).Seconds())
}

// RequestHint marks the current question as hinted and returns the
// hint text. Requests after answering (or completion) are no-ops and
// return ""; repeated requests do not stack.
func (s *Session) RequestHint() string {
	if s.completed || s.answered {
		return ""
	}
	s.usedHint = true
	return HintFor(s.Current().Category)
}

// Submit checks an answer against the current question. Empty input
// (and unparseable input for numeric questions) is rejected with no
// state change. A valid submission scores, records a result, advances
// the combo/progress meters, and may complete the session early when
// the progress bar fills before all questions are answered.
func (s *Session) Submit(raw string) (Outcome, error) {
	if s.completed {
		return Outcome{}, ErrSessionComplete
	}
	if s.answered {
		return Outcome{}, ErrAlreadyAnswered
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return Outcome{}, ErrEmptyAnswer
	}
	q := s.Current()
	if q.Type == model.TypeNumeric {
		if _, err := strconv.ParseFloat(strings.ReplaceAll(answer, ",", ""), 64); err != nil {
			return Outcome{}, ErrInvalidNumber
		}
	}

	correct := CheckAnswer(q, answer)
	points := 0
	switch {
	case correct && !s.usedHint:
		points = PointsCorrect
	case correct && s.usedHint:
		points = PointsCorrectHint
	}
	s.Score += points

	elapsed := s.now().Sub(s.questionStart).Seconds()
	s.Results = append(s.Results, model.QAResult{
		QuestionID: q.ID,
		Category:   q.Category,
		Correct:    correct,
		UsedHint:   correct && s.usedHint,
		UserAnswer: answer,
		Explain:    q.Explain,
		Seconds:    elapsed,
	})
	s.answered = true
	s.AnsweredCount++

	// Combo meter: correct answers speed the progress bar up,
	// incorrect ones reset the combo and advance it one plain step.
	step := 1.0 / float64(len(s.Questions))
	if correct {
		s.Combo++
		s.Progress += step * comboBoost(s.Combo)
	} else {
		s.Combo = 0
		s.Progress += step
	}
	if s.Progress > 1.0 {
		s.Progress = 1.0
	}

	out := Outcome{Correct: correct, Points: points, Explain: q.Explain}

	// Progress finish: a full bar before the set is exhausted ends
	// the day with a flat bonus per unanswered question. This path
	// forfeits the perfect-day bonus.
	if s.Progress >= 1.0 && s.AnsweredCount < len(s.Questions) {
		remaining := len(s.Questions) - s.AnsweredCount
		s.Score += remaining * PointsProgressFinish
		s.FinishedByProgress = true
		s.complete()
		out.FinishedProgress = true
	}

	return out, nil
}

// Next advances past an answered question, completing the session
// after the last one. Completion by answering every question awards
// the perfect-day bonus when every recorded result was correct.
func (s *Session) Next() error {
	if s.completed {
		return ErrSessionComplete
	}
	if !s.answered {
		return ErrNotAnswered
	}

	s.answered = false
	s.usedHint = false
	s.Idx++
	s.questionStart = s.now()

	if s.Idx >= len(s.Questions) {
		s.Idx = len(s.Questions) - 1
		if s.CorrectCount() == len(s.Questions) && !s.FinishedByProgress {
			s.Score += PointsPerfectBonus
		}
		s.complete()
	}
	return nil
}

func (s *Session) complete() {
	s.completed = true
	s.EndedAt = s.now()
}

func comboBoost(streak int) float64 {
	switch {
	case streak <= 1:
		return 1.0
	case streak == 2:
		return 1.5
	case streak == 3:
		return 1.8
	default:
		return 2.0
	}
}
