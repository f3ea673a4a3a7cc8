package quiz

import (
	"math"
	"strconv"
	"strings"

	"moneyquest/internal/model"
)

// CheckMultipleChoice reports whether the submitted choice matches
// the answer key. An empty submission is incorrect, never an error.
func CheckMultipleChoice(submitted, answer string) bool {
	if submitted == "" {
		return false
	}
	return submitted == answer
}

// CheckTrueFalse reports whether the submitted value ("True"/"False")
// matches the answer key. Empty submissions are incorrect.
func CheckTrueFalse(submitted, answer string) bool {
	return CheckMultipleChoice(submitted, answer)
}

// CheckNumeric parses the trimmed input as a real number, permitting
// commas as thousands separators, and reports whether it is within
// tolerance of the target. Empty or unparseable input is incorrect.
func CheckNumeric(input string, target, tolerance float64) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", ""), 64)
	if err != nil {
		return false
	}
	return math.Abs(val-target) <= tolerance
}

// CheckFillInBlank compares case-insensitively after trimming
// whitespace on both sides.
func CheckFillInBlank(submitted, answer string) bool {
	return strings.ToLower(strings.TrimSpace(submitted)) == strings.ToLower(strings.TrimSpace(answer))
}

// CheckAnswer dispatches on the question type. Unknown types are
// incorrect; the bank loader rejects them before play.
func CheckAnswer(q model.Question, submitted string) bool {
	switch q.Type {
	case model.TypeMultipleChoice:
		return CheckMultipleChoice(submitted, q.Answer)
	case model.TypeTrueFalse:
		return CheckTrueFalse(submitted, q.Answer)
	case model.TypeNumeric:
		return CheckNumeric(submitted, q.AnswerNum, q.Tolerance)
	case model.TypeFillInBlank:
		return CheckFillInBlank(submitted, q.AnswerText)
	default:
		return false
	}
}
