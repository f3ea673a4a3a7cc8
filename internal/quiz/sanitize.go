// Package quiz implements the daily question session: text
// sanitization, answer checking, the session state machine, and the
// cross-day streak tracker.
package quiz

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"moneyquest/internal/model"
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	commaRe      = regexp.MustCompile(`\s*,\s*`)
	periodRe     = regexp.MustCompile(`\s+\.`)
	trailCommaRe = regexp.MustCompile(` ,`)
)

// CleanText normalizes question text for display and comparison:
// NFKC normalization, zero-width characters stripped, control
// characters collapsed to spaces, runs of whitespace collapsed,
// spacing around commas and periods normalized, and the result
// trimmed. Idempotent.
func CleanText(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case (r >= 0x200B && r <= 0x200D) || r == 0xFEFF:
			// zero-width space/joiner/non-joiner, BOM
		case r < 0x20 || r == 0x7F:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = spaceRe.ReplaceAllString(s, " ")
	s = commaRe.ReplaceAllString(s, ", ")
	s = periodRe.ReplaceAllString(s, ".")
	s = trailCommaRe.ReplaceAllString(s, ",")
	return strings.TrimSpace(s)
}

// SanitizeQuestion returns a display copy of q with every user-facing
// text field cleaned. The source record is not mutated.
func SanitizeQuestion(q model.Question) model.Question {
	q.Prompt = CleanText(q.Prompt)
	q.Explain = CleanText(q.Explain)
	q.Answer = CleanText(q.Answer)
	q.AnswerText = CleanText(q.AnswerText)
	if len(q.Choices) > 0 {
		choices := make([]string, len(q.Choices))
		for i, c := range q.Choices {
			choices[i] = CleanText(c)
		}
		q.Choices = choices
	}
	return q
}
