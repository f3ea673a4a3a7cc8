// Package bank loads the daily question bank. The bank is a
// read-only JSON document keyed by month name, then by two-digit day,
// holding the question list for each calendar day.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"moneyquest/internal/model"
)

type monthEntry struct {
	Days map[string][]model.Question `json:"days"`
}

type bankFile struct {
	Months map[string]monthEntry `json:"months"`
}

// Bank is the loaded question bank.
type Bank struct {
	months  map[string]monthEntry
	skipped int
}

// Load reads and validates the bank file. A missing or unparseable
// file is a fatal startup condition for the quiz. Malformed question
// records are dropped at this boundary so answer checking never sees
// them; Skipped reports how many were dropped.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	b := &Bank{months: make(map[string]monthEntry, len(f.Months))}
	for name, entry := range f.Months {
		clean := monthEntry{Days: make(map[string][]model.Question, len(entry.Days))}
		for day, qs := range entry.Days {
			kept := make([]model.Question, 0, len(qs))
			for _, q := range qs {
				if err := validate(q); err != nil {
					b.skipped++
					continue
				}
				kept = append(kept, q)
			}
			clean.Days[day] = kept
		}
		b.months[strings.ToLower(name)] = clean
	}
	return b, nil
}

// Skipped returns the number of malformed records dropped at load.
func (b *Bank) Skipped() int { return b.skipped }

// QuestionsFor returns the question list for a calendar date, or nil
// when the bank has no entry for that day.
func (b *Bank) QuestionsFor(date time.Time) []model.Question {
	month, ok := b.months[strings.ToLower(date.Month().String())]
	if !ok {
		return nil
	}
	return month.Days[date.Format("02")]
}

func validate(q model.Question) error {
	if q.ID == "" {
		return fmt.Errorf("question with empty id")
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %s: empty prompt", q.ID)
	}
	switch q.Type {
	case model.TypeMultipleChoice:
		if len(q.Choices) < 2 {
			return fmt.Errorf("question %s: mc needs at least 2 choices", q.ID)
		}
		if q.Answer == "" {
			return fmt.Errorf("question %s: mc missing answer", q.ID)
		}
		found := false
		for _, c := range q.Choices {
			if c == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %s: answer not among choices", q.ID)
		}
	case model.TypeTrueFalse:
		if q.Answer != "True" && q.Answer != "False" {
			return fmt.Errorf("question %s: truefalse answer must be True or False", q.ID)
		}
	case model.TypeNumeric:
		if q.Tolerance < 0 {
			return fmt.Errorf("question %s: negative tolerance", q.ID)
		}
	case model.TypeFillInBlank:
		if q.AnswerText == "" {
			return fmt.Errorf("question %s: fib missing answer text", q.ID)
		}
	default:
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	return nil
}
