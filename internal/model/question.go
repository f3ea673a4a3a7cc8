package model

// QuestionType tags the question variants in the bank.
type QuestionType string

// Question types as they appear in the bank file.
const (
	TypeMultipleChoice QuestionType = "mc"
	TypeNumeric        QuestionType = "numeric"
	TypeTrueFalse      QuestionType = "truefalse"
	TypeFillInBlank    QuestionType = "fib"
)

// Question is one entry from the question bank. It is a tagged union
// keyed by Type: Choices and Answer apply to mc/truefalse, AnswerNum
// and Tolerance to numeric, AnswerText to fib. The bank loader
// enforces the per-type required fields so answer checking never sees
// a malformed record.
type Question struct {
	ID         string       `json:"id"`
	Category   string       `json:"category"`
	Type       QuestionType `json:"type"`
	Prompt     string       `json:"prompt"`
	Choices    []string     `json:"choices,omitempty"`
	Answer     string       `json:"answer,omitempty"`
	AnswerNum  float64      `json:"answer_num,omitempty"`
	Tolerance  float64      `json:"tolerance,omitempty"`
	AnswerText string       `json:"answer_text,omitempty"`
	Explain    string       `json:"explain"`
}
