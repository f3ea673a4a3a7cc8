package quiz

// Per-category hint texts shown on request during a session.
var hints = map[string]string{
	"budget":    "50/30/20 is a useful guide.",
	"paycheck":  "Net = gross - withholdings.",
	"credit":    "Utilization = balance / limit x 100.",
	"saving":    "Compounding grows with time.",
	"investing": "Diversify to spread risk.",
	"loans":     "Principal = amount borrowed.",
	"scams":     "Verify via official channels you initiate.",
	"insurance": "Deductible = amount you pay first.",
}

// HintFor returns the hint for a category, with a generic fallback.
func HintFor(category string) string {
	if h, ok := hints[category]; ok {
		return h
	}
	return "Think it through carefully."
}
