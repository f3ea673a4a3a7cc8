// Package finance implements the month-cycle simulator: paycheck
// math, budget allocation, the credit-score model, and month close.
// The numbers are educational, not a real financial or credit model.
package finance

import "math"

// round2 rounds to 2 decimal places (cents).
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ComputeNetPay returns gross, withheld, and net monthly pay assuming
// a fixed 4-week month. Inputs are not validated here; callers clamp
// upstream.
func ComputeNetPay(hoursPerWeek, wagePerHour, withholdingRate float64) (gross, withheld, net float64) {
	gross = hoursPerWeek * wagePerHour * 4
	withheld = gross * withholdingRate
	net = gross - withheld
	return round2(gross), round2(withheld), round2(net)
}

// AllocateBudget splits net income into needs, wants, savings, and
// leftover cash. Fixed needs are paid first; the needs spend covers
// any planned-needs share beyond them. Wants and savings are funded
// from the remainder, each capped at its planned share and at the
// remaining pool, wants before savings. When fixedNeedsCost does not
// exceed netIncome the four outputs sum back to netIncome (within
// rounding). All outputs are non-negative.
func AllocateBudget(netIncome, needsPct, wantsPct, savingsPct, fixedNeedsCost float64) (needsSpend, wantsSpend, savingsAdded, leftover float64) {
	plannedNeeds := netIncome * needsPct
	plannedWants := netIncome * wantsPct
	plannedSavings := netIncome * savingsPct

	needsSpend = fixedNeedsCost + math.Max(0, plannedNeeds-fixedNeedsCost)
	remaining := math.Max(0, netIncome-needsSpend)

	wantsSpend = math.Max(0, math.Min(plannedWants, remaining))
	savingsAdded = math.Max(0, math.Min(plannedSavings, remaining-wantsSpend))
	leftover = math.Max(0, remaining-wantsSpend-savingsAdded)

	return round2(needsSpend), round2(wantsSpend), round2(savingsAdded), round2(leftover)
}

// Credit score bounds.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// UpdateCreditScore applies the payment-history and utilization
// adjustments and clamps the result to [300, 850].
func UpdateCreditScore(current int, utilization float64, paidOnTime bool) int {
	next := float64(current)

	if paidOnTime {
		next += 8
	} else {
		next -= 25
	}

	switch {
	case utilization < 0.10:
		next += 6
	case utilization < 0.30:
		next += 2
	case utilization < 0.50:
		next -= 6
	default:
		next -= 12
	}

	score := int(math.Round(next))
	if score < MinCreditScore {
		return MinCreditScore
	}
	if score > MaxCreditScore {
		return MaxCreditScore
	}
	return score
}
