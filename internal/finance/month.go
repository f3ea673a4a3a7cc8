package finance

import (
	"math"

	"moneyquest/internal/model"
)

// DefaultCreditLimit is the synthetic card limit used for utilization.
const DefaultCreditLimit = 500

// Debt model constants: 2% monthly interest, $25 minimum payment.
const (
	monthlyInterest = 1.02
	minPaymentCap   = 25
)

// ChoicePayFull is the credit-card option that pays the statement in
// full instead of the minimum.
const (
	ChoiceCreditCard = "credit_card"
	ChoicePayFull    = "pay_full"
)

// PayResult is the paycheck breakdown for one month.
type PayResult struct {
	Gross    float64
	Withheld float64
	Net      float64
}

// Allocation is the budget split for one month.
type Allocation struct {
	NeedsSpend   float64
	WantsSpend   float64
	SavingsAdded float64
	Leftover     float64
}

// CloseMonth runs the end-of-month update on state: paycheck, budget
// allocation, the credit-card debt model, balance updates, and the
// credit-score adjustment. It appends a MonthlySnapshot to history,
// advances the month counter, and overwrites the balance fields in
// place. Pure computation over the provided state; malformed state is
// a caller contract violation.
func CloseMonth(state *model.PlayerState, fixedNeedsCost float64, creditLimit int) (model.MonthlySnapshot, PayResult, Allocation) {
	gross, withheld, net := ComputeNetPay(
		state.Income.HoursPerWeek, state.Income.WagePerHour, state.Income.WithholdingRate,
	)
	pay := PayResult{Gross: gross, Withheld: withheld, Net: net}

	needs, wants, savings, leftover := AllocateBudget(
		net, state.Budget.Needs, state.Budget.Wants, state.Budget.Savings, fixedNeedsCost,
	)
	alloc := Allocation{NeedsSpend: needs, WantsSpend: wants, SavingsAdded: savings, Leftover: leftover}

	// Interest accrues before the payment; minimum is owed on the
	// post-interest balance.
	debtAfterInterest := int(math.Ceil(float64(state.Debt) * monthlyInterest))
	minPayment := minPaymentCap
	if debtAfterInterest < minPayment {
		minPayment = debtAfterInterest
	}
	payment := minPayment
	if state.Choices[ChoiceCreditCard] == ChoicePayFull {
		payment = debtAfterInterest
	}
	newDebt := debtAfterInterest - payment
	if newDebt < 0 {
		newDebt = 0
	}

	newCash := int(math.Round(float64(state.Cash) + leftover - float64(payment) - wants - needs))
	newSavings := int(math.Round(float64(state.Savings) + savings))

	utilization := 0.0
	if creditLimit != 0 {
		utilization = float64(newDebt) / float64(creditLimit)
	}
	newScore := UpdateCreditScore(state.CreditScore, utilization, payment >= minPayment)

	snapshot := model.MonthlySnapshot{
		Month:       state.Month,
		NetWorth:    newCash + newSavings - newDebt,
		Cash:        newCash,
		Savings:     newSavings,
		Debt:        newDebt,
		CreditScore: newScore,
	}

	state.Month++
	state.Cash = newCash
	state.Savings = newSavings
	state.Debt = newDebt
	state.CreditScore = newScore
	state.History = append(state.History, snapshot)

	return snapshot, pay, alloc
}
