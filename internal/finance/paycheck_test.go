package finance

import (
	"math"
	"testing"
)

func TestComputeNetPay(t *testing.T) {
	gross, withheld, net := ComputeNetPay(20, 15, 0.12)
	if gross != 1200.0 {
		t.Fatalf("gross = %.2f, want 1200.00", gross)
	}
	if withheld != 144.0 {
		t.Fatalf("withheld = %.2f, want 144.00", withheld)
	}
	if net != 1056.0 {
		t.Fatalf("net = %.2f, want 1056.00", net)
	}
}

func TestComputeNetPayIdentity(t *testing.T) {
	cases := []struct {
		hours, wage, rate float64
	}{
		{20, 15, 0.12},
		{0, 15, 0.12},
		{37.5, 18.25, 0.33},
		{80, 1000, 1.0},
		{12, 9.99, 0},
	}
	for _, c := range cases {
		gross, withheld, net := ComputeNetPay(c.hours, c.wage, c.rate)
		if math.Abs(net-(gross-withheld)) > 0.011 {
			t.Fatalf("ComputeNetPay(%v, %v, %v): net = %.2f, want gross-withheld = %.2f",
				c.hours, c.wage, c.rate, net, gross-withheld)
		}
	}
}

func TestAllocateBudgetConserves(t *testing.T) {
	cases := []struct {
		net, needs, wants, savings, fixed float64
	}{
		{1056, 0.5, 0.3, 0.2, 80},
		{1056, 0.5, 0.3, 0.2, 700},
		{1056, 0.5, 0.3, 0.2, 0},
		{500, 0.2, 0.5, 0.3, 450},
		{0, 0.5, 0.3, 0.2, 0},
	}
	for _, c := range cases {
		needs, wants, savings, leftover := AllocateBudget(c.net, c.needs, c.wants, c.savings, c.fixed)
		for _, v := range []float64{needs, wants, savings, leftover} {
			if v < 0 {
				t.Fatalf("AllocateBudget(%v, fixed=%v) produced negative output %v", c.net, c.fixed, v)
			}
		}
		if c.fixed <= c.net {
			sum := needs + wants + savings + leftover
			if math.Abs(sum-c.net) > 0.05 {
				t.Fatalf("AllocateBudget(%v, fixed=%v): outputs sum to %.2f, want %.2f",
					c.net, c.fixed, sum, c.net)
			}
		}
	}
}

func TestAllocateBudgetWantsBeforeSavings(t *testing.T) {
	// Pool too small for both shares: wants gets funded first.
	needs, wants, savings, leftover := AllocateBudget(100, 0.8, 0.15, 0.05, 0)
	if needs != 80 {
		t.Fatalf("needs = %.2f, want 80.00", needs)
	}
	if wants != 15 {
		t.Fatalf("wants = %.2f, want 15.00", wants)
	}
	if savings != 5 {
		t.Fatalf("savings = %.2f, want 5.00", savings)
	}
	if leftover != 0 {
		t.Fatalf("leftover = %.2f, want 0.00", leftover)
	}

	// Fixed needs swallow nearly everything; savings is starved last.
	_, wants, savings, _ = AllocateBudget(100, 0.1, 0.5, 0.4, 60)
	if wants != 40 {
		t.Fatalf("short pool: wants = %.2f, want 40.00", wants)
	}
	if savings != 0 {
		t.Fatalf("short pool: savings = %.2f, want 0.00", savings)
	}
}

func TestAllocateBudgetFixedNeedsAlwaysCovered(t *testing.T) {
	needs, _, _, _ := AllocateBudget(1000, 0.1, 0.3, 0.2, 400)
	if needs != 400 {
		t.Fatalf("needs = %.2f, want 400.00 (fixed costs exceed planned share)", needs)
	}
}

func TestUpdateCreditScore(t *testing.T) {
	if got := UpdateCreditScore(680, 0.05, true); got != 694 {
		t.Fatalf("UpdateCreditScore(680, 0.05, true) = %d, want 694", got)
	}
	if got := UpdateCreditScore(680, 0.25, true); got != 690 {
		t.Fatalf("utilization 0.25: got %d, want 690", got)
	}
	if got := UpdateCreditScore(680, 0.45, true); got != 682 {
		t.Fatalf("utilization 0.45: got %d, want 682", got)
	}
	if got := UpdateCreditScore(680, 0.80, false); got != 643 {
		t.Fatalf("late + high utilization: got %d, want 643", got)
	}
}

func TestUpdateCreditScoreClamps(t *testing.T) {
	if got := UpdateCreditScore(845, 0.05, true); got != 850 {
		t.Fatalf("upper clamp: got %d, want 850", got)
	}
	if got := UpdateCreditScore(310, 0.90, false); got != 300 {
		t.Fatalf("lower clamp: got %d, want 300", got)
	}
	for _, util := range []float64{-1, 0, 0.09, 0.1, 0.29, 0.3, 0.49, 0.5, 2.5} {
		for _, onTime := range []bool{true, false} {
			got := UpdateCreditScore(300, util, onTime)
			if got < MinCreditScore || got > MaxCreditScore {
				t.Fatalf("UpdateCreditScore(300, %v, %v) = %d, out of [300, 850]", util, onTime, got)
			}
			got = UpdateCreditScore(850, util, onTime)
			if got < MinCreditScore || got > MaxCreditScore {
				t.Fatalf("UpdateCreditScore(850, %v, %v) = %d, out of [300, 850]", util, onTime, got)
			}
		}
	}
}
