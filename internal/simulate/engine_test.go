package simulate

import (
	"math"
	"testing"

	"debt-coach/internal/model"
	"debt-coach/internal/strategy"
)

const eps = 1e-6

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPayoffZeroBalance(t *testing.T) {
	res, err := Payoff(0, 18.0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != 0 || res.TotalInterest != 0 {
		t.Errorf("expected (0, 0), got (%d, %f)", res.Months, res.TotalInterest)
	}
	if !res.PaidOff {
		t.Errorf("zero balance should count as paid off")
	}
}

func TestPayoffZeroRate(t *testing.T) {
	res, err := Payoff(1200, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != 12 {
		t.Errorf("expected 12 months, got %d", res.Months)
	}
	if res.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %f", res.TotalInterest)
	}
}

func TestPayoffFiniteWhenPaymentBeatsInterest(t *testing.T) {
	res, err := Payoff(5000, 14.5, 250)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.PaidOff || res.Months <= 0 || res.Months >= MaxMonths {
		t.Errorf("expected finite payoff, got months=%d paidOff=%v", res.Months, res.PaidOff)
	}
	if res.TotalInterest <= 0 {
		t.Errorf("positive rate must accrue positive interest, got %f", res.TotalInterest)
	}
}

func TestPayoffZeroPaymentHitsCap(t *testing.T) {
	res, err := Payoff(1000, 12, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != MaxMonths {
		t.Errorf("expected capped months=%d, got %d", MaxMonths, res.Months)
	}
	if res.PaidOff {
		t.Errorf("capped run must not report paid off")
	}
	// At 12% APR the balance compounds by 1% monthly, so total interest
	// after 600 months is 1000*(1.01^600 - 1).
	want := 1000 * (math.Pow(1.01, 600) - 1)
	if math.Abs(res.TotalInterest-want)/want > 1e-9 {
		t.Errorf("expected interest %.6f, got %.6f", want, res.TotalInterest)
	}
}

func TestPayoffRejectsNegativeInputs(t *testing.T) {
	cases := [][3]float64{
		{-1, 10, 100},
		{100, -1, 100},
		{100, 10, -1},
	}
	for _, c := range cases {
		if _, err := Payoff(c[0], c[1], c[2]); err == nil {
			t.Errorf("expected error for inputs %v", c)
		}
	}
}

func TestRunEmptyLoans(t *testing.T) {
	engine := New()
	for _, strat := range []strategy.Strategy{strategy.SnowballStrategy{}, strategy.AvalancheStrategy{}} {
		res, err := engine.Run(nil, 500, strat)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", strat.Name(), err)
		}
		if res.Months != 0 || res.TotalInterest != 0 {
			t.Errorf("%s: expected (0, 0), got (%d, %f)", strat.Name(), res.Months, res.TotalInterest)
		}
	}
}

func TestRunAllBalancesZero(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 0, Rate: 20, MinPayment: 50},
		{Name: "b", Balance: 0, Rate: 5, MinPayment: 10},
	}
	res, err := New().Run(loans, 100, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != 0 || res.TotalInterest != 0 || !res.PaidOff {
		t.Errorf("expected immediate (0, 0) paid off, got %+v", res)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 100, Rate: 5, MinPayment: 10},
		{Name: "b", Balance: 50, Rate: 20, MinPayment: 10},
	}
	orig := model.CloneLoans(loans)
	if _, err := New().Run(loans, 20, strategy.SnowballStrategy{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range loans {
		if loans[i] != orig[i] {
			t.Errorf("loan %d mutated: %+v != %+v", i, loans[i], orig[i])
		}
	}
}

// Hand-traced first three months for the classic two-loan example:
// A {bal 100, rate 5%, min 10}, B {bal 50, rate 20%, min 10}, budget 20.
// Snowball order is B, A; minimums consume the whole budget so no rollover
// occurs until one loan closes.
func TestRunHandTracedInterest(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 100, Rate: 5, MinPayment: 10},
		{Name: "b", Balance: 50, Rate: 20, MinPayment: 10},
	}
	res, err := New().Run(loans, 20, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Ledger) < 3 {
		t.Fatalf("expected at least 3 ledger months, got %d", len(res.Ledger))
	}

	// Month 1: 50/60 + 100/240 = 1.25 exactly.
	if !almostEqual(res.Ledger[0].Interest, 1.25, eps) {
		t.Errorf("month 1 interest: expected 1.25, got %.9f", res.Ledger[0].Interest)
	}
	// Month 2: 40.833333/60 + 90.416667/240.
	if !almostEqual(res.Ledger[1].Interest, 1.057291667, eps) {
		t.Errorf("month 2 interest: expected 1.057292, got %.9f", res.Ledger[1].Interest)
	}
	// Month 3: 31.513889/60 + 80.793403/240.
	if !almostEqual(res.Ledger[2].Interest, 0.861870660, eps) {
		t.Errorf("month 3 interest: expected 0.861871, got %.9f", res.Ledger[2].Interest)
	}
	// No rollover while both minimums consume the budget.
	for m := 0; m < 3; m++ {
		if res.Ledger[m].ExtraPaid != 0 {
			t.Errorf("month %d: expected no rollover, got %.6f", m+1, res.Ledger[m].ExtraPaid)
		}
	}
}

func TestRunSnowballPaysSmallerLoanFirst(t *testing.T) {
	loans := []model.Loan{
		{Name: "big", Balance: 100, Rate: 5, MinPayment: 10},
		{Name: "small", Balance: 50, Rate: 20, MinPayment: 10},
	}
	res, err := New().Run(loans, 20, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	smallDone := payoffMonth(t, res, "small")
	bigDone := payoffMonth(t, res, "big")
	if smallDone > bigDone {
		t.Errorf("smaller loan paid off in month %d, after larger loan's month %d", smallDone, bigDone)
	}
}

func TestRunAvalancheNeverCostsMoreInterest(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 100, Rate: 5, MinPayment: 10},
		{Name: "b", Balance: 50, Rate: 20, MinPayment: 10},
	}
	engine := New()
	snow, err := engine.Run(loans, 20, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("snowball: %v", err)
	}
	ava, err := engine.Run(loans, 20, strategy.AvalancheStrategy{})
	if err != nil {
		t.Fatalf("avalanche: %v", err)
	}
	if ava.TotalInterest > snow.TotalInterest+eps {
		t.Errorf("avalanche interest %.6f exceeds snowball %.6f", ava.TotalInterest, snow.TotalInterest)
	}
}

func TestRunStableTieKeepsInputOrderForRollover(t *testing.T) {
	loans := []model.Loan{
		{Name: "first", Balance: 100, Rate: 10, MinPayment: 5},
		{Name: "second", Balance: 100, Rate: 5, MinPayment: 5},
	}
	res, err := New().Run(loans, 40, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Ledger) == 0 {
		t.Fatal("expected ledger rows")
	}
	if got := res.Ledger[0].ExtraTarget; got != "first" {
		t.Errorf("tie on balance must keep input order; rollover went to %q", got)
	}
}

func TestRunInterestMonotone(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 3000, Rate: 18, MinPayment: 60},
		{Name: "b", Balance: 900, Rate: 9, MinPayment: 30},
	}
	res, err := New().Run(loans, 150, strategy.AvalancheStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := 0.0
	for _, row := range res.Ledger {
		if row.CumInterest < prev {
			t.Fatalf("month %d: cumulative interest decreased %.6f -> %.6f", row.Month, prev, row.CumInterest)
		}
		prev = row.CumInterest
	}
	if res.Months > MaxMonths {
		t.Errorf("months %d exceeds safety cap", res.Months)
	}
}

func TestRunBalancesNeverNegative(t *testing.T) {
	loans := []model.Loan{
		{Name: "tiny", Balance: 12, Rate: 30, MinPayment: 500},
		{Name: "other", Balance: 800, Rate: 10, MinPayment: 40},
	}
	res, err := New().Run(loans, 1000, strategy.SnowballStrategy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range res.Ledger {
		for _, l := range row.Loans {
			if l.Balance < 0 {
				t.Fatalf("month %d: loan %s has negative balance %.6f", row.Month, l.Name, l.Balance)
			}
		}
	}
	if !res.PaidOff {
		t.Errorf("expected payoff with a generous budget, got %+v", res)
	}
}

func TestRunRejectsBadInputs(t *testing.T) {
	engine := New()
	good := []model.Loan{{Name: "a", Balance: 100, Rate: 5, MinPayment: 10}}

	if _, err := engine.Run(good, 50, nil); err == nil {
		t.Error("expected error for nil strategy")
	}
	if _, err := engine.Run(good, -1, strategy.SnowballStrategy{}); err == nil {
		t.Error("expected error for negative budget")
	}
	bad := []model.Loan{{Name: "", Balance: 100, Rate: 5, MinPayment: 10}}
	if _, err := engine.Run(bad, 50, strategy.SnowballStrategy{}); err == nil {
		t.Error("expected error for empty loan name")
	}
	bad = []model.Loan{{Name: "a", Balance: -5, Rate: 5, MinPayment: 10}}
	if _, err := engine.Run(bad, 50, strategy.SnowballStrategy{}); err == nil {
		t.Error("expected error for negative balance")
	}
}

// payoffMonth finds the first month a loan's ledger balance reaches zero.
func payoffMonth(t *testing.T, res *Result, name string) int {
	t.Helper()
	for _, row := range res.Ledger {
		for _, l := range row.Loans {
			if l.Name == name && l.Balance == 0 {
				return row.Month
			}
		}
	}
	t.Fatalf("loan %q never paid off (months=%d)", name, res.Months)
	return 0
}
