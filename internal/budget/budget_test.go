package budget

import (
	"testing"

	"debt-coach/internal/model"
)

func TestFixedSplit(t *testing.T) {
	s, err := FixedSplit(3500, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Savings != 400 {
		t.Errorf("savings: expected 400, got %.2f", s.Savings)
	}
	if s.Debt != 700 {
		t.Errorf("debt: expected 700 (20%% of salary), got %.2f", s.Debt)
	}
	if s.Expenses != 2400 {
		t.Errorf("expenses: expected 2400, got %.2f", s.Expenses)
	}
}

func TestFixedSplitRejectsOvercommit(t *testing.T) {
	if _, err := FixedSplit(1000, 900); err == nil {
		t.Error("expected error when savings plus debt budget exceed salary")
	}
	if _, err := FixedSplit(0, 100); err == nil {
		t.Error("expected error for non-positive salary")
	}
	if _, err := FixedSplit(1000, -1); err == nil {
		t.Error("expected error for negative savings")
	}
}

func TestPercentSplit(t *testing.T) {
	s, err := PercentSplit(2000, 10, 20, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Savings != 200 || s.Debt != 400 || s.Expenses != 1400 {
		t.Errorf("unexpected split: %+v", s)
	}
}

func TestPercentSplitMustSumTo100(t *testing.T) {
	if _, err := PercentSplit(2000, 10, 20, 60); err == nil {
		t.Error("expected error for shares summing to 90")
	}
	if _, err := PercentSplit(2000, -10, 40, 70); err == nil {
		t.Error("expected error for negative share")
	}
}

func TestCheckMinimums(t *testing.T) {
	loans := []model.Loan{
		{Name: "a", Balance: 1000, Rate: 10, MinPayment: 300},
		{Name: "b", Balance: 500, Rate: 5, MinPayment: 250},
	}
	if err := CheckMinimums(loans, 550); err != nil {
		t.Errorf("budget exactly covering minimums should pass: %v", err)
	}
	if err := CheckMinimums(loans, 500); err == nil {
		t.Error("expected error when minimums exceed debt budget")
	}
}

func TestExpenseStatus(t *testing.T) {
	expenses := map[string]float64{"rent": 1200, "food": 400}
	spare, within := ExpenseStatus(expenses, 2000)
	if !within || spare != 400 {
		t.Errorf("expected spare 400 within budget, got spare=%.2f within=%v", spare, within)
	}
	spare, within = ExpenseStatus(expenses, 1500)
	if within || spare != -100 {
		t.Errorf("expected overrun of 100, got spare=%.2f within=%v", spare, within)
	}
}
