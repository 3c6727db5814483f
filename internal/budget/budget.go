package budget

import (
	"errors"
	"fmt"

	"debt-coach/internal/model"
)

// Split divides a monthly salary into savings, debt budget and living expenses.
type Split struct {
	Savings  float64 `json:"savings"`
	Debt     float64 `json:"debt"`
	Expenses float64 `json:"expenses"`
}

// With a fixed savings amount the debt budget defaults to this share of salary.
const defaultDebtShare = 0.20

// FixedSplit reserves a fixed savings amount; the debt budget is 20% of salary
// and expenses get the remainder.
func FixedSplit(salary, savings float64) (Split, error) {
	if salary <= 0 {
		return Split{}, errors.New("salary must be positive")
	}
	if savings < 0 {
		return Split{}, errors.New("savings must be >= 0")
	}
	debt := salary * defaultDebtShare
	expenses := salary - savings - debt
	if expenses < 0 {
		return Split{}, fmt.Errorf("savings %.2f and debt budget %.2f exceed salary %.2f", savings, debt, salary)
	}
	return Split{Savings: savings, Debt: debt, Expenses: expenses}, nil
}

// PercentSplit divides the salary by whole-percent shares that must sum to 100.
func PercentSplit(salary float64, savingsPct, debtPct, expensesPct int) (Split, error) {
	if salary <= 0 {
		return Split{}, errors.New("salary must be positive")
	}
	if savingsPct < 0 || debtPct < 0 || expensesPct < 0 {
		return Split{}, errors.New("split percentages must be >= 0")
	}
	if savingsPct+debtPct+expensesPct != 100 {
		return Split{}, fmt.Errorf("split percentages must sum to 100, got %d", savingsPct+debtPct+expensesPct)
	}
	return Split{
		Savings:  salary * float64(savingsPct) / 100,
		Debt:     salary * float64(debtPct) / 100,
		Expenses: salary * float64(expensesPct) / 100,
	}, nil
}

// CheckMinimums verifies the debt budget covers the sum of minimum payments.
func CheckMinimums(loans []model.Loan, debtBudget float64) error {
	var total float64
	for _, l := range loans {
		total += l.MinPayment
	}
	if total > debtBudget {
		return fmt.Errorf("total minimum payments %.2f exceed debt budget %.2f", total, debtBudget)
	}
	return nil
}

// ExpenseStatus reports the spare amount left in the expenses budget.
// Spare is negative when expenses overrun the budget.
func ExpenseStatus(expenses map[string]float64, budget float64) (spare float64, within bool) {
	var total float64
	for _, amount := range expenses {
		total += amount
	}
	spare = budget - total
	return spare, spare >= 0
}
