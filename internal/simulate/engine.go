package simulate

import (
	"fmt"

	"debt-coach/internal/model"
	"debt-coach/internal/strategy"
)

// MaxMonths caps every simulation. Inputs that never amortize (payment at or
// below the monthly interest) terminate here instead of looping forever; a
// Result with Months == MaxMonths and PaidOff == false means "did not pay off".
const MaxMonths = 600

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run advances all loans one month at a time until every balance is zero or
// MaxMonths is reached. Each month, in strategy order: open loans accrue
// interest, then pay min(min_payment, balance) out of the shared monthly
// budget. Whatever remains of the budget after minimums goes in full to the
// first loan in the order that still has a balance. Loans already at zero are
// skipped entirely, including interest accrual.
//
// Run works on a stable-sorted copy; the caller's slice is never mutated.
func (e *Engine) Run(loans []model.Loan, extra float64, strat strategy.Strategy) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if extra < 0 {
		return nil, fmt.Errorf("extra budget must be >= 0, got %v", extra)
	}
	if err := model.ValidateLoans(loans); err != nil {
		return nil, err
	}

	ordered := strat.Order(loans)

	res := &Result{PaidOff: true}
	if !anyOpen(ordered) {
		return res, nil
	}

	for res.Months < MaxMonths && anyOpen(ordered) {
		res.Months++
		row := LedgerRow{Month: res.Months}

		// Minimum payments, funded from the same pool as the rollover.
		left := extra
		open := make([]int, 0, len(ordered))
		for i := range ordered {
			l := &ordered[i]
			if l.Balance <= 0 {
				continue
			}
			open = append(open, i)

			interest := l.MonthlyInterest()
			l.Balance += interest
			res.TotalInterest += interest
			row.Interest += interest

			pay := l.MinPayment
			if pay > l.Balance {
				pay = l.Balance
			}
			l.Balance -= pay
			left -= pay
			row.TotalPaid += pay

			row.Loans = append(row.Loans, LoanMonth{
				Name:     l.Name,
				Interest: interest,
				Payment:  pay,
			})
		}
		if left < 0 {
			left = 0
		}

		// Rollover to the first open loan in strategy order.
		if left > 0 {
			for pos, i := range open {
				if ordered[i].Balance <= 0 {
					continue
				}
				pay := left
				if pay > ordered[i].Balance {
					pay = ordered[i].Balance
				}
				ordered[i].Balance -= pay
				row.ExtraPaid = pay
				row.ExtraTarget = ordered[i].Name
				row.TotalPaid += pay
				row.Loans[pos].Payment += pay
				break
			}
		}

		for pos, i := range open {
			row.Loans[pos].Balance = ordered[i].Balance
		}
		row.CumInterest = res.TotalInterest
		res.Ledger = append(res.Ledger, row)
	}

	res.PaidOff = !anyOpen(ordered)
	return res, nil
}

// Payoff amortizes a single loan: monthly compound interest at rate/100/12,
// then a fixed payment, balance clamped at zero. With payment at or below the
// accrued interest the balance grows without bound; the MaxMonths cap bounds
// the loop and the capped result signals non-payoff.
func Payoff(balance, rate, monthlyPayment float64) (Result, error) {
	if balance < 0 || rate < 0 || monthlyPayment < 0 {
		return Result{}, fmt.Errorf("balance, rate and payment must be >= 0")
	}

	var res Result
	for balance > 0 && res.Months < MaxMonths {
		interest := balance * (rate / 100 / 12)
		balance += interest
		res.TotalInterest += interest
		balance -= monthlyPayment
		if balance < 0 {
			balance = 0
		}
		res.Months++
	}
	res.PaidOff = balance == 0
	return res, nil
}

func anyOpen(loans []model.Loan) bool {
	for i := range loans {
		if loans[i].Balance > 0 {
			return true
		}
	}
	return false
}
