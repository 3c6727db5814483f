package model

import (
	"errors"
	"fmt"
	"strings"
)

// Loan describes one debt. Units:
// - Balance: currency units
// - Rate: annual percentage (e.g. 12.5 means 12.5% APR)
// - MinPayment: currency units per month
//
// Duplicate names are allowed; loans have no identity beyond their position
// in the input list.
type Loan struct {
	Name       string  `json:"name" yaml:"name"`
	Balance    float64 `json:"balance" yaml:"balance"`
	Rate       float64 `json:"rate" yaml:"rate"`
	MinPayment float64 `json:"min_payment" yaml:"min_payment"`
}

func (l Loan) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name must be non-empty")
	}
	if l.Balance < 0 {
		return errors.New("balance must be >= 0")
	}
	if l.Rate < 0 {
		return errors.New("rate must be >= 0")
	}
	if l.MinPayment < 0 {
		return errors.New("min_payment must be >= 0")
	}
	return nil
}

// MonthlyInterest is the interest accrued over one month at the loan's APR.
func (l Loan) MonthlyInterest() float64 {
	return l.Balance * (l.Rate / 100 / 12)
}

// CloneLoans copies a loan list so simulations never touch the caller's slice.
func CloneLoans(loans []Loan) []Loan {
	out := make([]Loan, len(loans))
	copy(out, loans)
	return out
}

// ValidateLoans checks every loan and reports the first offender by position.
func ValidateLoans(loans []Loan) error {
	for i, l := range loans {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("loan %d (%q): %w", i, l.Name, err)
		}
	}
	return nil
}
