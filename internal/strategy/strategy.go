package strategy

import (
	"fmt"
	"sort"

	"debt-coach/internal/model"
)

// Strategy decides which loan the monthly extra payment is directed at, by
// ordering the loan list before simulation. The simulator targets the first
// loan in the order with a positive balance.
type Strategy interface {
	Name() string
	// Order returns a sorted copy of loans. Sorts must be stable: loans with
	// equal keys keep their relative order from the input list.
	Order(loans []model.Loan) []model.Loan
}

// SnowballStrategy orders loans by smallest balance first.
type SnowballStrategy struct{}

func (SnowballStrategy) Name() string { return "snowball" }

func (SnowballStrategy) Order(loans []model.Loan) []model.Loan {
	out := model.CloneLoans(loans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Balance < out[j].Balance
	})
	return out
}

// AvalancheStrategy orders loans by highest APR first.
type AvalancheStrategy struct{}

func (AvalancheStrategy) Name() string { return "avalanche" }

func (AvalancheStrategy) Order(loans []model.Loan) []model.Loan {
	out := model.CloneLoans(loans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rate > out[j].Rate
	})
	return out
}

// FromName resolves a strategy by its wire name.
func FromName(name string) (Strategy, error) {
	switch name {
	case "snowball":
		return SnowballStrategy{}, nil
	case "avalanche":
		return AvalancheStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}

// Names lists the supported strategy names in a fixed order.
func Names() []string {
	return []string{"snowball", "avalanche"}
}
