package data

import (
	"encoding/json"
	"os"

	"debt-coach/internal/model"
)

// LoanExport is the JSON shape produced by exports from the web app.
type LoanExport struct {
	Loans []model.Loan `json:"loans"`
}

func LoadLoansJSON(path string) ([]model.Loan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exp LoanExport
	if err := json.Unmarshal(raw, &exp); err != nil {
		return nil, err
	}
	return exp.Loans, nil
}

// GroupByName splits loans into name-keyed slices. Duplicate names collect
// in the same bucket.
func GroupByName(loans []model.Loan) map[string][]model.Loan {
	out := map[string][]model.Loan{}
	for _, l := range loans {
		out[l.Name] = append(out[l.Name], l)
	}
	return out
}
