package models

// LoanPayload is one loan in a request body.
type LoanPayload struct {
	Name       string  `json:"name" binding:"required"`
	Balance    float64 `json:"balance"`
	Rate       float64 `json:"rate"`
	MinPayment float64 `json:"min_payment"`
}

// StrategyConfig names the payoff ordering to use.
type StrategyConfig struct {
	Name string `json:"name" binding:"required"` // "snowball" | "avalanche"
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// SimulateRequest represents the request body for running one simulation.
type SimulateRequest struct {
	Loans       []LoanPayload   `json:"loans" binding:"required"`
	ExtraBudget float64         `json:"extra_budget"`
	Strategy    StrategyConfig  `json:"strategy" binding:"required"`
	Options     SimulateOptions `json:"options,omitempty"`
}

// CompareRequest runs both strategies over the same loans and budget.
type CompareRequest struct {
	Loans       []LoanPayload `json:"loans" binding:"required"`
	ExtraBudget float64       `json:"extra_budget"`
}

// PayoffRequest is the single-loan amortization request.
type PayoffRequest struct {
	Balance        float64 `json:"balance"`
	Rate           float64 `json:"rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// BudgetPlanRequest is the full monthly-plan request: salary split, expense
// check and strategy comparison in one call.
type BudgetPlanRequest struct {
	Salary float64 `json:"salary" binding:"required"`

	// Fixed savings mode when Savings is set; percentage mode when
	// SplitPercent is set. Exactly one should be provided.
	Savings      *float64 `json:"savings,omitempty"`
	SplitPercent *Split   `json:"split_percent,omitempty"`

	Loans    []LoanPayload      `json:"loans"`
	Expenses map[string]float64 `json:"expenses,omitempty"`
}

// Split is a whole-percent salary division; the three shares must sum to 100.
type Split struct {
	Savings  int `json:"savings"`
	Debt     int `json:"debt"`
	Expenses int `json:"expenses"`
}
