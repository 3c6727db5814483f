package models

import "time"

// SimulateResponse represents the response from one simulation run.
type SimulateResponse struct {
	Status  string            `json:"status"`
	Summary SimulationSummary `json:"summary"`
	Ledger  []LedgerRow       `json:"ledger,omitempty"`
}

// SimulationSummary contains the aggregated simulation result.
type SimulationSummary struct {
	Strategy      string  `json:"strategy"`
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	PaidOff       bool    `json:"paid_off"`
	LoanCount     int     `json:"loan_count"`
}

// LedgerRow represents one month in the simulation ledger.
type LedgerRow struct {
	Month       int         `json:"month"`
	Interest    float64     `json:"interest"`
	CumInterest float64     `json:"cum_interest"`
	TotalPaid   float64     `json:"total_paid"`
	ExtraPaid   float64     `json:"extra_paid"`
	ExtraTarget string      `json:"extra_target,omitempty"`
	Loans       []LoanMonth `json:"loans"`
}

// LoanMonth is one loan's slice of a ledger month.
type LoanMonth struct {
	Name     string  `json:"name"`
	Interest float64 `json:"interest"`
	Payment  float64 `json:"payment"`
	Balance  float64 `json:"balance"`
}

// CompareResponse represents the response from a strategy comparison.
type CompareResponse struct {
	Comparison    []ComparisonResult `json:"comparison"`
	Recommended   string             `json:"recommended"`
	InterestSaved float64            `json:"interest_saved"`
	MonthsSaved   int                `json:"months_saved"`
	Advice        string             `json:"advice"`
}

// ComparisonResult contains results for one strategy.
type ComparisonResult struct {
	Name    string            `json:"name"`
	Summary SimulationSummary `json:"summary"`
}

// PayoffResponse is the single-loan amortization result.
type PayoffResponse struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	PaidOff       bool    `json:"paid_off"`
}

// StrategyInfo represents information about a payoff strategy.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderedBy   string `json:"ordered_by"`
}

// BudgetPlanResponse is the full monthly-plan output.
type BudgetPlanResponse struct {
	Split          SplitAmounts    `json:"split"`
	ExpensesTotal  float64         `json:"expenses_total"`
	ExpensesSpare  float64         `json:"expenses_spare"`
	WithinExpenses bool            `json:"within_expenses"`
	Comparison     CompareResponse `json:"comparison"`
}

// SplitAmounts is the resolved salary division in currency units.
type SplitAmounts struct {
	Savings  float64 `json:"savings"`
	Debt     float64 `json:"debt"`
	Expenses float64 `json:"expenses"`
}

// HistoryResponse lists recorded plan runs, newest first.
type HistoryResponse struct {
	Runs []HistoryRun `json:"runs"`
}

// HistoryRun is one recorded simulation.
type HistoryRun struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Strategy      string    `json:"strategy"`
	LoanCount     int       `json:"loan_count"`
	ExtraBudget   float64   `json:"extra_budget"`
	Months        int       `json:"months"`
	TotalInterest float64   `json:"total_interest"`
	PaidOff       bool      `json:"paid_off"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
