package simulate

// LoanMonth is what happened to a single loan in one simulated month.
// Balance is the end-of-month balance after all payments.
type LoanMonth struct {
	Name     string
	Interest float64
	Payment  float64
	Balance  float64
}

// LedgerRow is one month of per-loan output.
// This is the primary artifact for "what happened" in a simulation.
type LedgerRow struct {
	Month int

	Interest    float64 // interest accrued this month across all open loans
	CumInterest float64
	TotalPaid   float64

	ExtraPaid   float64 // rollover applied to the target loan
	ExtraTarget string  // name of the loan that received the rollover, "" if none

	Loans []LoanMonth
}

// Result summarizes a simulation run.
// PaidOff is false when the 600-month safety cap was hit with debt remaining;
// Months == MaxMonths in that case.
type Result struct {
	Months        int
	TotalInterest float64
	PaidOff       bool
	Ledger        []LedgerRow
}
