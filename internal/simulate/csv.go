package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes one row per loan per month. Months where a loan is
// already paid off carry no row for that loan.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"loan",
		"interest",
		"payment",
		"balance",
		"extra_target",
		"month_interest",
		"cum_interest",
		"month_paid",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		for _, l := range r.Loans {
			row := []string{
				strconv.Itoa(r.Month),
				l.Name,
				fmtFloat(l.Interest),
				fmtFloat(l.Payment),
				fmtFloat(l.Balance),
				r.ExtraTarget,
				fmtFloat(r.Interest),
				fmtFloat(r.CumInterest),
				fmtFloat(r.TotalPaid),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
