package main

import (
	"flag"
	"fmt"

	"debt-coach/internal/analysis"
	"debt-coach/internal/model"
	"debt-coach/internal/simulate"
	"debt-coach/internal/strategy"
)

// Demo:
// - Build a small loan portfolio
// - Run both payoff orderings over the same monthly budget
// - Print the first months of the avalanche schedule to show how models fit together
func main() {
	extra := flag.Float64("extra", 600, "Monthly debt budget (minimums + rollover)")
	n := flag.Int("n", 12, "Number of ledger months to print")
	flag.Parse()

	loans := []model.Loan{
		{Name: "car", Balance: 8500, Rate: 7.9, MinPayment: 220},
		{Name: "card", Balance: 2400, Rate: 21.5, MinPayment: 75},
		{Name: "student", Balance: 12000, Rate: 4.3, MinPayment: 150},
	}

	cmp, err := analysis.Compare(loans, *extra)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loans=%d Budget=%.2f/month\n\n", len(loans), *extra)
	fmt.Printf("snowball : %d months, interest %.2f\n", cmp.Snowball.Months, cmp.Snowball.TotalInterest)
	fmt.Printf("avalanche: %d months, interest %.2f\n", cmp.Avalanche.Months, cmp.Avalanche.TotalInterest)
	fmt.Printf("\nRecommended: %s\n%s\n\n", cmp.Recommended, cmp.Advice)

	engine := simulate.New()
	res, err := engine.Run(loans, *extra, strategy.AvalancheStrategy{})
	if err != nil {
		panic(err)
	}

	for i := 0; i < min(*n, len(res.Ledger)); i++ {
		r := res.Ledger[i]
		fmt.Printf("month %3d  interest=%7.2f  paid=%8.2f  extra=%7.2f->%-8s cum_interest=%8.2f\n",
			r.Month, r.Interest, r.TotalPaid, r.ExtraPaid, r.ExtraTarget, r.CumInterest)
	}

	fmt.Printf("\nDone. Months=%d Total interest=%.2f\n", res.Months, res.TotalInterest)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
