package analysis

import (
	"debt-coach/internal/model"
	"debt-coach/internal/simulate"
	"debt-coach/internal/strategy"
)

// StrategyOutcome is one strategy's summary in a comparison.
type StrategyOutcome struct {
	Name          string
	Months        int
	TotalInterest float64
	PaidOff       bool
}

// Comparison holds both strategies side by side.
// Recommended is the strategy with the lower total interest; snowball wins
// ties (faster-wins framing when the interest outcome is identical).
type Comparison struct {
	Snowball  StrategyOutcome
	Avalanche StrategyOutcome

	Recommended   string
	InterestSaved float64 // interest avoided by the recommended strategy, >= 0
	MonthsSaved   int     // months saved vs the other strategy; may be negative
	Advice        string
}

const (
	adviceAvalanche = "Avalanche saves more money in interest.\nStick to avalanche if discipline is high."
	adviceSnowball  = "Snowball gives faster wins.\nUse snowball for motivation."
)

// Compare runs both payoff orderings over the same loans and budget.
func Compare(loans []model.Loan, extra float64) (Comparison, error) {
	engine := simulate.New()

	snow, err := engine.Run(loans, extra, strategy.SnowballStrategy{})
	if err != nil {
		return Comparison{}, err
	}
	ava, err := engine.Run(loans, extra, strategy.AvalancheStrategy{})
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		Snowball: StrategyOutcome{
			Name:          "snowball",
			Months:        snow.Months,
			TotalInterest: snow.TotalInterest,
			PaidOff:       snow.PaidOff,
		},
		Avalanche: StrategyOutcome{
			Name:          "avalanche",
			Months:        ava.Months,
			TotalInterest: ava.TotalInterest,
			PaidOff:       ava.PaidOff,
		},
	}

	if ava.TotalInterest < snow.TotalInterest {
		cmp.Recommended = "avalanche"
		cmp.InterestSaved = snow.TotalInterest - ava.TotalInterest
		cmp.MonthsSaved = snow.Months - ava.Months
		cmp.Advice = adviceAvalanche
	} else {
		cmp.Recommended = "snowball"
		cmp.InterestSaved = ava.TotalInterest - snow.TotalInterest
		cmp.MonthsSaved = ava.Months - snow.Months
		cmp.Advice = adviceSnowball
	}

	return cmp, nil
}
