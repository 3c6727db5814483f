package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"debt-coach/internal/analysis"
	"debt-coach/internal/config"
	"debt-coach/internal/data"
	"debt-coach/internal/simulate"
	"debt-coach/internal/strategy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "payoff":
		cmdPayoff(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/schedule.csv")
	fmt.Println("  cli compare --config examples/config.yaml")
	fmt.Println("  cli payoff --balance 5000 --rate 14.5 --payment 250")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes a CSV with one row per loan per month")
	fmt.Println("  - compare runs snowball and avalanche on the same budget and prints both")
	fmt.Println("  - a months value of 600 means the debt never pays off at that budget")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	loansPath := fs.String("loans", "", "Optional: JSON loan export overriding the config's loans")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	stratName := fs.String("strategy", "", "Optional: override the config's strategy")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	loans := cfg.Loans
	if *loansPath != "" {
		loans, err = data.LoadLoansJSON(*loansPath)
		if err != nil {
			panic(err)
		}
	}

	name := cfg.Strategy.Name
	if *stratName != "" {
		name = *stratName
	}
	strat, err := strategy.FromName(name)
	if err != nil {
		panic(err)
	}

	engine := simulate.New()
	res, err := engine.Run(loans, cfg.MonthlyDebtBudget(), strat)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d months to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Strategy=%s Months=%d Total interest=%.2f Paid off=%v\n",
		strat.Name(), res.Months, res.TotalInterest, res.PaidOff)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	loansPath := fs.String("loans", "", "Optional: JSON loan export overriding the config's loans")
	extra := fs.Float64("extra", 0, "Optional: override the monthly debt budget")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	loans := cfg.Loans
	if *loansPath != "" {
		loans, err = data.LoadLoansJSON(*loansPath)
		if err != nil {
			panic(err)
		}
	}

	budget := cfg.MonthlyDebtBudget()
	if *extra > 0 {
		budget = *extra
	}

	cmp, err := analysis.Compare(loans, budget)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-11s %-8s %-16s %-9s\n", "strategy", "months", "total_interest", "paid_off")
	printOutcome(cmp.Snowball)
	printOutcome(cmp.Avalanche)
	fmt.Println("")
	fmt.Printf("Recommended: %s (interest saved %.2f, months saved %d)\n",
		cmp.Recommended, cmp.InterestSaved, cmp.MonthsSaved)
	fmt.Println(cmp.Advice)
}

func printOutcome(o analysis.StrategyOutcome) {
	fmt.Printf("%-11s %-8d %-16.2f %-9v\n", o.Name, o.Months, o.TotalInterest, o.PaidOff)
}

func cmdPayoff(args []string) {
	fs := flag.NewFlagSet("payoff", flag.ExitOnError)
	balance := fs.Float64("balance", 0, "Loan balance")
	rate := fs.Float64("rate", 0, "Annual rate (percent)")
	payment := fs.Float64("payment", 0, "Monthly payment")
	_ = fs.Parse(args)

	res, err := simulate.Payoff(*balance, *rate, *payment)
	if err != nil {
		panic(err)
	}

	if !res.PaidOff {
		fmt.Printf("Not paid off after %d months (payment too small to amortize)\n", res.Months)
	} else {
		fmt.Printf("Paid off in %d months\n", res.Months)
	}
	fmt.Printf("Total interest=%.2f\n", res.TotalInterest)
}
