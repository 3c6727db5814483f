package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"debt-coach/internal/model"
	"debt-coach/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load loans from a separate YAML (e.g. examples/loans/*.yaml).
	// If both LoansFile and Loans are provided, Loans is appended after the file's.
	LoansFile string         `yaml:"loans_file"`
	Loans     []model.Loan   `yaml:"loans"`
	Budget    BudgetConfig   `yaml:"budget"`
	Strategy  StrategyConfig `yaml:"strategy"`
}

type BudgetConfig struct {
	Salary  float64 `yaml:"salary"`
	Savings float64 `yaml:"savings"`
	// ExtraBudget is the monthly pool that funds minimum payments plus the
	// rollover. When 0 it is derived from the salary split (20% of salary).
	ExtraBudget float64 `yaml:"extra_budget"`
}

type StrategyConfig struct {
	Name string `yaml:"name"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default to avalanche; it is the interest-minimizing ordering.
	if c.Strategy.Name == "" {
		c.Strategy.Name = "avalanche"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.LoansFile != "" {
		loansPath := c.LoansFile
		if !filepath.IsAbs(loansPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), loansPath)
			if _, err := os.Stat(cand); err == nil {
				loansPath = cand
			}
		}
		loaded, err := LoadLoansFile(loansPath)
		if err != nil {
			return nil, err
		}
		c.Loans = append(loaded, c.Loans...)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := strategy.FromName(c.Strategy.Name); err != nil {
		return err
	}
	if err := model.ValidateLoans(c.Loans); err != nil {
		return fmt.Errorf("loans config invalid: %w", err)
	}
	if c.Budget.ExtraBudget < 0 {
		return errors.New("budget.extra_budget must be >= 0")
	}
	if c.Budget.Savings < 0 {
		return errors.New("budget.savings must be >= 0")
	}
	if c.Budget.Salary < 0 {
		return errors.New("budget.salary must be >= 0")
	}
	return nil
}

// MonthlyDebtBudget resolves the pool that funds all payments for a month:
// the explicit extra_budget when set, otherwise 20% of salary.
func (c *Config) MonthlyDebtBudget() float64 {
	if c.Budget.ExtraBudget > 0 {
		return c.Budget.ExtraBudget
	}
	return c.Budget.Salary * 0.20
}

type loansFileWrapper struct {
	Loans []model.Loan `yaml:"loans"`
}

// LoadLoansFile reads a standalone loan list YAML ("loans:" at the top level).
func LoadLoansFile(path string) ([]model.Loan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w loansFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Loans, nil
}
