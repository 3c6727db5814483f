package handlers

import (
	"net/http"

	"debt-coach/internal/analysis"
	"debt-coach/internal/api/models"
	"debt-coach/internal/budget"

	"github.com/gin-gonic/gin"
)

// BudgetHandler produces a full monthly plan: salary split, expense check and
// strategy comparison.
type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// PlanBudget handles POST /api/v1/budget/plan
func (h *BudgetHandler) PlanBudget(c *gin.Context) {
	var req models.BudgetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	var split budget.Split
	var err error
	switch {
	case req.SplitPercent != nil:
		split, err = budget.PercentSplit(req.Salary,
			req.SplitPercent.Savings, req.SplitPercent.Debt, req.SplitPercent.Expenses)
	case req.Savings != nil:
		split, err = budget.FixedSplit(req.Salary, *req.Savings)
	default:
		badRequest(c, "INVALID_REQUEST", "either savings or split_percent is required")
		return
	}
	if err != nil {
		badRequest(c, "INVALID_SPLIT", err.Error())
		return
	}

	loans := toModelLoans(req.Loans)
	if err := budget.CheckMinimums(loans, split.Debt); err != nil {
		badRequest(c, "INSUFFICIENT_BUDGET", err.Error())
		return
	}

	spare, within := budget.ExpenseStatus(req.Expenses, split.Expenses)

	cmp, err := analysis.Compare(loans, split.Debt)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	var expensesTotal float64
	for _, amount := range req.Expenses {
		expensesTotal += amount
	}

	c.JSON(http.StatusOK, models.BudgetPlanResponse{
		Split: models.SplitAmounts{
			Savings:  split.Savings,
			Debt:     split.Debt,
			Expenses: split.Expenses,
		},
		ExpensesTotal:  expensesTotal,
		ExpensesSpare:  spare,
		WithinExpenses: within,
		Comparison: models.CompareResponse{
			Comparison: []models.ComparisonResult{
				{Name: "snowball", Summary: outcomeSummary(cmp.Snowball, len(loans))},
				{Name: "avalanche", Summary: outcomeSummary(cmp.Avalanche, len(loans))},
			},
			Recommended:   cmp.Recommended,
			InterestSaved: cmp.InterestSaved,
			MonthsSaved:   cmp.MonthsSaved,
			Advice:        cmp.Advice,
		},
	})
}
