package handlers

import (
	"net/http"

	"debt-coach/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests.
type StrategyHandler struct{}

func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "snowball",
			Description: "Directs the monthly rollover at the loan with the smallest remaining balance. Pays off individual loans fastest, which helps motivation.",
			OrderedBy:   "balance ascending",
		},
		{
			Name:        "avalanche",
			Description: "Directs the monthly rollover at the loan with the highest interest rate. Minimizes total interest paid over the life of the debts.",
			OrderedBy:   "rate descending",
		},
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
