package handlers

import (
	"net/http"

	"debt-coach/internal/api/models"
	"debt-coach/internal/simulate"

	"github.com/gin-gonic/gin"
)

// PayoffHandler handles single-loan amortization requests.
type PayoffHandler struct{}

func NewPayoffHandler() *PayoffHandler {
	return &PayoffHandler{}
}

// SinglePayoff handles POST /api/v1/payoff
func (h *PayoffHandler) SinglePayoff(c *gin.Context) {
	var req models.PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := simulate.Payoff(req.Balance, req.Rate, req.MonthlyPayment)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.PayoffResponse{
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		PaidOff:       result.PaidOff,
	})
}
