package handlers

import (
	"net/http"
	"strconv"

	"debt-coach/internal/api/models"
	"debt-coach/internal/history"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves recorded plan runs.
type HistoryHandler struct {
	store *history.Store
}

func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// ListRuns handles GET /api/v1/history
func (h *HistoryHandler) ListRuns(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "HISTORY_DISABLED",
				Message: "Plan history storage is not configured",
			},
		})
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "HISTORY_ERROR", Message: err.Error()},
		})
		return
	}

	out := make([]models.HistoryRun, len(runs))
	for i, r := range runs {
		out[i] = models.HistoryRun{
			ID:            r.ID,
			CreatedAt:     r.CreatedAt,
			Strategy:      r.Strategy,
			LoanCount:     r.LoanCount,
			ExtraBudget:   r.ExtraBudget,
			Months:        r.Months,
			TotalInterest: r.TotalInterest,
			PaidOff:       r.PaidOff,
		}
	}
	c.JSON(http.StatusOK, models.HistoryResponse{Runs: out})
}
