package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"debt-coach/internal/analysis"
	"debt-coach/internal/api/models"
	"debt-coach/internal/cache"
	"debt-coach/internal/history"
	"debt-coach/internal/model"
	"debt-coach/internal/simulate"
	"debt-coach/internal/strategy"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation and comparison requests.
type SimulateHandler struct {
	store *history.Store // nil disables run recording
	cache cache.Cache    // nil disables comparison caching
}

func NewSimulateHandler(store *history.Store, c cache.Cache) *SimulateHandler {
	return &SimulateHandler{store: store, cache: c}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	strat, err := strategy.FromName(req.Strategy.Name)
	if err != nil {
		badRequest(c, "INVALID_STRATEGY", err.Error())
		return
	}

	loans := toModelLoans(req.Loans)
	result, err := simulate.New().Run(loans, req.ExtraBudget, strat)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	h.recordRun(c, strat.Name(), len(loans), req.ExtraBudget, result)

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(strat.Name(), len(loans), result),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareStrategies handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareStrategies(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	key := compareKey(req)
	if h.cache != nil {
		if raw, ok := h.cache.Get(key); ok {
			var cached models.CompareResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	loans := toModelLoans(req.Loans)
	cmp, err := analysis.Compare(loans, req.ExtraBudget)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	resp := models.CompareResponse{
		Comparison: []models.ComparisonResult{
			{Name: "snowball", Summary: outcomeSummary(cmp.Snowball, len(loans))},
			{Name: "avalanche", Summary: outcomeSummary(cmp.Avalanche, len(loans))},
		},
		Recommended:   cmp.Recommended,
		InterestSaved: cmp.InterestSaved,
		MonthsSaved:   cmp.MonthsSaved,
		Advice:        cmp.Advice,
	}

	if h.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(key, string(raw)); err != nil {
				slog.Warn("Failed to cache comparison", "error", err)
			}
		}
	}

	if h.store != nil {
		rec := cmp.Snowball
		if cmp.Recommended == "avalanche" {
			rec = cmp.Avalanche
		}
		if _, err := h.store.Record(c.Request.Context(), history.Run{
			Strategy:      cmp.Recommended,
			LoanCount:     len(loans),
			ExtraBudget:   req.ExtraBudget,
			Months:        rec.Months,
			TotalInterest: rec.TotalInterest,
			PaidOff:       rec.PaidOff,
		}); err != nil {
			slog.Warn("Failed to record comparison run", "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SimulateHandler) recordRun(c *gin.Context, strat string, loanCount int, extra float64, result *simulate.Result) {
	if h.store == nil {
		return
	}
	if _, err := h.store.Record(c.Request.Context(), history.Run{
		Strategy:      strat,
		LoanCount:     loanCount,
		ExtraBudget:   extra,
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		PaidOff:       result.PaidOff,
	}); err != nil {
		slog.Warn("Failed to record simulation run", "error", err)
	}
}

// Shared helpers

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

func toModelLoans(payload []models.LoanPayload) []model.Loan {
	loans := make([]model.Loan, len(payload))
	for i, p := range payload {
		loans[i] = model.Loan{
			Name:       p.Name,
			Balance:    p.Balance,
			Rate:       p.Rate,
			MinPayment: p.MinPayment,
		}
	}
	return loans
}

func buildSummary(strat string, loanCount int, result *simulate.Result) models.SimulationSummary {
	return models.SimulationSummary{
		Strategy:      strat,
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		PaidOff:       result.PaidOff,
		LoanCount:     loanCount,
	}
}

func outcomeSummary(o analysis.StrategyOutcome, loanCount int) models.SimulationSummary {
	return models.SimulationSummary{
		Strategy:      o.Name,
		Months:        o.Months,
		TotalInterest: o.TotalInterest,
		PaidOff:       o.PaidOff,
		LoanCount:     loanCount,
	}
}

func convertLedger(ledger []simulate.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		loans := make([]models.LoanMonth, len(row.Loans))
		for j, l := range row.Loans {
			loans[j] = models.LoanMonth{
				Name:     l.Name,
				Interest: l.Interest,
				Payment:  l.Payment,
				Balance:  l.Balance,
			}
		}
		out[i] = models.LedgerRow{
			Month:       row.Month,
			Interest:    row.Interest,
			CumInterest: row.CumInterest,
			TotalPaid:   row.TotalPaid,
			ExtraPaid:   row.ExtraPaid,
			ExtraTarget: row.ExtraTarget,
			Loans:       loans,
		}
	}
	return out
}

func compareKey(req models.CompareRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "compare:" + hex.EncodeToString(sum[:])
}
