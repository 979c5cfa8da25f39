package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contalibre-dev/contalibre/internal/statement"
	"github.com/contalibre-dev/contalibre/internal/subscription"
)

// defaultPeriodStart matches the original API's open lower bound for
// reports requested without fecha_inicio.
const defaultPeriodStart = "2010-01-01"

// ReportHandler serves the financial statement endpoints.
type ReportHandler struct {
	builder *statement.Builder
	subs    *subscription.Service
	now     func() time.Time
}

// NewReportHandler creates a ReportHandler. subs may be nil when report
// gating is disabled (tests).
func NewReportHandler(builder *statement.Builder, subs *subscription.Service) *ReportHandler {
	return &ReportHandler{builder: builder, subs: subs, now: time.Now}
}

// RegisterRoutes mounts the report endpoints.
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/balance-sheet", h.BalanceSheet)
		reports.GET("/income-statement", h.IncomeStatement)
		reports.POST("/ai", h.AIReport)
	}
}

// BalanceSheet handles GET /reports/balance-sheet?fecha_inicio&fecha_fin.
func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	if !h.requireSubscription(c) {
		return
	}
	start, end, err := h.periodParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	sheet, err := h.builder.BalanceSheet(c.Request.Context(), tenantFrom(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// IncomeStatement handles GET /reports/income-statement?fecha_inicio&fecha_fin.
func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	if !h.requireSubscription(c) {
		return
	}
	start, end, err := h.periodParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	st, err := h.builder.IncomeStatement(c.Request.Context(), tenantFrom(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type aiReportRequest struct {
	Query       string `json:"query" binding:"required"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// AIReport handles POST /reports/ai. Quota-gated: each call burns one AI
// query from the active subscription. Natural-language understanding is out
// of scope; the request text only selects which statement to run.
func (h *ReportHandler) AIReport(c *gin.Context) {
	var req aiReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	tc := tenantFrom(c)
	if h.subs != nil {
		if err := h.subs.ConsumeAIQuery(c.Request.Context(), tc); err != nil {
			respondError(c, err)
			return
		}
	}

	start, end, err := h.period(req.FechaInicio, req.FechaFin)
	if err != nil {
		respondError(c, err)
		return
	}

	if strings.Contains(strings.ToLower(req.Query), "balance") {
		sheet, err := h.builder.BalanceSheet(c.Request.Context(), tc, start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"report": "balance_sheet", "data": sheet})
		return
	}

	st, err := h.builder.IncomeStatement(c.Request.Context(), tc, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": "income_statement", "data": st})
}

// requireSubscription enforces the report gate when a subscription service
// is wired; it writes the error response itself and reports whether the
// handler may proceed.
func (h *ReportHandler) requireSubscription(c *gin.Context) bool {
	if h.subs == nil {
		return true
	}
	if _, err := h.subs.RequireActive(c.Request.Context(), tenantFrom(c)); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func (h *ReportHandler) periodParams(c *gin.Context) (time.Time, time.Time, error) {
	return h.period(c.Query("fecha_inicio"), c.Query("fecha_fin"))
}

func (h *ReportHandler) period(startRaw, endRaw string) (time.Time, time.Time, error) {
	if startRaw == "" {
		startRaw = defaultPeriodStart
	}
	if endRaw == "" {
		endRaw = h.now().Format(statement.DateFormat)
	}
	start, err := statement.ParseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := statement.ParseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// respondError maps service failures to HTTP statuses, keeping the typed
// kind visible to API clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, subscription.ErrNoActiveSubscription):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	case errors.Is(err, subscription.ErrQuotaExhausted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	kind := statement.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case statement.KindInvalidDateRange, statement.KindNoTenantContext:
		status = http.StatusBadRequest
	case statement.KindMissingChartOfAccounts:
		status = http.StatusNotFound
	case statement.KindMalformedChartOfAccounts, statement.KindAggregationQueryFailed:
		status = http.StatusInternalServerError
	}

	resp := gin.H{"error": err.Error()}
	if kind != "" {
		resp["kind"] = string(kind)
	}
	c.JSON(status, resp)
}
