package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/contalibre-dev/contalibre/internal/journal"
	"github.com/contalibre-dev/contalibre/internal/statement"
)

// JournalHandler serves journal entry posting and listing.
type JournalHandler struct {
	svc *journal.Service
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc *journal.Service) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// RegisterRoutes mounts the journal endpoints.
func (h *JournalHandler) RegisterRoutes(r *gin.RouterGroup) {
	entries := r.Group("/journal/entries")
	{
		entries.POST("", h.Post)
		entries.GET("", h.List)
	}
}

type postLineRequest struct {
	AccountID uint   `json:"account_id" binding:"required"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
	Reference string `json:"reference"`
}

type postEntryRequest struct {
	Date        string            `json:"date" binding:"required"`
	Description string            `json:"description"`
	Lines       []postLineRequest `json:"lines" binding:"required"`
}

// Post handles POST /journal/entries.
func (h *JournalHandler) Post(c *gin.Context) {
	var req postEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	date, err := statement.ParseDate(req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	params := journal.PostParams{Date: date, Description: req.Description}
	for _, l := range req.Lines {
		debit, err := parseAmount(l.Debit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid debit: " + err.Error()})
			return
		}
		credit, err := parseAmount(l.Credit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credit: " + err.Error()})
			return
		}
		params.Lines = append(params.Lines, journal.Line{
			AccountID: l.AccountID,
			Debit:     debit,
			Credit:    credit,
			Reference: l.Reference,
		})
	}

	entry, err := h.svc.Post(c.Request.Context(), tenantFrom(c), params)
	if err != nil {
		var verrs journal.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "violations": verrs})
			return
		case errors.Is(err, journal.ErrNoTenant):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List handles GET /journal/entries?fecha_inicio&fecha_fin.
func (h *JournalHandler) List(c *gin.Context) {
	startRaw := c.DefaultQuery("fecha_inicio", defaultPeriodStart)
	endRaw := c.DefaultQuery("fecha_fin", time.Now().Format(statement.DateFormat))

	start, err := statement.ParseDate(startRaw)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := statement.ParseDate(endRaw)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.svc.List(c.Request.Context(), tenantFrom(c), start, end)
	if err != nil {
		if errors.Is(err, journal.ErrNoTenant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
