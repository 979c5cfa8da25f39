package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contalibre-dev/contalibre/internal/journal"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/statement"
)

var allFamilies = []model.Family{
	model.FamilyAsset,
	model.FamilyLiability,
	model.FamilyEquity,
	model.FamilyIncome,
	model.FamilyExpense,
}

// ChartHandler exposes the company's chart of accounts.
type ChartHandler struct {
	loader statement.ChartLoader
}

// NewChartHandler creates a ChartHandler.
func NewChartHandler(loader statement.ChartLoader) *ChartHandler {
	return &ChartHandler{loader: loader}
}

// RegisterRoutes mounts the chart endpoint.
func (h *ChartHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/chart", h.Get)
}

// Get handles GET /chart: the full class tree with leaf accounts.
func (h *ChartHandler) Get(c *gin.Context) {
	tc := tenantFrom(c)
	if !tc.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": journal.ErrNoTenant.Error()})
		return
	}

	tree, err := h.loader.LoadChart(c.Request.Context(), tc.CompanyID, allFamilies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": tree.Roots})
}
