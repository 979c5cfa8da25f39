package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contalibre-dev/contalibre/internal/subscription"
)

// SubscriptionHandler serves subscription state and plan assignment.
// Payments are out of scope; assignment is direct.
type SubscriptionHandler struct {
	svc *subscription.Service
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc *subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// RegisterRoutes mounts the subscription endpoints.
func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subs := r.Group("/subscription")
	{
		subs.GET("", h.Get)
		subs.POST("", h.Subscribe)
	}
}

// Get handles GET /subscription.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.svc.RequireActive(c.Request.Context(), tenantFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

type subscribeRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
	Months   int    `json:"months"`
}

// Subscribe handles POST /subscription.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sub, err := h.svc.Subscribe(c.Request.Context(), tenantFrom(c), req.PlanCode, req.Months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}
