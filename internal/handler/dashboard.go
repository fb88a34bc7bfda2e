package handler

import (
	"net/http"

	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
	ai  *service.AIService
}

func NewDashboardHandler(svc *service.DashboardService, ai *service.AIService) *DashboardHandler {
	return &DashboardHandler{svc: svc, ai: ai}
}

// GET /api/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	ownerScoped := c.GetString("user_role") != "supervisor"
	c.JSON(http.StatusOK, h.svc.Overview(c.Request.Context(), ownerFilter(c), ownerScoped))
}

// POST /api/dashboard/analysis
func (h *DashboardHandler) Analysis(c *gin.Context) {
	overview := h.svc.Overview(c.Request.Context(), ownerFilter(c), false)
	report := h.ai.Analyze(c.Request.Context(), overview.Metrics, overview.Chart, overview.Departments)
	c.JSON(http.StatusOK, report)
}
