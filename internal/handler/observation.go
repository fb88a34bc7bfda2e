package handler

import (
	"net/http"

	"workacare/internal/catalog"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type ObservationHandler struct {
	svc *service.ObservationService
}

func NewObservationHandler(svc *service.ObservationService) *ObservationHandler {
	return &ObservationHandler{svc: svc}
}

// GET /api/observations
func (h *ObservationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/observations
func (h *ObservationHandler) Create(c *gin.Context) {
	var req struct {
		Date      string            `json:"date"`
		Author    string            `json:"author" binding:"required"`
		Summary   string            `json:"summary"`
		Checklist map[string]string `json:"checklist"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	obs, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), req.Date, req.Author, req.Summary, req.Checklist)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, obs)
}

// GET /api/observations/checklist
func (h *ObservationHandler) Checklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": catalog.ChecklistSections(),
		"scales":   catalog.ChecklistScales,
	})
}
