package handler

import (
	"context"
	"net/http"

	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Get(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/settings/:kind  body: {"value":"..."}
func (h *SettingsHandler) AddItem(c *gin.Context) {
	h.mutate(c, h.svc.AddItem)
}

// DELETE /api/settings/:kind  body: {"value":"..."}
func (h *SettingsHandler) RemoveItem(c *gin.Context) {
	h.mutate(c, h.svc.RemoveItem)
}

func (h *SettingsHandler) mutate(c *gin.Context, op func(ctx context.Context, ownerID, kind, value string) (model.AppSettings, error)) {
	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	settings, err := op(c.Request.Context(), c.GetString("user_id"), c.Param("kind"), req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
