package handler

import (
	"net/http"

	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	svc *service.ResourceService
}

func NewResourceHandler(svc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// GET /api/resources
func (h *ResourceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListAll(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req model.Resource
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
