package handler

import (
	"net/http"

	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type StrategyHandler struct {
	svc *service.StrategyService
}

func NewStrategyHandler(svc *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{svc: svc}
}

// GET /api/strategy/swot
func (h *StrategyHandler) ListSwot(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListSwot(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/strategy/swot  body: {"text":"...","type":"strength"}
func (h *StrategyHandler) AddSwot(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.svc.AddSwot(c.Request.Context(), c.GetString("user_id"), req.Text, req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/strategy/swot/:id
func (h *StrategyHandler) DeleteSwot(c *gin.Context) {
	if err := h.svc.DeleteSwot(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/strategy/goals
func (h *StrategyHandler) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListGoals(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/strategy/goals
func (h *StrategyHandler) AddGoal(c *gin.Context) {
	var req model.StrategicGoal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	goal, err := h.svc.AddGoal(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /api/strategy/goals/:id/status  body: {"status":"in-progress"}
func (h *StrategyHandler) UpdateGoalStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.UpdateGoalStatus(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/strategy/goals/:id
func (h *StrategyHandler) DeleteGoal(c *gin.Context) {
	if err := h.svc.DeleteGoal(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/strategy/resources
func (h *StrategyHandler) ListResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListResources(c.Request.Context(), c.GetString("user_id")))
}

// POST /api/strategy/resources  body: {"item":"...","cost":1200}
func (h *StrategyHandler) AddResource(c *gin.Context) {
	var req struct {
		Item string  `json:"item" binding:"required"`
		Cost float64 `json:"cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.svc.AddResource(c.Request.Context(), c.GetString("user_id"), req.Item, req.Cost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /api/strategy/resources/:id/allocated  body: {"allocated":true}
func (h *StrategyHandler) SetResourceAllocated(c *gin.Context) {
	var req struct {
		Allocated bool `json:"allocated"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.SetResourceAllocated(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Allocated); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/strategy/resources/:id
func (h *StrategyHandler) DeleteResource(c *gin.Context) {
	if err := h.svc.DeleteResource(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
