package handler

import (
	"net/http"

	"workacare/internal/logger"
	"workacare/internal/middleware"
	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	secret []byte
}

func NewAuthHandler(auth *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("register.failed", "email", req.Email, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("register.ok", "uid", p.ID, "email", p.Email, "role", p.Role)
	h.respondWithToken(c, p)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	logger.Info("login.ok", "uid", p.ID, "email", p.Email)
	h.respondWithToken(c, p)
}

// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	p, err := h.auth.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, model.User{ID: p.ID, Email: p.Email, FullName: p.FullName, Role: p.Role})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, p *model.Profile) {
	token, err := middleware.IssueToken(h.secret, p.ID, p.FullName, p.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token"})
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.User{ID: p.ID, Email: p.Email, FullName: p.FullName, Role: p.Role},
	})
}
