package handler

import (
	"github.com/gin-gonic/gin"

	"voting-server/internal/service"
)

// AuthHandler handles HTTP requests related to authentication.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts the auth routes under /auth. The rate limiter guards
// the whole group; nil disables it (tests).
func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	if rateLimit != nil {
		authGroup.Use(rateLimit)
	}
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/login-username", h.loginByUsername)
		authGroup.POST("/login-custom", h.loginWithCustomToken)
		authGroup.POST("/verify", h.verify)
		authGroup.POST("/test-token", h.createTestToken)
		authGroup.DELETE("/delete/:uid", h.AuthMiddleware(), h.deleteAccount)
	}
}
