package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voting-server/internal/domain"
)

const principalContextKey = "principal"

// AuthMiddleware extracts the bearer token, verifies it against the identity
// provider, and attaches the resolved principal to the request context.
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			zap.L().Warn("Authorization header missing", zap.String("path", c.Request.URL.Path))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No authorization token provided",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			zap.L().Warn("Malformed Authorization header", zap.String("path", c.Request.URL.Path))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No authorization token provided",
			})
			return
		}

		principal, err := h.authService.ResolvePrincipal(c.Request.Context(), parts[1])
		if err != nil {
			zap.L().Warn("Bearer token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// mustPrincipal returns the principal attached by AuthMiddleware. A missing
// principal means a route was wired without the middleware; the request is
// aborted with a 500.
func mustPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		zap.L().Error("Principal missing in request context", zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	if !ok {
		zap.L().Error("Invalid principal type in request context")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return domain.Principal{}, false
	}
	return principal, true
}
