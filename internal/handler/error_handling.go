package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voting-server/internal/domain"
)

// handleServiceError maps service errors onto HTTP status codes and the
// {success:false, error} envelope.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	resp := gin.H{"success": false}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		statusCode = http.StatusBadRequest
		resp["error"] = "Username already exists"
	case errors.Is(err, domain.ErrBadRequest):
		statusCode = http.StatusBadRequest
		resp["error"] = err.Error()
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		resp["error"] = "Invalid or expired token"
	case errors.Is(err, domain.ErrUserBanned):
		statusCode = http.StatusForbidden
		resp["error"] = "Account is banned"
	case errors.Is(err, domain.ErrForbidden):
		statusCode = http.StatusForbidden
		resp["error"] = "Access denied."
	case errors.Is(err, domain.ErrProfileNotFound):
		statusCode = http.StatusNotFound
		resp["error"] = "User profile not found"
		resp["needsProfile"] = true
	case errors.Is(err, domain.ErrUserNotFound):
		statusCode = http.StatusNotFound
		resp["error"] = "User not found"
	case errors.Is(err, domain.ErrVotingNotActive):
		statusCode = http.StatusNotFound
		resp["error"] = "Voting not found or not active"
	case errors.Is(err, domain.ErrVotingNotFound):
		statusCode = http.StatusNotFound
		resp["error"] = "Voting not found"
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		resp["error"] = err.Error()
	}

	c.AbortWithStatusJSON(statusCode, resp)
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}
