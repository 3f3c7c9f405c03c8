package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voting-server/internal/domain"
	"voting-server/internal/service"
)

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	customToken, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			handleServiceError(c, err)
			return
		}
		// Provider and store failures surface as 400 with the raw message.
		badRequest(c, err.Error())
		return
	}

	registrationsTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "User created successfully",
		"customToken": customToken,
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.Username,
			"name":     user.Name,
		},
	})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "ID Token is required")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		loginsTotal.WithLabelValues("token", "failure").Inc()
		handleServiceError(c, err)
		return
	}
	loginsTotal.WithLabelValues("token", "success").Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

func (h *AuthHandler) loginByUsername(c *gin.Context) {
	var req loginUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Username is required")
		return
	}

	customToken, user, err := h.authService.LoginByUsername(c.Request.Context(), req.Username)
	if err != nil {
		loginsTotal.WithLabelValues("username", "failure").Inc()
		handleServiceError(c, err)
		return
	}
	loginsTotal.WithLabelValues("username", "success").Inc()

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "User found, use custom token to authenticate",
		"customToken": customToken,
		"instruction": "Use this custom token with the client SDK to get an ID token",
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.Username,
			"name":     user.Name,
		},
	})
}

func (h *AuthHandler) loginWithCustomToken(c *gin.Context) {
	var req loginCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Custom Token is required")
		return
	}

	user, err := h.authService.LoginWithCustomToken(c.Request.Context(), req.CustomToken)
	if err != nil {
		loginsTotal.WithLabelValues("custom", "failure").Inc()
		handleServiceError(c, err)
		return
	}
	loginsTotal.WithLabelValues("custom", "success").Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful with custom token",
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

func (h *AuthHandler) verify(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "ID Token is required")
		return
	}

	user, err := h.authService.VerifyToken(c.Request.Context(), req.IDToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"uid":      user.UID,
			"email":    user.Email,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

func (h *AuthHandler) createTestToken(c *gin.Context) {
	var req testTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "UID is required")
		return
	}

	customToken, err := h.authService.CreateTestToken(c.Request.Context(), req.UID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"customToken": customToken,
		"message":     "Use this custom token to get an ID token via the client SDK",
	})
}

func (h *AuthHandler) deleteAccount(c *gin.Context) {
	uid := c.Param("uid")

	if err := h.authService.DeleteAccount(c.Request.Context(), uid); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account deleted successfully",
	})
}
