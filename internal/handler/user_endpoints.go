package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voting-server/internal/domain"
	"voting-server/internal/service"
)

func (h *UserHandler) getCurrentUser(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetCurrentUser(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (h *UserHandler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
	}
	id, err := h.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id, "data": user})
}

func (h *UserHandler) getUsers(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	users, err := h.userService.GetUsers(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "data": users})
}

func (h *UserHandler) getUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (h *UserHandler) updateUser(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	update := service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Status:   req.Status,
	}
	if err := h.userService.UpdateUser(c.Request.Context(), principal, c.Param("id"), update); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})
}

func (h *UserHandler) deleteUser(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

func (h *UserHandler) banUser(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req banUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	err := h.userService.BanUser(c.Request.Context(), principal, service.BanInput{
		UserID:   req.UserID,
		Reason:   req.Reason,
		BannedTo: req.BannedTo,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bansTotal.Inc()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User banned successfully"})
}
