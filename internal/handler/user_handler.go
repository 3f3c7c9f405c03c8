package handler

import (
	"github.com/gin-gonic/gin"

	"voting-server/internal/service"
)

// UserHandler handles HTTP requests over user profiles.
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes mounts the user routes under /users, all behind the auth
// middleware.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	userGroup := api.Group("/users")
	userGroup.Use(authRequired)
	{
		userGroup.GET("/me", h.getCurrentUser)
		userGroup.POST("", h.createUser)
		userGroup.GET("", h.getUsers)
		userGroup.POST("/ban", h.banUser)
		userGroup.GET("/:id", h.getUserByID)
		userGroup.PUT("/:id", h.updateUser)
		userGroup.DELETE("/:id", h.deleteUser)
	}
}
