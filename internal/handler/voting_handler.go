package handler

import (
	"github.com/gin-gonic/gin"

	"voting-server/internal/service"
)

// VotingHandler handles HTTP requests over votings.
type VotingHandler struct {
	votingService service.VotingService
}

func NewVotingHandler(votingService service.VotingService) *VotingHandler {
	return &VotingHandler{votingService: votingService}
}

// RegisterRoutes mounts the voting routes under /votings. The public listing
// is reachable without authentication; everything else requires it.
func (h *VotingHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	votingGroup := api.Group("/votings")
	{
		votingGroup.GET("/public", h.getVotings)
		votingGroup.GET("/user/:userId", authRequired, h.getUserVotings)
		votingGroup.GET("/:id", authRequired, h.getVotingByID)
		votingGroup.POST("", authRequired, h.createVoting)
		votingGroup.GET("", authRequired, h.getAllVotings)
		votingGroup.DELETE("/:id", authRequired, h.deleteVoting)
		votingGroup.PUT("/:id/close", authRequired, h.closeVoting)
	}
}
