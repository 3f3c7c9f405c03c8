package handler

import (
	"github.com/gin-gonic/gin"

	"voting-server/internal/service"
)

// VoteHandler handles HTTP requests over votes.
type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// RegisterRoutes mounts the vote routes under /votes, all behind the auth
// middleware.
func (h *VoteHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	voteGroup := api.Group("/votes")
	voteGroup.Use(authRequired)
	{
		voteGroup.POST("", h.vote)
		voteGroup.GET("", h.getAllVotes)
		voteGroup.GET("/voting/:voting_id", h.getVotingVotes)
		voteGroup.GET("/user/:userId", h.getUserVotes)
	}
}
