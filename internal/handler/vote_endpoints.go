package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// vote toggles the principal's vote on a voting: a second call for the same
// pair cancels the first.
func (h *VoteHandler) vote(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	result, err := h.voteService.Toggle(c.Request.Context(), principal, req.VotingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if result.Cancelled {
		votesTotal.WithLabelValues("cancelled").Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vote cancelled successfully"})
		return
	}

	votesTotal.WithLabelValues("recorded").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      result.VoteID,
		"message": "Vote recorded successfully",
	})
}

func (h *VoteHandler) getVotingVotes(c *gin.Context) {
	votes, err := h.voteService.ListByVoting(c.Request.Context(), c.Param("voting_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votes), "data": votes})
}

func (h *VoteHandler) getUserVotes(c *gin.Context) {
	votes, err := h.voteService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votes), "data": votes})
}

func (h *VoteHandler) getAllVotes(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	votes, err := h.voteService.ListAll(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votes), "data": votes})
}
