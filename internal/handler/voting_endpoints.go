package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voting-server/internal/service"
)

func (h *VotingHandler) createVoting(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req createVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	voting, err := h.votingService.Create(c.Request.Context(), principal, service.VotingInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": voting.ID, "data": voting})
}

// getVotings is the public listing: active votings, newest first.
func (h *VotingHandler) getVotings(c *gin.Context) {
	votings, err := h.votingService.ListPublic(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votings), "data": votings})
}

func (h *VotingHandler) getAllVotings(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	votings, err := h.votingService.ListAll(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votings), "data": votings})
}

func (h *VotingHandler) getUserVotings(c *gin.Context) {
	votings, err := h.votingService.ListByAuthor(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(votings), "data": votings})
}

func (h *VotingHandler) getVotingByID(c *gin.Context) {
	voting, err := h.votingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": voting})
}

func (h *VotingHandler) deleteVoting(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := h.votingService.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Voting deleted successfully"})
}

func (h *VotingHandler) closeVoting(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req closeVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	if err := h.votingService.Close(c.Request.Context(), principal, c.Param("id"), req.ResultText); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Voting closed successfully"})
}
