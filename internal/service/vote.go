package service

import (
	"context"

	"voting-server/internal/domain"
)

// ToggleResult reports the outcome of a vote toggle.
type ToggleResult struct {
	// Cancelled is true when an existing vote was removed instead of a new
	// one being recorded.
	Cancelled bool
	// VoteID is set when a new vote was recorded.
	VoteID string
}

// VoteService defines the toggle-vote operation and vote listings.
type VoteService interface {
	// Toggle records a vote for the principal on an active voting, or removes
	// the existing vote for the same (voting, user) pair.
	Toggle(ctx context.Context, p domain.Principal, votingID string) (*ToggleResult, error)
	ListByVoting(ctx context.Context, votingID string) ([]domain.Vote, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Vote, error)
	// ListAll is admin only.
	ListAll(ctx context.Context, p domain.Principal) ([]domain.Vote, error)
}
