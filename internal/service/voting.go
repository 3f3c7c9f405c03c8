package service

import (
	"context"

	"voting-server/internal/domain"
)

// VotingInput carries the fields for creating a voting.
type VotingInput struct {
	Title       string
	Description string
	Tag         string
}

// VotingService defines poll CRUD operations.
type VotingService interface {
	// Create adds a voting authored by the principal with status active.
	Create(ctx context.Context, p domain.Principal, in VotingInput) (*domain.Voting, error)
	// ListPublic returns active votings ordered by creation time descending.
	ListPublic(ctx context.Context) ([]domain.Voting, error)
	// ListAll is admin only: unfiltered scan.
	ListAll(ctx context.Context, p domain.Principal) ([]domain.Voting, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Voting, error)
	GetByID(ctx context.Context, id string) (*domain.Voting, error)
	// Delete is permitted for the owner or an admin; the voting is soft
	// deleted via a status flip.
	Delete(ctx context.Context, p domain.Principal, id string) error
	// Close is author only, without the admin override Delete has.
	Close(ctx context.Context, p domain.Principal, id, resultText string) error
}
