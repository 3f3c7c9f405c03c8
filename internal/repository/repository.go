package repository

import (
	"context"

	"voting-server/internal/domain"
)

// Firestore collection names.
const (
	usersCollection    = "users"
	votingsCollection  = "votings"
	votesCollection    = "votes"
	userBansCollection = "user_bans"
)

// IdentityProvider wraps the identity-provider account and token operations.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*domain.TokenInfo, error)
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	CreateCustomToken(ctx context.Context, uid string) (string, error)
}

// UserRepository covers the users collection.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateWithID(ctx context.Context, id string, user *domain.User) error
	Add(ctx context.Context, user *domain.User) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// VotingRepository covers the votings collection.
type VotingRepository interface {
	Add(ctx context.Context, voting *domain.Voting) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Voting, error)
	ListActive(ctx context.Context) ([]domain.Voting, error)
	ListAll(ctx context.Context) ([]domain.Voting, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Voting, error)
	SetStatus(ctx context.Context, id, status string) error
	Close(ctx context.Context, id, resultText string) error
}

// VoteRepository covers the votes collection.
type VoteRepository interface {
	Add(ctx context.Context, vote *domain.Vote) (string, error)
	FindByVotingAndUser(ctx context.Context, votingID, userID string) (*domain.Vote, error)
	Delete(ctx context.Context, id string) error
	ListByVoting(ctx context.Context, votingID string) ([]domain.Vote, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Vote, error)
	ListAll(ctx context.Context) ([]domain.Vote, error)
}

// BanRepository covers the append-only user_bans collection.
type BanRepository interface {
	Add(ctx context.Context, ban *domain.UserBan) (string, error)
}
