package service

import (
	"context"
	"time"

	"voting-server/internal/domain"
)

// UserUpdate carries the mutable profile fields. Nil pointers are left
// untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Name     *string
	Status   *string
}

// BanInput carries the ban request fields.
type BanInput struct {
	UserID   string
	Reason   string
	BannedTo time.Time
}

// UserService defines profile CRUD and moderation operations.
type UserService interface {
	// GetCurrentUser resolves the principal's own profile: document-id lookup
	// first, uid equality query as fallback.
	GetCurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error)
	// CreateUser adds a profile document under a generated id.
	CreateUser(ctx context.Context, user *domain.User) (string, error)
	// GetUsers is admin only: full unfiltered scan.
	GetUsers(ctx context.Context, p domain.Principal) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateUser and DeleteUser are permitted for the profile owner or an
	// admin.
	UpdateUser(ctx context.Context, p domain.Principal, id string, update UserUpdate) error
	DeleteUser(ctx context.Context, p domain.Principal, id string) error
	// BanUser is admin only: appends a ban record and flips the target's
	// status to banned.
	BanUser(ctx context.Context, p domain.Principal, in BanInput) error
}
