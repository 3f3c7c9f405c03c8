package service

import (
	"context"

	"voting-server/internal/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// AuthService defines registration, login, and account lifecycle operations.
type AuthService interface {
	// Register creates an identity-provider account and a matching profile
	// document, then issues a custom token. The username pre-check runs
	// before any provider call.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login verifies an ID token and loads the profile; profile fields take
	// precedence over token claims in the returned user.
	Login(ctx context.Context, idToken string) (*domain.User, error)
	// LoginByUsername issues a fresh custom token for the profile matching
	// the username. No secret is checked; see DESIGN.md.
	LoginByUsername(ctx context.Context, username string) (string, *domain.User, error)
	// LoginWithCustomToken decodes the token payload without signature
	// verification and loads the profile for its uid claim.
	LoginWithCustomToken(ctx context.Context, customToken string) (*domain.User, error)
	// VerifyToken returns the principal view for an ID token. Unlike Login it
	// performs no banned check.
	VerifyToken(ctx context.Context, idToken string) (*domain.User, error)
	// CreateTestToken mints a custom token for an arbitrary uid (dev helper).
	CreateTestToken(ctx context.Context, uid string) (string, error)
	// DeleteAccount removes the identity-provider account and the profile
	// document keyed by uid.
	DeleteAccount(ctx context.Context, uid string) error
	// ResolvePrincipal verifies an ID token and resolves the profile role for
	// the request principal. Missing profiles degrade to RoleUser.
	ResolvePrincipal(ctx context.Context, idToken string) (domain.Principal, error)
}
