package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voting-server/internal/domain"
)

func newAuthService(provider *fakeIdentityProvider, userRepo *fakeUserRepo) AuthService {
	return NewAuthService(provider, userRepo, zap.NewNop())
}

func TestRegisterRejectsTakenUsernameBeforeProviderCall(t *testing.T) {
	provider := newFakeIdentityProvider()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "existing", &domain.User{
		UID:      "existing",
		Username: "alice",
		Status:   domain.UserStatusActive,
	}))

	svc := newAuthService(provider, userRepo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "secret123",
		Username: "alice",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Equal(t, 0, provider.createCalls, "no provider account may be created for a taken username")
}

func TestRegisterCreatesProfileAndIssuesToken(t *testing.T) {
	provider := newFakeIdentityProvider()
	userRepo := newFakeUserRepo()
	svc := newAuthService(provider, userRepo)

	customToken, user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Bob@Example.com ",
		Password: "secret123",
		Name:     "Bob",
		Username: "bob",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "custom-token-"+user.UID, customToken)
	assert.Equal(t, "bob@example.com", user.Email, "email is lowercased and trimmed")
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)

	// Profile document is keyed by the provider uid.
	stored, err := userRepo.GetByID(context.Background(), user.UID)
	require.NoError(t, err)
	assert.Equal(t, "bob", stored.Username)
}

func TestLoginRejectsBannedUser(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.tokens["id-token"] = &domain.TokenInfo{UID: "u1", Email: "u1@example.com"}
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{
		UID:      "u1",
		Username: "banned-user",
		Status:   domain.UserStatusBanned,
	}))

	svc := newAuthService(provider, userRepo)

	_, err := svc.Login(context.Background(), "id-token")
	require.ErrorIs(t, err, domain.ErrUserBanned)
}

func TestLoginSignalsMissingProfile(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.tokens["id-token"] = &domain.TokenInfo{UID: "u1"}
	svc := newAuthService(provider, newFakeUserRepo())

	_, err := svc.Login(context.Background(), "id-token")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestLoginProfileFieldsWin(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.tokens["id-token"] = &domain.TokenInfo{UID: "u1", Email: "token@example.com", Name: "Token Name"}
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{
		UID:      "u1",
		Username: "profile-user",
		Name:     "Profile Name",
		Role:     domain.RoleAdmin,
		Status:   domain.UserStatusActive,
	}))

	svc := newAuthService(provider, userRepo)

	user, err := svc.Login(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "profile-user", user.Username)
	assert.Equal(t, "Profile Name", user.Name)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "token@example.com", user.Email, "email comes from the token")
}

func TestLoginVerificationFailure(t *testing.T) {
	svc := newAuthService(newFakeIdentityProvider(), newFakeUserRepo())

	_, err := svc.Login(context.Background(), "garbage")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLoginByUsernameIssuesFreshToken(t *testing.T) {
	provider := newFakeIdentityProvider()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{
		UID:      "u1",
		Username: "carol",
		Status:   domain.UserStatusActive,
	}))

	svc := newAuthService(provider, userRepo)

	customToken, user, err := svc.LoginByUsername(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, "custom-token-u1", customToken)
	assert.Equal(t, "u1", user.UID)

	_, _, err = svc.LoginByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func signedCustomToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

func TestLoginWithCustomTokenDecodesUID(t *testing.T) {
	provider := newFakeIdentityProvider()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{
		UID:      "u1",
		Username: "dave",
		Status:   domain.UserStatusActive,
	}))

	svc := newAuthService(provider, userRepo)

	// The payload is read without signature verification, so any signing key
	// works.
	token := signedCustomToken(t, jwt.MapClaims{"uid": "u1", "exp": time.Now().Add(time.Hour).Unix()})

	user, err := svc.LoginWithCustomToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "dave", user.Username)
}

func TestLoginWithCustomTokenMissingUID(t *testing.T) {
	svc := newAuthService(newFakeIdentityProvider(), newFakeUserRepo())

	token := signedCustomToken(t, jwt.MapClaims{"sub": "whatever"})

	_, err := svc.LoginWithCustomToken(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.LoginWithCustomToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyTokenSkipsBannedCheck(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.tokens["id-token"] = &domain.TokenInfo{UID: "u1", Email: "u1@example.com"}
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{
		UID:      "u1",
		Username: "banned-user",
		Status:   domain.UserStatusBanned,
	}))

	svc := newAuthService(provider, userRepo)

	user, err := svc.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err, "verify does not reject banned users")
	assert.Equal(t, "banned-user", user.Username)
}

func TestDeleteAccountRemovesBothRecords(t *testing.T) {
	provider := newFakeIdentityProvider()
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "u1", &domain.User{UID: "u1", Username: "gone"}))

	svc := newAuthService(provider, userRepo)

	require.NoError(t, svc.DeleteAccount(context.Background(), "u1"))
	assert.Equal(t, []string{"u1"}, provider.deleted)

	_, err := userRepo.GetByID(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResolvePrincipalRole(t *testing.T) {
	provider := newFakeIdentityProvider()
	provider.tokens["admin-token"] = &domain.TokenInfo{UID: "a1", Email: "a@example.com"}
	provider.tokens["fresh-token"] = &domain.TokenInfo{UID: "new-uid"}
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateWithID(context.Background(), "a1", &domain.User{
		UID:    "a1",
		Role:   domain.RoleAdmin,
		Status: domain.UserStatusActive,
	}))

	svc := newAuthService(provider, userRepo)

	principal, err := svc.ResolvePrincipal(context.Background(), "admin-token")
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin())

	// No profile yet: the principal degrades to the plain user role.
	principal, err = svc.ResolvePrincipal(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, principal.Role)
}
