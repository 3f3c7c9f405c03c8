package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"voting-server/internal/domain"
)

// Compile-time check
var _ IdentityProvider = (*firebaseIdentityProvider)(nil)

// firebaseIdentityProvider implements IdentityProvider over the Firebase
// Admin Auth client.
type firebaseIdentityProvider struct {
	client *auth.Client
	logger *zap.Logger
}

// NewFirebaseIdentityProvider creates the Firebase-backed identity provider.
func NewFirebaseIdentityProvider(client *auth.Client, logger *zap.Logger) IdentityProvider {
	return &firebaseIdentityProvider{
		client: client,
		logger: logger.Named("FirebaseIdentityProvider"),
	}
}

func (p *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*domain.TokenInfo, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		p.logger.Debug("ID token verification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	info := &domain.TokenInfo{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		info.Name = name
	}
	return info, nil
}

func (p *firebaseIdentityProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create identity-provider account: %w", err)
	}
	p.logger.Info("Identity-provider account created", zap.String("uid", record.UID))
	return record.UID, nil
}

func (p *firebaseIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete identity-provider account %s: %w", uid, err)
	}
	return nil
}

func (p *firebaseIdentityProvider) CreateCustomToken(ctx context.Context, uid string) (string, error) {
	token, err := p.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("failed to create custom token for %s: %w", uid, err)
	}
	return token, nil
}
