package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"voting-server/internal/domain"
	"voting-server/internal/repository"
)

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	provider repository.IdentityProvider
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(provider repository.IdentityProvider, userRepo repository.UserRepository, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		provider: provider,
		userRepo: userRepo,
		logger:   logger.Named("AuthService"),
	}
}

func (s *authServiceImpl) Register(ctx context.Context, in RegisterInput) (string, *domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	logFields := []zap.Field{zap.String("username", in.Username), zap.String("email", in.Email)}
	s.logger.Info("Registering new user", logFields...)

	// Username uniqueness is a pre-insert query only; a concurrent identical
	// registration can still race past it.
	_, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err == nil {
		s.logger.Warn("Registration rejected, username taken", logFields...)
		return "", nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("username pre-check failed: %w", err)
	}

	uid, err := s.provider.CreateUser(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:        uid,
		UID:       uid,
		Username:  in.Username,
		Email:     in.Email,
		Name:      in.Name,
		Role:      domain.RoleUser,
		Status:    domain.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	// No compensating rollback: a failure here leaves the provider account
	// without a profile document, and login will answer needsProfile.
	if err := s.userRepo.CreateWithID(ctx, uid, user); err != nil {
		s.logger.Error("Profile creation failed after provider account was created",
			append(logFields, zap.String("uid", uid), zap.Error(err))...)
		return "", nil, err
	}

	customToken, err := s.provider.CreateCustomToken(ctx, uid)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("User registered", zap.String("uid", uid), zap.String("username", in.Username))
	return customToken, user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, idToken string) (*domain.User, error) {
	token, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetByID(ctx, token.UID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Status == domain.UserStatusBanned {
		s.logger.Warn("Login rejected, account banned", zap.String("uid", token.UID))
		return nil, domain.ErrUserBanned
	}

	return mergeTokenAndProfile(token, profile), nil
}

func (s *authServiceImpl) LoginByUsername(ctx context.Context, username string) (string, *domain.User, error) {
	profile, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if profile.Status == domain.UserStatusBanned {
		return "", nil, domain.ErrUserBanned
	}

	customToken, err := s.provider.CreateCustomToken(ctx, profile.UID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Custom token issued by username", zap.String("uid", profile.UID), zap.String("username", username))
	return customToken, profile, nil
}

func (s *authServiceImpl) LoginWithCustomToken(ctx context.Context, customToken string) (*domain.User, error) {
	// The payload is decoded without signature verification; this path is
	// intentionally less strict than Login.
	token, _, err := new(jwt.Parser).ParseUnverified(customToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: malformed custom token", domain.ErrTokenInvalid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: malformed custom token", domain.ErrTokenInvalid)
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, fmt.Errorf("%w: custom token is missing uid", domain.ErrBadRequest)
	}

	profile, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Status == domain.UserStatusBanned {
		return nil, domain.ErrUserBanned
	}

	return profile, nil
}

func (s *authServiceImpl) VerifyToken(ctx context.Context, idToken string) (*domain.User, error) {
	token, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	// No banned check here, mirroring the login-path asymmetry.
	user := &domain.User{
		UID:   token.UID,
		Email: token.Email,
		Name:  token.Name,
		Role:  domain.RoleUser,
	}
	if profile, err := s.userRepo.GetByID(ctx, token.UID); err == nil {
		user.Username = profile.Username
		if profile.Role != "" {
			user.Role = profile.Role
		}
	}
	return user, nil
}

func (s *authServiceImpl) CreateTestToken(ctx context.Context, uid string) (string, error) {
	return s.provider.CreateCustomToken(ctx, uid)
}

func (s *authServiceImpl) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.provider.DeleteUser(ctx, uid); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, uid); err != nil {
		return err
	}
	s.logger.Info("Account deleted", zap.String("uid", uid))
	return nil
}

func (s *authServiceImpl) ResolvePrincipal(ctx context.Context, idToken string) (domain.Principal, error) {
	token, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return domain.Principal{}, err
	}

	principal := domain.Principal{
		UID:   token.UID,
		Email: token.Email,
		Name:  token.Name,
		Role:  domain.RoleUser,
	}

	profile, err := s.userRepo.GetByID(ctx, token.UID)
	if errors.Is(err, domain.ErrUserNotFound) {
		profile, err = s.userRepo.GetByUID(ctx, token.UID)
	}
	if err == nil && profile.Role != "" {
		principal.Role = profile.Role
	}

	return principal, nil
}

// mergeTokenAndProfile builds the login response user: profile fields win for
// username, name, and role.
func mergeTokenAndProfile(token *domain.TokenInfo, profile *domain.User) *domain.User {
	user := &domain.User{
		ID:        profile.ID,
		UID:       token.UID,
		Email:     token.Email,
		Username:  profile.Username,
		Name:      profile.Name,
		Role:      profile.Role,
		Status:    profile.Status,
		CreatedAt: profile.CreatedAt,
	}
	if user.Name == "" {
		user.Name = token.Name
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	return user
}
