package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"voting-server/internal/domain"
	"voting-server/internal/repository"
)

var _ UserService = (*userServiceImpl)(nil)

type userServiceImpl struct {
	userRepo repository.UserRepository
	banRepo  repository.BanRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of userServiceImpl.
func NewUserService(userRepo repository.UserRepository, banRepo repository.BanRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		banRepo:  banRepo,
		logger:   logger.Named("UserService"),
	}
}

func (s *userServiceImpl) GetCurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, p.UID)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.userRepo.GetByUID(ctx, p.UID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	user.CreatedAt = time.Now().UTC()
	return s.userRepo.Add(ctx, user)
}

func (s *userServiceImpl) GetUsers(ctx context.Context, p domain.Principal) ([]domain.User, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, p domain.Principal, id string, update UserUpdate) error {
	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.UID != p.UID && !p.IsAdmin() {
		return domain.ErrForbidden
	}

	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}

	return s.userRepo.Update(ctx, id, fields)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, p domain.Principal, id string) error {
	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.UID != p.UID && !p.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userServiceImpl) BanUser(ctx context.Context, p domain.Principal, in BanInput) error {
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}

	// Lookup by uid equality query, first match only.
	target, err := s.userRepo.GetByUID(ctx, in.UserID)
	if err != nil {
		return err
	}

	ban := &domain.UserBan{
		UserID:   in.UserID,
		Reason:   in.Reason,
		BannedAt: time.Now().UTC(),
		BannedTo: in.BannedTo,
	}
	if _, err := s.banRepo.Add(ctx, ban); err != nil {
		return err
	}

	if err := s.userRepo.SetStatus(ctx, target.ID, domain.UserStatusBanned); err != nil {
		return err
	}

	s.logger.Info("User banned",
		zap.String("user_id", in.UserID),
		zap.String("by", p.UID),
		zap.String("reason", in.Reason),
	)
	return nil
}
