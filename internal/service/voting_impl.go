package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voting-server/internal/domain"
	"voting-server/internal/repository"
)

var _ VotingService = (*votingServiceImpl)(nil)

type votingServiceImpl struct {
	votingRepo repository.VotingRepository
	logger     *zap.Logger
}

// NewVotingService creates a new instance of votingServiceImpl.
func NewVotingService(votingRepo repository.VotingRepository, logger *zap.Logger) VotingService {
	return &votingServiceImpl{
		votingRepo: votingRepo,
		logger:     logger.Named("VotingService"),
	}
}

func (s *votingServiceImpl) Create(ctx context.Context, p domain.Principal, in VotingInput) (*domain.Voting, error) {
	voting := &domain.Voting{
		AuthorID:    p.UID,
		Title:       in.Title,
		Description: in.Description,
		Tag:         in.Tag,
		Status:      domain.VotingStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.votingRepo.Add(ctx, voting)
	if err != nil {
		return nil, err
	}
	voting.ID = id

	s.logger.Info("Voting created", zap.String("id", id), zap.String("author_id", p.UID))
	return voting, nil
}

func (s *votingServiceImpl) ListPublic(ctx context.Context) ([]domain.Voting, error) {
	return s.votingRepo.ListActive(ctx)
}

func (s *votingServiceImpl) ListAll(ctx context.Context, p domain.Principal) ([]domain.Voting, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.votingRepo.ListAll(ctx)
}

func (s *votingServiceImpl) ListByAuthor(ctx context.Context, authorID string) ([]domain.Voting, error) {
	return s.votingRepo.ListByAuthor(ctx, authorID)
}

func (s *votingServiceImpl) GetByID(ctx context.Context, id string) (*domain.Voting, error) {
	return s.votingRepo.GetByID(ctx, id)
}

func (s *votingServiceImpl) Delete(ctx context.Context, p domain.Principal, id string) error {
	voting, err := s.votingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voting.AuthorID != p.UID && !p.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.votingRepo.SetStatus(ctx, id, domain.VotingStatusDeleted); err != nil {
		return err
	}
	s.logger.Info("Voting deleted", zap.String("id", id), zap.String("by", p.UID))
	return nil
}

func (s *votingServiceImpl) Close(ctx context.Context, p domain.Principal, id, resultText string) error {
	voting, err := s.votingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Author only: an admin cannot close someone else's voting.
	if voting.AuthorID != p.UID {
		return domain.ErrForbidden
	}

	if err := s.votingRepo.Close(ctx, id, resultText); err != nil {
		return err
	}
	s.logger.Info("Voting closed", zap.String("id", id))
	return nil
}
