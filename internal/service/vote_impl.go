package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"voting-server/internal/domain"
	"voting-server/internal/repository"
)

var _ VoteService = (*voteServiceImpl)(nil)

type voteServiceImpl struct {
	voteRepo   repository.VoteRepository
	votingRepo repository.VotingRepository
	logger     *zap.Logger
}

// NewVoteService creates a new instance of voteServiceImpl.
func NewVoteService(voteRepo repository.VoteRepository, votingRepo repository.VotingRepository, logger *zap.Logger) VoteService {
	return &voteServiceImpl{
		voteRepo:   voteRepo,
		votingRepo: votingRepo,
		logger:     logger.Named("VoteService"),
	}
}

func (s *voteServiceImpl) Toggle(ctx context.Context, p domain.Principal, votingID string) (*ToggleResult, error) {
	voting, err := s.votingRepo.GetByID(ctx, votingID)
	if err != nil {
		if errors.Is(err, domain.ErrVotingNotFound) {
			return nil, domain.ErrVotingNotActive
		}
		return nil, err
	}
	if voting.Status != domain.VotingStatusActive {
		return nil, domain.ErrVotingNotActive
	}

	// Read-then-write with no transactional guard; concurrent toggles by the
	// same user can race.
	existing, err := s.voteRepo.FindByVotingAndUser(ctx, votingID, p.UID)
	if err == nil {
		if err := s.voteRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		s.logger.Info("Vote cancelled", zap.String("voting_id", votingID), zap.String("user_id", p.UID))
		return &ToggleResult{Cancelled: true}, nil
	}
	if !errors.Is(err, domain.ErrVoteNotFound) {
		return nil, err
	}

	vote := &domain.Vote{
		VotingID: votingID,
		UserID:   p.UID,
		VotedAt:  time.Now().UTC(),
	}
	id, err := s.voteRepo.Add(ctx, vote)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Vote recorded", zap.String("voting_id", votingID), zap.String("user_id", p.UID))
	return &ToggleResult{VoteID: id}, nil
}

func (s *voteServiceImpl) ListByVoting(ctx context.Context, votingID string) ([]domain.Vote, error) {
	return s.voteRepo.ListByVoting(ctx, votingID)
}

func (s *voteServiceImpl) ListByUser(ctx context.Context, userID string) ([]domain.Vote, error) {
	return s.voteRepo.ListByUser(ctx, userID)
}

func (s *voteServiceImpl) ListAll(ctx context.Context, p domain.Principal) ([]domain.Vote, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.voteRepo.ListAll(ctx)
}
