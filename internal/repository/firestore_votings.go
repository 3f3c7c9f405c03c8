package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"voting-server/internal/domain"
)

var _ VotingRepository = (*firestoreVotingRepository)(nil)

type firestoreVotingRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewFirestoreVotingRepository creates a VotingRepository over the votings
// collection.
func NewFirestoreVotingRepository(client *firestore.Client, logger *zap.Logger) VotingRepository {
	return &firestoreVotingRepository{
		client: client,
		logger: logger.Named("FirestoreVotingRepo"),
	}
}

func (r *firestoreVotingRepository) col() *firestore.CollectionRef {
	return r.client.Collection(votingsCollection)
}

func (r *firestoreVotingRepository) Add(ctx context.Context, voting *domain.Voting) (string, error) {
	ref, _, err := r.col().Add(ctx, voting)
	if err != nil {
		return "", fmt.Errorf("failed to add voting: %w", err)
	}
	r.logger.Debug("Voting created", zap.String("id", ref.ID), zap.String("author_id", voting.AuthorID))
	return ref.ID, nil
}

func (r *firestoreVotingRepository) GetByID(ctx context.Context, id string) (*domain.Voting, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrVotingNotFound
		}
		return nil, fmt.Errorf("failed to get voting %s: %w", id, err)
	}
	return votingFromSnapshot(snap)
}

func (r *firestoreVotingRepository) ListActive(ctx context.Context) ([]domain.Voting, error) {
	// Requires the composite index on (status, created_at desc).
	query := r.col().
		Where("status", "==", domain.VotingStatusActive).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreVotingRepository) ListAll(ctx context.Context) ([]domain.Voting, error) {
	return r.collect(ctx, r.col().Documents(ctx))
}

func (r *firestoreVotingRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Voting, error) {
	return r.collect(ctx, r.col().Where("author_id", "==", authorID).Documents(ctx))
}

func (r *firestoreVotingRepository) SetStatus(ctx context.Context, id, votingStatus string) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: votingStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrVotingNotFound
		}
		return fmt.Errorf("failed to update voting %s status: %w", id, err)
	}
	return nil
}

func (r *firestoreVotingRepository) Close(ctx context.Context, id, resultText string) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.VotingStatusClosed},
		{Path: "result_text", Value: resultText},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrVotingNotFound
		}
		return fmt.Errorf("failed to close voting %s: %w", id, err)
	}
	return nil
}

func (r *firestoreVotingRepository) collect(_ context.Context, iter *firestore.DocumentIterator) ([]domain.Voting, error) {
	defer iter.Stop()

	var votings []domain.Voting
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list votings: %w", err)
		}
		voting, err := votingFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		votings = append(votings, *voting)
	}
	return votings, nil
}

func votingFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.Voting, error) {
	var voting domain.Voting
	if err := snap.DataTo(&voting); err != nil {
		return nil, fmt.Errorf("failed to decode voting document %s: %w", snap.Ref.ID, err)
	}
	voting.ID = snap.Ref.ID
	return &voting, nil
}
