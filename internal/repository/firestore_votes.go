package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"voting-server/internal/domain"
)

var _ VoteRepository = (*firestoreVoteRepository)(nil)

type firestoreVoteRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewFirestoreVoteRepository creates a VoteRepository over the votes collection.
func NewFirestoreVoteRepository(client *firestore.Client, logger *zap.Logger) VoteRepository {
	return &firestoreVoteRepository{
		client: client,
		logger: logger.Named("FirestoreVoteRepo"),
	}
}

func (r *firestoreVoteRepository) col() *firestore.CollectionRef {
	return r.client.Collection(votesCollection)
}

func (r *firestoreVoteRepository) Add(ctx context.Context, vote *domain.Vote) (string, error) {
	ref, _, err := r.col().Add(ctx, vote)
	if err != nil {
		return "", fmt.Errorf("failed to add vote: %w", err)
	}
	return ref.ID, nil
}

// FindByVotingAndUser returns the first vote for the (voting, user) pair. The
// store holds no uniqueness constraint, so duplicates are possible; only the
// first match is reported.
func (r *firestoreVoteRepository) FindByVotingAndUser(ctx context.Context, votingID, userID string) (*domain.Vote, error) {
	iter := r.col().
		Where("voting_id", "==", votingID).
		Where("user_id", "==", userID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote for voting %s: %w", votingID, err)
	}
	return voteFromSnapshot(snap)
}

func (r *firestoreVoteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete vote %s: %w", id, err)
	}
	return nil
}

func (r *firestoreVoteRepository) ListByVoting(ctx context.Context, votingID string) ([]domain.Vote, error) {
	return r.collect(r.col().Where("voting_id", "==", votingID).Documents(ctx))
}

func (r *firestoreVoteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Vote, error) {
	return r.collect(r.col().Where("user_id", "==", userID).Documents(ctx))
}

func (r *firestoreVoteRepository) ListAll(ctx context.Context) ([]domain.Vote, error) {
	return r.collect(r.col().Documents(ctx))
}

func (r *firestoreVoteRepository) collect(iter *firestore.DocumentIterator) ([]domain.Vote, error) {
	defer iter.Stop()

	var votes []domain.Vote
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list votes: %w", err)
		}
		vote, err := voteFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		votes = append(votes, *vote)
	}
	return votes, nil
}

func voteFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.Vote, error) {
	var vote domain.Vote
	if err := snap.DataTo(&vote); err != nil {
		return nil, fmt.Errorf("failed to decode vote document %s: %w", snap.Ref.ID, err)
	}
	vote.ID = snap.Ref.ID
	return &vote, nil
}
