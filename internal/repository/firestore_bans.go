package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"voting-server/internal/domain"
)

var _ BanRepository = (*firestoreBanRepository)(nil)

// firestoreBanRepository appends ban records to the user_bans collection.
// Records are never updated or removed; the gating flag lives on the user
// profile.
type firestoreBanRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewFirestoreBanRepository creates a BanRepository over the user_bans
// collection.
func NewFirestoreBanRepository(client *firestore.Client, logger *zap.Logger) BanRepository {
	return &firestoreBanRepository{
		client: client,
		logger: logger.Named("FirestoreBanRepo"),
	}
}

func (r *firestoreBanRepository) Add(ctx context.Context, ban *domain.UserBan) (string, error) {
	ref, _, err := r.client.Collection(userBansCollection).Add(ctx, ban)
	if err != nil {
		return "", fmt.Errorf("failed to add ban record for user %s: %w", ban.UserID, err)
	}
	r.logger.Info("Ban record added", zap.String("id", ref.ID), zap.String("user_id", ban.UserID))
	return ref.ID, nil
}
