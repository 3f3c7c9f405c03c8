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

var _ UserRepository = (*firestoreUserRepository)(nil)

type firestoreUserRepository struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewFirestoreUserRepository creates a UserRepository over the users collection.
func NewFirestoreUserRepository(client *firestore.Client, logger *zap.Logger) UserRepository {
	return &firestoreUserRepository{
		client: client,
		logger: logger.Named("FirestoreUserRepo"),
	}
}

func (r *firestoreUserRepository) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return userFromSnapshot(snap)
}

func (r *firestoreUserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.firstMatch(ctx, "uid", uid)
}

func (r *firestoreUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.firstMatch(ctx, "username", username)
}

// firstMatch runs a single-field equality query and returns the first
// matching profile.
func (r *firestoreUserRepository) firstMatch(ctx context.Context, field, value string) (*domain.User, error) {
	iter := r.col().Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query users by %s: %w", field, err)
	}
	return userFromSnapshot(snap)
}

func (r *firestoreUserRepository) CreateWithID(ctx context.Context, id string, user *domain.User) error {
	if _, err := r.col().Doc(id).Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user profile %s: %w", id, err)
	}
	r.logger.Debug("User profile created", zap.String("id", id))
	return nil
}

func (r *firestoreUserRepository) Add(ctx context.Context, user *domain.User) (string, error) {
	ref, _, err := r.col().Add(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to add user profile: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]domain.User, error) {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	var users []domain.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		user, err := userFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := r.col().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return nil
}

func (r *firestoreUserRepository) SetStatus(ctx context.Context, id, userStatus string) error {
	return r.Update(ctx, id, map[string]interface{}{"status": userStatus})
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

func userFromSnapshot(snap *firestore.DocumentSnapshot) (*domain.User, error) {
	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user document %s: %w", snap.Ref.ID, err)
	}
	user.ID = snap.Ref.ID
	return &user, nil
}
