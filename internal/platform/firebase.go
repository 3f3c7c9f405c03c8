package platform

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseClients bundles the Admin SDK clients constructed once at startup
// and passed explicitly into repositories. No package-level singletons.
type FirebaseClients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// NewFirebaseClients initializes the Firebase app from a service-account key
// file and returns the Auth and Firestore clients.
func NewFirebaseClients(ctx context.Context, credentialsPath, projectID string) (*FirebaseClients, error) {
	var fbCfg *firebase.Config
	if projectID != "" {
		fbCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase App from '%s': %w", credentialsPath, err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &FirebaseClients{Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore client connection.
func (c *FirebaseClients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
