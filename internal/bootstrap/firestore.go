package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// OpenFirestoreServiceAccount initializes the Firebase app with an explicit
// service-account credentials file and returns a Firestore client. This is
// the trusted-context constructor.
func OpenFirestoreServiceAccount(ctx context.Context, projectID, credentialsPath string) (*firestore.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}
	return openFirestore(ctx, projectID, option.WithCredentialsFile(credentialsPath))
}

// OpenFirestoreAmbient initializes the Firebase app with whatever
// credentials the runtime environment provides (application default
// credentials), the way the public-configuration variant of the original ran.
func OpenFirestoreAmbient(ctx context.Context, projectID string) (*firestore.Client, error) {
	return openFirestore(ctx, projectID)
}

func openFirestore(ctx context.Context, projectID string, opts ...option.ClientOption) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return client, nil
}
