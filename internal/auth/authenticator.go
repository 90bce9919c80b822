// Package auth handles user registration, credential checks and session tokens.
package auth

import (
	"context"

	"github.com/mmynk/tripledger/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Trip owners sign in through it; trip participants never do.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// Lookup returns the user with the given ID.
	Lookup(ctx context.Context, userID string) (*models.User, error)
}
