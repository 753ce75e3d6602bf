package user

import "context"

type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// List returns every user, name order.
	List(ctx context.Context) ([]User, error)

	// LinkGoogleAccount attaches a Google identity to an existing user.
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
