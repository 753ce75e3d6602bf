package inventory

import "context"

type MaterialRepository interface {
	// Create persists a new material.
	Create(ctx context.Context, material Material) (Material, error)

	// GetByID retrieves a material by ID.
	GetByID(ctx context.Context, id string) (Material, error)

	// List returns every material, name order.
	List(ctx context.Context) ([]Material, error)

	// Update applies non-nil fields and returns the updated material.
	Update(ctx context.Context, id string, name *string, unit *string, minStock *float64) (Material, error)

	// RegisterMovement records a movement and adjusts the material's stock
	// atomically. Returns ErrInsufficientStock when an out movement would
	// drive stock negative.
	RegisterMovement(ctx context.Context, movement Movement) (Movement, error)

	// ListMovements returns movements for a material, newest first.
	ListMovements(ctx context.Context, materialID string) ([]Movement, error)
}
