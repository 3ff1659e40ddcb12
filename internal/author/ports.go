package author

import (
	"context"
)

// Repository defines the contract for author data storage. Every mutation
// reports whether at least one row was affected.
type Repository interface {
	GetByID(ctx context.Context, id string) (Author, error)
	// GetByFullName matches case-insensitively on the normalized full name.
	GetByFullName(ctx context.Context, fullName string) ([]Author, error)
	// List returns rows in insertion order.
	List(ctx context.Context, limit, offset int) ([]Author, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, a *Author) (bool, error)
	Update(ctx context.Context, a *Author) (bool, error)
	Delete(ctx context.Context, a *Author) (bool, error)
}
