package book

import (
	"context"
)

// Repository defines the contract for book data storage. Every mutation
// reports whether at least one row was affected.
type Repository interface {
	GetByID(ctx context.Context, id string) (Book, error)
	// GetByISBN looks up the natural key used for duplicate detection.
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	// List returns rows in insertion order.
	List(ctx context.Context, limit, offset int) ([]Book, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, b *Book) (bool, error)
	Update(ctx context.Context, b *Book) (bool, error)
	Delete(ctx context.Context, b *Book) (bool, error)
}

// AuthorDirectory answers whether an author id names an existing author.
// Implemented by the author repository; keeps this package decoupled from it.
type AuthorDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
