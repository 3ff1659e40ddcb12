package author

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// ErrDuplicate is returned when an insert or update hits the unique
// full-name index.
var ErrDuplicate = errors.New("author full name already registered")

// Author represents an author entity. The ID is server-generated at
// registration and immutable afterwards.
type Author struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Biography   string    `json:"biography,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RegisterRequest is the payload for registering an author.
type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required,max=100"`
	Biography   string `json:"biography" validate:"omitempty,max=500"`
	Nationality string `json:"nationality" validate:"omitempty,max=50"`
}

// UpdateRequest is the payload for updating an author. Nil fields are left
// unchanged; the ID is never touched.
type UpdateRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,max=100"`
	Biography   *string `json:"biography" validate:"omitempty,max=500"`
	Nationality *string `json:"nationality" validate:"omitempty,max=50"`
}

// NormalizeFullName collapses inner whitespace and trims the edges, so that
// "Jack  London " and "Jack London" dedup to the same key.
func NormalizeFullName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
