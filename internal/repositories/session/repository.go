// Package session holds in-progress wizard sessions in memory
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session Repository

import (
	"context"
	"time"
)

// DefaultTTL is how long an untouched session is kept
const DefaultTTL = 2 * time.Hour

// Repository stores sessions for the life of the process. Every successful
// Get pushes the session's expiry out by the TTL.
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the session doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteExpired sweeps every session past its expiry
	DeleteExpired(ctx context.Context) (*DeleteExpiredOutput, error)
}

// CreateInput defines the input for storing a session
type CreateInput struct {
	Session *Session
}

// CreateOutput defines the output for storing a session
type CreateOutput struct {
	ExpiresAt time.Time
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session   *Session
	ExpiresAt time.Time
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

// DeleteExpiredOutput defines the output of a sweep
type DeleteExpiredOutput struct {
	Deleted []string
}

const (
	errSessionNil = "session cannot be nil"
	errIDEmpty    = "session ID cannot be empty"
)
