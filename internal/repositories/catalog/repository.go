// Package catalog provides the time-boxed cache for reference catalogs
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// DefaultTTL is how long a loaded catalog set stays fresh
const DefaultTTL = 24 * time.Hour

// Repository caches catalog sets under a key for a fixed TTL. Entries are
// memory-resident and never written to disk by this package.
type Repository interface {
	// Get retrieves a cached catalog set
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound when nothing is cached or the entry expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a catalog set, replacing any existing entry and restarting
	// its TTL
	// Returns errors.InvalidArgument for an empty key or nil catalogs
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete drops a cached entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for reading a catalog set
type GetInput struct {
	Key string
}

// GetOutput defines the output for reading a catalog set
type GetOutput struct {
	Catalogs  *dnd5e.Catalogs
	StoredAt  time.Time
	ExpiresAt time.Time
}

// PutInput defines the input for caching a catalog set
type PutInput struct {
	Key      string
	Catalogs *dnd5e.Catalogs
}

// PutOutput defines the output for caching a catalog set
type PutOutput struct {
	ExpiresAt time.Time
}

// DeleteInput defines the input for dropping a catalog set
type DeleteInput struct {
	Key string
}

// DeleteOutput defines the output for dropping a catalog set
type DeleteOutput struct{}

const (
	errKeyEmpty      = "catalog key cannot be empty"
	errCatalogsEmpty = "catalogs cannot be nil"
)
