package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock"
)

type memoryEntry struct {
	catalogs  *dnd5e.Catalogs
	storedAt  time.Time
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

// MemoryConfig contains configuration for the in-memory catalog cache.
type MemoryConfig struct {
	// TTL defaults to DefaultTTL
	TTL time.Duration
	// Clock defaults to wall time
	Clock clock.Clock
}

// Validate validates the MemoryConfig and sets defaults.
func (cfg *MemoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// NewMemory creates an in-memory catalog cache
func NewMemory(cfg *MemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
	}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	entry, ok := r.entries[input.Key]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("catalogs %s not cached", input.Key)
	}
	if !r.clock.Now().Before(entry.expiresAt) {
		r.mu.Lock()
		if current, still := r.entries[input.Key]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(r.entries, input.Key)
		}
		r.mu.Unlock()
		return nil, errors.NotFoundf("catalogs %s expired", input.Key)
	}

	return &GetOutput{
		Catalogs:  entry.catalogs,
		StoredAt:  entry.storedAt,
		ExpiresAt: entry.expiresAt,
	}, nil
}

func (r *memoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Catalogs == nil {
		return nil, errors.InvalidArgument(errCatalogsEmpty)
	}

	now := r.clock.Now()
	entry := memoryEntry{
		catalogs:  input.Catalogs,
		storedAt:  now,
		expiresAt: now.Add(r.ttl),
	}

	r.mu.Lock()
	r.entries[input.Key] = entry
	r.mu.Unlock()

	return &PutOutput{ExpiresAt: entry.expiresAt}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	delete(r.entries, input.Key)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}
