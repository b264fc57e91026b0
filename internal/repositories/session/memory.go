package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock"
)

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

// Config contains configuration for the session store
type Config struct {
	// TTL defaults to DefaultTTL
	TTL time.Duration
	// Clock defaults to wall time
	Clock clock.Clock
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
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

// NewMemory creates an in-memory session store
func NewMemory(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &memoryRepository{
		entries: make(map[string]*memoryEntry),
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
	}, nil
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if existing, ok := r.entries[input.Session.ID]; ok && now.Before(existing.expiresAt) {
		return nil, errors.Newf(errors.CodeAlreadyExists, "session %s already exists", input.Session.ID)
	}

	entry := &memoryEntry{
		session:   input.Session,
		expiresAt: now.Add(r.ttl),
	}
	r.entries[input.Session.ID] = entry

	return &CreateOutput{ExpiresAt: entry.expiresAt}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[input.ID]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	now := r.clock.Now()
	if !now.Before(entry.expiresAt) {
		delete(r.entries, input.ID)
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	entry.expiresAt = now.Add(r.ttl)

	return &GetOutput{
		Session:   entry.session,
		ExpiresAt: entry.expiresAt,
	}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[input.ID]; !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}
	delete(r.entries, input.ID)

	return &DeleteOutput{}, nil
}

func (r *memoryRepository) DeleteExpired(_ context.Context) (*DeleteExpiredOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	deleted := []string{}
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
			deleted = append(deleted, id)
		}
	}
	sort.Strings(deleted)

	return &DeleteExpiredOutput{Deleted: deleted}, nil
}
