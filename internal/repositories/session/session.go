package session

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

// CatalogStatus is where a session's reference data load stands
type CatalogStatus string

// Catalog load states
const (
	CatalogStatusLoading CatalogStatus = "loading"
	CatalogStatusReady   CatalogStatus = "ready"
	CatalogStatusError   CatalogStatus = "error"
)

// CatalogState is a point-in-time copy of a session's catalog load
type CatalogState struct {
	Status     CatalogStatus
	Generation uint64
	Catalogs   *dnd5e.Catalogs
	Err        error
}

// Session is one in-progress wizard. The controller owns the draft; the
// session owns the catalogs the wizard selects from.
type Session struct {
	ID         string
	Controller *wizard.Controller
	CreatedAt  time.Time

	mu         sync.Mutex
	generation uint64
	status     CatalogStatus
	catalogs   *dnd5e.Catalogs
	loadErr    error
}

// New creates a session whose catalogs are not loaded yet
func New(id string, controller *wizard.Controller, createdAt time.Time) *Session {
	return &Session{
		ID:         id,
		Controller: controller,
		CreatedAt:  createdAt,
		status:     CatalogStatusLoading,
	}
}

// BeginLoad marks a new catalog load as the current one and returns its
// generation. Results from any earlier load are discarded from here on.
func (s *Session) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.status = CatalogStatusLoading
	return s.generation
}

// CompleteLoad records the outcome of load gen. It returns false, storing
// nothing, when a newer load has begun since. A failed load keeps the last
// good catalogs so selectors stay usable while the client retries.
func (s *Session) CompleteLoad(gen uint64, catalogs *dnd5e.Catalogs, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	if err != nil {
		s.status = CatalogStatusError
		s.loadErr = err
		return true
	}

	s.status = CatalogStatusReady
	s.catalogs = catalogs
	s.loadErr = nil
	return true
}

// Catalogs returns the current catalog state
func (s *Session) Catalogs() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CatalogState{
		Status:     s.status,
		Generation: s.generation,
		Catalogs:   s.catalogs,
		Err:        s.loadErr,
	}
}
