// Package catalog loads the reference catalogs a wizard session selects from
package catalog

//go:generate mockgen -destination=mock/mock_loader.go -package=catalogloadermock github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/catalog Loader

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-character-wizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-character-wizard/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	catalogrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog"
)

// DefaultCacheKey is the cache entry shared by every session
const DefaultCacheKey = "dnd5e"

// Status values reported for a finished load
const (
	StatusReady = "ready"
	StatusError = "error"
)

// Target receives the result of a load. BeginLoad returns the generation
// for a new load; CompleteLoad stores a result and reports false when the
// generation is no longer current.
type Target interface {
	BeginLoad() uint64
	CompleteLoad(gen uint64, catalogs *dnd5e.Catalogs, err error) bool
}

// Loader fetches catalogs and hands them to sessions
type Loader interface {
	// Fetch returns the three catalogs, from the cache when fresh
	// Returns errors.Unavailable (retryable) when the reference data can't be loaded
	Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error)

	// Load runs one generation of a load for target. A result that arrives
	// after a newer load began is dropped and reported as Stale.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// FetchInput defines the input for fetching catalogs
type FetchInput struct {
	// Refresh skips the cache read; the result is still cached
	Refresh bool
}

// FetchOutput defines the output for fetching catalogs
type FetchOutput struct {
	Catalogs *dnd5e.Catalogs
	Cached   bool
}

// LoadInput defines the input for loading catalogs into a session
type LoadInput struct {
	SessionID  string
	Target     Target
	Generation uint64
	Refresh    bool
}

// LoadOutput defines the output of a load
type LoadOutput struct {
	Generation uint64
	Stale      bool
	Catalogs   *dnd5e.Catalogs
}

// Config holds the dependencies for the catalog loader
type Config struct {
	Client    external.Client
	Cache     catalogrepo.Repository
	Publisher *rpgtoolkit.Publisher
	// CacheKey defaults to DefaultCacheKey
	CacheKey string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.CacheKey == "" {
		c.CacheKey = DefaultCacheKey
	}
	return nil
}

type loader struct {
	client    external.Client
	cache     catalogrepo.Repository
	publisher *rpgtoolkit.Publisher
	cacheKey  string
}

// NewLoader creates a catalog loader
func NewLoader(cfg *Config) (Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &loader{
		client:    cfg.Client,
		cache:     cfg.Cache,
		publisher: cfg.Publisher,
		cacheKey:  cfg.CacheKey,
	}, nil
}

func (l *loader) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	if input == nil {
		input = &FetchInput{}
	}

	if !input.Refresh {
		cached, err := l.cache.Get(ctx, catalogrepo.GetInput{Key: l.cacheKey})
		switch {
		case err == nil:
			slog.Debug("Catalog cache hit", "key", l.cacheKey, "expires_at", cached.ExpiresAt)
			return &FetchOutput{Catalogs: cached.Catalogs, Cached: true}, nil
		case errors.IsNotFound(err):
		default:
			slog.Warn("Catalog cache read failed", "key", l.cacheKey, "error", err)
		}
	}

	catalogs, err := l.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := l.cache.Put(ctx, catalogrepo.PutInput{Key: l.cacheKey, Catalogs: catalogs}); err != nil {
		slog.Warn("Failed to cache catalogs", "key", l.cacheKey, "error", err)
	}

	slog.Info("Loaded catalogs",
		"races", len(catalogs.Races),
		"classes", len(catalogs.Classes),
		"backgrounds", len(catalogs.Backgrounds))

	return &FetchOutput{Catalogs: catalogs}, nil
}

func (l *loader) fetchAll(ctx context.Context) (*dnd5e.Catalogs, error) {
	catalogs := &dnd5e.Catalogs{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		races, err := l.client.ListAvailableRaces(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to list races")
		}
		catalogs.Races = races
		return nil
	})
	g.Go(func() error {
		classes, err := l.client.ListAvailableClasses(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to list classes")
		}
		catalogs.Classes = classes
		return nil
	})
	g.Go(func() error {
		backgrounds, err := l.client.ListAvailableBackgrounds(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to list backgrounds")
		}
		catalogs.Backgrounds = backgrounds
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, loadFailure(ctx, err)
	}
	return catalogs, nil
}

// loadFailure makes err retryable Unavailable unless the caller gave up
func loadFailure(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.WrapWithCode(ctx.Err(), errors.GetCode(ctx.Err()), "catalog load canceled")
	}
	if errors.GetCode(err) == errors.CodeUnavailable {
		return errors.Wrap(err, "failed to load catalogs")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load catalogs").AsRetryable()
}

func (l *loader) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Target == nil {
		return nil, errors.InvalidArgument("target is required")
	}

	gen := input.Generation
	if gen == 0 {
		gen = input.Target.BeginLoad()
	}

	fetched, fetchErr := l.Fetch(ctx, &FetchInput{Refresh: input.Refresh})

	var catalogs *dnd5e.Catalogs
	if fetchErr == nil {
		catalogs = fetched.Catalogs
	}

	if !input.Target.CompleteLoad(gen, catalogs, fetchErr) {
		slog.Info("Discarding stale catalog load",
			"session_id", input.SessionID,
			"generation", gen)
		return &LoadOutput{Generation: gen, Stale: true}, nil
	}

	load := rpgtoolkit.CatalogLoad{Generation: gen, Status: StatusReady, Err: fetchErr}
	if fetchErr != nil {
		load.Status = StatusError
	} else {
		load.Races = len(catalogs.Races)
		load.Classes = len(catalogs.Classes)
		load.Backgrounds = len(catalogs.Backgrounds)
	}
	_ = l.publisher.CatalogLoaded(ctx, input.SessionID, load)

	if fetchErr != nil {
		slog.Error("Catalog load failed",
			"session_id", input.SessionID,
			"generation", gen,
			"error", fetchErr)
		return nil, fetchErr
	}

	return &LoadOutput{Generation: gen, Catalogs: catalogs}, nil
}
