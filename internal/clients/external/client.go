// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-character-wizard/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	internalDnd5e "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

// ID prefixes for our internal constant format
const (
	prefixRace       = "RACE"
	prefixClass      = "CLASS"
	prefixBackground = "BACKGROUND"
)

// DefaultBaseURL is the public D&D 5e SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// defaultConcurrency bounds the detail fetches in flight per listing
const defaultConcurrency = 8

// Client defines the interface for reference data lookups
type Client interface {
	// ListAvailableRaces returns all available races with full details
	ListAvailableRaces(ctx context.Context) ([]*internalDnd5e.Race, error)

	// ListAvailableClasses returns all available classes with full details
	// and level one features
	ListAvailableClasses(ctx context.Context) ([]*internalDnd5e.Class, error)

	// ListAvailableBackgrounds returns the API's backgrounds merged with the
	// backgrounds the rule tables describe
	ListAvailableBackgrounds(ctx context.Context) ([]*internalDnd5e.Background, error)

	GetRaceData(ctx context.Context, raceID string) (*internalDnd5e.Race, error)
	GetClassData(ctx context.Context, classID string) (*internalDnd5e.Class, error)
	GetBackgroundData(ctx context.Context, backgroundID string) (*internalDnd5e.Background, error)
}

// referenceAPI is the part of dnd5e.Interface the wizard reads
type referenceAPI interface {
	ListRaces() ([]*entities.ReferenceItem, error)
	GetRace(key string) (*entities.Race, error)
	ListClasses() ([]*entities.ReferenceItem, error)
	GetClass(key string) (*entities.Class, error)
	GetClassLevel(key string, level int) (*entities.Level, error)
	ListBackgrounds() ([]*entities.ReferenceItem, error)
}

type client struct {
	dnd5eClient referenceAPI
	rules       *rules.Registry
}

// toAPIFormat converts our internal constant format to API format
// e.g., "RACE_HALF_ELF" -> "half-elf"
func toAPIFormat(id string) string {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) == 2 {
		return strings.ToLower(strings.ReplaceAll(parts[1], "_", "-"))
	}
	return strings.ToLower(strings.ReplaceAll(id, "_", "-"))
}

// fromAPIFormat converts API format to our internal constant format
// e.g., "half-elf" -> "RACE_HALF_ELF"
func fromAPIFormat(apiID string, prefix string) string {
	upperID := strings.ToUpper(strings.ReplaceAll(apiID, "-", "_"))
	if prefix != "" {
		return prefix + "_" + upperID
	}
	return upperID
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the library's response cache (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Rules enriches fetched records with selector metadata (optional,
	// defaults to rules.Default())
	Rules *rules.Registry
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Rules == nil {
		cfg.Rules = rules.Default()
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must be positive")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must be positive")
	}
	return vb.Build()
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
		rules:       cfg.Rules,
	}, nil
}

// unavailable marks an upstream failure as retryable
func unavailable(err error, format string, args ...interface{}) error {
	return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf(format, args...)).AsRetryable()
}

func (c *client) GetRaceData(ctx context.Context, raceID string) (*internalDnd5e.Race, error) {
	if raceID == "" {
		return nil, errors.InvalidArgument("race ID is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	apiID := toAPIFormat(raceID)
	race, err := c.dnd5eClient.GetRace(apiID)
	if err != nil {
		return nil, unavailable(err, "failed to get race %s (api: %s)", raceID, apiID)
	}
	if race == nil {
		return nil, errors.NotFoundf("race %s not found", raceID)
	}

	out := convertRace(race)
	out.ID = raceID
	return out, nil
}

func (c *client) GetClassData(ctx context.Context, classID string) (*internalDnd5e.Class, error) {
	if classID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.loadClass(toAPIFormat(classID))
}

func (c *client) GetBackgroundData(ctx context.Context, backgroundID string) (*internalDnd5e.Background, error) {
	if backgroundID == "" {
		return nil, errors.InvalidArgument("background ID is required")
	}

	backgrounds, err := c.ListAvailableBackgrounds(ctx)
	if err != nil {
		return nil, err
	}
	for _, bg := range backgrounds {
		if bg.ID == backgroundID {
			return bg, nil
		}
	}
	return nil, errors.NotFoundf("background %s not found", backgroundID)
}

func (c *client) ListAvailableRaces(ctx context.Context) ([]*internalDnd5e.Race, error) {
	slog.Info("Calling D&D 5e API to list races")
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, unavailable(err, "failed to list races from D&D 5e API")
	}
	slog.Info("Got race references", "count", len(refs))

	races := make([]*internalDnd5e.Race, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for i, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			race, err := c.dnd5eClient.GetRace(ref.Key)
			if err != nil {
				slog.Error("Failed to get race details", "race", ref.Key, "error", err)
				return unavailable(err, "failed to get race %s", ref.Key)
			}
			if race == nil {
				return nil
			}

			out := convertRace(race)
			out.ID = fromAPIFormat(ref.Key, prefixRace)
			races[i] = out
			slog.Debug("Loaded race details", "race", ref.Name, "id", out.ID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compact(races), nil
}

func (c *client) ListAvailableClasses(ctx context.Context) ([]*internalDnd5e.Class, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, unavailable(err, "failed to list classes from D&D 5e API")
	}
	slog.Info("Got class references", "count", len(refs))

	classes := make([]*internalDnd5e.Class, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for i, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			class, err := c.loadClass(ref.Key)
			if err != nil {
				slog.Error("Failed to get class details", "class", ref.Key, "error", err)
				return err
			}
			classes[i] = class
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compact(classes), nil
}

// loadClass fetches a class and its level one data. A missing level one
// record leaves the class without features rather than failing the load.
func (c *client) loadClass(key string) (*internalDnd5e.Class, error) {
	class, err := c.dnd5eClient.GetClass(key)
	if err != nil {
		return nil, unavailable(err, "failed to get class %s", key)
	}
	if class == nil {
		return nil, errors.NotFoundf("class %s not found", key)
	}

	level1, err := c.dnd5eClient.GetClassLevel(key, 1)
	if err != nil {
		slog.Warn("Failed to get class level 1", "class", key, "error", err)
		level1 = nil
	}

	out := convertClass(class, level1)
	out.ID = fromAPIFormat(key, prefixClass)
	c.enrichClass(out)
	return out, nil
}

func (c *client) ListAvailableBackgrounds(ctx context.Context) ([]*internalDnd5e.Background, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refs, err := c.dnd5eClient.ListBackgrounds()
	if err != nil {
		return nil, unavailable(err, "failed to list backgrounds from D&D 5e API")
	}
	slog.Info("Got background references", "count", len(refs))

	return mergeBackgrounds(refs, c.rules), nil
}

func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}
