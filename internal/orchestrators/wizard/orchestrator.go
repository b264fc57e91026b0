// Package wizard implements the wizard service on top of the step
// controller, the catalog loader and the rule tables
package wizard

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/catalog"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
	wizardcore "github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

// DefaultLoadTimeout bounds a background catalog load
const DefaultLoadTimeout = 30 * time.Second

// MaxNameLength is the longest character name accepted, in runes
const MaxNameLength = 64

// Config holds the dependencies for the wizard orchestrator
type Config struct {
	SessionRepo sessionrepo.Repository
	Loader      catalog.Loader
	DiceService dice.Service
	IDGenerator idgen.Generator
	// Rules defaults to the built-in tables
	Rules *rules.Registry
	// Publisher is optional; without one no events are published
	Publisher *rpgtoolkit.Publisher
	// Clock defaults to wall time
	Clock clock.Clock
	// LoadTimeout defaults to DefaultLoadTimeout
	LoadTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.LoadTimeout < 0 {
		vb.InvalidField("LoadTimeout", "cannot be negative")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Rules == nil {
		c.Rules = rules.Default()
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.LoadTimeout == 0 {
		c.LoadTimeout = DefaultLoadTimeout
	}
	return nil
}

// Orchestrator implements the wizard.Service interface
type Orchestrator struct {
	sessionRepo sessionrepo.Repository
	loader      catalog.Loader
	diceService dice.Service
	idGen       idgen.Generator
	rules       *rules.Registry
	publisher   *rpgtoolkit.Publisher
	clock       clock.Clock
	loadTimeout time.Duration
}

// New creates a new wizard orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		sessionRepo: cfg.SessionRepo,
		loader:      cfg.Loader,
		diceService: cfg.DiceService,
		idGen:       cfg.IDGenerator,
		rules:       cfg.Rules,
		publisher:   cfg.Publisher,
		clock:       cfg.Clock,
		loadTimeout: cfg.LoadTimeout,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ wizard.Service = (*Orchestrator)(nil)

// Session lifecycle methods

// CreateSession starts a wizard on an empty draft and kicks off its
// catalog load in the background
func (o *Orchestrator) CreateSession(ctx context.Context, input *wizard.CreateSessionInput) (*wizard.CreateSessionOutput, error) {
	if input == nil {
		input = &wizard.CreateSessionInput{}
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	id := o.idGen.Generate()
	draft := &dnd5e.CharacterDraft{
		ID:    id,
		Name:  input.Name,
		Level: dnd5e.MinLevel,
	}
	controller := wizardcore.NewController(draft, o.clock)
	sess := sessionrepo.New(id, controller, o.clock.Now())

	created, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{Session: sess})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	o.watch(sess)
	gen := sess.BeginLoad()
	go o.load(sess, gen, false)

	slog.Info("Created wizard session", "session_id", id)

	return &wizard.CreateSessionOutput{
		Session: o.view(sess, controller.Snapshot(), created.ExpiresAt),
	}, nil
}

// GetSession returns the current state of a session
func (o *Orchestrator) GetSession(ctx context.Context, input *wizard.GetSessionInput) (*wizard.GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &wizard.GetSessionOutput{
		Session: o.view(sess, sess.Controller.Snapshot(), expiresAt),
	}, nil
}

// DeleteSession discards a session and its draft
func (o *Orchestrator) DeleteSession(ctx context.Context, input *wizard.DeleteSessionInput) (*wizard.DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", input.SessionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session %s", input.SessionID)
	}

	slog.Info("Deleted wizard session", "session_id", input.SessionID)
	return &wizard.DeleteSessionOutput{}, nil
}

// SweepSessions drops sessions nobody has touched within the TTL
func (o *Orchestrator) SweepSessions(ctx context.Context) (*wizard.SweepSessionsOutput, error) {
	out, err := o.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sweep sessions")
	}
	if len(out.Deleted) > 0 {
		slog.Info("Expired wizard sessions", "count", len(out.Deleted))
	}
	return &wizard.SweepSessionsOutput{Deleted: out.Deleted}, nil
}

// ReloadCatalogs refetches the reference data for a session, bypassing the
// cache, and waits for the result
func (o *Orchestrator) ReloadCatalogs(ctx context.Context, input *wizard.ReloadCatalogsInput) (*wizard.ReloadCatalogsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	out, err := o.loader.Load(ctx, &catalog.LoadInput{
		SessionID: sess.ID,
		Target:    sess,
		Refresh:   true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload catalogs")
	}
	if out.Stale {
		slog.Debug("Reload superseded by a newer load", "session_id", sess.ID, "generation", out.Generation)
	}

	return &wizard.ReloadCatalogsOutput{
		Session: o.view(sess, sess.Controller.Snapshot(), expiresAt),
	}, nil
}

// watch wires the session's controller notifications onto the event bus
func (o *Orchestrator) watch(sess *sessionrepo.Session) {
	if !o.publisher.Enabled() {
		return
	}

	id := sess.ID
	sess.Controller.OnChange(func(draft *dnd5e.CharacterDraft) {
		_ = o.publisher.DraftChanged(context.Background(), id, draft)
	})
	sess.Controller.OnValidation(func(valid bool, errs []string) {
		_ = o.publisher.ValidationChanged(context.Background(), id, valid, errs)
	})
}

func (o *Orchestrator) load(sess *sessionrepo.Session, gen uint64, refresh bool) {
	ctx, cancel := context.WithTimeout(context.Background(), o.loadTimeout)
	defer cancel()

	// Failures are recorded on the session; the client retries via reload
	_, _ = o.loader.Load(ctx, &catalog.LoadInput{
		SessionID:  sess.ID,
		Target:     sess,
		Generation: gen,
		Refresh:    refresh,
	})
}

func (o *Orchestrator) getSession(ctx context.Context, id string) (*sessionrepo.Session, time.Time, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", id, vb)
	if err := vb.Build(); err != nil {
		return nil, time.Time{}, err
	}

	out, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: id})
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(err, "failed to get session %s", id)
	}
	return out.Session, out.ExpiresAt, nil
}

func (o *Orchestrator) view(sess *sessionrepo.Session, snap wizardcore.Snapshot, expiresAt time.Time) *wizard.SessionView {
	return &wizard.SessionView{
		ID:            sess.ID,
		Snapshot:      snap,
		CatalogStatus: catalogStatus(sess.Catalogs()),
		ExpiresAt:     expiresAt,
	}
}

func catalogStatus(state sessionrepo.CatalogState) wizard.CatalogStatus {
	status := wizard.CatalogStatus{
		Status:     string(state.Status),
		Generation: state.Generation,
	}
	if state.Err != nil {
		status.Error = errors.GetMessage(state.Err)
		status.Retryable = errors.IsRetryable(state.Err)
	}
	return status
}
