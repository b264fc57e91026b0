// Package rpgtoolkit bridges wizard activity onto an rpg-toolkit event bus
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// Event types published by the wizard
const (
	EventDraftChanged      = "wizard.draft.changed"
	EventValidationChanged = "wizard.validation.changed"
	EventCatalogLoaded     = "wizard.catalog.loaded"
)

// EventTypes lists every event type the wizard publishes
var EventTypes = []string{EventDraftChanged, EventValidationChanged, EventCatalogLoaded}

// Event context keys
const (
	ContextSessionID   = "session_id"
	ContextUpdatedAt   = "updated_at"
	ContextValid       = "valid"
	ContextErrors      = "errors"
	ContextStatus      = "status"
	ContextGeneration  = "generation"
	ContextRaces       = "races"
	ContextClasses     = "classes"
	ContextBackgrounds = "backgrounds"
	ContextError       = "error"
)

// CatalogLoad describes a finished catalog load
type CatalogLoad struct {
	Generation  uint64
	Status      string
	Races       int
	Classes     int
	Backgrounds int
	Err         error
}

// Publisher publishes wizard events. The zero value and a Publisher built
// on a nil bus drop every event.
type Publisher struct {
	bus events.EventBus
}

// NewPublisher creates a publisher on bus
func NewPublisher(bus events.EventBus) *Publisher {
	return &Publisher{bus: bus}
}

// Enabled reports whether events go anywhere
func (p *Publisher) Enabled() bool {
	return p != nil && p.bus != nil
}

// DraftChanged announces a new draft state for a session
func (p *Publisher) DraftChanged(ctx context.Context, sessionID string, draft *dnd5e.CharacterDraft) error {
	values := map[string]any{}
	if draft != nil {
		values[ContextUpdatedAt] = draft.UpdatedAt
	}
	return p.publish(ctx, EventDraftChanged, sessionID, wrapCharacterDraft(draft), values)
}

// ValidationChanged announces a change in a session's validity
func (p *Publisher) ValidationChanged(ctx context.Context, sessionID string, valid bool, errs []string) error {
	return p.publish(ctx, EventValidationChanged, sessionID, nil, map[string]any{
		ContextValid:  valid,
		ContextErrors: append([]string(nil), errs...),
	})
}

// CatalogLoaded announces that a session's catalog load finished
func (p *Publisher) CatalogLoaded(ctx context.Context, sessionID string, load CatalogLoad) error {
	values := map[string]any{
		ContextGeneration:  load.Generation,
		ContextStatus:      load.Status,
		ContextRaces:       load.Races,
		ContextClasses:     load.Classes,
		ContextBackgrounds: load.Backgrounds,
	}
	if load.Err != nil {
		values[ContextError] = load.Err.Error()
	}
	return p.publish(ctx, EventCatalogLoaded, sessionID, nil, values)
}

func (p *Publisher) publish(ctx context.Context, eventType, sessionID string, target core.Entity, values map[string]any) error {
	if !p.Enabled() {
		return nil
	}

	event := events.NewGameEvent(eventType, wrapSession(sessionID), target)
	event.Context().Set(ContextSessionID, sessionID)
	for k, v := range values {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish wizard event",
			"event", eventType,
			"session_id", sessionID,
			"error", err)
		return err
	}
	return nil
}

// SubscribeLogger logs every wizard event at debug level and returns the
// subscription IDs
func SubscribeLogger(bus events.EventBus, logger *slog.Logger) []string {
	if bus == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 100, func(_ context.Context, e events.Event) error {
			attrs := []any{"event", eventType}
			if source := e.Source(); source != nil {
				attrs = append(attrs, ContextSessionID, source.GetID())
			}
			for _, key := range []string{ContextUpdatedAt, ContextValid, ContextStatus, ContextGeneration, ContextError} {
				if v, ok := e.Context().Get(key); ok {
					attrs = append(attrs, key, v)
				}
			}
			logger.Debug("Wizard event", attrs...)
			return nil
		}))
	}
	return ids
}
