// Package wizard defines the interface for character wizard sessions
package wizard

//go:generate mockgen -destination=mock/mock_service.go -package=wizardmock github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	wizardcore "github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

// Service defines the interface for wizard operations
type Service interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)
	SweepSessions(ctx context.Context) (*SweepSessionsOutput, error)

	// Draft edits
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateOutput, error)
	ContinueName(ctx context.Context, input *ContinueNameInput) (*UpdateOutput, error)
	SelectOption(ctx context.Context, input *SelectOptionInput) (*UpdateOutput, error)
	UpdateAlignment(ctx context.Context, input *UpdateAlignmentInput) (*UpdateOutput, error)
	UpdateLevel(ctx context.Context, input *UpdateLevelInput) (*UpdateOutput, error)
	UpdateAbilityScores(ctx context.Context, input *UpdateAbilityScoresInput) (*UpdateOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Reads
	GetPreview(ctx context.Context, input *GetPreviewInput) (*GetPreviewOutput, error)
	ListOptions(ctx context.Context, input *ListOptionsInput) (*ListOptionsOutput, error)
	SearchFeats(ctx context.Context, input *SearchFeatsInput) (*SearchFeatsOutput, error)
	ListClassFeatures(ctx context.Context, input *ListClassFeaturesInput) (*ListClassFeaturesOutput, error)

	// Reference data
	ReloadCatalogs(ctx context.Context, input *ReloadCatalogsInput) (*ReloadCatalogsOutput, error)
}

// CatalogStatus reports a session's reference data load
type CatalogStatus struct {
	Status     string `json:"status"`
	Generation uint64 `json:"generation"`
	Error      string `json:"error,omitempty"`
	Retryable  bool   `json:"retryable,omitempty"`
}

// SessionView is everything a client renders for a session
type SessionView struct {
	ID            string              `json:"id"`
	Snapshot      wizardcore.Snapshot `json:"snapshot"`
	CatalogStatus CatalogStatus       `json:"catalog_status"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

// Session lifecycle types

// CreateSessionInput defines the request for starting a wizard
type CreateSessionInput struct {
	// Name optionally pre-fills the character name
	Name string
}

// CreateSessionOutput defines the response for starting a wizard
type CreateSessionOutput struct {
	Session *SessionView
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Session *SessionView
}

// DeleteSessionInput defines the request for discarding a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the response for discarding a session
type DeleteSessionOutput struct{}

// SweepSessionsOutput defines the response for dropping expired sessions
type SweepSessionsOutput struct {
	Deleted []string
}

// Draft edit types

// UpdateOutput is returned by every draft edit
type UpdateOutput struct {
	Session *SessionView
}

// UpdateNameInput defines the request for changing the name
type UpdateNameInput struct {
	SessionID string
	Name      string
}

// ContinueNameInput defines the request for confirming the name step
type ContinueNameInput struct {
	SessionID string
}

// SelectOptionInput picks a record from one of the catalogs. An empty
// OptionID clears the selection.
type SelectOptionInput struct {
	SessionID string
	Catalog   string
	OptionID  string
}

// UpdateAlignmentInput defines the request for choosing an alignment
type UpdateAlignmentInput struct {
	SessionID string
	Alignment string
}

// UpdateLevelInput defines the request for changing the level
type UpdateLevelInput struct {
	SessionID string
	Level     int
}

// UpdateAbilityScoresInput defines the request for setting base scores
type UpdateAbilityScoresInput struct {
	SessionID     string
	AbilityScores *dnd5e.AbilityScores
}

// RollAbilityScoresInput defines the request for generating base scores
type RollAbilityScoresInput struct {
	SessionID string
	Method    string
}

// RollAbilityScoresOutput defines the response for generating base scores
type RollAbilityScoresOutput struct {
	Session *SessionView
	Method  string
	Rolls   []*dice.Roll
}

// Read types

// GetPreviewInput defines the request for the character preview
type GetPreviewInput struct {
	SessionID string
}

// Preview is the read-only character sheet for a draft
type Preview struct {
	Name          string              `json:"name"`
	Level         int                 `json:"level"`
	Race          string              `json:"race,omitempty"`
	Class         string              `json:"class,omitempty"`
	Subclass      string              `json:"subclass,omitempty"`
	Background    string              `json:"background,omitempty"`
	Feat          string              `json:"feat,omitempty"`
	Alignment     string              `json:"alignment,omitempty"`
	BaseScores    dnd5e.AbilityScores `json:"base_scores"`
	Stats         *dnd5e.DerivedStats `json:"stats"`
	SavingThrows  []string            `json:"saving_throws,omitempty"`
	Skills        []string            `json:"skills,omitempty"`
	Languages     []string            `json:"languages,omitempty"`
	Features      []string            `json:"features,omitempty"`
	MissingFields []string            `json:"missing_fields,omitempty"`
}

// GetPreviewOutput defines the response for the character preview
type GetPreviewOutput struct {
	Preview *Preview
}

// ListOptionsInput defines the request for a selector view
type ListOptionsInput struct {
	SessionID   string
	Catalog     string
	Search      string
	Filter      string
	FilterValue string
}

// ListOptionsOutput carries a selectors.View for the requested catalog
type ListOptionsOutput struct {
	Catalog       string
	View          any
	CatalogStatus CatalogStatus
}

// SearchFeatsInput defines the request for searching the feat table
type SearchFeatsInput struct {
	Query    string
	Category string
}

// SearchFeatsOutput defines the response for searching the feat table
type SearchFeatsOutput struct {
	Feats      []*dnd5e.Feat
	Categories []string
}

// ListClassFeaturesInput defines the request for a class's features
type ListClassFeaturesInput struct {
	ClassID string
	// Level defaults to 20, listing every feature
	Level int
	// Query narrows the features to those whose name or description matches
	Query string
}

// ListClassFeaturesOutput defines the response for a class's features
type ListClassFeaturesOutput struct {
	Features   []*dnd5e.ClassFeature
	Subclasses []*dnd5e.Subclass
	// SubclassLevel is the level the class picks its subclass at
	SubclassLevel int
}

// ReloadCatalogsInput defines the request for refetching reference data
type ReloadCatalogsInput struct {
	SessionID string
}

// ReloadCatalogsOutput defines the response for refetching reference data
type ReloadCatalogsOutput struct {
	Session *SessionView
}
