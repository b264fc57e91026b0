package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// Entity types reported to the event bus
const (
	EntityTypeSession = "wizard_session"
	EntityTypeDraft   = "character_draft"
)

// SessionEntity identifies a wizard session on the event bus
type SessionEntity struct {
	ID string
}

// GetID returns the session's ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return EntityTypeSession
}

// CharacterDraftEntity wraps dnd5e.CharacterDraft to implement core.Entity interface
type CharacterDraftEntity struct {
	*dnd5e.CharacterDraft
}

// GetID returns the character draft's ID
func (c *CharacterDraftEntity) GetID() string {
	if c.CharacterDraft == nil {
		return ""
	}
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterDraftEntity) GetType() string {
	return EntityTypeDraft
}

func wrapSession(id string) core.Entity {
	return &SessionEntity{ID: id}
}

// wrapCharacterDraft returns nil for a nil draft so events carry no target
func wrapCharacterDraft(draft *dnd5e.CharacterDraft) core.Entity {
	if draft == nil {
		return nil
	}
	return &CharacterDraftEntity{CharacterDraft: draft}
}

// DraftFromEntity recovers the draft carried by an event target
func DraftFromEntity(entity core.Entity) (*dnd5e.CharacterDraft, bool) {
	if entity == nil {
		return nil, false
	}
	if de, ok := entity.(*CharacterDraftEntity); ok && de.CharacterDraft != nil {
		return de.CharacterDraft, true
	}
	return nil, false
}
