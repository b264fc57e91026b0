package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

func TestSessionEntity(t *testing.T) {
	entity := wrapSession("session_123")

	assert.Equal(t, "session_123", entity.GetID())
	assert.Equal(t, EntityTypeSession, entity.GetType())
}

func TestCharacterDraftEntity(t *testing.T) {
	draft := &dnd5e.CharacterDraft{
		ID:   "draft-456",
		Name: "Test Draft",
	}

	entity := wrapCharacterDraft(draft)

	assert.Equal(t, "draft-456", entity.GetID())
	assert.Equal(t, EntityTypeDraft, entity.GetType())

	got, ok := DraftFromEntity(entity)
	assert.True(t, ok)
	assert.Same(t, draft, got)
}

func TestEntityWrappers_Nil(t *testing.T) {
	assert.Nil(t, wrapCharacterDraft(nil))

	_, ok := DraftFromEntity(nil)
	assert.False(t, ok)

	_, ok = DraftFromEntity(wrapSession("session_123"))
	assert.False(t, ok)

	assert.Empty(t, (&CharacterDraftEntity{}).GetID())
}
