// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// CharacterDraftBuilder provides a fluent interface for building test CharacterDraft instances
type CharacterDraftBuilder struct {
	draft *dnd5e.CharacterDraft
}

// NewCharacterDraftBuilder creates a new builder with minimal defaults
func NewCharacterDraftBuilder() *CharacterDraftBuilder {
	return &CharacterDraftBuilder{
		draft: &dnd5e.CharacterDraft{
			ID:        "draft-test-123",
			Level:     dnd5e.MinLevel,
			CreatedAt: 1700000000,
			UpdatedAt: 1700000000,
		},
	}
}

// WithID sets the draft ID
func (b *CharacterDraftBuilder) WithID(id string) *CharacterDraftBuilder {
	b.draft.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterDraftBuilder) WithName(name string) *CharacterDraftBuilder {
	b.draft.Name = name
	return b
}

// WithRace sets the race record
func (b *CharacterDraftBuilder) WithRace(race *dnd5e.Race) *CharacterDraftBuilder {
	b.draft.Race = race
	return b
}

// WithClass sets the class record
func (b *CharacterDraftBuilder) WithClass(class *dnd5e.Class) *CharacterDraftBuilder {
	b.draft.Class = class
	return b
}

// WithSubclass sets the subclass record
func (b *CharacterDraftBuilder) WithSubclass(subclass *dnd5e.Subclass) *CharacterDraftBuilder {
	b.draft.Subclass = subclass
	return b
}

// WithBackground sets the background record
func (b *CharacterDraftBuilder) WithBackground(bg *dnd5e.Background) *CharacterDraftBuilder {
	b.draft.Background = bg
	return b
}

// WithFeat sets the chosen feat
func (b *CharacterDraftBuilder) WithFeat(feat *dnd5e.Feat) *CharacterDraftBuilder {
	b.draft.Feat = feat
	return b
}

// WithAlignment sets the alignment
func (b *CharacterDraftBuilder) WithAlignment(alignment dnd5e.Alignment) *CharacterDraftBuilder {
	b.draft.Alignment = alignment
	return b
}

// WithLevel sets the level without clamping so tests can check bounds
func (b *CharacterDraftBuilder) WithLevel(level int) *CharacterDraftBuilder {
	b.draft.Level = level
	return b
}

// WithAbilityScores sets the base ability scores
func (b *CharacterDraftBuilder) WithAbilityScores(scores dnd5e.AbilityScores) *CharacterDraftBuilder {
	b.draft.BaseAbilityScores = &scores
	return b
}

// Build returns a copy of the built draft
func (b *CharacterDraftBuilder) Build() *dnd5e.CharacterDraft {
	return b.draft.Clone()
}
