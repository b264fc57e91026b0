// Package dnd5e holds the D&D 5e records the wizard assembles a character from
package dnd5e

import "strings"

// CharacterDraft is the in-progress character. Selections are stored as full
// records so the preview never needs another lookup.
type CharacterDraft struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Race              *Race          `json:"race,omitempty"`
	Class             *Class         `json:"class,omitempty"`
	Subclass          *Subclass      `json:"subclass,omitempty"`
	Background        *Background    `json:"background,omitempty"`
	Feat              *Feat          `json:"feat,omitempty"`
	Level             int            `json:"level"`
	Alignment         Alignment      `json:"alignment,omitempty"`
	BaseAbilityScores *AbilityScores `json:"base_ability_scores,omitempty"`
	CreatedAt         int64          `json:"created_at"`
	UpdatedAt         int64          `json:"updated_at"`
}

// HasName reports whether a non-blank name is set
func (d *CharacterDraft) HasName() bool {
	return d != nil && strings.TrimSpace(d.Name) != ""
}

// EffectiveLevel returns the level clamped into 1..20
func (d *CharacterDraft) EffectiveLevel() int {
	if d == nil || d.Level < MinLevel {
		return MinLevel
	}
	if d.Level > MaxLevel {
		return MaxLevel
	}
	return d.Level
}

// SubclassRequired reports whether the selected class offers a subclass at the draft's level
func (d *CharacterDraft) SubclassRequired() bool {
	if d == nil || d.Class == nil || d.Class.SubclassLevel <= 0 {
		return false
	}
	return d.Class.SubclassLevel <= d.EffectiveLevel()
}

// FeatRequired reports whether the selected background grants a feat choice
func (d *CharacterDraft) FeatRequired() bool {
	return d != nil && d.Background != nil && d.Background.GrantsFeat
}

// Clone returns a copy that shares the immutable records but not the scores
func (d *CharacterDraft) Clone() *CharacterDraft {
	if d == nil {
		return nil
	}
	out := *d
	if d.BaseAbilityScores != nil {
		scores := *d.BaseAbilityScores
		out.BaseAbilityScores = &scores
	}
	return &out
}

// DerivedStats is recomputed from a draft on every read
type DerivedStats struct {
	FinalScores      AbilityScores `json:"final_scores"`
	Modifiers        AbilityScores `json:"modifiers"`
	ProficiencyBonus int           `json:"proficiency_bonus"`
	ArmorClass       *int          `json:"armor_class,omitempty"`
	HitPoints        *int          `json:"hit_points,omitempty"`
}
