package wizard

import (
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// State is the wizard's finite-state value. Step is always the result of
// the last Reduce and never edited directly.
type State struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	// NameConfirmed records the explicit continue on the name step
	NameConfirmed bool `json:"name_confirmed"`
	Step          Step `json:"step"`
}

// NewState starts a wizard on draft, which may already be partly filled
func NewState(draft *dnd5e.CharacterDraft) State {
	if draft == nil {
		draft = &dnd5e.CharacterDraft{}
	}
	draft = draft.Clone()
	if draft.Level == 0 {
		draft.Level = dnd5e.MinLevel
	}

	s := State{Draft: draft}
	s.Step = currentStep(s)
	return s
}

// Event is a user action against the wizard
type Event interface {
	// apply mutates a private copy of the state and reports whether the draft changed
	apply(s *State) bool
}

// NameChanged is fired as the user types
type NameChanged struct{ Name string }

// NameConfirmed is the explicit continue that releases the name step
type NameConfirmed struct{}

// RaceSelected sets or clears (nil) the race
type RaceSelected struct{ Race *dnd5e.Race }

// ClassSelected sets or clears (nil) the class
type ClassSelected struct{ Class *dnd5e.Class }

// SubclassSelected sets or clears (nil) the subclass
type SubclassSelected struct{ Subclass *dnd5e.Subclass }

// BackgroundSelected sets or clears (nil) the background
type BackgroundSelected struct{ Background *dnd5e.Background }

// FeatSelected sets or clears (nil) the feat
type FeatSelected struct{ Feat *dnd5e.Feat }

// AlignmentSelected sets the alignment; the empty alignment clears it
type AlignmentSelected struct{ Alignment dnd5e.Alignment }

// LevelChanged sets the character level, clamped into 1..20
type LevelChanged struct{ Level int }

// AbilityScoresChanged replaces the base ability scores; nil clears them
type AbilityScoresChanged struct{ Scores *dnd5e.AbilityScores }

// Reset empties the draft, keeping its identity
type Reset struct{}

func (e NameChanged) apply(s *State) bool {
	if s.Draft.Name == e.Name {
		return false
	}
	s.Draft.Name = e.Name
	if !s.Draft.HasName() {
		s.NameConfirmed = false
	}
	return true
}

func (NameConfirmed) apply(s *State) bool {
	if s.Draft.HasName() {
		s.NameConfirmed = true
	}
	return false
}

func (e RaceSelected) apply(s *State) bool {
	if s.Draft.Race.GetID() == e.Race.GetID() {
		return false
	}
	s.Draft.Race = e.Race
	return true
}

func (e ClassSelected) apply(s *State) bool {
	if s.Draft.Class.GetID() == e.Class.GetID() {
		return false
	}
	s.Draft.Class = e.Class
	return true
}

func (e SubclassSelected) apply(s *State) bool {
	if s.Draft.Subclass.GetID() == e.Subclass.GetID() {
		return false
	}
	s.Draft.Subclass = e.Subclass
	return true
}

func (e BackgroundSelected) apply(s *State) bool {
	if s.Draft.Background.GetID() == e.Background.GetID() {
		return false
	}
	s.Draft.Background = e.Background
	return true
}

func (e FeatSelected) apply(s *State) bool {
	if s.Draft.Feat.GetID() == e.Feat.GetID() {
		return false
	}
	s.Draft.Feat = e.Feat
	return true
}

func (e AlignmentSelected) apply(s *State) bool {
	if s.Draft.Alignment == e.Alignment {
		return false
	}
	s.Draft.Alignment = e.Alignment
	return true
}

func (e LevelChanged) apply(s *State) bool {
	level := min(max(e.Level, dnd5e.MinLevel), dnd5e.MaxLevel)
	if s.Draft.Level == level {
		return false
	}
	s.Draft.Level = level
	return true
}

func (e AbilityScoresChanged) apply(s *State) bool {
	if e.Scores == nil {
		if s.Draft.BaseAbilityScores == nil {
			return false
		}
		s.Draft.BaseAbilityScores = nil
		return true
	}
	if s.Draft.BaseAbilityScores != nil && *s.Draft.BaseAbilityScores == *e.Scores {
		return false
	}
	scores := *e.Scores
	s.Draft.BaseAbilityScores = &scores
	return true
}

func (Reset) apply(s *State) bool {
	s.Draft = &dnd5e.CharacterDraft{
		ID:        s.Draft.ID,
		Level:     dnd5e.MinLevel,
		CreatedAt: s.Draft.CreatedAt,
		UpdatedAt: s.Draft.UpdatedAt,
	}
	s.NameConfirmed = false
	return true
}

// Reduce returns the state after event. It never mutates s or its draft.
func Reduce(s State, event Event) State {
	next, _ := reduce(s, event)
	return next
}

func reduce(s State, event Event) (State, bool) {
	if s.Draft == nil {
		s = NewState(nil)
	}

	next := State{
		Draft:         s.Draft.Clone(),
		NameConfirmed: s.NameConfirmed,
	}

	changed := false
	if event != nil {
		changed = event.apply(&next)
	}
	if prune(next.Draft) {
		changed = true
	}

	next.Step = currentStep(next)
	return next, changed
}

// prune drops selections the rest of the draft no longer allows
func prune(d *dnd5e.CharacterDraft) bool {
	pruned := false
	if d.Subclass != nil && (d.Class == nil || d.Subclass.ClassID != d.Class.ID || !d.SubclassRequired()) {
		d.Subclass = nil
		pruned = true
	}
	if d.Feat != nil && !d.FeatRequired() {
		d.Feat = nil
		pruned = true
	}
	return pruned
}

// currentStep is the first unfilled step, except that the name step holds
// until the user confirms it
func currentStep(s State) Step {
	if !s.NameConfirmed || !s.Draft.HasName() {
		return StepName
	}
	for _, step := range Sequence(s.Draft) {
		if step == StepComplete {
			break
		}
		if !Filled(step, s.Draft) {
			return step
		}
	}
	return StepComplete
}
