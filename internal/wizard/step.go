// Package wizard implements the character creation step machine.
//
// State is an explicit value advanced by the pure Reduce function. The
// Controller wraps a State as the single writer of a draft and pushes
// validation and change notifications through latest-handler Dispatchers.
package wizard

import "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"

// Step is one stage of the wizard
type Step string

// Steps in wizard order. Subclass and feat appear only when the draft calls for them.
const (
	StepName       Step = "name"
	StepRace       Step = "race"
	StepClass      Step = "class"
	StepSubclass   Step = "subclass"
	StepBackground Step = "background"
	StepFeat       Step = "feat"
	StepAlignment  Step = "alignment"
	StepComplete   Step = "complete"
)

var stepTitles = map[Step]string{
	StepName:       "Name",
	StepRace:       "Race",
	StepClass:      "Class",
	StepSubclass:   "Subclass",
	StepBackground: "Background",
	StepFeat:       "Feat",
	StepAlignment:  "Alignment",
	StepComplete:   "Review",
}

// String returns the step identifier
func (s Step) String() string {
	return string(s)
}

// Title returns the heading shown for the step
func (s Step) Title() string {
	return stepTitles[s]
}

// Sequence returns the ordered steps for draft, always ending in StepComplete
func Sequence(draft *dnd5e.CharacterDraft) []Step {
	steps := []Step{StepName, StepRace, StepClass}
	if draft.SubclassRequired() {
		steps = append(steps, StepSubclass)
	}
	steps = append(steps, StepBackground)
	if draft.FeatRequired() {
		steps = append(steps, StepFeat)
	}
	return append(steps, StepAlignment, StepComplete)
}

// Filled reports whether the field a step collects is set on draft
func Filled(step Step, draft *dnd5e.CharacterDraft) bool {
	if draft == nil {
		return false
	}

	switch step {
	case StepName:
		return draft.HasName()
	case StepRace:
		return draft.Race != nil
	case StepClass:
		return draft.Class != nil
	case StepSubclass:
		return draft.Subclass != nil
	case StepBackground:
		return draft.Background != nil
	case StepFeat:
		return draft.Feat != nil
	case StepAlignment:
		return draft.Alignment.IsValid()
	case StepComplete:
		return true
	default:
		return false
	}
}

// MissingFields names the steps in draft's sequence that are still empty
func MissingFields(draft *dnd5e.CharacterDraft) []string {
	missing := []string{}
	for _, step := range Sequence(draft) {
		if !Filled(step, draft) {
			missing = append(missing, step.String())
		}
	}
	return missing
}

// Reachable reports whether step is in the draft's sequence and every step
// before it is filled
func Reachable(step Step, draft *dnd5e.CharacterDraft) bool {
	for _, s := range Sequence(draft) {
		if s == step {
			return true
		}
		if !Filled(s, draft) {
			return false
		}
	}
	return false
}

// reachableFrom adds the name hold to Reachable: until the name step is
// confirmed only the name itself can be edited
func reachableFrom(nameConfirmed bool, step Step, draft *dnd5e.CharacterDraft) bool {
	if step == StepName {
		return true
	}
	return nameConfirmed && Reachable(step, draft)
}

// Reachable reports whether the user may fill step in this state
func (s State) Reachable(step Step) bool {
	return reachableFrom(s.NameConfirmed, step, s.Draft)
}
