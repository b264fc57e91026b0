package wizard

import "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"

// Validation is the aggregate status reported to the hosting shell. Invalid
// is the normal state of an unfinished draft, not an error.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validation messages, in the order they are reported
const (
	MessageNameRequired       = "Name is required"
	MessageRaceRequired       = "Race is required"
	MessageClassRequired      = "Class is required"
	MessageBackgroundRequired = "Background is required"
	MessageAlignmentRequired  = "Alignment is required"
)

// Validate checks the fields every character needs. Errors is empty, never
// nil, when the draft is valid.
func Validate(draft *dnd5e.CharacterDraft) Validation {
	if draft == nil {
		draft = &dnd5e.CharacterDraft{}
	}

	errs := []string{}
	if !draft.HasName() {
		errs = append(errs, MessageNameRequired)
	}
	if draft.Race == nil {
		errs = append(errs, MessageRaceRequired)
	}
	if draft.Class == nil {
		errs = append(errs, MessageClassRequired)
	}
	if draft.Background == nil {
		errs = append(errs, MessageBackgroundRequired)
	}
	if !draft.Alignment.IsValid() {
		errs = append(errs, MessageAlignmentRequired)
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// validationInputs are the fields Validate depends on. Validation is only
// re-dispatched when these change.
type validationInputs struct {
	name       string
	race       string
	class      string
	background string
	alignment  dnd5e.Alignment
}

func inputsOf(d *dnd5e.CharacterDraft) validationInputs {
	return validationInputs{
		name:       d.Name,
		race:       d.Race.GetID(),
		class:      d.Class.GetID(),
		background: d.Background.GetID(),
		alignment:  d.Alignment,
	}
}
