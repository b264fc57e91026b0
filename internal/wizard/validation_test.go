package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

func TestValidate(t *testing.T) {
	complete := builders.NewCharacterDraftBuilder().
		WithName("Aria").
		WithRace(&dnd5e.Race{ID: dnd5e.RaceElf, Name: "Elf"}).
		WithClass(&dnd5e.Class{ID: dnd5e.ClassWizard, Name: "Wizard"}).
		WithBackground(&dnd5e.Background{ID: dnd5e.BackgroundSage, Name: "Sage"}).
		WithAlignment(dnd5e.AlignmentNeutralGood).
		Build()

	t.Run("complete draft is valid", func(t *testing.T) {
		v := wizard.Validate(complete)
		assert.True(t, v.Valid)
		assert.Equal(t, []string{}, v.Errors)
	})

	t.Run("missing alignment", func(t *testing.T) {
		d := complete.Clone()
		d.Alignment = ""

		v := wizard.Validate(d)
		assert.False(t, v.Valid)
		assert.Contains(t, v.Errors, "Alignment is required")
		assert.Len(t, v.Errors, 1)
	})

	t.Run("empty draft lists every field in order", func(t *testing.T) {
		v := wizard.Validate(nil)
		assert.False(t, v.Valid)
		assert.Equal(t, []string{
			"Name is required",
			"Race is required",
			"Class is required",
			"Background is required",
			"Alignment is required",
		}, v.Errors)
	})

	t.Run("whitespace name is missing", func(t *testing.T) {
		d := complete.Clone()
		d.Name = "  "
		assert.Equal(t, []string{"Name is required"}, wizard.Validate(d).Errors)
	})

	t.Run("unknown alignment is missing", func(t *testing.T) {
		d := complete.Clone()
		d.Alignment = "ALIGNMENT_SORTA_GOOD"
		assert.False(t, wizard.Validate(d).Valid)
	})
}

func TestMissingFields(t *testing.T) {
	assert.Equal(t, []string{"name", "race", "class", "background", "alignment"}, wizard.MissingFields(nil))

	d := &dnd5e.CharacterDraft{
		Name:       "Aria",
		Level:      3,
		Race:       &dnd5e.Race{ID: dnd5e.RaceElf},
		Class:      &dnd5e.Class{ID: dnd5e.ClassWizard, SubclassLevel: 2},
		Background: &dnd5e.Background{ID: dnd5e.BackgroundSage, GrantsFeat: true},
	}
	assert.Equal(t, []string{"subclass", "feat", "alignment"}, wizard.MissingFields(d))

	d.Subclass = &dnd5e.Subclass{ID: "evocation", ClassID: dnd5e.ClassWizard}
	d.Feat = &dnd5e.Feat{ID: "alert"}
	d.Alignment = dnd5e.AlignmentNeutralGood
	assert.Equal(t, []string{}, wizard.MissingFields(d))
}
