package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

func TestParseAlignment(t *testing.T) {
	testCases := []struct {
		input string
		want  dnd5e.Alignment
		ok    bool
	}{
		{"Neutral Good", dnd5e.AlignmentNeutralGood, true},
		{"chaotic-evil", dnd5e.AlignmentChaoticEvil, true},
		{"ALIGNMENT_LAWFUL_NEUTRAL", dnd5e.AlignmentLawfulNeutral, true},
		{"neutral", dnd5e.AlignmentTrueNeutral, true},
		{"Good", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := dnd5e.ParseAlignment(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Len(t, dnd5e.Alignments, 9)
	assert.Equal(t, "Neutral Good", dnd5e.AlignmentNeutralGood.DisplayName())
}

func TestParseAbility(t *testing.T) {
	for _, in := range []string{"DEX", "dex", "Dexterity", " dexterity "} {
		a, ok := dnd5e.ParseAbility(in)
		assert.True(t, ok, in)
		assert.Equal(t, dnd5e.AbilityDexterity, a, in)
	}

	_, ok := dnd5e.ParseAbility("luck")
	assert.False(t, ok)
	assert.Equal(t, "CON", dnd5e.AbilityConstitution.Short())
}

func TestCharacterDraft_SubclassRequired(t *testing.T) {
	wizard := &dnd5e.Class{ID: dnd5e.ClassWizard, SubclassLevel: 2}
	cleric := &dnd5e.Class{ID: dnd5e.ClassCleric, SubclassLevel: 1}

	assert.False(t, (&dnd5e.CharacterDraft{Class: wizard, Level: 1}).SubclassRequired())
	assert.True(t, (&dnd5e.CharacterDraft{Class: wizard, Level: 2}).SubclassRequired())
	assert.True(t, (&dnd5e.CharacterDraft{Class: cleric}).SubclassRequired(), "level 0 reads as level 1")
	assert.False(t, (&dnd5e.CharacterDraft{Class: &dnd5e.Class{}, Level: 20}).SubclassRequired())
	assert.False(t, (&dnd5e.CharacterDraft{}).SubclassRequired())
}

func TestCharacterDraft_Clone(t *testing.T) {
	scores := dnd5e.DefaultAbilityScores()
	d := &dnd5e.CharacterDraft{Name: "Aria", BaseAbilityScores: &scores}

	c := d.Clone()
	c.BaseAbilityScores.Strength = 18
	c.Name = "Bryn"

	assert.Equal(t, 10, d.BaseAbilityScores.Strength)
	assert.Equal(t, "Aria", d.Name)
}
