package testutils

import (
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Aria"

// Elf returns a fresh elf record with a +2 Dexterity increase
func Elf() *dnd5e.Race {
	return &dnd5e.Race{
		ID: dnd5e.RaceElf, Name: "Elf", Size: dnd5e.SizeMedium, Speed: 30,
		AbilityBonuses: []dnd5e.AbilityBonus{{Ability: "dexterity", Bonus: 2}},
		Traits:         []string{"Darkvision", "Fey Ancestry", "Trance"},
		Languages:      []string{"Common", "Elvish"},
	}
}

// TestRaces returns Human, Elf, Dwarf and Halfling
func TestRaces() []*dnd5e.Race {
	return []*dnd5e.Race{
		{
			ID: dnd5e.RaceHuman, Name: "Human", Size: dnd5e.SizeMedium, Speed: 30,
			AbilityBonuses: []dnd5e.AbilityBonus{
				{Ability: "strength", Bonus: 1}, {Ability: "dexterity", Bonus: 1},
				{Ability: "constitution", Bonus: 1}, {Ability: "intelligence", Bonus: 1},
				{Ability: "wisdom", Bonus: 1}, {Ability: "charisma", Bonus: 1},
			},
			Languages: []string{"Common"},
		},
		Elf(),
		{
			ID: dnd5e.RaceDwarf, Name: "Dwarf", Size: dnd5e.SizeMedium, Speed: 25,
			AbilityBonuses: []dnd5e.AbilityBonus{{Ability: "constitution", Bonus: 2}},
			Traits:         []string{"Darkvision", "Dwarven Resilience"},
		},
		{
			ID: dnd5e.RaceHalfling, Name: "Halfling", Size: dnd5e.SizeSmall, Speed: 25,
			AbilityBonuses: []dnd5e.AbilityBonus{{Ability: "dexterity", Bonus: 2}},
			Traits:         []string{"Lucky", "Brave"},
		},
	}
}

// TestClass builds a class record the way the reference client does,
// from the rule table's class profile
func TestClass(classID, name string) *dnd5e.Class {
	reg := rules.Default()
	class := &dnd5e.Class{ID: classID, Name: name}
	profile, ok := reg.ClassProfile(classID)
	if !ok {
		return class
	}

	class.HitDie = profile.HitDie
	class.Description = profile.Description
	class.PrimaryAbilities = append([]string(nil), profile.PrimaryAbilities...)
	class.Spellcasting = profile.Spellcasting
	class.Role = profile.Role
	class.Complexity = profile.Complexity
	class.SubclassLevel = profile.SubclassLevel
	for _, f := range reg.ClassFeatures(classID, 1) {
		class.Features = append(class.Features, f.Name)
	}
	return class
}

// TestClasses returns Wizard, Cleric and Fighter
func TestClasses() []*dnd5e.Class {
	return []*dnd5e.Class{
		TestClass(dnd5e.ClassWizard, "Wizard"),
		TestClass(dnd5e.ClassCleric, "Cleric"),
		TestClass(dnd5e.ClassFighter, "Fighter"),
	}
}

// TestCatalogs returns a full set of catalogs with the rule table
// backgrounds
func TestCatalogs() *dnd5e.Catalogs {
	return &dnd5e.Catalogs{
		Races:       TestRaces(),
		Classes:     TestClasses(),
		Backgrounds: rules.Default().Backgrounds(),
	}
}
