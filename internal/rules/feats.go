package rules

import "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"

func abilityMin(ability string, minimum int) dnd5e.Prerequisite {
	return dnd5e.Prerequisite{Kind: dnd5e.PrerequisiteAbility, Ability: ability, Minimum: minimum}
}

var defaultFeats = []*dnd5e.Feat{
	// Origin feats, offered by backgrounds
	{
		ID:          "alert",
		Name:        "Alert",
		Description: "Always on the lookout for danger.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"+5 bonus to initiative", "You can't be surprised while conscious"},
	},
	{
		ID:          "crafter",
		Name:        "Crafter",
		Description: "You are adept at crafting things and bargaining with merchants.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Proficiency with three artisan's tools", "20% discount on nonmagical items"},
	},
	{
		ID:          "healer",
		Name:        "Healer",
		Description: "You have the training of a battlefield medic.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Use a healer's kit to restore hit points", "Reroll 1s on healing dice"},
	},
	{
		ID:          "lucky",
		Name:        "Lucky",
		Description: "You have inexplicable luck that seems to kick in at just the right moment.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Luck points equal to your proficiency bonus"},
	},
	{
		ID:          "magic-initiate",
		Name:        "Magic Initiate",
		Description: "You have learned the basics of a particular magical tradition.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Two cantrips", "One level 1 spell castable once per long rest"},
	},
	{
		ID:          "musician",
		Name:        "Musician",
		Description: "You are a practiced musician who can encourage companions.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Proficiency with three musical instruments", "Grant Heroic Inspiration after a rest"},
	},
	{
		ID:          "savage-attacker",
		Name:        "Savage Attacker",
		Description: "You've trained to deal particularly damaging strikes.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Roll weapon damage dice twice once per turn and use either roll"},
	},
	{
		ID:          "skilled",
		Name:        "Skilled",
		Description: "You have exceptionally broad learning.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Proficiency in any combination of three skills or tools"},
	},
	{
		ID:          "tavern-brawler",
		Name:        "Tavern Brawler",
		Description: "Accustomed to brawling, you fight with whatever is at hand.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"Unarmed strikes deal 1d4 plus Strength", "Proficiency with improvised weapons"},
	},
	{
		ID:          "tough",
		Name:        "Tough",
		Description: "Your hit point maximum increases by twice your level.",
		Category:    dnd5e.FeatCategoryOrigin,
		Benefits:    []string{"+2 hit points per level"},
	},

	// General feats
	{
		ID:            "grappler",
		Name:          "Grappler",
		Description:   "You've developed the skills necessary to hold your own in close-quarters grappling.",
		Category:      dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{abilityMin("strength|dexterity", 13)},
		Benefits:      []string{"Advantage on attacks against creatures you are grappling"},
	},
	{
		ID:            "great-weapon-master",
		Name:          "Great Weapon Master",
		Description:   "You've learned to put the weight of a weapon to your advantage.",
		Category:      dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{abilityMin("strength", 13)},
		Benefits:      []string{"Bonus attack after a critical hit or kill", "Trade -5 to hit for +10 damage"},
	},
	{
		ID:          "mobile",
		Name:        "Mobile",
		Description: "You are exceptionally speedy and agile.",
		Category:    dnd5e.FeatCategoryGeneral,
		Benefits:    []string{"+10 feet of speed", "No opportunity attacks from creatures you attack"},
	},
	{
		ID:          "observant",
		Name:        "Observant",
		Description: "Quick to notice details of your environment.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			abilityMin("intelligence|wisdom", 13),
		},
		Benefits: []string{"+5 to passive Perception and Investigation", "Read lips"},
	},
	{
		ID:            "resilient",
		Name:          "Resilient",
		Description:   "Choose one ability score and gain proficiency in its saving throws.",
		Category:      dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{{Kind: dnd5e.PrerequisiteLevel, Minimum: 4}},
		Benefits:      []string{"+1 to the chosen ability", "Saving throw proficiency in that ability"},
	},
	{
		ID:          "ritual-caster",
		Name:        "Ritual Caster",
		Description: "You have learned a number of spells that you can cast as rituals.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			abilityMin("intelligence|wisdom|charisma", 13),
			{Kind: dnd5e.PrerequisiteLevel, Minimum: 4},
		},
		Benefits: []string{"A ritual book with two level 1 rituals"},
	},
	{
		ID:          "sentinel",
		Name:        "Sentinel",
		Description: "You have mastered techniques to take advantage of every drop in any enemy's guard.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			abilityMin("strength|dexterity", 13),
			{Kind: dnd5e.PrerequisiteLevel, Minimum: 4},
		},
		Benefits: []string{"Opportunity attacks reduce speed to 0"},
	},
	{
		ID:            "sharpshooter",
		Name:          "Sharpshooter",
		Description:   "You have mastered ranged weapons and can make shots that others find impossible.",
		Category:      dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{abilityMin("dexterity", 13)},
		Benefits:      []string{"Ignore half and three-quarters cover", "No disadvantage at long range"},
	},
	{
		ID:          "war-caster",
		Name:        "War Caster",
		Description: "You have practiced casting spells in the midst of combat.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteSpellcasting},
		},
		Benefits: []string{"Advantage on concentration saves", "Cast a spell as an opportunity attack"},
	},
	{
		ID:          "elemental-adept",
		Name:        "Elemental Adept",
		Description: "Your spells ignore resistance to a chosen damage type.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteSpellcasting},
			{Kind: dnd5e.PrerequisiteLevel, Minimum: 4},
		},
		Benefits: []string{"Treat 1s on damage dice of the chosen type as 2s"},
	},
	{
		ID:          "elven-accuracy",
		Name:        "Elven Accuracy",
		Description: "The accuracy of elves is legendary.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteRace, Value: dnd5e.RaceElf + "|" + dnd5e.RaceHalfElf},
		},
		Benefits: []string{"Reroll one die when attacking with advantage"},
	},
	{
		ID:          "dwarven-fortitude",
		Name:        "Dwarven Fortitude",
		Description: "You have the blood of dwarf heroes flowing through your veins.",
		Category:    dnd5e.FeatCategoryGeneral,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteRace, Value: dnd5e.RaceDwarf},
		},
		Benefits: []string{"+1 Constitution", "Spend a hit die when you Dodge"},
	},

	// Fighting styles
	{
		ID:          "archery",
		Name:        "Archery",
		Description: "You gain a +2 bonus to attack rolls you make with ranged weapons.",
		Category:    dnd5e.FeatCategoryFightingStyle,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteClass, Value: dnd5e.ClassFighter + "|" + dnd5e.ClassRanger},
		},
	},
	{
		ID:          "defense",
		Name:        "Defense",
		Description: "While you are wearing armor, you gain a +1 bonus to AC.",
		Category:    dnd5e.FeatCategoryFightingStyle,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteClass, Value: dnd5e.ClassFighter + "|" + dnd5e.ClassPaladin + "|" + dnd5e.ClassRanger},
		},
	},
	{
		ID:          "dueling",
		Name:        "Dueling",
		Description: "+2 damage when wielding a melee weapon in one hand and no other weapons.",
		Category:    dnd5e.FeatCategoryFightingStyle,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteClass, Value: dnd5e.ClassFighter + "|" + dnd5e.ClassPaladin + "|" + dnd5e.ClassRanger},
		},
	},
	{
		ID:          "great-weapon-fighting",
		Name:        "Great Weapon Fighting",
		Description: "Reroll 1s and 2s on damage dice with two-handed melee weapons.",
		Category:    dnd5e.FeatCategoryFightingStyle,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteClass, Value: dnd5e.ClassFighter + "|" + dnd5e.ClassPaladin},
		},
	},

	// Epic boons
	{
		ID:          "boon-of-combat-prowess",
		Name:        "Boon of Combat Prowess",
		Description: "When you miss with an attack roll, you can hit instead.",
		Category:    dnd5e.FeatCategoryEpic,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteLevel, Minimum: 19},
		},
	},
	{
		ID:          "boon-of-spell-recall",
		Name:        "Boon of Spell Recall",
		Description: "Cast one of your level 1-4 spells without expending a slot.",
		Category:    dnd5e.FeatCategoryEpic,
		Prerequisites: []dnd5e.Prerequisite{
			{Kind: dnd5e.PrerequisiteLevel, Minimum: 19},
			{Kind: dnd5e.PrerequisiteSpellcasting},
		},
	},
}
