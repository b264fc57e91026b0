package dnd5e

// Race constants
const (
	RaceHuman      = "RACE_HUMAN"
	RaceDwarf      = "RACE_DWARF"
	RaceElf        = "RACE_ELF"
	RaceHalfling   = "RACE_HALFLING"
	RaceDragonborn = "RACE_DRAGONBORN"
	RaceGnome      = "RACE_GNOME"
	RaceHalfElf    = "RACE_HALF_ELF"
	RaceHalfOrc    = "RACE_HALF_ORC"
	RaceTiefling   = "RACE_TIEFLING"
)

// Class constants
const (
	ClassBarbarian = "CLASS_BARBARIAN"
	ClassBard      = "CLASS_BARD"
	ClassCleric    = "CLASS_CLERIC"
	ClassDruid     = "CLASS_DRUID"
	ClassFighter   = "CLASS_FIGHTER"
	ClassMonk      = "CLASS_MONK"
	ClassPaladin   = "CLASS_PALADIN"
	ClassRanger    = "CLASS_RANGER"
	ClassRogue     = "CLASS_ROGUE"
	ClassSorcerer  = "CLASS_SORCERER"
	ClassWarlock   = "CLASS_WARLOCK"
	ClassWizard    = "CLASS_WIZARD"
)

// Background constants
const (
	BackgroundAcolyte      = "BACKGROUND_ACOLYTE"
	BackgroundCharlatan    = "BACKGROUND_CHARLATAN"
	BackgroundCriminal     = "BACKGROUND_CRIMINAL"
	BackgroundEntertainer  = "BACKGROUND_ENTERTAINER"
	BackgroundFolkHero     = "BACKGROUND_FOLK_HERO"
	BackgroundGuildArtisan = "BACKGROUND_GUILD_ARTISAN"
	BackgroundHermit       = "BACKGROUND_HERMIT"
	BackgroundNoble        = "BACKGROUND_NOBLE"
	BackgroundOutlander    = "BACKGROUND_OUTLANDER"
	BackgroundSage         = "BACKGROUND_SAGE"
	BackgroundSailor       = "BACKGROUND_SAILOR"
	BackgroundSoldier      = "BACKGROUND_SOLDIER"
	BackgroundUrchin       = "BACKGROUND_URCHIN"
)

// Size values as reported by the reference API
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
)

// Class roles used by the class selector
const (
	RoleMartial = "martial"
	RoleCaster  = "caster"
	RoleHybrid  = "hybrid"
)

// Class complexity ratings
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// Feat categories
const (
	FeatCategoryGeneral       = "general"
	FeatCategoryOrigin        = "origin"
	FeatCategoryFightingStyle = "fighting-style"
	FeatCategoryEpic          = "epic"
)

// Prerequisite kinds a feat may declare
const (
	PrerequisiteAbility      = "ability"
	PrerequisiteLevel        = "level"
	PrerequisiteSpellcasting = "spellcasting"
	PrerequisiteClass        = "class"
	PrerequisiteRace         = "race"
)

// Level bounds for a character
const (
	MinLevel = 1
	MaxLevel = 20
)
