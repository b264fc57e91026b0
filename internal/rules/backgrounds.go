package rules

import "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"

// Backgrounds marked GrantsFeat follow the newer rules where a background
// comes with an origin feat. The older-style ones grant none.
var defaultBackgrounds = []*dnd5e.Background{
	{ID: dnd5e.BackgroundAcolyte, Name: "Acolyte", GrantsFeat: true,
		Description:        "You have spent your life in the service of a temple.",
		SkillProficiencies: []string{"Insight", "Religion"}, Languages: []string{"Two of your choice"},
		FeatureName:        "Shelter of the Faithful"},
	{ID: dnd5e.BackgroundCharlatan, Name: "Charlatan", GrantsFeat: true,
		Description:        "You have always had a way with people.",
		SkillProficiencies: []string{"Deception", "Sleight of Hand"}, ToolProficiencies: []string{"Disguise kit", "Forgery kit"},
		FeatureName:        "False Identity"},
	{ID: dnd5e.BackgroundCriminal, Name: "Criminal", GrantsFeat: true,
		Description:        "You are an experienced criminal with a history of breaking the law.",
		SkillProficiencies: []string{"Deception", "Stealth"}, ToolProficiencies: []string{"Thieves' tools", "Gaming set"},
		FeatureName:        "Criminal Contact"},
	{ID: dnd5e.BackgroundEntertainer, Name: "Entertainer", GrantsFeat: true,
		Description:        "You thrive in front of an audience.",
		SkillProficiencies: []string{"Acrobatics", "Performance"}, ToolProficiencies: []string{"Disguise kit", "Musical instrument"},
		FeatureName:        "By Popular Demand"},
	{ID: dnd5e.BackgroundFolkHero, Name: "Folk Hero",
		Description:        "You come from a humble social rank, but you are destined for so much more.",
		SkillProficiencies: []string{"Animal Handling", "Survival"}, ToolProficiencies: []string{"Artisan's tools", "Vehicles (land)"},
		FeatureName:        "Rustic Hospitality"},
	{ID: dnd5e.BackgroundGuildArtisan, Name: "Guild Artisan", GrantsFeat: true,
		Description:        "You are a member of an artisan's guild.",
		SkillProficiencies: []string{"Insight", "Persuasion"}, ToolProficiencies: []string{"Artisan's tools"},
		Languages:          []string{"One of your choice"}, FeatureName: "Guild Membership"},
	{ID: dnd5e.BackgroundHermit, Name: "Hermit", GrantsFeat: true,
		Description:        "You lived in seclusion for a formative part of your life.",
		SkillProficiencies: []string{"Medicine", "Religion"}, ToolProficiencies: []string{"Herbalism kit"},
		Languages:          []string{"One of your choice"}, FeatureName: "Discovery"},
	{ID: dnd5e.BackgroundNoble, Name: "Noble", GrantsFeat: true,
		Description:        "You understand wealth, power, and privilege.",
		SkillProficiencies: []string{"History", "Persuasion"}, ToolProficiencies: []string{"Gaming set"},
		Languages:          []string{"One of your choice"}, FeatureName: "Position of Privilege"},
	{ID: dnd5e.BackgroundOutlander, Name: "Outlander",
		Description:        "You grew up in the wilds, far from civilization.",
		SkillProficiencies: []string{"Athletics", "Survival"}, ToolProficiencies: []string{"Musical instrument"},
		Languages:          []string{"One of your choice"}, FeatureName: "Wanderer"},
	{ID: dnd5e.BackgroundSage, Name: "Sage", GrantsFeat: true,
		Description:        "You spent years learning the lore of the multiverse.",
		SkillProficiencies: []string{"Arcana", "History"}, Languages: []string{"Two of your choice"},
		FeatureName:        "Researcher"},
	{ID: dnd5e.BackgroundSailor, Name: "Sailor", GrantsFeat: true,
		Description:        "You sailed on a seagoing vessel for years.",
		SkillProficiencies: []string{"Athletics", "Perception"}, ToolProficiencies: []string{"Navigator's tools", "Vehicles (water)"},
		FeatureName:        "Ship's Passage"},
	{ID: dnd5e.BackgroundSoldier, Name: "Soldier", GrantsFeat: true,
		Description:        "War has been your life for as long as you care to remember.",
		SkillProficiencies: []string{"Athletics", "Intimidation"}, ToolProficiencies: []string{"Gaming set", "Vehicles (land)"},
		FeatureName:        "Military Rank"},
	{ID: dnd5e.BackgroundUrchin, Name: "Urchin",
		Description:        "You grew up on the streets alone, orphaned, and poor.",
		SkillProficiencies: []string{"Sleight of Hand", "Stealth"}, ToolProficiencies: []string{"Disguise kit", "Thieves' tools"},
		FeatureName:        "City Secrets"},
}
