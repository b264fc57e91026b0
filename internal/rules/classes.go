package rules

import "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"

var defaultClassProfiles = []*ClassProfile{
	{ClassID: dnd5e.ClassBarbarian, HitDie: 12, Role: dnd5e.RoleMartial, Complexity: dnd5e.ComplexityBeginner, SubclassLevel: 3,
		PrimaryAbilities: []string{"strength"},
		Description:      "A fierce warrior who channels primal rage."},
	{ClassID: dnd5e.ClassBard, HitDie: 8, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 3,
		PrimaryAbilities: []string{"charisma"}, Spellcasting: true,
		Description: "An inspiring magician whose power echoes the music of creation."},
	{ClassID: dnd5e.ClassCleric, HitDie: 8, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 1,
		PrimaryAbilities: []string{"wisdom"}, Spellcasting: true,
		Description: "A priestly champion who wields divine magic."},
	{ClassID: dnd5e.ClassDruid, HitDie: 8, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityAdvanced, SubclassLevel: 2,
		PrimaryAbilities: []string{"wisdom"}, Spellcasting: true,
		Description: "A priest of the Old Faith, wielding the powers of nature."},
	{ClassID: dnd5e.ClassFighter, HitDie: 10, Role: dnd5e.RoleMartial, Complexity: dnd5e.ComplexityBeginner, SubclassLevel: 3,
		PrimaryAbilities: []string{"strength", "dexterity"},
		Description:      "A master of martial combat, skilled with weapons and armor."},
	{ClassID: dnd5e.ClassMonk, HitDie: 8, Role: dnd5e.RoleMartial, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 3,
		PrimaryAbilities: []string{"dexterity", "wisdom"},
		Description:      "A master of martial arts, harnessing the power of the body."},
	{ClassID: dnd5e.ClassPaladin, HitDie: 10, Role: dnd5e.RoleHybrid, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 3,
		PrimaryAbilities: []string{"strength", "charisma"}, Spellcasting: true,
		Description: "A holy warrior bound to a sacred oath."},
	{ClassID: dnd5e.ClassRanger, HitDie: 10, Role: dnd5e.RoleHybrid, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 3,
		PrimaryAbilities: []string{"dexterity", "wisdom"}, Spellcasting: true,
		Description: "A warrior who combats threats on the edges of civilization."},
	{ClassID: dnd5e.ClassRogue, HitDie: 8, Role: dnd5e.RoleMartial, Complexity: dnd5e.ComplexityBeginner, SubclassLevel: 3,
		PrimaryAbilities: []string{"dexterity"},
		Description:      "A scoundrel who uses stealth and trickery."},
	{ClassID: dnd5e.ClassSorcerer, HitDie: 6, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityIntermediate, SubclassLevel: 1,
		PrimaryAbilities: []string{"charisma"}, Spellcasting: true,
		Description: "A spellcaster who draws on inherent magic."},
	{ClassID: dnd5e.ClassWarlock, HitDie: 8, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityAdvanced, SubclassLevel: 1,
		PrimaryAbilities: []string{"charisma"}, Spellcasting: true,
		Description: "A wielder of magic derived from a bargain with an extraplanar entity."},
	{ClassID: dnd5e.ClassWizard, HitDie: 6, Role: dnd5e.RoleCaster, Complexity: dnd5e.ComplexityAdvanced, SubclassLevel: 2,
		PrimaryAbilities: []string{"intelligence"}, Spellcasting: true,
		Description: "A scholarly magic-user capable of manipulating the structures of reality."},
}

var defaultSubclasses = []*dnd5e.Subclass{
	{ID: "berserker", Name: "Path of the Berserker", ClassID: dnd5e.ClassBarbarian,
		Description: "Rage fueled by untamed fury.", Features: []string{"Frenzy", "Mindless Rage"}},
	{ID: "totem-warrior", Name: "Path of the Totem Warrior", ClassID: dnd5e.ClassBarbarian,
		Description: "A spiritual journey guided by an animal spirit.", Features: []string{"Spirit Seeker", "Totem Spirit"}},
	{ID: "lore", Name: "College of Lore", ClassID: dnd5e.ClassBard,
		Description: "Collectors of knowledge and cutting words.", Features: []string{"Bonus Proficiencies", "Cutting Words"}},
	{ID: "valor", Name: "College of Valor", ClassID: dnd5e.ClassBard,
		Description: "Skalds who keep alive the memory of great heroes.", Features: []string{"Combat Inspiration"}},
	{ID: "life", Name: "Life Domain", ClassID: dnd5e.ClassCleric,
		Description: "Focused on the vibrant positive energy that sustains all life.", Features: []string{"Disciple of Life"}},
	{ID: "light", Name: "Light Domain", ClassID: dnd5e.ClassCleric,
		Description: "Gods of light promote rebirth and truth.", Features: []string{"Warding Flare"}},
	{ID: "land", Name: "Circle of the Land", ClassID: dnd5e.ClassDruid,
		Description: "Mystics and sages who safeguard ancient knowledge.", Features: []string{"Natural Recovery"}},
	{ID: "moon", Name: "Circle of the Moon", ClassID: dnd5e.ClassDruid,
		Description: "Fierce guardians of the wilds who take beast forms.", Features: []string{"Combat Wild Shape"}},
	{ID: "champion", Name: "Champion", ClassID: dnd5e.ClassFighter,
		Description: "Raw physical power honed to deadly perfection.", Features: []string{"Improved Critical"}},
	{ID: "battle-master", Name: "Battle Master", ClassID: dnd5e.ClassFighter,
		Description: "Martial techniques passed down through generations.", Features: []string{"Combat Superiority"}},
	{ID: "eldritch-knight", Name: "Eldritch Knight", ClassID: dnd5e.ClassFighter,
		Description: "Martial mastery combined with careful study of magic.", Features: []string{"Spellcasting", "Weapon Bond"}},
	{ID: "open-hand", Name: "Way of the Open Hand", ClassID: dnd5e.ClassMonk,
		Description: "Masters of martial arts combat.", Features: []string{"Open Hand Technique"}},
	{ID: "devotion", Name: "Oath of Devotion", ClassID: dnd5e.ClassPaladin,
		Description: "Binds a paladin to the loftiest ideals of justice.", Features: []string{"Sacred Weapon"}},
	{ID: "hunter", Name: "Hunter", ClassID: dnd5e.ClassRanger,
		Description: "A bulwark between civilization and the terrors of the wilderness.", Features: []string{"Hunter's Prey"}},
	{ID: "thief", Name: "Thief", ClassID: dnd5e.ClassRogue,
		Description: "Burglars, bandits, cutpurses and other criminals.", Features: []string{"Fast Hands", "Second-Story Work"}},
	{ID: "assassin", Name: "Assassin", ClassID: dnd5e.ClassRogue,
		Description: "Focused on the grim art of death.", Features: []string{"Assassinate"}},
	{ID: "draconic", Name: "Draconic Bloodline", ClassID: dnd5e.ClassSorcerer,
		Description: "Innate magic from draconic magic mingled with your blood.", Features: []string{"Draconic Resilience"}},
	{ID: "fiend", Name: "The Fiend", ClassID: dnd5e.ClassWarlock,
		Description: "A pact with a fiend from the lower planes.", Features: []string{"Dark One's Blessing"}},
	{ID: "evocation", Name: "School of Evocation", ClassID: dnd5e.ClassWizard,
		Description: "Magic that creates powerful elemental effects.", Features: []string{"Evocation Savant", "Sculpt Spells"}},
	{ID: "abjuration", Name: "School of Abjuration", ClassID: dnd5e.ClassWizard,
		Description: "Magic that blocks, banishes or protects.", Features: []string{"Arcane Ward"}},
	{ID: "divination", Name: "School of Divination", ClassID: dnd5e.ClassWizard,
		Description: "Magic that reveals the future.", Features: []string{"Portent"}},
}

func feature(classID, id, name string, level int, description string) *dnd5e.ClassFeature {
	return &dnd5e.ClassFeature{ID: id, Name: name, ClassID: classID, Level: level, Description: description}
}

var defaultClassFeatures = []*dnd5e.ClassFeature{
	feature(dnd5e.ClassBarbarian, "rage", "Rage", 1, "Bonus damage and resistance to physical damage while raging."),
	feature(dnd5e.ClassBarbarian, "unarmored-defense-barbarian", "Unarmored Defense", 1, "AC equals 10 + Dexterity + Constitution without armor."),
	feature(dnd5e.ClassBarbarian, "reckless-attack", "Reckless Attack", 2, "Attack with advantage at the cost of defense."),
	feature(dnd5e.ClassBarbarian, "danger-sense", "Danger Sense", 2, "Advantage on Dexterity saves against effects you can see."),
	feature(dnd5e.ClassBarbarian, "extra-attack-barbarian", "Extra Attack", 5, "Attack twice when you take the Attack action."),

	feature(dnd5e.ClassBard, "bardic-inspiration", "Bardic Inspiration", 1, "Inspire others with a bonus die."),
	feature(dnd5e.ClassBard, "spellcasting-bard", "Spellcasting", 1, "Cast bard spells using Charisma."),
	feature(dnd5e.ClassBard, "jack-of-all-trades", "Jack of All Trades", 2, "Add half proficiency to checks you aren't proficient in."),
	feature(dnd5e.ClassBard, "song-of-rest", "Song of Rest", 2, "Allies regain extra hit points on a short rest."),
	feature(dnd5e.ClassBard, "expertise-bard", "Expertise", 3, "Double proficiency in two skills."),

	feature(dnd5e.ClassCleric, "spellcasting-cleric", "Spellcasting", 1, "Cast cleric spells using Wisdom."),
	feature(dnd5e.ClassCleric, "divine-domain", "Divine Domain", 1, "Choose a domain tied to your deity."),
	feature(dnd5e.ClassCleric, "channel-divinity-cleric", "Channel Divinity", 2, "Channel divine energy to fuel magical effects."),
	feature(dnd5e.ClassCleric, "destroy-undead", "Destroy Undead", 5, "Turned undead of low challenge are destroyed."),

	feature(dnd5e.ClassDruid, "druidic", "Druidic", 1, "You know the secret language of druids."),
	feature(dnd5e.ClassDruid, "spellcasting-druid", "Spellcasting", 1, "Cast druid spells using Wisdom."),
	feature(dnd5e.ClassDruid, "wild-shape", "Wild Shape", 2, "Magically assume the shape of a beast."),
	feature(dnd5e.ClassDruid, "druid-circle", "Druid Circle", 2, "Choose a circle of druids to identify with."),

	feature(dnd5e.ClassFighter, "fighting-style-fighter", "Fighting Style", 1, "Adopt a particular style of fighting as your specialty."),
	feature(dnd5e.ClassFighter, "second-wind", "Second Wind", 1, "Regain 1d10 + fighter level hit points as a bonus action."),
	feature(dnd5e.ClassFighter, "action-surge", "Action Surge", 2, "Take one additional action on your turn."),
	feature(dnd5e.ClassFighter, "martial-archetype", "Martial Archetype", 3, "Choose an archetype that shapes your combat techniques."),
	feature(dnd5e.ClassFighter, "extra-attack-fighter", "Extra Attack", 5, "Attack twice when you take the Attack action."),

	feature(dnd5e.ClassMonk, "martial-arts", "Martial Arts", 1, "Use Dexterity for unarmed strikes and monk weapons."),
	feature(dnd5e.ClassMonk, "unarmored-defense-monk", "Unarmored Defense", 1, "AC equals 10 + Dexterity + Wisdom without armor."),
	feature(dnd5e.ClassMonk, "ki", "Ki", 2, "Harness ki points to fuel special abilities."),
	feature(dnd5e.ClassMonk, "unarmored-movement", "Unarmored Movement", 2, "Speed increases while not wearing armor."),

	feature(dnd5e.ClassPaladin, "divine-sense", "Divine Sense", 1, "Detect celestials, fiends and undead."),
	feature(dnd5e.ClassPaladin, "lay-on-hands", "Lay on Hands", 1, "A pool of healing power restored on a long rest."),
	feature(dnd5e.ClassPaladin, "divine-smite", "Divine Smite", 2, "Expend a spell slot to deal radiant damage."),
	feature(dnd5e.ClassPaladin, "spellcasting-paladin", "Spellcasting", 2, "Cast paladin spells using Charisma."),

	feature(dnd5e.ClassRanger, "favored-enemy", "Favored Enemy", 1, "Advantage on tracking a chosen type of enemy."),
	feature(dnd5e.ClassRanger, "natural-explorer", "Natural Explorer", 1, "Expertise in navigating a favored terrain."),
	feature(dnd5e.ClassRanger, "spellcasting-ranger", "Spellcasting", 2, "Cast ranger spells using Wisdom."),

	feature(dnd5e.ClassRogue, "expertise-rogue", "Expertise", 1, "Double proficiency in two skills."),
	feature(dnd5e.ClassRogue, "sneak-attack", "Sneak Attack", 1, "Extra damage once per turn with advantage or an ally nearby."),
	feature(dnd5e.ClassRogue, "thieves-cant", "Thieves' Cant", 1, "A secret mix of dialect, jargon and code."),
	feature(dnd5e.ClassRogue, "cunning-action", "Cunning Action", 2, "Dash, Disengage or Hide as a bonus action."),
	feature(dnd5e.ClassRogue, "uncanny-dodge", "Uncanny Dodge", 5, "Halve the damage of an attack you can see."),

	feature(dnd5e.ClassSorcerer, "spellcasting-sorcerer", "Spellcasting", 1, "Cast sorcerer spells using Charisma."),
	feature(dnd5e.ClassSorcerer, "sorcerous-origin", "Sorcerous Origin", 1, "Choose the source of your innate magic."),
	feature(dnd5e.ClassSorcerer, "font-of-magic", "Font of Magic", 2, "Sorcery points convertible to spell slots."),
	feature(dnd5e.ClassSorcerer, "metamagic", "Metamagic", 3, "Twist spells to suit your needs."),

	feature(dnd5e.ClassWarlock, "otherworldly-patron", "Otherworldly Patron", 1, "Strike a bargain with an otherworldly being."),
	feature(dnd5e.ClassWarlock, "pact-magic", "Pact Magic", 1, "Spell slots that recharge on a short rest."),
	feature(dnd5e.ClassWarlock, "eldritch-invocations", "Eldritch Invocations", 2, "Fragments of forbidden knowledge."),
	feature(dnd5e.ClassWarlock, "pact-boon", "Pact Boon", 3, "Your patron bestows a gift."),

	feature(dnd5e.ClassWizard, "spellcasting-wizard", "Spellcasting", 1, "Cast wizard spells from a spellbook using Intelligence."),
	feature(dnd5e.ClassWizard, "arcane-recovery", "Arcane Recovery", 1, "Recover spell slots on a short rest."),
	feature(dnd5e.ClassWizard, "arcane-tradition", "Arcane Tradition", 2, "Choose a school of magic to specialize in."),
}
