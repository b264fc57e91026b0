package external

import (
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// convertClass maps an API class and its level one record onto our class.
// Level one may be nil.
func convertClass(apiClass *entities.Class, level1 *entities.Level) *internalDnd5e.Class {
	if apiClass == nil {
		return nil
	}

	out := &internalDnd5e.Class{
		ID:     fromAPIFormat(apiClass.Key, prefixClass),
		Name:   apiClass.Name,
		HitDie: apiClass.HitDie,
	}

	for _, st := range apiClass.SavingThrows {
		if st == nil {
			continue
		}
		out.SavingThrows = append(out.SavingThrows, abilityName(st))
	}

	if level1 != nil {
		out.Features = refNames(level1.Features)
		out.Spellcasting = level1.SpellCasting != nil
	}
	return out
}

// enrichClass fills selector metadata the API does not carry from the
// rule tables' class profile
func (c *client) enrichClass(class *internalDnd5e.Class) {
	profile, ok := c.rules.ClassProfile(class.ID)
	if !ok {
		return
	}

	class.Role = profile.Role
	class.Complexity = profile.Complexity
	class.SubclassLevel = profile.SubclassLevel
	class.Spellcasting = class.Spellcasting || profile.Spellcasting
	if class.Description == "" {
		class.Description = profile.Description
	}
	if class.HitDie == 0 {
		class.HitDie = profile.HitDie
	}
	if len(profile.PrimaryAbilities) > 0 {
		class.PrimaryAbilities = append([]string(nil), profile.PrimaryAbilities...)
	}
	if len(class.Features) == 0 {
		for _, f := range c.rules.ClassFeatures(class.ID, 1) {
			class.Features = append(class.Features, f.Name)
		}
	}
}
