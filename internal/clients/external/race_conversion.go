package external

import (
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// convertRace maps an API race onto our record. Absent optional fields
// convert to empty values.
func convertRace(apiRace *entities.Race) *internalDnd5e.Race {
	if apiRace == nil {
		return nil
	}

	out := &internalDnd5e.Race{
		ID:    fromAPIFormat(apiRace.Key, prefixRace),
		Name:  apiRace.Name,
		Speed: apiRace.Speed,
		Size:  apiRace.Size,
	}

	for _, bonus := range apiRace.AbilityBonuses {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		out.AbilityBonuses = append(out.AbilityBonuses, internalDnd5e.AbilityBonus{
			Ability: abilityName(bonus.AbilityScore),
			Bonus:   bonus.Bonus,
		})
	}

	out.Traits = refNames(apiRace.Traits)
	out.Languages = refNames(apiRace.Languages)
	return out
}

// abilityName prefers our full ability name and falls back to the API's
func abilityName(ref *entities.ReferenceItem) string {
	if a, ok := internalDnd5e.ParseAbility(ref.Key); ok {
		return string(a)
	}
	if a, ok := internalDnd5e.ParseAbility(ref.Name); ok {
		return string(a)
	}
	return ref.Name
}

func refNames(refs []*entities.ReferenceItem) []string {
	var out []string
	for _, ref := range refs {
		if ref == nil || ref.Name == "" {
			continue
		}
		out = append(out, ref.Name)
	}
	return out
}
