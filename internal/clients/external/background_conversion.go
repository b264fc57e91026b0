package external

import (
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

// mergeBackgrounds lists the API's backgrounds first, filled in from the
// rule tables where they describe the same background, followed by the
// rule table backgrounds the API does not serve
func mergeBackgrounds(refs []*entities.ReferenceItem, table *rules.Registry) []*internalDnd5e.Background {
	known := table.Backgrounds()

	seen := make(map[string]bool, len(refs)+len(known))
	out := make([]*internalDnd5e.Background, 0, len(refs)+len(known))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		id := fromAPIFormat(ref.Key, prefixBackground)
		if seen[id] {
			continue
		}
		seen[id] = true

		bg := &internalDnd5e.Background{ID: id, Name: ref.Name}
		if rec, ok := table.Background(id); ok {
			copied := *rec
			bg = &copied
			if ref.Name != "" {
				bg.Name = ref.Name
			}
		}
		out = append(out, bg)
	}

	for _, bg := range known {
		if seen[bg.ID] {
			continue
		}
		seen[bg.ID] = true
		copied := *bg
		out = append(out, &copied)
	}
	return out
}
