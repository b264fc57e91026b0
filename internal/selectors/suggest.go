package selectors

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
)

// MaxSuggestions caps the "did you mean" list
const MaxSuggestions = 3

// SuggestDistance is the largest edit distance still worth suggesting for
// a query of the given length
func SuggestDistance(query string) int {
	switch n := utf8.RuneCountInString(query); {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// Suggest returns the names closest to text within SuggestDistance, nearest
// first and then alphabetically. An exact match is not a suggestion.
func Suggest(text string, names []string) []string {
	query := textsearch.Fold(text)
	if query == "" {
		return nil
	}
	limit := SuggestDistance(query)

	type candidate struct {
		name     string
		distance int
	}
	seen := make(map[string]bool, len(names))
	var found []candidate
	for _, name := range names {
		folded := textsearch.Fold(name)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true

		d := levenshtein.ComputeDistance(query, folded)
		if d == 0 || d > limit {
			continue
		}
		found = append(found, candidate{name: name, distance: d})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	out := make([]string, 0, min(len(found), MaxSuggestions))
	for _, c := range found {
		if len(out) == MaxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}
