package rules

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func alternatives(value string) []string {
	parts := strings.Split(value, "|")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func oneOf(id, value string) bool {
	for _, alt := range alternatives(value) {
		if strings.EqualFold(alt, id) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// displayIDs turns "CLASS_FIGHTER|CLASS_HALF_ELF" into "Fighter or Half Elf"
func displayIDs(value string) string {
	names := alternatives(value)
	for i, id := range names {
		if _, rest, ok := strings.Cut(id, "_"); ok {
			id = rest
		}
		names[i] = titleCase(strings.ReplaceAll(strings.ToLower(id), "_", " "))
	}
	return strings.Join(names, " or ")
}
