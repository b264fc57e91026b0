package textsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
)

func TestContains(t *testing.T) {
	testCases := []struct {
		name     string
		haystack string
		needle   string
		want     bool
	}{
		{name: "case-insensitive substring", haystack: "Half-Elf", needle: "el", want: true},
		{name: "no match", haystack: "Dwarf", needle: "el", want: false},
		{name: "empty needle matches", haystack: "Human", needle: "", want: true},
		{name: "blank needle matches", haystack: "Human", needle: "   ", want: true},
		{name: "unicode folding", haystack: "Drow of the ÉLAN", needle: "élan", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textsearch.Contains(tc.haystack, tc.needle))
		})
	}
}

func TestAnyContains(t *testing.T) {
	assert.True(t, textsearch.AnyContains("arcane", "Wizard", "Masters of ARCANE magic"))
	assert.False(t, textsearch.AnyContains("rage", "Wizard", "Masters of arcane magic"))
	assert.True(t, textsearch.Equal(" Sage", "sage"))
}
