package dice

import (
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// Roll is one generated ability score
type Roll struct {
	RollID   string `json:"roll_id"`
	Notation string `json:"notation"`
	// Dice holds the kept dice; empty for the standard array
	Dice    []int `json:"dice,omitempty"`
	Dropped []int `json:"dropped,omitempty"`
	Total   int   `json:"total"`
	// Ability is where the total was assigned
	Ability dnd5e.Ability `json:"ability"`
}

// RollAbilityScoresInput defines the request for generating base scores
type RollAbilityScoresInput struct {
	// Method defaults to MethodStandard
	Method string
	// PrimaryAbilities receive the highest totals, in order
	PrimaryAbilities []string
}

// RollAbilityScoresOutput defines the response for generating base scores
type RollAbilityScoresOutput struct {
	Method string
	Rolls  []*Roll
	Scores dnd5e.AbilityScores
}
