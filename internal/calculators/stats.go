// Package calculators derives character statistics from a draft.
//
// Everything here is a pure function of its arguments. Nothing is cached, so
// callers recompute DerivedStats on every read of a draft.
package calculators

import (
	"strings"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
)

// Score bounds after racial adjustment
const (
	MinScore = 1
	MaxScore = 20
)

// BaseArmorClass is the unarmored AC before the Dexterity modifier
const BaseArmorClass = 10

// proficiencyByLevel is indexed by level-1
var proficiencyByLevel = [dnd5e.MaxLevel]int{
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	6, 6, 6, 6,
}

// AbilityModifier returns floor((score-10)/2) for any score
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go division truncates toward zero
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// RacialIncrease sums the race's bonuses whose ability matches ability,
// comparing full or short names without regard to case
func RacialIncrease(race *dnd5e.Race, ability dnd5e.Ability) int {
	if race == nil {
		return 0
	}

	total := 0
	for _, bonus := range race.AbilityBonuses {
		if matchesAbility(bonus.Ability, ability) {
			total += bonus.Bonus
		}
	}
	return total
}

func matchesAbility(name string, ability dnd5e.Ability) bool {
	if parsed, ok := dnd5e.ParseAbility(name); ok {
		return parsed == ability
	}
	return strings.EqualFold(strings.TrimSpace(name), string(ability))
}

// FinalAbilityScore applies a racial increase, capping at 20 and flooring at 1
func FinalAbilityScore(base, racialIncrease int) int {
	return clamp(base+racialIncrease, MinScore, MaxScore)
}

// ClampLevel forces level into 1..20
func ClampLevel(level int) int {
	return clamp(level, dnd5e.MinLevel, dnd5e.MaxLevel)
}

// ProficiencyBonus returns the bonus for a character level. Out of range
// levels are clamped.
func ProficiencyBonus(level int) int {
	return proficiencyByLevel[ClampLevel(level)-1]
}

// EstimatedAC is unarmored AC: 10 + Dexterity modifier
func EstimatedAC(dexModifier int) int {
	return BaseArmorClass + dexModifier
}

// EstimatedHP is max hit points: the full hit die plus Constitution at
// level 1, then the fixed average floor(hitDie/2)+1 plus Constitution for
// every later level. Each level contributes at least 1.
func EstimatedHP(hitDie, level, conModifier int) int {
	if hitDie <= 0 {
		return 0
	}
	level = ClampLevel(level)

	hp := max(1, hitDie+conModifier)
	perLevel := max(1, hitDie/2+1+conModifier)
	return hp + perLevel*(level-1)
}

// FinalScores applies the race's increases to base
func FinalScores(base dnd5e.AbilityScores, race *dnd5e.Race) dnd5e.AbilityScores {
	var out dnd5e.AbilityScores
	for _, a := range dnd5e.Abilities {
		out.Set(a, FinalAbilityScore(base.Get(a), RacialIncrease(race, a)))
	}
	return out
}

// Modifiers maps every score to its modifier
func Modifiers(scores dnd5e.AbilityScores) dnd5e.AbilityScores {
	var out dnd5e.AbilityScores
	for _, a := range dnd5e.Abilities {
		out.Set(a, AbilityModifier(scores.Get(a)))
	}
	return out
}

// Derive computes the preview stats for a draft. A nil base uses 10 in
// every ability. HP is omitted until a class is chosen.
func Derive(draft *dnd5e.CharacterDraft, base *dnd5e.AbilityScores) *dnd5e.DerivedStats {
	scores := dnd5e.DefaultAbilityScores()
	if base != nil {
		scores = *base
	}

	var race *dnd5e.Race
	var class *dnd5e.Class
	if draft != nil {
		race = draft.Race
		class = draft.Class
	}
	level := draft.EffectiveLevel()

	final := FinalScores(scores, race)
	mods := Modifiers(final)

	stats := &dnd5e.DerivedStats{
		FinalScores:      final,
		Modifiers:        mods,
		ProficiencyBonus: ProficiencyBonus(level),
	}

	ac := EstimatedAC(mods.Dexterity)
	stats.ArmorClass = &ac

	if class != nil && class.HitDie > 0 {
		hp := EstimatedHP(class.HitDie, level, mods.Constitution)
		stats.HitPoints = &hp
	}

	return stats
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
