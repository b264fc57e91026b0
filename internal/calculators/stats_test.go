package calculators_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/calculators"
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/testutils/builders"
)

type StatsTestSuite struct {
	suite.Suite
	elf *dnd5e.Race
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.elf = &dnd5e.Race{
		ID:   dnd5e.RaceElf,
		Name: "Elf",
		AbilityBonuses: []dnd5e.AbilityBonus{
			{Ability: "DEX", Bonus: 2},
			{Ability: "Intelligence", Bonus: 1},
		},
	}
}

func (s *StatsTestSuite) TestAbilityModifier() {
	s.Equal(0, calculators.AbilityModifier(10))
	s.Equal(3, calculators.AbilityModifier(16))
	s.Equal(-2, calculators.AbilityModifier(7))

	for score := -30; score <= 40; score++ {
		want := int(math.Floor(float64(score-10) / 2))
		s.Equal(want, calculators.AbilityModifier(score), "score %d", score)
	}
}

func (s *StatsTestSuite) TestFinalAbilityScore() {
	for base := 1; base <= 20; base++ {
		for inc := 0; inc <= 4; inc++ {
			s.Equal(min(20, base+inc), calculators.FinalAbilityScore(base, inc), "base %d inc %d", base, inc)
		}
	}
	s.Equal(1, calculators.FinalAbilityScore(1, -2))
}

func (s *StatsTestSuite) TestRacialIncrease() {
	testCases := []struct {
		name    string
		race    *dnd5e.Race
		ability dnd5e.Ability
		want    int
	}{
		{name: "short upper case name", race: s.elf, ability: dnd5e.AbilityDexterity, want: 2},
		{name: "full name", race: s.elf, ability: dnd5e.AbilityIntelligence, want: 1},
		{name: "absent ability", race: s.elf, ability: dnd5e.AbilityStrength, want: 0},
		{name: "nil race", race: nil, ability: dnd5e.AbilityDexterity, want: 0},
		{
			name: "half-elf style duplicates add up",
			race: &dnd5e.Race{AbilityBonuses: []dnd5e.AbilityBonus{
				{Ability: "cha", Bonus: 2},
				{Ability: "CHARISMA", Bonus: 1},
			}},
			ability: dnd5e.AbilityCharisma,
			want:    3,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, calculators.RacialIncrease(tc.race, tc.ability))
		})
	}
}

func (s *StatsTestSuite) TestProficiencyBonus() {
	expected := map[int]int{1: 2, 4: 2, 5: 3, 8: 3, 9: 4, 12: 4, 13: 5, 16: 5, 17: 6, 20: 6}
	for level, want := range expected {
		s.Equal(want, calculators.ProficiencyBonus(level), "level %d", level)
	}

	for level := 1; level <= 20; level++ {
		s.Equal(2+(level-1)/4, calculators.ProficiencyBonus(level))
	}
}

func (s *StatsTestSuite) TestEstimatedHP() {
	testCases := []struct {
		name   string
		hitDie int
		level  int
		con    int
		want   int
	}{
		{name: "wizard level 1", hitDie: 6, level: 1, con: 0, want: 6},
		{name: "fighter level 1 with con", hitDie: 10, level: 1, con: 2, want: 12},
		{name: "fighter level 5 with con", hitDie: 10, level: 5, con: 2, want: 12 + 4*8},
		{name: "barbarian level 3 negative con", hitDie: 12, level: 3, con: -1, want: 11 + 2*6},
		{name: "each level gives at least one", hitDie: 6, level: 3, con: -5, want: 1 + 2*1},
		{name: "no class", hitDie: 0, level: 3, con: 2, want: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, calculators.EstimatedHP(tc.hitDie, tc.level, tc.con))
		})
	}
}

func (s *StatsTestSuite) TestDerive() {
	base := dnd5e.AbilityScores{
		Strength: 8, Dexterity: 14, Constitution: 13,
		Intelligence: 15, Wisdom: 12, Charisma: 10,
	}
	draft := builders.NewCharacterDraftBuilder().
		WithName("Aria").
		WithRace(s.elf).
		WithClass(&dnd5e.Class{ID: dnd5e.ClassWizard, Name: "Wizard", HitDie: 6}).
		Build()

	stats := calculators.Derive(draft, &base)

	s.Equal(16, stats.FinalScores.Dexterity)
	s.Equal(16, stats.FinalScores.Intelligence)
	s.Equal(3, stats.Modifiers.Dexterity)
	s.Equal(-1, stats.Modifiers.Strength)
	s.Equal(2, stats.ProficiencyBonus)
	s.Require().NotNil(stats.ArmorClass)
	s.Equal(13, *stats.ArmorClass)
	s.Require().NotNil(stats.HitPoints)
	s.Equal(7, *stats.HitPoints)
}

func (s *StatsTestSuite) TestDeriveWithoutSelections() {
	stats := calculators.Derive(&dnd5e.CharacterDraft{}, nil)

	s.Equal(dnd5e.DefaultAbilityScores(), stats.FinalScores)
	s.Nil(stats.HitPoints)
	s.Equal(2, stats.ProficiencyBonus)

	s.NotPanics(func() { calculators.Derive(nil, nil) })
}

func (s *StatsTestSuite) TestDeriveIsIdempotent() {
	base := dnd5e.AbilityScores{Strength: 15, Dexterity: 12, Constitution: 14, Intelligence: 8, Wisdom: 10, Charisma: 13}
	draft := builders.NewCharacterDraftBuilder().
		WithRace(s.elf).
		WithClass(&dnd5e.Class{HitDie: 10}).
		WithLevel(7).
		Build()

	first := calculators.Derive(draft, &base)
	second := calculators.Derive(draft, &base)

	s.Equal(first, second)
	s.NotSame(first, second)
	s.Equal(dnd5e.AbilityScores{Strength: 15, Dexterity: 12, Constitution: 14, Intelligence: 8, Wisdom: 10, Charisma: 13}, base)
}
