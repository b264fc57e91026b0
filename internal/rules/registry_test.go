package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *rules.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = rules.Default()
}

func featIDs(feats []*dnd5e.Feat) []string {
	ids := make([]string, len(feats))
	for i, f := range feats {
		ids[i] = f.ID
	}
	return ids
}

func (s *RegistryTestSuite) feat(id string) *dnd5e.Feat {
	for _, f := range s.registry.Feats() {
		if f.ID == id {
			return f
		}
	}
	s.FailNow("feat not registered", id)
	return nil
}

func (s *RegistryTestSuite) TestRegisterFeat() {
	r := rules.New()

	s.Require().NoError(r.RegisterFeat(&dnd5e.Feat{ID: "alert", Name: "Alert"}))

	err := r.RegisterFeat(&dnd5e.Feat{ID: "alert", Name: "Alert again"})
	s.True(errors.IsAlreadyExists(err))

	err = r.RegisterFeat(&dnd5e.Feat{Name: "Nameless"})
	s.True(errors.IsInvalidArgument(err))

	s.True(errors.IsInvalidArgument(r.RegisterFeat(nil)))
	s.Len(r.Feats(), 1)
}

func (s *RegistryTestSuite) TestSearchFeats() {
	testCases := []struct {
		name     string
		text     string
		contains []string
		excludes []string
	}{
		{name: "by name any case", text: "LUCK", contains: []string{"lucky"}, excludes: []string{"alert"}},
		{name: "by description", text: "ranged weapons", contains: []string{"sharpshooter", "archery"}},
		{name: "by benefit", text: "initiative", contains: []string{"alert"}},
		{name: "empty matches all", text: "", contains: []string{"alert", "tough", "boon-of-combat-prowess"}},
		{name: "no match", text: "zzz", excludes: []string{"alert"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ids := featIDs(s.registry.SearchFeats(tc.text))
			for _, id := range tc.contains {
				s.Contains(ids, id)
			}
			for _, id := range tc.excludes {
				s.NotContains(ids, id)
			}
		})
	}
}

func (s *RegistryTestSuite) TestFeatsByCategory() {
	origin := s.registry.FeatsByCategory("ORIGIN")
	s.NotEmpty(origin)
	for _, f := range origin {
		s.Equal(dnd5e.FeatCategoryOrigin, f.Category)
	}

	s.Len(s.registry.FeatsByCategory(""), len(s.registry.Feats()))
	s.Empty(s.registry.FeatsByCategory("mythic"))
	s.Equal([]string{
		dnd5e.FeatCategoryOrigin,
		dnd5e.FeatCategoryGeneral,
		dnd5e.FeatCategoryFightingStyle,
		dnd5e.FeatCategoryEpic,
	}, s.registry.FeatCategories())
}

func (s *RegistryTestSuite) TestUnmetPrerequisites() {
	strong := dnd5e.AbilityScores{Strength: 13, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10, Charisma: 10}
	weak := dnd5e.AbilityScores{Strength: 12, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10, Charisma: 10}
	halfOrc := &dnd5e.Race{ID: dnd5e.RaceHalfOrc, AbilityBonuses: []dnd5e.AbilityBonus{{Ability: "str", Bonus: 2}}}
	wizard := &dnd5e.Class{ID: dnd5e.ClassWizard, Spellcasting: true}
	fighter := &dnd5e.Class{ID: dnd5e.ClassFighter}

	gwm := s.feat("great-weapon-master")
	warCaster := s.feat("war-caster")
	ritual := s.feat("ritual-caster")
	archery := s.feat("archery")
	elven := s.feat("elven-accuracy")

	testCases := []struct {
		name  string
		feat  *dnd5e.Feat
		draft *dnd5e.CharacterDraft
		unmet []string
	}{
		{name: "strength met", feat: gwm, draft: &dnd5e.CharacterDraft{BaseAbilityScores: &strong}},
		{
			name:  "strength missed",
			feat:  gwm,
			draft: &dnd5e.CharacterDraft{BaseAbilityScores: &weak},
			unmet: []string{"Strength 13 or higher"},
		},
		{name: "racial bonus counts", feat: gwm, draft: &dnd5e.CharacterDraft{Race: halfOrc, BaseAbilityScores: &weak}},
		{name: "spellcasting met", feat: warCaster, draft: &dnd5e.CharacterDraft{Class: wizard}},
		{
			name:  "spellcasting missed",
			feat:  warCaster,
			draft: &dnd5e.CharacterDraft{Class: fighter},
			unmet: []string{"The ability to cast at least one spell"},
		},
		{
			name:  "alternative abilities and level",
			feat:  ritual,
			draft: &dnd5e.CharacterDraft{Level: 1},
			unmet: []string{"Intelligence or Wisdom or Charisma 13 or higher", "Level 4 or higher"},
		},
		{name: "class alternatives", feat: archery, draft: &dnd5e.CharacterDraft{Class: fighter}},
		{
			name:  "class missed",
			feat:  archery,
			draft: &dnd5e.CharacterDraft{Class: wizard},
			unmet: []string{"Class: Fighter or Ranger"},
		},
		{
			name:  "race missed without a race",
			feat:  elven,
			draft: nil,
			unmet: []string{"Race: Elf or Half Elf"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.unmet, rules.UnmetPrerequisites(tc.feat, tc.draft))
		})
	}
}

func (s *RegistryTestSuite) TestClassFeatures() {
	level1 := s.registry.ClassFeatures(dnd5e.ClassFighter, 1)
	s.Require().Len(level1, 2)

	all := s.registry.ClassFeatures(dnd5e.ClassFighter, 0)
	s.Greater(len(all), len(level1))
	for i := 1; i < len(all); i++ {
		s.LessOrEqual(all[i-1].Level, all[i].Level)
	}

	s.ElementsMatch([]string{"fighting-style-fighter", "second-wind"}, []string{level1[0].ID, level1[1].ID})

	matches := s.registry.SearchClassFeatures("", "extra attack")
	s.Len(matches, 2)
	s.Len(s.registry.SearchClassFeatures(dnd5e.ClassRogue, "dodge"), 1)
	s.Empty(s.registry.ClassFeatures("CLASS_ARTIFICER", 20))
}

func (s *RegistryTestSuite) TestSubclasses() {
	s.Equal(2, s.registry.SubclassUnlockLevel(dnd5e.ClassWizard))
	s.Equal(1, s.registry.SubclassUnlockLevel(dnd5e.ClassCleric))
	s.Equal(0, s.registry.SubclassUnlockLevel("CLASS_UNKNOWN"))

	for _, sc := range s.registry.Subclasses(dnd5e.ClassWizard) {
		s.Equal(dnd5e.ClassWizard, sc.ClassID)
	}

	var champion *dnd5e.Subclass
	for _, sc := range s.registry.Subclasses(dnd5e.ClassFighter) {
		if sc.ID == "champion" {
			champion = sc
		}
	}
	s.Require().NotNil(champion)
	s.Equal(dnd5e.ClassFighter, champion.ClassID)

	ids := s.registry.ClassIDs()
	s.Len(ids, 12)
	s.IsIncreasing(ids)
}

func (s *RegistryTestSuite) TestBackgrounds() {
	s.Len(s.registry.Backgrounds(), 13)

	sage, ok := s.registry.Background(dnd5e.BackgroundSage)
	s.Require().True(ok)
	s.True(sage.GrantsFeat)

	folk, ok := s.registry.Background(dnd5e.BackgroundFolkHero)
	s.Require().True(ok)
	s.False(folk.GrantsFeat)
}
