package selectors

import (
	"strings"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

// Catalog names as used on the wire
const (
	CatalogRaces       = "races"
	CatalogClasses     = "classes"
	CatalogSubclasses  = "subclasses"
	CatalogBackgrounds = "backgrounds"
	CatalogFeats       = "feats"
)

// Filter names per catalog
const (
	FilterSize              = "size"
	FilterMajorAbilityBonus = "major-ability-bonus"
	FilterSpellcasting      = "spellcasting"
	FilterMartial           = "martial"
	FilterBeginner          = "beginner"
	FilterClass             = "class"
	FilterGrantsFeat        = "grants-feat"
	FilterSkill             = "skill"
	FilterCategory          = "category"
	FilterAvailable         = "available"
)

// MajorAbilityBonus is the smallest racial increase the major-ability-bonus
// filter counts
const MajorAbilityBonus = 2

// Options carries the pieces every catalog selector shares
type Options[T Record] struct {
	Candidates []T
	Selected   T
	OnSelect   func(T)
	Loading    bool
}

// NewRaceSelector filters races by size or by a +2 (or better) increase,
// optionally to a named ability
func NewRaceSelector(opts Options[*dnd5e.Race]) *Selector[*dnd5e.Race] {
	return New(Config[*dnd5e.Race]{
		Candidates: opts.Candidates,
		Selected:   opts.Selected,
		OnSelect:   opts.OnSelect,
		Loading:    opts.Loading,
		Name:       func(r *dnd5e.Race) string { return r.Name },
		Fields: func(r *dnd5e.Race) []string {
			return append([]string{r.Description}, r.Traits...)
		},
		Filters: []Filter[*dnd5e.Race]{
			{
				Name:          FilterSize,
				RequiresValue: true,
				Match: func(r *dnd5e.Race, size string) bool {
					return textsearch.Equal(r.Size, size)
				},
			},
			{
				Name:  FilterMajorAbilityBonus,
				Match: hasMajorBonus,
			},
		},
	})
}

func hasMajorBonus(r *dnd5e.Race, ability string) bool {
	want, named := dnd5e.ParseAbility(ability)
	for _, b := range r.AbilityBonuses {
		if b.Bonus < MajorAbilityBonus {
			continue
		}
		if !named {
			return true
		}
		if got, ok := dnd5e.ParseAbility(b.Ability); ok && got == want {
			return true
		}
	}
	return false
}

// NewClassSelector filters classes by spellcasting, martial role or beginner
// complexity
func NewClassSelector(opts Options[*dnd5e.Class]) *Selector[*dnd5e.Class] {
	return New(Config[*dnd5e.Class]{
		Candidates: opts.Candidates,
		Selected:   opts.Selected,
		OnSelect:   opts.OnSelect,
		Loading:    opts.Loading,
		Name:       func(c *dnd5e.Class) string { return c.Name },
		Fields: func(c *dnd5e.Class) []string {
			return append([]string{c.Description}, c.Features...)
		},
		Filters: []Filter[*dnd5e.Class]{
			{
				Name:  FilterSpellcasting,
				Match: func(c *dnd5e.Class, _ string) bool { return c.Spellcasting },
			},
			{
				Name:  FilterMartial,
				Match: func(c *dnd5e.Class, _ string) bool { return c.Role == dnd5e.RoleMartial },
			},
			{
				Name:  FilterBeginner,
				Match: func(c *dnd5e.Class, _ string) bool { return c.Complexity == dnd5e.ComplexityBeginner },
			},
		},
	})
}

// NewSubclassSelector filters subclasses by parent class
func NewSubclassSelector(opts Options[*dnd5e.Subclass]) *Selector[*dnd5e.Subclass] {
	return New(Config[*dnd5e.Subclass]{
		Candidates: opts.Candidates,
		Selected:   opts.Selected,
		OnSelect:   opts.OnSelect,
		Loading:    opts.Loading,
		Name:       func(s *dnd5e.Subclass) string { return s.Name },
		Fields: func(s *dnd5e.Subclass) []string {
			return append([]string{s.Description}, s.Features...)
		},
		Filters: []Filter[*dnd5e.Subclass]{
			{
				Name:          FilterClass,
				RequiresValue: true,
				Match: func(s *dnd5e.Subclass, classID string) bool {
					return strings.EqualFold(s.ClassID, classID)
				},
			},
		},
	})
}

// NewBackgroundSelector filters backgrounds by feat grant or skill
func NewBackgroundSelector(opts Options[*dnd5e.Background]) *Selector[*dnd5e.Background] {
	return New(Config[*dnd5e.Background]{
		Candidates: opts.Candidates,
		Selected:   opts.Selected,
		OnSelect:   opts.OnSelect,
		Loading:    opts.Loading,
		Name:       func(b *dnd5e.Background) string { return b.Name },
		Fields: func(b *dnd5e.Background) []string {
			return []string{b.Description, b.FeatureName}
		},
		Filters: []Filter[*dnd5e.Background]{
			{
				Name:  FilterGrantsFeat,
				Match: func(b *dnd5e.Background, _ string) bool { return b.GrantsFeat },
			},
			{
				Name:          FilterSkill,
				RequiresValue: true,
				Match: func(b *dnd5e.Background, skill string) bool {
					for _, s := range b.SkillProficiencies {
						if textsearch.Equal(s, skill) {
							return true
						}
					}
					return false
				},
			},
		},
	})
}

// NewFeatSelector filters feats by category or by whether draft meets their
// prerequisites
func NewFeatSelector(opts Options[*dnd5e.Feat], draft *dnd5e.CharacterDraft) *Selector[*dnd5e.Feat] {
	return New(Config[*dnd5e.Feat]{
		Candidates: opts.Candidates,
		Selected:   opts.Selected,
		OnSelect:   opts.OnSelect,
		Loading:    opts.Loading,
		Name:       func(f *dnd5e.Feat) string { return f.Name },
		Fields: func(f *dnd5e.Feat) []string {
			return append([]string{f.Description}, f.Benefits...)
		},
		Filters: []Filter[*dnd5e.Feat]{
			{
				Name:          FilterCategory,
				RequiresValue: true,
				Match: func(f *dnd5e.Feat, category string) bool {
					return textsearch.Equal(f.Category, category)
				},
			},
			{
				Name: FilterAvailable,
				Match: func(f *dnd5e.Feat, _ string) bool {
					return len(rules.UnmetPrerequisites(f, draft)) == 0
				},
			},
		},
	})
}
