// Package rules holds the static D&D 5e tables the wizard needs beyond what
// the reference API serves: feats, class features, subclasses, class and
// background metadata. Tables are read-only once registered.
package rules

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-character-wizard/internal/calculators"
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
)

// ClassProfile is what the tables know about a class independent of the API
type ClassProfile struct {
	ClassID          string
	HitDie           int
	Role             string
	Complexity       string
	SubclassLevel    int
	PrimaryAbilities []string
	Spellcasting     bool
	Description      string
}

// Registry indexes the rule tables. The zero value is not usable; call New
// or Default.
type Registry struct {
	mu            sync.RWMutex
	feats         map[string]*dnd5e.Feat
	featOrder     []string
	classFeatures map[string][]*dnd5e.ClassFeature
	subclasses    map[string][]*dnd5e.Subclass
	classes       map[string]*ClassProfile
	backgrounds   map[string]*dnd5e.Background
	bgOrder       []string
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		feats:         make(map[string]*dnd5e.Feat),
		classFeatures: make(map[string][]*dnd5e.ClassFeature),
		subclasses:    make(map[string][]*dnd5e.Subclass),
		classes:       make(map[string]*ClassProfile),
		backgrounds:   make(map[string]*dnd5e.Background),
	}
}

// Default returns a registry loaded with the built-in tables
func Default() *Registry {
	r := New()
	for _, f := range defaultFeats {
		r.mustRegister(r.RegisterFeat(f))
	}
	for _, cf := range defaultClassFeatures {
		r.mustRegister(r.RegisterClassFeature(cf))
	}
	for _, sc := range defaultSubclasses {
		r.mustRegister(r.RegisterSubclass(sc))
	}
	for _, cp := range defaultClassProfiles {
		r.mustRegister(r.RegisterClassProfile(cp))
	}
	for _, bg := range defaultBackgrounds {
		r.mustRegister(r.RegisterBackground(bg))
	}
	return r
}

func (r *Registry) mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// RegisterFeat adds a feat; ids must be unique
func (r *Registry) RegisterFeat(feat *dnd5e.Feat) error {
	if feat == nil || feat.ID == "" {
		return errors.InvalidArgument("feat id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.feats[feat.ID]; exists {
		return errors.AlreadyExists("feat " + feat.ID + " already registered")
	}
	r.feats[feat.ID] = feat
	r.featOrder = append(r.featOrder, feat.ID)
	return nil
}

// RegisterClassFeature adds a class feature, keeping each class's list in level order
func (r *Registry) RegisterClassFeature(feature *dnd5e.ClassFeature) error {
	if feature == nil || feature.ID == "" || feature.ClassID == "" {
		return errors.InvalidArgument("class feature id and class id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.classFeatures[feature.ClassID], feature)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Level < list[j].Level })
	r.classFeatures[feature.ClassID] = list
	return nil
}

// RegisterSubclass adds a subclass under its class
func (r *Registry) RegisterSubclass(subclass *dnd5e.Subclass) error {
	if subclass == nil || subclass.ID == "" || subclass.ClassID == "" {
		return errors.InvalidArgument("subclass id and class id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.subclasses[subclass.ClassID] = append(r.subclasses[subclass.ClassID], subclass)
	return nil
}

// RegisterClassProfile sets the metadata for a class, replacing any previous profile
func (r *Registry) RegisterClassProfile(profile *ClassProfile) error {
	if profile == nil || profile.ClassID == "" {
		return errors.InvalidArgument("class id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes[profile.ClassID] = profile
	return nil
}

// RegisterBackground adds background metadata
func (r *Registry) RegisterBackground(bg *dnd5e.Background) error {
	if bg == nil || bg.ID == "" {
		return errors.InvalidArgument("background id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backgrounds[bg.ID]; !exists {
		r.bgOrder = append(r.bgOrder, bg.ID)
	}
	r.backgrounds[bg.ID] = bg
	return nil
}

// Feats returns every feat in registration order
func (r *Registry) Feats() []*dnd5e.Feat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*dnd5e.Feat, 0, len(r.featOrder))
	for _, id := range r.featOrder {
		out = append(out, r.feats[id])
	}
	return out
}

// SearchFeats matches text against feat names, descriptions and benefits
func (r *Registry) SearchFeats(text string) []*dnd5e.Feat {
	var out []*dnd5e.Feat
	for _, f := range r.Feats() {
		fields := append([]string{f.Name, f.Description}, f.Benefits...)
		if textsearch.AnyContains(text, fields...) {
			out = append(out, f)
		}
	}
	return out
}

// FeatsByCategory returns feats in category; an empty category returns all
func (r *Registry) FeatsByCategory(category string) []*dnd5e.Feat {
	if category == "" {
		return r.Feats()
	}

	var out []*dnd5e.Feat
	for _, f := range r.Feats() {
		if textsearch.Equal(f.Category, category) {
			out = append(out, f)
		}
	}
	return out
}

// FeatCategories lists the distinct categories in registration order
func (r *Registry) FeatCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range r.Feats() {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}

// UnmetPrerequisites describes every prerequisite of feat the draft misses.
// Ability minimums are checked against racially adjusted scores. Ability and
// class/race values may list alternatives separated by "|".
func UnmetPrerequisites(feat *dnd5e.Feat, draft *dnd5e.CharacterDraft) []string {
	if feat == nil {
		return nil
	}
	if draft == nil {
		draft = &dnd5e.CharacterDraft{}
	}

	var scores dnd5e.AbilityScores
	if draft.BaseAbilityScores != nil {
		scores = calculators.FinalScores(*draft.BaseAbilityScores, draft.Race)
	} else {
		scores = calculators.FinalScores(dnd5e.DefaultAbilityScores(), draft.Race)
	}

	var unmet []string
	for _, p := range feat.Prerequisites {
		if !prerequisiteMet(p, draft, scores) {
			unmet = append(unmet, DescribePrerequisite(p))
		}
	}
	return unmet
}

func prerequisiteMet(p dnd5e.Prerequisite, draft *dnd5e.CharacterDraft, scores dnd5e.AbilityScores) bool {
	switch p.Kind {
	case dnd5e.PrerequisiteAbility:
		for _, name := range alternatives(p.Ability) {
			if a, ok := dnd5e.ParseAbility(name); ok && scores.Get(a) >= p.Minimum {
				return true
			}
		}
		return false
	case dnd5e.PrerequisiteLevel:
		return draft.EffectiveLevel() >= p.Minimum
	case dnd5e.PrerequisiteSpellcasting:
		return draft.Class != nil && draft.Class.Spellcasting
	case dnd5e.PrerequisiteClass:
		return draft.Class != nil && oneOf(draft.Class.ID, p.Value)
	case dnd5e.PrerequisiteRace:
		return draft.Race != nil && oneOf(draft.Race.ID, p.Value)
	default:
		// Unknown kinds can't be evaluated
		return false
	}
}

// DescribePrerequisite renders p for display, e.g. "Strength 13 or higher"
func DescribePrerequisite(p dnd5e.Prerequisite) string {
	switch p.Kind {
	case dnd5e.PrerequisiteAbility:
		names := alternatives(p.Ability)
		for i, n := range names {
			if a, ok := dnd5e.ParseAbility(n); ok {
				names[i] = titleCase(string(a))
			}
		}
		return strings.Join(names, " or ") + " " + strconv.Itoa(p.Minimum) + " or higher"
	case dnd5e.PrerequisiteLevel:
		return "Level " + strconv.Itoa(p.Minimum) + " or higher"
	case dnd5e.PrerequisiteSpellcasting:
		return "The ability to cast at least one spell"
	case dnd5e.PrerequisiteClass:
		return "Class: " + displayIDs(p.Value)
	case dnd5e.PrerequisiteRace:
		return "Race: " + displayIDs(p.Value)
	default:
		return p.Kind
	}
}

// ClassFeatures returns the class's features gained at or below level; level
// 0 returns every level
func (r *Registry) ClassFeatures(classID string, level int) []*dnd5e.ClassFeature {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*dnd5e.ClassFeature
	for _, cf := range r.classFeatures[classID] {
		if level > 0 && cf.Level > level {
			break
		}
		out = append(out, cf)
	}
	return out
}

// SearchClassFeatures matches text against feature names and descriptions
// within one class, or every class when classID is empty
func (r *Registry) SearchClassFeatures(classID, text string) []*dnd5e.ClassFeature {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classIDs := []string{classID}
	if classID == "" {
		classIDs = classIDs[:0]
		for id := range r.classFeatures {
			classIDs = append(classIDs, id)
		}
		sort.Strings(classIDs)
	}

	var out []*dnd5e.ClassFeature
	for _, id := range classIDs {
		for _, cf := range r.classFeatures[id] {
			if textsearch.AnyContains(text, cf.Name, cf.Description) {
				out = append(out, cf)
			}
		}
	}
	return out
}

// Subclasses returns the subclasses of a class
func (r *Registry) Subclasses(classID string) []*dnd5e.Subclass {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*dnd5e.Subclass(nil), r.subclasses[classID]...)
}

// ClassProfile returns the table metadata for a class
func (r *Registry) ClassProfile(classID string) (*ClassProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.classes[classID]
	return p, ok
}

// ClassIDs lists the classes with a profile, sorted
func (r *Registry) ClassIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.classes))
	for id := range r.classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SubclassUnlockLevel returns the level a class picks its subclass at, 0 if unknown
func (r *Registry) SubclassUnlockLevel(classID string) int {
	if p, ok := r.ClassProfile(classID); ok {
		return p.SubclassLevel
	}
	return 0
}

// Background returns background metadata by id
func (r *Registry) Background(id string) (*dnd5e.Background, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bg, ok := r.backgrounds[id]
	return bg, ok
}

// Backgrounds returns every background in registration order
func (r *Registry) Backgrounds() []*dnd5e.Background {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*dnd5e.Background, 0, len(r.bgOrder))
	for _, id := range r.bgOrder {
		out = append(out, r.backgrounds[id])
	}
	return out
}
