package dnd5e

// Race is a playable race as fetched from the reference API
type Race struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Speed          int            `json:"speed"`
	Size           string         `json:"size"`
	AbilityBonuses []AbilityBonus `json:"ability_bonuses,omitempty"`
	Traits         []string       `json:"traits,omitempty"`
	Languages      []string       `json:"languages,omitempty"`
}

// Class is a playable class as fetched from the reference API and
// enriched with the rule tables' selector metadata
type Class struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	HitDie           int      `json:"hit_die"`
	PrimaryAbilities []string `json:"primary_abilities,omitempty"`
	SavingThrows     []string `json:"saving_throws,omitempty"`
	Spellcasting     bool     `json:"spellcasting"`
	Role             string   `json:"role,omitempty"`
	Complexity       string   `json:"complexity,omitempty"`
	// SubclassLevel is the level the subclass choice unlocks at; 0 means never
	SubclassLevel int      `json:"subclass_level"`
	Features      []string `json:"features,omitempty"`
}

// Subclass is a specialization of a class
type Subclass struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ClassID     string   `json:"class_id"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Background is a character background
type Background struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	SkillProficiencies []string `json:"skill_proficiencies,omitempty"`
	ToolProficiencies  []string `json:"tool_proficiencies,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	FeatureName        string   `json:"feature_name,omitempty"`
	GrantsFeat         bool     `json:"grants_feat"`
}

// Prerequisite is one requirement a feat places on a character
type Prerequisite struct {
	Kind    string `json:"kind"`
	Ability string `json:"ability,omitempty"`
	Minimum int    `json:"minimum,omitempty"`
	Value   string `json:"value,omitempty"`
}

// Feat is an optional feature a character may take
type Feat struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Prerequisites []Prerequisite `json:"prerequisites,omitempty"`
	Benefits      []string       `json:"benefits,omitempty"`
}

// ClassFeature is a feature a class gains at a level
type ClassFeature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClassID     string `json:"class_id"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// Catalogs bundles the three reference collections loaded at wizard start
type Catalogs struct {
	Races       []*Race       `json:"races"`
	Classes     []*Class      `json:"classes"`
	Backgrounds []*Background `json:"backgrounds"`
}

// GetID returns the record id, or "" for a nil record
func (r *Race) GetID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

// GetID returns the record id, or "" for a nil record
func (c *Class) GetID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

// GetID returns the record id, or "" for a nil record
func (s *Subclass) GetID() string {
	if s == nil {
		return ""
	}
	return s.ID
}

// GetID returns the record id, or "" for a nil record
func (b *Background) GetID() string {
	if b == nil {
		return ""
	}
	return b.ID
}

// GetID returns the record id, or "" for a nil record
func (f *Feat) GetID() string {
	if f == nil {
		return ""
	}
	return f.ID
}
