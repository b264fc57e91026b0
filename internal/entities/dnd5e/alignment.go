package dnd5e

import "strings"

// Alignment is one of the nine moral/ethical alignments
type Alignment string

// Alignment constants
const (
	AlignmentLawfulGood     Alignment = "ALIGNMENT_LAWFUL_GOOD"
	AlignmentNeutralGood    Alignment = "ALIGNMENT_NEUTRAL_GOOD"
	AlignmentChaoticGood    Alignment = "ALIGNMENT_CHAOTIC_GOOD"
	AlignmentLawfulNeutral  Alignment = "ALIGNMENT_LAWFUL_NEUTRAL"
	AlignmentTrueNeutral    Alignment = "ALIGNMENT_TRUE_NEUTRAL"
	AlignmentChaoticNeutral Alignment = "ALIGNMENT_CHAOTIC_NEUTRAL"
	AlignmentLawfulEvil     Alignment = "ALIGNMENT_LAWFUL_EVIL"
	AlignmentNeutralEvil    Alignment = "ALIGNMENT_NEUTRAL_EVIL"
	AlignmentChaoticEvil    Alignment = "ALIGNMENT_CHAOTIC_EVIL"
)

// Alignments lists all nine in grid order
var Alignments = []Alignment{
	AlignmentLawfulGood,
	AlignmentNeutralGood,
	AlignmentChaoticGood,
	AlignmentLawfulNeutral,
	AlignmentTrueNeutral,
	AlignmentChaoticNeutral,
	AlignmentLawfulEvil,
	AlignmentNeutralEvil,
	AlignmentChaoticEvil,
}

var alignmentNames = map[Alignment]string{
	AlignmentLawfulGood:     "Lawful Good",
	AlignmentNeutralGood:    "Neutral Good",
	AlignmentChaoticGood:    "Chaotic Good",
	AlignmentLawfulNeutral:  "Lawful Neutral",
	AlignmentTrueNeutral:    "True Neutral",
	AlignmentChaoticNeutral: "Chaotic Neutral",
	AlignmentLawfulEvil:     "Lawful Evil",
	AlignmentNeutralEvil:    "Neutral Evil",
	AlignmentChaoticEvil:    "Chaotic Evil",
}

// DisplayName returns the human readable name, e.g. "Neutral Good"
func (a Alignment) DisplayName() string {
	return alignmentNames[a]
}

// IsValid reports whether a is one of the nine alignments
func (a Alignment) IsValid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ParseAlignment accepts "Neutral Good", "neutral-good", "NEUTRAL_GOOD" or
// "ALIGNMENT_NEUTRAL_GOOD". A lone "Neutral" means True Neutral.
func ParseAlignment(s string) (Alignment, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	key = strings.TrimPrefix(key, "ALIGNMENT_")
	if key == "NEUTRAL" || key == "NEUTRAL_NEUTRAL" {
		key = "TRUE_NEUTRAL"
	}

	a := Alignment("ALIGNMENT_" + key)
	if !a.IsValid() {
		return "", false
	}
	return a, true
}
