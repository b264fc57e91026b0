// Package dice generates base ability scores for character creation
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/idgen"
)

// Ability score generation methods
const (
	MethodStandard      = "4d6_drop_lowest"
	MethodClassic       = "3d6"
	MethodStandardArray = "standard_array"
)

// Methods lists the supported generation methods
var Methods = []string{MethodStandard, MethodClassic, MethodStandardArray}

// StandardArray is the fixed set of scores handed out highest first
var StandardArray = []int{15, 14, 13, 12, 10, 8}

// fallbackOrder ranks the abilities a class doesn't name as primary
var fallbackOrder = []dnd5e.Ability{
	dnd5e.AbilityConstitution,
	dnd5e.AbilityDexterity,
	dnd5e.AbilityStrength,
	dnd5e.AbilityWisdom,
	dnd5e.AbilityIntelligence,
	dnd5e.AbilityCharisma,
}

// Service defines the interface for ability score generation
type Service interface {
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
	}, nil
}

// RollAbilityScores generates six scores with the requested method and
// assigns them highest first to the primary abilities, then the rest
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	method := input.Method
	if method == "" {
		method = MethodStandard
	}

	var rolls []*Roll
	switch method {
	case MethodStandard:
		for i := 0; i < len(dnd5e.Abilities); i++ {
			roll, err := o.rollDice(4, 6, 1)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
			}
			rolls = append(rolls, roll)
		}
	case MethodClassic:
		for i := 0; i < len(dnd5e.Abilities); i++ {
			roll, err := o.rollDice(3, 6, 0)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
			}
			rolls = append(rolls, roll)
		}
	case MethodStandardArray:
		for _, v := range StandardArray {
			rolls = append(rolls, &Roll{RollID: o.idGen.Generate(), Notation: MethodStandardArray, Total: v})
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := assign(rolls, AssignmentOrder(input.PrimaryAbilities))

	slog.Info("Ability scores generated",
		"method", method,
		"scores", fmt.Sprintf("%+v", scores),
	)

	return &RollAbilityScoresOutput{
		Method: method,
		Rolls:  rolls,
		Scores: scores,
	}, nil
}

// rollDice rolls count dice of size and drops the lowest drop of them
func (o *orchestrator) rollDice(count, size, drop int) (*Roll, error) {
	values, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, err
	}
	if len(values) != count {
		return nil, errors.Internalf("roller returned %d dice, expected %d", len(values), count)
	}

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	dropped := sorted[:drop]
	kept := sorted[drop:]

	total := 0
	for _, v := range kept {
		total += v
	}

	roll := &Roll{
		RollID:   o.idGen.Generate(),
		Notation: fmt.Sprintf("%dd%d", count, size),
		Dice:     kept,
		Total:    total,
	}
	if drop > 0 {
		roll.Notation += "dl"
		roll.Dropped = dropped
	}
	return roll, nil
}

// AssignmentOrder lists all six abilities with the named primaries first.
// Unknown or repeated names are skipped.
func AssignmentOrder(primary []string) []dnd5e.Ability {
	seen := make(map[dnd5e.Ability]bool, len(dnd5e.Abilities))
	order := make([]dnd5e.Ability, 0, len(dnd5e.Abilities))
	for _, name := range primary {
		a, ok := dnd5e.ParseAbility(name)
		if !ok || seen[a] {
			continue
		}
		seen[a] = true
		order = append(order, a)
	}
	for _, a := range fallbackOrder {
		if !seen[a] {
			seen[a] = true
			order = append(order, a)
		}
	}
	return order
}

// assign hands the totals out highest first. Rolls keep their order and
// are tagged with the ability they landed on.
func assign(rolls []*Roll, order []dnd5e.Ability) dnd5e.AbilityScores {
	ranked := append([]*Roll(nil), rolls...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })

	scores := dnd5e.DefaultAbilityScores()
	for i, r := range ranked {
		if i >= len(order) {
			break
		}
		r.Ability = order[i]
		scores.Set(order[i], r.Total)
	}
	return scores
}
