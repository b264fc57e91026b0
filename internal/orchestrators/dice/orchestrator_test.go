package dice_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/idgen"
)

// scriptedRoller returns queued results in order
type scriptedRoller struct {
	results [][]int
	err     error
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	vals, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

func (r *scriptedRoller) RollN(_, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	next := r.results[0]
	r.results = r.results[1:]
	return next, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	roller *scriptedRoller
	svc    dice.Service
	ctx    context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.roller = &scriptedRoller{}
	svc, err := dice.NewOrchestrator(&dice.Config{
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roller")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestFourDropLowest() {
	s.roller.results = [][]int{
		{6, 6, 6, 1},
		{5, 4, 3, 2},
		{1, 1, 1, 1},
		{6, 5, 4, 3},
		{2, 3, 4, 5},
		{3, 3, 3, 3},
	}

	out, err := s.svc.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		PrimaryAbilities: []string{"intelligence"},
	})
	s.Require().NoError(err)

	s.Equal(dice.MethodStandard, out.Method)
	s.Require().Len(out.Rolls, 6)
	s.Equal([]int{6, 6, 6}, out.Rolls[0].Dice)
	s.Equal([]int{1}, out.Rolls[0].Dropped)
	s.Equal(18, out.Rolls[0].Total)
	s.Equal("roll_1", out.Rolls[0].RollID)

	// 18, 15, 12, 12, 9, 3 handed out int, con, dex, str, wis, cha
	s.Equal(dnd5e.AbilityScores{
		Strength: 12, Dexterity: 12, Constitution: 15,
		Intelligence: 18, Wisdom: 9, Charisma: 3,
	}, out.Scores)
	s.Equal(dnd5e.AbilityIntelligence, out.Rolls[0].Ability)
}

func (s *OrchestratorTestSuite) TestClassic() {
	s.roller.results = [][]int{{1, 2, 3}, {4, 4, 4}, {6, 6, 6}, {2, 2, 2}, {3, 3, 3}, {5, 5, 5}}

	out, err := s.svc.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{Method: dice.MethodClassic})
	s.Require().NoError(err)

	s.Empty(out.Rolls[0].Dropped)
	s.Equal(6, out.Rolls[0].Total)
	s.Equal(18, out.Scores.Constitution)
	s.Equal(15, out.Scores.Dexterity)
}

func (s *OrchestratorTestSuite) TestStandardArray() {
	out, err := s.svc.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Method:           dice.MethodStandardArray,
		PrimaryAbilities: []string{"strength", "constitution"},
	})
	s.Require().NoError(err)

	s.Equal(dnd5e.AbilityScores{
		Strength: 15, Constitution: 14, Dexterity: 13,
		Wisdom: 12, Intelligence: 10, Charisma: 8,
	}, out.Scores)
}

func (s *OrchestratorTestSuite) TestErrors() {
	testCases := []struct {
		name  string
		input *dice.RollAbilityScoresInput
		setup func()
		check func(error)
	}{
		{
			name:  "nil input",
			input: nil,
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name:  "unknown method",
			input: &dice.RollAbilityScoresInput{Method: "point_buy"},
			check: func(err error) { s.True(errors.IsInvalidArgument(err)) },
		},
		{
			name:  "roller failure",
			input: &dice.RollAbilityScoresInput{Method: dice.MethodClassic},
			setup: func() { s.roller.err = stderrors.New("entropy exhausted") },
			check: func(err error) { s.Contains(err.Error(), "failed to roll ability score 1") },
		},
		{
			name:  "short roll",
			input: &dice.RollAbilityScoresInput{Method: dice.MethodStandard},
			setup: func() { s.roller.results = [][]int{{6, 6}} },
			check: func(err error) { s.True(errors.IsInternal(err)) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.err = nil
			if tc.setup != nil {
				tc.setup()
			}
			out, err := s.svc.RollAbilityScores(s.ctx, tc.input)
			s.Nil(out)
			s.Require().Error(err)
			tc.check(err)
		})
	}
}

func (s *OrchestratorTestSuite) TestAssignmentOrder() {
	order := dice.AssignmentOrder([]string{"WIS", "bogus", "wisdom", "dex"})
	s.Equal([]dnd5e.Ability{
		dnd5e.AbilityWisdom, dnd5e.AbilityDexterity, dnd5e.AbilityConstitution,
		dnd5e.AbilityStrength, dnd5e.AbilityIntelligence, dnd5e.AbilityCharisma,
	}, order)
}
