package external

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	internalDnd5e "github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
)

// mockDND5eClient is a mock implementation of the reference API for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func newTestClient() (*client, *mockDND5eClient) {
	m := new(mockDND5eClient)
	return &client{dnd5eClient: m, rules: rules.Default()}, m
}

func elfFixture() *entities.Race {
	return &entities.Race{
		Key:   "elf",
		Name:  "Elf",
		Speed: 30,
		Size:  "Medium",
		AbilityBonuses: []*entities.AbilityBonus{
			{AbilityScore: &entities.ReferenceItem{Key: "dex", Name: "DEX"}, Bonus: 2},
			{AbilityScore: nil, Bonus: 1},
		},
		Traits: []*entities.ReferenceItem{
			{Key: "darkvision", Name: "Darkvision"},
			{Key: "trance", Name: "Trance"},
		},
		Languages: []*entities.ReferenceItem{
			{Key: "common", Name: "Common"},
			{Key: "elvish", Name: "Elvish"},
		},
	}
}

func TestIDFormat(t *testing.T) {
	assert.Equal(t, "half-elf", toAPIFormat("RACE_HALF_ELF"))
	assert.Equal(t, "wizard", toAPIFormat("CLASS_WIZARD"))
	assert.Equal(t, "elf", toAPIFormat("elf"))
	assert.Equal(t, "RACE_HALF_ELF", fromAPIFormat("half-elf", prefixRace))
	assert.Equal(t, "SAGE", fromAPIFormat("sage", ""))
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.NotZero(t, cfg.CacheTTL)
	assert.NotNil(t, cfg.Rules)

	cfg = &Config{HTTPTimeout: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTPTimeout")
}

func TestListAvailableRaces(t *testing.T) {
	t.Run("loads details for every reference", func(t *testing.T) {
		c, m := newTestClient()
		refs := []*entities.ReferenceItem{
			{Key: "elf", Name: "Elf"},
			nil,
			{Key: "dwarf", Name: "Dwarf"},
		}
		m.On("ListRaces").Return(refs, nil)
		m.On("GetRace", "elf").Return(elfFixture(), nil)
		m.On("GetRace", "dwarf").Return(&entities.Race{Key: "dwarf", Name: "Dwarf", Size: "Medium"}, nil)

		races, err := c.ListAvailableRaces(context.Background())

		require.NoError(t, err)
		require.Len(t, races, 2)
		assert.Equal(t, internalDnd5e.RaceElf, races[0].ID)
		assert.Equal(t, 30, races[0].Speed)
		assert.Equal(t, []internalDnd5e.AbilityBonus{{Ability: "dexterity", Bonus: 2}}, races[0].AbilityBonuses)
		assert.Equal(t, []string{"Darkvision", "Trance"}, races[0].Traits)
		assert.Equal(t, []string{"Common", "Elvish"}, races[0].Languages)
		assert.Equal(t, internalDnd5e.RaceDwarf, races[1].ID)
		assert.Empty(t, races[1].Traits)

		m.AssertExpectations(t)
	})

	t.Run("listing failure is retryable", func(t *testing.T) {
		c, m := newTestClient()
		m.On("ListRaces").Return(([]*entities.ReferenceItem)(nil), stderrors.New("connection refused"))

		races, err := c.ListAvailableRaces(context.Background())

		assert.Nil(t, races)
		assert.True(t, errors.IsUnavailable(err))
		assert.True(t, errors.IsRetryable(err))
		assert.Contains(t, err.Error(), "failed to list races")
	})

	t.Run("detail failure fails the listing", func(t *testing.T) {
		c, m := newTestClient()
		m.On("ListRaces").Return([]*entities.ReferenceItem{{Key: "elf", Name: "Elf"}}, nil)
		m.On("GetRace", "elf").Return((*entities.Race)(nil), stderrors.New("timeout"))

		races, err := c.ListAvailableRaces(context.Background())

		assert.Nil(t, races)
		assert.True(t, errors.IsRetryable(err))
	})
}

func TestGetRaceData(t *testing.T) {
	c, m := newTestClient()
	m.On("GetRace", "elf").Return(elfFixture(), nil)

	race, err := c.GetRaceData(context.Background(), internalDnd5e.RaceElf)
	require.NoError(t, err)
	assert.Equal(t, internalDnd5e.RaceElf, race.ID)
	assert.Equal(t, "Elf", race.Name)

	_, err = c.GetRaceData(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestListAvailableClasses(t *testing.T) {
	t.Run("enriches from class profiles", func(t *testing.T) {
		c, m := newTestClient()
		m.On("ListClasses").Return([]*entities.ReferenceItem{{Key: "wizard", Name: "Wizard"}}, nil)
		m.On("GetClass", "wizard").Return(&entities.Class{
			Key:    "wizard",
			Name:   "Wizard",
			HitDie: 6,
			SavingThrows: []*entities.ReferenceItem{
				{Key: "int", Name: "INT"},
				{Key: "wis", Name: "WIS"},
			},
		}, nil)
		m.On("GetClassLevel", "wizard", 1).Return(&entities.Level{
			Features: []*entities.ReferenceItem{
				{Key: "spellcasting-wizard", Name: "Spellcasting"},
				{Key: "arcane-recovery", Name: "Arcane Recovery"},
			},
		}, nil)

		classes, err := c.ListAvailableClasses(context.Background())

		require.NoError(t, err)
		require.Len(t, classes, 1)
		wizard := classes[0]
		assert.Equal(t, internalDnd5e.ClassWizard, wizard.ID)
		assert.Equal(t, 6, wizard.HitDie)
		assert.Equal(t, []string{"intelligence", "wisdom"}, wizard.SavingThrows)
		assert.Equal(t, []string{"Spellcasting", "Arcane Recovery"}, wizard.Features)
		assert.True(t, wizard.Spellcasting)
		assert.Equal(t, internalDnd5e.RoleCaster, wizard.Role)
		assert.Equal(t, 2, wizard.SubclassLevel)
		assert.Equal(t, []string{"intelligence"}, wizard.PrimaryAbilities)

		m.AssertExpectations(t)
	})

	t.Run("missing level one falls back to rule table features", func(t *testing.T) {
		c, m := newTestClient()
		m.On("ListClasses").Return([]*entities.ReferenceItem{{Key: "fighter", Name: "Fighter"}}, nil)
		m.On("GetClass", "fighter").Return(&entities.Class{Key: "fighter", Name: "Fighter", HitDie: 10}, nil)
		m.On("GetClassLevel", "fighter", 1).Return((*entities.Level)(nil), stderrors.New("not found"))

		classes, err := c.ListAvailableClasses(context.Background())

		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.NotEmpty(t, classes[0].Features)
		assert.False(t, classes[0].Spellcasting)
		assert.Equal(t, internalDnd5e.RoleMartial, classes[0].Role)
	})

	t.Run("canceled context stops the load", func(t *testing.T) {
		c, m := newTestClient()
		m.On("ListClasses").Return([]*entities.ReferenceItem{{Key: "fighter", Name: "Fighter"}}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ListAvailableClasses(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		m.AssertNotCalled(t, "GetClass", "fighter")
	})
}

func TestListAvailableBackgrounds(t *testing.T) {
	c, m := newTestClient()
	m.On("ListBackgrounds").Return([]*entities.ReferenceItem{
		{Key: "acolyte", Name: "Acolyte"},
		{Key: "haunted-one", Name: "Haunted One"},
	}, nil)

	backgrounds, err := c.ListAvailableBackgrounds(context.Background())

	require.NoError(t, err)
	require.Len(t, backgrounds, len(rules.Default().Backgrounds())+1)

	assert.Equal(t, internalDnd5e.BackgroundAcolyte, backgrounds[0].ID)
	assert.True(t, backgrounds[0].GrantsFeat)
	assert.NotEmpty(t, backgrounds[0].SkillProficiencies)

	assert.Equal(t, "BACKGROUND_HAUNTED_ONE", backgrounds[1].ID)
	assert.Equal(t, "Haunted One", backgrounds[1].Name)
	assert.False(t, backgrounds[1].GrantsFeat)

	sage, err := c.GetBackgroundData(context.Background(), internalDnd5e.BackgroundSage)
	require.NoError(t, err)
	assert.Equal(t, "Sage", sage.Name)

	_, err = c.GetBackgroundData(context.Background(), "BACKGROUND_NOPE")
	assert.True(t, errors.IsNotFound(err))
}
