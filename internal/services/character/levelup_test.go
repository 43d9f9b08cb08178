package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sheetforge/sheetforge/internal/catalog"
	mockdice "github.com/sheetforge/sheetforge/internal/dice/mock"
	domain "github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/repositories/content"
	charsvc "github.com/sheetforge/sheetforge/internal/services/character"
	mockrepo "github.com/sheetforge/sheetforge/internal/services/character/mock"
	mockuuid "github.com/sheetforge/sheetforge/internal/uuid/mocks"
)

type LevelUpSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mockrepo.MockRepository
	uuidGen *mockuuid.MockGenerator
	roller  *mockdice.ManualMockRoller
	service charsvc.Service
	ctx     context.Context
}

func (s *LevelUpSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockrepo.NewMockRepository(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()
	s.ctx = context.Background()

	s.service = charsvc.NewService(&charsvc.ServiceConfig{
		Repository:    s.repo,
		Catalog:       catalog.New(&catalog.Config{Repository: content.NewInMemoryRepository(nil)}),
		Roller:        s.roller,
		UUIDGenerator: s.uuidGen,
		Logger:        zerolog.Nop(),
	})
}

func (s *LevelUpSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LevelUpSuite) fighter(level int) *domain.Character {
	char := &domain.Character{
		ID:       "char-1",
		OwnerID:  "owner-1",
		Name:     "Borin",
		Level:    level,
		ClassKey: "fighter",
		Abilities: map[rulebook.Attribute]*domain.AbilityScore{
			rulebook.AttributeStrength:     {Score: 16, Modifier: 3},
			rulebook.AttributeDexterity:    {Score: 12, Modifier: 1},
			rulebook.AttributeConstitution: {Score: 14, Modifier: 2},
			rulebook.AttributeIntelligence: {Score: 10, Modifier: 0},
			rulebook.AttributeWisdom:       {Score: 10, Modifier: 0},
			rulebook.AttributeCharisma:     {Score: 8, Modifier: -1},
		},
		MaxHitPoints:     12 + (level-1)*8,
		CurrentHitPoints: 12 + (level-1)*8,
		HitDice: map[string]*domain.HitDicePool{
			"fighter": {ClassKey: "fighter", DieSize: 10, Max: level, Current: level},
		},
	}
	return char
}

func (s *LevelUpSuite) expectGet(char *domain.Character) {
	s.repo.EXPECT().Get(gomock.Any(), char.ID).Return(char, nil)
}

func (s *LevelUpSuite) TestBasicLevelUp() {
	char := s.fighter(1)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")

	var savedChar *domain.Character
	var savedSnap *domain.Snapshot
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Character, snap *domain.Snapshot) error {
			savedChar = c
			savedSnap = snap
			return nil
		})

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
	})
	s.Require().NoError(err)

	s.Equal(2, output.Character.Level)
	// Average d10 is 6, plus Con modifier 2.
	s.Equal(20, output.Character.MaxHitPoints)
	s.Equal(20, output.Character.CurrentHitPoints)
	s.Equal(2, output.Character.HitDice["fighter"].Max)

	// Action Surge arrives at fighter 2 as an explicit row.
	s.NotNil(output.Character.FeatureByKey("action-surge"))

	s.Require().NotNil(savedSnap)
	s.Equal("snap-1", savedSnap.ID)
	s.Equal(1, savedSnap.Level, "snapshot holds the pre-change level")
	s.Equal(1, savedSnap.State.Level)
	s.Nil(savedSnap.State.FeatureByKey("action-surge"))
	s.Same(output.Character, savedChar)
}

func (s *LevelUpSuite) TestExplicitHitPointRoll() {
	char := s.fighter(1)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	roll := 10
	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID:  "char-1",
		OwnerID:      "owner-1",
		ClassKey:     "fighter",
		HitPointRoll: &roll,
	})
	s.Require().NoError(err)

	// The supplied value is the whole gain; no Constitution on top.
	s.Equal(22, output.Character.MaxHitPoints)
}

func (s *LevelUpSuite) TestZeroHitPointGainAccepted() {
	char := s.fighter(1)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	roll := 0
	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID:  "char-1",
		OwnerID:      "owner-1",
		ClassKey:     "fighter",
		HitPointRoll: &roll,
	})
	s.Require().NoError(err)

	s.Equal(12, output.Character.MaxHitPoints)
	s.Equal(2, output.Character.Level)
}

func (s *LevelUpSuite) TestNegativeHitPointValueFallsBackToAverage() {
	char := s.fighter(1)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	roll := -1
	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID:  "char-1",
		OwnerID:      "owner-1",
		ClassKey:     "fighter",
		HitPointRoll: &roll,
	})
	s.Require().NoError(err)

	// Average d10 (6) + Con 2, same as omitting the value.
	s.Equal(20, output.Character.MaxHitPoints)
}

func (s *LevelUpSuite) TestMaxLevelRejectedWithoutSnapshot() {
	char := s.fighter(20)
	s.expectGet(char)
	// No SaveWithSnapshot expectation: nothing may be written.

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
	})
	s.Require().Error(err)
	s.True(dnderr.IsMaxLevelReached(err))
}

func (s *LevelUpSuite) TestValidationRejectsBeforeMutation() {
	char := s.fighter(3)
	s.expectGet(char)

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID:      "char-1",
		OwnerID:          "owner-1",
		ClassKey:         "fighter",
		AbilityIncreases: map[rulebook.Attribute]int{rulebook.AttributeStrength: 3},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))

	s.Equal(3, char.Level, "rejected proposal must not mutate")
	s.Equal(16, char.Abilities[rulebook.AttributeStrength].Score)
}

func (s *LevelUpSuite) TestAbilityIncreaseClampsAtCap() {
	char := s.fighter(3)
	char.Abilities[rulebook.AttributeStrength].Score = 19
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID:      "char-1",
		OwnerID:          "owner-1",
		ClassKey:         "fighter",
		AbilityIncreases: map[rulebook.Attribute]int{rulebook.AttributeStrength: 2},
	})
	s.Require().NoError(err)

	str := output.Character.Abilities[rulebook.AttributeStrength]
	s.Equal(20, str.Score, "clamped silently, not rejected")
	s.Equal(5, str.Modifier)
}

func (s *LevelUpSuite) TestMulticlassIntoWarlock() {
	char := s.fighter(5)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "warlock",
		NewClass:    true,
		SubclassKey: "fiend-patron",
	})
	s.Require().NoError(err)

	c := output.Character
	s.Equal(6, c.Level)
	s.Equal(5, c.ClassLevel("fighter"))
	s.Equal(1, c.ClassLevel("warlock"))
	s.Equal("fiend-patron", c.SubclassFor("warlock"))

	s.NotNil(c.HitDice["warlock"])
	s.Equal(1, c.HitDice["warlock"].Max)
	s.Equal(5, c.HitDice["fighter"].Max, "existing pool untouched")

	s.Require().NotNil(c.PactSlots)
	s.Equal(1, c.PactSlots.SlotLevel)
	s.Equal(1, c.PactSlots.Max)

	s.NotNil(c.FeatureByKey("pact-magic"))
	s.NotNil(c.FeatureByKey("dark-ones-blessing"))
}

func (s *LevelUpSuite) TestMulticlassIntoOwnedClassRejected() {
	char := s.fighter(5)
	s.expectGet(char)

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		NewClass:    true,
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *LevelUpSuite) TestLevelUpUnownedClassRejected() {
	char := s.fighter(5)
	s.expectGet(char)

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "wizard",
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *LevelUpSuite) TestWrongSubclassRejected() {
	char := s.fighter(2)
	s.expectGet(char)

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		SubclassKey: "fiend-patron",
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *LevelUpSuite) TestSubclassChoiceGrantsItsFeatures() {
	char := s.fighter(2)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		SubclassKey: "battle-master",
		OptionKeys:  []string{"maneuver-trip-attack", "maneuver-riposte"},
	})
	s.Require().NoError(err)

	c := output.Character
	s.Equal("battle-master", c.SubclassKey)
	superiority := c.FeatureByKey("combat-superiority")
	s.Require().NotNil(superiority)
	s.Equal(4, superiority.UsesMax)
	s.True(c.HasSelection("maneuver-trip-attack"))
	s.True(c.HasSelection("maneuver-riposte"))
}

func (s *LevelUpSuite) TestFeatWithBuiltInASI() {
	char := s.fighter(3)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		FeatKey:     "heavy-armor-master",
	})
	s.Require().NoError(err)

	c := output.Character
	s.True(c.HasFeat("heavy-armor-master"))
	s.Equal(17, c.Abilities[rulebook.AttributeStrength].Score)
}

func (s *LevelUpSuite) TestFeatSkillGrants() {
	char := s.fighter(3)
	char.Skills = map[string]rulebook.ProficiencyLevel{
		"perception": rulebook.ProficiencyLevelProficient,
	}
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		FeatKey:     "prodigy",
	})
	s.Require().NoError(err)

	// Prodigy upgrades proficient perception to expertise.
	s.Equal(rulebook.ProficiencyLevelExpertise, output.Character.Skills["perception"])
}

func (s *LevelUpSuite) TestRedundantProficiencyGrantIsNoOp() {
	char := s.fighter(3)
	char.Skills = map[string]rulebook.ProficiencyLevel{
		"intimidation": rulebook.ProficiencyLevelExpertise,
	}
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
		FeatKey:     "menacing",
	})
	s.Require().NoError(err)

	// Menacing's proficiency grant must not downgrade existing expertise.
	s.Equal(rulebook.ProficiencyLevelExpertise, output.Character.Skills["intimidation"])
}

func (s *LevelUpSuite) TestCommitFailureIsOpaqueInternal() {
	char := s.fighter(1)
	s.expectGet(char)
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis: connection refused"))

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		ClassKey:    "fighter",
	})
	s.Require().Error(err)
	s.True(dnderr.IsInternal(err))
	s.NotContains(err.Error(), "refused", "storage details must not leak")

	var appErr *dnderr.Error
	s.Require().ErrorAs(err, &appErr)
	s.NotContains(appErr.Message, "redis")
}

func (s *LevelUpSuite) TestWrongOwnerRejected() {
	char := s.fighter(1)
	s.expectGet(char)

	_, err := s.service.LevelUp(s.ctx, &charsvc.LevelUpInput{
		CharacterID: "char-1",
		OwnerID:     "someone-else",
		ClassKey:    "fighter",
	})
	s.Require().Error(err)
	s.True(dnderr.IsPermissionDenied(err))
}

func TestLevelUpSuite(t *testing.T) {
	suite.Run(t, new(LevelUpSuite))
}
