package character_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sheetforge/sheetforge/internal/catalog"
	domain "github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/repositories/content"
	charsvc "github.com/sheetforge/sheetforge/internal/services/character"
	mockrepo "github.com/sheetforge/sheetforge/internal/services/character/mock"
	mockuuid "github.com/sheetforge/sheetforge/internal/uuid/mocks"
)

type ValidatorSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mockrepo.MockRepository
	uuidGen *mockuuid.MockGenerator
	service charsvc.Service
	ctx     context.Context
}

func (s *ValidatorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockrepo.NewMockRepository(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	s.service = charsvc.NewService(&charsvc.ServiceConfig{
		Repository:    s.repo,
		Catalog:       catalog.New(&catalog.Config{Repository: content.NewInMemoryRepository(nil)}),
		UUIDGenerator: s.uuidGen,
		Logger:        zerolog.Nop(),
	})
}

func (s *ValidatorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ValidatorSuite) warlock(level int) *domain.Character {
	return &domain.Character{
		ID:          "char-w",
		OwnerID:     "owner-1",
		Name:        "Morgana",
		Level:       level,
		ClassKey:    "warlock",
		SubclassKey: "fiend-patron",
		Abilities: map[rulebook.Attribute]*domain.AbilityScore{
			rulebook.AttributeConstitution: {Score: 14, Modifier: 2},
			rulebook.AttributeCharisma:     {Score: 16, Modifier: 3},
		},
		MaxHitPoints:     8 + (level-1)*7,
		CurrentHitPoints: 8 + (level-1)*7,
		HitDice: map[string]*domain.HitDicePool{
			"warlock": {ClassKey: "warlock", DieSize: 8, Max: level, Current: level},
		},
	}
}

func (s *ValidatorSuite) artificer(level int) *domain.Character {
	return &domain.Character{
		ID:       "char-a",
		OwnerID:  "owner-1",
		Name:     "Copper",
		Level:    level,
		ClassKey: "artificer",
		Abilities: map[rulebook.Attribute]*domain.AbilityScore{
			rulebook.AttributeConstitution: {Score: 12, Modifier: 1},
			rulebook.AttributeIntelligence: {Score: 16, Modifier: 3},
		},
		MaxHitPoints:     9,
		CurrentHitPoints: 9,
		HitDice: map[string]*domain.HitDicePool{
			"artificer": {ClassKey: "artificer", DieSize: 8, Max: level, Current: level},
		},
	}
}

func (s *ValidatorSuite) levelUp(char *domain.Character, input *charsvc.LevelUpInput) error {
	s.repo.EXPECT().Get(gomock.Any(), char.ID).Return(char, nil)
	input.CharacterID = char.ID
	input.OwnerID = char.OwnerID
	_, err := s.service.LevelUp(s.ctx, input)
	return err
}

func (s *ValidatorSuite) expectCommit() {
	s.uuidGen.EXPECT().New().Return("snap-1")
	s.repo.EXPECT().SaveWithSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func (s *ValidatorSuite) TestInvocationReplacement() {
	char := s.warlock(4)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "agonizing-blast", Group: rulebook.GroupInvocation},
		{OptionKey: "armor-of-shadows", Group: rulebook.GroupInvocation},
	}
	s.expectCommit()

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "warlock",
		Replacements: []charsvc.Replacement{{
			Group:     rulebook.GroupInvocation,
			RemoveKey: "armor-of-shadows",
			AddKey:    "devils-sight",
		}},
	})
	s.Require().NoError(err)

	s.False(char.HasSelection("armor-of-shadows"))
	s.True(char.HasSelection("devils-sight"))
	s.True(char.HasSelection("agonizing-blast"))
	s.Nil(char.FeatureByKey("inv-armor-of-shadows"), "removed option's feature is disconnected")
	s.NotNil(char.FeatureByKey("inv-devils-sight"))
}

func (s *ValidatorSuite) TestReplacementOfUnheldOptionRejected() {
	char := s.warlock(4)

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "warlock",
		Replacements: []charsvc.Replacement{{
			Group:     rulebook.GroupInvocation,
			RemoveKey: "agonizing-blast",
			AddKey:    "devils-sight",
		}},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestSelfReplacementRejected() {
	char := s.warlock(4)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "agonizing-blast", Group: rulebook.GroupInvocation},
	}

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "warlock",
		Replacements: []charsvc.Replacement{{
			Group:     rulebook.GroupInvocation,
			RemoveKey: "agonizing-blast",
			AddKey:    "agonizing-blast",
		}},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestCrossGroupReplacementRejected() {
	char := s.warlock(4)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "pact-of-the-blade", Group: rulebook.GroupPactBoon},
	}

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "warlock",
		Replacements: []charsvc.Replacement{{
			Group:     rulebook.GroupInvocation,
			RemoveKey: "pact-of-the-blade",
			AddKey:    "devils-sight",
		}},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestInvocationLevelPrereqUsesPostLevelUpLevel() {
	// Warlock 4 leveling to 5: Thirsting Blade (requires warlock 5) is
	// legal in the same proposal.
	char := s.warlock(4)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "pact-of-the-blade", Group: rulebook.GroupPactBoon},
		{OptionKey: "agonizing-blast", Group: rulebook.GroupInvocation},
	}
	s.expectCommit()

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:   "warlock",
		OptionKeys: []string{"thirsting-blade"},
	})
	s.Require().NoError(err)
	s.True(char.HasSelection("thirsting-blade"))
}

func (s *ValidatorSuite) TestInvocationLevelPrereqRejected() {
	char := s.warlock(3)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "pact-of-the-blade", Group: rulebook.GroupPactBoon},
	}

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:   "warlock",
		OptionKeys: []string{"thirsting-blade"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestInvocationPactBoonPrereqRejected() {
	char := s.warlock(4)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "pact-of-the-tome", Group: rulebook.GroupPactBoon},
	}

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:   "warlock",
		OptionKeys: []string{"voice-of-the-chain-master"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestBoonReplacedInSameProposalNoLongerCounts() {
	// Swapping away the blade boon while trying to keep a blade-gated
	// invocation must fail as one atomic proposal.
	char := s.warlock(6)
	char.Selections = []*domain.ChoiceSelection{
		{OptionKey: "pact-of-the-blade", Group: rulebook.GroupPactBoon},
	}

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "warlock",
		Replacements: []charsvc.Replacement{{
			Group:     rulebook.GroupPactBoon,
			RemoveKey: "pact-of-the-blade",
			AddKey:    "pact-of-the-chain",
		}},
		OptionKeys: []string{"thirsting-blade"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestInfusionExactCountRequired() {
	char := s.artificer(1)

	// Artificer 2 grants 4 infusions known; picking 3 is rejected.
	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:     "artificer",
		InfusionKeys: []string{"enhanced-weapon", "enhanced-defense", "returning-weapon"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestInfusionPicksAccepted() {
	char := s.artificer(1)
	s.expectCommit()

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey: "artificer",
		InfusionKeys: []string{
			"enhanced-weapon", "enhanced-defense", "returning-weapon", "replicate-bag-of-holding",
		},
	})
	s.Require().NoError(err)
	s.Len(char.InfusionKeys, 4)
}

func (s *ValidatorSuite) TestInfusionsOutsideGrantLevelRejected() {
	char := s.artificer(2)
	char.InfusionKeys = []string{
		"enhanced-weapon", "enhanced-defense", "returning-weapon", "replicate-bag-of-holding",
	}

	// Artificer 3 grants no new infusions; any pick is rejected.
	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:     "artificer",
		InfusionKeys: []string{"homunculus-servant"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ValidatorSuite) TestInfusionsForNonInfusingClassRejected() {
	char := s.warlock(2)

	err := s.levelUp(char, &charsvc.LevelUpInput{
		ClassKey:     "warlock",
		InfusionKeys: []string{"enhanced-weapon"},
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}
