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

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mockrepo.MockRepository
	uuidGen *mockuuid.MockGenerator
	service charsvc.Service
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
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

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func baseAbilities() map[rulebook.Attribute]int {
	return map[rulebook.Attribute]int{
		rulebook.AttributeStrength:     15,
		rulebook.AttributeDexterity:    13,
		rulebook.AttributeConstitution: 14,
		rulebook.AttributeIntelligence: 10,
		rulebook.AttributeWisdom:       12,
		rulebook.AttributeCharisma:     8,
	}
}

func (s *ServiceSuite) TestCreateCharacter() {
	s.uuidGen.EXPECT().New().Return("char-new")
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:       "owner-1",
		Name:          "Borin",
		ClassKey:      "fighter",
		RaceKey:       "dwarf",
		SubraceKey:    "hill-dwarf",
		BackgroundKey: "soldier",
		BaseAbilities: baseAbilities(),
	})
	s.Require().NoError(err)

	c := output.Character
	s.Equal("char-new", c.ID)
	s.Equal(1, c.Level)
	s.Equal(domain.CharacterStatusActive, c.Status)

	// Dwarf +2 Con, hill dwarf +1 Wis on top.
	s.Equal(16, c.Abilities[rulebook.AttributeConstitution].Score)
	s.Equal(3, c.Abilities[rulebook.AttributeConstitution].Modifier)
	s.Equal(13, c.Abilities[rulebook.AttributeWisdom].Score)

	// d10 + Con modifier 3.
	s.Equal(13, c.MaxHitPoints)
	s.Equal(13, c.CurrentHitPoints)
	s.Equal(1, c.HitDice["fighter"].Max)

	s.NotNil(c.FeatureByKey("second-wind"))

	s.Equal(rulebook.ProficiencyLevelProficient, c.Skills["athletics"])
	s.Equal(rulebook.ProficiencyLevelProficient, c.Skills["intimidation"])
}

func (s *ServiceSuite) TestCreateCharacter_FlexibleBonus() {
	s.uuidGen.EXPECT().New().Return("char-new")
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:       "owner-1",
		Name:          "Alto",
		ClassKey:      "warlock",
		RaceKey:       "half-elf",
		BaseAbilities: baseAbilities(),
		FlexiblePicks: [][]rulebook.Attribute{
			{rulebook.AttributeDexterity, rulebook.AttributeConstitution},
		},
	})
	s.Require().NoError(err)

	c := output.Character
	s.Equal(10, c.Abilities[rulebook.AttributeCharisma].Score, "half-elf +2 Cha")
	s.Equal(14, c.Abilities[rulebook.AttributeDexterity].Score)
	s.Equal(15, c.Abilities[rulebook.AttributeConstitution].Score)
	s.Require().NotNil(c.PactSlots)
	s.Equal(1, c.PactSlots.Max)
}

func (s *ServiceSuite) TestCreateCharacter_MissingFlexiblePicksRejected() {
	_, err := s.service.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:       "owner-1",
		Name:          "Alto",
		ClassKey:      "warlock",
		RaceKey:       "half-elf",
		BaseAbilities: baseAbilities(),
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceSuite) TestCreateCharacter_ExclusiveVariantsRejected() {
	_, err := s.service.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:       "owner-1",
		Name:          "Riza",
		ClassKey:      "warlock",
		RaceKey:       "tiefling",
		VariantKeys:   []string{"bloodline-of-dispater", "bloodline-of-fierna"},
		BaseAbilities: baseAbilities(),
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceSuite) TestCreateCharacter_VariantOverridesRacialBonus() {
	s.uuidGen.EXPECT().New().Return("char-new")
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:       "owner-1",
		Name:          "Riza",
		ClassKey:      "warlock",
		RaceKey:       "tiefling",
		VariantKeys:   []string{"bloodline-of-dispater"},
		BaseAbilities: baseAbilities(),
	})
	s.Require().NoError(err)

	c := output.Character
	// Dispater: +2 Cha +1 Dex replaces the base tiefling spread entirely.
	s.Equal(10, c.Abilities[rulebook.AttributeCharisma].Score)
	s.Equal(14, c.Abilities[rulebook.AttributeDexterity].Score)
	s.Equal(10, c.Abilities[rulebook.AttributeIntelligence].Score, "base +1 Int must not apply")
}

func (s *ServiceSuite) TestPublishMintsTokenOnce() {
	char := &domain.Character{ID: "char-1", OwnerID: "owner-1", Name: "Borin"}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	s.uuidGen.EXPECT().New().Return("ab-cd-ef")
	s.repo.EXPECT().Update(gomock.Any(), char).Return(nil)

	output, err := s.service.Publish(s.ctx, &charsvc.PublishInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
	})
	s.Require().NoError(err)
	s.Equal("abcdef", output.ShareToken, "token has no dashes")

	// Second publish returns the existing token without writing.
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	again, err := s.service.Publish(s.ctx, &charsvc.PublishInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
	})
	s.Require().NoError(err)
	s.Equal("abcdef", again.ShareToken)
}

func (s *ServiceSuite) TestCopyByToken() {
	source := &domain.Character{
		ID:         "char-1",
		OwnerID:    "owner-1",
		Name:       "Borin",
		ShareToken: "abcdef",
		Level:      5,
		ClassKey:   "fighter",
		FeatKeys:   []string{"tough"},
	}
	s.repo.EXPECT().GetByShareToken(gomock.Any(), "abcdef").Return(source, nil)
	s.uuidGen.EXPECT().New().Return("char-copy")

	var created *domain.Character
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Character) error {
			created = c
			return nil
		})

	output, err := s.service.CopyByToken(s.ctx, &charsvc.CopyByTokenInput{
		ShareToken: "abcdef",
		OwnerID:    "owner-2",
	})
	s.Require().NoError(err)

	c := output.Character
	s.Equal("char-copy", c.ID)
	s.Equal("owner-2", c.OwnerID)
	s.Equal("Borin", c.Name)
	s.Empty(c.ShareToken, "copies start private")
	s.Equal(5, c.Level)
	s.Same(c, created)

	// The copy must be independent of the source.
	c.FeatKeys[0] = "alert"
	s.Equal("tough", source.FeatKeys[0])
}

func (s *ServiceSuite) TestDuplicateDefaultsCopySuffix() {
	source := &domain.Character{ID: "char-1", OwnerID: "owner-1", Name: "Borin"}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(source, nil)
	s.uuidGen.EXPECT().New().Return("char-copy")
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.Duplicate(s.ctx, &charsvc.DuplicateInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
	})
	s.Require().NoError(err)
	s.Equal("Borin (copy)", output.Character.Name)
}

func (s *ServiceSuite) TestUseFeature() {
	char := &domain.Character{
		ID: "char-1", OwnerID: "owner-1",
		Features: []*domain.Feature{
			{Key: "second-wind", Name: "Second Wind", UsesMax: 1, UsesRemaining: 1},
		},
	}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	s.repo.EXPECT().Update(gomock.Any(), char).Return(nil)

	output, err := s.service.UseFeature(s.ctx, &charsvc.UseFeatureInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		FeatureKey:  "second-wind",
	})
	s.Require().NoError(err)
	s.Equal(0, output.Feature.UsesRemaining)

	// A second use is rejected with no write.
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	_, err = s.service.UseFeature(s.ctx, &charsvc.UseFeatureInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		FeatureKey:  "second-wind",
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceSuite) TestUseUntrackedFeatureRejected() {
	char := &domain.Character{
		ID: "char-1", OwnerID: "owner-1",
		Features: []*domain.Feature{
			{Key: "extra-attack", Name: "Extra Attack"},
		},
	}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)

	_, err := s.service.UseFeature(s.ctx, &charsvc.UseFeatureInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		FeatureKey:  "extra-attack",
	})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceSuite) TestRecordDeathSaves() {
	char := &domain.Character{ID: "char-1", OwnerID: "owner-1", Name: "Borin"}
	char.DeathSaves = domain.DeathSaves{Successes: 2}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	s.repo.EXPECT().Update(gomock.Any(), char).Return(nil)

	output, err := s.service.RecordDeathSave(s.ctx, &charsvc.RecordDeathSaveInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		Success:     true,
	})
	s.Require().NoError(err)
	s.True(output.Stabilized)
	s.Equal(domain.DeathSaves{}, output.DeathSaves, "tally clears on stabilizing")

	char.DeathSaves = domain.DeathSaves{Failures: 2}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)
	s.repo.EXPECT().Update(gomock.Any(), char).Return(nil)

	output, err = s.service.RecordDeathSave(s.ctx, &charsvc.RecordDeathSaveInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
		Success:     false,
	})
	s.Require().NoError(err)
	s.True(output.DeathSaves.Dead)
}

func (s *ServiceSuite) TestGetSheetResolvesFeatures() {
	char := &domain.Character{
		ID: "char-1", OwnerID: "owner-1",
		Level:    5,
		ClassKey: "fighter",
		HitDice: map[string]*domain.HitDicePool{
			"fighter": {ClassKey: "fighter", DieSize: 10, Max: 5, Current: 5},
		},
	}
	s.repo.EXPECT().Get(gomock.Any(), "char-1").Return(char, nil)

	output, err := s.service.GetSheet(s.ctx, &charsvc.GetSheetInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
	})
	s.Require().NoError(err)

	s.Equal(3, output.ProficiencyBonus)
	s.Require().Len(output.HitDice, 1)
	s.Equal("Fighter", output.HitDice[0].ClassName)
	s.NotEmpty(output.Features.Passive)
}

func (s *ServiceSuite) TestRenameRequiresName() {
	_, err := s.service.RenameCharacter(s.ctx, &charsvc.RenameCharacterInput{
		CharacterID: "char-1",
		OwnerID:     "owner-1",
	})
	s.Require().Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
