package character

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sheetforge/sheetforge/internal/catalog"
	"github.com/sheetforge/sheetforge/internal/dice"
	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/repositories/characters"
	"github.com/sheetforge/sheetforge/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacters -source=service.go

// Service drives character creation, progression, rests, and sharing.
type Service interface {
	// CreateCharacter builds a new level-1 character from catalog picks
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter fetches a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// GetSheet fetches a character with its fully resolved feature set
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)

	// ListCharacters returns the actor's characters
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// RenameCharacter changes a character's display name
	RenameCharacter(ctx context.Context, input *RenameCharacterInput) (*RenameCharacterOutput, error)

	// DeleteCharacter removes a character and its snapshots
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// LevelUp applies a validated level-up proposal as one transaction
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// ListSnapshots returns a character's level-up history, oldest first
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)

	// ShortRest spends hit dice and restores short-rest resources
	ShortRest(ctx context.Context, input *ShortRestInput) (*ShortRestOutput, error)

	// LongRest fully restores the character
	LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error)

	// UseFeature spends one use of a tracked feature
	UseFeature(ctx context.Context, input *UseFeatureInput) (*UseFeatureOutput, error)

	// RestoreFeature refunds one use of a tracked feature
	RestoreFeature(ctx context.Context, input *RestoreFeatureInput) (*RestoreFeatureOutput, error)

	// RecordDeathSave records one death saving throw
	RecordDeathSave(ctx context.Context, input *RecordDeathSaveInput) (*RecordDeathSaveOutput, error)

	// Publish mints (or returns) the character's share token
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)

	// CopyByToken clones a published character for a new owner
	CopyByToken(ctx context.Context, input *CopyByTokenInput) (*CopyByTokenOutput, error)

	// Duplicate clones the actor's own character
	Duplicate(ctx context.Context, input *DuplicateInput) (*DuplicateOutput, error)
}

type service struct {
	repository    characters.Repository
	catalog       *catalog.Catalog
	roller        dice.Roller
	uuidGenerator uuid.Generator
	log           zerolog.Logger
}

// ServiceConfig holds the service's dependencies.
type ServiceConfig struct {
	Repository    characters.Repository
	Catalog       *catalog.Catalog
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	Logger        zerolog.Logger
}

// NewService creates a character service. Panics on missing dependencies.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		repository:    cfg.Repository,
		catalog:       cfg.Catalog,
		roller:        roller,
		uuidGenerator: gen,
		log:           cfg.Logger,
	}
}

// getOwned fetches a character and verifies the actor owns it.
func (s *service) getOwned(ctx context.Context, id, ownerID string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if char.OwnerID != ownerID {
		return nil, dnderr.PermissionDenied("character belongs to another owner").
			WithMeta("character_id", id)
	}
	return char, nil
}

// commitErr logs an unexpected persistence failure and returns an opaque
// internal error so storage details never leak to callers.
func (s *service) commitErr(err error, op, characterID string) error {
	s.log.Error().Err(err).
		Str("op", op).
		Str("character_id", characterID).
		Msg("commit failed")
	return dnderr.WrapWithCode(err, dnderr.CodeInternal, "something went wrong, please try again")
}

type GetCharacterInput struct {
	CharacterID string
	OwnerID     string
}

type GetCharacterOutput struct {
	Character *character.Character
}

func (s *service) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

type GetSheetInput struct {
	CharacterID string
	OwnerID     string
}

type GetSheetOutput struct {
	Character        *character.Character
	Features         *FeaturesByCategory
	HitDice          []HitDiceInfo
	ProficiencyBonus int
}

func (s *service) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	content, err := s.catalog.Content(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load catalog content")
	}

	return &GetSheetOutput{
		Character:        char,
		Features:         ResolveFeatures(char, content),
		HitDice:          hitDiceInfo(char, content),
		ProficiencyBonus: proficiencyBonus(char),
	}, nil
}

type ListCharactersInput struct {
	OwnerID string
}

type ListCharactersOutput struct {
	Characters []*character.Character
}

func (s *service) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	chars, err := s.repository.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListCharactersOutput{Characters: chars}, nil
}

type RenameCharacterInput struct {
	CharacterID string
	OwnerID     string
	Name        string
}

type RenameCharacterOutput struct {
	Character *character.Character
}

func (s *service) RenameCharacter(ctx context.Context, input *RenameCharacterInput) (*RenameCharacterOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, dnderr.InvalidArgument("name is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	char.Name = input.Name
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "rename", char.ID)
	}
	return &RenameCharacterOutput{Character: char}, nil
}

type DeleteCharacterInput struct {
	CharacterID string
	OwnerID     string
}

type DeleteCharacterOutput struct{}

func (s *service) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if _, err := s.getOwned(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}
	if err := s.repository.Delete(ctx, input.CharacterID); err != nil {
		return nil, s.commitErr(err, "delete", input.CharacterID)
	}
	return &DeleteCharacterOutput{}, nil
}

type ListSnapshotsInput struct {
	CharacterID string
	OwnerID     string
}

type ListSnapshotsOutput struct {
	Snapshots []*character.Snapshot
}

func (s *service) ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if _, err := s.getOwned(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}
	snaps, err := s.repository.ListSnapshots(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &ListSnapshotsOutput{Snapshots: snaps}, nil
}
