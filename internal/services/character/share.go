package character

import (
	"context"
	"strings"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
)

type PublishInput struct {
	CharacterID string
	OwnerID     string
}

type PublishOutput struct {
	ShareToken string
}

// Publish mints an opaque share token for the character. Publishing twice
// returns the same token.
func (s *service) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if char.ShareToken != "" {
		return &PublishOutput{ShareToken: char.ShareToken}, nil
	}

	char.ShareToken = strings.ReplaceAll(s.uuidGenerator.New(), "-", "")
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "publish", char.ID)
	}

	return &PublishOutput{ShareToken: char.ShareToken}, nil
}

type CopyByTokenInput struct {
	ShareToken string
	OwnerID    string
	Name       string // optional; defaults to the source's name
}

type CopyByTokenOutput struct {
	Character *character.Character
}

// CopyByToken clones a published character into the actor's own collection.
// The copy starts private with no snapshot history.
func (s *service) CopyByToken(ctx context.Context, input *CopyByTokenInput) (*CopyByTokenOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.ShareToken == "" {
		return nil, dnderr.InvalidArgument("share token is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	source, err := s.repository.GetByShareToken(ctx, input.ShareToken)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = source.Name
	}

	copied := s.cloneAs(source, input.OwnerID, name)
	if err := s.repository.Create(ctx, copied); err != nil {
		return nil, s.commitErr(err, "copy_by_token", copied.ID)
	}

	s.log.Info().
		Str("source_id", source.ID).
		Str("character_id", copied.ID).
		Msg("shared character copied")

	return &CopyByTokenOutput{Character: copied}, nil
}

type DuplicateInput struct {
	CharacterID string
	OwnerID     string
	Name        string // optional; defaults to "<name> (copy)"
}

type DuplicateOutput struct {
	Character *character.Character
}

// Duplicate clones the actor's own character under a new ID.
func (s *service) Duplicate(ctx context.Context, input *DuplicateInput) (*DuplicateOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	source, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = source.Name + " (copy)"
	}

	copied := s.cloneAs(source, input.OwnerID, name)
	if err := s.repository.Create(ctx, copied); err != nil {
		return nil, s.commitErr(err, "duplicate", copied.ID)
	}

	return &DuplicateOutput{Character: copied}, nil
}

// cloneAs deep-copies a character under a fresh identity. The clone is
// never published and carries no share token.
func (s *service) cloneAs(source *character.Character, ownerID, name string) *character.Character {
	copied := source.Clone()
	copied.ID = s.uuidGenerator.New()
	copied.OwnerID = ownerID
	copied.Name = name
	copied.ShareToken = ""
	copied.Status = character.CharacterStatusActive
	return copied
}
