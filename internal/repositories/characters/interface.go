package characters

import (
	"context"

	"github.com/sheetforge/sheetforge/internal/domain/character"
)

//go:generate mockgen -destination=../../services/character/mock/mock_repository.go -package=mockcharacters -source=interface.go

// Repository is the persistence boundary for characters and their
// snapshots. Implementations must return copies; callers mutate freely and
// commit through Update or SaveWithSnapshot.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters for an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// GetByShareToken retrieves a published character by its opaque token
	GetByShareToken(ctx context.Context, token string) (*character.Character, error)

	// Update overwrites an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character and its snapshots
	Delete(ctx context.Context, id string) error

	// SaveWithSnapshot commits an updated character together with its
	// pre-change snapshot as one atomic write. Either both land or neither.
	SaveWithSnapshot(ctx context.Context, char *character.Character, snap *character.Snapshot) error

	// ListSnapshots returns a character's snapshots, oldest first
	ListSnapshots(ctx context.Context, characterID string) ([]*character.Snapshot, error)
}
