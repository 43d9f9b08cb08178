package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
	snapshots  map[string][]*character.Snapshot // character ID -> snapshots
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
		snapshots:  make(map[string][]*character.Snapshot),
	}
}

// Create stores a new character.
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Get retrieves a character by ID.
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return char.Clone(), nil
}

// GetByOwner retrieves all characters for an owner.
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, char.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByShareToken retrieves a published character by its token.
func (r *InMemoryRepository) GetByShareToken(ctx context.Context, token string) (*character.Character, error) {
	if token == "" {
		return nil, dnderr.InvalidArgument("share token is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, char := range r.characters {
		if char.ShareToken == token {
			return char.Clone(), nil
		}
	}

	return nil, dnderr.NotFound("no character published under that token")
}

// Update overwrites an existing character.
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Delete removes a character and its snapshots.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	delete(r.snapshots, id)
	return nil
}

// SaveWithSnapshot commits the update and the snapshot together.
func (r *InMemoryRepository) SaveWithSnapshot(ctx context.Context, char *character.Character, snap *character.Snapshot) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if snap == nil {
		return dnderr.InvalidArgument("snapshot cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	snapCopy := *snap
	snapCopy.State = snap.State.Clone()

	r.characters[char.ID] = char.Clone()
	r.snapshots[char.ID] = append(r.snapshots[char.ID], &snapCopy)
	return nil
}

// ListSnapshots returns a character's snapshots, oldest first.
func (r *InMemoryRepository) ListSnapshots(ctx context.Context, characterID string) ([]*character.Snapshot, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snaps := r.snapshots[characterID]
	result := make([]*character.Snapshot, len(snaps))
	for i, snap := range snaps {
		snapCopy := *snap
		snapCopy.State = snap.State.Clone()
		result[i] = &snapCopy
	}
	return result, nil
}
