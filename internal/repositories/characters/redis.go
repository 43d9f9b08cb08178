package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/uuid"
)

// characterData is the serialized form of a character in Redis.
type characterData struct {
	Character *character.Character `json:"character"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// snapshotData is the serialized form of a snapshot in Redis.
type snapshotData struct {
	Snapshot  *character.Snapshot `json:"snapshot"`
	CreatedAt time.Time           `json:"created_at"`
}

// redisRepo implements Repository using Redis. Characters are JSON
// documents; owner and share-token lookups go through index keys kept in
// step inside the same pipeline as the document write.
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository.
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func (r *redisRepo) shareKey(token string) string {
	return fmt.Sprintf("share:%s", token)
}

func (r *redisRepo) snapshotKey(id string) string {
	return fmt.Sprintf("snapshot:%s", id)
}

func (r *redisRepo) snapshotIndexKey(characterID string) string {
	return fmt.Sprintf("character:%s:snapshots", characterID)
}

// Create stores a new character.
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := time.Now().UTC()
	jsonData, err := json.Marshal(characterData{Character: char, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerKey(char.OwnerID), char.ID)
	if char.ShareToken != "" {
		pipe.Set(ctx, r.shareKey(char.ShareToken), char.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

// Get retrieves a character by ID.
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Character, nil
}

// getData fetches the stored envelope so writers can carry timestamps
// forward.
func (r *redisRepo) getData(ctx context.Context, id string) (*characterData, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data characterData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &data, nil
}

// GetByOwner retrieves all characters for an owner.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list owner characters: %w", err)
	}
	sort.Strings(ids)

	result := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			// Stale index entry; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, char)
	}
	return result, nil
}

// GetByShareToken retrieves a published character by its token.
func (r *redisRepo) GetByShareToken(ctx context.Context, token string) (*character.Character, error) {
	if token == "" {
		return nil, dnderr.InvalidArgument("share token is required")
	}

	id, err := r.client.Get(ctx, r.shareKey(token)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFound("no character published under that token")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}

	return r.Get(ctx, id)
}

// Update overwrites an existing character and keeps the indexes in step.
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.getData(ctx, char.ID)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(characterData{
		Character: char,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	if existing.Character.ShareToken != char.ShareToken {
		if existing.Character.ShareToken != "" {
			pipe.Del(ctx, r.shareKey(existing.Character.ShareToken))
		}
		if char.ShareToken != "" {
			pipe.Set(ctx, r.shareKey(char.ShareToken), char.ID, 0)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

// Delete removes a character, its indexes, and its snapshots.
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	snapIDs, err := r.client.SMembers(ctx, r.snapshotIndexKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerKey(char.OwnerID), id)
	if char.ShareToken != "" {
		pipe.Del(ctx, r.shareKey(char.ShareToken))
	}
	for _, snapID := range snapIDs {
		pipe.Del(ctx, r.snapshotKey(snapID))
	}
	pipe.Del(ctx, r.snapshotIndexKey(id))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// SaveWithSnapshot commits the updated character and its pre-change
// snapshot in one MULTI/EXEC transaction.
func (r *redisRepo) SaveWithSnapshot(ctx context.Context, char *character.Character, snap *character.Snapshot) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if snap == nil {
		return dnderr.InvalidArgument("snapshot cannot be nil")
	}

	existing, err := r.getData(ctx, char.ID)
	if err != nil {
		return err
	}

	if snap.ID == "" {
		snap.ID = r.uuidGenerator.New()
	}

	now := time.Now().UTC()
	charJSON, err := json.Marshal(characterData{Character: char, CreatedAt: existing.CreatedAt, UpdatedAt: now})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}
	snapJSON, err := json.Marshal(snapshotData{Snapshot: snap, CreatedAt: now})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(char.ID), charJSON, 0)
	pipe.Set(ctx, r.snapshotKey(snap.ID), snapJSON, 0)
	pipe.SAdd(ctx, r.snapshotIndexKey(char.ID), snap.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit level-up: %w", err)
	}
	return nil
}

// ListSnapshots returns a character's snapshots, oldest first.
func (r *redisRepo) ListSnapshots(ctx context.Context, characterID string) ([]*character.Snapshot, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.snapshotIndexKey(characterID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	result := make([]*character.Snapshot, 0, len(ids))
	for _, id := range ids {
		raw, err := r.client.Get(ctx, r.snapshotKey(id)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get snapshot: %w", err)
		}

		var data snapshotData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		result = append(result, data.Snapshot)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TakenAt.Before(result[j].TakenAt)
	})
	return result, nil
}
