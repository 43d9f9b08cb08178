package characters_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/repositories/characters"
)

type InMemoryRepositorySuite struct {
	suite.Suite
	repo *characters.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositorySuite) SetupTest() {
	s.repo = characters.NewInMemoryRepository()
	s.ctx = context.Background()
}

func testCharacter(id, ownerID, name string) *character.Character {
	return &character.Character{
		ID:       id,
		OwnerID:  ownerID,
		Name:     name,
		Status:   character.CharacterStatusActive,
		Level:    3,
		ClassKey: "fighter",
		HitDice: map[string]*character.HitDicePool{
			"fighter": {ClassKey: "fighter", DieSize: 10, Max: 3, Current: 3},
		},
	}
}

func (s *InMemoryRepositorySuite) TestCreateAndGet() {
	char := testCharacter("char-1", "owner-1", "Borin")
	s.Require().NoError(s.repo.Create(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Borin", got.Name)
	s.NotSame(char, got, "repository must return copies")
}

func (s *InMemoryRepositorySuite) TestCreateDuplicateID() {
	s.Require().NoError(s.repo.Create(s.ctx, testCharacter("char-1", "owner-1", "Borin")))

	err := s.repo.Create(s.ctx, testCharacter("char-1", "owner-2", "Other"))
	s.Require().Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *InMemoryRepositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositorySuite) TestStoredCopyIsIsolated() {
	char := testCharacter("char-1", "owner-1", "Borin")
	s.Require().NoError(s.repo.Create(s.ctx, char))

	// Mutating the caller's instance after Create must not leak in.
	char.Name = "Changed"
	char.HitDice["fighter"].Current = 0

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Borin", got.Name)
	s.Equal(3, got.HitDice["fighter"].Current)

	// Mutating a returned copy must not affect the stored state either.
	got.Level = 20
	again, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(3, again.Level)
}

func (s *InMemoryRepositorySuite) TestGetByOwnerSortsByID() {
	s.Require().NoError(s.repo.Create(s.ctx, testCharacter("char-b", "owner-1", "Second")))
	s.Require().NoError(s.repo.Create(s.ctx, testCharacter("char-a", "owner-1", "First")))
	s.Require().NoError(s.repo.Create(s.ctx, testCharacter("char-c", "owner-2", "Theirs")))

	result, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("char-a", result[0].ID)
	s.Equal("char-b", result[1].ID)
}

func (s *InMemoryRepositorySuite) TestGetByShareToken() {
	char := testCharacter("char-1", "owner-1", "Borin")
	char.ShareToken = "abcdef"
	s.Require().NoError(s.repo.Create(s.ctx, char))

	got, err := s.repo.GetByShareToken(s.ctx, "abcdef")
	s.Require().NoError(err)
	s.Equal("char-1", got.ID)

	_, err = s.repo.GetByShareToken(s.ctx, "nope")
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositorySuite) TestUpdate() {
	s.Require().NoError(s.repo.Create(s.ctx, testCharacter("char-1", "owner-1", "Borin")))

	updated := testCharacter("char-1", "owner-1", "Borin the Bold")
	s.Require().NoError(s.repo.Update(s.ctx, updated))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Borin the Bold", got.Name)
}

func (s *InMemoryRepositorySuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, testCharacter("missing", "owner-1", "Ghost"))
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositorySuite) TestDeleteRemovesSnapshots() {
	char := testCharacter("char-1", "owner-1", "Borin")
	s.Require().NoError(s.repo.Create(s.ctx, char))
	s.Require().NoError(s.repo.SaveWithSnapshot(s.ctx, char, &character.Snapshot{
		ID:          "snap-1",
		CharacterID: "char-1",
		Level:       3,
		TakenAt:     time.Now(),
		State:       char.Clone(),
	}))

	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))

	_, err := s.repo.Get(s.ctx, "char-1")
	s.True(dnderr.IsNotFound(err))

	snaps, err := s.repo.ListSnapshots(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Empty(snaps)
}

func (s *InMemoryRepositorySuite) TestSaveWithSnapshotOrdering() {
	char := testCharacter("char-1", "owner-1", "Borin")
	s.Require().NoError(s.repo.Create(s.ctx, char))

	for level := 3; level <= 5; level++ {
		pre := char.Clone()
		char.Level = level + 1
		s.Require().NoError(s.repo.SaveWithSnapshot(s.ctx, char, &character.Snapshot{
			ID:          fmt.Sprintf("snap-%d", level),
			CharacterID: "char-1",
			Level:       level,
			State:       pre,
		}))
	}

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(6, got.Level)

	snaps, err := s.repo.ListSnapshots(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Require().Len(snaps, 3)
	s.Equal(3, snaps[0].Level)
	s.Equal(4, snaps[1].Level)
	s.Equal(5, snaps[2].Level)
}

func (s *InMemoryRepositorySuite) TestSaveWithSnapshotMissingCharacter() {
	char := testCharacter("missing", "owner-1", "Ghost")
	err := s.repo.SaveWithSnapshot(s.ctx, char, &character.Snapshot{
		ID:          "snap-1",
		CharacterID: "missing",
		State:       char.Clone(),
	})
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositorySuite) TestSnapshotStateIsIsolated() {
	char := testCharacter("char-1", "owner-1", "Borin")
	s.Require().NoError(s.repo.Create(s.ctx, char))

	pre := char.Clone()
	s.Require().NoError(s.repo.SaveWithSnapshot(s.ctx, char, &character.Snapshot{
		ID:          "snap-1",
		CharacterID: "char-1",
		Level:       3,
		State:       pre,
	}))

	pre.Name = "Mutated"

	snaps, err := s.repo.ListSnapshots(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Require().Len(snaps, 1)
	s.Equal("Borin", snaps[0].State.Name)
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositorySuite))
}
