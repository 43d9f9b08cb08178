package character

import (
	"context"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
)

type UseFeatureInput struct {
	CharacterID string
	OwnerID     string
	FeatureKey  string
}

type UseFeatureOutput struct {
	Feature *character.Feature
}

// UseFeature spends one use of a tracked feature.
func (s *service) UseFeature(ctx context.Context, input *UseFeatureInput) (*UseFeatureOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.FeatureKey == "" {
		return nil, dnderr.InvalidArgument("feature key is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	row := char.FeatureByKey(input.FeatureKey)
	if row == nil {
		return nil, dnderr.NotFoundf("feature '%s' not found on character", input.FeatureKey).
			WithMeta("feature_key", input.FeatureKey)
	}
	if row.UsesMax == 0 {
		return nil, dnderr.Validationf("%s has no tracked uses", row.Name)
	}
	if row.UsesRemaining <= 0 {
		return nil, dnderr.Validationf("%s has no uses remaining", row.Name)
	}

	row.UsesRemaining--

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "use_feature", char.ID)
	}
	return &UseFeatureOutput{Feature: row}, nil
}

type RestoreFeatureInput struct {
	CharacterID string
	OwnerID     string
	FeatureKey  string
}

type RestoreFeatureOutput struct {
	Feature *character.Feature
}

// RestoreFeature refunds one use of a tracked feature, capped at its maximum.
func (s *service) RestoreFeature(ctx context.Context, input *RestoreFeatureInput) (*RestoreFeatureOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.FeatureKey == "" {
		return nil, dnderr.InvalidArgument("feature key is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	row := char.FeatureByKey(input.FeatureKey)
	if row == nil {
		return nil, dnderr.NotFoundf("feature '%s' not found on character", input.FeatureKey).
			WithMeta("feature_key", input.FeatureKey)
	}
	if row.UsesMax == 0 {
		return nil, dnderr.Validationf("%s has no tracked uses", row.Name)
	}
	if row.UsesRemaining >= row.UsesMax {
		return nil, dnderr.Validationf("%s is already at full uses", row.Name)
	}

	row.UsesRemaining++

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "restore_feature", char.ID)
	}
	return &RestoreFeatureOutput{Feature: row}, nil
}

type RecordDeathSaveInput struct {
	CharacterID string
	OwnerID     string
	Success     bool
}

type RecordDeathSaveOutput struct {
	DeathSaves character.DeathSaves
	Stabilized bool
}

// RecordDeathSave records one death saving throw. Three successes stabilize
// and clear the tally; three failures mark the character dead.
func (s *service) RecordDeathSave(ctx context.Context, input *RecordDeathSaveInput) (*RecordDeathSaveOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if char.DeathSaves.Dead {
		return nil, dnderr.Validationf("%s is dead", char.Name)
	}

	stabilized := false
	if input.Success {
		char.DeathSaves.Successes++
		if char.DeathSaves.Successes >= 3 {
			char.DeathSaves = character.DeathSaves{}
			stabilized = true
		}
	} else {
		char.DeathSaves.Failures++
		if char.DeathSaves.Failures >= 3 {
			char.DeathSaves.Dead = true
		}
	}

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "death_save", char.ID)
	}

	return &RecordDeathSaveOutput{
		DeathSaves: char.DeathSaves,
		Stabilized: stabilized,
	}, nil
}
