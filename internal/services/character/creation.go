package character

import (
	"context"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/rules"
)

type CreateCharacterInput struct {
	OwnerID string
	Name    string

	ClassKey      string
	RaceKey       string
	SubraceKey    string
	VariantKeys   []string
	BackgroundKey string

	// BaseAbilities are the rolled or point-bought scores before racial
	// bonuses land.
	BaseAbilities map[rulebook.Attribute]int

	// FlexiblePicks answer the racial bonus's flexible groups, in order.
	FlexiblePicks [][]rulebook.Attribute
}

type CreateCharacterOutput struct {
	Character *character.Character
}

// CreateCharacter builds a level-1 character with its racial bonuses
// resolved and its initial feature set granted.
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return nil, dnderr.InvalidArgument("name is required")
	}

	content, err := s.catalog.Content(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load catalog content")
	}

	class, ok := content.Classes[input.ClassKey]
	if !ok {
		return nil, dnderr.NotFoundf("class '%s' not found", input.ClassKey).
			WithMeta("class_key", input.ClassKey)
	}
	race, ok := content.Races[input.RaceKey]
	if !ok {
		return nil, dnderr.NotFoundf("race '%s' not found", input.RaceKey).
			WithMeta("race_key", input.RaceKey)
	}

	bonus := race.AbilityBonus
	if input.SubraceKey != "" {
		subrace, ok := content.Subraces[input.SubraceKey]
		if !ok {
			return nil, dnderr.NotFoundf("subrace '%s' not found", input.SubraceKey).
				WithMeta("subrace_key", input.SubraceKey)
		}
		if subrace.RaceKey != race.Key {
			return nil, dnderr.Validationf("%s is not a %s subrace", subrace.Name, race.Name)
		}
	}

	if err := validateVariants(input.VariantKeys, race, content); err != nil {
		return nil, err
	}
	for _, key := range input.VariantKeys {
		if v := content.Variants[key]; v.AbilityBonus != nil {
			bonus = *v.AbilityBonus
		}
	}

	if input.BackgroundKey != "" {
		if _, ok := content.Backgrounds[input.BackgroundKey]; !ok {
			return nil, dnderr.NotFoundf("background '%s' not found", input.BackgroundKey).
				WithMeta("background_key", input.BackgroundKey)
		}
	}

	deltas, err := bonus.Resolve(input.FlexiblePicks)
	if err != nil {
		return nil, dnderr.Validation(err.Error())
	}

	abilities := make(map[rulebook.Attribute]*character.AbilityScore, len(rulebook.Attributes))
	for _, attr := range rulebook.Attributes {
		score := rules.ClampAbility(input.BaseAbilities[attr] + deltas[attr])
		abilities[attr] = &character.AbilityScore{
			Score:    score,
			Modifier: rules.AbilityModifier(score),
		}
	}

	// Subrace bonuses are additive on top of the race's (or variant's).
	if input.SubraceKey != "" {
		subrace := content.Subraces[input.SubraceKey]
		for attr, v := range subrace.AbilityBonus.Fixed {
			entry := abilities[attr]
			entry.Score = rules.ClampAbility(entry.Score + v)
			entry.Modifier = rules.AbilityModifier(entry.Score)
		}
	}

	conMod := abilities[rulebook.AttributeConstitution].Modifier
	maxHP := class.HitDie + conMod
	if maxHP < 1 {
		maxHP = 1
	}

	char := &character.Character{
		ID:            s.uuidGenerator.New(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Status:        character.CharacterStatusActive,
		Level:         1,
		ClassKey:      class.Key,
		RaceKey:       race.Key,
		SubraceKey:    input.SubraceKey,
		VariantKeys:   append([]string(nil), input.VariantKeys...),
		BackgroundKey: input.BackgroundKey,
		Abilities:     abilities,

		MaxHitPoints:     maxHP,
		CurrentHitPoints: maxHP,
		HitDice: map[string]*character.HitDicePool{
			class.Key: {ClassKey: class.Key, DieSize: class.HitDie, Max: 1, Current: 1},
		},
		Skills: make(map[string]rulebook.ProficiencyLevel),
	}

	if input.BackgroundKey != "" {
		for _, skill := range content.Backgrounds[input.BackgroundKey].Skills {
			char.Skills[skill] = rulebook.ProficiencyLevelProficient
		}
	}

	for _, f := range class.FeaturesThroughLevel(1) {
		grantFeature(char, f, class.Name, 1)
	}

	recomputeSlots(char, content, true)

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, s.commitErr(err, "create", char.ID)
	}

	s.log.Info().
		Str("character_id", char.ID).
		Str("owner_id", char.OwnerID).
		Str("class_key", char.ClassKey).
		Msg("character created")

	return &CreateCharacterOutput{Character: char}, nil
}

// validateVariants checks each variant belongs to the race and that no two
// chosen variants share an exclusivity group.
func validateVariants(keys []string, race *rulebook.Race, content *rulebook.Content) error {
	groups := make(map[string]string)
	for _, key := range keys {
		v, ok := content.Variants[key]
		if !ok {
			return dnderr.NotFoundf("race variant '%s' not found", key).
				WithMeta("variant_key", key)
		}
		if v.RaceKey != race.Key {
			return dnderr.Validationf("%s is not a %s variant", v.Name, race.Name)
		}
		if v.ExclusivityGroup != "" {
			if other, taken := groups[v.ExclusivityGroup]; taken {
				return dnderr.Validationf("%s and %s are mutually exclusive", other, v.Name)
			}
			groups[v.ExclusivityGroup] = v.Name
		}
	}
	return nil
}
