package character

import (
	"context"
	"sort"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/rules"
)

// HitDiceSpend is a request to spend hit dice from one class's pool.
type HitDiceSpend struct {
	ClassKey string `json:"class_key"`
	Count    int    `json:"count"`
}

// HitDiceInfo is one class's hit dice pool as shown on the sheet.
type HitDiceInfo struct {
	ClassKey  string `json:"class_key"`
	ClassName string `json:"class_name"`
	DieSize   int    `json:"die_size"`
	Current   int    `json:"current"`
	Max       int    `json:"max"`
}

type ShortRestInput struct {
	CharacterID string
	OwnerID     string

	// HitDice are the dice to spend for healing; may be empty.
	HitDice []HitDiceSpend
}

type ShortRestOutput struct {
	Character        *character.Character
	HitPointsHealed  int
	FeaturesRestored []string
}

// ShortRest spends the requested hit dice for healing, restores short-rest
// features to their maxima, and rebuilds pact-magic slots from caster level
// before refilling them. The whole spend is validated before any die is
// rolled.
func (s *service) ShortRest(ctx context.Context, input *ShortRestInput) (*ShortRestOutput, error) {
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

	// Requested counts aggregate per class, so a spend list naming the same
	// pool twice is checked against the pool total, not entry by entry.
	requested := make(map[string]int, len(input.HitDice))
	for _, spend := range input.HitDice {
		pool, ok := char.HitDice[spend.ClassKey]
		if !ok || pool == nil {
			return nil, dnderr.Validationf("no hit dice for class '%s'", spend.ClassKey)
		}
		if spend.Count < 1 {
			return nil, dnderr.Validationf("hit dice count must be positive, got %d", spend.Count)
		}
		requested[spend.ClassKey] += spend.Count
		if requested[spend.ClassKey] > pool.Current {
			return nil, dnderr.Validationf("only %d hit dice remaining for class '%s', requested %d",
				pool.Current, spend.ClassKey, requested[spend.ClassKey])
		}
	}

	conMod := char.Ability(rulebook.AttributeConstitution).Modifier

	healed := 0
	for _, spend := range input.HitDice {
		pool := char.HitDice[spend.ClassKey]
		if !pool.Spend(spend.Count) {
			return nil, dnderr.Internalf("hit dice pool for class '%s' underflowed", spend.ClassKey)
		}

		for i := 0; i < spend.Count; i++ {
			result, err := s.roller.Roll(1, pool.DieSize, conMod)
			if err != nil {
				return nil, dnderr.Wrap(err, "failed to roll hit die")
			}
			// Each die heals at least 1, even at negative Constitution.
			gain := result.Total
			if gain < 1 {
				gain = 1
			}
			healed += gain
		}
	}

	char.CurrentHitPoints += healed
	if char.CurrentHitPoints > char.MaxHitPoints {
		healed -= char.CurrentHitPoints - char.MaxHitPoints
		char.CurrentHitPoints = char.MaxHitPoints
	}

	restored := restoreFeatures(char, rulebook.ResetShortRest)

	// Pact slots come back at the maximum the current caster level derives,
	// not whatever maximum was last stored.
	recomputeSlots(char, content, false)
	if char.PactSlots != nil {
		char.PactSlots.Remaining = char.PactSlots.Max
	}

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "short_rest", char.ID)
	}

	return &ShortRestOutput{
		Character:        char,
		HitPointsHealed:  healed,
		FeaturesRestored: restored,
	}, nil
}

type LongRestInput struct {
	CharacterID string
	OwnerID     string
}

type LongRestOutput struct {
	Character        *character.Character
	FeaturesRestored []string
}

// LongRest restores the character completely: hit points, temporary hit
// points cleared, all hit dice, every rest-scoped feature, all spell and
// pact slots, and death saves.
func (s *service) LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error) {
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

	char.CurrentHitPoints = char.MaxHitPoints
	char.TemporaryHitPoints = 0
	char.DeathSaves = character.DeathSaves{}

	for _, pool := range char.HitDice {
		pool.RestoreAll()
	}

	// Slot maxima are rebuilt from caster level first, then filled.
	recomputeSlots(char, content, false)
	for _, pool := range char.SpellSlots {
		pool.Remaining = pool.Max
	}
	if char.PactSlots != nil {
		char.PactSlots.Remaining = char.PactSlots.Max
	}

	restored := restoreFeatures(char, rulebook.ResetShortRest, rulebook.ResetLongRest)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, s.commitErr(err, "long_rest", char.ID)
	}

	return &LongRestOutput{Character: char, FeaturesRestored: restored}, nil
}

// restoreFeatures refills tracked features whose reset matches any of the
// given types, returning the names of those that actually regained uses.
func restoreFeatures(char *character.Character, resets ...rulebook.ResetType) []string {
	var restored []string
	for _, row := range char.Features {
		if row.UsesMax == 0 {
			continue
		}
		match := false
		for _, reset := range resets {
			if row.Reset == reset {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if row.UsesRemaining < row.UsesMax {
			restored = append(restored, row.Name)
		}
		row.UsesRemaining = row.UsesMax
	}
	return restored
}

// hitDiceInfo flattens the character's hit dice pools for display, sorted by
// class key for a stable order.
func hitDiceInfo(char *character.Character, content *rulebook.Content) []HitDiceInfo {
	out := make([]HitDiceInfo, 0, len(char.HitDice))
	for key, pool := range char.HitDice {
		if pool == nil {
			continue
		}
		info := HitDiceInfo{
			ClassKey: key,
			DieSize:  pool.DieSize,
			Current:  pool.Current,
			Max:      pool.Max,
		}
		if class, ok := content.Classes[key]; ok {
			info.ClassName = class.Name
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClassKey < out[j].ClassKey })
	return out
}

func proficiencyBonus(char *character.Character) int {
	return rules.ProficiencyBonus(char.Level)
}
