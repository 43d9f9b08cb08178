package character

import (
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
)

// CharacterStatus tracks the lifecycle of a character record.
type CharacterStatus string

const (
	CharacterStatusActive   CharacterStatus = "active"
	CharacterStatusArchived CharacterStatus = "archived"
)

// AbilityScore is a score plus its derived modifier.
type AbilityScore struct {
	Score    int `json:"score"`
	Modifier int `json:"modifier"`
}

// MulticlassEntry is a secondary class with its own level, tracked apart
// from the primary class.
type MulticlassEntry struct {
	ClassKey    string `json:"class_key"`
	SubclassKey string `json:"subclass_key,omitempty"`
	Level       int    `json:"level"`
}

// ChoiceSelection is a player-made pick of a choice option.
type ChoiceSelection struct {
	OptionKey string               `json:"option_key"`
	Group     rulebook.ChoiceGroup `json:"group"`
}

// Feature is an explicit granted-feature row on the character. These carry
// live use counts and win over catalog-derived features on conflict.
type Feature struct {
	Key           string                     `json:"key"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description"`
	Source        string                     `json:"source"`
	Categories    []rulebook.FeatureCategory `json:"categories,omitempty"`
	UsesMax       int                        `json:"uses_max"` // 0 means untracked
	UsesRemaining int                        `json:"uses_remaining"`
	Reset         rulebook.ResetType         `json:"reset,omitempty"`
}

// DeathSaves tracks death saving throws.
type DeathSaves struct {
	Successes int  `json:"successes"`
	Failures  int  `json:"failures"`
	Dead      bool `json:"dead"`
}

// Character is the mutable subject of the progression engine. It references
// catalog entries by key; the resolver joins them back through the catalog.
type Character struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	Name       string          `json:"name"`
	ShareToken string          `json:"share_token,omitempty"`
	Status     CharacterStatus `json:"status"`

	// Level is the total across all classes.
	Level int `json:"level"`

	ClassKey      string             `json:"class_key"`
	SubclassKey   string             `json:"subclass_key,omitempty"`
	RaceKey       string             `json:"race_key,omitempty"`
	SubraceKey    string             `json:"subrace_key,omitempty"`
	VariantKeys   []string           `json:"variant_keys,omitempty"`
	BackgroundKey string             `json:"background_key,omitempty"`
	FeatKeys      []string           `json:"feat_keys,omitempty"`
	Multiclasses  []*MulticlassEntry `json:"multiclasses,omitempty"`
	Selections    []*ChoiceSelection `json:"selections,omitempty"`
	InfusionKeys  []string           `json:"infusion_keys,omitempty"`

	Abilities map[rulebook.Attribute]*AbilityScore `json:"abilities"`

	MaxHitPoints       int        `json:"max_hit_points"`
	CurrentHitPoints   int        `json:"current_hit_points"`
	TemporaryHitPoints int        `json:"temporary_hit_points"`
	DeathSaves         DeathSaves `json:"death_saves"`

	// HitDice is keyed by class key; every class contributes its own pool.
	HitDice map[string]*HitDicePool `json:"hit_dice"`

	SpellSlots map[int]*SlotPool `json:"spell_slots,omitempty"`
	PactSlots  *PactPool         `json:"pact_slots,omitempty"`

	// Features are the explicit granted rows with live use tracking.
	Features []*Feature `json:"features,omitempty"`

	Skills map[string]rulebook.ProficiencyLevel `json:"skills,omitempty"`

	// Notes are free-text custom fields on the sheet.
	Notes map[string]string `json:"notes,omitempty"`
}

// ClassLevel resolves a class's own level. The primary class's level is the
// total minus every multiclass entry, floored at 1; a multiclass entry owns
// its stored level. Unknown classes resolve to 0.
func (c *Character) ClassLevel(classKey string) int {
	if classKey == c.ClassKey {
		level := c.Level
		for _, mc := range c.Multiclasses {
			level -= mc.Level
		}
		if level < 1 {
			level = 1
		}
		return level
	}
	for _, mc := range c.Multiclasses {
		if mc.ClassKey == classKey {
			return mc.Level
		}
	}
	return 0
}

// HasClass reports whether the character has levels in the given class.
func (c *Character) HasClass(classKey string) bool {
	if classKey == c.ClassKey {
		return true
	}
	for _, mc := range c.Multiclasses {
		if mc.ClassKey == classKey {
			return true
		}
	}
	return false
}

// SubclassFor returns the chosen subclass key for a class, if any.
func (c *Character) SubclassFor(classKey string) string {
	if classKey == c.ClassKey {
		return c.SubclassKey
	}
	for _, mc := range c.Multiclasses {
		if mc.ClassKey == classKey {
			return mc.SubclassKey
		}
	}
	return ""
}

// HasSelection reports whether a choice option is currently selected.
func (c *Character) HasSelection(optionKey string) bool {
	for _, sel := range c.Selections {
		if sel.OptionKey == optionKey {
			return true
		}
	}
	return false
}

// SelectionsInGroup returns the selected options in a choice group.
func (c *Character) SelectionsInGroup(group rulebook.ChoiceGroup) []*ChoiceSelection {
	var out []*ChoiceSelection
	for _, sel := range c.Selections {
		if sel.Group == group {
			out = append(out, sel)
		}
	}
	return out
}

// RemoveSelection disconnects a choice option. Returns false if absent.
func (c *Character) RemoveSelection(optionKey string) bool {
	for i, sel := range c.Selections {
		if sel.OptionKey == optionKey {
			c.Selections = append(c.Selections[:i], c.Selections[i+1:]...)
			return true
		}
	}
	return false
}

// HasFeat reports whether the character has taken the given feat.
func (c *Character) HasFeat(featKey string) bool {
	for _, key := range c.FeatKeys {
		if key == featKey {
			return true
		}
	}
	return false
}

// KnowsInfusion reports whether the character already knows an infusion.
func (c *Character) KnowsInfusion(infusionKey string) bool {
	for _, key := range c.InfusionKeys {
		if key == infusionKey {
			return true
		}
	}
	return false
}

// FeatureByKey returns the explicit granted row for a feature key, or nil.
func (c *Character) FeatureByKey(key string) *Feature {
	for _, f := range c.Features {
		if f.Key == key {
			return f
		}
	}
	return nil
}

// RemoveFeature drops an explicit granted row. Returns false if absent.
func (c *Character) RemoveFeature(key string) bool {
	for i, f := range c.Features {
		if f.Key == key {
			c.Features = append(c.Features[:i], c.Features[i+1:]...)
			return true
		}
	}
	return false
}

// Ability returns the score entry for an attribute, zero-valued if unset.
func (c *Character) Ability(attr rulebook.Attribute) AbilityScore {
	if c.Abilities == nil {
		return AbilityScore{}
	}
	if score, ok := c.Abilities[attr]; ok && score != nil {
		return *score
	}
	return AbilityScore{}
}
