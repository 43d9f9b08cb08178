package rulebook

import "strings"

// FeatureCategory is the display category a feature falls under on the sheet.
type FeatureCategory string

const (
	CategoryPassive     FeatureCategory = "passive"
	CategoryAction      FeatureCategory = "action"
	CategoryBonusAction FeatureCategory = "bonus_action"
	CategoryReaction    FeatureCategory = "reaction"
	CategoryHidden      FeatureCategory = "hidden"
)

// categoryPrecedence orders categories for features carrying multiple tags.
var categoryPrecedence = []FeatureCategory{
	CategoryAction,
	CategoryBonusAction,
	CategoryReaction,
	CategoryPassive,
}

// ResetType is when a feature's uses come back.
type ResetType string

const (
	ResetShortRest ResetType = "short_rest"
	ResetLongRest  ResetType = "long_rest"
	ResetNone      ResetType = "none"
)

// UsageKind is how a feature's maximum uses are derived.
type UsageKind string

const (
	// UsageNone marks a purely passive feature with no tracked uses
	UsageNone UsageKind = "none"

	// UsageFixed uses the Count field as-is
	UsageFixed UsageKind = "fixed"

	// UsageProficiency derives uses from the proficiency bonus
	UsageProficiency UsageKind = "proficiency"

	// UsageClassLevel derives uses from the owning class's resolved level
	UsageClassLevel UsageKind = "class_level"
)

// UsageSpec describes a feature's usage limit.
type UsageSpec struct {
	Kind  UsageKind `json:"kind"`
	Count int       `json:"count,omitempty"`
	Reset ResetType `json:"reset,omitempty"`
}

// Tracked reports whether the feature has a tracked use pool.
func (u UsageSpec) Tracked() bool {
	return u.Kind != "" && u.Kind != UsageNone
}

// Feature is an atomic rule effect granted by a source.
type Feature struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Categories  []FeatureCategory `json:"categories"`
	Usage       UsageSpec         `json:"usage"`
}

// PrimaryCategory resolves a multi-tagged feature to its display category:
// action > bonus action > reaction > passive. Hidden features stay hidden.
func (f *Feature) PrimaryCategory() FeatureCategory {
	if len(f.Categories) == 0 {
		return CategoryPassive
	}
	for _, c := range categoryPrecedence {
		for _, tag := range f.Categories {
			if tag == c {
				return c
			}
		}
	}
	return f.Categories[0]
}

// SameName reports whether two feature names match case-insensitively. Used
// as a dedup guard when the same rule effect arrives from two sources.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
