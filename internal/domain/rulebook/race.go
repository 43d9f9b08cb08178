package rulebook

// Race is a read-only catalog entry for a character race.
type Race struct {
	Key          string       `json:"key"`
	Name         string       `json:"name"`
	Speed        int          `json:"speed"`
	AbilityBonus AbilityBonus `json:"ability_bonus"`
	Traits       []*Feature   `json:"traits"`
}

// Subrace refines a race with extra traits and its own bonus structure.
type Subrace struct {
	Key          string       `json:"key"`
	Name         string       `json:"name"`
	RaceKey      string       `json:"race_key"`
	AbilityBonus AbilityBonus `json:"ability_bonus"`
	Traits       []*Feature   `json:"traits"`
}

// RaceVariant is an alternate take on a race (e.g. a bloodline). Its traits
// are additive except for the ones it explicitly replaces. Variants sharing
// an exclusivity group are mutually incompatible.
type RaceVariant struct {
	Key              string     `json:"key"`
	Name             string     `json:"name"`
	RaceKey          string     `json:"race_key"`
	ExclusivityGroup string     `json:"exclusivity_group"`
	Traits           []*Feature `json:"traits"`

	// AbilityBonus, when non-nil, overrides the race's bonus structure.
	AbilityBonus *AbilityBonus `json:"ability_bonus,omitempty"`

	// Replaces lists base-race trait keys this variant suppresses.
	Replaces []string `json:"replaces,omitempty"`
}

// ReplacesTrait reports whether the variant suppresses the given trait key.
func (v *RaceVariant) ReplacesTrait(traitKey string) bool {
	for _, key := range v.Replaces {
		if key == traitKey {
			return true
		}
	}
	return false
}
