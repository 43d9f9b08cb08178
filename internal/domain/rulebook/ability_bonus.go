package rulebook

import (
	"fmt"
)

// AbilityBonus is a tagged variant: either a fixed per-ability map, flexible
// pick-N groups, or both. Subrace and race-variant bonuses use the same
// shape; a variant's bonus, when present, overrides the race's entirely.
type AbilityBonus struct {
	Fixed    map[Attribute]int `json:"fixed,omitempty"`
	Flexible []FlexibleGroup   `json:"flexible,omitempty"`
}

// FlexibleGroup lets the player spread a bonus over abilities of their
// choosing, e.g. "+1 to two different abilities".
type FlexibleGroup struct {
	Count    int         `json:"count"`
	Value    int         `json:"value"`
	PickFrom []Attribute `json:"pick_from,omitempty"` // empty means any ability
	Unique   bool        `json:"unique"`
}

// Empty reports whether the bonus grants nothing.
func (b AbilityBonus) Empty() bool {
	return len(b.Fixed) == 0 && len(b.Flexible) == 0
}

// Resolve flattens the bonus into a per-ability delta. picks supplies the
// player's choices for the flexible groups, in group order; each inner slice
// must name exactly Count abilities allowed by that group.
func (b AbilityBonus) Resolve(picks [][]Attribute) (map[Attribute]int, error) {
	out := make(map[Attribute]int)
	for attr, v := range b.Fixed {
		out[attr] += v
	}

	if len(picks) != len(b.Flexible) {
		return nil, fmt.Errorf("expected picks for %d flexible groups, got %d", len(b.Flexible), len(picks))
	}

	for i, group := range b.Flexible {
		chosen := picks[i]
		if len(chosen) != group.Count {
			return nil, fmt.Errorf("flexible group %d requires %d picks, got %d", i, group.Count, len(chosen))
		}

		seen := make(map[Attribute]bool)
		for _, attr := range chosen {
			if !attr.Valid() {
				return nil, fmt.Errorf("invalid ability %q", attr)
			}
			if group.Unique && seen[attr] {
				return nil, fmt.Errorf("ability %s picked twice in a unique group", attr)
			}
			seen[attr] = true

			if len(group.PickFrom) > 0 && !containsAttribute(group.PickFrom, attr) {
				return nil, fmt.Errorf("ability %s is not allowed by this group", attr)
			}
			out[attr] += group.Value
		}
	}

	return out, nil
}

func containsAttribute(list []Attribute, attr Attribute) bool {
	for _, a := range list {
		if a == attr {
			return true
		}
	}
	return false
}
