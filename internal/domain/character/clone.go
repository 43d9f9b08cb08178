package character

import "github.com/sheetforge/sheetforge/internal/domain/rulebook"

// Clone deep-copies the character, child collections included. Snapshots,
// duplication, and copy-by-token all go through this one function; the
// callers differ only in which identity fields they override afterward.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c

	out.VariantKeys = append([]string(nil), c.VariantKeys...)
	out.FeatKeys = append([]string(nil), c.FeatKeys...)
	out.InfusionKeys = append([]string(nil), c.InfusionKeys...)

	if c.Multiclasses != nil {
		out.Multiclasses = make([]*MulticlassEntry, len(c.Multiclasses))
		for i, mc := range c.Multiclasses {
			entry := *mc
			out.Multiclasses[i] = &entry
		}
	}

	if c.Selections != nil {
		out.Selections = make([]*ChoiceSelection, len(c.Selections))
		for i, sel := range c.Selections {
			selection := *sel
			out.Selections[i] = &selection
		}
	}

	if c.Abilities != nil {
		out.Abilities = make(map[rulebook.Attribute]*AbilityScore, len(c.Abilities))
		for attr, score := range c.Abilities {
			if score == nil {
				continue
			}
			copied := *score
			out.Abilities[attr] = &copied
		}
	}

	if c.HitDice != nil {
		out.HitDice = make(map[string]*HitDicePool, len(c.HitDice))
		for key, pool := range c.HitDice {
			if pool == nil {
				continue
			}
			copied := *pool
			out.HitDice[key] = &copied
		}
	}

	if c.SpellSlots != nil {
		out.SpellSlots = make(map[int]*SlotPool, len(c.SpellSlots))
		for level, pool := range c.SpellSlots {
			if pool == nil {
				continue
			}
			copied := *pool
			out.SpellSlots[level] = &copied
		}
	}

	if c.PactSlots != nil {
		pact := *c.PactSlots
		out.PactSlots = &pact
	}

	if c.Features != nil {
		out.Features = make([]*Feature, len(c.Features))
		for i, f := range c.Features {
			feature := *f
			feature.Categories = append([]rulebook.FeatureCategory(nil), f.Categories...)
			out.Features[i] = &feature
		}
	}

	if c.Skills != nil {
		out.Skills = make(map[string]rulebook.ProficiencyLevel, len(c.Skills))
		for skill, level := range c.Skills {
			out.Skills[skill] = level
		}
	}

	if c.Notes != nil {
		out.Notes = make(map[string]string, len(c.Notes))
		for k, v := range c.Notes {
			out.Notes[k] = v
		}
	}

	return &out
}
