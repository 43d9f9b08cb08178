package character

import (
	"fmt"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	"github.com/sheetforge/sheetforge/internal/rules"
)

// FeatureEntry is one resolved line on the character sheet.
type FeatureEntry struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Source        string `json:"source"`
	Tracked       bool   `json:"tracked"`
	UsesMax       int    `json:"uses_max,omitempty"`
	UsesRemaining int    `json:"uses_remaining,omitempty"`
}

// FeaturesByCategory groups resolved features by display category.
type FeaturesByCategory struct {
	Passive      []*FeatureEntry `json:"passive"`
	Actions      []*FeatureEntry `json:"actions"`
	BonusActions []*FeatureEntry `json:"bonus_actions"`
	Reactions    []*FeatureEntry `json:"reactions"`
}

// groupLabels name choice groups for descriptive sheet entries.
var groupLabels = map[rulebook.ChoiceGroup]string{
	rulebook.GroupFightingStyle: "Fighting Style",
	rulebook.GroupManeuver:      "Maneuver",
	rulebook.GroupInvocation:    "Eldritch Invocation",
	rulebook.GroupPactBoon:      "Pact Boon",
	rulebook.GroupMetamagic:     "Metamagic",
	rulebook.GroupASIOrFeat:     "Ability Score Improvement",
}

// resolver collects candidate features, deduplicating as it goes. A feature
// key already seen is never added twice; a case-insensitive name match is a
// second guard against the same rule effect arriving from two sources.
// First-seen source wins for attribution.
type resolver struct {
	char    *character.Character
	content *rulebook.Content

	out       *FeaturesByCategory
	seenKeys  map[string]bool
	seenNames []string
}

// ResolveFeatures computes the character's full active feature set from all
// of its sources, grouped by display category. Read-only and idempotent:
// the same state always yields the same output.
func ResolveFeatures(char *character.Character, content *rulebook.Content) *FeaturesByCategory {
	r := &resolver{
		char:     char,
		content:  content,
		out:      &FeaturesByCategory{},
		seenKeys: make(map[string]bool),
	}

	// Explicit granted rows first: they carry live use counts and must win
	// any conflict with catalog-derived copies.
	r.addGranted()

	r.addClassFeatures(char.ClassKey, char.SubclassKey)
	for _, mc := range char.Multiclasses {
		r.addClassFeatures(mc.ClassKey, mc.SubclassKey)
	}

	r.addRacialTraits()
	r.addBackgroundFeatures()
	r.addFeats()
	r.addSelections()
	r.addInfusions()

	return r.out
}

func (r *resolver) addGranted() {
	for _, f := range r.char.Features {
		entry := &FeatureEntry{
			Key:         f.Key,
			Name:        f.Name,
			Description: f.Description,
			Source:      f.Source,
		}
		if f.UsesMax != 0 {
			entry.Tracked = true
			entry.UsesMax = f.UsesMax
			entry.UsesRemaining = f.UsesRemaining
		}
		r.append(entry, primaryCategory(f.Categories))
	}
}

// addClassFeatures adds a class's and its subclass's features gated by that
// class's own resolved level, never the character's total level.
func (r *resolver) addClassFeatures(classKey, subclassKey string) {
	class, ok := r.content.Classes[classKey]
	if !ok {
		return
	}
	level := r.char.ClassLevel(classKey)

	for _, f := range class.FeaturesThroughLevel(level) {
		r.add(f, class.Name, level)
	}

	if subclassKey == "" {
		return
	}
	if subclass, ok := r.content.Subclasses[subclassKey]; ok {
		for _, f := range subclass.FeaturesThroughLevel(level) {
			r.add(f, subclass.Name, level)
		}
	}
}

func (r *resolver) addRacialTraits() {
	race, ok := r.content.Races[r.char.RaceKey]
	if !ok {
		return
	}

	// Variant replacement lists suppress the base traits they replace;
	// everything else a variant carries is additive.
	var variants []*rulebook.RaceVariant
	for _, key := range r.char.VariantKeys {
		if v, ok := r.content.Variants[key]; ok {
			variants = append(variants, v)
		}
	}
	replaced := func(traitKey string) bool {
		for _, v := range variants {
			if v.ReplacesTrait(traitKey) {
				return true
			}
		}
		return false
	}

	for _, trait := range race.Traits {
		if replaced(trait.Key) {
			continue
		}
		r.add(trait, race.Name, 0)
	}

	if subrace, ok := r.content.Subraces[r.char.SubraceKey]; ok {
		for _, trait := range subrace.Traits {
			r.add(trait, subrace.Name, 0)
		}
	}

	for _, v := range variants {
		for _, trait := range v.Traits {
			r.add(trait, v.Name, 0)
		}
	}
}

func (r *resolver) addBackgroundFeatures() {
	bg, ok := r.content.Backgrounds[r.char.BackgroundKey]
	if !ok {
		return
	}
	for _, f := range bg.Features {
		r.add(f, bg.Name, 0)
	}
}

// addFeats surfaces every feat as a standalone passive entry by name, plus
// whatever features it grants directly.
func (r *resolver) addFeats() {
	for _, key := range r.char.FeatKeys {
		feat, ok := r.content.Feats[key]
		if !ok {
			continue
		}

		r.append(&FeatureEntry{
			Key:         "feat:" + feat.Key,
			Name:        feat.Name,
			Description: feat.Description,
			Source:      "Feat",
		}, rulebook.CategoryPassive)

		for _, f := range feat.Features {
			r.add(f, feat.Name, 0)
		}
	}
}

func (r *resolver) addSelections() {
	for _, sel := range r.char.Selections {
		opt, ok := r.content.Options[sel.OptionKey]
		if !ok {
			continue
		}

		for _, f := range opt.Features {
			ownerLevel := 0
			if opt.ClassKey != "" {
				ownerLevel = r.char.ClassLevel(opt.ClassKey)
			}
			r.add(f, opt.Name, ownerLevel)
		}

		// Options that grant no feature of their own (an ASI pick, a feat
		// maneuver) still get a descriptive passive line.
		if len(opt.Features) == 0 {
			label := groupLabels[opt.Group]
			if label == "" {
				label = string(opt.Group)
			}
			r.append(&FeatureEntry{
				Key:    "option:" + opt.Key,
				Name:   fmt.Sprintf("%s: %s", label, opt.Name),
				Source: label,
			}, rulebook.CategoryPassive)
		}
	}
}

func (r *resolver) addInfusions() {
	for _, key := range r.char.InfusionKeys {
		inf, ok := r.content.Infusions[key]
		if !ok || inf.Feature == nil {
			continue
		}
		r.add(inf.Feature, "Infusion", r.char.ClassLevel("artificer"))
	}
}

// add places a catalog feature, resolving its usage spec. ownerLevel is the
// resolved level of the class that owns the feature, for class-level usage.
func (r *resolver) add(f *rulebook.Feature, source string, ownerLevel int) {
	entry := &FeatureEntry{
		Key:         f.Key,
		Name:        f.Name,
		Description: f.Description,
		Source:      source,
	}

	if f.Usage.Tracked() {
		max := resolveUsageMax(f.Usage, ownerLevel, r.char.Level)
		entry.Tracked = true
		entry.UsesMax = max
		entry.UsesRemaining = max
	}

	r.append(entry, f.PrimaryCategory())
}

func (r *resolver) append(entry *FeatureEntry, category rulebook.FeatureCategory) {
	if category == rulebook.CategoryHidden {
		return
	}
	if r.seenKeys[entry.Key] {
		return
	}
	for _, name := range r.seenNames {
		if rulebook.SameName(name, entry.Name) {
			return
		}
	}
	r.seenKeys[entry.Key] = true
	r.seenNames = append(r.seenNames, entry.Name)

	switch category {
	case rulebook.CategoryAction:
		r.out.Actions = append(r.out.Actions, entry)
	case rulebook.CategoryBonusAction:
		r.out.BonusActions = append(r.out.BonusActions, entry)
	case rulebook.CategoryReaction:
		r.out.Reactions = append(r.out.Reactions, entry)
	default:
		r.out.Passive = append(r.out.Passive, entry)
	}
}

// resolveUsageMax computes a feature's maximum uses: class level, then
// proficiency bonus, then the fixed count.
func resolveUsageMax(usage rulebook.UsageSpec, ownerLevel, totalLevel int) int {
	switch usage.Kind {
	case rulebook.UsageClassLevel:
		if ownerLevel < 1 {
			return usage.Count
		}
		return ownerLevel
	case rulebook.UsageProficiency:
		return rules.ProficiencyBonus(totalLevel)
	default:
		return usage.Count
	}
}

func primaryCategory(categories []rulebook.FeatureCategory) rulebook.FeatureCategory {
	f := rulebook.Feature{Categories: categories}
	return f.PrimaryCategory()
}
