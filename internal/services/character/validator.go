package character

import (
	"github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
)

// Replacement swaps one already-held choice option for another in the same
// group, as part of a level-up.
type Replacement struct {
	Group     rulebook.ChoiceGroup `json:"group"`
	RemoveKey string               `json:"remove_key"`
	AddKey    string               `json:"add_key"`
}

// validateLevelUp checks a full level-up proposal against the character's
// current state. Atomic: the first violation rejects the whole proposal and
// nothing is permitted to have been mutated by then.
func validateLevelUp(char *character.Character, input *LevelUpInput, content *rulebook.Content) error {
	class, ok := content.Classes[input.ClassKey]
	if !ok {
		return dnderr.NotFoundf("class '%s' not found", input.ClassKey).
			WithMeta("class_key", input.ClassKey)
	}

	if input.NewClass && char.HasClass(input.ClassKey) {
		return dnderr.Validationf("already has levels in %s, level it up instead of multiclassing", class.Name)
	}
	if !input.NewClass && !char.HasClass(input.ClassKey) {
		return dnderr.Validationf("no levels in %s, multiclass into it first", class.Name)
	}

	// The class level the proposal is taking the character to.
	newClassLevel := char.ClassLevel(input.ClassKey) + 1

	if input.SubclassKey != "" {
		subclass, ok := content.Subclasses[input.SubclassKey]
		if !ok {
			return dnderr.NotFoundf("subclass '%s' not found", input.SubclassKey).
				WithMeta("subclass_key", input.SubclassKey)
		}
		if subclass.ClassKey != input.ClassKey {
			return dnderr.Validationf("%s is not a %s subclass", subclass.Name, class.Name)
		}
		if existing := char.SubclassFor(input.ClassKey); existing != "" && existing != input.SubclassKey {
			return dnderr.Validationf("subclass for %s is already chosen", class.Name)
		}
	}

	for attr, amount := range input.AbilityIncreases {
		if !attr.Valid() {
			return dnderr.Validationf("unknown ability '%s'", attr)
		}
		// Increases past the cap clamp silently; only the step size is
		// validated here.
		if amount < 1 || amount > 2 {
			return dnderr.Validationf("ability increase for %s must be 1 or 2, got %d", attr, amount)
		}
	}

	if input.FeatKey != "" {
		if err := validateFeat(char, input, content); err != nil {
			return err
		}
	}

	for _, key := range input.OptionKeys {
		if err := validateNewOption(char, input, content, key, newClassLevel); err != nil {
			return err
		}
	}

	for _, repl := range input.Replacements {
		if err := validateReplacement(char, input, content, repl, newClassLevel); err != nil {
			return err
		}
	}

	if err := validateInfusions(char, input, content, class, newClassLevel); err != nil {
		return err
	}

	return nil
}

func validateFeat(char *character.Character, input *LevelUpInput, content *rulebook.Content) error {
	feat, ok := content.Feats[input.FeatKey]
	if !ok {
		return dnderr.NotFoundf("feat '%s' not found", input.FeatKey).
			WithMeta("feat_key", input.FeatKey)
	}
	if char.HasFeat(feat.Key) {
		return dnderr.Validationf("feat %s is already taken", feat.Name)
	}

	// Feats that carry their own choice group need exactly the declared
	// number of picks from that group in the same proposal.
	if feat.OptionGroup != "" {
		picked := 0
		for _, key := range input.OptionKeys {
			if opt, ok := content.Options[key]; ok && opt.Group == feat.OptionGroup {
				picked++
			}
		}
		if picked != feat.OptionCount {
			return dnderr.Validationf("feat %s requires exactly %d %s picks, got %d",
				feat.Name, feat.OptionCount, feat.OptionGroup, picked)
		}
	}
	return nil
}

func validateNewOption(char *character.Character, input *LevelUpInput, content *rulebook.Content, key string, newClassLevel int) error {
	opt, ok := content.Options[key]
	if !ok {
		return dnderr.NotFoundf("choice option '%s' not found", key).
			WithMeta("option_key", key)
	}
	if char.HasSelection(opt.Key) {
		return dnderr.Validationf("%s is already selected", opt.Name)
	}
	return checkPrereq(char, input, content, opt, newClassLevel)
}

func validateReplacement(char *character.Character, input *LevelUpInput, content *rulebook.Content, repl Replacement, newClassLevel int) error {
	if repl.RemoveKey == repl.AddKey {
		return dnderr.Validationf("replacement of '%s' with itself is a no-op", repl.RemoveKey)
	}

	removed, ok := content.Options[repl.RemoveKey]
	if !ok {
		return dnderr.NotFoundf("choice option '%s' not found", repl.RemoveKey).
			WithMeta("option_key", repl.RemoveKey)
	}
	if removed.Group != repl.Group {
		return dnderr.Validationf("%s is not in the %s group", removed.Name, repl.Group)
	}
	held := false
	for _, sel := range char.SelectionsInGroup(repl.Group) {
		if sel.OptionKey == removed.Key {
			held = true
			break
		}
	}
	if !held {
		return dnderr.Validationf("%s is not currently selected, cannot replace it", removed.Name)
	}

	added, ok := content.Options[repl.AddKey]
	if !ok {
		return dnderr.NotFoundf("choice option '%s' not found", repl.AddKey).
			WithMeta("option_key", repl.AddKey)
	}
	if added.Group != repl.Group {
		return dnderr.Validationf("%s is not in the %s group", added.Name, repl.Group)
	}
	if char.HasSelection(added.Key) {
		return dnderr.Validationf("%s is already selected", added.Name)
	}

	return checkPrereq(char, input, content, added, newClassLevel)
}

// checkPrereq enforces an option's prerequisites against the level the
// owning class will hold after this level-up.
func checkPrereq(char *character.Character, input *LevelUpInput, content *rulebook.Content, opt *rulebook.ChoiceOption, newClassLevel int) error {
	if opt.Prereq == nil {
		return nil
	}

	if opt.Prereq.MinClassLevel > 0 {
		level := char.ClassLevel(opt.ClassKey)
		if opt.ClassKey == input.ClassKey {
			level = newClassLevel
		}
		if level < opt.Prereq.MinClassLevel {
			className := opt.ClassKey
			if class, ok := content.Classes[opt.ClassKey]; ok {
				className = class.Name
			}
			return dnderr.Validationf("%s requires %s level %d", opt.Name, className, opt.Prereq.MinClassLevel)
		}
	}

	if opt.Prereq.PactBoonKey != "" {
		// A boon replaced in the same proposal no longer counts, and one
		// newly picked counts immediately.
		holds := char.HasSelection(opt.Prereq.PactBoonKey)
		for _, repl := range input.Replacements {
			if repl.RemoveKey == opt.Prereq.PactBoonKey {
				holds = false
			}
			if repl.AddKey == opt.Prereq.PactBoonKey {
				holds = true
			}
		}
		for _, key := range input.OptionKeys {
			if key == opt.Prereq.PactBoonKey {
				holds = true
			}
		}
		if !holds {
			boonName := opt.Prereq.PactBoonKey
			if boon, ok := content.Options[opt.Prereq.PactBoonKey]; ok {
				boonName = boon.Name
			}
			return dnderr.Validationf("%s requires %s", opt.Name, boonName)
		}
	}

	return nil
}

// validateInfusions enforces consumable-pick counts. When the class table
// grants a new infusions-known total at the level being reached, the
// proposal must choose exactly the difference; otherwise no infusion picks
// are accepted.
func validateInfusions(char *character.Character, input *LevelUpInput, content *rulebook.Content, class *rulebook.Class, newClassLevel int) error {
	required := 0
	if total, ok := class.InfusionsKnown[newClassLevel]; ok {
		required = total - len(char.InfusionKeys)
		if required < 0 {
			required = 0
		}
	}

	if len(class.InfusionsKnown) == 0 && len(input.InfusionKeys) > 0 {
		return dnderr.Validationf("%s does not learn infusions", class.Name)
	}
	if len(input.InfusionKeys) != required {
		return dnderr.Validationf("must choose exactly %d infusions at %s level %d, got %d",
			required, class.Name, newClassLevel, len(input.InfusionKeys))
	}

	eligible := make(map[string]bool)
	for _, inf := range content.EligibleInfusions(newClassLevel) {
		eligible[inf.Key] = true
	}

	seen := make(map[string]bool, len(input.InfusionKeys))
	for _, key := range input.InfusionKeys {
		if seen[key] {
			return dnderr.Validationf("infusion '%s' chosen twice", key)
		}
		seen[key] = true
		inf, ok := content.Infusions[key]
		if !ok {
			return dnderr.NotFoundf("infusion '%s' not found", key).
				WithMeta("infusion_key", key)
		}
		if !eligible[inf.Key] {
			return dnderr.Validationf("%s requires %s level %d", inf.Name, class.Name, inf.MinLevel)
		}
		if char.KnowsInfusion(key) {
			return dnderr.Validationf("%s is already known", inf.Name)
		}
	}
	return nil
}
