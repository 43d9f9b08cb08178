package character

import (
	"context"
	"time"

	"github.com/sheetforge/sheetforge/internal/domain/character"
	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/rules"
)

// LevelUpInput is a complete level-up proposal. It is validated as a whole
// and applied as one transaction.
type LevelUpInput struct {
	CharacterID string
	OwnerID     string

	// ClassKey is the class gaining the level. NewClass marks a multiclass
	// into a class the character has no levels in yet.
	ClassKey string
	NewClass bool

	// SubclassKey locks in a subclass at its unlock level.
	SubclassKey string

	AbilityIncreases map[rulebook.Attribute]int
	FeatKey          string

	// OptionKeys are fresh choice-option picks; Replacements swap held
	// options for new ones in the same group.
	OptionKeys   []string
	Replacements []Replacement

	InfusionKeys []string

	// HitPointRoll is the player's own roll for the hit point increase.
	// Nil takes the die average.
	HitPointRoll *int
}

type LevelUpOutput struct {
	Character *character.Character
	Snapshot  *character.Snapshot
}

func (s *service) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.ClassKey == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	char, err := s.getOwned(ctx, input.CharacterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	// The cap check comes before everything else; no snapshot is taken for
	// a rejected attempt.
	if char.Level >= rules.MaxLevel {
		return nil, dnderr.MaxLevelReached("already at the level cap").
			WithMeta("character_id", char.ID).
			WithMeta("level", char.Level)
	}

	content, err := s.catalog.Content(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load catalog content")
	}

	if err := validateLevelUp(char, input, content); err != nil {
		return nil, err
	}

	snap := &character.Snapshot{
		ID:          s.uuidGenerator.New(),
		CharacterID: char.ID,
		Level:       char.Level,
		TakenAt:     time.Now().UTC(),
		State:       char.Clone(),
	}

	applyLevelUp(char, input, content)

	if err := s.repository.SaveWithSnapshot(ctx, char, snap); err != nil {
		return nil, s.commitErr(err, "level_up", char.ID)
	}

	s.log.Info().
		Str("character_id", char.ID).
		Str("class_key", input.ClassKey).
		Int("level", char.Level).
		Msg("level up committed")

	return &LevelUpOutput{Character: char, Snapshot: snap}, nil
}

// applyLevelUp mutates the character per an already-validated proposal.
func applyLevelUp(char *character.Character, input *LevelUpInput, content *rulebook.Content) {
	class := content.Classes[input.ClassKey]

	// Ability increases land first so the hit point gain sees the new
	// Constitution modifier.
	for attr, amount := range input.AbilityIncreases {
		raiseAbility(char, attr, amount)
	}

	if input.FeatKey != "" {
		feat := content.Feats[input.FeatKey]
		char.FeatKeys = append(char.FeatKeys, feat.Key)
		for attr, amount := range feat.AbilityIncrease {
			raiseAbility(char, attr, amount)
		}
		for _, grant := range feat.SkillGrants {
			applySkillGrant(char, grant)
		}
		for _, f := range feat.Features {
			grantFeature(char, f, feat.Name, 0)
		}
	}

	char.Level++
	if input.NewClass {
		char.Multiclasses = append(char.Multiclasses, &character.MulticlassEntry{
			ClassKey:    class.Key,
			SubclassKey: input.SubclassKey,
			Level:       1,
		})
	} else {
		for _, mc := range char.Multiclasses {
			if mc.ClassKey == class.Key {
				mc.Level++
			}
		}
	}
	newClassLevel := char.ClassLevel(class.Key)

	if input.SubclassKey != "" {
		if class.Key == char.ClassKey {
			char.SubclassKey = input.SubclassKey
		} else {
			for _, mc := range char.Multiclasses {
				if mc.ClassKey == class.Key {
					mc.SubclassKey = input.SubclassKey
				}
			}
		}
	}

	applyHitPointGain(char, class, input.HitPointRoll)
	growHitDice(char, class)

	for _, f := range class.FeaturesAtLevel(newClassLevel) {
		grantFeature(char, f, class.Name, newClassLevel)
	}
	if subclassKey := char.SubclassFor(class.Key); subclassKey != "" {
		if subclass, ok := content.Subclasses[subclassKey]; ok {
			// A freshly chosen subclass contributes everything up to the
			// current class level, not just this level's row.
			features := subclass.FeaturesAtLevel(newClassLevel)
			if input.SubclassKey != "" {
				features = subclass.FeaturesThroughLevel(newClassLevel)
			}
			for _, f := range features {
				grantFeature(char, f, subclass.Name, newClassLevel)
			}
		}
	}

	for _, repl := range input.Replacements {
		applyReplacement(char, repl, content)
	}

	for _, key := range input.OptionKeys {
		opt := content.Options[key]
		char.Selections = append(char.Selections, &character.ChoiceSelection{
			OptionKey: opt.Key,
			Group:     opt.Group,
		})
		if opt.GrantsAbility != "" {
			raiseAbility(char, opt.GrantsAbility, opt.GrantsAmount)
		}
		for _, f := range opt.Features {
			grantFeature(char, f, opt.Name, char.ClassLevel(opt.ClassKey))
		}
	}

	for _, key := range input.InfusionKeys {
		if !char.KnowsInfusion(key) {
			char.InfusionKeys = append(char.InfusionKeys, key)
		}
	}

	refreshTrackedMaxima(char, content)
	recomputeSlots(char, content, true)
}

// raiseAbility bumps a score, clamping silently at the cap, and keeps the
// derived modifier in step.
func raiseAbility(char *character.Character, attr rulebook.Attribute, amount int) {
	if char.Abilities == nil {
		char.Abilities = make(map[rulebook.Attribute]*character.AbilityScore)
	}
	score, ok := char.Abilities[attr]
	if !ok || score == nil {
		score = &character.AbilityScore{}
		char.Abilities[attr] = score
	}
	score.Score = rules.ClampAbility(score.Score + amount)
	score.Modifier = rules.AbilityModifier(score.Score)
}

// applySkillGrant upgrades a skill one step at most. A proficiency grant on
// an already-proficient skill is a no-op, and an expertise grant without
// underlying proficiency is skipped rather than rejected.
func applySkillGrant(char *character.Character, grant rulebook.SkillGrant) {
	if char.Skills == nil {
		char.Skills = make(map[string]rulebook.ProficiencyLevel)
	}
	current := char.Skills[grant.Skill]
	if grant.Expertise {
		if current == rulebook.ProficiencyLevelProficient {
			char.Skills[grant.Skill] = rulebook.ProficiencyLevelExpertise
		}
		return
	}
	if current == "" || current == rulebook.ProficiencyLevelNone {
		char.Skills[grant.Skill] = rulebook.ProficiencyLevelProficient
	}
}

func applyHitPointGain(char *character.Character, class *rulebook.Class, roll *int) {
	conMod := char.Ability(rulebook.AttributeConstitution).Modifier

	gain := rules.AverageHitDie(class.HitDie) + conMod
	if gain < 1 {
		gain = 1
	}
	// An explicit non-negative value is the whole gain; the Constitution
	// modifier only enters the average fallback.
	if roll != nil && *roll >= 0 {
		gain = *roll
	}

	char.MaxHitPoints += gain
	char.CurrentHitPoints += gain
}

func growHitDice(char *character.Character, class *rulebook.Class) {
	if char.HitDice == nil {
		char.HitDice = make(map[string]*character.HitDicePool)
	}
	pool, ok := char.HitDice[class.Key]
	if !ok || pool == nil {
		pool = &character.HitDicePool{ClassKey: class.Key, DieSize: class.HitDie}
		char.HitDice[class.Key] = pool
	}
	pool.Max++
	pool.Current++
}

// grantFeature appends an explicit row unless one with the same key already
// exists. New tracked features arrive with full uses.
func grantFeature(char *character.Character, f *rulebook.Feature, source string, ownerLevel int) {
	if char.FeatureByKey(f.Key) != nil {
		return
	}

	row := &character.Feature{
		Key:         f.Key,
		Name:        f.Name,
		Description: f.Description,
		Source:      source,
		Categories:  f.Categories,
	}
	if f.Usage.Tracked() {
		max := resolveUsageMax(f.Usage, ownerLevel, char.Level)
		row.UsesMax = max
		row.UsesRemaining = max
		row.Reset = f.Usage.Reset
	}
	char.Features = append(char.Features, row)
}

func applyReplacement(char *character.Character, repl Replacement, content *rulebook.Content) {
	removed := content.Options[repl.RemoveKey]
	added := content.Options[repl.AddKey]

	char.RemoveSelection(removed.Key)
	for _, f := range removed.Features {
		char.RemoveFeature(f.Key)
	}

	char.Selections = append(char.Selections, &character.ChoiceSelection{
		OptionKey: added.Key,
		Group:     added.Group,
	})
	if added.GrantsAbility != "" {
		raiseAbility(char, added.GrantsAbility, added.GrantsAmount)
	}
	for _, f := range added.Features {
		grantFeature(char, f, added.Name, char.ClassLevel(added.ClassKey))
	}
}

// refreshTrackedMaxima recomputes use maxima for explicit rows whose limits
// scale with level, preserving uses already spent.
func refreshTrackedMaxima(char *character.Character, content *rulebook.Content) {
	specs := usageSpecIndex(content)
	for _, row := range char.Features {
		entry, ok := specs[row.Key]
		if !ok || !entry.spec.Tracked() {
			continue
		}
		ownerLevel := 0
		if entry.classKey != "" {
			ownerLevel = char.ClassLevel(entry.classKey)
		}
		newMax := resolveUsageMax(entry.spec, ownerLevel, char.Level)
		if newMax == row.UsesMax {
			continue
		}
		spent := row.UsesMax - row.UsesRemaining
		row.UsesMax = newMax
		row.UsesRemaining = newMax - spent
		if row.UsesRemaining < 0 {
			row.UsesRemaining = 0
		}
	}
}

type usageEntry struct {
	spec     rulebook.UsageSpec
	classKey string
}

// usageSpecIndex maps feature keys to their usage specs and owning class.
func usageSpecIndex(content *rulebook.Content) map[string]usageEntry {
	index := make(map[string]usageEntry)

	add := func(f *rulebook.Feature, classKey string) {
		if f == nil || !f.Usage.Tracked() {
			return
		}
		index[f.Key] = usageEntry{spec: f.Usage, classKey: classKey}
	}

	for _, class := range content.Classes {
		for _, lf := range class.Features {
			add(lf.Feature, class.Key)
		}
	}
	for _, subclass := range content.Subclasses {
		for _, lf := range subclass.Features {
			add(lf.Feature, subclass.ClassKey)
		}
	}
	for _, race := range content.Races {
		for _, f := range race.Traits {
			add(f, "")
		}
	}
	for _, subrace := range content.Subraces {
		for _, f := range subrace.Traits {
			add(f, "")
		}
	}
	for _, feat := range content.Feats {
		for _, f := range feat.Features {
			add(f, "")
		}
	}
	for _, opt := range content.Options {
		for _, f := range opt.Features {
			add(f, opt.ClassKey)
		}
	}

	return index
}

// recomputeSlots rebuilds spell and pact slot pools from current class
// levels. With grow set, new capacity arrives filled; otherwise remaining
// uses carry over capped at the new maximum.
func recomputeSlots(char *character.Character, content *rulebook.Content, grow bool) {
	casterLevel := 0
	pactLevel := 0

	addClass := func(classKey string, level int) {
		class, ok := content.Classes[classKey]
		if !ok {
			return
		}
		switch class.Caster {
		case rulebook.CasterFull:
			casterLevel += level
		case rulebook.CasterHalf:
			casterLevel += level / 2
		case rulebook.CasterPact:
			pactLevel += level
		}
	}

	addClass(char.ClassKey, char.ClassLevel(char.ClassKey))
	for _, mc := range char.Multiclasses {
		addClass(mc.ClassKey, mc.Level)
	}

	slots := rules.SpellSlots(casterLevel)
	if len(slots) == 0 {
		char.SpellSlots = nil
	} else {
		if char.SpellSlots == nil {
			char.SpellSlots = make(map[int]*character.SlotPool)
		}
		for level, max := range slots {
			pool, ok := char.SpellSlots[level]
			if !ok || pool == nil {
				char.SpellSlots[level] = &character.SlotPool{Max: max, Remaining: max}
				continue
			}
			delta := max - pool.Max
			pool.Max = max
			if grow && delta > 0 {
				pool.Remaining += delta
			}
			if pool.Remaining > pool.Max {
				pool.Remaining = pool.Max
			}
		}
		for level := range char.SpellSlots {
			if _, ok := slots[level]; !ok {
				delete(char.SpellSlots, level)
			}
		}
	}

	if pactLevel == 0 {
		char.PactSlots = nil
		return
	}
	slotLevel, count := rules.PactSlots(pactLevel)
	if char.PactSlots == nil {
		char.PactSlots = &character.PactPool{SlotLevel: slotLevel, Max: count, Remaining: count}
		return
	}
	delta := count - char.PactSlots.Max
	char.PactSlots.SlotLevel = slotLevel
	char.PactSlots.Max = count
	if grow && delta > 0 {
		char.PactSlots.Remaining += delta
	}
	if char.PactSlots.Remaining > count {
		char.PactSlots.Remaining = count
	}
}
