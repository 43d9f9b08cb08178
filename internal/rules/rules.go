// Package rules holds the pure math of the game system: ability modifiers,
// proficiency bonus, hit-point averages, and the spell/pact slot tables.
// Nothing here touches storage or mutates state.
package rules

const (
	// MaxLevel is the level cap; level-ups past it are rejected.
	MaxLevel = 20

	// MaxAbilityScore is the hard cap applied after any bonus.
	MaxAbilityScore = 20
)

// AbilityModifier returns the modifier for an ability score. Uses floor
// division so odd scores below 10 round down (7 -> -2, not -1).
func AbilityModifier(score int) int {
	diff := score - 10
	if diff >= 0 {
		return diff / 2
	}
	return -((-diff + 1) / 2)
}

// ProficiencyBonus returns the proficiency bonus for a total character level.
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// ClampAbility caps a score at MaxAbilityScore. Scores are never clamped
// from below; penalties stand.
func ClampAbility(score int) int {
	if score > MaxAbilityScore {
		return MaxAbilityScore
	}
	return score
}

// AverageHitDie returns the fixed hit-point gain when a level-up does not
// supply a rolled value: half the die rounded up.
func AverageHitDie(die int) int {
	return die/2 + 1
}

// spellSlotTable maps full-caster level -> slots per spell level 1..9.
var spellSlotTable = [MaxLevel + 1][9]int{
	1:  {2},
	2:  {3},
	3:  {4, 2},
	4:  {4, 3},
	5:  {4, 3, 2},
	6:  {4, 3, 3},
	7:  {4, 3, 3, 1},
	8:  {4, 3, 3, 2},
	9:  {4, 3, 3, 3, 1},
	10: {4, 3, 3, 3, 2},
	11: {4, 3, 3, 3, 2, 1},
	12: {4, 3, 3, 3, 2, 1},
	13: {4, 3, 3, 3, 2, 1, 1},
	14: {4, 3, 3, 3, 2, 1, 1},
	15: {4, 3, 3, 3, 2, 1, 1, 1},
	16: {4, 3, 3, 3, 2, 1, 1, 1},
	17: {4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SpellSlots returns spell slots by spell level for an effective caster
// level. Zero caster level means no slots.
func SpellSlots(casterLevel int) map[int]int {
	if casterLevel < 1 {
		return map[int]int{}
	}
	if casterLevel > MaxLevel {
		casterLevel = MaxLevel
	}

	slots := make(map[int]int)
	for i, n := range spellSlotTable[casterLevel] {
		if n > 0 {
			slots[i+1] = n
		}
	}
	return slots
}

// PactSlots returns the pact-magic slot level and count for a warlock class
// level. Pact slots are all of one level and recover on a short rest.
func PactSlots(warlockLevel int) (slotLevel, count int) {
	if warlockLevel < 1 {
		return 0, 0
	}
	if warlockLevel > MaxLevel {
		warlockLevel = MaxLevel
	}

	switch {
	case warlockLevel >= 9:
		slotLevel = 5
	case warlockLevel >= 7:
		slotLevel = 4
	case warlockLevel >= 5:
		slotLevel = 3
	case warlockLevel >= 3:
		slotLevel = 2
	default:
		slotLevel = 1
	}

	switch {
	case warlockLevel >= 17:
		count = 4
	case warlockLevel >= 11:
		count = 3
	case warlockLevel >= 2:
		count = 2
	default:
		count = 1
	}

	return slotLevel, count
}
