package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{13, 1},
		{14, 2},
		{15, 2},
		{18, 4},
		{20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{12, 4},
		{13, 5},
		{16, 5},
		{17, 6},
		{20, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ProficiencyBonus(tt.level), "level %d", tt.level)
	}
}

func TestClampAbility(t *testing.T) {
	assert.Equal(t, 20, ClampAbility(22))
	assert.Equal(t, 20, ClampAbility(20))
	assert.Equal(t, 19, ClampAbility(19))
	assert.Equal(t, 1, ClampAbility(0))
}

func TestAverageHitDie(t *testing.T) {
	assert.Equal(t, 4, AverageHitDie(6))
	assert.Equal(t, 5, AverageHitDie(8))
	assert.Equal(t, 6, AverageHitDie(10))
	assert.Equal(t, 7, AverageHitDie(12))
}

func TestSpellSlots(t *testing.T) {
	assert.Empty(t, SpellSlots(0))

	level1 := SpellSlots(1)
	assert.Equal(t, 2, level1[1])

	level5 := SpellSlots(5)
	assert.Equal(t, 4, level5[1])
	assert.Equal(t, 3, level5[2])
	assert.Equal(t, 2, level5[3])

	level20 := SpellSlots(20)
	assert.Equal(t, 1, level20[9])
}

func TestPactSlots(t *testing.T) {
	slotLevel, count := PactSlots(1)
	assert.Equal(t, 1, slotLevel)
	assert.Equal(t, 1, count)

	slotLevel, count = PactSlots(2)
	assert.Equal(t, 1, slotLevel)
	assert.Equal(t, 2, count)

	slotLevel, count = PactSlots(5)
	assert.Equal(t, 3, slotLevel)
	assert.Equal(t, 2, count)

	slotLevel, count = PactSlots(17)
	assert.Equal(t, 5, slotLevel)
	assert.Equal(t, 4, count)
}
