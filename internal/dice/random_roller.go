package dice

import (
	"errors"
	"math/rand"
)

// RandomRoller implements Roller with math/rand.
type RandomRoller struct{}

// NewRandomRoller creates a new RandomRoller.
func NewRandomRoller() *RandomRoller {
	return &RandomRoller{}
}

// Roll rolls count dice with the given sides and adds a bonus.
func (r *RandomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	total := 0
	for i := 0; i < count; i++ {
		rolls[i] = rand.Intn(sides) + 1
		total += rolls[i]
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
	}, nil
}
