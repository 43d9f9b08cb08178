package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller rolls dice. Injecting it keeps rest healing and hit-point rolls
// deterministic in tests.
type Roller interface {
	// Roll rolls count dice with the given number of sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a dice roll.
type RollResult struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls"`
	Bonus int   `json:"bonus"`
}
