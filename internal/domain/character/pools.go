package character

// HitDicePool tracks one class's hit dice.
type HitDicePool struct {
	ClassKey string `json:"class_key"`
	DieSize  int    `json:"die_size"`
	Max      int    `json:"max"` // equals the class's resolved level
	Current  int    `json:"current"`
}

// Spend removes dice from the pool. Returns false without mutating when the
// pool cannot cover the request.
func (p *HitDicePool) Spend(count int) bool {
	if count < 0 || count > p.Current {
		return false
	}
	p.Current -= count
	return true
}

// RestoreAll refills the pool to its maximum.
func (p *HitDicePool) RestoreAll() {
	p.Current = p.Max
}

// SlotPool tracks spell slots of one spell level.
type SlotPool struct {
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}

// PactPool tracks pact-magic slots; all pact slots share one slot level.
type PactPool struct {
	SlotLevel int `json:"slot_level"`
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}
