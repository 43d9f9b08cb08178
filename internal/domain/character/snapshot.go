package character

import "time"

// Snapshot is an immutable copy of a character's full state, taken before a
// level-up mutates it. History is rollback-by-copy, never in-place.
type Snapshot struct {
	ID          string     `json:"id"`
	CharacterID string     `json:"character_id"`
	Level       int        `json:"level"` // level the character held when taken
	TakenAt     time.Time  `json:"taken_at"`
	State       *Character `json:"state"`
}
