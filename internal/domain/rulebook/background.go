package rulebook

// Background is a read-only catalog entry for a character background.
type Background struct {
	Key      string     `json:"key"`
	Name     string     `json:"name"`
	Features []*Feature `json:"features"`
	Skills   []string   `json:"skills"`
}
