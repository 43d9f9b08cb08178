package rulebook

// MagicItem is a minimal reference to an item an infusion can replicate.
type MagicItem struct {
	Key                string `json:"key"`
	Name               string `json:"name"`
	Rarity             string `json:"rarity"`
	RequiresAttunement bool   `json:"requires_attunement"`
}

// Infusion is a consumable-style grant available above a minimum class
// level. A known infusion contributes one feature to the sheet.
type Infusion struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinLevel    int    `json:"min_level"`

	Feature        *Feature   `json:"feature"`
	ReplicatesItem *MagicItem `json:"replicates_item,omitempty"`
}
