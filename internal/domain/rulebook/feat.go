package rulebook

// SkillGrant is a skill proficiency or expertise granted by a feat.
type SkillGrant struct {
	Skill     string `json:"skill"`
	Expertise bool   `json:"expertise"`
}

// Feat is a read-only catalog entry for a feat.
type Feat struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Features    []*Feature `json:"features,omitempty"`

	// AbilityIncrease is the feat's built-in ASI, stored as an explicit
	// map rather than parsed out of the feat name.
	AbilityIncrease map[Attribute]int `json:"ability_increase,omitempty"`

	SkillGrants []SkillGrant `json:"skill_grants,omitempty"`

	// OptionGroup, when set, means taking the feat requires picking
	// options from that choice group (e.g. a feat that teaches maneuvers).
	OptionGroup ChoiceGroup `json:"option_group,omitempty"`
	OptionCount int         `json:"option_count,omitempty"`
}
