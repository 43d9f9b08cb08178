package rulebook

// ChoiceGroup names a family of mutually related player picks. Replacement
// requests use the group as an explicit tag instead of matching on
// localized group names.
type ChoiceGroup string

const (
	GroupFightingStyle ChoiceGroup = "fighting_style"
	GroupManeuver      ChoiceGroup = "maneuver"
	GroupInvocation    ChoiceGroup = "invocation"
	GroupPactBoon      ChoiceGroup = "pact_boon"
	GroupMetamagic     ChoiceGroup = "metamagic"
	GroupASIOrFeat     ChoiceGroup = "asi_or_feat"
)

// Prerequisite gates a choice option.
type Prerequisite struct {
	// MinClassLevel is checked against the resolved level of the class the
	// group belongs to (main class or multiclass entry).
	MinClassLevel int `json:"min_class_level,omitempty"`

	// PactBoonKey, when set, requires the character to already hold that
	// exact pact-boon choice option.
	PactBoonKey string `json:"pact_boon_key,omitempty"`
}

// SourceLink attaches a choice option to a source at a level threshold. The
// same option may be linked to several sources (a maneuver belongs to a
// subclass and is reused by a feat).
type SourceLink struct {
	SourceKey string `json:"source_key"`
	MinLevel  int    `json:"min_level"`
}

// ChoiceOption is a named pick belonging to a group.
type ChoiceOption struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Group       ChoiceGroup `json:"group"`
	ClassKey    string      `json:"class_key,omitempty"` // class whose resolved level gates prerequisites

	Features []*Feature    `json:"features,omitempty"`
	Prereq   *Prerequisite `json:"prereq,omitempty"`
	Sources  []SourceLink  `json:"sources,omitempty"`

	// GrantsAbility is an explicit ASI tag for options that raise an
	// ability when picked (the ASI half of an ASI-or-feat choice).
	GrantsAbility Attribute `json:"grants_ability,omitempty"`
	GrantsAmount  int       `json:"grants_amount,omitempty"`
}
