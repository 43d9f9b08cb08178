package rulebook

// Attribute identifies one of the six ability scores.
type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

// Attributes lists all six abilities in display order.
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Valid reports whether a is one of the six abilities.
func (a Attribute) Valid() bool {
	for _, attr := range Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ProficiencyLevel is how good a character is at a skill.
type ProficiencyLevel string

const (
	ProficiencyLevelNone       ProficiencyLevel = "none"
	ProficiencyLevelProficient ProficiencyLevel = "proficient"
	ProficiencyLevelExpertise  ProficiencyLevel = "expertise"
)
