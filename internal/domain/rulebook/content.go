package rulebook

// Content is the full rule-content bundle the catalog serves. It is small
// enough to hold in memory whole; lookups are plain map reads.
type Content struct {
	Classes     map[string]*Class
	Subclasses  map[string]*Subclass
	Races       map[string]*Race
	Subraces    map[string]*Subrace
	Variants    map[string]*RaceVariant
	Backgrounds map[string]*Background
	Feats       map[string]*Feat
	Options     map[string]*ChoiceOption
	Infusions   map[string]*Infusion
}

// OptionsInGroup returns every choice option in a group.
func (c *Content) OptionsInGroup(group ChoiceGroup) []*ChoiceOption {
	var out []*ChoiceOption
	for _, opt := range c.Options {
		if opt.Group == group {
			out = append(out, opt)
		}
	}
	return out
}

// SubclassesOf returns the subclasses belonging to a class.
func (c *Content) SubclassesOf(classKey string) []*Subclass {
	var out []*Subclass
	for _, sc := range c.Subclasses {
		if sc.ClassKey == classKey {
			out = append(out, sc)
		}
	}
	return out
}

// VariantsOf returns the race variants belonging to a race.
func (c *Content) VariantsOf(raceKey string) []*RaceVariant {
	var out []*RaceVariant
	for _, v := range c.Variants {
		if v.RaceKey == raceKey {
			out = append(out, v)
		}
	}
	return out
}

// EligibleInfusions returns infusions available at or below the given
// artificer class level.
func (c *Content) EligibleInfusions(classLevel int) []*Infusion {
	var out []*Infusion
	for _, inf := range c.Infusions {
		if inf.MinLevel <= classLevel {
			out = append(out, inf)
		}
	}
	return out
}
