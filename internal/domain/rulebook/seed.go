package rulebook

// DefaultContent assembles the built-in rule content into a lookup bundle.
// The content repository serves this; callers go through the catalog.
func DefaultContent() *Content {
	content := &Content{
		Classes:     make(map[string]*Class),
		Subclasses:  make(map[string]*Subclass),
		Races:       make(map[string]*Race),
		Subraces:    make(map[string]*Subrace),
		Variants:    make(map[string]*RaceVariant),
		Backgrounds: make(map[string]*Background),
		Feats:       make(map[string]*Feat),
		Options:     make(map[string]*ChoiceOption),
		Infusions:   make(map[string]*Infusion),
	}

	for _, c := range seedClasses() {
		content.Classes[c.Key] = c
	}
	for _, sc := range seedSubclasses() {
		content.Subclasses[sc.Key] = sc
	}
	for _, r := range seedRaces() {
		content.Races[r.Key] = r
	}
	for _, sr := range seedSubraces() {
		content.Subraces[sr.Key] = sr
	}
	for _, v := range seedVariants() {
		content.Variants[v.Key] = v
	}
	for _, b := range seedBackgrounds() {
		content.Backgrounds[b.Key] = b
	}
	for _, f := range seedFeats() {
		content.Feats[f.Key] = f
	}
	for _, opt := range seedOptions() {
		content.Options[opt.Key] = opt
	}
	for _, inf := range seedInfusions() {
		content.Infusions[inf.Key] = inf
	}

	return content
}
