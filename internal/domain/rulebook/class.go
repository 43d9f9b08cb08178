package rulebook

// CasterKind determines how a class contributes to spell or pact slots.
type CasterKind string

const (
	CasterNone CasterKind = "none"
	CasterFull CasterKind = "full"
	CasterHalf CasterKind = "half"
	CasterPact CasterKind = "pact"
)

// LeveledFeature is a feature gated behind a class or subclass level.
type LeveledFeature struct {
	MinLevel int      `json:"min_level"`
	Feature  *Feature `json:"feature"`
}

// Class is a read-only catalog entry for a character class.
type Class struct {
	Key           string           `json:"key"`
	Name          string           `json:"name"`
	HitDie        int              `json:"hit_die"`
	Caster        CasterKind       `json:"caster"`
	SubclassLevel int              `json:"subclass_level"` // level at which a subclass is chosen
	Features      []LeveledFeature `json:"features"`

	// InfusionsKnown maps class level -> total infusions known at that
	// level. Only set for the artificer-style class.
	InfusionsKnown map[int]int `json:"infusions_known,omitempty"`
}

// FeaturesThroughLevel returns features unlocked at or below the given
// class level, in table order.
func (c *Class) FeaturesThroughLevel(level int) []*Feature {
	return featuresThroughLevel(c.Features, level)
}

// FeaturesAtLevel returns features unlocked exactly at the given class level.
func (c *Class) FeaturesAtLevel(level int) []*Feature {
	return featuresAtLevel(c.Features, level)
}

// Subclass is a read-only catalog entry for a class specialization.
type Subclass struct {
	Key      string           `json:"key"`
	Name     string           `json:"name"`
	ClassKey string           `json:"class_key"`
	Features []LeveledFeature `json:"features"`
}

// FeaturesThroughLevel returns subclass features unlocked at or below the
// given class level.
func (s *Subclass) FeaturesThroughLevel(level int) []*Feature {
	return featuresThroughLevel(s.Features, level)
}

// FeaturesAtLevel returns subclass features unlocked exactly at the given
// class level.
func (s *Subclass) FeaturesAtLevel(level int) []*Feature {
	return featuresAtLevel(s.Features, level)
}

func featuresThroughLevel(table []LeveledFeature, level int) []*Feature {
	var out []*Feature
	for _, lf := range table {
		if lf.MinLevel <= level {
			out = append(out, lf.Feature)
		}
	}
	return out
}

func featuresAtLevel(table []LeveledFeature, level int) []*Feature {
	var out []*Feature
	for _, lf := range table {
		if lf.MinLevel == level {
			out = append(out, lf.Feature)
		}
	}
	return out
}
