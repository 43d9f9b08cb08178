package rulebook

// seedFeats returns the built-in feat tables. Ability increases and skill
// grants are explicit fields, never derived from the feat's name.
func seedFeats() []*Feat {
	return []*Feat{
		{
			Key:         "alert",
			Name:        "Alert",
			Description: "Always on the lookout for danger.",
			Features: []*Feature{{
				Key: "feat-alert-bonus", Name: "Alert",
				Description: "+5 bonus to initiative; you can't be surprised while conscious.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key:         "tough",
			Name:        "Tough",
			Description: "Your hit point maximum increases by 2 per level.",
			Features: []*Feature{{
				Key: "feat-tough-hp", Name: "Tough",
				Description: "Your hit point maximum increases by 2 for every level you have.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key:         "lucky",
			Name:        "Lucky",
			Description: "You have inexplicable luck that seems to kick in at just the right moment.",
			Features: []*Feature{{
				Key: "feat-luck-points", Name: "Luck Points",
				Description: "Spend a luck point to roll an additional d20 for an attack, check, or save.",
				Categories:  []FeatureCategory{CategoryPassive},
				Usage:       UsageSpec{Kind: UsageFixed, Count: 3, Reset: ResetLongRest},
			}},
		},
		{
			Key:             "heavy-armor-master",
			Name:            "Heavy Armor Master",
			Description:     "You can use your armor to deflect strikes that would kill others.",
			AbilityIncrease: map[Attribute]int{AttributeStrength: 1},
			Features: []*Feature{{
				Key: "feat-ham-reduction", Name: "Heavy Armor Master",
				Description: "While wearing heavy armor, reduce nonmagical weapon damage by 3.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key:             "keen-mind",
			Name:            "Keen Mind",
			Description:     "You have a mind that can track time, direction, and detail with uncanny precision.",
			AbilityIncrease: map[Attribute]int{AttributeIntelligence: 1},
			Features: []*Feature{{
				Key: "feat-keen-mind", Name: "Keen Mind",
				Description: "You always know which way is north and recall anything seen or heard in the past month.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key:         "martial-adept",
			Name:        "Martial Adept",
			Description: "You have martial training that allows you to perform special combat maneuvers.",
			OptionGroup: GroupManeuver,
			OptionCount: 2,
			Features: []*Feature{{
				Key: "feat-superiority-die", Name: "Superiority Die (Martial Adept)",
				Description: "You gain one d6 superiority die to fuel your maneuvers.",
				Categories:  []FeatureCategory{CategoryPassive},
				Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetShortRest},
			}},
		},
		{
			Key:         "menacing",
			Name:        "Menacing",
			Description: "You become fearsome to others.",
			AbilityIncrease: map[Attribute]int{
				AttributeCharisma: 1,
			},
			SkillGrants: []SkillGrant{{Skill: "intimidation"}},
		},
		{
			Key:         "prodigy",
			Name:        "Prodigy",
			Description: "You have a knack for learning new things.",
			SkillGrants: []SkillGrant{
				{Skill: "perception"},
				{Skill: "perception", Expertise: true},
			},
		},
	}
}
