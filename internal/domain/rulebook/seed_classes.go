package rulebook

// seedClasses returns the built-in class tables. Levels index the class's
// own resolved level, not the character's total level.
func seedClasses() []*Class {
	return []*Class{
		{
			Key:           "fighter",
			Name:          "Fighter",
			HitDie:        10,
			Caster:        CasterNone,
			SubclassLevel: 3,
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "second-wind",
					Name:        "Second Wind",
					Description: "Regain 1d10 + fighter level hit points as a bonus action.",
					Categories:  []FeatureCategory{CategoryBonusAction},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetShortRest},
				}},
				{MinLevel: 2, Feature: &Feature{
					Key:         "action-surge",
					Name:        "Action Surge",
					Description: "Take one additional action on your turn.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetShortRest},
				}},
				{MinLevel: 5, Feature: &Feature{
					Key:         "extra-attack",
					Name:        "Extra Attack",
					Description: "Attack twice whenever you take the Attack action.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 9, Feature: &Feature{
					Key:         "indomitable",
					Name:        "Indomitable",
					Description: "Reroll a failed saving throw.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetLongRest},
				}},
			},
		},
		{
			Key:           "warlock",
			Name:          "Warlock",
			HitDie:        8,
			Caster:        CasterPact,
			SubclassLevel: 1,
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "pact-magic",
					Name:        "Pact Magic",
					Description: "Cast warlock spells using pact slots that recover on a short rest.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 2, Feature: &Feature{
					Key:         "eldritch-invocations",
					Name:        "Eldritch Invocations",
					Description: "Fragments of forbidden knowledge imbue you with magical ability.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 11, Feature: &Feature{
					Key:         "mystic-arcanum",
					Name:        "Mystic Arcanum (6th level)",
					Description: "Cast one 6th-level spell without a slot.",
					Categories:  []FeatureCategory{CategoryAction},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetLongRest},
				}},
			},
		},
		{
			Key:           "artificer",
			Name:          "Artificer",
			HitDie:        8,
			Caster:        CasterHalf,
			SubclassLevel: 3,
			InfusionsKnown: map[int]int{
				2: 4, 6: 6, 10: 8, 14: 10, 18: 12,
			},
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "magical-tinkering",
					Name:        "Magical Tinkering",
					Description: "Invest a tiny object with a minor magical property.",
					Categories:  []FeatureCategory{CategoryAction},
				}},
				{MinLevel: 2, Feature: &Feature{
					Key:         "infuse-item",
					Name:        "Infuse Item",
					Description: "Imbue mundane items with magical infusions when you finish a long rest.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 7, Feature: &Feature{
					Key:         "flash-of-genius",
					Name:        "Flash of Genius",
					Description: "Add your Intelligence modifier to a nearby creature's check or save.",
					Categories:  []FeatureCategory{CategoryReaction},
					Usage:       UsageSpec{Kind: UsageProficiency, Reset: ResetLongRest},
				}},
			},
		},
		{
			Key:           "paladin",
			Name:          "Paladin",
			HitDie:        10,
			Caster:        CasterHalf,
			SubclassLevel: 3,
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "lay-on-hands",
					Name:        "Lay on Hands",
					Description: "A pool of healing power that restores hit points by touch.",
					Categories:  []FeatureCategory{CategoryAction},
					Usage:       UsageSpec{Kind: UsageClassLevel, Reset: ResetLongRest},
				}},
				{MinLevel: 2, Feature: &Feature{
					Key:         "divine-smite",
					Name:        "Divine Smite",
					Description: "Expend a spell slot to deal radiant damage on a hit.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 3, Feature: &Feature{
					Key:         "divine-health",
					Name:        "Divine Health",
					Description: "Immunity to disease.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
			},
		},
		{
			Key:           "wizard",
			Name:          "Wizard",
			HitDie:        6,
			Caster:        CasterFull,
			SubclassLevel: 2,
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "arcane-recovery",
					Name:        "Arcane Recovery",
					Description: "Recover expended spell slots on a short rest once per day.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetLongRest},
				}},
				{MinLevel: 18, Feature: &Feature{
					Key:         "spell-mastery",
					Name:        "Spell Mastery",
					Description: "Cast a chosen 1st- and 2nd-level spell at will.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
			},
		},
	}
}

// seedSubclasses returns the built-in subclass tables.
func seedSubclasses() []*Subclass {
	return []*Subclass{
		{
			Key:      "battle-master",
			Name:     "Battle Master",
			ClassKey: "fighter",
			Features: []LeveledFeature{
				{MinLevel: 3, Feature: &Feature{
					Key:         "combat-superiority",
					Name:        "Combat Superiority",
					Description: "Superiority dice fuel your maneuvers.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 4, Reset: ResetShortRest},
				}},
				{MinLevel: 7, Feature: &Feature{
					Key:         "know-your-enemy",
					Name:        "Know Your Enemy",
					Description: "Size up a creature's capabilities by observing it.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
			},
		},
		{
			Key:      "champion",
			Name:     "Champion",
			ClassKey: "fighter",
			Features: []LeveledFeature{
				{MinLevel: 3, Feature: &Feature{
					Key:         "improved-critical",
					Name:        "Improved Critical",
					Description: "Your weapon attacks score a critical hit on a 19 or 20.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 7, Feature: &Feature{
					Key:         "remarkable-athlete",
					Name:        "Remarkable Athlete",
					Description: "Add half your proficiency bonus to certain checks.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
			},
		},
		{
			Key:      "fiend-patron",
			Name:     "The Fiend",
			ClassKey: "warlock",
			Features: []LeveledFeature{
				{MinLevel: 1, Feature: &Feature{
					Key:         "dark-ones-blessing",
					Name:        "Dark One's Blessing",
					Description: "Gain temporary hit points when you reduce a hostile creature to 0 HP.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 6, Feature: &Feature{
					Key:         "dark-ones-own-luck",
					Name:        "Dark One's Own Luck",
					Description: "Add a d10 to an ability check or saving throw.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageFixed, Count: 1, Reset: ResetShortRest},
				}},
			},
		},
		{
			Key:      "battle-smith",
			Name:     "Battle Smith",
			ClassKey: "artificer",
			Features: []LeveledFeature{
				{MinLevel: 3, Feature: &Feature{
					Key:         "steel-defender",
					Name:        "Steel Defender",
					Description: "A mechanical companion fights at your side.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 9, Feature: &Feature{
					Key:         "arcane-jolt",
					Name:        "Arcane Jolt",
					Description: "Channel magical energy through your attacks or your defender.",
					Categories:  []FeatureCategory{CategoryPassive},
					Usage:       UsageSpec{Kind: UsageProficiency, Reset: ResetLongRest},
				}},
			},
		},
		{
			Key:      "evocation-school",
			Name:     "School of Evocation",
			ClassKey: "wizard",
			Features: []LeveledFeature{
				{MinLevel: 2, Feature: &Feature{
					Key:         "sculpt-spells",
					Name:        "Sculpt Spells",
					Description: "Shield chosen creatures from your evocation spells.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
				{MinLevel: 10, Feature: &Feature{
					Key:         "empowered-evocation",
					Name:        "Empowered Evocation",
					Description: "Add your Intelligence modifier to evocation spell damage.",
					Categories:  []FeatureCategory{CategoryPassive},
				}},
			},
		},
	}
}
