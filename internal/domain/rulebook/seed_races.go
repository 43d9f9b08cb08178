package rulebook

// seedRaces returns the built-in race tables.
func seedRaces() []*Race {
	return []*Race{
		{
			Key:   "human",
			Name:  "Human",
			Speed: 30,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{
					AttributeStrength: 1, AttributeDexterity: 1, AttributeConstitution: 1,
					AttributeIntelligence: 1, AttributeWisdom: 1, AttributeCharisma: 1,
				},
			},
		},
		{
			Key:   "dwarf",
			Name:  "Dwarf",
			Speed: 25,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeConstitution: 2},
			},
			Traits: []*Feature{
				{
					Key:         "darkvision",
					Name:        "Darkvision",
					Description: "See in dim light within 60 feet as if it were bright light.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
				{
					Key:         "dwarven-resilience",
					Name:        "Dwarven Resilience",
					Description: "Advantage on saves against poison; resistance to poison damage.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:   "elf",
			Name:  "Elf",
			Speed: 30,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeDexterity: 2},
			},
			Traits: []*Feature{
				{
					Key:         "darkvision",
					Name:        "Darkvision",
					Description: "See in dim light within 60 feet as if it were bright light.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
				{
					Key:         "fey-ancestry",
					Name:        "Fey Ancestry",
					Description: "Advantage on saves against being charmed; magic can't put you to sleep.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
				{
					Key:         "trance",
					Name:        "Trance",
					Description: "Meditate for 4 hours instead of sleeping.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:   "half-elf",
			Name:  "Half-Elf",
			Speed: 30,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeCharisma: 2},
				Flexible: []FlexibleGroup{
					{Count: 2, Value: 1, Unique: true},
				},
			},
			Traits: []*Feature{
				{
					Key:         "fey-ancestry",
					Name:        "Fey Ancestry",
					Description: "Advantage on saves against being charmed; magic can't put you to sleep.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:   "dragonborn",
			Name:  "Dragonborn",
			Speed: 30,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeStrength: 2, AttributeCharisma: 1},
			},
			Traits: []*Feature{
				{
					Key:         "breath-weapon",
					Name:        "Breath Weapon",
					Description: "Exhale destructive energy in a line or cone.",
					Categories:  []FeatureCategory{CategoryAction},
					Usage:       UsageSpec{Kind: UsageProficiency, Reset: ResetLongRest},
				},
				{
					Key:         "draconic-resistance",
					Name:        "Draconic Resistance",
					Description: "Resistance to the damage type of your draconic ancestry.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:   "tiefling",
			Name:  "Tiefling",
			Speed: 30,
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeCharisma: 2, AttributeIntelligence: 1},
			},
			Traits: []*Feature{
				{
					Key:         "darkvision",
					Name:        "Darkvision",
					Description: "See in dim light within 60 feet as if it were bright light.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
				{
					Key:         "hellish-resistance",
					Name:        "Hellish Resistance",
					Description: "Resistance to fire damage.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
				{
					Key:         "infernal-legacy",
					Name:        "Infernal Legacy",
					Description: "You know the thaumaturgy cantrip and gain infernal spells as you level.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
	}
}

// seedSubraces returns the built-in subrace tables.
func seedSubraces() []*Subrace {
	return []*Subrace{
		{
			Key:     "hill-dwarf",
			Name:    "Hill Dwarf",
			RaceKey: "dwarf",
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeWisdom: 1},
			},
			Traits: []*Feature{
				{
					Key:         "dwarven-toughness",
					Name:        "Dwarven Toughness",
					Description: "Your hit point maximum increases by 1 per level.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:     "high-elf",
			Name:    "High Elf",
			RaceKey: "elf",
			AbilityBonus: AbilityBonus{
				Fixed: map[Attribute]int{AttributeIntelligence: 1},
			},
			Traits: []*Feature{
				{
					Key:         "elf-cantrip",
					Name:        "Cantrip",
					Description: "You know one cantrip from the wizard spell list.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
	}
}

// seedVariants returns the built-in race-variant tables. Variants in the
// same exclusivity group are mutually incompatible; a variant with its own
// ability bonus overrides the race's bonus structure outright.
func seedVariants() []*RaceVariant {
	return []*RaceVariant{
		{
			Key:              "bloodline-of-dispater",
			Name:             "Bloodline of Dispater",
			RaceKey:          "tiefling",
			ExclusivityGroup: "infernal-bloodline",
			AbilityBonus: &AbilityBonus{
				Fixed: map[Attribute]int{AttributeCharisma: 2, AttributeDexterity: 1},
			},
			Replaces: []string{"infernal-legacy"},
			Traits: []*Feature{
				{
					Key:         "legacy-of-dis",
					Name:        "Legacy of Dis",
					Description: "You know the thaumaturgy cantrip and gain disguise self and detect thoughts as you level.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:              "bloodline-of-fierna",
			Name:             "Bloodline of Fierna",
			RaceKey:          "tiefling",
			ExclusivityGroup: "infernal-bloodline",
			AbilityBonus: &AbilityBonus{
				Fixed: map[Attribute]int{AttributeCharisma: 2, AttributeWisdom: 1},
			},
			Replaces: []string{"infernal-legacy"},
			Traits: []*Feature{
				{
					Key:         "legacy-of-phlegethos",
					Name:        "Legacy of Phlegethos",
					Description: "You know the friends cantrip and gain charm person and suggestion as you level.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
	}
}

// seedBackgrounds returns the built-in background tables.
func seedBackgrounds() []*Background {
	return []*Background{
		{
			Key:    "soldier",
			Name:   "Soldier",
			Skills: []string{"athletics", "intimidation"},
			Features: []*Feature{
				{
					Key:         "military-rank",
					Name:        "Military Rank",
					Description: "Soldiers loyal to your former organization still recognize your authority.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
		{
			Key:    "sage",
			Name:   "Sage",
			Skills: []string{"arcana", "history"},
			Features: []*Feature{
				{
					Key:         "researcher",
					Name:        "Researcher",
					Description: "You know where and from whom to obtain lore you do not hold.",
					Categories:  []FeatureCategory{CategoryPassive},
				},
			},
		},
	}
}
