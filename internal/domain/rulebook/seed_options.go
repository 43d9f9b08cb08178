package rulebook

// seedOptions returns the built-in choice-option tables: fighting styles,
// maneuvers, invocations, pact boons, and the ASI halves of the ASI-or-feat
// decision. Option groups are explicit tags; replacement validation keys off
// them rather than display names.
func seedOptions() []*ChoiceOption {
	options := []*ChoiceOption{}
	options = append(options, fightingStyleOptions()...)
	options = append(options, maneuverOptions()...)
	options = append(options, pactBoonOptions()...)
	options = append(options, invocationOptions()...)
	options = append(options, abilityIncreaseOptions()...)
	return options
}

func fightingStyleOptions() []*ChoiceOption {
	return []*ChoiceOption{
		{
			Key: "style-archery", Name: "Archery", Group: GroupFightingStyle, ClassKey: "fighter",
			Description: "+2 bonus to attack rolls with ranged weapons.",
			Sources:     []SourceLink{{SourceKey: "fighter", MinLevel: 1}},
			Features: []*Feature{{
				Key: "fs-archery", Name: "Fighting Style: Archery",
				Description: "+2 bonus to attack rolls with ranged weapons.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "style-defense", Name: "Defense", Group: GroupFightingStyle, ClassKey: "fighter",
			Description: "+1 bonus to AC while wearing armor.",
			Sources:     []SourceLink{{SourceKey: "fighter", MinLevel: 1}, {SourceKey: "paladin", MinLevel: 2}},
			Features: []*Feature{{
				Key: "fs-defense", Name: "Fighting Style: Defense",
				Description: "+1 bonus to AC while wearing armor.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "style-dueling", Name: "Dueling", Group: GroupFightingStyle, ClassKey: "fighter",
			Description: "+2 damage with a one-handed melee weapon and no other weapon.",
			Sources:     []SourceLink{{SourceKey: "fighter", MinLevel: 1}, {SourceKey: "paladin", MinLevel: 2}},
			Features: []*Feature{{
				Key: "fs-dueling", Name: "Fighting Style: Dueling",
				Description: "+2 damage with a one-handed melee weapon and no other weapon.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "style-protection", Name: "Protection", Group: GroupFightingStyle, ClassKey: "fighter",
			Description: "Impose disadvantage on an attack against a nearby ally while you hold a shield.",
			Sources:     []SourceLink{{SourceKey: "fighter", MinLevel: 1}, {SourceKey: "paladin", MinLevel: 2}},
			Features: []*Feature{{
				Key: "fs-protection", Name: "Fighting Style: Protection",
				Description: "Use your reaction to impose disadvantage on an attack against a nearby ally.",
				Categories:  []FeatureCategory{CategoryReaction},
			}},
		},
	}
}

func maneuverOptions() []*ChoiceOption {
	// Maneuvers are linked to the Battle Master subclass and reused by the
	// Martial Adept feat through the same group.
	link := []SourceLink{{SourceKey: "battle-master", MinLevel: 3}}
	return []*ChoiceOption{
		{
			Key: "maneuver-trip-attack", Name: "Trip Attack", Group: GroupManeuver, ClassKey: "fighter",
			Description: "Expend a superiority die to knock a target prone.",
			Sources:     link,
			Features: []*Feature{{
				Key: "mv-trip-attack", Name: "Maneuver: Trip Attack",
				Description: "Expend a superiority die to knock a target prone.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "maneuver-riposte", Name: "Riposte", Group: GroupManeuver, ClassKey: "fighter",
			Description: "When a creature misses you with a melee attack, strike back.",
			Sources:     link,
			Features: []*Feature{{
				Key: "mv-riposte", Name: "Maneuver: Riposte",
				Description: "When a creature misses you with a melee attack, use your reaction to strike back.",
				Categories:  []FeatureCategory{CategoryReaction},
			}},
		},
		{
			Key: "maneuver-precision-attack", Name: "Precision Attack", Group: GroupManeuver, ClassKey: "fighter",
			Description: "Add a superiority die to an attack roll.",
			Sources:     link,
			Features: []*Feature{{
				Key: "mv-precision-attack", Name: "Maneuver: Precision Attack",
				Description: "Add a superiority die to an attack roll.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "maneuver-menacing-attack", Name: "Menacing Attack", Group: GroupManeuver, ClassKey: "fighter",
			Description: "Expend a superiority die to frighten a target.",
			Sources:     link,
			Features: []*Feature{{
				Key: "mv-menacing-attack", Name: "Maneuver: Menacing Attack",
				Description: "Expend a superiority die to frighten a target.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
	}
}

func pactBoonOptions() []*ChoiceOption {
	link := []SourceLink{{SourceKey: "warlock", MinLevel: 3}}
	return []*ChoiceOption{
		{
			Key: "pact-of-the-blade", Name: "Pact of the Blade", Group: GroupPactBoon, ClassKey: "warlock",
			Description: "Conjure a pact weapon in your hand.",
			Sources:     link,
			Features: []*Feature{{
				Key: "boon-blade", Name: "Pact of the Blade",
				Description: "Create a pact weapon as an action; you are proficient with it.",
				Categories:  []FeatureCategory{CategoryAction},
			}},
		},
		{
			Key: "pact-of-the-chain", Name: "Pact of the Chain", Group: GroupPactBoon, ClassKey: "warlock",
			Description: "Your familiar can take special forms.",
			Sources:     link,
			Features: []*Feature{{
				Key: "boon-chain", Name: "Pact of the Chain",
				Description: "Learn find familiar; your familiar can take special forms.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "pact-of-the-tome", Name: "Pact of the Tome", Group: GroupPactBoon, ClassKey: "warlock",
			Description: "Your patron grants you a grimoire of cantrips.",
			Sources:     link,
			Features: []*Feature{{
				Key: "boon-tome", Name: "Pact of the Tome",
				Description: "Your Book of Shadows holds three cantrips from any class list.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
	}
}

func invocationOptions() []*ChoiceOption {
	link := []SourceLink{{SourceKey: "warlock", MinLevel: 2}}
	return []*ChoiceOption{
		{
			Key: "agonizing-blast", Name: "Agonizing Blast", Group: GroupInvocation, ClassKey: "warlock",
			Description: "Add your Charisma modifier to eldritch blast damage.",
			Sources:     link,
			Features: []*Feature{{
				Key: "inv-agonizing-blast", Name: "Agonizing Blast",
				Description: "Add your Charisma modifier to eldritch blast damage.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "armor-of-shadows", Name: "Armor of Shadows", Group: GroupInvocation, ClassKey: "warlock",
			Description: "Cast mage armor on yourself at will.",
			Sources:     link,
			Features: []*Feature{{
				Key: "inv-armor-of-shadows", Name: "Armor of Shadows",
				Description: "Cast mage armor on yourself at will, without a slot or components.",
				Categories:  []FeatureCategory{CategoryAction},
			}},
		},
		{
			Key: "devils-sight", Name: "Devil's Sight", Group: GroupInvocation, ClassKey: "warlock",
			Description: "See normally in darkness, magical and nonmagical, to 120 feet.",
			Sources:     link,
			Features: []*Feature{{
				Key: "inv-devils-sight", Name: "Devil's Sight",
				Description: "See normally in darkness, magical and nonmagical, to 120 feet.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "thirsting-blade", Name: "Thirsting Blade", Group: GroupInvocation, ClassKey: "warlock",
			Description: "Attack twice with your pact weapon.",
			Sources:     link,
			Prereq:      &Prerequisite{MinClassLevel: 5, PactBoonKey: "pact-of-the-blade"},
			Features: []*Feature{{
				Key: "inv-thirsting-blade", Name: "Thirsting Blade",
				Description: "Attack twice with your pact weapon when you take the Attack action.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "voice-of-the-chain-master", Name: "Voice of the Chain Master", Group: GroupInvocation, ClassKey: "warlock",
			Description: "Communicate telepathically with your familiar anywhere on the same plane.",
			Sources:     link,
			Prereq:      &Prerequisite{PactBoonKey: "pact-of-the-chain"},
			Features: []*Feature{{
				Key: "inv-voice-chain-master", Name: "Voice of the Chain Master",
				Description: "Perceive through your familiar's senses and speak through it.",
				Categories:  []FeatureCategory{CategoryPassive},
			}},
		},
		{
			Key: "ascendant-step", Name: "Ascendant Step", Group: GroupInvocation, ClassKey: "warlock",
			Description: "Cast levitate on yourself at will.",
			Sources:     link,
			Prereq:      &Prerequisite{MinClassLevel: 9},
			Features: []*Feature{{
				Key: "inv-ascendant-step", Name: "Ascendant Step",
				Description: "Cast levitate on yourself at will, without a slot or components.",
				Categories:  []FeatureCategory{CategoryAction},
			}},
		},
	}
}

func abilityIncreaseOptions() []*ChoiceOption {
	// The ASI half of an ASI-or-feat level. GrantsAbility is the explicit
	// tag the progression engine reads.
	mk := func(attr Attribute, name string) *ChoiceOption {
		return &ChoiceOption{
			Key:           "asi-" + string(attr) + "-2",
			Name:          "Ability Score Improvement: " + name,
			Description:   "Increase " + name + " by 2, to a maximum of 20.",
			Group:         GroupASIOrFeat,
			GrantsAbility: attr,
			GrantsAmount:  2,
		}
	}
	return []*ChoiceOption{
		mk(AttributeStrength, "Strength"),
		mk(AttributeDexterity, "Dexterity"),
		mk(AttributeConstitution, "Constitution"),
		mk(AttributeIntelligence, "Intelligence"),
		mk(AttributeWisdom, "Wisdom"),
		mk(AttributeCharisma, "Charisma"),
	}
}
