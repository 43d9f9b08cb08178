package rulebook

// seedInfusions returns the built-in artificer infusion tables.
func seedInfusions() []*Infusion {
	return []*Infusion{
		{
			Key:         "enhanced-weapon",
			Name:        "Enhanced Weapon",
			Description: "A weapon gains a +1 bonus to attack and damage rolls.",
			MinLevel:    2,
			Feature: &Feature{
				Key: "inf-enhanced-weapon", Name: "Infusion: Enhanced Weapon",
				Description: "One infused weapon has a +1 bonus to attack and damage rolls.",
				Categories:  []FeatureCategory{CategoryPassive},
			},
		},
		{
			Key:         "enhanced-defense",
			Name:        "Enhanced Defense",
			Description: "A suit of armor or a shield gains a +1 bonus to AC.",
			MinLevel:    2,
			Feature: &Feature{
				Key: "inf-enhanced-defense", Name: "Infusion: Enhanced Defense",
				Description: "One infused suit of armor or shield has a +1 bonus to AC.",
				Categories:  []FeatureCategory{CategoryPassive},
			},
		},
		{
			Key:         "returning-weapon",
			Name:        "Returning Weapon",
			Description: "A thrown weapon returns to the thrower's hand after an attack.",
			MinLevel:    2,
			Feature: &Feature{
				Key: "inf-returning-weapon", Name: "Infusion: Returning Weapon",
				Description: "One infused thrown weapon gains +1 and returns to your hand after an attack.",
				Categories:  []FeatureCategory{CategoryPassive},
			},
		},
		{
			Key:         "replicate-bag-of-holding",
			Name:        "Replicate Magic Item: Bag of Holding",
			Description: "Replicate a bag of holding.",
			MinLevel:    2,
			ReplicatesItem: &MagicItem{
				Key: "bag-of-holding", Name: "Bag of Holding", Rarity: "uncommon",
			},
			Feature: &Feature{
				Key: "inf-bag-of-holding", Name: "Infusion: Bag of Holding",
				Description: "A replicated bag of holding opens into an extradimensional space.",
				Categories:  []FeatureCategory{CategoryPassive},
			},
		},
		{
			Key:         "homunculus-servant",
			Name:        "Homunculus Servant",
			Description: "A mechanical servant built from a gem worth 100 gp.",
			MinLevel:    6,
			Feature: &Feature{
				Key: "inf-homunculus", Name: "Infusion: Homunculus Servant",
				Description: "Your homunculus servant obeys your commands and can deliver touch spells.",
				Categories:  []FeatureCategory{CategoryPassive},
			},
		},
		{
			Key:         "repulsion-shield",
			Name:        "Repulsion Shield",
			Description: "A shield that can shove attackers away.",
			MinLevel:    6,
			Feature: &Feature{
				Key: "inf-repulsion-shield", Name: "Infusion: Repulsion Shield",
				Description: "An infused shield gains +1 AC and can push an attacker 15 feet away.",
				Categories:  []FeatureCategory{CategoryReaction},
				Usage:       UsageSpec{Kind: UsageFixed, Count: 4, Reset: ResetLongRest},
			},
		},
	}
}
