package catalog

// Debuff definitions. Effect keys are per-settlement deltas applied while the
// debuff is active. Chronic entries are diseases: they never tick down and
// only a cure action removes them.
func defaultDebuffs() map[string]StatusDef {
	return map[string]StatusDef{
		"flu": {
			ID: "flu", Name: "Flu", Icon: "🤧",
			Effect:   map[string]int{"health": -5, "san": -3},
			Duration: 2, CanClearEarly: true, ClearCost: 150,
		},
		"sprained_back": {
			ID: "sprained_back", Name: "Sprained back", Icon: "🤕",
			Effect:   map[string]int{"health": -8},
			Duration: 3, CanClearEarly: true, ClearCost: 400,
		},
		"gambling_debt": {
			ID: "gambling_debt", Name: "Gambling debt", Icon: "🎲",
			Effect:   map[string]int{"money": -300, "san": -5},
			Duration: 4,
		},
		"insomnia": {
			ID: "insomnia", Name: "Insomnia", Icon: "😰",
			Effect:   map[string]int{"san": -8, "health": -3},
			Duration: 2, CanClearEarly: true, ClearCost: 200,
		},
		"collections": {
			ID: "collections", Name: "Debt collectors", Icon: "📞",
			Effect:   map[string]int{"san": -6, "credit": -10},
			Duration: 3,
		},
		// Chronic diseases.
		"chronic_gastritis": {
			ID: "chronic_gastritis", Name: "Chronic gastritis", Icon: "🫃",
			Effect:  map[string]int{"health": -4, "san": -2},
			Chronic: true, CanClearEarly: true, ClearCost: 1200,
		},
		"chronic_backpain": {
			ID: "chronic_backpain", Name: "Chronic back pain", Icon: "🦴",
			Effect:  map[string]int{"health": -6},
			Chronic: true, CanClearEarly: true, ClearCost: 2500,
		},
		"lung_damage": {
			ID: "lung_damage", Name: "Occupational lung damage", Icon: "🫁",
			Effect:  map[string]int{"health": -8, "san": -3},
			Chronic: true, CanClearEarly: true, ClearCost: 5000,
		},
		"depression": {
			ID: "depression", Name: "Depression", Icon: "🌧️",
			Effect:  map[string]int{"san": -10},
			Chronic: true, CanClearEarly: true, ClearCost: 3000,
		},
	}
}

func defaultBuffs() map[string]StatusDef {
	return map[string]StatusDef{
		"well_rested": {
			ID: "well_rested", Name: "Well rested", Icon: "😌",
			Effect:   map[string]int{"san": 5, "health": 3},
			Duration: 2,
		},
		"confidence": {
			ID: "confidence", Name: "Confidence boost", Icon: "✨",
			Effect:   map[string]int{"san": 8},
			Duration: 3,
		},
		"networked": {
			ID: "networked", Name: "Good connections", Icon: "🤝",
			Effect:   map[string]int{"san": 3},
			Duration: 4,
		},
	}
}
