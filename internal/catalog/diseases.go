package catalog

// Disease pool. BaseChance is per settlement before the engine applies
// housing/diet/health multipliers; Occupational entries also scale with work
// tenure. The referenced debuff's Chronic flag decides whether the disease
// persists until cured.
func defaultDiseases() []Disease {
	return []Disease{
		{ID: "seasonal_flu", DebuffID: "flu", BaseChance: 0.06},
		{ID: "insomnia_spell", DebuffID: "insomnia", BaseChance: 0.04},
		{ID: "gastritis", DebuffID: "chronic_gastritis", BaseChance: 0.02},
		{ID: "back_pain", DebuffID: "chronic_backpain", BaseChance: 0.015, Occupational: true},
		{ID: "lung_disease", DebuffID: "lung_damage", BaseChance: 0.008, Occupational: true},
		{ID: "depression_onset", DebuffID: "depression", BaseChance: 0.012},
	}
}
