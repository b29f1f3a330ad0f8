package catalog

// Default assembles the built-in data tables. The engine takes a *Catalog so
// tests and mods can swap any table wholesale.
func Default() *Catalog {
	return &Catalog{
		Actions:            defaultActions(),
		RecurringTemplates: defaultTemplates(),
		Debuffs:            defaultDebuffs(),
		Buffs:              defaultBuffs(),
		Housing:            defaultHousing(),
		Diet:               defaultDiet(),
		Milestones:         defaultMilestones(),
		PositiveEvents:     defaultPositiveEvents(),
		NegativeEvents:     defaultNegativeEvents(),
		ExtremeEvents:      defaultExtremeEvents(),
		Dilemmas:           defaultDilemmas(),
		Diseases:           defaultDiseases(),
		NewsTemplates:      defaultNewsTemplates(),
	}
}
