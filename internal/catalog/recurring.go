package catalog

// Recurring templates referenced by actions. Months==0 falls back to the type
// default at instantiation: work is permanent, loans run 6 months.
func defaultTemplates() map[string]RecurringTemplate {
	return map[string]RecurringTemplate{
		"work_dishwasher": {
			ID: "work_dishwasher", Type: RecurringWork,
			Name: "Dishwasher", Icon: "🍽️",
			Description:       "Six shifts a week in a kitchen that never cools down.",
			MonthlyIncome:     1600,
			MonthlyHealthCost: 6,
			MonthlySanCost:    5,
			LoseChance:        0.04,
			LoseText:          "The restaurant closed overnight. The owner still owes everyone a week's pay.",
		},
		"work_delivery": {
			ID: "work_delivery", Type: RecurringWork,
			Name: "Delivery rider", Icon: "🛵",
			Description:       "Rain or shine, the app dings and you go.",
			MonthlyIncome:     2200,
			MonthlyHealthCost: 8,
			MonthlySanCost:    6,
			LoseChance:        0.06,
			LoseText:          "The borrowed account got flagged and banned. No appeal, no payout.",
		},
		"work_office": {
			ID: "work_office", Type: RecurringWork,
			Name: "Office analyst", Icon: "💼",
			Description:            "Spreadsheets, fluorescent light, a paycheck with taxes on it.",
			MonthlyIncome:          5200,
			MonthlySanCost:         4,
			MonthlyCreditChange:    3,
			MonthlyInfluenceChange: 1,
			LoseChance:             0.02,
			LoseText:               "Restructuring. Your whole floor was 'impacted'.",
		},
		"invest_fund": {
			ID: "invest_fund", Type: RecurringInvest, SubType: SubTypeFund,
			Name: "Index fund", Icon: "📈",
			Description:   "Boring, diversified, quietly compounding.",
			MonthlyIncome: 60,
			LoseChance:    0.01,
			LoseText:      "A flash crash wiped the position out before your stop-loss fired.",
			CanSell:       true,
			SellText:      "You sold the position and moved the money back to checking.",
			Months:        -1,
		},
		"invest_stall": {
			ID: "invest_stall", Type: RecurringInvest, SubType: SubTypeBusiness,
			Name: "Food stall", Icon: "🥟",
			Description:       "Lunch rush pays the bills; everything else is gravy.",
			MonthlyIncome:     900,
			MonthlyCost:       250,
			MonthlyHealthCost: 3,
			MonthlySanCost:    4,
			LoseChance:        0.07,
			LoseText:          "A health inspector with a quota shut the stall down.",
			CanSell:           true,
			SellText:          "You sold the cart and the permit to a hopeful newcomer.",
			Months:            -1,
		},
		"loan_payday": {
			ID: "loan_payday", Type: RecurringLoan,
			Name: "Payday loan", Icon: "🏦",
			Description:         "Six months of payments that somehow exceed the principal.",
			MonthlyIncome:       -450,
			MonthlyCreditChange: -5,
			LoseChance:          0,
		},
		"edu_esl": {
			ID: "edu_esl", Type: RecurringEducation,
			Name: "ESL night class", Icon: "📖",
			Description:    "Grammar drills after double shifts.",
			MonthlyCost:    100,
			MonthlySanCost: 3,
			Months:         4,
			GraduateBonus:  &GraduateBonus{EducationLevel: 1, Skills: 10, Influence: 2},
		},
		"edu_college": {
			ID: "edu_college", Type: RecurringEducation,
			Name: "Community college", Icon: "🎒",
			Description:    "An associate degree, one evening class at a time.",
			MonthlyCost:    400,
			MonthlySanCost: 5,
			Months:         10,
			GraduateBonus:  &GraduateBonus{EducationLevel: 2, Skills: 20, Influence: 5},
		},
		"edu_university": {
			ID: "edu_university", Type: RecurringEducation,
			Name: "State university", Icon: "🎓",
			Description:            "The degree that opens the doors with nameplates.",
			MonthlyCost:            1200,
			MonthlySanCost:         8,
			MonthlyInfluenceChange: 1,
			Months:                 16,
			GraduateBonus:          &GraduateBonus{EducationLevel: 4, Skills: 30, Influence: 15},
		},
	}
}
