package catalog

func defaultMilestones() []Milestone {
	return []Milestone{
		{
			ID: "first_10k", Title: "Five figures", Icon: "💰", Tone: "good",
			Description: "Savings crossed $10,000. You have a foothold.",
			Check:       func(s StatView) bool { return s.Money() >= 10000 },
		},
		{
			ID: "first_50k", Title: "A real cushion", Icon: "💎", Tone: "good",
			Description: "Savings crossed $50,000. You sleep a little easier.",
			Check:       func(s StatView) bool { return s.Money() >= 50000 },
		},
		{
			ID: "first_100k", Title: "Six figures", Icon: "🏆", Tone: "great",
			Description: "Savings crossed $100,000. Middle class, almost.",
			Check:       func(s StatView) bool { return s.Money() >= 100000 },
		},
		{
			ID: "millionaire", Title: "The million-dollar club", Icon: "🌟", Tone: "great",
			Description: "Savings crossed $1,000,000. The dream, on paper.",
			Check:       func(s StatView) bool { return s.Money() >= 1000000 },
		},
		{
			ID: "first_job", Title: "First job", Icon: "💼", Tone: "good",
			Description: "Steady work at last. It isn't much, but it's monthly.",
			Check:       func(s StatView) bool { return s.HasWork() },
		},
		{
			ID: "high_salary", Title: "Serious paycheck", Icon: "🚀", Tone: "great",
			Description: "Monthly pay over $5,000.",
			Check:       func(s StatView) bool { return s.WorkIncome() >= 5000 },
		},
		{
			ID: "first_invest", Title: "Money making money", Icon: "📈", Tone: "good",
			Description: "Your first investment. Capital works while you sleep.",
			Check:       func(s StatView) bool { return s.InvestmentCount() >= 1 },
		},
		{
			ID: "portfolio", Title: "A portfolio", Icon: "📊", Tone: "good",
			Description: "Two or more investments running at once.",
			Check:       func(s StatView) bool { return s.InvestmentCount() >= 2 },
		},
		{
			ID: "back_to_school", Title: "Back to school", Icon: "📖", Tone: "good",
			Description: "Studying again, in a new language.",
			Check:       func(s StatView) bool { return s.EducationLevel() >= 1 },
		},
		{
			ID: "graduated", Title: "Graduation day", Icon: "🎓", Tone: "great",
			Description: "A degree with your name on it.",
			Check:       func(s StatView) bool { return s.Graduated() },
		},
		{
			ID: "top_degree", Title: "The long ladder", Icon: "🏛️", Tone: "great",
			Description: "A full degree, the highest rung of the education track.",
			Check:       func(s StatView) bool { return s.Graduated() && s.EducationLevel() >= 4 },
		},
		{
			ID: "own_room", Title: "A room of your own", Icon: "🚪", Tone: "good",
			Description: "A door that locks and a bed that's yours.",
			Check:       func(s StatView) bool { return s.HousingTier() >= 3 },
		},
		{
			ID: "proper_home", Title: "A proper home", Icon: "🏡", Tone: "great",
			Description: "Suburban housing or better.",
			Check:       func(s StatView) bool { return s.HousingTier() >= 5 },
		},
		{
			ID: "good_credit", Title: "Prime borrower", Icon: "💳", Tone: "good",
			Description: "Credit score at 750 or above.",
			Check:       func(s StatView) bool { return s.Attribute("credit") >= 750 },
		},
		{
			ID: "one_year", Title: "One year in", Icon: "📅", Tone: "good",
			Description: "Twelve months survived.",
			Check:       func(s StatView) bool { return s.Round() >= 12 },
		},
	}
}
