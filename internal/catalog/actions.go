package catalog

func intPtr(v int) *int { return &v }

// The default action catalog. Grouped roughly by category; every engine
// mechanic (fixed/random/risky/lottery, recurring templates, unlock gates,
// requirements, one-time limits, cooldowns, showChance, property flags) has
// at least one representative here.
func defaultActions() []Action {
	return []Action{
		// --- earn ---
		{
			ID: "day_labor", Name: "Day labor", Category: CategoryEarn, Type: TypeFixed,
			Description: "Wait outside the hardware store at dawn.",
			Quote:       "Cash at sundown. No questions, no paperwork.",
			Cost:        Cost{San: 5, Health: 8},
			Gain:        map[string]int{"money": 320},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		{
			ID: "street_performance", Name: "Street performance", Category: CategoryEarn, Type: TypeRandom,
			Description: "An old guitar and a cardboard sign.",
			Cost:        Cost{San: 8},
			Outcomes: []Outcome{
				{Chance: 0.15, Gain: map[string]int{"money": 400, "san": 5}, Text: "A crowd gathered. Someone filmed you; the hat filled up."},
				{Chance: 0.45, Gain: map[string]int{"money": 120}, Text: "A slow afternoon, but honest coins."},
				{Chance: 0.40, Gain: map[string]int{"money": 30, "san": -5}, Text: "Four hours for the price of a sandwich."},
			},
			Unlock: Unlock{Type: UnlockDefault},
		},
		{
			ID: "overtime_construction", Name: "Construction overtime", Category: CategoryHealthToMoney, Type: TypeRisky,
			Description: "Double shift on the scaffolds. The foreman pays cash.",
			Quote:       "Your knees ache but the envelope is thick.",
			Cost:        Cost{San: 10, Health: 10},
			BaseGain:    map[string]int{"money": 700},
			Risk: &Risk{
				Chance:  0.25,
				Penalty: map[string]int{"health": -20},
				Text:    "A plank gave way. You limped home with the money and a wrenched back.",
				Debuff:  &StatusRef{ID: "sprained_back"},
			},
			Unlock: Unlock{Type: UnlockDefault},
		},
		{
			ID: "sell_plasma", Name: "Sell plasma", Category: CategoryHealthToMoney, Type: TypeFixed,
			Description: "The clinic pays twice a week. You can feel it for days.",
			Quote:       "Fifty dollars and a juice box.",
			Cost:        Cost{Health: 12},
			Gain:        map[string]int{"money": 110},
			Limit:       Limit{Cooldown: 2},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		// --- heal ---
		{
			ID: "community_clinic", Name: "Community clinic", Category: CategoryMoneyToHealth, Type: TypeFixed,
			Description: "The free clinic takes walk-ins on Thursdays.",
			Quote:       "The nurse doesn't ask about your status.",
			Cost:        Cost{Money: 80},
			Gain:        map[string]int{"health": 15},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		{
			ID: "therapy_session", Name: "Therapy session", Category: CategoryHeal, Type: TypeFixed,
			Description: "A sliding-scale counselor who speaks your language.",
			Quote:       "Saying it out loud helps more than you expected.",
			Cost:        Cost{Money: 150},
			Gain:        map[string]int{"san": 20},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		{
			ID: "sleep_in", Name: "Sleep a full weekend", Category: CategoryHeal, Type: TypeFixed,
			Description: "No alarms. No shifts. Just sleep.",
			Quote:       "You wake up and briefly forget which country you're in.",
			Gain:        map[string]int{"san": 10, "health": 5},
			Buff:        &StatusRef{ID: "well_rested"},
			Limit:       Limit{Cooldown: 3},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		{
			ID: "see_specialist", Name: "See a specialist", Category: CategoryHeal, Type: TypeFixed,
			Description: "Pay out of pocket to finally treat what's been hurting.",
			Quote:       "The bill stings. The relief is real.",
			Cost:         Cost{Money: 1500},
			Gain:         map[string]int{"health": 10},
			ClearDisease: true,
			Unlock:       Unlock{Type: UnlockDefault},
		},
		{
			ID: "full_detox", Name: "Full recovery retreat", Category: CategoryLuxury, Type: TypeFixed,
			Description: "A week off-grid. Everything resets.",
			Quote:       "For seven days nobody could reach you. It was perfect.",
			Cost:            Cost{Money: 4000},
			Gain:            map[string]int{"san": 30, "health": 20},
			ClearAllDebuffs: true,
			Unlock:          Unlock{Type: UnlockCondition, Condition: "money > 10000", ConditionText: "Requires savings over $10,000"},
		},
		// --- credit ---
		{
			ID: "secured_card", Name: "Open a secured card", Category: CategoryCredit, Type: TypeFixed,
			Description: "Deposit $300, build a history.",
			Quote:       "A thin plastic promise that you exist.",
			Cost:        Cost{Money: 300},
			Gain:        map[string]int{"credit": 25},
			Limit:       Limit{UsesPerGame: 1},
			Unlock:      Unlock{Type: UnlockDefault},
		},
		{
			ID: "credit_repair", Name: "Credit repair service", Category: CategoryCredit, Type: TypeFixed,
			Description: "A paralegal who disputes everything on your report.",
			Quote:       "Three letters and a miracle: your record is clean.",
			Cost:        Cost{Money: 900},
			SetCreditTo: intPtr(650),
			Limit:       Limit{UsesPerGame: 1},
			Unlock:      Unlock{Type: UnlockCondition, Condition: "credit < 550", ConditionText: "Only worth it with credit under 550"},
		},
		// --- gamble ---
		{
			ID: "scratch_tickets", Name: "Scratch tickets", Category: CategoryGamble, Type: TypeLottery,
			Description: "The corner store sells hope at $20 a sheet.",
			Cost:        Cost{Money: 20, San: 2},
			Outcomes: []Outcome{
				{Chance: 0.002, Gain: map[string]int{"money": 10000, "san": 25}, Text: "JACKPOT. You read the numbers five times before believing them."},
				{Chance: 0.05, Gain: map[string]int{"money": 500, "san": 10}, Text: "Five hundred! The clerk high-fives you."},
				{Chance: 0.25, Gain: map[string]int{"money": 40}, Text: "Won your money back, more or less."},
				{Chance: 0.698, Gain: map[string]int{"san": -3}, Text: "Nothing. Again."},
			},
			ShowChance: 0.8,
			Unlock:     Unlock{Type: UnlockDefault},
		},
		{
			ID: "underground_poker", Name: "Underground poker", Category: CategoryGamble, Type: TypeRisky,
			Description: "The back room behind the noodle shop.",
			Quote:       "You cashed out early and walked home the long way.",
			Cost:        Cost{Money: 500, San: 8},
			BaseGain:    map[string]int{"money": 1200},
			Risk: &Risk{
				Chance:  0.45,
				Penalty: map[string]int{"money": -1900, "san": -10},
				Text:    "The table turned. You left owing people you'd rather not owe.",
				Debuff:  &StatusRef{ID: "gambling_debt"},
			},
			ShowChance: 0.6,
			Unlock:     Unlock{Type: UnlockRound, Round: 3},
		},
		// --- work (recurring) ---
		{
			ID: "job_dishwasher", Name: "Take the dishwasher job", Category: CategoryEarn, Type: TypeFixed,
			Description: "A restaurant three blocks over needs hands. Cash weekly.",
			Quote:       "The kitchen is loud and hot, but it's yours.",
			Gain:      map[string]int{},
			Recurring: "work_dishwasher",
			Unlock:    Unlock{Type: UnlockDefault},
		},
		{
			ID: "job_delivery", Name: "Ride for the delivery app", Category: CategoryEarn, Type: TypeFixed,
			Description: "Borrowed e-bike, borrowed account, real money.",
			Quote:       "Your phone buzzes. It never stops buzzing.",
			Gain:      map[string]int{},
			Recurring: "work_delivery",
			Unlock:    Unlock{Type: UnlockRound, Round: 2},
		},
		{
			ID: "job_office", Name: "Interview for the office job", Category: CategoryEarn, Type: TypeFixed,
			Description: "A real desk. Benefits. They want a degree and decent credit.",
			Quote:       "You shake hands and try to remember how chairs work.",
			Gain:         map[string]int{},
			Recurring:    "work_office",
			Requirements: Requirements{MinEducationLevel: 2, MinSkills: 40, MinCredit: 600},
			Unlock:       Unlock{Type: UnlockRound, Round: 6},
		},
		{
			ID: "quit_job", Name: "Quit your job", Category: CategorySpecial, Type: TypeFixed,
			Description: "Walk out. No notice, no goodbye cake.",
			Quote:       "Terrifying. Liberating. Mostly terrifying.",
			QuitWork: true,
			Unlock:   Unlock{Type: UnlockDefault},
		},
		// --- invest (recurring) ---
		{
			ID: "invest_index_fund", Name: "Buy index funds", Category: CategoryInvest, Type: TypeFixed,
			Description: "Put $5,000 to work in the market.",
			Quote:       "You refresh the app hourly for the first week.",
			Cost:      Cost{Money: 5000},
			Recurring: "invest_fund",
			Unlock:    Unlock{Type: UnlockCondition, Condition: "money > 8000", ConditionText: "Requires savings over $8,000"},
		},
		{
			ID: "open_food_stall", Name: "Open a food stall", Category: CategoryInvest, Type: TypeFixed,
			Description: "Your aunt's recipes, a cart, a permit of dubious validity.",
			Quote:       "The first customer pays and you want to frame the bill.",
			Cost:      Cost{Money: 6000, San: 10},
			Recurring: "invest_stall",
			Unlock:    Unlock{Type: UnlockRound, Round: 8},
		},
		// --- loan ---
		{
			ID: "payday_loan", Name: "Take a payday loan", Category: CategoryCredit, Type: TypeFixed,
			Description: "$2,000 now. The interest is printed very small.",
			Quote:       "The money is warm in your hand and cold in your stomach.",
			Gain:      map[string]int{"money": 2000},
			Recurring: "loan_payday",
			Unlock:    Unlock{Type: UnlockDefault},
		},
		// --- education (recurring) ---
		{
			ID: "enroll_esl", Name: "Enroll in ESL night class", Category: CategoryEducation, Type: TypeFixed,
			Description: "Tuesday and Thursday nights at the community center.",
			Quote:       "Homework at 34 feels strange. Good strange.",
			Cost:      Cost{Money: 200},
			Recurring: "edu_esl",
			Unlock:    Unlock{Type: UnlockDefault},
		},
		{
			ID: "enroll_college", Name: "Enroll in community college", Category: CategoryEducation, Type: TypeFixed,
			Description: "An associate degree, two years, mostly evenings.",
			Quote:       "The student ID photo makes you look exhausted. Accurate.",
			Cost:         Cost{Money: 1800},
			Recurring:    "edu_college",
			Requirements: Requirements{MinEducationLevel: 1},
			Unlock:       Unlock{Type: UnlockRound, Round: 4},
		},
		{
			ID: "enroll_university", Name: "Transfer to state university", Category: CategoryEducation, Type: TypeFixed,
			Description: "The real thing. Tuition that makes your eyes water.",
			Quote:       "You walk across campus like you belong. Maybe you do.",
			Cost:         Cost{Money: 8000},
			Recurring:    "edu_university",
			Requirements: Requirements{MinEducationLevel: 2, MinSkills: 50},
			Unlock:       Unlock{Type: UnlockRound, Round: 12},
		},
		// --- luxury / property ---
		{
			ID: "buy_house", Name: "Buy the suburban house", Category: CategoryLuxury, Type: TypeFixed,
			Description: "A down payment, a mortgage, a mailbox with your name.",
			Quote:       "You stand on the lawn at midnight, just looking at it.",
			Cost:           Cost{Money: 80000},
			Gain:           map[string]int{"san": 25, "credit": 20},
			GrantsProperty: "5",
			Limit:          Limit{UsesPerGame: 1},
			Unlock:         Unlock{Type: UnlockCondition, Condition: "money > 100000", ConditionText: "Requires savings over $100,000"},
		},
		{
			ID: "weekend_trip", Name: "Weekend road trip", Category: CategoryLuxury, Type: TypeFixed,
			Description: "Gas, a motel, and a coastline you've only seen on postcards.",
			Quote:       "For two days the country looked like the brochure.",
			Cost:   Cost{Money: 600},
			Gain:   map[string]int{"san": 18},
			Buff:   &StatusRef{ID: "confidence"},
			Limit:  Limit{Cooldown: 4},
			Unlock: Unlock{Type: UnlockRound, Round: 5},
		},
	}
}
