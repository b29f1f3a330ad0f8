package catalog

// Random event pools, drawn once per settlement at most. Weight is relative
// within a pool.
func defaultPositiveEvents() []RandomEvent {
	return []RandomEvent{
		{ID: "found_wallet", Icon: "🍀", Tone: TonePositive, Weight: 1,
			Text:    "You found a wallet in the supermarket lot. $200 cash, no owner in sight.",
			Effects: map[string]int{"money": 200}},
		{ID: "church_supplies", Icon: "⛪", Tone: TonePositive, Weight: 1,
			Text:    "The church handed out free groceries. A big bag, no questions.",
			Effects: map[string]int{"money": 150}},
		{ID: "good_weather", Icon: "☀️", Tone: TonePositive, Weight: 1.2,
			Text:    "A whole month of good weather. It's easier to get out of bed.",
			Effects: map[string]int{"san": 12}},
		{ID: "call_home", Icon: "📞", Tone: TonePositive, Weight: 1,
			Text:    "A two-hour call with someone from home. You feel lighter after.",
			Effects: map[string]int{"san": 15}},
		{ID: "free_checkup", Icon: "🏥", Tone: TonePositive, Weight: 0.8,
			Text:    "The community clinic ran free checkups and refilled your prescription.",
			Effects: map[string]int{"health": 15}},
		{ID: "cash_bonus", Icon: "🎁", Tone: TonePositive, Weight: 0.7,
			Text:    "The boss was in a good mood and handed out cash bonuses.",
			Effects: map[string]int{"money": 500}},
		{ID: "new_skill", Icon: "💡", Tone: TonePositive, Weight: 0.8,
			Text:    "A late-night tutorial rabbit hole actually taught you something useful.",
			Effects: map[string]int{"skills": 5}},
		{ID: "networking", Icon: "🤝", Tone: TonePositive, Weight: 0.8,
			Text:    "You met the right people at a community event.",
			Effects: map[string]int{"influence": 5}},
		{ID: "credit_fix", Icon: "📮", Tone: TonePositive, Weight: 0.5,
			Text:    "A wrong entry vanished from your credit report. The score jumped.",
			Effects: map[string]int{"credit": 20}},
	}
}

func defaultNegativeEvents() []RandomEvent {
	return []RandomEvent{
		{ID: "car_towed", Icon: "🚗", Tone: ToneNegative, Weight: 0.8,
			Text:    "The car got towed. $500 in fines and fees to get it back.",
			Effects: map[string]int{"money": -500}},
		{ID: "caught_cold", Icon: "🤧", Tone: ToneNegative, Weight: 1,
			Text:    "A week-long cold. You worked through it anyway.",
			Effects: map[string]int{"health": -10, "san": -5}},
		{ID: "rent_hike", Icon: "🏠", Tone: ToneNegative, Weight: 0.9,
			Text:    "The landlord raised rent $200 with a week's notice.",
			Effects: map[string]int{"money": -200, "san": -8}},
		{ID: "phone_stolen", Icon: "📱", Tone: ToneNegative, Weight: 0.8,
			Text:    "Phone stolen on the subway. A cheap replacement cost $300.",
			Effects: map[string]int{"money": -300, "san": -10}},
		{ID: "food_poisoning", Icon: "🤢", Tone: ToneNegative, Weight: 0.7,
			Text:    "Something you ate sent you to urgent care.",
			Effects: map[string]int{"health": -15, "money": -200}},
		{ID: "scammed", Icon: "😤", Tone: ToneNegative, Weight: 0.6,
			Text:    "The man who promised to 'handle the paperwork' vanished with $400.",
			Effects: map[string]int{"money": -400, "san": -12}},
		{ID: "id_check", Icon: "👮", Tone: ToneNegative, Weight: 0.9,
			Text:    "Police stopped you for your papers. Nothing came of it. Your hands shook for an hour.",
			Effects: map[string]int{"san": -20}},
		{ID: "sleepless", Icon: "😰", Tone: ToneNegative, Weight: 1,
			Text:    "A week of bad sleep. The days blur.",
			Effects: map[string]int{"san": -15, "health": -5}},
	}
}

func defaultExtremeEvents() []RandomEvent {
	return []RandomEvent{
		{ID: "wildfire", Icon: "🌪️", Tone: ToneExtreme, Weight: 0.15,
			Text:    "Wildfire reached your neighborhood. Evacuation, smoke, and losses.",
			Effects: map[string]int{"money": -1500, "san": -25, "health": -10}},
		{ID: "raid_scare", Icon: "🚨", Tone: ToneExtreme, Weight: 0.15,
			Text:    "Enforcement swept the block. You spent three hours in a closet, heart pounding.",
			Effects: map[string]int{"san": -35, "health": -5}},
		{ID: "er_bill", Icon: "🏥", Tone: ToneExtreme, Weight: 0.12,
			Text:    "One night in the ER. One $3,000 bill.",
			Effects: map[string]int{"money": -3000, "health": -20}},
		{ID: "windfall", Icon: "🎰", Tone: TonePositive, Weight: 0.1,
			Text:    "A gas-station lottery ticket paid out $2,000.",
			Effects: map[string]int{"money": 2000, "san": 20}},
		{ID: "viral_video", Icon: "📱", Tone: TonePositive, Weight: 0.08,
			Text:    "A video you shot went viral. Sponsors actually called.",
			Effects: map[string]int{"money": 1500, "influence": 15, "san": 15}},
		{ID: "earthquake", Icon: "🌏", Tone: ToneExtreme, Weight: 0.1,
			Text:    "An earthquake knocked out power and water for three days.",
			Effects: map[string]int{"san": -20, "health": -8, "money": -500}},
		{ID: "hit_and_run", Icon: "🚑", Tone: ToneExtreme, Weight: 0.08,
			Text:    "A car clipped you at a crossing and drove off. You didn't dare go to a hospital.",
			Effects: map[string]int{"health": -25, "san": -15, "money": -200}},
	}
}

func defaultDilemmas() []Dilemma {
	return []Dilemma{
		{
			ID: "cooked_books", Title: "Grey area", Icon: "📒", MinRound: 4,
			Description: "A restaurant owner offers $5,000 to help cook the books. Take it?",
			Condition:   func(s StatView) bool { return s.Money() < 20000 },
			OptionA: DilemmaOption{
				Text: "Take the job", Description: "$5,000, 30% chance it blows up",
				Effects:       map[string]int{"money": 5000},
				SuccessChance: 0.7,
				SuccessText:   "The money landed and nothing happened. This time.",
				FailText:      "Someone reported it. A fine, a fright, and a dent in your record.",
				FailEffects:   map[string]int{"money": -2000, "credit": -50, "san": -20},
			},
			OptionB: DilemmaOption{
				Text: "Refuse", Description: "Stay clean, sleep well",
				Effects:       map[string]int{"san": 10, "credit": 5},
				SuccessChance: 1,
				SuccessText:   "Some money isn't worth making. You slept soundly.",
			},
		},
		{
			ID: "roommate_theft", Title: "The roommate ran", Icon: "🏃", MinRound: 3,
			Description: "Your roommate stole $1,000 and vanished. Call the police or eat the loss?",
			Condition:   func(s StatView) bool { return s.Money() >= 500 },
			OptionA: DilemmaOption{
				Text: "Report it", Description: "Half a chance to get it back; your name goes in a system",
				Effects:       map[string]int{},
				SuccessChance: 0.5,
				SuccessText:   "They recovered $800. You're in a database somewhere now.",
				FailText:      "Nothing recovered, and the officer asked one too many questions about you.",
				FailEffects:   map[string]int{"money": -1000, "san": -25},
			},
			OptionB: DilemmaOption{
				Text: "Let it go", Description: "Expensive lesson, quiet life",
				Effects:       map[string]int{"money": -1000, "san": -15},
				SuccessChance: 1,
				SuccessText:   "A thousand dollars of tuition: trust no one with your rent envelope.",
			},
		},
		{
			ID: "overtime_or_rest", Title: "Overtime or rest", Icon: "⏰", MinRound: 2,
			Description: "Double pay for the weekend shift. But you've worked twenty days straight.",
			Condition:   func(s StatView) bool { return s.HasWork() },
			OptionA: DilemmaOption{
				Text: "Work it", Description: "$800 extra; your body objects",
				Effects:       map[string]int{"money": 800, "health": -15, "san": -10},
				SuccessChance: 1,
				SuccessText:   "The envelope is thicker. Your knees file a formal complaint.",
			},
			OptionB: DilemmaOption{
				Text: "Rest", Description: "Health is capital too",
				Effects:       map[string]int{"health": 10, "san": 15},
				SuccessChance: 1,
				SuccessText:   "You slept a full day and woke up feeling human.",
			},
		},
		{
			ID: "vouch_for_friend", Title: "Co-sign", Icon: "✍️", MinRound: 6,
			Description: "A friend asks you to co-sign their car loan. They swear they're good for it.",
			Condition:   func(s StatView) bool { return s.Attribute("credit") >= 600 },
			OptionA: DilemmaOption{
				Text: "Co-sign", Description: "Help a friend, risk your score",
				Effects:       map[string]int{"san": 5},
				SuccessChance: 0.6,
				SuccessText:   "They paid every installment on time. Faith, rewarded.",
				FailText:      "They missed three payments. The bank came to you.",
				FailEffects:   map[string]int{"money": -1200, "credit": -60, "san": -15},
			},
			OptionB: DilemmaOption{
				Text: "Decline", Description: "Awkward now, safe later",
				Effects:       map[string]int{"san": -5},
				SuccessChance: 1,
				SuccessText:   "The friendship cooled a degree. Your credit did not.",
			},
		},
	}
}
