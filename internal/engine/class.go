package engine

import "github.com/yhlin/american-dream/internal/catalog"

// ClassInfo describes one rung of the food chain for presentation.
type ClassInfo struct {
	Level       int
	Name        string
	Icon        string
	Description string
}

var classDefinitions = []ClassInfo{
	{Level: 0, Name: "Ant", Icon: "🐜", Description: "One misstep from being crushed."},
	{Level: 1, Name: "Consumable", Icon: "⚙️", Description: "Useful, replaceable, discarded when worn out."},
	{Level: 2, Name: "Carnivore", Icon: "🐺", Description: "No longer prey. You have started to hunt."},
	{Level: 3, Name: "Harvester", Icon: "⚔️", Description: "Other people's misfortune is your margin."},
	{Level: 4, Name: "Apex", Icon: "👑", Description: "You are the rules now. The ants look up at you the way you used to look up."},
}

// ClassInfoFor resolves a level ordinal to its display record.
func ClassInfoFor(level int) ClassInfo {
	if level < 0 || level >= len(classDefinitions) {
		return classDefinitions[0]
	}
	return classDefinitions[level]
}

// ClassLevel scores the state into an ordinal 0..4. Pure and recomputed after
// every state-changing operation; never cached.
func ClassLevel(s *PlayerState) int {
	score := 0.0

	switch m := s.Money; {
	case m >= 1000000:
		score += 40
	case m >= 500000:
		score += 35
	case m >= 100000:
		score += 28
	case m >= 50000:
		score += 22
	case m >= 20000:
		score += 16
	case m >= 5000:
		score += 10
	case m >= 1000:
		score += 5
	case m >= 0:
		score += 2
	}

	income := 0
	investments := 0
	for _, it := range s.RecurringItems {
		switch it.Type {
		case catalog.RecurringWork:
			income += it.MonthlyIncome
		case catalog.RecurringInvest:
			investments++
		}
	}
	switch {
	case income >= 15000:
		score += 25
	case income >= 8000:
		score += 20
	case income >= 5000:
		score += 16
	case income >= 3000:
		score += 12
	case income >= 1500:
		score += 8
	case income > 0:
		score += 4
	}

	housing := float64(statView{s}.HousingTier()) * 2.5
	if housing > 15 {
		housing = 15
	}
	score += housing

	switch edu := s.Education; {
	case edu.Graduated && edu.Level >= 4:
		score += 10
	case edu.Graduated && edu.Level >= 3:
		score += 8
	case edu.Graduated:
		score += 5
	case edu.Level >= 1:
		score += 2
	}

	invest := float64(investments * 3)
	if invest > 10 {
		invest = 10
	}
	score += invest

	if s.Attributes.Credit >= 750 {
		score += 3
	}
	if s.Attributes.Credit < 500 {
		score -= 5
	}
	if s.Education.Influence >= 60 {
		score += 3
	}

	switch {
	case score >= 75:
		return 4
	case score >= 50:
		return 3
	case score >= 28:
		return 2
	case score >= 12:
		return 1
	default:
		return 0
	}
}

// NetWorth sums cash plus the mark-to-market value of fund investments.
// Business capital is sunk and contributes nothing beyond its income stream.
func NetWorth(s *PlayerState) int {
	total := s.Money
	for _, it := range s.RecurringItems {
		if it.Type == catalog.RecurringInvest && it.SubType == catalog.SubTypeFund {
			total += it.InvestPrincipal + it.AccumulatedGain
		}
	}
	return total
}
