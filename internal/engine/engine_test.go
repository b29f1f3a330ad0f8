package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

// stubRoller plays back scripted rolls. Exhausted scripts return 0.99 for
// floats (nothing probabilistic fires) and 0 for ints.
type stubRoller struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *stubRoller) Float64() float64 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	return 0.99
}

func (r *stubRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if r.ii < len(r.ints) {
		v := r.ints[r.ii]
		r.ii++
		if v < n {
			return v
		}
		return 0
	}
	return 0
}

func intRef(v int) *int { return &v }

// testCatalog is a small, fully controlled table set so settlement math is
// predictable in tests.
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Actions: []catalog.Action{
			{
				ID: "gig", Name: "Odd job", Category: catalog.CategoryEarn, Type: catalog.TypeFixed,
				Cost: catalog.Cost{San: 5},
				Gain: map[string]int{"money": 100},
			},
			{
				ID: "windfall", Name: "One-time windfall", Category: catalog.CategorySpecial, Type: catalog.TypeFixed,
				Gain:  map[string]int{"money": 500},
				Limit: catalog.Limit{UsesPerGame: 1},
			},
			{
				ID: "hustle", Name: "Risky hustle", Category: catalog.CategoryGamble, Type: catalog.TypeRisky,
				BaseGain: map[string]int{"money": 100},
				Risk: &catalog.Risk{
					Chance:  1.0,
					Penalty: map[string]int{"health": -20},
					Text:    "it went sideways",
					Debuff:  &catalog.StatusRef{ID: "ache"},
				},
			},
			{
				ID: "job", Name: "Take job", Category: catalog.CategoryEarn, Type: catalog.TypeFixed,
				Recurring: "tpl_job",
			},
			{
				ID: "job2", Name: "Take better job", Category: catalog.CategoryEarn, Type: catalog.TypeFixed,
				Recurring: "tpl_job2",
			},
			{
				ID: "quit", Name: "Quit job", Category: catalog.CategorySpecial, Type: catalog.TypeFixed,
				QuitWork: true,
			},
			{
				ID: "enroll", Name: "Enroll", Category: catalog.CategoryEducation, Type: catalog.TypeFixed,
				Recurring: "tpl_edu",
			},
			{
				ID: "fund", Name: "Buy fund", Category: catalog.CategoryInvest, Type: catalog.TypeFixed,
				Cost:      catalog.Cost{Money: 1000},
				Recurring: "tpl_fund",
			},
			{
				ID: "risky_job", Name: "Risky job offer", Category: catalog.CategoryEarn, Type: catalog.TypeRisky,
				BaseGain:  map[string]int{"money": 50},
				Risk:      &catalog.Risk{Chance: 1.0, Penalty: map[string]int{"san": -5}, Text: "no offer"},
				Recurring: "tpl_job",
			},
			{
				ID: "fix_credit", Name: "Fix credit", Category: catalog.CategoryCredit, Type: catalog.TypeFixed,
				SetCreditTo: intRef(650),
				Unlock:      catalog.Unlock{Type: catalog.UnlockCondition, Condition: "credit < 550", ConditionText: "only for wrecked credit"},
			},
			{
				ID: "sometimes", Name: "Sometimes offered", Category: catalog.CategorySpecial, Type: catalog.TypeFixed,
				Gain:       map[string]int{"san": 1},
				ShowChance: 0.5,
			},
		},
		RecurringTemplates: map[string]catalog.RecurringTemplate{
			"tpl_job": {
				ID: "tpl_job", Type: catalog.RecurringWork, Name: "Job", Icon: "🔧",
				MonthlyIncome: 1000, MonthlyHealthCost: 6, MonthlySanCost: 5,
			},
			"tpl_job2": {
				ID: "tpl_job2", Type: catalog.RecurringWork, Name: "Better job", Icon: "💼",
				MonthlyIncome: 2000,
			},
			"tpl_edu": {
				ID: "tpl_edu", Type: catalog.RecurringEducation, Name: "Night school", Icon: "📖",
				MonthlyCost: 100, Months: 1,
				GraduateBonus: &catalog.GraduateBonus{EducationLevel: 1, Skills: 10, Influence: 2},
			},
			"tpl_fund": {
				ID: "tpl_fund", Type: catalog.RecurringInvest, SubType: catalog.SubTypeFund,
				Name: "Fund", Icon: "📈", MonthlyIncome: 50, CanSell: true, Months: -1,
			},
			"tpl_loan": {
				ID: "tpl_loan", Type: catalog.RecurringLoan, Name: "Loan", Icon: "🏦",
				MonthlyIncome: -450,
			},
		},
		Debuffs: map[string]catalog.StatusDef{
			"ache": {ID: "ache", Name: "Aching back", Icon: "🤕", Effect: map[string]int{"health": -5}, Duration: 2},
		},
		Buffs: map[string]catalog.StatusDef{
			"rested": {ID: "rested", Name: "Rested", Icon: "😌", Effect: map[string]int{"san": 5}, Duration: 2},
		},
		Housing: map[string]catalog.HousingTier{
			"1": {Level: 1, Name: "Street", Cost: 0, SanMax: 100},
			"2": {Level: 2, Name: "Basement", Cost: 400, SanMax: 110},
		},
		Diet: map[string]catalog.DietTier{
			"1": {Level: 1, Name: "Noodles", Cost: 120, HealthChange: -4, SanCost: 3},
		},
		Milestones: []catalog.Milestone{
			{ID: "rich", Title: "Ten grand", Check: func(v catalog.StatView) bool { return v.Money() >= 10000 }},
		},
	}
}

func newTestEngine(t *testing.T, roll Roller) *Engine {
	t.Helper()
	e, err := New("test-seed", WithCatalog(testCatalog()), WithRoller(roll))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}
