package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestExecuteFixedAction(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()
	moneyBefore, sanBefore := s.Money, s.Attributes.San

	result, err := e.ExecuteBehavior("gig")
	if err != nil {
		t.Fatalf("ExecuteBehavior: %v", err)
	}
	if !result.OutcomeSuccess {
		t.Fatal("fixed action should succeed")
	}
	if s.Money != moneyBefore+100 {
		t.Fatalf("money = %d, want %d", s.Money, moneyBefore+100)
	}
	if s.Attributes.San != sanBefore-5 {
		t.Fatalf("san = %d, want %d", s.Attributes.San, sanBefore-5)
	}
	if s.RoundFinancials.Income != 100 {
		t.Fatalf("income ledger = %d", s.RoundFinancials.Income)
	}
	if len(s.RoundBehaviors) != 1 || s.BehaviorUseCount["gig"] != 1 {
		t.Fatal("usage not recorded")
	}
}

func TestExecuteUnknownAction(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	if _, err := e.ExecuteBehavior("nope"); err == nil {
		t.Fatal("want error for unknown action")
	}
}

func TestOneTimeIdempotence(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()

	if _, err := e.ExecuteBehavior("windfall"); err != nil {
		t.Fatalf("first use: %v", err)
	}
	moneyAfter := s.Money

	if _, err := e.ExecuteBehavior("windfall"); err == nil {
		t.Fatal("second use must fail eligibility")
	}
	if s.Money != moneyAfter {
		t.Fatal("failed call must not mutate state")
	}
	if !s.UsedOneTimeBehaviors["windfall"] {
		t.Fatal("one-time set must record the action")
	}
}

func TestRiskyActionAppliesPenaltyAndDebuff(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.0}})
	s := e.State()
	healthBefore := s.Attributes.Health

	result, err := e.ExecuteBehavior("hustle")
	if err != nil {
		t.Fatalf("ExecuteBehavior: %v", err)
	}
	if result.OutcomeSuccess {
		t.Fatal("chance-1 risk must fail")
	}
	if s.Attributes.Health != healthBefore-20 {
		t.Fatalf("health = %d, want %d", s.Attributes.Health, healthBefore-20)
	}
	if len(s.ActiveDebuffs) != 1 || s.ActiveDebuffs[0].ID != "ache" {
		t.Fatalf("debuff not applied: %v", s.ActiveDebuffs)
	}
}

func TestGainClamps(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()
	s.Attributes.San = s.MaxSan

	var summary []string
	e.applyGain(map[string]int{"san": 50, "health": 200, "credit": 900, "skills": -10}, &summary)
	if s.Attributes.San != s.MaxSan {
		t.Fatalf("san exceeded cap: %d", s.Attributes.San)
	}
	if s.Attributes.Health != 100 {
		t.Fatalf("health = %d", s.Attributes.Health)
	}
	if s.Attributes.Credit != 850 {
		t.Fatalf("credit = %d", s.Attributes.Credit)
	}
	if s.Education.Skills != 0 {
		t.Fatalf("skills went negative: %d", s.Education.Skills)
	}
}

func TestWorkReplacement(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()

	if _, err := e.ExecuteBehavior("job"); err != nil {
		t.Fatalf("job: %v", err)
	}
	if _, err := e.ExecuteBehavior("job2"); err != nil {
		t.Fatalf("job2: %v", err)
	}

	work := 0
	for _, it := range s.RecurringItems {
		if it.Type == catalog.RecurringWork {
			work++
			if it.TemplateID != "tpl_job2" {
				t.Fatalf("old job survived: %s", it.TemplateID)
			}
		}
	}
	if work != 1 {
		t.Fatalf("want exactly one work item, got %d", work)
	}
}

func TestRecurringOnlyOnSuccess(t *testing.T) {
	// The risky offer always fails; no work item may be created.
	e := newTestEngine(t, &stubRoller{floats: []float64{0.0}})
	s := e.State()

	if _, err := e.ExecuteBehavior("risky_job"); err != nil {
		t.Fatalf("risky_job: %v", err)
	}
	if s.WorkItem() != nil {
		t.Fatal("failed outcome must not instantiate the recurring item")
	}
}

func TestQuitWork(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()

	if _, err := e.ExecuteBehavior("job"); err != nil {
		t.Fatalf("job: %v", err)
	}
	if _, err := e.ExecuteBehavior("quit"); err != nil {
		t.Fatalf("quit: %v", err)
	}
	if s.WorkItem() != nil {
		t.Fatal("work item should be gone")
	}
	if _, err := e.ExecuteBehavior("quit"); err == nil {
		t.Fatal("quit with no job must fail")
	}
}

func TestFundSeedsPrincipal(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()

	if _, err := e.ExecuteBehavior("fund"); err != nil {
		t.Fatalf("fund: %v", err)
	}
	var fund *RecurringItem
	for i := range s.RecurringItems {
		if s.RecurringItems[i].SubType == catalog.SubTypeFund {
			fund = &s.RecurringItems[i]
		}
	}
	if fund == nil {
		t.Fatal("fund item missing")
	}
	if fund.InvestPrincipal != 1000 || fund.AccumulatedGain != 0 {
		t.Fatalf("principal/gain = %d/%d", fund.InvestPrincipal, fund.AccumulatedGain)
	}
}

func TestSetCreditTo(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()
	s.Attributes.Credit = 400

	if _, err := e.ExecuteBehavior("fix_credit"); err != nil {
		t.Fatalf("fix_credit: %v", err)
	}
	if s.Attributes.Credit != 650 {
		t.Fatalf("credit = %d, want 650", s.Attributes.Credit)
	}
}

func TestTerminationAfterExecution(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.0}})
	s := e.State()
	s.Attributes.Health = 15

	if _, err := e.ExecuteBehavior("hustle"); err != nil {
		t.Fatalf("hustle: %v", err)
	}
	if !s.Death.Active || s.Death.Type != DeathHealth {
		t.Fatalf("death = %+v", s.Death)
	}
}
