package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestRollRandomEventPicksPoolBySeverity(t *testing.T) {
	// 0.25 lands in the positive band, 0.0 picks the first weighted entry.
	e := newTestEngine(t, &stubRoller{floats: []float64{0.25, 0.0}})
	e.cat.PositiveEvents = []catalog.RandomEvent{
		{ID: "tip", Text: "A stranger tips big", Tone: catalog.TonePositive, Effects: map[string]int{"money": 300}},
	}
	s := e.State()
	moneyBefore := s.Money

	if !e.rollRandomEvent() {
		t.Fatal("event should fire")
	}
	if s.Money != moneyBefore+300 {
		t.Fatalf("money = %d, want +300", s.Money)
	}
	if s.PendingRandomEvent == nil || s.PendingRandomEvent.ID != "tip" {
		t.Fatalf("pending event = %v", s.PendingRandomEvent)
	}

	e.DismissRandomEvent()
	if s.PendingRandomEvent != nil {
		t.Fatal("dismiss must clear the staged event")
	}
}

func TestRollRandomEventQuietBand(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.5}})
	e.cat.PositiveEvents = []catalog.RandomEvent{{ID: "x", Effects: map[string]int{"money": 1}}}
	if e.rollRandomEvent() {
		t.Fatal("0.5 is above every severity band; no event may fire")
	}
}

func TestRollRandomEventEmptyPool(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.01}})
	if e.rollRandomEvent() {
		t.Fatal("an empty pool never fires")
	}
}

func TestRollDilemmaFiltersAndStages(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.01}, ints: []int{0}})
	e.cat.Dilemmas = []catalog.Dilemma{
		{ID: "later", Title: "Later", MinRound: 10},
		{ID: "now", Title: "Now"},
	}

	e.rollDilemma()
	if e.State().PendingDilemmaID != "now" {
		t.Fatalf("pending = %q, want the only eligible dilemma", e.State().PendingDilemmaID)
	}
	if d, ok := e.PendingDilemma(); !ok || d.ID != "now" {
		t.Fatalf("PendingDilemma = %v %v", d, ok)
	}
}

func TestRollDilemmaMissesAboveChance(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.20}})
	e.cat.Dilemmas = []catalog.Dilemma{{ID: "now", Title: "Now"}}
	e.rollDilemma()
	if e.State().PendingDilemmaID != "" {
		t.Fatal("0.20 is above the dilemma chance")
	}
}

func TestResolveDilemmaFallbackCannotFail(t *testing.T) {
	// Option A has a success chance but no fail payload; the failed roll must
	// fall back to the success effects.
	e := newTestEngine(t, &stubRoller{})
	e.cat.Dilemmas = []catalog.Dilemma{{
		ID: "bet", Title: "Side bet",
		OptionA: catalog.DilemmaOption{
			Text: "Take it", Effects: map[string]int{"money": 200},
			SuccessChance: 0.5, SuccessText: "it worked",
		},
		OptionB: catalog.DilemmaOption{Text: "Walk away"},
	}}
	s := e.State()
	s.PendingDilemmaID = "bet"
	moneyBefore := s.Money

	if err := e.ResolveDilemma(true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Money != moneyBefore+200 {
		t.Fatalf("money = %d, want success payload applied", s.Money)
	}
	if s.PendingDilemmaID != "" {
		t.Fatal("resolution must clear the pending ID")
	}
}

func TestResolveDilemmaFailPayload(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	e.cat.Dilemmas = []catalog.Dilemma{{
		ID: "bet", Title: "Side bet",
		OptionA: catalog.DilemmaOption{
			Effects: map[string]int{"money": 200}, SuccessChance: 0.5,
			FailEffects: map[string]int{"money": -100}, FailText: "it blew up",
		},
	}}
	s := e.State()
	s.PendingDilemmaID = "bet"
	moneyBefore := s.Money

	if err := e.ResolveDilemma(true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Money != moneyBefore-100 {
		t.Fatalf("money = %d, want fail payload applied", s.Money)
	}
}

func TestResolveDilemmaOptionB(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	e.cat.Dilemmas = []catalog.Dilemma{{
		ID: "bet", Title: "Side bet",
		OptionA: catalog.DilemmaOption{Effects: map[string]int{"money": 200}, SuccessChance: 0.5},
		OptionB: catalog.DilemmaOption{Effects: map[string]int{"san": -2}},
	}}
	s := e.State()
	s.PendingDilemmaID = "bet"
	sanBefore := s.Attributes.San

	if err := e.ResolveDilemma(false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Attributes.San != sanBefore-2 {
		t.Fatalf("san = %d, option B must apply unconditionally", s.Attributes.San)
	}

	if err := e.ResolveDilemma(false); err == nil {
		t.Fatal("resolving with nothing pending must error")
	}
}

func TestGenerateWorldNewsCountScalesWithClass(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	e.cat.NewsTemplates = []catalog.NewsTemplate{
		func(r catalog.Rand) catalog.News {
			return catalog.News{ID: "n", Text: "Somewhere, someone lost everything", Tone: catalog.NewsRuin}
		},
	}
	s := e.State()

	e.generateWorldNews()
	if len(s.CurrentWorldNews) != 1 {
		t.Fatalf("class 0 news count = %d, want 1", len(s.CurrentWorldNews))
	}
	if s.NewsCounters[catalog.NewsRuin] != 1 {
		t.Fatalf("tone counter = %d", s.NewsCounters[catalog.NewsRuin])
	}

	s.ClassLevel = 3
	e.generateWorldNews()
	if len(s.CurrentWorldNews) != 3 {
		t.Fatalf("class 3 news count = %d, want 3", len(s.CurrentWorldNews))
	}
}

func TestWorldNewsPlayerGain(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	e.cat.NewsTemplates = []catalog.NewsTemplate{
		func(r catalog.Rand) catalog.News {
			return catalog.News{
				ID: "windfall", Text: "A rival folds", Tone: catalog.NewsIrony,
				PlayerGain: map[string]int{"money": 50}, GainText: "Their loss, your gain",
			}
		},
	}
	s := e.State()
	moneyBefore := s.Money

	e.generateWorldNews()
	if s.Money != moneyBefore+50 {
		t.Fatalf("money = %d, want irony gain applied", s.Money)
	}
}
