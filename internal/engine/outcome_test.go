package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestResolveOutcomeFixed(t *testing.T) {
	a := catalog.Action{Type: catalog.TypeFixed, Gain: map[string]int{"money": 100}, Quote: "done"}
	got := ResolveOutcome(a, 0.5, &stubRoller{})
	if !got.Success || got.Gain["money"] != 100 || got.Text != "done" {
		t.Fatalf("fixed outcome wrong: %+v", got)
	}
}

func TestResolveOutcomeRiskyAlwaysFails(t *testing.T) {
	a := catalog.Action{
		Type:     catalog.TypeRisky,
		BaseGain: map[string]int{"money": 100},
		Risk:     &catalog.Risk{Chance: 1.0, Penalty: map[string]int{"health": -20}, Text: "ouch"},
	}
	got := ResolveOutcome(a, 0.5, &stubRoller{floats: []float64{0.0}})
	if got.Success {
		t.Fatal("risk with chance 1 must trigger")
	}
	// Penalty is additive onto base gain, not a replacement.
	if got.Gain["money"] != 100 || got.Gain["health"] != -20 {
		t.Fatalf("combined gain wrong: %v", got.Gain)
	}
	if got.Text != "ouch" {
		t.Fatalf("text = %q", got.Text)
	}
}

func TestResolveOutcomeRiskySucceeds(t *testing.T) {
	a := catalog.Action{
		Type:     catalog.TypeRisky,
		Quote:    "smooth",
		BaseGain: map[string]int{"money": 100},
		Risk:     &catalog.Risk{Chance: 0.3, Penalty: map[string]int{"health": -20}},
	}
	got := ResolveOutcome(a, 0.5, &stubRoller{floats: []float64{0.9}})
	if !got.Success || got.Gain["health"] != 0 || got.Gain["money"] != 100 {
		t.Fatalf("risky success wrong: %+v", got)
	}
}

func TestResolveOutcomeTableWalk(t *testing.T) {
	a := catalog.Action{
		Type: catalog.TypeRandom,
		Outcomes: []catalog.Outcome{
			{Chance: 0.3, Gain: map[string]int{"money": 300}, Text: "jackpot"},
			{Chance: 0.7, Gain: map[string]int{"money": 10}, Text: "scraps"},
		},
	}
	// Zero luck: roll lands in the first bucket.
	got := ResolveOutcome(a, 0, &stubRoller{floats: []float64{0.2}})
	if got.Text != "jackpot" {
		t.Fatalf("want first outcome, got %q", got.Text)
	}
	// Same raw roll but in the second bucket.
	got = ResolveOutcome(a, 0, &stubRoller{floats: []float64{0.8}})
	if got.Text != "scraps" {
		t.Fatalf("want second outcome, got %q", got.Text)
	}
	// High luck shrinks the roll back into the first bucket: 0.32*(1-0.1) < 0.3.
	got = ResolveOutcome(a, 1.0, &stubRoller{floats: []float64{0.32}})
	if got.Text != "jackpot" {
		t.Fatalf("luck bias not applied, got %q", got.Text)
	}
}

func TestResolveOutcomeTableFallback(t *testing.T) {
	// Chances that do not sum to 1; an overflowing roll takes the last entry.
	a := catalog.Action{
		Type: catalog.TypeLottery,
		Outcomes: []catalog.Outcome{
			{Chance: 0.1, Gain: map[string]int{"money": 1000}, Text: "win"},
			{Chance: 0.2, Gain: map[string]int{}, Text: "lose"},
		},
	}
	got := ResolveOutcome(a, 0, &stubRoller{floats: []float64{0.95}})
	if got.Text != "lose" {
		t.Fatalf("fallback should be last entry, got %q", got.Text)
	}
}
