package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func behaviorIDs(list []AvailableBehavior) []string {
	ids := make([]string, len(list))
	for i, b := range list {
		ids[i] = b.ID
	}
	return ids
}

func TestVisibleSubsetDeterministic(t *testing.T) {
	a := newTestEngine(t, &stubRoller{})
	b := newTestEngine(t, &stubRoller{})

	first := behaviorIDs(a.AvailableBehaviors())
	// Same run seed and round: the offered list must be identical across
	// engines and across repeated calls.
	for i := 0; i < 3; i++ {
		got := behaviorIDs(b.AvailableBehaviors())
		if len(got) != len(first) {
			t.Fatalf("subset size changed: %v vs %v", got, first)
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("subset diverged: %v vs %v", got, first)
			}
		}
	}
}

func TestVisibleEdgeChances(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	always := catalog.Action{ID: "a", ShowChance: 0}
	certain := catalog.Action{ID: "b", ShowChance: 1}
	if !e.visibleThisRound(always) || !e.visibleThisRound(certain) {
		t.Fatal("chance 0 and 1 both mean always offered")
	}
}

func TestClearDebuffEarly(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()
	s.ActiveDebuffs = []ActiveDebuff{
		{ID: "flu", Name: "Flu", CanClearEarly: true, ClearCost: 500, RemainingDuration: 4},
		{ID: "stuck", Name: "Stuck", RemainingDuration: 2},
	}
	moneyBefore := s.Money

	if err := e.ClearDebuffEarly("stuck"); err == nil {
		t.Fatal("untreatable debuff must refuse")
	}
	if err := e.ClearDebuffEarly("flu"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Money != moneyBefore-500 {
		t.Fatalf("money = %d, want %d", s.Money, moneyBefore-500)
	}
	if len(s.ActiveDebuffs) != 1 || s.ActiveDebuffs[0].ID != "stuck" {
		t.Fatalf("debuffs = %v", s.ActiveDebuffs)
	}

	s.Money = 0
	s.ActiveDebuffs = append(s.ActiveDebuffs, ActiveDebuff{ID: "flu", Name: "Flu", CanClearEarly: true, ClearCost: 500})
	if err := e.ClearDebuffEarly("flu"); err == nil {
		t.Fatal("treatment must check funds")
	}
}
