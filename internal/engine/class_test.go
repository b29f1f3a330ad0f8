package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestClassLevelWorkedExamples(t *testing.T) {
	fresh := func() *PlayerState { return NewPlayerState(DifficultyNormal) }

	// Starting state: $2000 (5) + tier 2 housing (5) = 10.
	if got := ClassLevel(fresh()); got != 0 {
		t.Fatalf("fresh state level = %d, want 0", got)
	}

	// $20000 (16) + housing (5) = 21.
	s := fresh()
	s.Money = 20000
	if got := ClassLevel(s); got != 1 {
		t.Fatalf("level = %d, want 1", got)
	}

	// Bad credit costs 5 points: 10 - 5 = 5, still 0.
	s = fresh()
	s.Attributes.Credit = 400
	if got := ClassLevel(s); got != 0 {
		t.Fatalf("level = %d, want 0", got)
	}

	// $100k (28) + $5k income (16) + housing (5) + degree level 3 (8) +
	// credit 780 (3) = 60.
	s = fresh()
	s.Money = 100000
	s.Attributes.Credit = 780
	s.Education = Education{Level: 3, Graduated: true}
	s.RecurringItems = append(s.RecurringItems, RecurringItem{
		Type: catalog.RecurringWork, MonthlyIncome: 5000, Permanent: true,
	})
	if got := ClassLevel(s); got != 3 {
		t.Fatalf("level = %d, want 3", got)
	}

	// Everything maxed clears the top bucket.
	s = fresh()
	s.Money = 1000000
	s.HousingLevel = "6"
	s.Attributes.Credit = 800
	s.Education = Education{Level: 4, Graduated: true, Influence: 60}
	s.RecurringItems = append(s.RecurringItems,
		RecurringItem{Type: catalog.RecurringWork, MonthlyIncome: 15000, Permanent: true},
		RecurringItem{Type: catalog.RecurringInvest, SubType: catalog.SubTypeFund},
		RecurringItem{Type: catalog.RecurringInvest, SubType: catalog.SubTypeFund},
		RecurringItem{Type: catalog.RecurringInvest, SubType: catalog.SubTypeBusiness},
	)
	if got := ClassLevel(s); got != 4 {
		t.Fatalf("level = %d, want 4", got)
	}
}

func TestClassInfoFor(t *testing.T) {
	if ClassInfoFor(2).Name != "Carnivore" {
		t.Fatal("level 2 should be Carnivore")
	}
	// Out-of-range levels fall back to the bottom rung.
	if ClassInfoFor(-1).Level != 0 || ClassInfoFor(99).Level != 0 {
		t.Fatal("out-of-range levels must clamp to Ant")
	}
}
