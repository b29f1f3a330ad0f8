package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestDiseaseMultipliers(t *testing.T) {
	if diseaseHousingMult(1) != 2.0 || diseaseHousingMult(2) != 1.5 || diseaseHousingMult(4) != 1.0 {
		t.Fatal("housing multipliers off")
	}
	if diseaseHealthMult(29) != 2.0 || diseaseHealthMult(45) != 1.5 || diseaseHealthMult(80) != 1.0 {
		t.Fatal("health multipliers off")
	}
	if diseaseDietMult("1") != 1.5 || diseaseDietMult("2") != 1.2 || diseaseDietMult("3") != 1.0 {
		t.Fatal("diet multipliers off")
	}
}

func TestDiseaseAppliesDebuffOnce(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.0, 0.0}})
	e.cat.Diseases = []catalog.Disease{{ID: "back", DebuffID: "ache", BaseChance: 0.02}}
	s := e.State()

	var result SettlementResult
	e.rollDisease(&result)
	if len(s.ActiveDebuffs) != 1 || s.ActiveDebuffs[0].ID != "ache" {
		t.Fatalf("debuffs = %v", s.ActiveDebuffs)
	}
	if result.DiseaseFired != "Aching back" {
		t.Fatalf("diseaseFired = %q", result.DiseaseFired)
	}

	// An active condition is skipped on the next roll.
	var again SettlementResult
	e.rollDisease(&again)
	if len(s.ActiveDebuffs) != 1 {
		t.Fatal("active condition must not stack")
	}
}

func TestOccupationalDiseaseNeedsTenure(t *testing.T) {
	e := newTestEngine(t, &stubRoller{floats: []float64{0.0}})
	e.cat.Diseases = []catalog.Disease{{ID: "rsi", DebuffID: "ache", BaseChance: 0.01, Occupational: true}}
	s := e.State()

	// No job, tenure zero: skipped even with a winning roll.
	var result SettlementResult
	e.rollDisease(&result)
	if len(s.ActiveDebuffs) != 0 {
		t.Fatal("occupational disease needs tenure")
	}

	s.RecurringItems = append(s.RecurringItems, RecurringItem{
		ID: "j", Type: catalog.RecurringWork, Name: "Job", StartRound: 1, Permanent: true,
	})
	s.CurrentRound = 4
	e.rollDisease(&result)
	if len(s.ActiveDebuffs) != 1 {
		t.Fatal("tenured work should expose the occupational roll")
	}
}
