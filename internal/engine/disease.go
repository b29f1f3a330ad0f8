package engine

import "github.com/yhlin/american-dream/internal/catalog"

// Disease risk multipliers. Worse housing, low health and a cheap diet all
// push the adjusted chance up; occupational diseases also grow with work
// tenure.
func diseaseHousingMult(tier int) float64 {
	switch {
	case tier <= 1:
		return 2.0
	case tier == 2:
		return 1.5
	default:
		return 1.0
	}
}

func diseaseHealthMult(health int) float64 {
	switch {
	case health < 30:
		return 2.0
	case health < 60:
		return 1.5
	default:
		return 1.0
	}
}

func diseaseDietMult(level string) float64 {
	switch level {
	case "1":
		return 1.5
	case "2":
		return 1.2
	default:
		return 1.0
	}
}

// rollDisease evaluates the disease pool once per settlement, independent of
// the main event roll. The first success applies its debuff; already-active
// conditions are skipped.
func (e *Engine) rollDisease(result *SettlementResult) {
	s := e.state
	tier := statView{s}.HousingTier()
	mult := diseaseHousingMult(tier) * diseaseHealthMult(s.Attributes.Health) * diseaseDietMult(s.DietLevel)

	tenure := 0
	if work := s.WorkItem(); work != nil {
		tenure = s.CurrentRound - work.StartRound
	}

	for _, d := range e.cat.Diseases {
		if e.hasDebuff(d.DebuffID) {
			continue
		}
		chance := d.BaseChance * mult
		if d.Occupational {
			if tenure == 0 {
				continue
			}
			chance += 0.004 * float64(tenure)
		}
		if e.roll.Float64() >= chance {
			continue
		}
		var summary []string
		e.addDebuff(catalog.StatusRef{ID: d.DebuffID}, &summary)
		if def, ok := e.cat.Debuff(d.DebuffID); ok {
			result.DiseaseFired = def.Name
			s.PushFeed(def.Icon+" You came down with "+def.Name+".", FeedWarning)
		}
		return
	}
}

func (e *Engine) hasDebuff(id string) bool {
	for _, d := range e.state.ActiveDebuffs {
		if d.ID == id {
			return true
		}
	}
	return false
}
