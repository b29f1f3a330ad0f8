package engine

import "github.com/yhlin/american-dream/internal/catalog"

// OutcomeResult is what resolving one action yields before any state is
// touched. Gain keys route through applyGain; Debuff, when set, comes from
// the risk clause and wins over the action's static debuff.
type OutcomeResult struct {
	Success bool
	Gain    map[string]int
	Text    string
	Debuff  *catalog.StatusRef
}

// ResolveOutcome computes the result of an action without mutating anything.
// luckFactor is in [0,1]; it shrinks the roll for random and lottery tables
// so higher luck drifts toward the earlier, better-ordered entries.
func ResolveOutcome(a catalog.Action, luckFactor float64, r Roller) OutcomeResult {
	switch a.Type {
	case catalog.TypeRandom, catalog.TypeLottery:
		roll := r.Float64() * (1 - luckFactor*0.1)
		cumulative := 0.0
		for _, o := range a.Outcomes {
			cumulative += o.Chance
			if roll <= cumulative {
				return OutcomeResult{Success: true, Gain: o.Gain, Text: o.Text}
			}
		}
		if n := len(a.Outcomes); n > 0 {
			last := a.Outcomes[n-1]
			return OutcomeResult{Success: true, Gain: last.Gain, Text: last.Text}
		}
		return OutcomeResult{Success: true, Gain: a.Gain, Text: a.Quote}

	case catalog.TypeRisky:
		if a.Risk != nil && r.Float64() < a.Risk.Chance {
			combined := map[string]int{}
			for k, v := range a.BaseGain {
				combined[k] = v
			}
			for k, v := range a.Risk.Penalty {
				combined[k] += v
			}
			return OutcomeResult{Success: false, Gain: combined, Text: a.Risk.Text, Debuff: a.Risk.Debuff}
		}
		return OutcomeResult{Success: true, Gain: a.BaseGain, Text: a.Quote}

	default:
		// fixed, and any unrecognized type degrades to fixed.
		return OutcomeResult{Success: true, Gain: a.Gain, Text: a.Quote}
	}
}
