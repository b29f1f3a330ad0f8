package engine

import "github.com/yhlin/american-dream/internal/catalog"

// safeCheck runs a milestone or dilemma predicate; a panicking predicate
// counts as false rather than taking the run down.
func safeCheck(fn func(catalog.StatView) bool, v catalog.StatView) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn(v)
}

// rollMilestones evaluates every unachieved milestone against the current
// state. Newly true IDs land in the permanent achieved set and the pending
// display queue exactly once.
func (e *Engine) rollMilestones() {
	view := statView{e.state}
	for _, m := range e.cat.Milestones {
		if m.Check == nil || e.state.AchievedMilestones[m.ID] {
			continue
		}
		if !safeCheck(m.Check, view) {
			continue
		}
		e.state.AchievedMilestones[m.ID] = true
		e.state.PendingMilestones = append(e.state.PendingMilestones, m.ID)
	}
}
