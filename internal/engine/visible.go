package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/catalog"
)

// AvailableBehavior pairs an action with its eligibility verdict for the UI.
type AvailableBehavior struct {
	catalog.Action
	Unlocked   bool
	LockReason string
	CanExecute bool
	Reasons    []string
}

// visibleThisRound decides whether a ShowChance action is offered. The roll
// comes from a stream keyed by run seed, round and action ID, so re-rendering
// a round always shows the same subset.
func (e *Engine) visibleThisRound(a catalog.Action) bool {
	if a.ShowChance <= 0 || a.ShowChance >= 1 {
		return true
	}
	stream := e.seed.Stream(fmt.Sprintf("round:%d:visible", e.state.CurrentRound))
	return stream.Child(a.ID).Float64() < a.ShowChance
}

// AvailableBehaviors lists every action offered this round with its
// per-action eligibility. Hidden (ShowChance-filtered) actions are omitted
// entirely.
func (e *Engine) AvailableBehaviors() []AvailableBehavior {
	out := make([]AvailableBehavior, 0, len(e.cat.Actions))
	for _, a := range e.cat.Actions {
		if !e.visibleThisRound(a) {
			continue
		}
		check := CheckEligibility(e.cat, e.state, a)
		out = append(out, AvailableBehavior{
			Action:     a,
			Unlocked:   check.Unlocked,
			LockReason: check.LockReason,
			CanExecute: check.CanExecute(),
			Reasons:    check.Reasons,
		})
	}
	return out
}

// ClearDebuffEarly pays a debuff's clear cost to remove it before it expires.
func (e *Engine) ClearDebuffEarly(debuffID string) error {
	s := e.state
	for i, d := range s.ActiveDebuffs {
		if d.ID != debuffID {
			continue
		}
		if !d.CanClearEarly {
			return errors.New("engine: this condition cannot be treated early")
		}
		if s.Money < d.ClearCost {
			return errors.New("engine: not enough money for treatment")
		}
		s.ModifyMoney(-d.ClearCost)
		s.ActiveDebuffs = append(s.ActiveDebuffs[:i], s.ActiveDebuffs[i+1:]...)
		s.PushFeed(d.Icon+" "+d.Name+" treated and cleared", FeedLog)
		return nil
	}
	return errors.New("engine: no such condition")
}
