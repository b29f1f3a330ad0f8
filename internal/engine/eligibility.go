package engine

import (
	"fmt"

	"github.com/yhlin/american-dream/internal/catalog"
)

// Eligibility is the full verdict for one action. Reasons collects every
// blocking cause, not just the first, so the UI can show all of them.
type Eligibility struct {
	Unlocked   bool
	LockReason string
	Reasons    []string
}

// CanExecute reports whether the action may run right now.
func (e Eligibility) CanExecute() bool { return e.Unlocked && len(e.Reasons) == 0 }

// checkUnlock resolves the action's unlock gate against the state.
func checkUnlock(s *PlayerState, a catalog.Action) (bool, string) {
	switch a.Unlock.Type {
	case catalog.UnlockRound:
		if a.Unlock.Round > 0 && s.CurrentRound < a.Unlock.Round {
			return false, fmt.Sprintf("unlocks in month %d", a.Unlock.Round)
		}
	case catalog.UnlockCondition:
		if a.Unlock.Condition != "" && !EvalCondition(s, a.Unlock.Condition) {
			reason := a.Unlock.ConditionText
			if reason == "" {
				reason = a.Unlock.Condition
			}
			return false, reason
		}
	}
	return true, ""
}

// CheckEligibility evaluates every gate for an action. All checks run even
// after one fails so the caller sees the complete reason list. The catalog is
// needed to resolve the type of a referenced recurring template; a nil
// catalog skips those gates.
func CheckEligibility(cat *catalog.Catalog, s *PlayerState, a catalog.Action) Eligibility {
	var e Eligibility
	e.Unlocked, e.LockReason = checkUnlock(s, a)
	if !e.Unlocked {
		e.Reasons = append(e.Reasons, e.LockReason)
	}

	if s.Death.Active {
		e.Reasons = append(e.Reasons, "the run is over")
	}

	if c := a.Cost.San; c > 0 && s.Attributes.San < c {
		e.Reasons = append(e.Reasons, fmt.Sprintf("not enough SAN (need %d, have %d)", c, s.Attributes.San))
	}
	if c := a.Cost.Money; c > 0 && s.Money < c {
		e.Reasons = append(e.Reasons, fmt.Sprintf("not enough money (need $%d, have $%d)", c, s.Money))
	}
	// Health cost may never zero out health; that is the kill line.
	if c := a.Cost.Health; c > 0 && s.Attributes.Health <= c {
		e.Reasons = append(e.Reasons, "not enough health")
	}

	if a.Limit.Cooldown > 0 {
		if cd := s.BehaviorCooldowns[a.ID]; cd > 0 {
			e.Reasons = append(e.Reasons, fmt.Sprintf("on cooldown (%d more months)", cd))
		}
	}
	if a.Limit.UsesPerGame > 0 && s.BehaviorUseCount[a.ID] >= a.Limit.UsesPerGame {
		e.Reasons = append(e.Reasons, "use limit reached")
	}
	if s.UsedOneTimeBehaviors[a.ID] {
		e.Reasons = append(e.Reasons, "already used")
	}

	if r := a.Requirements; r != (catalog.Requirements{}) {
		if s.Education.Level < r.MinEducationLevel {
			e.Reasons = append(e.Reasons, fmt.Sprintf("requires education level %d", r.MinEducationLevel))
		}
		if s.Education.Skills < r.MinSkills {
			e.Reasons = append(e.Reasons, fmt.Sprintf("requires skills %d", r.MinSkills))
		}
		if s.Education.Influence < r.MinInfluence {
			e.Reasons = append(e.Reasons, fmt.Sprintf("requires influence %d", r.MinInfluence))
		}
		if r.MinCredit > 0 && s.Attributes.Credit < r.MinCredit {
			e.Reasons = append(e.Reasons, fmt.Sprintf("requires credit score %d", r.MinCredit))
		}
	}

	if a.QuitWork && s.WorkItem() == nil {
		e.Reasons = append(e.Reasons, "no job to quit")
	}
	if a.ClearDisease && !s.HasChronicDebuff() {
		e.Reasons = append(e.Reasons, "no chronic condition to treat")
	}
	if a.GrantsProperty != "" && s.OwnedProperties[a.GrantsProperty] {
		e.Reasons = append(e.Reasons, "already owned")
	}
	if a.Recurring != "" {
		if s.recurringBySource(a.ID) != nil {
			e.Reasons = append(e.Reasons, "already running")
		}
		if cat != nil {
			if tmpl, ok := cat.Template(a.Recurring); ok && tmpl.Type == catalog.RecurringEducation {
				if s.EducationItem() != nil {
					e.Reasons = append(e.Reasons, "already enrolled elsewhere")
				}
				if s.GraduatedSchools[a.Recurring] {
					e.Reasons = append(e.Reasons, "already graduated from this program")
				}
			}
		}
	}

	return e
}
