package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/catalog"
	"github.com/yhlin/american-dream/internal/text"
)

// ExecuteResult is the structured bundle returned to the presentation layer
// after a successful behavior execution.
type ExecuteResult struct {
	ActionID       string
	Name           string
	Category       catalog.ActionCategory
	Type           catalog.ActionType
	Gain           map[string]int
	Narrative      string
	EffectSummary  string
	OutcomeSuccess bool
}

// applyGain routes one gain map into the state, clamping each key to its
// valid range, and appends human-readable parts to summary.
func (e *Engine) applyGain(gain map[string]int, summary *[]string) {
	s := e.state
	for _, key := range []string{"money", "health", "san", "credit", "luck", "skills", "influence"} {
		val, ok := gain[key]
		if !ok || val == 0 {
			continue
		}
		switch key {
		case "money":
			s.ModifyMoney(val)
			*summary = append(*summary, "money "+text.Signed(val))
		case "health":
			s.Attributes.Health = Clamp(s.Attributes.Health+val, 0, 100)
		case "san":
			s.Attributes.San = Clamp(s.Attributes.San+val, 0, s.MaxSan)
		case "credit":
			s.Attributes.Credit = Clamp(s.Attributes.Credit+val, 0, 850)
		case "luck":
			s.Attributes.Luck = Clamp(s.Attributes.Luck+val, 0, 100)
		case "skills":
			s.Education.Skills = Clamp(s.Education.Skills+val, 0, 100)
		case "influence":
			s.Education.Influence = Clamp(s.Education.Influence+val, 0, 100)
		}
		if key != "money" {
			*summary = append(*summary, text.StatLabel(key)+" "+text.Signed(val))
		}
	}
}

// addDebuff instantiates a debuff definition onto the state. Unknown IDs are
// a catalog defect and silently skipped.
func (e *Engine) addDebuff(ref catalog.StatusRef, summary *[]string) {
	def, ok := e.cat.Debuff(ref.ID)
	if !ok {
		return
	}
	for _, d := range e.state.ActiveDebuffs {
		if d.ID == def.ID {
			return
		}
	}
	duration := def.Duration
	if ref.Duration > 0 {
		duration = ref.Duration
	}
	e.state.ActiveDebuffs = append(e.state.ActiveDebuffs, ActiveDebuff{
		ID:                def.ID,
		Name:              def.Name,
		Icon:              def.Icon,
		Effect:            def.Effect,
		RemainingDuration: duration,
		Chronic:           def.Chronic,
		CanClearEarly:     def.CanClearEarly,
		ClearCost:         def.ClearCost,
	})
	if summary != nil {
		*summary = append(*summary, "afflicted ["+def.Name+"]")
	}
}

func (e *Engine) addBuff(ref catalog.StatusRef, summary *[]string) {
	def, ok := e.cat.Buff(ref.ID)
	if !ok {
		return
	}
	duration := def.Duration
	if ref.Duration > 0 {
		duration = ref.Duration
	}
	e.state.ActiveBuffs = append(e.state.ActiveBuffs, ActiveBuff{
		ID:                def.ID,
		Name:              def.Name,
		Icon:              def.Icon,
		Effect:            def.Effect,
		RemainingDuration: duration,
	})
	if summary != nil {
		*summary = append(*summary, "gained ["+def.Name+"]")
	}
}

// instantiateRecurring stamps a RecurringItem from a template, evicting any
// existing item of an exclusive type first.
func (e *Engine) instantiateRecurring(a catalog.Action, summary *[]string) {
	tmpl, ok := e.cat.Template(a.Recurring)
	if !ok {
		return
	}
	s := e.state

	if tmpl.Type == catalog.RecurringWork || tmpl.Type == catalog.RecurringEducation {
		if old := s.findByType(tmpl.Type); old != nil {
			*summary = append(*summary, "left ["+old.Name+"]")
			s.removeRecurring(func(it RecurringItem) bool { return it.Type == tmpl.Type })
		}
	}

	months := tmpl.Months
	if months == 0 {
		switch tmpl.Type {
		case catalog.RecurringLoan:
			months = 6
		default:
			months = -1
		}
	}

	item := RecurringItem{
		ID:                     tmpl.ID + "_" + uuid.NewString(),
		SourceActionID:         a.ID,
		TemplateID:             tmpl.ID,
		Type:                   tmpl.Type,
		SubType:                tmpl.SubType,
		Name:                   tmpl.Name,
		Icon:                   tmpl.Icon,
		Description:            tmpl.Description,
		MonthlyIncome:          tmpl.MonthlyIncome,
		MonthlyCost:            tmpl.MonthlyCost,
		MonthlyHealthCost:      tmpl.MonthlyHealthCost,
		MonthlySanCost:         tmpl.MonthlySanCost,
		MonthlyCreditChange:    tmpl.MonthlyCreditChange,
		MonthlyInfluenceChange: tmpl.MonthlyInfluenceChange,
		LoseChance:             tmpl.LoseChance,
		LoseText:               tmpl.LoseText,
		Permanent:              tmpl.Type == catalog.RecurringWork,
		RemainingMonths:        months,
		CanSell:                tmpl.CanSell,
		SellText:               tmpl.SellText,
		StartRound:             s.CurrentRound,
	}
	if tmpl.SubType == catalog.SubTypeFund {
		item.InvestPrincipal = a.Cost.Money
	}
	if tmpl.GraduateBonus != nil {
		item.GraduateBonus = &GraduateBonus{
			EducationLevel: tmpl.GraduateBonus.EducationLevel,
			Skills:         tmpl.GraduateBonus.Skills,
			Influence:      tmpl.GraduateBonus.Influence,
		}
	}
	if tmpl.Type == catalog.RecurringEducation {
		s.Education.SchoolName = tmpl.Name
	}
	s.RecurringItems = append(s.RecurringItems, item)
	*summary = append(*summary, "started ["+tmpl.Name+"]")
}

// ExecuteBehavior runs one player action end to end. Validation failures
// return an error with every blocking reason joined; nothing is mutated on
// that path.
func (e *Engine) ExecuteBehavior(actionID string) (*ExecuteResult, error) {
	s := e.state
	a, ok := e.cat.Action(actionID)
	if !ok {
		return nil, errors.Errorf("engine: action %q not found", actionID)
	}

	check := CheckEligibility(e.cat, s, a)
	if !check.CanExecute() {
		return nil, errors.Errorf("engine: %s", strings.Join(check.Reasons, "; "))
	}

	// Debit costs.
	if c := a.Cost.San; c > 0 {
		s.Attributes.San = Clamp(s.Attributes.San-c, 0, s.MaxSan)
	}
	if c := a.Cost.Money; c > 0 {
		s.ModifyMoney(-c)
	}
	if c := a.Cost.Health; c > 0 {
		s.Attributes.Health = Clamp(s.Attributes.Health-c, 0, 100)
	}

	luck := float64(s.Attributes.Luck) / 100
	outcome := ResolveOutcome(a, luck, e.roll)

	var summary []string
	e.applyGain(outcome.Gain, &summary)

	if a.SetCreditTo != nil {
		s.Attributes.Credit = *a.SetCreditTo
		summary = append(summary, fmt.Sprintf("credit score reset to %d", *a.SetCreditTo))
	}
	if a.ClearAllDebuffs {
		s.ActiveDebuffs = nil
		summary = append(summary, "all negative statuses cleared")
	}
	if a.ClearDisease {
		rest := s.ActiveDebuffs[:0]
		for _, d := range s.ActiveDebuffs {
			if d.Chronic {
				summary = append(summary, "cured ["+d.Name+"]")
				continue
			}
			rest = append(rest, d)
		}
		s.ActiveDebuffs = rest
	}

	// An outcome-level debuff wins over the action's static one.
	if outcome.Debuff != nil {
		e.addDebuff(*outcome.Debuff, &summary)
	} else if a.Debuff != nil {
		e.addDebuff(*a.Debuff, &summary)
	}
	if a.Buff != nil {
		e.addBuff(*a.Buff, &summary)
	}

	if a.GrantsProperty != "" {
		s.OwnedProperties[a.GrantsProperty] = true
		summary = append(summary, "deed in hand, rent is history")
	}

	// Record usage.
	s.RoundBehaviors = append(s.RoundBehaviors, BehaviorRef{ID: a.ID, Name: a.Name, Category: string(a.Category)})
	s.BehaviorUseCount[a.ID]++
	if a.Limit.Cooldown > 0 {
		s.BehaviorCooldowns[a.ID] = a.Limit.Cooldown
	}
	if a.Limit.UsesPerGame == 1 {
		s.UsedOneTimeBehaviors[a.ID] = true
	}

	if a.Recurring != "" && outcome.Success {
		e.instantiateRecurring(a, &summary)
	}

	if a.QuitWork {
		work := s.WorkItem()
		if work == nil {
			// Guarded at eligibility time; kept as a hard stop.
			return nil, errors.New("engine: no job to quit")
		}
		summary = append(summary, "quit ["+work.Name+"]")
		s.removeRecurring(func(it RecurringItem) bool { return it.Type == catalog.RecurringWork })
	}

	narrative := outcome.Text
	if narrative == "" {
		narrative = a.Quote
	}
	s.PushFeed(fmt.Sprintf("[%s] %s %s", a.Name, narrative, strings.Join(summary, " ")), FeedScene)

	e.checkTermination()
	e.rollMilestones()
	s.ClassLevel = ClassLevel(s)

	return &ExecuteResult{
		ActionID:       a.ID,
		Name:           a.Name,
		Category:       a.Category,
		Type:           a.Type,
		Gain:           outcome.Gain,
		Narrative:      narrative,
		EffectSummary:  strings.Join(summary, " "),
		OutcomeSuccess: outcome.Success,
	}, nil
}
