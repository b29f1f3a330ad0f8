package engine

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/catalog"
	"github.com/yhlin/american-dream/internal/text"
)

// processRecurring runs the per-settlement pass over every recurring item,
// producing the surviving list. Loss is rolled first; a lost item gets no
// further processing this round.
func (e *Engine) processRecurring(result *SettlementResult) {
	s := e.state
	survivors := s.RecurringItems[:0]

	for i := range s.RecurringItems {
		item := s.RecurringItems[i]

		if item.LoseChance > 0 && e.roll.Float64() < item.LoseChance {
			msg := item.LoseText
			if msg == "" {
				msg = item.Name + " is gone"
			}
			result.LostRecurring = append(result.LostRecurring, msg)
			continue
		}

		var parts []string
		if item.MonthlyIncome != 0 {
			s.Money += item.MonthlyIncome
			if item.MonthlyIncome > 0 {
				result.RecurringIncome += item.MonthlyIncome
			} else {
				result.RecurringExpense += -item.MonthlyIncome
			}
			if item.SubType == catalog.SubTypeFund {
				item.AccumulatedGain += item.MonthlyIncome
			}
			parts = append(parts, text.Money(item.MonthlyIncome))
		}
		if item.MonthlyCost > 0 {
			s.Money -= item.MonthlyCost
			result.RecurringExpense += item.MonthlyCost
			parts = append(parts, "-"+text.Money(item.MonthlyCost))
		}
		if item.MonthlyHealthCost != 0 {
			s.Attributes.Health = Clamp(s.Attributes.Health-item.MonthlyHealthCost, 0, 100)
			result.HealthChange -= item.MonthlyHealthCost
			parts = append(parts, "health "+text.Signed(-item.MonthlyHealthCost))
		}
		if item.MonthlySanCost != 0 {
			s.Attributes.San = Clamp(s.Attributes.San-item.MonthlySanCost, 0, s.MaxSan)
			result.SanChange -= item.MonthlySanCost
			parts = append(parts, "SAN "+text.Signed(-item.MonthlySanCost))
		}
		if item.MonthlyCreditChange != 0 {
			s.Attributes.Credit += item.MonthlyCreditChange
			parts = append(parts, "credit "+text.Signed(item.MonthlyCreditChange))
		}
		if item.MonthlyInfluenceChange != 0 {
			s.Education.Influence = Clamp(s.Education.Influence+item.MonthlyInfluenceChange, 0, 100)
			parts = append(parts, "influence "+text.Signed(item.MonthlyInfluenceChange))
		}
		if len(parts) > 0 {
			result.RecurringEffects = append(result.RecurringEffects, item.Icon+" "+item.Name+": "+strings.Join(parts, " "))
		}

		if !item.Permanent && item.RemainingMonths > 0 {
			item.RemainingMonths--
			if item.RemainingMonths == 0 {
				if item.Type == catalog.RecurringEducation && item.GraduateBonus != nil {
					e.graduate(item, result)
				} else {
					result.RecurringEffects = append(result.RecurringEffects, item.Name+" has ended")
				}
				continue
			}
		}
		survivors = append(survivors, item)
	}
	s.RecurringItems = survivors
}

// graduate applies an education item's bonus when its term completes.
func (e *Engine) graduate(item RecurringItem, result *SettlementResult) {
	s := e.state
	bonus := item.GraduateBonus
	if bonus.EducationLevel > s.Education.Level {
		s.Education.Level = bonus.EducationLevel
	}
	s.Education.Skills = Clamp(s.Education.Skills+bonus.Skills, 0, 100)
	s.Education.Influence = Clamp(s.Education.Influence+bonus.Influence, 0, 100)
	s.Education.Graduated = true
	s.GraduatedSchools[item.TemplateID] = true
	result.Graduations = append(result.Graduations, item.Name)
	result.RecurringEffects = append(result.RecurringEffects, "🎓 Graduated from "+item.Name)
}

// SellRecurringItem voluntarily liquidates an item. Fund investments return
// principal plus accumulated gain; business capital is sunk and returns
// nothing.
func (e *Engine) SellRecurringItem(itemID string) error {
	s := e.state
	for i := range s.RecurringItems {
		item := s.RecurringItems[i]
		if item.ID != itemID {
			continue
		}
		if !item.CanSell {
			return errors.Errorf("engine: %s cannot be sold", item.Name)
		}
		if item.SubType == catalog.SubTypeFund {
			s.ModifyMoney(item.InvestPrincipal + item.AccumulatedGain)
		}
		s.RecurringItems = append(s.RecurringItems[:i], s.RecurringItems[i+1:]...)
		msg := item.SellText
		if msg == "" {
			msg = item.Name + " sold"
		}
		s.PushFeed(item.Icon+" "+msg, FeedLog)
		s.ClassLevel = ClassLevel(s)
		return nil
	}
	return errors.Errorf("engine: no recurring item %q", itemID)
}

// RemoveRecurringItem terminates an item with no payout.
func (e *Engine) RemoveRecurringItem(itemID string) error {
	s := e.state
	for i := range s.RecurringItems {
		item := s.RecurringItems[i]
		if item.ID != itemID {
			continue
		}
		s.RecurringItems = append(s.RecurringItems[:i], s.RecurringItems[i+1:]...)
		s.PushFeed(item.Icon+" "+item.Name+" terminated", FeedLog)
		s.ClassLevel = ClassLevel(s)
		return nil
	}
	return errors.Errorf("engine: no recurring item %q", itemID)
}
