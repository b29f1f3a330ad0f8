package engine

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/text"
)

const creditDecayPerRound = -2

// SettlementResult reports everything one monthly close did, for the result
// screen and the feed line.
type SettlementResult struct {
	RentPaid   int
	RentWaived bool
	Evicted    bool
	DietCost   int

	DebuffEffects    []string
	BuffExpired      []string
	RecurringEffects []string
	LostRecurring    []string
	Graduations      []string

	RecurringIncome  int
	RecurringExpense int
	HealthChange     int
	SanChange        int
	MoneyChange      int

	EventFired   bool
	DiseaseFired string

	Dead bool
}

// housingInfluenceBonus is the monthly influence granted by high housing
// tiers: nothing below tier 4, then +1/+3/+5.
func housingInfluenceBonus(tier int) int {
	switch {
	case tier >= 6:
		return 5
	case tier == 5:
		return 3
	case tier == 4:
		return 1
	default:
		return 0
	}
}

// housingHealthDecay is the passive monthly health drain: a base point plus
// a penalty that grows as housing quality drops. Long-term homelessness kills
// on its own through this path.
func housingHealthDecay(tier int) int {
	switch {
	case tier <= 1:
		return 5
	case tier == 2:
		return 3
	case tier == 3:
		return 2
	default:
		return 1
	}
}

// EndRound closes the month. Steps run in a fixed order because later ones
// read values earlier ones mutate.
func (e *Engine) EndRound() (*SettlementResult, error) {
	s := e.state
	if s.Death.Active {
		return nil, errors.New("engine: the run is over")
	}
	if s.RoundPhase != PhaseAction {
		return nil, errors.Errorf("engine: cannot settle during %s phase", s.RoundPhase)
	}
	s.RoundPhase = PhaseSettlement
	result := &SettlementResult{}

	tier := statView{s}.HousingTier()

	// 1. Rent. Owning the deed for the current tier waives it; an unpayable
	// rent forces a downgrade to the lowest tier instead of rent debt.
	if housing, ok := e.cat.HousingTier(s.HousingLevel); ok {
		switch {
		case s.OwnedProperties[s.HousingLevel]:
			result.RentWaived = true
		case s.Money >= housing.Cost:
			s.Money -= housing.Cost
			result.RentPaid = housing.Cost
			result.MoneyChange -= housing.Cost
		case housing.Cost > 0:
			s.HousingLevel = e.cat.LowestHousing()
			result.Evicted = true
			tier = statView{s}.HousingTier()
		}
	}

	// 2. High-tier housing pays a small influence dividend.
	if bonus := housingInfluenceBonus(tier); bonus > 0 {
		s.Education.Influence = Clamp(s.Education.Influence+bonus, 0, 100)
	}

	// 3. Diet.
	if diet, ok := e.cat.DietTier(s.DietLevel); ok {
		s.Money -= diet.Cost
		result.DietCost = diet.Cost
		result.MoneyChange -= diet.Cost
		s.Attributes.Health = Clamp(s.Attributes.Health+diet.HealthChange, 0, 100)
		result.HealthChange += diet.HealthChange
		if diet.SanCost != 0 {
			s.Attributes.San = Clamp(s.Attributes.San-diet.SanCost, 0, s.MaxSan)
			result.SanChange -= diet.SanCost
		}
	}

	// 4. Debuffs tick and apply. Chronic ones never expire here.
	debuffs := s.ActiveDebuffs[:0]
	for _, d := range s.ActiveDebuffs {
		for key, val := range d.Effect {
			switch key {
			case "money":
				s.Money += val
				result.MoneyChange += val
			case "health":
				s.Attributes.Health = Clamp(s.Attributes.Health+val, 0, 100)
				result.HealthChange += val
			case "san":
				s.Attributes.San = Clamp(s.Attributes.San+val, 0, s.MaxSan)
				result.SanChange += val
			case "credit":
				s.Attributes.Credit += val
			}
		}
		result.DebuffEffects = append(result.DebuffEffects, d.Icon+" "+d.Name)
		if d.Chronic {
			debuffs = append(debuffs, d)
			continue
		}
		d.RemainingDuration--
		if d.RemainingDuration > 0 {
			debuffs = append(debuffs, d)
		}
	}
	s.ActiveDebuffs = debuffs

	// 5. Buffs tick, apply and expire.
	buffs := s.ActiveBuffs[:0]
	for _, b := range s.ActiveBuffs {
		for key, val := range b.Effect {
			switch key {
			case "money":
				s.Money += val
				result.MoneyChange += val
			case "health":
				s.Attributes.Health = Clamp(s.Attributes.Health+val, 0, 100)
				result.HealthChange += val
			case "san":
				s.Attributes.San = Clamp(s.Attributes.San+val, 0, s.MaxSan)
				result.SanChange += val
			case "credit":
				s.Attributes.Credit += val
			}
		}
		b.RemainingDuration--
		if b.RemainingDuration > 0 {
			buffs = append(buffs, b)
		} else {
			result.BuffExpired = append(result.BuffExpired, b.Name)
		}
	}
	s.ActiveBuffs = buffs

	// 6. Cooldowns.
	for id, cd := range s.BehaviorCooldowns {
		if cd > 0 {
			s.BehaviorCooldowns[id] = cd - 1
		}
	}

	// 7. Recurring items.
	e.processRecurring(result)

	// 8. Credit decay.
	s.Attributes.Credit += creditDecayPerRound

	// 9. Health decay scaled by housing quality.
	decay := housingHealthDecay(tier)
	s.Attributes.Health = Clamp(s.Attributes.Health-decay, 0, 100)
	result.HealthChange -= decay

	// 10. SAN cap follows housing; better housing restores SAN faster.
	if housing, ok := e.cat.HousingTier(s.HousingLevel); ok {
		s.MaxSan = housing.SanMax
		recovery := (housing.SanMax-80)/5 + 5
		prev := s.Attributes.San
		s.Attributes.San = Clamp(s.Attributes.San+recovery, 0, s.MaxSan)
		result.SanChange += s.Attributes.San - prev
	}

	e.rollDisease(result)

	// 11. Kill lines.
	if e.checkTermination() {
		result.Dead = true
	}

	// 12. One random event per settlement at most.
	if !s.Death.Active {
		result.EventFired = e.rollRandomEvent()
	}

	// 13. World news.
	e.generateWorldNews()

	// 14.-15. Milestones, class level, wealth history.
	e.rollMilestones()
	s.ClassLevel = ClassLevel(s)
	s.WealthHistory = append(s.WealthHistory, WealthPoint{
		Round:      s.CurrentRound,
		Money:      s.Money,
		NetWorth:   NetWorth(s),
		ClassLevel: s.ClassLevel,
	})

	// 16. Dilemmas are mutually exclusive with random events.
	if !result.EventFired && !s.Death.Active {
		e.rollDilemma()
	}

	s.RoundFinancials.Expense += result.RentPaid + result.DietCost + result.RecurringExpense
	s.RoundFinancials.Income += result.RecurringIncome

	s.PushFeed(settlementSummary(result), FeedSystem)
	if s.Death.Active {
		s.PushFeed(s.Death.Reason, FeedDanger)
	}

	s.RoundPhase = PhaseResult
	return result, nil
}

func settlementSummary(r *SettlementResult) string {
	var parts []string
	if r.RentWaived {
		parts = append(parts, "rent waived (owned)")
	}
	if r.RentPaid > 0 {
		parts = append(parts, "rent -"+text.Money(r.RentPaid))
	}
	if r.Evicted {
		parts = append(parts, "⚠️ evicted, back on the street")
	}
	if r.DietCost > 0 {
		parts = append(parts, "food -"+text.Money(r.DietCost))
	}
	parts = append(parts, r.RecurringEffects...)
	for _, l := range r.LostRecurring {
		parts = append(parts, "⚠️ "+l)
	}
	if r.HealthChange != 0 {
		parts = append(parts, "❤️ health "+text.Signed(r.HealthChange))
	}
	if r.SanChange != 0 {
		parts = append(parts, "🧠 SAN "+text.Signed(r.SanChange))
	}
	parts = append(parts, r.DebuffEffects...)
	for _, name := range r.BuffExpired {
		parts = append(parts, name+" wore off")
	}
	if r.DiseaseFired != "" {
		parts = append(parts, "🏥 "+r.DiseaseFired)
	}
	return "[Monthly close] " + strings.Join(parts, " | ")
}

// NextRound advances the month counter and clears per-round scratch. Player
// triggered after viewing the result screen.
func (e *Engine) NextRound() {
	s := e.state
	if s.Death.Active {
		return
	}
	s.CurrentRound++
	s.RoundPhase = PhaseAction
	s.RoundBehaviors = nil
	s.RoundFinancials = RoundFinancials{}
	s.PendingRandomEvent = nil
	s.PendingDilemmaID = ""
	s.CurrentWorldNews = nil
}
