package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/yhlin/american-dream/internal/catalog"
)

// Attributes are the player's core meters. Health, San and Luck live in
// 0..100 (San up to the housing-derived cap); Credit is a signed score that
// behavior gains clamp into 0..850 but settlement drift may push around
// freely.
type Attributes struct {
	Health int `json:"health"`
	San    int `json:"san"`
	Credit int `json:"credit"`
	Luck   int `json:"luck"`
}

// Education tracks the study track: level 0..4, skills and influence 0..100.
type Education struct {
	Level      int    `json:"level"`
	SchoolName string `json:"schoolName"`
	Graduated  bool   `json:"graduated"`
	Skills     int    `json:"skills"`
	Influence  int    `json:"influence"`
}

// ActiveDebuff is a live negative status. Chronic entries (diseases) never
// tick down and persist until explicitly cured.
type ActiveDebuff struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Icon              string         `json:"icon"`
	Effect            map[string]int `json:"effect"`
	RemainingDuration int            `json:"remainingDuration"`
	Chronic           bool           `json:"chronic"`
	CanClearEarly     bool           `json:"canClearEarly"`
	ClearCost         int            `json:"clearCost"`
}

// ActiveBuff is a live positive status with a finite duration.
type ActiveBuff struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Icon              string         `json:"icon"`
	Effect            map[string]int `json:"effect"`
	RemainingDuration int            `json:"remainingDuration"`
}

// GraduateBonus is carried on education items and applied at term end.
type GraduateBonus struct {
	EducationLevel int `json:"educationLevel"`
	Skills         int `json:"skills"`
	Influence      int `json:"influence"`
}

// RecurringItem is an ongoing job, investment, loan or enrollment, processed
// once per settlement.
type RecurringItem struct {
	ID             string                `json:"id"`
	SourceActionID string                `json:"sourceActionId"`
	TemplateID     string                `json:"templateId"`
	Type           catalog.RecurringType `json:"type"`
	SubType        catalog.InvestSubType `json:"subType,omitempty"`
	Name           string                `json:"name"`
	Icon           string                `json:"icon"`
	Description    string                `json:"description"`

	MonthlyIncome          int `json:"monthlyIncome"`
	MonthlyCost            int `json:"monthlyCost"`
	MonthlyHealthCost      int `json:"monthlyHealthCost"`
	MonthlySanCost         int `json:"monthlySanCost"`
	MonthlyCreditChange    int `json:"monthlyCreditChange"`
	MonthlyInfluenceChange int `json:"monthlyInfluenceChange"`

	LoseChance float64 `json:"loseChance"`
	LoseText   string  `json:"loseText"`

	Permanent       bool `json:"permanent"`
	RemainingMonths int  `json:"remainingMonths"`

	InvestPrincipal int `json:"investPrincipal"`
	AccumulatedGain int `json:"accumulatedGain"`

	GraduateBonus *GraduateBonus `json:"graduateBonus,omitempty"`

	CanSell    bool   `json:"canSell"`
	SellText   string `json:"sellText"`
	StartRound int    `json:"startRound"`
}

// BehaviorRef is the per-round record of an executed action.
type BehaviorRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RoundFinancials is the per-round income/expense ledger, reset by NextRound.
type RoundFinancials struct {
	Income  int `json:"income"`
	Expense int `json:"expense"`
}

// WealthPoint is one history snapshot appended per settlement.
type WealthPoint struct {
	Round      int `json:"round"`
	Money      int `json:"money"`
	NetWorth   int `json:"netWorth"`
	ClassLevel int `json:"classLevel"`
}

// DeathState is the terminal marker; once Active the run is over until an
// explicit reset.
type DeathState struct {
	Active bool      `json:"active"`
	Type   DeathType `json:"type,omitempty"`
	Reason string    `json:"reason"`
}

// FeedEntry is one line of the game log.
type FeedEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Kind      FeedKind  `json:"kind"`
	Round     int       `json:"round"`
	Timestamp time.Time `json:"timestamp"`
}

const feedCap = 80

// PlayerState is the single mutable aggregate for a run. It is created once
// at game start, mutated in place by the engine, and replaced wholesale only
// by Reset.
type PlayerState struct {
	Difficulty Difficulty `json:"difficulty"`

	Money      int        `json:"money"`
	Attributes Attributes `json:"attributes"`
	Education  Education  `json:"education"`

	HousingLevel string `json:"housingLevel"`
	DietLevel    string `json:"dietLevel"`
	MaxSan       int    `json:"maxSan"`

	CurrentRound int        `json:"currentRound"`
	RoundPhase   RoundPhase `json:"roundPhase"`

	ActiveDebuffs  []ActiveDebuff  `json:"activeDebuffs"`
	ActiveBuffs    []ActiveBuff    `json:"activeBuffs"`
	RecurringItems []RecurringItem `json:"recurringItems"`

	BehaviorCooldowns    map[string]int  `json:"behaviorCooldowns"`
	BehaviorUseCount     map[string]int  `json:"behaviorUseCount"`
	UsedOneTimeBehaviors map[string]bool `json:"usedOneTimeBehaviors"`
	GraduatedSchools     map[string]bool `json:"graduatedSchools"`
	OwnedProperties      map[string]bool `json:"ownedProperties"`

	RoundBehaviors  []BehaviorRef   `json:"roundBehaviors"`
	RoundFinancials RoundFinancials `json:"roundFinancials"`

	WealthHistory      []WealthPoint            `json:"wealthHistory"`
	ClassLevel         int                      `json:"classLevel"`
	AchievedMilestones map[string]bool          `json:"achievedMilestones"`
	PendingMilestones  []string                 `json:"pendingMilestones"`
	NewsCounters       map[catalog.NewsTone]int `json:"newsCounters"`

	PendingRandomEvent *catalog.RandomEvent `json:"pendingRandomEvent,omitempty"`
	PendingDilemmaID   string               `json:"pendingDilemmaId,omitempty"`
	CurrentWorldNews   []catalog.News       `json:"currentWorldNews,omitempty"`

	Death DeathState `json:"death"`

	Feed        []FeedEntry `json:"feed"`
	FullGameLog []FeedEntry `json:"fullGameLog"`

	StartedAt time.Time `json:"startedAt"`
}

type initialStats struct {
	money  int
	health int
	san    int
	credit int
}

var difficultyPresets = map[Difficulty]initialStats{
	DifficultyEasy:   {money: 5000, health: 90, san: 105, credit: 680},
	DifficultyNormal: {money: 2000, health: 80, san: 100, credit: 620},
	DifficultyHard:   {money: 1000, health: 70, san: 90, credit: 580},
	DifficultyHell:   {money: 300, health: 60, san: 80, credit: 520},
}

// NewPlayerState builds fresh defaults for a difficulty. Unknown difficulty
// falls back to normal.
func NewPlayerState(d Difficulty) *PlayerState {
	base, ok := difficultyPresets[d]
	if !ok {
		d = DifficultyNormal
		base = difficultyPresets[DifficultyNormal]
	}
	return &PlayerState{
		Difficulty:           d,
		Money:                base.money,
		Attributes:           Attributes{Health: base.health, San: base.san, Credit: base.credit, Luck: 50},
		Education:            Education{},
		HousingLevel:         "2",
		DietLevel:            "1",
		MaxSan:               110,
		CurrentRound:         1,
		RoundPhase:           PhaseAction,
		BehaviorCooldowns:    map[string]int{},
		BehaviorUseCount:     map[string]int{},
		UsedOneTimeBehaviors: map[string]bool{},
		GraduatedSchools:     map[string]bool{},
		OwnedProperties:      map[string]bool{},
		AchievedMilestones:   map[string]bool{},
		NewsCounters:         map[catalog.NewsTone]int{},
		RoundFinancials:      RoundFinancials{},
		StartedAt:            time.Now(),
	}
}

// Clamp restricts v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ModifyMoney applies a signed delta and books it into the round ledger.
func (s *PlayerState) ModifyMoney(delta int) {
	s.Money += delta
	if delta > 0 {
		s.RoundFinancials.Income += delta
	} else if delta < 0 {
		s.RoundFinancials.Expense += -delta
	}
}

// WorkItem returns the active work item, if any.
func (s *PlayerState) WorkItem() *RecurringItem {
	for i := range s.RecurringItems {
		if s.RecurringItems[i].Type == catalog.RecurringWork {
			return &s.RecurringItems[i]
		}
	}
	return nil
}

// EducationItem returns the active education item, if any.
func (s *PlayerState) EducationItem() *RecurringItem {
	for i := range s.RecurringItems {
		if s.RecurringItems[i].Type == catalog.RecurringEducation {
			return &s.RecurringItems[i]
		}
	}
	return nil
}

func (s *PlayerState) findByType(t catalog.RecurringType) *RecurringItem {
	for i := range s.RecurringItems {
		if s.RecurringItems[i].Type == t {
			return &s.RecurringItems[i]
		}
	}
	return nil
}

func (s *PlayerState) recurringBySource(actionID string) *RecurringItem {
	for i := range s.RecurringItems {
		if s.RecurringItems[i].SourceActionID == actionID {
			return &s.RecurringItems[i]
		}
	}
	return nil
}

func (s *PlayerState) removeRecurring(pred func(RecurringItem) bool) {
	rest := s.RecurringItems[:0]
	for _, it := range s.RecurringItems {
		if pred(it) {
			continue
		}
		rest = append(rest, it)
	}
	s.RecurringItems = rest
}

// HasChronicDebuff reports whether any active debuff is a disease.
func (s *PlayerState) HasChronicDebuff() bool {
	for _, d := range s.ActiveDebuffs {
		if d.Chronic {
			return true
		}
	}
	return false
}

// PushFeed appends a log line to the capped feed and the full game log.
func (s *PlayerState) PushFeed(text string, kind FeedKind) {
	entry := FeedEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Kind:      kind,
		Round:     s.CurrentRound,
		Timestamp: time.Now(),
	}
	s.Feed = append(s.Feed, entry)
	if len(s.Feed) > feedCap {
		s.Feed = s.Feed[len(s.Feed)-feedCap:]
	}
	s.FullGameLog = append(s.FullGameLog, entry)
}

// statView adapts PlayerState to the read-only view catalog predicates see.
type statView struct{ s *PlayerState }

func (v statView) Money() int { return v.s.Money }

func (v statView) Attribute(name string) int {
	switch name {
	case "health":
		return v.s.Attributes.Health
	case "san":
		return v.s.Attributes.San
	case "credit":
		return v.s.Attributes.Credit
	case "luck":
		return v.s.Attributes.Luck
	default:
		return 0
	}
}

func (v statView) EducationLevel() int { return v.s.Education.Level }
func (v statView) Graduated() bool     { return v.s.Education.Graduated }
func (v statView) Skills() int         { return v.s.Education.Skills }
func (v statView) Influence() int      { return v.s.Education.Influence }
func (v statView) Round() int          { return v.s.CurrentRound }

func (v statView) HousingTier() int {
	// Tier keys are numeric strings; a malformed key reads as tier 0.
	n := 0
	for _, r := range v.s.HousingLevel {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func (v statView) WorkIncome() int {
	total := 0
	for _, it := range v.s.RecurringItems {
		if it.Type == catalog.RecurringWork {
			total += it.MonthlyIncome
		}
	}
	return total
}

func (v statView) InvestmentCount() int {
	n := 0
	for _, it := range v.s.RecurringItems {
		if it.Type == catalog.RecurringInvest {
			n++
		}
	}
	return n
}

func (v statView) HasWork() bool { return v.s.WorkItem() != nil }

func (v statView) NetWorth() int { return NetWorth(v.s) }
