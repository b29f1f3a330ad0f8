// Package catalog holds the data tables the game engine interprets: actions,
// recurring templates, status definitions, housing/diet tiers, milestones,
// random events, dilemmas, diseases and world news. The engine never assumes
// referential integrity between tables; every lookup can fail and callers
// degrade gracefully.
package catalog

type ActionCategory string
type ActionType string
type RecurringType string
type InvestSubType string
type UnlockType string
type EventTone string
type NewsTone string

const (
	CategoryHeal          ActionCategory = "heal"
	CategoryEarn          ActionCategory = "earn"
	CategoryHealthToMoney ActionCategory = "healthToMoney"
	CategoryMoneyToHealth ActionCategory = "moneyToHealth"
	CategoryCredit        ActionCategory = "credit"
	CategoryGamble        ActionCategory = "gamble"
	CategorySpecial       ActionCategory = "special"
	CategoryLuxury        ActionCategory = "luxury"
	CategoryEducation     ActionCategory = "education"
	CategoryInvest        ActionCategory = "invest"
)

var AllCategories = []ActionCategory{CategoryHeal, CategoryEarn, CategoryHealthToMoney, CategoryMoneyToHealth, CategoryCredit, CategoryGamble, CategorySpecial, CategoryLuxury, CategoryEducation, CategoryInvest}

const (
	TypeFixed   ActionType = "fixed"
	TypeRandom  ActionType = "random"
	TypeRisky   ActionType = "risky"
	TypeLottery ActionType = "lottery"
)

var AllActionTypes = []ActionType{TypeFixed, TypeRandom, TypeRisky, TypeLottery}

const (
	RecurringWork      RecurringType = "work"
	RecurringInvest    RecurringType = "invest"
	RecurringLoan      RecurringType = "loan"
	RecurringEducation RecurringType = "education"
)

var AllRecurringTypes = []RecurringType{RecurringWork, RecurringInvest, RecurringLoan, RecurringEducation}

const (
	SubTypeFund     InvestSubType = "fund"
	SubTypeBusiness InvestSubType = "business"
)

const (
	UnlockDefault   UnlockType = "default"
	UnlockRound     UnlockType = "round"
	UnlockCondition UnlockType = "condition"
)

const (
	TonePositive EventTone = "positive"
	ToneNegative EventTone = "negative"
	ToneExtreme  EventTone = "extreme"
)

const (
	NewsDeath  NewsTone = "death"
	NewsRuin   NewsTone = "ruin"
	NewsDeport NewsTone = "deport"
	NewsMisery NewsTone = "misery"
	NewsIrony  NewsTone = "irony"
)

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (c ActionCategory) Validate() bool { return contains(AllCategories, c) }
func (t ActionType) Validate() bool     { return contains(AllActionTypes, t) }
func (t RecurringType) Validate() bool  { return contains(AllRecurringTypes, t) }

// StatView is the read-only slice of player state that data-table predicates
// (milestones, dilemma conditions) are allowed to see. The engine's state
// aggregate implements it; catalogs stay free of engine imports.
type StatView interface {
	Money() int
	Attribute(name string) int
	EducationLevel() int
	Graduated() bool
	Skills() int
	Influence() int
	HousingTier() int
	Round() int
	WorkIncome() int
	InvestmentCount() int
	HasWork() bool
	NetWorth() int
}

// Rand is the minimal randomness surface data templates may draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Cost is what executing an action debits up front.
type Cost struct {
	San    int
	Money  int
	Health int
}

// Outcome is one weighted entry of a random/lottery action's outcome table.
type Outcome struct {
	Chance float64
	Gain   map[string]int
	Text   string
}

// Risk is the single failure clause of a risky action. Penalty is additive on
// top of BaseGain, not a replacement.
type Risk struct {
	Chance  float64
	Penalty map[string]int
	Text    string
	Debuff  *StatusRef
}

// StatusRef points at a debuff/buff definition, optionally overriding its
// default duration.
type StatusRef struct {
	ID       string
	Duration int
}

// Unlock gates when an action appears at all.
type Unlock struct {
	Type          UnlockType
	Round         int
	Condition     string
	ConditionText string
}

// Requirements are minimum-stat gates checked at eligibility time.
type Requirements struct {
	MinEducationLevel int
	MinSkills         int
	MinInfluence      int
	MinCredit         int
}

// Limit caps how often an action may run.
type Limit struct {
	UsesPerGame int
	Cooldown    int
}

// Action is one player-selectable behavior.
type Action struct {
	ID          string
	Name        string
	Category    ActionCategory
	Type        ActionType
	Description string
	Quote       string

	Cost     Cost
	Gain     map[string]int
	BaseGain map[string]int
	Outcomes []Outcome
	Risk     *Risk

	Debuff *StatusRef
	Buff   *StatusRef

	SetCreditTo     *int
	ClearAllDebuffs bool
	QuitWork        bool
	ClearDisease    bool

	Unlock       Unlock
	Requirements Requirements
	Limit        Limit

	// Recurring names a RecurringTemplate instantiated on success.
	Recurring string

	// GrantsProperty marks a one-time purchase that waives rent for the named
	// housing tier from then on.
	GrantsProperty string

	// ShowChance < 1 means the action is only offered some rounds; the
	// per-round deterministic stream decides. Zero value means always shown.
	ShowChance float64
}

// GraduateBonus is applied when an education item's term ends.
type GraduateBonus struct {
	EducationLevel int
	Skills         int
	Influence      int
}

// RecurringTemplate is the static shape a RecurringItem is stamped from.
type RecurringTemplate struct {
	ID          string
	Type        RecurringType
	SubType     InvestSubType
	Name        string
	Icon        string
	Description string

	MonthlyIncome          int
	MonthlyCost            int
	MonthlyHealthCost      int
	MonthlySanCost         int
	MonthlyCreditChange    int
	MonthlyInfluenceChange int

	LoseChance float64
	LoseText   string

	Months        int // 0 means type default (work permanent, loan 6)
	GraduateBonus *GraduateBonus

	CanSell  bool
	SellText string
}

// StatusDef defines a debuff or buff. Effect keys are per-round deltas
// (money, health, san, credit). Chronic debuffs never tick down.
type StatusDef struct {
	ID            string
	Name          string
	Icon          string
	Effect        map[string]int
	Duration      int
	Chronic       bool
	CanClearEarly bool
	ClearCost     int
}

// HousingTier resolves a housing level ordinal.
type HousingTier struct {
	Level  int
	Name   string
	Cost   int
	SanMax int
}

// DietTier resolves a diet level ordinal. SanCost is subtracted from SAN; a
// negative value restores SAN (sign convention kept from the source data).
type DietTier struct {
	Level        int
	Name         string
	Cost         int
	HealthChange int
	SanCost      int
}

// Milestone is a one-shot achievement predicate.
type Milestone struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Tone        string
	Check       func(StatView) bool
}

// RandomEvent is one entry of a severity pool, drawn weighted by Weight.
type RandomEvent struct {
	ID      string
	Text    string
	Icon    string
	Tone    EventTone
	Effects map[string]int
	Weight  float64
}

// DilemmaOption is one side of a two-way choice. A SuccessChance below 1
// with no Fail content cannot actually fail; the success payload doubles as
// the fallback (kept from the source data, flagged in DESIGN.md).
type DilemmaOption struct {
	Text          string
	Description   string
	Effects       map[string]int
	SuccessChance float64
	SuccessText   string
	FailText      string
	FailEffects   map[string]int
}

// Dilemma presents two options once staged by the settlement roller.
type Dilemma struct {
	ID          string
	Title       string
	Description string
	Icon        string
	MinRound    int
	Condition   func(StatView) bool
	OptionA     DilemmaOption
	OptionB     DilemmaOption
}

// Disease maps an adjusted probability roll onto a debuff.
type Disease struct {
	ID           string
	DebuffID     string
	BaseChance   float64
	Occupational bool
}

// News is one world-news flavor entry; PlayerGain, when present, applies
// immediately to the player.
type News struct {
	ID         string
	Text       string
	Icon       string
	Tone       NewsTone
	PlayerGain map[string]int
	GainText   string
}

// NewsTemplate generates a News entry with randomized NPC details.
type NewsTemplate func(r Rand) News

// Catalog bundles every table. Lookup methods return ok=false on misses so a
// partial catalog degrades instead of aborting operations.
type Catalog struct {
	Actions            []Action
	RecurringTemplates map[string]RecurringTemplate
	Debuffs            map[string]StatusDef
	Buffs              map[string]StatusDef
	Housing            map[string]HousingTier
	Diet               map[string]DietTier
	Milestones         []Milestone
	PositiveEvents     []RandomEvent
	NegativeEvents     []RandomEvent
	ExtremeEvents      []RandomEvent
	Dilemmas           []Dilemma
	Diseases           []Disease
	NewsTemplates      []NewsTemplate
}

func (c *Catalog) Action(id string) (Action, bool) {
	for _, a := range c.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

func (c *Catalog) Template(id string) (RecurringTemplate, bool) {
	t, ok := c.RecurringTemplates[id]
	return t, ok
}

func (c *Catalog) Debuff(id string) (StatusDef, bool) {
	d, ok := c.Debuffs[id]
	return d, ok
}

func (c *Catalog) Buff(id string) (StatusDef, bool) {
	b, ok := c.Buffs[id]
	return b, ok
}

func (c *Catalog) HousingTier(level string) (HousingTier, bool) {
	h, ok := c.Housing[level]
	return h, ok
}

func (c *Catalog) DietTier(level string) (DietTier, bool) {
	d, ok := c.Diet[level]
	return d, ok
}

// LowestHousing returns the tier key with the smallest level, the eviction
// target when rent cannot be paid.
func (c *Catalog) LowestHousing() string {
	best := ""
	bestLevel := 0
	for key, tier := range c.Housing {
		if best == "" || tier.Level < bestLevel {
			best = key
			bestLevel = tier.Level
		}
	}
	return best
}
