package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yhlin/american-dream/internal/catalog"
	"github.com/yhlin/american-dream/internal/engine"
	"github.com/yhlin/american-dream/internal/store"
	"github.com/yhlin/american-dream/internal/text"
	"github.com/yhlin/american-dream/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewGame     = "game"
	viewItems    = "items"
	viewLog      = "log"
	viewWealth   = "wealth"
	viewHelp     = "help"
	viewDeath    = "death"
)

type model struct {
	ctx     context.Context
	db      *store.DB
	cfg     util.Config
	version string

	eng   *engine.Engine
	runID uuid.UUID

	view      string
	theme     string
	width     int
	height    int
	cursor    int
	itemIndex int
	status    string

	// settlement result panel shown until next round is started
	lastResult *engine.SettlementResult

	persistedFeed int
}

func initialModel(ctx context.Context, db *store.DB, cfg util.Config, version string) (*model, error) {
	eng, err := engine.New(cfg.SeedText,
		engine.WithDifficulty(engine.Difficulty(cfg.Difficulty)),
	)
	if err != nil {
		return nil, err
	}
	return &model{
		ctx:     ctx,
		db:      db,
		cfg:     cfg,
		version: version,
		eng:     eng,
		view:    viewMainMenu,
		theme:   "diner",
	}, nil
}

func (m *model) Init() tea.Cmd { return nil }

// startNewGame resets the engine and registers the run in the store.
func (m *model) startNewGame() {
	m.eng.Reset()
	m.cursor = 0
	m.lastResult = nil
	m.persistedFeed = 0
	m.status = ""
	if m.db != nil {
		run, err := store.NewRunRepo(m.db).Create(m.ctx, m.cfg.SeedText, engine.Difficulty(m.cfg.Difficulty))
		if err != nil {
			m.status = "persistence off: " + err.Error()
		} else {
			m.runID = run.ID
		}
	}
	m.view = viewGame
}

// continueGame restores the latest live run's snapshot.
func (m *model) continueGame() {
	if m.db == nil {
		m.status = "no database configured"
		return
	}
	run, err := store.NewRunRepo(m.db).Latest(m.ctx)
	if err != nil {
		m.status = "no run to continue"
		return
	}
	state, err := store.NewSnapshotRepo(m.db).Load(m.ctx, run.ID)
	if err != nil {
		m.status = "no snapshot for latest run"
		return
	}
	m.runID = run.ID
	*m.eng.State() = *state
	m.persistedFeed = len(state.FullGameLog)
	m.view = viewGame
}

// persistSettlement writes the snapshot, new feed entries and the latest
// wealth point in one transaction. Failures degrade to a status line.
func (m *model) persistSettlement() {
	if m.db == nil || m.runID == uuid.Nil {
		return
	}
	s := m.eng.State()
	err := m.db.WithTx(m.ctx, func(tx *gorm.DB) error {
		if err := store.NewSnapshotRepo(m.db).Save(m.ctx, tx, m.runID, s); err != nil {
			return err
		}
		if m.persistedFeed < len(s.FullGameLog) {
			fresh := s.FullGameLog[m.persistedFeed:]
			if err := store.NewFeedRepo(m.db).BulkInsert(m.ctx, tx, m.runID, fresh); err != nil {
				return err
			}
		}
		if n := len(s.WealthHistory); n > 0 {
			if err := store.NewWealthRepo(m.db).Append(m.ctx, tx, m.runID, s.WealthHistory[n-1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.persistedFeed = len(s.FullGameLog)
	_ = store.NewRunRepo(m.db).Advance(m.ctx, m.runID, s.CurrentRound)
	if s.Death.Active {
		_ = store.NewRunRepo(m.db).MarkDead(m.ctx, m.runID, s.Death.Type, s.Death.Reason)
	}
}

func (m *model) endRound() {
	result, err := m.eng.EndRound()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.lastResult = result
	m.persistSettlement()
	if m.eng.State().Death.Active {
		m.view = viewDeath
	}
}

func (m *model) nextRound() {
	m.eng.NextRound()
	m.lastResult = nil
	m.cursor = 0
	m.status = ""
}

func (m *model) executeSelected() {
	behaviors := m.eng.AvailableBehaviors()
	if m.cursor < 0 || m.cursor >= len(behaviors) {
		return
	}
	b := behaviors[m.cursor]
	result, err := m.eng.ExecuteBehavior(b.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	if result.OutcomeSuccess {
		m.status = result.EffectSummary
	} else {
		m.status = "⚠️ " + result.Narrative
	}
	if m.eng.State().Death.Active {
		m.persistSettlement()
		m.view = viewDeath
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" || (k == "q" && m.view != viewGame) {
			return m, tea.Quit
		}
		return m.handleKey(k)
	}
	return m, nil
}

func (m *model) handleKey(k string) (tea.Model, tea.Cmd) {
	s := m.eng.State()

	switch m.view {
	case viewMainMenu:
		switch k {
		case "1":
			m.startNewGame()
		case "2":
			m.continueGame()
		case "3":
			m.view = viewHelp
		case "t":
			m.theme = nextThemeName(m.theme, 1)
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case viewDeath:
		switch k {
		case "r":
			m.startNewGame()
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case viewHelp, viewLog, viewWealth:
		if k == "esc" || k == "q" || k == "?" {
			m.view = viewGame
		}
		return m, nil

	case viewItems:
		items := s.RecurringItems
		switch k {
		case "up", "k":
			if m.itemIndex > 0 {
				m.itemIndex--
			}
		case "down", "j":
			if m.itemIndex < len(items)-1 {
				m.itemIndex++
			}
		case "s":
			if m.itemIndex < len(items) {
				if err := m.eng.SellRecurringItem(items[m.itemIndex].ID); err != nil {
					m.status = err.Error()
				}
			}
		case "x":
			if m.itemIndex < len(items) {
				if err := m.eng.RemoveRecurringItem(items[m.itemIndex].ID); err != nil {
					m.status = err.Error()
				}
			}
		case "c":
			m.treatFirstDebuff()
		case "h":
			m.cycleHousing()
		case "d":
			m.cycleDiet()
		case "esc", "q":
			m.view = viewGame
		}
		return m, nil
	}

	// Game view. Pending popups swallow input first.
	if _, ok := m.eng.PendingDilemma(); ok {
		switch k {
		case "a":
			if err := m.eng.ResolveDilemma(true); err != nil {
				m.status = err.Error()
			}
		case "b":
			if err := m.eng.ResolveDilemma(false); err != nil {
				m.status = err.Error()
			}
		}
		if s.Death.Active {
			m.view = viewDeath
		}
		return m, nil
	}
	if len(s.PendingMilestones) > 0 {
		if k == "enter" || k == "esc" {
			m.eng.DismissMilestone()
		}
		return m, nil
	}
	if s.PendingRandomEvent != nil {
		if k == "enter" || k == "esc" {
			m.eng.DismissRandomEvent()
		}
		return m, nil
	}

	switch k {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.eng.AvailableBehaviors())-1 {
			m.cursor++
		}
	case "enter":
		if s.RoundPhase == engine.PhaseAction {
			m.executeSelected()
		}
	case "e":
		if s.RoundPhase == engine.PhaseAction {
			m.endRound()
		}
	case "n":
		if s.RoundPhase == engine.PhaseResult {
			m.nextRound()
		}
	case "i":
		m.itemIndex = 0
		m.view = viewItems
	case "l":
		m.view = viewLog
	case "w":
		m.view = viewWealth
	case "?":
		m.view = viewHelp
	case "m":
		m.view = viewMainMenu
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// treatFirstDebuff pays to clear the first treatable condition.
func (m *model) treatFirstDebuff() {
	s := m.eng.State()
	for _, d := range s.ActiveDebuffs {
		if !d.CanClearEarly {
			continue
		}
		if err := m.eng.ClearDebuffEarly(d.ID); err != nil {
			m.status = err.Error()
		} else {
			m.status = d.Name + " treated for " + text.Money(d.ClearCost)
		}
		return
	}
	m.status = "nothing treatable"
}

func (m *model) cycleHousing() {
	s := m.eng.State()
	cat := m.eng.Catalog()
	current, ok := cat.HousingTier(s.HousingLevel)
	if !ok {
		return
	}
	next := fmt.Sprintf("%d", current.Level%len(cat.Housing)+1)
	tier, ok := cat.HousingTier(next)
	if !ok {
		return
	}
	if s.Money < tier.Cost {
		m.status = "cannot afford " + tier.Name
		return
	}
	if err := m.eng.SwitchHousing(next); err != nil {
		m.status = err.Error()
	}
}

func (m *model) cycleDiet() {
	s := m.eng.State()
	cat := m.eng.Catalog()
	current, ok := cat.DietTier(s.DietLevel)
	if !ok {
		return
	}
	next := fmt.Sprintf("%d", current.Level%len(cat.Diet)+1)
	if err := m.eng.SwitchDiet(next); err != nil {
		m.status = err.Error()
	}
}

// Rendering ------------------------------------------------------------------

func (m *model) View() string {
	switch m.view {
	case viewMainMenu:
		return m.renderMainMenu()
	case viewDeath:
		return m.renderDeath()
	case viewHelp:
		return m.renderHelp()
	case viewLog:
		return m.renderLog()
	case viewWealth:
		return m.renderWealth()
	case viewItems:
		return m.renderItems()
	default:
		return m.renderGame()
	}
}

func (m *model) renderMainMenu() string {
	p := paletteFor(m.theme)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("AMERICAN DREAM")
	sub := lipgloss.NewStyle().Foreground(p.Muted).Render("survive, or become the food chain  •  v" + m.version)
	menu := strings.Join([]string{
		"[1] New game (" + m.cfg.Difficulty + ")",
		"[2] Continue",
		"[3] Help",
		"[T] Theme: " + m.theme,
		"[Q] Quit",
	}, "\n")
	body := lipgloss.JoinVertical(lipgloss.Left, title, sub, "", menu)
	if m.status != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(p.Warning).Render(m.status)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m *model) renderTopBar() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	info := m.eng.CurrentClassInfo()
	left := strings.Join([]string{
		text.RoundTitle(s.CurrentRound),
		text.YearPhase(s.CurrentRound),
		info.Icon + " " + info.Name,
	}, " • ")
	right := fmt.Sprintf("%s  net %s", text.Money(s.Money), text.Money(m.eng.CurrentNetWorth()))
	w := m.width
	if w <= 0 {
		w = 100
	}
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(left + strings.Repeat(" ", gap) + right)
}

func bar(p palette, value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	filled = clampInt(filled, 0, width)
	fill := lipgloss.NewStyle().Foreground(p.BarFill).Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(p.BarEmpty).Render(strings.Repeat("░", width-filled))
	return fill + empty
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *model) renderSidebar() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	var b strings.Builder
	fmt.Fprintf(&b, "health %s %d\n", bar(p, s.Attributes.Health, 100, 10), s.Attributes.Health)
	fmt.Fprintf(&b, "SAN    %s %d/%d\n", bar(p, s.Attributes.San, s.MaxSan, 10), s.Attributes.San, s.MaxSan)
	fmt.Fprintf(&b, "credit %d   luck %d\n", s.Attributes.Credit, s.Attributes.Luck)
	fmt.Fprintf(&b, "skills %d   influence %d\n", s.Education.Skills, s.Education.Influence)
	if housing, ok := m.eng.Catalog().HousingTier(s.HousingLevel); ok {
		fmt.Fprintf(&b, "🏠 %s", housing.Name)
		if s.OwnedProperties[s.HousingLevel] {
			b.WriteString(" (owned)")
		}
		b.WriteString("\n")
	}
	if diet, ok := m.eng.Catalog().DietTier(s.DietLevel); ok {
		fmt.Fprintf(&b, "🍜 %s\n", diet.Name)
	}
	if len(s.ActiveDebuffs) > 0 {
		b.WriteString("\n")
		for _, d := range s.ActiveDebuffs {
			if d.Chronic {
				fmt.Fprintf(&b, "%s %s (chronic)\n", d.Icon, d.Name)
			} else {
				fmt.Fprintf(&b, "%s %s (%d)\n", d.Icon, d.Name, d.RemainingDuration)
			}
		}
	}
	for _, buf := range s.ActiveBuffs {
		fmt.Fprintf(&b, "%s %s (%d)\n", buf.Icon, buf.Name, buf.RemainingDuration)
	}
	if len(s.RecurringItems) > 0 {
		b.WriteString("\n")
		for _, it := range s.RecurringItems {
			fmt.Fprintf(&b, "%s %s\n", it.Icon, it.Name)
		}
	}
	return b.String()
}

func (m *model) renderBehaviors() string {
	p := paletteFor(m.theme)
	behaviors := m.eng.AvailableBehaviors()
	var b strings.Builder
	for i, a := range behaviors {
		line := a.Name
		switch {
		case !a.Unlocked:
			line = "🔒 " + line + "  (" + a.LockReason + ")"
		case !a.CanExecute:
			line += "  (" + strings.Join(a.Reasons, "; ") + ")"
		}
		style := lipgloss.NewStyle().Foreground(p.Text)
		if !a.CanExecute {
			style = style.Foreground(p.Muted)
		}
		if i == m.cursor {
			style = style.Bold(true).Foreground(p.Accent)
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func (m *model) renderResultPanel() string {
	p := paletteFor(m.theme)
	r := m.lastResult
	var parts []string
	if r.RentWaived {
		parts = append(parts, "rent waived")
	}
	if r.RentPaid > 0 {
		parts = append(parts, "rent -"+text.Money(r.RentPaid))
	}
	if r.Evicted {
		parts = append(parts, "EVICTED")
	}
	if r.DietCost > 0 {
		parts = append(parts, "food -"+text.Money(r.DietCost))
	}
	parts = append(parts, r.RecurringEffects...)
	parts = append(parts, r.LostRecurring...)
	for _, g := range r.Graduations {
		parts = append(parts, "🎓 "+g)
	}
	if r.DiseaseFired != "" {
		parts = append(parts, "🏥 "+r.DiseaseFired)
	}
	body := strings.Join(parts, "\n")
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Warning).Render("MONTHLY CLOSE")
	hint := lipgloss.NewStyle().Foreground(p.Muted).Render("[N] next month")
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1).
		Render(title + "\n" + body + "\n" + hint)
}

func (m *model) renderPopup() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	box := lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.Accent).Padding(0, 1)

	if d, ok := m.eng.PendingDilemma(); ok {
		body := d.Icon + " " + d.Title + "\n" + d.Description + "\n\n" +
			"[A] " + d.OptionA.Text + "\n[B] " + d.OptionB.Text
		return box.Render(body)
	}
	if len(s.PendingMilestones) > 0 {
		id := s.PendingMilestones[0]
		for _, ms := range m.eng.Catalog().Milestones {
			if ms.ID == id {
				return box.Render(ms.Icon + " MILESTONE: " + ms.Title + "\n" + ms.Description + "\n\n[Enter] dismiss")
			}
		}
		return box.Render("MILESTONE: " + id + "\n\n[Enter] dismiss")
	}
	if ev := s.PendingRandomEvent; ev != nil {
		return box.Render(ev.Icon + " " + ev.Text + "\n\n[Enter] dismiss")
	}
	return ""
}

func (m *model) renderFeedTail(n int) string {
	p := paletteFor(m.theme)
	feed := m.eng.Feed()
	if len(feed) > n {
		feed = feed[len(feed)-n:]
	}
	var b strings.Builder
	for _, e := range feed {
		style := lipgloss.NewStyle().Foreground(p.Muted)
		switch e.Kind {
		case engine.FeedDanger:
			style = style.Foreground(p.Danger)
		case engine.FeedWarning:
			style = style.Foreground(p.Warning)
		case engine.FeedEffect:
			style = style.Foreground(p.Success)
		}
		b.WriteString(style.Render(e.Text) + "\n")
	}
	return b.String()
}

func (m *model) renderGame() string {
	p := paletteFor(m.theme)
	top := m.renderTopBar()

	var center string
	if popup := m.renderPopup(); popup != "" {
		center = popup
	} else if m.lastResult != nil {
		center = m.renderResultPanel()
	} else {
		center = m.renderBehaviors()
	}

	w := m.width
	if w <= 0 {
		w = 100
	}
	sidebarWidth := 32
	mainWidth := w - sidebarWidth - 1
	main := lipgloss.NewStyle().Width(mainWidth).Render(center + "\n" + m.renderFeedTail(6))
	side := lipgloss.NewStyle().Width(sidebarWidth).Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).Padding(0, 1).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, side)

	bottom := "[↑↓] select  [Enter] act  [E] end month  [I] items  [L] log  [W] wealth  [?] help  [Q] quit"
	if m.status != "" {
		bottom = m.status + "\n" + bottom
	}
	bottomBar := lipgloss.NewStyle().Foreground(p.Muted).Render(bottom)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottomBar)
}

func (m *model) renderItems() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("ONGOING") + "\n\n")
	if len(s.RecurringItems) == 0 {
		b.WriteString("(nothing running)\n")
	}
	for i, it := range s.RecurringItems {
		line := fmt.Sprintf("%s %s  income %s/mo", it.Icon, it.Name, text.Money(it.MonthlyIncome))
		if it.Type == catalog.RecurringInvest && it.SubType == catalog.SubTypeFund {
			line += fmt.Sprintf("  value %s", text.Money(it.InvestPrincipal+it.AccumulatedGain))
		}
		if !it.Permanent && it.RemainingMonths > 0 {
			line += fmt.Sprintf("  %d mo left", it.RemainingMonths)
		}
		if it.CanSell {
			line += "  [sellable]"
		}
		if i == m.itemIndex {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	for _, d := range s.ActiveDebuffs {
		if d.CanClearEarly {
			fmt.Fprintf(&b, "%s %s  treatable for %s\n", d.Icon, d.Name, text.Money(d.ClearCost))
		}
	}
	b.WriteString("\n[S] sell  [X] terminate  [C] treat condition  [H] cycle housing  [D] cycle diet  [Esc] back\n")
	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Warning).Render(m.status) + "\n")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *model) renderLog() string {
	var b strings.Builder
	for _, e := range m.eng.State().FullGameLog {
		fmt.Fprintf(&b, "%3d  %s\n", e.Round, e.Text)
	}
	b.WriteString("\n[Esc] back")
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *model) renderWealth() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("WEALTH HISTORY") + "\n\n")
	peak := 1
	for _, pt := range s.WealthHistory {
		if pt.NetWorth > peak {
			peak = pt.NetWorth
		}
	}
	for _, pt := range s.WealthHistory {
		width := 0
		if pt.NetWorth > 0 {
			width = pt.NetWorth * 30 / peak
		}
		fmt.Fprintf(&b, "%3d %s %s\n", pt.Round, strings.Repeat("▇", clampInt(width, 0, 30)), text.Money(pt.NetWorth))
	}
	if len(s.CurrentWorldNews) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("THIS MONTH'S NEWS") + "\n")
		for _, n := range s.CurrentWorldNews {
			b.WriteString(n.Icon + " " + n.Text + "\n")
		}
	}
	b.WriteString("\n[Esc] back")
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

const helpMarkdown = `# How to play

Every round is one month. Pick actions while you have SAN and money for
them, then close the month with **E**. Rent, food, jobs, investments,
loans and everything you signed up for settles at once.

- Health or SAN at zero ends the run. There is no third way out.
- Better housing raises your SAN cap and passive recovery, and costs rent.
- Jobs are permanent until you quit or get laid off. Loans always come due.
- Fund investments can be sold for principal plus gains; a business cannot.
- Education takes months and pays off at graduation.

Class level is recomputed from money, income, housing, education,
investments, credit and influence. Reaching the top is possible. Probably.
`

func (m *model) renderHelp() string {
	out, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		out = helpMarkdown
	}
	return out + "\n[Esc] back"
}

func (m *model) renderDeath() string {
	p := paletteFor(m.theme)
	s := m.eng.State()
	md := fmt.Sprintf("# THE DREAM ENDS HERE\n\n%s\n\nYou lasted **%d months**. Final net worth: %s. Class: %s %s.\n",
		s.Death.Reason, s.CurrentRound, text.Money(engine.NetWorth(s)), m.eng.CurrentClassInfo().Icon, m.eng.CurrentClassInfo().Name)
	if n := s.NewsCounters; len(n) > 0 {
		md += fmt.Sprintf("\nWhile you struggled: %d died, %d were deported, %d went broke around you.\n",
			n[catalog.NewsDeath], n[catalog.NewsDeport], n[catalog.NewsRuin])
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		out = md
	}
	hint := lipgloss.NewStyle().Foreground(p.Muted).Render("[R] start over  [Q] quit")
	return out + "\n" + hint
}
