package engine

import (
	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/catalog"
)

// rollRandomEvent draws at most one event per settlement: a single severity
// roll picks the pool, then a weighted draw picks the entry. Effects apply
// immediately; the event is also staged for the popup.
func (e *Engine) rollRandomEvent() bool {
	var pool []catalog.RandomEvent
	switch roll := e.roll.Float64(); {
	case roll < 0.05:
		pool = e.cat.ExtremeEvents
	case roll < 0.20:
		pool = e.cat.NegativeEvents
	case roll < 0.40:
		pool = e.cat.PositiveEvents
	default:
		return false
	}
	if len(pool) == 0 {
		return false
	}

	total := 0.0
	for _, ev := range pool {
		w := ev.Weight
		if w <= 0 {
			w = 1
		}
		total += w
	}
	pick := e.roll.Float64() * total
	chosen := pool[len(pool)-1]
	for _, ev := range pool {
		w := ev.Weight
		if w <= 0 {
			w = 1
		}
		pick -= w
		if pick <= 0 {
			chosen = ev
			break
		}
	}

	var summary []string
	e.applyGain(chosen.Effects, &summary)
	e.state.PendingRandomEvent = &chosen
	e.state.PushFeed(chosen.Icon+" "+chosen.Text, feedKindForTone(chosen.Tone))
	e.checkTermination()
	return true
}

func feedKindForTone(t catalog.EventTone) FeedKind {
	switch t {
	case catalog.ToneNegative:
		return FeedWarning
	case catalog.ToneExtreme:
		return FeedDanger
	default:
		return FeedEffect
	}
}

// rollDilemma stages at most one two-way choice when no random event fired
// this settlement. Candidates are filtered by round and condition; one is
// drawn uniformly.
func (e *Engine) rollDilemma() {
	const dilemmaChance = 0.15
	if e.roll.Float64() >= dilemmaChance {
		return
	}
	view := statView{e.state}
	var candidates []catalog.Dilemma
	for _, d := range e.cat.Dilemmas {
		if d.MinRound > 0 && e.state.CurrentRound < d.MinRound {
			continue
		}
		if d.Condition != nil && !safeCheck(d.Condition, view) {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return
	}
	chosen := candidates[e.roll.Intn(len(candidates))]
	e.state.PendingDilemmaID = chosen.ID
	e.state.PushFeed(chosen.Icon+" "+chosen.Title, FeedWarning)
}

// PendingDilemma resolves the staged dilemma ID against the catalog.
func (e *Engine) PendingDilemma() (catalog.Dilemma, bool) {
	if e.state.PendingDilemmaID == "" {
		return catalog.Dilemma{}, false
	}
	for _, d := range e.cat.Dilemmas {
		if d.ID == e.state.PendingDilemmaID {
			return d, true
		}
	}
	return catalog.Dilemma{}, false
}

// ResolveDilemma applies the chosen option. Option A may carry a success
// chance; an option with no declared failure payload falls back to its
// success payload, so it cannot actually fail. Option B always succeeds.
func (e *Engine) ResolveDilemma(chooseA bool) error {
	d, ok := e.PendingDilemma()
	if !ok {
		return errors.New("engine: no dilemma pending")
	}
	opt := d.OptionB
	if chooseA {
		opt = d.OptionA
	}

	effects := opt.Effects
	resultText := opt.SuccessText
	if chooseA && opt.SuccessChance > 0 && opt.SuccessChance < 1 {
		if e.roll.Float64() >= opt.SuccessChance {
			if opt.FailEffects != nil {
				effects = opt.FailEffects
			}
			if opt.FailText != "" {
				resultText = opt.FailText
			}
		}
	}

	var summary []string
	e.applyGain(effects, &summary)
	if resultText != "" {
		e.state.PushFeed(resultText, FeedScene)
	}
	e.state.PendingDilemmaID = ""
	e.checkTermination()
	e.rollMilestones()
	e.state.ClassLevel = ClassLevel(e.state)
	return nil
}

// generateWorldNews fills the round's flavor ticker. Count scales with class
// level; tone counters accumulate for the epilogue, and irony entries can
// carry a direct player gain.
func (e *Engine) generateWorldNews() {
	s := e.state
	if len(e.cat.NewsTemplates) == 0 {
		s.CurrentWorldNews = nil
		return
	}
	count := 1
	switch {
	case s.ClassLevel >= 3:
		count = 3
	case s.ClassLevel >= 1:
		count = 2
	}

	news := make([]catalog.News, 0, count)
	for i := 0; i < count; i++ {
		tmpl := e.cat.NewsTemplates[e.roll.Intn(len(e.cat.NewsTemplates))]
		item := tmpl(e.roll)
		news = append(news, item)
		s.NewsCounters[item.Tone]++
		if item.PlayerGain != nil {
			var summary []string
			e.applyGain(item.PlayerGain, &summary)
			if item.GainText != "" {
				s.PushFeed(item.GainText, FeedEffect)
			}
		}
	}
	s.CurrentWorldNews = news
}
