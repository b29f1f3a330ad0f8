package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{}

func (fixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}
func (fixedRand) Float64() float64 { return 0.5 }

// The engine tolerates dangling references at runtime, but the shipped tables
// should not contain any.
func TestDefaultTablesReferentialIntegrity(t *testing.T) {
	c := Default()

	seen := map[string]bool{}
	for _, a := range c.Actions {
		require.NotEmpty(t, a.ID)
		assert.False(t, seen[a.ID], "duplicate action id %s", a.ID)
		seen[a.ID] = true

		assert.True(t, a.Category.Validate(), "%s: bad category %q", a.ID, a.Category)
		assert.True(t, a.Type.Validate(), "%s: bad type %q", a.ID, a.Type)

		if a.Recurring != "" {
			_, ok := c.Template(a.Recurring)
			assert.True(t, ok, "%s: recurring template %q missing", a.ID, a.Recurring)
		}
		if a.Debuff != nil {
			_, ok := c.Debuff(a.Debuff.ID)
			assert.True(t, ok, "%s: debuff %q missing", a.ID, a.Debuff.ID)
		}
		if a.Buff != nil {
			_, ok := c.Buff(a.Buff.ID)
			assert.True(t, ok, "%s: buff %q missing", a.ID, a.Buff.ID)
		}
		if a.Risk != nil {
			assert.Greater(t, a.Risk.Chance, 0.0, "%s: risky action without a chance", a.ID)
			assert.LessOrEqual(t, a.Risk.Chance, 1.0, "%s: risk chance above 1", a.ID)
			if a.Risk.Debuff != nil {
				_, ok := c.Debuff(a.Risk.Debuff.ID)
				assert.True(t, ok, "%s: risk debuff %q missing", a.ID, a.Risk.Debuff.ID)
			}
		}
		if a.GrantsProperty != "" {
			_, ok := c.HousingTier(a.GrantsProperty)
			assert.True(t, ok, "%s: grants unknown housing tier %q", a.ID, a.GrantsProperty)
		}
		assert.GreaterOrEqual(t, a.ShowChance, 0.0, "%s: negative show chance", a.ID)
		assert.LessOrEqual(t, a.ShowChance, 1.0, "%s: show chance above 1", a.ID)
	}
}

func TestDefaultTemplates(t *testing.T) {
	c := Default()
	for id, tmpl := range c.RecurringTemplates {
		assert.Equal(t, id, tmpl.ID, "template key and ID must agree")
		assert.True(t, tmpl.Type.Validate(), "%s: bad recurring type %q", id, tmpl.Type)
		if tmpl.Type == RecurringEducation {
			assert.NotNil(t, tmpl.GraduateBonus, "%s: education without a graduate bonus", id)
			assert.Greater(t, tmpl.Months, 0, "%s: education needs a finite term", id)
		}
		if tmpl.Type == RecurringLoan {
			assert.Negative(t, tmpl.MonthlyIncome, "%s: a loan pays out, it does not earn", id)
		}
		assert.GreaterOrEqual(t, tmpl.LoseChance, 0.0, "%s: negative lose chance", id)
		assert.Less(t, tmpl.LoseChance, 1.0, "%s: certain loss makes the item pointless", id)
	}
}

func TestDefaultTiers(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Housing)
	for key, tier := range c.Housing {
		assert.Greater(t, tier.Level, 0, "housing %q", key)
		assert.Greater(t, tier.SanMax, 0, "housing %q", key)
	}
	assert.Equal(t, "1", c.LowestHousing())

	require.NotEmpty(t, c.Diet)
	for key, tier := range c.Diet {
		assert.Greater(t, tier.Level, 0, "diet %q", key)
		assert.Greater(t, tier.Cost, 0, "diet %q: even noodles cost money", key)
	}
}

func TestDefaultStatusesAndDiseases(t *testing.T) {
	c := Default()

	for id, d := range c.Debuffs {
		assert.Equal(t, id, d.ID)
		if !d.Chronic {
			assert.Greater(t, d.Duration, 0, "%s: non-chronic debuff needs a duration", id)
		}
		if d.CanClearEarly {
			assert.Greater(t, d.ClearCost, 0, "%s: treatable condition needs a price", id)
		}
	}
	for id, b := range c.Buffs {
		assert.Equal(t, id, b.ID)
		assert.Greater(t, b.Duration, 0, "%s: buff needs a duration", id)
	}
	for _, d := range c.Diseases {
		_, ok := c.Debuff(d.DebuffID)
		assert.True(t, ok, "disease %s: debuff %q missing", d.ID, d.DebuffID)
		assert.Greater(t, d.BaseChance, 0.0, "disease %s", d.ID)
		assert.Less(t, d.BaseChance, 0.5, "disease %s: base chance implausibly high", d.ID)
	}
}

func TestDefaultEventsAndDilemmas(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.PositiveEvents)
	require.NotEmpty(t, c.NegativeEvents)
	require.NotEmpty(t, c.ExtremeEvents)
	for _, ev := range c.PositiveEvents {
		assert.Equal(t, TonePositive, ev.Tone, "event %s filed in the wrong pool", ev.ID)
	}
	for _, ev := range c.NegativeEvents {
		assert.Equal(t, ToneNegative, ev.Tone, "event %s filed in the wrong pool", ev.ID)
	}
	// The extreme pool holds rare outcomes of either sign, so only magnitude
	// is checked there.
	for _, pool := range [][]RandomEvent{c.PositiveEvents, c.NegativeEvents, c.ExtremeEvents} {
		for _, ev := range pool {
			assert.NotEmpty(t, ev.Effects, "event %s has no effects", ev.ID)
			assert.Greater(t, ev.Weight, 0.0, "event %s has no weight", ev.ID)
		}
	}

	for _, d := range c.Dilemmas {
		assert.NotEmpty(t, d.OptionA.Text, "dilemma %s", d.ID)
		assert.NotEmpty(t, d.OptionB.Text, "dilemma %s", d.ID)
		if ch := d.OptionA.SuccessChance; ch > 0 && ch < 1 {
			assert.NotEmpty(t, d.OptionA.FailEffects, "dilemma %s: a real gamble needs a fail payload", d.ID)
			assert.NotEmpty(t, d.OptionA.FailText, "dilemma %s: a real gamble needs a fail line", d.ID)
		}
	}
}

func TestDefaultMilestonesAndNews(t *testing.T) {
	c := Default()

	seen := map[string]bool{}
	for _, m := range c.Milestones {
		require.NotNil(t, m.Check, "milestone %s has no predicate", m.ID)
		assert.False(t, seen[m.ID], "duplicate milestone %s", m.ID)
		seen[m.ID] = true
	}

	require.NotEmpty(t, c.NewsTemplates)
	for i, tmpl := range c.NewsTemplates {
		item := tmpl(fixedRand{})
		assert.NotEmpty(t, item.Text, "news template %d produced empty text", i)
		assert.NotEmpty(t, item.Tone, "news template %d has no tone", i)
	}
}
