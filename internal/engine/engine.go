// Package engine implements the game core: behavior execution, the monthly
// settlement pipeline, the recurring-item lifecycle and the derived-state
// calculators. It owns exactly one PlayerState and mutates it synchronously;
// every public operation runs to completion before the next begins.
package engine

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/yhlin/american-dream/internal/catalog"
)

// Engine owns one run. Construct with New, hand it to the presentation layer
// by pointer, and replace its state only through Reset.
type Engine struct {
	cat        *catalog.Catalog
	state      *PlayerState
	seed       RunSeed
	roll       Roller
	difficulty Difficulty
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCatalog swaps the default data tables, mostly for tests and mods.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.cat = c }
}

// WithRoller replaces the free-running random source used for outcome, event,
// disease and loss rolls. Tests inject a seeded one here.
func WithRoller(r Roller) Option {
	return func(e *Engine) { e.roll = r }
}

// WithDifficulty selects the starting stat preset.
func WithDifficulty(d Difficulty) Option {
	return func(e *Engine) { e.difficulty = d }
}

// New builds an engine with a fresh PlayerState. seedText feeds only the
// deterministic per-round visibility stream; all other rolls are free-running.
func New(seedText string, opts ...Option) (*Engine, error) {
	seed, err := NewRunSeed(seedText)
	if err != nil {
		return nil, errors.Wrap(err, "engine: bad run seed")
	}
	e := &Engine{
		cat:        catalog.Default(),
		seed:       seed,
		roll:       rand.New(rand.NewSource(time.Now().UnixNano())),
		difficulty: DifficultyNormal,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = NewPlayerState(e.difficulty)
	return e, nil
}

// State exposes the mutable aggregate. The caller must treat each public
// engine call as atomic and not mutate through this pointer mid-operation.
func (e *Engine) State() *PlayerState { return e.state }

// Catalog returns the data tables the engine interprets.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Seed returns the run seed backing the deterministic visibility stream.
func (e *Engine) Seed() RunSeed { return e.seed }

// Reset replaces the state wholesale with fresh defaults, the only recovery
// path from a terminal screen.
func (e *Engine) Reset() {
	e.state = NewPlayerState(e.difficulty)
}

// Feed returns the capped recent log.
func (e *Engine) Feed() []FeedEntry { return e.state.Feed }

// CurrentClassInfo resolves the display record for the current class level.
func (e *Engine) CurrentClassInfo() ClassInfo { return ClassInfoFor(e.state.ClassLevel) }

// CurrentNetWorth recomputes net worth from the live state.
func (e *Engine) CurrentNetWorth() int { return NetWorth(e.state) }

// checkTermination runs the kill-line check and finalizes death state if
// triggered. Health is checked before SAN so a simultaneous zero resolves to
// a health death.
func (e *Engine) checkTermination() bool {
	if e.state.Death.Active {
		return true
	}
	if e.state.Attributes.Health <= 0 {
		e.state.Death = DeathState{
			Active: true,
			Type:   DeathHealth,
			Reason: "Your body finally went on strike. All those years of borrowed health came to collect at once.",
		}
		return true
	}
	if e.state.Attributes.San <= 0 {
		e.state.Death = DeathState{
			Active: true,
			Type:   DeathSanity,
			Reason: "Something snapped. You can no longer tell the dream from the street.",
		}
		return true
	}
	return false
}

// SwitchHousing moves the player to a housing tier and updates the SAN cap.
func (e *Engine) SwitchHousing(level string) error {
	tier, ok := e.cat.HousingTier(level)
	if !ok {
		return errors.Errorf("engine: unknown housing tier %q", level)
	}
	e.state.HousingLevel = level
	e.state.MaxSan = tier.SanMax
	if e.state.Attributes.San > e.state.MaxSan {
		e.state.Attributes.San = e.state.MaxSan
	}
	e.state.PushFeed("Moved to: "+tier.Name, FeedLog)
	return nil
}

// SwitchDiet changes the diet tier taking effect from the next settlement.
func (e *Engine) SwitchDiet(level string) error {
	if _, ok := e.cat.DietTier(level); !ok {
		return errors.Errorf("engine: unknown diet tier %q", level)
	}
	e.state.DietLevel = level
	return nil
}

// DismissMilestone pops the oldest pending milestone off the display queue.
func (e *Engine) DismissMilestone() {
	if len(e.state.PendingMilestones) > 0 {
		e.state.PendingMilestones = e.state.PendingMilestones[1:]
	}
}

// DismissRandomEvent clears the staged random event.
func (e *Engine) DismissRandomEvent() {
	e.state.PendingRandomEvent = nil
}
