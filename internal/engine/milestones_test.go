package engine

import (
	"testing"

	"github.com/yhlin/american-dream/internal/catalog"
)

func TestMilestoneFiresOnce(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	s := e.State()
	s.Money = 20000

	e.rollMilestones()
	if !s.AchievedMilestones["rich"] {
		t.Fatal("milestone should be achieved")
	}
	if len(s.PendingMilestones) != 1 || s.PendingMilestones[0] != "rich" {
		t.Fatalf("pending = %v", s.PendingMilestones)
	}

	// Re-rolling never re-queues an achieved milestone.
	e.rollMilestones()
	if len(s.PendingMilestones) != 1 {
		t.Fatalf("pending after re-roll = %v", s.PendingMilestones)
	}

	e.DismissMilestone()
	if len(s.PendingMilestones) != 0 {
		t.Fatal("dismiss should pop the queue")
	}
	e.rollMilestones()
	if len(s.PendingMilestones) != 0 {
		t.Fatal("dismissed milestone must stay dismissed")
	}
}

func TestMilestonePanicCountsAsFalse(t *testing.T) {
	e := newTestEngine(t, &stubRoller{})
	e.cat.Milestones = append(e.cat.Milestones, catalog.Milestone{
		ID:    "broken",
		Check: func(catalog.StatView) bool { panic("bad predicate") },
	})

	e.rollMilestones()
	if e.State().AchievedMilestones["broken"] {
		t.Fatal("panicking predicate must count as false")
	}
}
