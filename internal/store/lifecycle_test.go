package store

import (
	"errors"
	"testing"
	"time"

	"hangar-next/mxops/internal/constants"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from constants.Stage
		to   constants.Stage
		want bool
	}{
		{"forward one step", constants.StageReported, constants.StageWOCreated, true},
		{"forward skipping stages", constants.StageReported, constants.StageCompleted, true},
		{"backward rejected", constants.StageInProgress, constants.StageAssigned, false},
		{"same stage rejected", constants.StageAssigned, constants.StageAssigned, false},
		{"into deferred from open stage", constants.StageInProgress, constants.StageDeferred, true},
		{"into deferred from completed rejected", constants.StageCompleted, constants.StageDeferred, false},
		{"out of deferred to completed", constants.StageDeferred, constants.StageCompleted, true},
		{"out of deferred to early stage", constants.StageDeferred, constants.StageAssigned, true},
		{"unknown stage rejected", constants.StageReported, constants.Stage("bogus"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestAdvanceLifecycleAppendsHistory(t *testing.T) {
	ls := newLifecycle(constants.StageReported, "J. Pilot", testNow)

	ls, err := advanceLifecycle(ls, constants.StageWOCreated, "M. Lead", "WO opened", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("advanceLifecycle failed: %v", err)
	}
	if ls.Current != constants.StageWOCreated {
		t.Errorf("Expected current wo-created, got %s", ls.Current)
	}
	if len(ls.History) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(ls.History))
	}
	if ls.History[0].Stage != constants.StageReported || ls.History[1].Stage != constants.StageWOCreated {
		t.Errorf("History out of order: %+v", ls.History)
	}
	if ls.History[1].PerformedBy != "M. Lead" || ls.History[1].Notes != "WO opened" {
		t.Errorf("History entry missing actor or notes: %+v", ls.History[1])
	}
}

func TestAdvanceLifecycleBackwardRejected(t *testing.T) {
	ls := newLifecycle(constants.StageInProgress, "A. Mechanic", testNow)

	_, err := advanceLifecycle(ls, constants.StageReported, "A. Mechanic", "", testNow)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("Expected InvalidTransitionError, got %v", err)
	}
	if ite.From != constants.StageInProgress || ite.To != constants.StageReported {
		t.Errorf("Error carries wrong stages: %+v", ite)
	}
}

func TestSquawkStageUpdateThroughStore(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	stage := constants.StageInProgress
	sq, err := s.UpdateSquawk(id, SquawkUpdate{Stage: &stage, StageNotes: "started troubleshooting"}, "A. Mechanic")
	if err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}
	if sq.Lifecycle.Current != constants.StageInProgress {
		t.Errorf("Expected stage in-progress, got %s", sq.Lifecycle.Current)
	}

	back := constants.StageReported
	_, err = s.UpdateSquawk(id, SquawkUpdate{Stage: &back}, "A. Mechanic")
	if !IsInvalidTransition(err) {
		t.Fatalf("Expected invalid transition error, got %v", err)
	}
}
