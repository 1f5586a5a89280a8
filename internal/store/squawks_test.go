package store

import (
	"testing"

	"hangar-next/mxops/internal/constants"
)

func TestAddSquawkValidation(t *testing.T) {
	s, _ := newTestStore()

	cases := []struct {
		name  string
		draft SquawkDraft
	}{
		{"missing tail", SquawkDraft{ReportedBy: "J. Pilot", Description: "x", ATAChapter: "32",
			Priority: constants.PriorityLow, SquawkType: constants.SquawkGround, Category: constants.CategoryMechanical}},
		{"missing description", SquawkDraft{AircraftTail: "N123AB", ReportedBy: "J. Pilot", ATAChapter: "32",
			Priority: constants.PriorityLow, SquawkType: constants.SquawkGround, Category: constants.CategoryMechanical}},
		{"unknown priority", SquawkDraft{AircraftTail: "N123AB", ReportedBy: "J. Pilot", Description: "x", ATAChapter: "32",
			Priority: "urgent", SquawkType: constants.SquawkGround, Category: constants.CategoryMechanical}},
		{"unknown category", SquawkDraft{AircraftTail: "N123AB", ReportedBy: "J. Pilot", Description: "x", ATAChapter: "32",
			Priority: constants.PriorityLow, SquawkType: constants.SquawkGround, Category: "engine"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.AddSquawk(tc.draft); !IsValidation(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
	if len(s.Squawks()) != 0 {
		t.Errorf("Expected no squawks stored after rejected drafts, got %d", len(s.Squawks()))
	}
}

func TestAddSquawkInitialState(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{FlightNumber: "HX204", LogbookPage: 17})

	sq, err := s.Squawk(id)
	if err != nil {
		t.Fatalf("Squawk failed: %v", err)
	}
	if sq.Status != constants.SquawkOpen {
		t.Errorf("Expected status open, got %s", sq.Status)
	}
	if sq.Lifecycle.Current != constants.StageReported {
		t.Errorf("Expected stage reported, got %s", sq.Lifecycle.Current)
	}
	if !sq.ReportedAt.Equal(testNow) {
		t.Errorf("Expected reportedAt %v, got %v", testNow, sq.ReportedAt)
	}
	if sq.FlightNumber != "HX204" || sq.LogbookPage != 17 {
		t.Errorf("Draft extras not carried: %+v", sq)
	}
}

func TestUpdateSquawkCloseRequiresActor(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	_, err := s.UpdateSquawk(id, SquawkUpdate{Status: statusPtr(constants.SquawkClosed)}, "")
	if !IsValidation(err) {
		t.Fatalf("Expected validation error without actor, got %v", err)
	}

	sq, err := s.UpdateSquawk(id, SquawkUpdate{Status: statusPtr(constants.SquawkClosed)}, "A. Mechanic")
	if err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}
	if sq.Status != constants.SquawkClosed || sq.ClosedBy != "A. Mechanic" || sq.ClosedAt == nil {
		t.Errorf("Closure fields not stamped: %+v", sq)
	}
	if sq.Lifecycle.Current != constants.StageCompleted {
		t.Errorf("Expected terminal stage, got %s", sq.Lifecycle.Current)
	}
}

func TestUpdateSquawkClosedIsImmutable(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})
	if _, err := s.UpdateSquawk(id, SquawkUpdate{Status: statusPtr(constants.SquawkClosed)}, "A. Mechanic"); err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}

	_, err := s.UpdateSquawk(id, SquawkUpdate{Description: strPtr("still leaking")}, "A. Mechanic")
	if !IsValidation(err) {
		t.Errorf("Expected validation error editing a closed squawk, got %v", err)
	}
}

func TestUpdateSquawkDeferredStatusRejected(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	_, err := s.UpdateSquawk(id, SquawkUpdate{Status: statusPtr(constants.SquawkDeferred)}, "M. Lead")
	if !IsValidation(err) {
		t.Errorf("Expected validation error setting deferred directly, got %v", err)
	}
}

func TestUpdateSquawkCloseBlockedByActiveDeferral(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})
	if _, err := s.CreateDeferral(id, DeferralDraft{
		MELReference: "MEL 32-41-01",
		Category:     constants.MELCategoryB,
		AuthorizedBy: "M. Lead",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	_, err := s.UpdateSquawk(id, SquawkUpdate{Status: statusPtr(constants.SquawkClosed)}, "A. Mechanic")
	if !IsValidation(err) {
		t.Errorf("Expected validation error closing a deferred squawk directly, got %v", err)
	}
}

func TestUpdateSquawkPartialLeavesOtherFields(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{PilotAction: "Pulled breaker"})

	prio := constants.PriorityHigh
	sq, err := s.UpdateSquawk(id, SquawkUpdate{Priority: &prio}, "A. Mechanic")
	if err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}
	if sq.Priority != constants.PriorityHigh {
		t.Errorf("Expected priority high, got %s", sq.Priority)
	}
	if sq.PilotAction != "Pulled breaker" {
		t.Errorf("Untouched field changed: %q", sq.PilotAction)
	}
}

func TestUpdateSquawkNotFound(t *testing.T) {
	s, _ := newTestStore()
	if _, err := s.UpdateSquawk("SQ-missing", SquawkUpdate{}, "A. Mechanic"); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestUpdateSquawkRejectsDeferredStage(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	stage := constants.StageDeferred
	if _, err := s.UpdateSquawk(id, SquawkUpdate{Stage: &stage}, "A. Mechanic"); !IsValidation(err) {
		t.Fatalf("Expected validation error for deferred stage, got %v", err)
	}

	sq, _ := s.Squawk(id)
	if sq.Lifecycle.Current != constants.StageReported {
		t.Errorf("Expected stage unchanged, got %s", sq.Lifecycle.Current)
	}
	if sq.Status != constants.SquawkOpen {
		t.Errorf("Expected status open, got %s", sq.Status)
	}
}
