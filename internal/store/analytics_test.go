package store

import (
	"math"
	"testing"
	"time"

	"hangar-next/mxops/internal/constants"
)

func completeAfter(t *testing.T, s *Store, clock *testClock, woID string, d time.Duration) {
	t.Helper()
	if _, err := s.UpdateWorkOrder(woID, WorkOrderUpdate{Status: woStatusPtr(constants.WorkOrderInProgress)}, "A. Mechanic"); err != nil {
		t.Fatalf("UpdateWorkOrder failed: %v", err)
	}
	clock.Advance(d)
	if _, err := s.UpdateWorkOrder(woID, WorkOrderUpdate{Status: woStatusPtr(constants.WorkOrderCompleted)}, "A. Mechanic"); err != nil {
		t.Fatalf("UpdateWorkOrder failed: %v", err)
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMTTROverallMean(t *testing.T) {
	s, clock := newTestStore()
	first := mustAddWorkOrder(t, s, WorkOrderDraft{})
	second := mustAddWorkOrder(t, s, WorkOrderDraft{TailNumber: "N456CD"})

	completeAfter(t, s, clock, first, 4*time.Hour)
	completeAfter(t, s, clock, second, 10*time.Hour)

	data := s.MTTR()
	if !almostEqual(data.Overall, 7) {
		t.Errorf("Expected overall MTTR 7h, got %v", data.Overall)
	}
	if data.CompletedCount != 2 {
		t.Errorf("Expected 2 completed, got %d", data.CompletedCount)
	}
	if !almostEqual(data.ByAircraft["N123AB"], 4) || !almostEqual(data.ByAircraft["N456CD"], 10) {
		t.Errorf("Per-aircraft means wrong: %v", data.ByAircraft)
	}
}

func TestMTTRByTechnicianFullContribution(t *testing.T) {
	s, clock := newTestStore()
	techA := mustAddTechnician(t, s, "A. Mechanic")
	techB := mustAddTechnician(t, s, "B. Avionics")
	woID := mustAddWorkOrder(t, s, WorkOrderDraft{})
	if _, err := s.AssignTechnicianToJob(techA, woID, "M. Lead"); err != nil {
		t.Fatalf("AssignTechnicianToJob failed: %v", err)
	}
	if _, err := s.AssignTechnicianToJob(techB, woID, "M. Lead"); err != nil {
		t.Fatalf("AssignTechnicianToJob failed: %v", err)
	}

	completeAfter(t, s, clock, woID, 6*time.Hour)

	data := s.MTTR()
	if !almostEqual(data.ByTechnician[techA], 6) || !almostEqual(data.ByTechnician[techB], 6) {
		t.Errorf("Each technician should carry the full duration, got %v", data.ByTechnician)
	}
}

func TestMTTRByCategory(t *testing.T) {
	s, clock := newTestStore()
	minor := mustAddWorkOrder(t, s, WorkOrderDraft{Category: constants.WOCategoryMinor})
	major := mustAddWorkOrder(t, s, WorkOrderDraft{Category: constants.WOCategoryMajor})

	completeAfter(t, s, clock, minor, 2*time.Hour)
	completeAfter(t, s, clock, major, 30*time.Hour)

	data := s.MTTR()
	if !almostEqual(data.ByCategory["minor"], 2) || !almostEqual(data.ByCategory["major"], 30) {
		t.Errorf("Per-category means wrong: %v", data.ByCategory)
	}
}

func TestMTTROnTimeRate(t *testing.T) {
	s, clock := newTestStore()
	onTime := mustAddWorkOrder(t, s, WorkOrderDraft{DueDate: testNow.Add(2 * day)})
	late := mustAddWorkOrder(t, s, WorkOrderDraft{DueDate: testNow.Add(3 * time.Hour)})

	completeAfter(t, s, clock, onTime, time.Hour)
	completeAfter(t, s, clock, late, 12*time.Hour)

	data := s.MTTR()
	if !almostEqual(data.OnTimeRate, 0.5) {
		t.Errorf("Expected on-time rate 0.5, got %v", data.OnTimeRate)
	}
}

func TestMTTRIgnoresIncompleteOrders(t *testing.T) {
	s, _ := newTestStore()
	mustAddWorkOrder(t, s, WorkOrderDraft{})

	data := s.MTTR()
	if data.Overall != 0 || data.CompletedCount != 0 {
		t.Errorf("Open orders must not contribute, got %+v", data)
	}
}

func TestMTTRIdempotent(t *testing.T) {
	s, clock := newTestStore()
	woID := mustAddWorkOrder(t, s, WorkOrderDraft{})
	completeAfter(t, s, clock, woID, 5*time.Hour)

	first := computeMTTR(s.WorkOrders(), clock.Now())
	second := computeMTTR(s.WorkOrders(), clock.Now())
	if !almostEqual(first.Overall, second.Overall) || first.CompletedCount != second.CompletedCount {
		t.Errorf("Recomputation changed results: %v vs %v", first, second)
	}
}
