package services

import (
	"context"
	"testing"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/store"
)

func newTestServices(t *testing.T) (*MaintenanceService, *store.Store) {
	t.Helper()
	st := store.New()
	cache := common.NewCacheService(60, 600)
	books := NewBookkeeper(st, cache, nil, nil, nil)
	return NewMaintenanceService(st, books), st
}

func reportTestSquawk(t *testing.T, svc *MaintenanceService) string {
	t.Helper()
	sq, err := svc.CreateSquawk(context.Background(), dtos.CreateSquawkReq{
		AircraftTail: "N123AB",
		ReportedBy:   "J. Pilot",
		Description:  "Hydraulic leak at left main gear",
		ATAChapter:   "29",
		Priority:     "high",
		SquawkType:   "postflight",
		Category:     "mechanical",
	})
	if err != nil {
		t.Fatalf("CreateSquawk failed: %v", err)
	}
	return sq.ID
}

func TestCreateSquawkMapsRequest(t *testing.T) {
	svc, st := newTestServices(t)
	id := reportTestSquawk(t, svc)

	sq, err := st.Squawk(id)
	if err != nil {
		t.Fatalf("Squawk lookup failed: %v", err)
	}
	if sq.Priority != constants.PriorityHigh {
		t.Errorf("Expected priority high, got %s", sq.Priority)
	}
	if sq.Status != constants.SquawkOpen {
		t.Errorf("Expected status open, got %s", sq.Status)
	}
}

func TestCreateSquawkRejectsBadEnum(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.CreateSquawk(context.Background(), dtos.CreateSquawkReq{
		AircraftTail: "N123AB",
		ReportedBy:   "J. Pilot",
		Description:  "Broken latch",
		ATAChapter:   "52",
		Priority:     "urgent",
		SquawkType:   "postflight",
		Category:     "mechanical",
	})
	if !store.IsValidation(err) {
		t.Fatalf("Expected validation error for unknown priority, got %v", err)
	}
}

func TestListDeferralsSortedByExpiry(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	longID := reportTestSquawk(t, svc)
	shortID := reportTestSquawk(t, svc)

	if _, err := svc.CreateDeferral(ctx, longID, dtos.CreateDeferralReq{
		MELReference: "MEL 29-10-01",
		Category:     "D",
		AuthorizedBy: "A. Inspector",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}
	if _, err := svc.CreateDeferral(ctx, shortID, dtos.CreateDeferralReq{
		MELReference: "MEL 29-10-02",
		Category:     "B",
		AuthorizedBy: "A. Inspector",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	views := svc.ListDeferrals()
	if len(views) != 2 {
		t.Fatalf("Expected 2 deferrals, got %d", len(views))
	}
	if views[0].SquawkID != shortID {
		t.Errorf("Expected category B deferral first, got %s", views[0].SquawkID)
	}
	if views[0].AlertStatus == "" {
		t.Error("Expected a derived alert status on the deferral view")
	}
}

func TestPreviewExpiry(t *testing.T) {
	svc, _ := newTestServices(t)

	preview, err := svc.PreviewExpiry("C", 0)
	if err != nil {
		t.Fatalf("PreviewExpiry failed: %v", err)
	}
	if preview.Days != 10 {
		t.Errorf("Expected 10 days for category C, got %d", preview.Days)
	}

	if _, err := svc.PreviewExpiry("E", 0); !store.IsValidation(err) {
		t.Errorf("Expected validation error for unknown category, got %v", err)
	}
}

func TestUpdateSquawkStageThroughService(t *testing.T) {
	svc, st := newTestServices(t)
	id := reportTestSquawk(t, svc)

	stage := "wo-created"
	sq, err := svc.UpdateSquawk(context.Background(), id, dtos.UpdateSquawkReq{
		Stage:     &stage,
		UpdatedBy: "M. Lead",
	})
	if err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}
	if sq.Lifecycle.Current != constants.StageWOCreated {
		t.Errorf("Expected stage wo-created, got %s", sq.Lifecycle.Current)
	}

	stored, _ := st.Squawk(id)
	if len(stored.Lifecycle.History) != 2 {
		t.Errorf("Expected 2 lifecycle events, got %d", len(stored.Lifecycle.History))
	}
}
