package services

import (
	"context"
	"testing"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/store"
)

func newAlertFixture(t *testing.T) (*AlertService, *MaintenanceService) {
	t.Helper()
	st := store.New()
	cache := common.NewCacheService(60, 600)
	books := NewBookkeeper(st, cache, nil, nil, nil)
	return NewAlertService(st, books), NewMaintenanceService(st, books)
}

func TestAlertReadMarkers(t *testing.T) {
	alerts, maint := newAlertFixture(t)
	ctx := context.Background()

	// A critical squawk produces an alert immediately.
	_, err := maint.CreateSquawk(ctx, dtos.CreateSquawkReq{
		AircraftTail: "N123AB",
		ReportedBy:   "J. Pilot",
		Description:  "Engine fire warning on shutdown",
		ATAChapter:   "26",
		Priority:     "critical",
		SquawkType:   "postflight",
		Category:     "mechanical",
	})
	if err != nil {
		t.Fatalf("CreateSquawk failed: %v", err)
	}

	views := alerts.ListAlerts()
	if len(views) != 1 {
		t.Fatalf("Expected 1 alert, got %d", len(views))
	}
	if views[0].Read {
		t.Error("Expected a fresh alert to be unread")
	}

	alertID := views[0].ID
	if err := alerts.MarkRead(ctx, alertID, true); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	views = alerts.ListAlerts()
	if !views[0].Read {
		t.Error("Expected alert to be marked read")
	}

	// Marker survives a regeneration triggered by an unrelated mutation.
	if _, err := maint.CreateSquawk(ctx, dtos.CreateSquawkReq{
		AircraftTail: "N456CD",
		ReportedBy:   "J. Pilot",
		Description:  "Cabin light inop",
		ATAChapter:   "33",
		Priority:     "low",
		SquawkType:   "ground",
		Category:     "cabin",
	}); err != nil {
		t.Fatalf("CreateSquawk failed: %v", err)
	}
	for _, v := range alerts.ListAlerts() {
		if v.ID == alertID && !v.Read {
			t.Error("Expected read marker to survive alert regeneration")
		}
	}

	// Unmark puts it back.
	if err := alerts.MarkRead(ctx, alertID, false); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	for _, v := range alerts.ListAlerts() {
		if v.ID == alertID && v.Read {
			t.Error("Expected alert to be unread after unmarking")
		}
	}
}

func TestMarkReadUnknownAlert(t *testing.T) {
	alerts, _ := newAlertFixture(t)

	err := alerts.MarkRead(context.Background(), "sq-SQ-missing", true)
	if !store.IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
}
