package store

import (
	"testing"
	"time"

	"hangar-next/mxops/internal/constants"
)

func TestCategoryDurations(t *testing.T) {
	cases := []struct {
		category constants.MELCategory
		want     time.Duration
	}{
		{constants.MELCategoryA, 1 * day},
		{constants.MELCategoryB, 3 * day},
		{constants.MELCategoryC, 10 * day},
		{constants.MELCategoryD, 120 * day},
	}
	for _, tc := range cases {
		got, err := CategoryDuration(tc.category)
		if err != nil {
			t.Fatalf("CategoryDuration(%s) failed: %v", tc.category, err)
		}
		if got != tc.want {
			t.Errorf("CategoryDuration(%s) = %v, want %v", tc.category, got, tc.want)
		}
	}
	if _, err := CategoryDuration("E"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestCreateDeferralComputesExpiry(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	sq, err := s.CreateDeferral(id, DeferralDraft{
		MELReference:           "MEL 32-41-01",
		Category:               constants.MELCategoryC,
		AuthorizedBy:           "M. Lead",
		OperationalLimitations: []string{"No RVSM operations"},
	})
	if err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	if sq.Status != constants.SquawkDeferred {
		t.Errorf("Expected status deferred, got %s", sq.Status)
	}
	if sq.Lifecycle.Current != constants.StageDeferred {
		t.Errorf("Expected stage deferred, got %s", sq.Lifecycle.Current)
	}
	wantExpiry := testNow.Add(10 * day)
	if !sq.Deferral.ExpiryDate.Equal(wantExpiry) {
		t.Errorf("Expected expiry %v, got %v", wantExpiry, sq.Deferral.ExpiryDate)
	}
}

func TestExtendDeferralFromExistingExpiry(t *testing.T) {
	s, clock := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	if _, err := s.CreateDeferral(id, DeferralDraft{
		MELReference: "MEL 32-41-01",
		Category:     constants.MELCategoryC,
		AuthorizedBy: "M. Lead",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	// The wall clock moving does not change the cadence: extension is
	// anchored on the prior expiry, not on now.
	clock.Advance(4 * day)

	sq, err := s.ExtendDeferral(id, "M. Lead")
	if err != nil {
		t.Fatalf("ExtendDeferral failed: %v", err)
	}
	wantExpiry := testNow.Add(20 * day)
	if !sq.Deferral.ExpiryDate.Equal(wantExpiry) {
		t.Errorf("Expected expiry %v, got %v", wantExpiry, sq.Deferral.ExpiryDate)
	}
}

func TestClearDeferralClosesSquawk(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	if _, err := s.CreateDeferral(id, DeferralDraft{
		MELReference: "MEL 32-41-01",
		Category:     constants.MELCategoryB,
		AuthorizedBy: "M. Lead",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	sq, err := s.ClearDeferral(id, "A. Mechanic")
	if err != nil {
		t.Fatalf("ClearDeferral failed: %v", err)
	}
	if sq.Status != constants.SquawkClosed {
		t.Errorf("Expected status closed, got %s", sq.Status)
	}
	if sq.Deferral != nil {
		t.Error("Expected deferral record removed")
	}
	if sq.ClosedBy != "A. Mechanic" || sq.ClosedAt == nil {
		t.Errorf("Expected closure fields stamped, got closedBy=%q closedAt=%v", sq.ClosedBy, sq.ClosedAt)
	}
	if sq.Lifecycle.Current != constants.StageCompleted {
		t.Errorf("Expected stage completed, got %s", sq.Lifecycle.Current)
	}
}

func TestCreateDeferralRejections(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	valid := DeferralDraft{MELReference: "MEL 32-41-01", Category: constants.MELCategoryB, AuthorizedBy: "M. Lead"}

	if _, err := s.CreateDeferral(id, DeferralDraft{Category: constants.MELCategoryB, AuthorizedBy: "M. Lead"}); !IsValidation(err) {
		t.Errorf("Expected validation error for missing MEL reference, got %v", err)
	}
	if _, err := s.CreateDeferral("SQ-missing", valid); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}

	if _, err := s.CreateDeferral(id, valid); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}
	if _, err := s.CreateDeferral(id, valid); !IsValidation(err) {
		t.Errorf("Expected validation error for double deferral, got %v", err)
	}

	if _, err := s.ClearDeferral(id, "A. Mechanic"); err != nil {
		t.Fatalf("ClearDeferral failed: %v", err)
	}
	if _, err := s.CreateDeferral(id, valid); !IsValidation(err) {
		t.Errorf("Expected validation error for deferring a closed squawk, got %v", err)
	}
}

func TestCustomDaysOnlyForCategoryA(t *testing.T) {
	s, _ := newTestStore()

	aID := mustAddSquawk(t, s, SquawkDraft{})
	sq, err := s.CreateDeferral(aID, DeferralDraft{
		MELReference: "MEL 25-10-02",
		Category:     constants.MELCategoryA,
		AuthorizedBy: "M. Lead",
		CustomDays:   5,
	})
	if err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}
	if want := testNow.Add(5 * day); !sq.Deferral.ExpiryDate.Equal(want) {
		t.Errorf("Expected custom expiry %v, got %v", want, sq.Deferral.ExpiryDate)
	}

	bID := mustAddSquawk(t, s, SquawkDraft{AircraftTail: "N456CD"})
	_, err = s.CreateDeferral(bID, DeferralDraft{
		MELReference: "MEL 25-10-02",
		Category:     constants.MELCategoryB,
		AuthorizedBy: "M. Lead",
		CustomDays:   5,
	})
	if !IsValidation(err) {
		t.Errorf("Expected validation error for custom days outside category A, got %v", err)
	}
}

func TestDaysRemaining(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"two and a half days out rounds up", testNow.Add(60 * time.Hour), 3},
		{"exactly one day", testNow.Add(24 * time.Hour), 1},
		{"an hour past expiry", testNow.Add(-time.Hour), 0},
		{"a day past expiry", testNow.Add(-25 * time.Hour), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysRemaining(tc.expiry, testNow); got != tc.want {
				t.Errorf("DaysRemaining = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDeferralAlertStatusBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want constants.AlertLevel
	}{
		{-1, constants.AlertLevelExpired},
		{0, constants.AlertLevelCritical},
		{2, constants.AlertLevelCritical},
		{3, constants.AlertLevelWarning},
		{5, constants.AlertLevelWarning},
		{6, constants.AlertLevelOK},
	}
	for _, tc := range cases {
		if got := DeferralAlertStatus(tc.days); got != tc.want {
			t.Errorf("DeferralAlertStatus(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestExtendDeferralAppendsNotes(t *testing.T) {
	s, _ := newTestStore()
	id := mustAddSquawk(t, s, SquawkDraft{})

	if _, err := s.UpdateSquawk(id, SquawkUpdate{Notes: strPtr("Part on order")}, "A. Mechanic"); err != nil {
		t.Fatalf("UpdateSquawk failed: %v", err)
	}
	if _, err := s.CreateDeferral(id, DeferralDraft{
		MELReference: "MEL 32-41-01",
		Category:     constants.MELCategoryB,
		AuthorizedBy: "M. Lead",
	}); err != nil {
		t.Fatalf("CreateDeferral failed: %v", err)
	}

	sq, err := s.ExtendDeferral(id, "M. Lead")
	if err != nil {
		t.Fatalf("ExtendDeferral failed: %v", err)
	}
	if sq.Notes != "Part on order\nDeferral extended by 3 days" {
		t.Errorf("Expected extension note appended, got %q", sq.Notes)
	}
}
