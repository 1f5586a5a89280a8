package store

import (
	"fmt"
	"math"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

const day = 24 * time.Hour

// CategoryDuration returns the maximum deferral duration for a MEL
// category. Category A defaults to one day; an operator-supplied custom
// duration is honored for A only.
func CategoryDuration(category constants.MELCategory) (time.Duration, error) {
	switch category {
	case constants.MELCategoryA:
		return 1 * day, nil
	case constants.MELCategoryB:
		return 3 * day, nil
	case constants.MELCategoryC:
		return 10 * day, nil
	case constants.MELCategoryD:
		return 120 * day, nil
	}
	return 0, fmt.Errorf("unknown MEL category %q", category)
}

// DeferralExpiry previews the expiry a deferral created at from would get.
// customDays is only valid for category A; pass 0 for the table value.
func DeferralExpiry(category constants.MELCategory, customDays int, from time.Time) (time.Time, error) {
	if customDays != 0 && category != constants.MELCategoryA {
		return time.Time{}, &ValidationError{Field: "customDays", Reason: "custom duration only permitted for category A"}
	}
	if customDays < 0 {
		return time.Time{}, &ValidationError{Field: "customDays", Reason: "must be positive"}
	}
	if customDays > 0 {
		return from.Add(time.Duration(customDays) * day), nil
	}
	dur, err := CategoryDuration(category)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "category", Reason: err.Error()}
	}
	return from.Add(dur), nil
}

// DaysRemaining is the shared expiry arithmetic: ceil((expiry - now) / 1d).
func DaysRemaining(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// DeferralAlertStatus is the single threshold source shared by the deferral
// engine, the availability aggregator and the alert generator.
func DeferralAlertStatus(daysRemaining int) constants.AlertLevel {
	switch {
	case daysRemaining < 0:
		return constants.AlertLevelExpired
	case daysRemaining <= 2:
		return constants.AlertLevelCritical
	case daysRemaining <= 5:
		return constants.AlertLevelWarning
	}
	return constants.AlertLevelOK
}

// DeferralDraft carries the inputs for a new MEL/CDL deferral.
type DeferralDraft struct {
	MELReference           string
	Category               constants.MELCategory
	OperationalLimitations []string
	Conditions             string
	AuthorizedBy           string
	CustomDays             int
}

// CreateDeferral defers an open squawk under a MEL/CDL reference. The
// expiry is computed from the category table at creation time, the squawk
// moves to deferred and the lifecycle records the branch.
func (s *Store) CreateDeferral(squawkID string, draft DeferralDraft) (entities.Squawk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findSquawk(squawkID)
	if !ok {
		return entities.Squawk{}, &NotFoundError{Entity: "squawk", ID: squawkID}
	}
	if draft.MELReference == "" {
		return entities.Squawk{}, &ValidationError{Field: "melReference", Reason: "required"}
	}
	if draft.AuthorizedBy == "" {
		return entities.Squawk{}, &ValidationError{Field: "authorizedBy", Reason: "required"}
	}
	cur := s.squawks[i]
	if cur.Status == constants.SquawkClosed {
		return entities.Squawk{}, &ValidationError{Field: "status", Reason: "cannot defer a closed squawk"}
	}
	if cur.Deferral != nil {
		return entities.Squawk{}, &ValidationError{Field: "deferral", Reason: "squawk already has an active deferral"}
	}

	now := s.now()
	expiry, err := DeferralExpiry(draft.Category, draft.CustomDays, now)
	if err != nil {
		return entities.Squawk{}, err
	}

	next := cur.Clone()
	next.Lifecycle, err = advanceLifecycle(next.Lifecycle, constants.StageDeferred, draft.AuthorizedBy,
		fmt.Sprintf("%s applied, category %s", draft.MELReference, draft.Category), now)
	if err != nil {
		return entities.Squawk{}, err
	}
	next.Status = constants.SquawkDeferred
	next.Deferral = &entities.Deferral{
		MELReference:           draft.MELReference,
		Category:               draft.Category,
		CreatedAt:              now,
		ExpiryDate:             expiry,
		AuthorizedBy:           draft.AuthorizedBy,
		Conditions:             draft.Conditions,
		OperationalLimitations: append([]string(nil), draft.OperationalLimitations...),
	}

	s.commitSquawk(i, next)
	return next.Clone(), nil
}

// ExtendDeferral pushes the expiry forward by the category duration,
// counted from the existing expiry rather than from now, preserving the
// category's cadence.
func (s *Store) ExtendDeferral(squawkID, actor string) (entities.Squawk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findSquawk(squawkID)
	if !ok {
		return entities.Squawk{}, &NotFoundError{Entity: "squawk", ID: squawkID}
	}
	cur := s.squawks[i]
	if cur.Deferral == nil {
		return entities.Squawk{}, &ValidationError{Field: "deferral", Reason: "squawk has no active deferral"}
	}

	dur, err := CategoryDuration(cur.Deferral.Category)
	if err != nil {
		panic(fmt.Sprintf("invariant broken: stored deferral with unknown category %q", cur.Deferral.Category))
	}

	next := cur.Clone()
	next.Deferral.ExpiryDate = next.Deferral.ExpiryDate.Add(dur)
	note := fmt.Sprintf("Deferral extended by %d days", int(dur/day))
	if next.Notes != "" {
		note = next.Notes + "\n" + note
	}
	next.Notes = note

	s.commitSquawk(i, next)
	return next.Clone(), nil
}

// ClearDeferral resolves a deferred squawk: the discrepancy is repaired,
// the squawk closes and the live deferral record is dropped. The category
// and expiry survive only in lifecycle history.
func (s *Store) ClearDeferral(squawkID, clearedBy string) (entities.Squawk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findSquawk(squawkID)
	if !ok {
		return entities.Squawk{}, &NotFoundError{Entity: "squawk", ID: squawkID}
	}
	if clearedBy == "" {
		return entities.Squawk{}, &ValidationError{Field: "clearedBy", Reason: "required"}
	}
	cur := s.squawks[i]
	if cur.Deferral == nil {
		return entities.Squawk{}, &ValidationError{Field: "deferral", Reason: "squawk has no active deferral"}
	}

	now := s.now()
	next := cur.Clone()
	var err error
	next.Lifecycle, err = advanceLifecycle(next.Lifecycle, constants.StageCompleted, clearedBy, "Deferral cleared", now)
	if err != nil {
		return entities.Squawk{}, err
	}
	next.Status = constants.SquawkClosed
	next.Deferral = nil
	next.ClosedBy = clearedBy
	next.ClosedAt = &now

	s.commitSquawk(i, next)
	return next.Clone(), nil
}
