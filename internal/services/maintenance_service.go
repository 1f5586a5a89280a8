package services

import (
	"context"
	"sort"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// MaintenanceService fronts the squawk and deferral operations: DTO
// translation on the way in, bookkeeping on the way out. All domain rules
// live in the store.
type MaintenanceService struct {
	store *store.Store
	books *Bookkeeper
}

func NewMaintenanceService(st *store.Store, books *Bookkeeper) *MaintenanceService {
	return &MaintenanceService{
		store: st,
		books: books,
	}
}

func (s *MaintenanceService) ListSquawks() []entities.Squawk {
	return s.store.Squawks()
}

func (s *MaintenanceService) GetSquawk(id string) (entities.Squawk, error) {
	return s.store.Squawk(id)
}

func (s *MaintenanceService) CreateSquawk(ctx context.Context, req dtos.CreateSquawkReq) (entities.Squawk, error) {
	sq, err := s.store.AddSquawk(store.SquawkDraft{
		AircraftID:         req.AircraftID,
		AircraftTail:       req.AircraftTail,
		LogbookPage:        req.LogbookPage,
		ReportedBy:         req.ReportedBy,
		FlightNumber:       req.FlightNumber,
		SquawkType:         constants.SquawkType(req.SquawkType),
		Priority:           constants.Priority(req.Priority),
		ATAChapter:         req.ATAChapter,
		Description:        req.Description,
		PilotAction:        req.PilotAction,
		Category:           constants.SquawkCategory(req.Category),
		RequiresInspection: req.RequiresInspection,
		Attachments:        req.Attachments,
	})
	if err != nil {
		return entities.Squawk{}, err
	}
	s.books.RecordMutation(ctx, "squawk", "create", req.ReportedBy)
	s.books.ArchiveLifecycle(ctx, "squawk", sq.ID, sq.Lifecycle)
	return sq, nil
}

func (s *MaintenanceService) UpdateSquawk(ctx context.Context, id string, req dtos.UpdateSquawkReq) (entities.Squawk, error) {
	upd := store.SquawkUpdate{
		Description:        req.Description,
		PilotAction:        req.PilotAction,
		RequiresInspection: req.RequiresInspection,
		Notes:              req.Notes,
		PartsUsed:          req.PartsUsed,
		Attachments:        req.Attachments,
		StageNotes:         req.StageNotes,
	}
	if req.Priority != nil {
		p := constants.Priority(*req.Priority)
		upd.Priority = &p
	}
	if req.Status != nil {
		st := constants.SquawkStatus(*req.Status)
		upd.Status = &st
	}
	if req.Stage != nil {
		stage := constants.Stage(*req.Stage)
		upd.Stage = &stage
	}

	sq, err := s.store.UpdateSquawk(id, upd, req.UpdatedBy)
	if err != nil {
		return entities.Squawk{}, err
	}
	s.books.RecordMutation(ctx, "squawk", "update", req.UpdatedBy)
	s.books.ArchiveLifecycle(ctx, "squawk", sq.ID, sq.Lifecycle)
	return sq, nil
}

func (s *MaintenanceService) CreateDeferral(ctx context.Context, squawkID string, req dtos.CreateDeferralReq) (entities.Squawk, error) {
	sq, err := s.store.CreateDeferral(squawkID, store.DeferralDraft{
		MELReference:           req.MELReference,
		Category:               constants.MELCategory(req.Category),
		OperationalLimitations: req.OperationalLimitations,
		Conditions:             req.Conditions,
		AuthorizedBy:           req.AuthorizedBy,
		CustomDays:             req.CustomDays,
	})
	if err != nil {
		return entities.Squawk{}, err
	}
	s.books.RecordMutation(ctx, "deferral", "create", req.AuthorizedBy)
	s.books.ArchiveLifecycle(ctx, "squawk", sq.ID, sq.Lifecycle)
	return sq, nil
}

func (s *MaintenanceService) ExtendDeferral(ctx context.Context, squawkID, actor string) (entities.Squawk, error) {
	sq, err := s.store.ExtendDeferral(squawkID, actor)
	if err != nil {
		return entities.Squawk{}, err
	}
	s.books.RecordMutation(ctx, "deferral", "extend", actor)
	s.books.ArchiveLifecycle(ctx, "squawk", sq.ID, sq.Lifecycle)
	return sq, nil
}

func (s *MaintenanceService) ClearDeferral(ctx context.Context, squawkID, actor string) (entities.Squawk, error) {
	sq, err := s.store.ClearDeferral(squawkID, actor)
	if err != nil {
		return entities.Squawk{}, err
	}
	s.books.RecordMutation(ctx, "deferral", "clear", actor)
	s.books.ArchiveLifecycle(ctx, "squawk", sq.ID, sq.Lifecycle)
	return sq, nil
}

// ListDeferrals returns the active deferrals decorated with the remaining
// time arithmetic, soonest expiry first.
func (s *MaintenanceService) ListDeferrals() []dtos.DeferralView {
	now := time.Now().UTC()
	views := []dtos.DeferralView{}
	for _, sq := range s.store.Squawks() {
		if sq.Deferral == nil {
			continue
		}
		days := store.DaysRemaining(sq.Deferral.ExpiryDate, now)
		views = append(views, dtos.DeferralView{
			SquawkID:      sq.ID,
			AircraftTail:  sq.AircraftTail,
			MELReference:  sq.Deferral.MELReference,
			Category:      string(sq.Deferral.Category),
			ExpiryDate:    sq.Deferral.ExpiryDate,
			DaysRemaining: days,
			AlertStatus:   string(store.DeferralAlertStatus(days)),
			AuthorizedBy:  sq.Deferral.AuthorizedBy,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].ExpiryDate.Before(views[j].ExpiryDate)
	})
	return views
}

// PreviewExpiry answers what a new deferral of the given category would
// expire, without creating anything.
func (s *MaintenanceService) PreviewExpiry(category string, customDays int) (dtos.ExpiryPreview, error) {
	cat, err := constants.ParseMELCategory(category)
	if err != nil {
		return dtos.ExpiryPreview{}, &store.ValidationError{Field: "category", Reason: err.Error()}
	}
	now := time.Now().UTC()
	expiry, err := store.DeferralExpiry(cat, customDays, now)
	if err != nil {
		return dtos.ExpiryPreview{}, err
	}
	return dtos.ExpiryPreview{
		Category:   string(cat),
		ExpiryDate: expiry,
		Days:       store.DaysRemaining(expiry, now),
	}, nil
}
