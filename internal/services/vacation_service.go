package services

import (
	"context"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// VacationService fronts the two-stage leave approval workflow.
type VacationService struct {
	store *store.Store
	books *Bookkeeper
}

func NewVacationService(st *store.Store, books *Bookkeeper) *VacationService {
	return &VacationService{
		store: st,
		books: books,
	}
}

func (s *VacationService) ListRequests() []entities.VacationRequest {
	return s.store.VacationRequests()
}

func (s *VacationService) SubmitRequest(ctx context.Context, req dtos.CreateVacationReq) (entities.VacationRequest, error) {
	draft := store.VacationDraft{
		TechnicianID: req.TechnicianID,
		Type:         constants.RequestType(req.Type),
		Reason:       req.Reason,
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return entities.VacationRequest{}, &store.ValidationError{Field: "startDate", Reason: "invalid date format"}
		}
		draft.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return entities.VacationRequest{}, &store.ValidationError{Field: "endDate", Reason: "invalid date format"}
		}
		draft.EndDate = end
	}
	if req.ReturnDate != "" {
		ret, err := parseDate(req.ReturnDate)
		if err != nil {
			return entities.VacationRequest{}, &store.ValidationError{Field: "returnDate", Reason: "invalid date format"}
		}
		draft.ReturnDate = ret
	}

	vr, err := s.store.SubmitVacationRequest(draft)
	if err != nil {
		return entities.VacationRequest{}, err
	}
	s.books.RecordMutation(ctx, "vacation_request", "submit", req.TechnicianID)
	return vr, nil
}

func (s *VacationService) Decide(ctx context.Context, id string, req dtos.VacationDecisionReq) (entities.VacationRequest, error) {
	vr, err := s.store.DecideVacationRequest(id, store.Decision{
		Stage:        constants.ApprovalStage(req.Stage),
		ApproverID:   req.ApproverID,
		ApproverName: req.ApproverName,
		Approved:     req.Approved,
		Notes:        req.Notes,
	})
	if err != nil {
		return entities.VacationRequest{}, err
	}
	s.books.RecordMutation(ctx, "vacation_request", "decide", req.ApproverID)
	return vr, nil
}
