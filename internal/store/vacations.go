package store

import (
	"fmt"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// VacationDraft carries the caller-supplied fields for a time-off request.
type VacationDraft struct {
	TechnicianID string
	Type         constants.RequestType
	StartDate    time.Time
	EndDate      time.Time
	ReturnDate   time.Time
	Reason       string
}

func (d VacationDraft) validate() error {
	switch {
	case d.TechnicianID == "":
		return &ValidationError{Field: "technicianId", Reason: "required"}
	case d.StartDate.IsZero():
		return &ValidationError{Field: "startDate", Reason: "required"}
	case d.EndDate.IsZero():
		return &ValidationError{Field: "endDate", Reason: "required"}
	case d.EndDate.Before(d.StartDate):
		return &ValidationError{Field: "endDate", Reason: "must not precede startDate"}
	}
	if _, err := constants.ParseRequestType(string(d.Type)); err != nil {
		return &ValidationError{Field: "type", Reason: err.Error()}
	}
	return nil
}

// SubmitVacationRequest files a request at the first approval stage.
func (s *Store) SubmitVacationRequest(draft VacationDraft) (entities.VacationRequest, error) {
	if err := draft.validate(); err != nil {
		return entities.VacationRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ti, ok := s.findTechnician(draft.TechnicianID)
	if !ok {
		return entities.VacationRequest{}, &NotFoundError{Entity: "technician", ID: draft.TechnicianID}
	}

	returnDate := draft.ReturnDate
	if returnDate.IsZero() {
		returnDate = draft.EndDate.Add(day)
	}

	req := entities.VacationRequest{
		ID:             newID("VAC"),
		TechnicianID:   draft.TechnicianID,
		TechnicianName: s.technicians[ti].Name,
		Type:           draft.Type,
		StartDate:      draft.StartDate,
		EndDate:        draft.EndDate,
		ReturnDate:     returnDate,
		Reason:         draft.Reason,
		Status:         constants.RequestPendingLead,
		SubmittedAt:    s.now(),
	}
	s.vacationRequests = append(s.vacationRequests, req)
	return req.Clone(), nil
}

// Decision is one stage ruling on a vacation request.
type Decision struct {
	Stage        constants.ApprovalStage
	ApproverID   string
	ApproverName string
	Approved     bool
	Notes        string
}

// DecideVacationRequest applies a stage decision. Lead rules first; a lead
// approval moves the request to the manager, a manager approval finishes
// it. Any denial is terminal. Deciding at the wrong stage is an
// InvalidStageError, and recorded entries are never overwritten.
func (s *Store) DecideVacationRequest(id string, dec Decision) (entities.VacationRequest, error) {
	if _, err := constants.ParseApprovalStage(string(dec.Stage)); err != nil {
		return entities.VacationRequest{}, &ValidationError{Field: "stage", Reason: err.Error()}
	}
	if dec.ApproverID == "" {
		return entities.VacationRequest{}, &ValidationError{Field: "approverId", Reason: "required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findVacationRequest(id)
	if !ok {
		return entities.VacationRequest{}, &NotFoundError{Entity: "vacation request", ID: id}
	}
	cur := s.vacationRequests[i]
	if cur.Terminal() {
		return entities.VacationRequest{}, &InvalidStageError{Stage: dec.Stage, Status: cur.Status}
	}

	next := cur.Clone()
	entry := &entities.ApprovalEntry{
		ApproverID:   dec.ApproverID,
		ApproverName: dec.ApproverName,
		Approved:     dec.Approved,
		Notes:        dec.Notes,
		Timestamp:    s.now(),
	}

	switch dec.Stage {
	case constants.StageLead:
		if cur.Status != constants.RequestPendingLead {
			return entities.VacationRequest{}, &InvalidStageError{Stage: dec.Stage, Status: cur.Status}
		}
		next.ApprovalChain.Lead = entry
		if dec.Approved {
			next.Status = constants.RequestPendingManager
		} else {
			next.Status = constants.RequestDeniedByLead
		}
	case constants.StageManager:
		if cur.Status != constants.RequestPendingManager {
			return entities.VacationRequest{}, &InvalidStageError{Stage: dec.Stage, Status: cur.Status}
		}
		next.ApprovalChain.Manager = entry
		if dec.Approved {
			next.Status = constants.RequestApproved
		} else {
			next.Status = constants.RequestDeniedByManager
		}
	}
	checkVacationInvariants(next)

	updated := make([]entities.VacationRequest, len(s.vacationRequests))
	copy(updated, s.vacationRequests)
	updated[i] = next
	s.vacationRequests = updated
	return next.Clone(), nil
}

func checkVacationInvariants(v entities.VacationRequest) {
	if v.ApprovalChain.Manager != nil {
		if v.ApprovalChain.Lead == nil || !v.ApprovalChain.Lead.Approved {
			panic(fmt.Sprintf("invariant broken: request %s has manager entry without lead approval", v.ID))
		}
	}
	if v.Status == constants.RequestApproved {
		if v.ApprovalChain.Manager == nil || !v.ApprovalChain.Manager.Approved {
			panic(fmt.Sprintf("invariant broken: approved request %s without manager approval", v.ID))
		}
	}
}
