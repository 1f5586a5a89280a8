package store

import (
	"testing"

	"hangar-next/mxops/internal/constants"
)

func submitTestRequest(t *testing.T, s *Store, techID string) string {
	t.Helper()
	req, err := s.SubmitVacationRequest(VacationDraft{
		TechnicianID: techID,
		Type:         constants.RequestVacation,
		StartDate:    testNow.Add(14 * day),
		EndDate:      testNow.Add(21 * day),
		Reason:       "Family trip",
	})
	if err != nil {
		t.Fatalf("SubmitVacationRequest failed: %v", err)
	}
	return req.ID
}

func TestVacationRequestStartsPendingLead(t *testing.T) {
	s, _ := newTestStore()
	techID := mustAddTechnician(t, s, "A. Mechanic")
	id := submitTestRequest(t, s, techID)

	reqs := s.VacationRequests()
	if len(reqs) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(reqs))
	}
	if reqs[0].ID != id || reqs[0].Status != constants.RequestPendingLead {
		t.Errorf("Expected pending_lead, got %+v", reqs[0])
	}
	if reqs[0].TechnicianName != "A. Mechanic" {
		t.Errorf("Expected technician name resolved, got %q", reqs[0].TechnicianName)
	}
	if !reqs[0].ReturnDate.Equal(testNow.Add(22 * day)) {
		t.Errorf("Expected return date defaulted to day after end, got %v", reqs[0].ReturnDate)
	}
}

func TestVacationApprovalChain(t *testing.T) {
	s, _ := newTestStore()
	techID := mustAddTechnician(t, s, "A. Mechanic")
	id := submitTestRequest(t, s, techID)

	req, err := s.DecideVacationRequest(id, Decision{
		Stage: constants.StageLead, ApproverID: "L1", ApproverName: "M. Lead", Approved: true,
	})
	if err != nil {
		t.Fatalf("Lead decision failed: %v", err)
	}
	if req.Status != constants.RequestPendingManager {
		t.Errorf("Expected pending_manager after lead approval, got %s", req.Status)
	}
	if req.ApprovalChain.Lead == nil || !req.ApprovalChain.Lead.Approved {
		t.Errorf("Lead entry not recorded: %+v", req.ApprovalChain)
	}

	req, err = s.DecideVacationRequest(id, Decision{
		Stage: constants.StageManager, ApproverID: "M1", ApproverName: "D. Manager", Approved: true,
	})
	if err != nil {
		t.Fatalf("Manager decision failed: %v", err)
	}
	if req.Status != constants.RequestApproved {
		t.Errorf("Expected approved, got %s", req.Status)
	}
}

func TestVacationManagerBeforeLeadRejected(t *testing.T) {
	s, _ := newTestStore()
	techID := mustAddTechnician(t, s, "A. Mechanic")
	id := submitTestRequest(t, s, techID)

	_, err := s.DecideVacationRequest(id, Decision{
		Stage: constants.StageManager, ApproverID: "M1", Approved: true,
	})
	if !IsInvalidStage(err) {
		t.Errorf("Expected invalid stage error, got %v", err)
	}
}

func TestVacationDenialIsTerminal(t *testing.T) {
	s, _ := newTestStore()
	techID := mustAddTechnician(t, s, "A. Mechanic")
	id := submitTestRequest(t, s, techID)

	req, err := s.DecideVacationRequest(id, Decision{
		Stage: constants.StageLead, ApproverID: "L1", Approved: false, Notes: "Coverage gap",
	})
	if err != nil {
		t.Fatalf("Lead denial failed: %v", err)
	}
	if req.Status != constants.RequestDeniedByLead {
		t.Errorf("Expected denied_by_lead, got %s", req.Status)
	}

	_, err = s.DecideVacationRequest(id, Decision{
		Stage: constants.StageManager, ApproverID: "M1", Approved: true,
	})
	if !IsInvalidStage(err) {
		t.Errorf("Expected invalid stage error after terminal denial, got %v", err)
	}

	// The recorded lead entry survives untouched.
	_, err = s.DecideVacationRequest(id, Decision{
		Stage: constants.StageLead, ApproverID: "L2", Approved: true,
	})
	if !IsInvalidStage(err) {
		t.Errorf("Expected invalid stage error on repeat lead decision, got %v", err)
	}
	final := s.VacationRequests()[0]
	if final.ApprovalChain.Lead.ApproverID != "L1" || final.ApprovalChain.Lead.Notes != "Coverage gap" {
		t.Errorf("Lead entry overwritten: %+v", final.ApprovalChain.Lead)
	}
}

func TestVacationDraftValidation(t *testing.T) {
	s, _ := newTestStore()
	techID := mustAddTechnician(t, s, "A. Mechanic")

	_, err := s.SubmitVacationRequest(VacationDraft{
		TechnicianID: techID,
		Type:         constants.RequestVacation,
		StartDate:    testNow.Add(5 * day),
		EndDate:      testNow.Add(2 * day),
	})
	if !IsValidation(err) {
		t.Errorf("Expected validation error for end before start, got %v", err)
	}

	_, err = s.SubmitVacationRequest(VacationDraft{
		TechnicianID: "TECH-missing",
		Type:         constants.RequestVacation,
		StartDate:    testNow.Add(day),
		EndDate:      testNow.Add(2 * day),
	})
	if !IsNotFound(err) {
		t.Errorf("Expected not found error for unknown technician, got %v", err)
	}

	_, err = s.SubmitVacationRequest(VacationDraft{
		TechnicianID: techID,
		Type:         "Sabbatical",
		StartDate:    testNow.Add(day),
		EndDate:      testNow.Add(2 * day),
	})
	if !IsValidation(err) {
		t.Errorf("Expected validation error for unknown type, got %v", err)
	}
}
