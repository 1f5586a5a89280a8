package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// ApprovalEntry is one immutable stage decision. Once recorded it is never
// overwritten.
type ApprovalEntry struct {
	ApproverID   string    `json:"approverId"`
	ApproverName string    `json:"approverName"`
	Approved     bool      `json:"approved"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ApprovalChain holds the lead and manager decisions. Manager can only be
// present after the lead approved.
type ApprovalChain struct {
	Lead    *ApprovalEntry `json:"lead,omitempty"`
	Manager *ApprovalEntry `json:"manager,omitempty"`
}

// VacationRequest drives the two-stage time-off approval workflow.
type VacationRequest struct {
	ID             string                  `json:"id"`
	TechnicianID   string                  `json:"technicianId"`
	TechnicianName string                  `json:"technicianName"`
	Type           constants.RequestType   `json:"type"`
	StartDate      time.Time               `json:"startDate"`
	EndDate        time.Time               `json:"endDate"`
	ReturnDate     time.Time               `json:"returnDate"`
	Reason         string                  `json:"reason"`
	Status         constants.RequestStatus `json:"status"`
	ApprovalChain  ApprovalChain           `json:"approvalChain"`
	SubmittedAt    time.Time               `json:"submittedAt"`
}

// Clone returns a deep copy of the request.
func (v VacationRequest) Clone() VacationRequest {
	out := v
	if v.ApprovalChain.Lead != nil {
		e := *v.ApprovalChain.Lead
		out.ApprovalChain.Lead = &e
	}
	if v.ApprovalChain.Manager != nil {
		e := *v.ApprovalChain.Manager
		out.ApprovalChain.Manager = &e
	}
	return out
}

// Terminal reports whether the request accepts further decisions.
func (v VacationRequest) Terminal() bool {
	switch v.Status {
	case constants.RequestApproved, constants.RequestDeniedByLead, constants.RequestDeniedByManager:
		return true
	}
	return false
}
