package dtos

import "hangar-next/mxops/internal/models/entities"

type CreateSquawkReq struct {
	AircraftID         string   `json:"aircraftId"`
	AircraftTail       string   `json:"aircraftTail"`
	LogbookPage        int      `json:"logbookPage"`
	ReportedBy         string   `json:"reportedBy"`
	FlightNumber       string   `json:"flightNumber"`
	SquawkType         string   `json:"squawkType"`
	Priority           string   `json:"priority"`
	ATAChapter         string   `json:"ataChapter"`
	Description        string   `json:"description"`
	PilotAction        string   `json:"pilotAction"`
	Category           string   `json:"category"`
	RequiresInspection bool     `json:"requiresInspection"`
	Attachments        []string `json:"attachments"`
}

type UpdateSquawkReq struct {
	Priority           *string              `json:"priority"`
	Status             *string              `json:"status"`
	Description        *string              `json:"description"`
	PilotAction        *string              `json:"pilotAction"`
	RequiresInspection *bool                `json:"requiresInspection"`
	Notes              *string              `json:"notes"`
	PartsUsed          *[]entities.PartUsed `json:"partsUsed"`
	Attachments        *[]string            `json:"attachments"`
	Stage              *string              `json:"stage"`
	StageNotes         string               `json:"stageNotes"`
	UpdatedBy          string               `json:"updatedBy"`
}

type CreateDeferralReq struct {
	MELReference           string   `json:"melReference"`
	Category               string   `json:"category"`
	OperationalLimitations []string `json:"operationalLimitations"`
	Conditions             string   `json:"conditions"`
	AuthorizedBy           string   `json:"authorizedBy"`
	CustomDays             int      `json:"customDays"`
}

type DeferralActionReq struct {
	PerformedBy string `json:"performedBy"`
}

type CreateWorkOrderReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Aircraft       string   `json:"aircraft"`
	TailNumber     string   `json:"tailNumber"`
	Priority       string   `json:"priority"`
	Type           string   `json:"type"`
	Category       string   `json:"category"`
	AssignedTo     []string `json:"assignedTo"`
	AssignedShift  string   `json:"assignedShift"`
	EstimatedHours float64  `json:"estimatedHours"`
	DueDate        string   `json:"dueDate"`
	LinkedSquawks  []string `json:"linkedSquawks"`
	CreatedBy      string   `json:"createdBy"`
	Location       string   `json:"location"`
	Notes          string   `json:"notes"`
}

type UpdateWorkOrderReq struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Priority       *string  `json:"priority"`
	Status         *string  `json:"status"`
	Type           *string  `json:"type"`
	Category       *string  `json:"category"`
	EstimatedHours *float64 `json:"estimatedHours"`
	DueDate        *string  `json:"dueDate"`
	Location       *string  `json:"location"`
	Notes          *string  `json:"notes"`
	Stage          *string  `json:"stage"`
	StageNotes     string   `json:"stageNotes"`
	UpdatedBy      string   `json:"updatedBy"`
}

type CreateFromSquawksReq struct {
	SquawkIDs      []string `json:"squawkIds"`
	Title          string   `json:"title"`
	CreatedBy      string   `json:"createdBy"`
	EstimatedHours float64  `json:"estimatedHours"`
	DueDate        string   `json:"dueDate"`
}

type AssignTechnicianReq struct {
	TechnicianID string `json:"technicianId"`
	AssignedBy   string `json:"assignedBy"`
}

type CreateTechnicianReq struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Email  string   `json:"email"`
	Status string   `json:"status"`
	Skills []string `json:"skills"`
	Shift  string   `json:"shift"`
}

type UpdateTechnicianReq struct {
	Name   *string   `json:"name"`
	Role   *string   `json:"role"`
	Email  *string   `json:"email"`
	Status *string   `json:"status"`
	Skills *[]string `json:"skills"`
	Shift  *string   `json:"shift"`
}

type CreateVacationReq struct {
	TechnicianID string `json:"technicianId"`
	Type         string `json:"type"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	ReturnDate   string `json:"returnDate"`
	Reason       string `json:"reason"`
}

type VacationDecisionReq struct {
	Stage        string `json:"stage"`
	Approved     bool   `json:"approved"`
	ApproverID   string `json:"approverId"`
	ApproverName string `json:"approverName"`
	Notes        string `json:"notes"`
}

type MarkAlertReadReq struct {
	Read bool `json:"read"`
}
