package constants

import "fmt"

type (
	Priority       string
	SquawkStatus   string
	SquawkType     string
	SquawkCategory string
	WorkOrderStatus string
	WorkOrderType   string
	WOCategory      string
	Stage          string
	MELCategory    string
	TechRole       string
	TechStatus     string
	Shift          string
	RequestType    string
	RequestStatus  string
	ApprovalStage  string
	AircraftStatus string
	AlertType      string
	AlertLevel     string
	CapacityLevel  string
)

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

const (
	SquawkOpen      SquawkStatus = "open"
	SquawkDeferred  SquawkStatus = "deferred"
	SquawkClosed    SquawkStatus = "closed"
	SquawkDuplicate SquawkStatus = "duplicate"
)

const (
	SquawkPreflight  SquawkType = "preflight"
	SquawkInflight   SquawkType = "inflight"
	SquawkPostflight SquawkType = "postflight"
	SquawkGround     SquawkType = "ground"
)

const (
	CategoryMechanical    SquawkCategory = "mechanical"
	CategoryElectrical    SquawkCategory = "electrical"
	CategoryAvionics      SquawkCategory = "avionics"
	CategoryCabin         SquawkCategory = "cabin"
	CategoryExterior      SquawkCategory = "exterior"
	CategoryDocumentation SquawkCategory = "documentation"
)

const (
	WorkOrderAssigned   WorkOrderStatus = "assigned"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
	WorkOrderOnHold     WorkOrderStatus = "on-hold"
)

const (
	WOScheduled   WorkOrderType = "scheduled"
	WOUnscheduled WorkOrderType = "unscheduled"
	WOAOG         WorkOrderType = "aog"
)

const (
	WOCategoryMinor     WOCategory = "minor"
	WOCategoryMajor     WOCategory = "major"
	WOCategoryAncillary WOCategory = "ancillary"
)

// Lifecycle stages in workflow order. StageDeferred sits outside the
// ordered chain as a side branch.
const (
	StageReported            Stage = "reported"
	StageWOCreated           Stage = "wo-created"
	StageAssigned            Stage = "assigned"
	StageInProgress          Stage = "in-progress"
	StageInspectionRequired  Stage = "inspection-required"
	StageInspectionCompleted Stage = "inspection-completed"
	StageCompleted           Stage = "completed"
	StageDeferred            Stage = "deferred"
)

const (
	MELCategoryA MELCategory = "A"
	MELCategoryB MELCategory = "B"
	MELCategoryC MELCategory = "C"
	MELCategoryD MELCategory = "D"
)

const (
	RoleLead       TechRole = "Lead"
	RoleMechanic   TechRole = "Mechanic"
	RoleAvionics   TechRole = "Avionics"
	RoleInspector  TechRole = "Inspector"
	RoleApprentice TechRole = "Apprentice"
)

const (
	TechOnShift  TechStatus = "on-shift"
	TechOffShift TechStatus = "off-shift"
)

const (
	ShiftAM    Shift = "AM"
	ShiftPM    Shift = "PM"
	ShiftNight Shift = "Night"
)

const (
	RequestVacation    RequestType = "Vacation"
	RequestSick        RequestType = "Sick"
	RequestPersonal    RequestType = "Personal"
	RequestJuryDuty    RequestType = "Jury Duty"
	RequestBereavement RequestType = "Bereavement"
	RequestCompTime    RequestType = "Comp Time"
)

const (
	RequestPendingLead     RequestStatus = "pending_lead"
	RequestPendingManager  RequestStatus = "pending_manager"
	RequestApproved        RequestStatus = "approved"
	RequestDeniedByLead    RequestStatus = "denied_by_lead"
	RequestDeniedByManager RequestStatus = "denied_by_manager"
)

const (
	StageLead    ApprovalStage = "lead"
	StageManager ApprovalStage = "manager"
)

const (
	AircraftAvailable AircraftStatus = "available"
	AircraftLimited   AircraftStatus = "limited"
	AircraftGrounded  AircraftStatus = "grounded"
)

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
	AlertSuccess  AlertType = "success"
)

// Deferral expiry alert levels, ordered: expired < critical < warning < ok.
const (
	AlertLevelExpired  AlertLevel = "expired"
	AlertLevelCritical AlertLevel = "critical"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelOK       AlertLevel = "ok"
)

const (
	CapacityOK         CapacityLevel = "ok"
	CapacityWarning    CapacityLevel = "warning"
	CapacityOverloaded CapacityLevel = "overloaded"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func ParseSquawkStatus(s string) (SquawkStatus, error) {
	switch SquawkStatus(s) {
	case SquawkOpen, SquawkDeferred, SquawkClosed, SquawkDuplicate:
		return SquawkStatus(s), nil
	}
	return "", fmt.Errorf("unknown squawk status %q", s)
}

func ParseSquawkType(s string) (SquawkType, error) {
	switch SquawkType(s) {
	case SquawkPreflight, SquawkInflight, SquawkPostflight, SquawkGround:
		return SquawkType(s), nil
	}
	return "", fmt.Errorf("unknown squawk type %q", s)
}

func ParseSquawkCategory(s string) (SquawkCategory, error) {
	switch SquawkCategory(s) {
	case CategoryMechanical, CategoryElectrical, CategoryAvionics,
		CategoryCabin, CategoryExterior, CategoryDocumentation:
		return SquawkCategory(s), nil
	}
	return "", fmt.Errorf("unknown squawk category %q", s)
}

func ParseWorkOrderStatus(s string) (WorkOrderStatus, error) {
	switch WorkOrderStatus(s) {
	case WorkOrderAssigned, WorkOrderInProgress, WorkOrderCompleted,
		WorkOrderCancelled, WorkOrderOnHold:
		return WorkOrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown work order status %q", s)
}

func ParseWorkOrderType(s string) (WorkOrderType, error) {
	switch WorkOrderType(s) {
	case WOScheduled, WOUnscheduled, WOAOG:
		return WorkOrderType(s), nil
	}
	return "", fmt.Errorf("unknown work order type %q", s)
}

func ParseWOCategory(s string) (WOCategory, error) {
	switch WOCategory(s) {
	case WOCategoryMinor, WOCategoryMajor, WOCategoryAncillary:
		return WOCategory(s), nil
	}
	return "", fmt.Errorf("unknown work order category %q", s)
}

func ParseMELCategory(s string) (MELCategory, error) {
	switch MELCategory(s) {
	case MELCategoryA, MELCategoryB, MELCategoryC, MELCategoryD:
		return MELCategory(s), nil
	}
	return "", fmt.Errorf("unknown MEL category %q", s)
}

func ParseTechRole(s string) (TechRole, error) {
	switch TechRole(s) {
	case RoleLead, RoleMechanic, RoleAvionics, RoleInspector, RoleApprentice:
		return TechRole(s), nil
	}
	return "", fmt.Errorf("unknown technician role %q", s)
}

func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case ShiftAM, ShiftPM, ShiftNight:
		return Shift(s), nil
	}
	return "", fmt.Errorf("unknown shift %q", s)
}

func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestVacation, RequestSick, RequestPersonal, RequestJuryDuty,
		RequestBereavement, RequestCompTime:
		return RequestType(s), nil
	}
	return "", fmt.Errorf("unknown request type %q", s)
}

func ParseApprovalStage(s string) (ApprovalStage, error) {
	switch ApprovalStage(s) {
	case StageLead, StageManager:
		return ApprovalStage(s), nil
	}
	return "", fmt.Errorf("unknown approval stage %q", s)
}
