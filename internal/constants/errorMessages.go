package constants

const (
	MsgSquawkNotFound      = "Squawk not found"
	MsgWorkOrderNotFound   = "Work order not found"
	MsgTechnicianNotFound  = "Technician not found"
	MsgRequestNotFound     = "Vacation request not found"
	MsgInvalidPayload      = "Invalid request payload"
	MsgValidationFailed    = "Validation failed"
	MsgInvalidTransition   = "Lifecycle transition not allowed"
	MsgInvalidStage        = "Approval stage not currently actionable"
	MsgDeferralMissing     = "Squawk has no active deferral"
	MsgDeferralExists      = "Squawk already has an active deferral"
)
