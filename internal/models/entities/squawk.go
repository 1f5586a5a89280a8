package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// Deferral is the live MEL/CDL record embedded in a deferred squawk. Expiry
// only ever advances forward; clearing the deferral removes the record and
// leaves the trail in lifecycle history.
type Deferral struct {
	MELReference           string                `json:"melReference"`
	Category               constants.MELCategory `json:"category"`
	CreatedAt              time.Time             `json:"createdAt"`
	ExpiryDate             time.Time             `json:"expiryDate"`
	AuthorizedBy           string                `json:"authorizedBy"`
	Conditions             string                `json:"conditions,omitempty"`
	OperationalLimitations []string              `json:"operationalLimitations"`
}

type PartUsed struct {
	PartNumber   string `json:"partNumber"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Quantity     int    `json:"quantity"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
}

// PatternInfo records a recurring-discrepancy detection (3+ similar squawks
// on the same ATA chapter and tail inside 30 days).
type PatternInfo struct {
	DetectedAt     time.Time `json:"detectedAt"`
	SimilarSquawks []string  `json:"similarSquawks"`
	ATAChapter     string    `json:"ataChapter"`
	Aircraft       string    `json:"aircraft"`
	Frequency      int       `json:"frequency"`
	Recommendation string    `json:"recommendation"`
}

// Squawk is a reported aircraft discrepancy.
type Squawk struct {
	ID                 string                   `json:"id"`
	AircraftID         string                   `json:"aircraftId"`
	AircraftTail       string                   `json:"aircraftTail"`
	LogbookPage        int                      `json:"logbookPage,omitempty"`
	ReportedBy         string                   `json:"reportedBy"`
	ReportedAt         time.Time                `json:"reportedAt"`
	FlightNumber       string                   `json:"flightNumber,omitempty"`
	SquawkType         constants.SquawkType     `json:"squawkType"`
	Priority           constants.Priority       `json:"priority"`
	Status             constants.SquawkStatus   `json:"status"`
	ATAChapter         string                   `json:"ataChapter"`
	Description        string                   `json:"description"`
	PilotAction        string                   `json:"pilotAction,omitempty"`
	Category           constants.SquawkCategory `json:"category"`
	RequiresInspection bool                     `json:"requiresInspection"`
	PartsUsed          []PartUsed               `json:"partsUsed"`
	Attachments        []string                 `json:"attachments"`
	WorkOrderID        string                   `json:"workOrderId,omitempty"`
	Deferral           *Deferral                `json:"deferral,omitempty"`
	PatternDetected    bool                     `json:"patternDetected"`
	PatternInfo        *PatternInfo             `json:"patternInfo,omitempty"`
	Lifecycle          LifecycleStage           `json:"lifecycleStage"`
	ClosedBy           string                   `json:"closedBy,omitempty"`
	ClosedAt           *time.Time               `json:"closedAt,omitempty"`
	Notes              string                   `json:"notes,omitempty"`
}

// Clone returns a deep copy of the squawk.
func (s Squawk) Clone() Squawk {
	out := s
	out.Lifecycle = s.Lifecycle.Clone()
	if s.Deferral != nil {
		d := *s.Deferral
		d.OperationalLimitations = append([]string(nil), s.Deferral.OperationalLimitations...)
		out.Deferral = &d
	}
	if s.PatternInfo != nil {
		p := *s.PatternInfo
		p.SimilarSquawks = append([]string(nil), s.PatternInfo.SimilarSquawks...)
		out.PatternInfo = &p
	}
	if s.ClosedAt != nil {
		t := *s.ClosedAt
		out.ClosedAt = &t
	}
	out.PartsUsed = append([]PartUsed(nil), s.PartsUsed...)
	out.Attachments = append([]string(nil), s.Attachments...)
	return out
}
