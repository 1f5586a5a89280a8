package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// AircraftAvailability is fully derived from the current squawk and work
// order sets. It is recomputed wholesale, never mutated by callers.
type AircraftAvailability struct {
	AircraftID               string                   `json:"aircraftId"`
	Tail                     string                   `json:"tail"`
	Status                   constants.AircraftStatus `json:"status"`
	OpenSquawks              int                      `json:"openSquawks"`
	CriticalSquawks          int                      `json:"criticalSquawks"`
	DeferredSquawks          int                      `json:"deferredSquawks"`
	CurrentLimitations       []string                 `json:"currentLimitations"`
	EstimatedReturnToService *time.Time               `json:"estimatedReturnToService,omitempty"`
}
