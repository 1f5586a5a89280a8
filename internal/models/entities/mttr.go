package entities

import "time"

// MTTRData aggregates completed work order durations. Purely derived.
type MTTRData struct {
	Overall        float64            `json:"overall"`
	ByAircraft     map[string]float64 `json:"byAircraft"`
	ByCategory     map[string]float64 `json:"byCategory"`
	ByTechnician   map[string]float64 `json:"byTechnician"`
	OnTimeRate     float64            `json:"onTimeRate"`
	CompletedCount int                `json:"completedCount"`
	LastCalculated time.Time          `json:"lastCalculated"`
}
