package dtos

import (
	"time"

	"hangar-next/mxops/internal/models/entities"
)

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// DeferralView decorates the stored deferral with the derived expiry
// arithmetic every consumer needs.
type DeferralView struct {
	SquawkID      string    `json:"squawkId"`
	AircraftTail  string    `json:"aircraftTail"`
	MELReference  string    `json:"melReference"`
	Category      string    `json:"category"`
	ExpiryDate    time.Time `json:"expiryDate"`
	DaysRemaining int       `json:"daysRemaining"`
	AlertStatus   string    `json:"alertStatus"`
	AuthorizedBy  string    `json:"authorizedBy"`
}

// ExpiryPreview answers "how long would a category X deferral run".
type ExpiryPreview struct {
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	Days       int       `json:"days"`
}

// AlertView is a notification plus the caller-specific read marker.
type AlertView struct {
	entities.Notification
	Read bool `json:"read"`
}

// FleetSummary heads the availability response.
type FleetSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Limited   int `json:"limited"`
	Grounded  int `json:"grounded"`
}

type AvailabilityResponse struct {
	Summary  FleetSummary                    `json:"summary"`
	Aircraft []entities.AircraftAvailability `json:"aircraft"`
}

type TechLoadView struct {
	Technician entities.Technician `json:"technician"`
	Load       entities.TechLoad   `json:"load"`
}

type HealthCheckResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
