package services

import (
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// AnalyticsService serves the derived fleet availability and repair-time
// views. Both are already computed inside the store on every mutation; the
// cache here only absorbs dashboard polling between mutations.
type AnalyticsService struct {
	store *store.Store
	books *Bookkeeper
}

func NewAnalyticsService(st *store.Store, books *Bookkeeper) *AnalyticsService {
	return &AnalyticsService{
		store: st,
		books: books,
	}
}

func (s *AnalyticsService) Availability() (dtos.AvailabilityResponse, error) {
	key := string(constants.CachePrefixAvailability) + "fleet"
	cached, err := s.books.cache.GetOrSet(key, 15*time.Second, func() (any, error) {
		return s.buildAvailability(), nil
	})
	if err != nil {
		return dtos.AvailabilityResponse{}, err
	}
	if resp, ok := cached.(dtos.AvailabilityResponse); ok {
		return resp, nil
	}
	return s.buildAvailability(), nil
}

func (s *AnalyticsService) buildAvailability() dtos.AvailabilityResponse {
	aircraft := s.store.Availability()
	summary := dtos.FleetSummary{Total: len(aircraft)}
	for _, ac := range aircraft {
		switch ac.Status {
		case constants.AircraftGrounded:
			summary.Grounded++
		case constants.AircraftLimited:
			summary.Limited++
		default:
			summary.Available++
		}
	}
	return dtos.AvailabilityResponse{
		Summary:  summary,
		Aircraft: aircraft,
	}
}

func (s *AnalyticsService) MTTR() (entities.MTTRData, error) {
	key := string(constants.CachePrefixMTTR) + "overall"
	cached, err := s.books.cache.GetOrSet(key, 15*time.Second, func() (any, error) {
		return s.store.MTTR(), nil
	})
	if err != nil {
		return entities.MTTRData{}, err
	}
	if data, ok := cached.(entities.MTTRData); ok {
		return data, nil
	}
	return s.store.MTTR(), nil
}

// Refresh forces a wall-clock recomputation of everything time-sensitive
// (deferral expiry, overdue work orders) and drops the derived caches.
// Nothing in the engine ticks on its own; a scheduler or an operator hits
// this instead.
func (s *AnalyticsService) Refresh() {
	s.store.Refresh()
	s.books.invalidateDerived()
	s.books.syncGauges()
}
