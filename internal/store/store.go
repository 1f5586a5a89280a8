package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// Store holds the canonical maintenance collections and all data derived
// from them. It is the single mutable resource: every mutator validates its
// input, applies the change copy-on-write, and recomputes the derived views
// (availability, MTTR, alerts) before releasing the lock, so callers never
// observe a half-applied mutation.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	squawks          []entities.Squawk
	workOrders       []entities.WorkOrder
	technicians      []entities.Technician
	vacationRequests []entities.VacationRequest

	availability  []entities.AircraftAvailability
	mttr          entities.MTTRData
	notifications []entities.Notification
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock overrides the time source, used by tests to pin expiry and
// duration arithmetic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// recompute refreshes every derived view. Must be called with the write
// lock held, after each mutation that can affect derived data.
func (s *Store) recompute() {
	now := s.now()
	s.detectPatterns(now)
	s.availability = computeAvailability(s.squawks, s.workOrders, now)
	s.mttr = computeMTTR(s.workOrders, now)
	s.notifications = generateAlerts(s.squawks, s.workOrders, now)
}

// Refresh recomputes the derived views against the current clock. Nothing
// here ticks on its own; a caller that cares about wall-time effects
// (deferral expiry, overdue work orders) re-invokes this explicitly.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute()
}

func (s *Store) findSquawk(id string) (int, bool) {
	for i := range s.squawks {
		if s.squawks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) findWorkOrder(id string) (int, bool) {
	for i := range s.workOrders {
		if s.workOrders[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) findTechnician(id string) (int, bool) {
	for i := range s.technicians {
		if s.technicians[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) findVacationRequest(id string) (int, bool) {
	for i := range s.vacationRequests {
		if s.vacationRequests[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Squawks returns a deep copy of the squawk collection.
func (s *Store) Squawks() []entities.Squawk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Squawk, len(s.squawks))
	for i, sq := range s.squawks {
		out[i] = sq.Clone()
	}
	return out
}

// Squawk returns a deep copy of one squawk.
func (s *Store) Squawk(id string) (entities.Squawk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.findSquawk(id)
	if !ok {
		return entities.Squawk{}, &NotFoundError{Entity: "squawk", ID: id}
	}
	return s.squawks[i].Clone(), nil
}

// WorkOrders returns a deep copy of the work order collection.
func (s *Store) WorkOrders() []entities.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.WorkOrder, len(s.workOrders))
	for i, wo := range s.workOrders {
		out[i] = wo.Clone()
	}
	return out
}

// WorkOrder returns a deep copy of one work order.
func (s *Store) WorkOrder(id string) (entities.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.findWorkOrder(id)
	if !ok {
		return entities.WorkOrder{}, &NotFoundError{Entity: "work order", ID: id}
	}
	return s.workOrders[i].Clone(), nil
}

// Technicians returns a deep copy of the technician roster.
func (s *Store) Technicians() []entities.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Technician, len(s.technicians))
	for i, t := range s.technicians {
		out[i] = t.Clone()
	}
	return out
}

// VacationRequests returns a deep copy of the request collection.
func (s *Store) VacationRequests() []entities.VacationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.VacationRequest, len(s.vacationRequests))
	for i, v := range s.vacationRequests {
		out[i] = v.Clone()
	}
	return out
}

// Availability returns the derived per-aircraft availability view.
func (s *Store) Availability() []entities.AircraftAvailability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.AircraftAvailability, len(s.availability))
	for i, a := range s.availability {
		a.CurrentLimitations = append([]string(nil), a.CurrentLimitations...)
		if a.EstimatedReturnToService != nil {
			t := *a.EstimatedReturnToService
			a.EstimatedReturnToService = &t
		}
		out[i] = a
	}
	return out
}

// MTTR returns the derived repair-time analytics.
func (s *Store) MTTR() entities.MTTRData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.mttr
	out.ByAircraft = copyFloatMap(s.mttr.ByAircraft)
	out.ByCategory = copyFloatMap(s.mttr.ByCategory)
	out.ByTechnician = copyFloatMap(s.mttr.ByTechnician)
	return out
}

// Notifications returns the derived alert list from the latest scan.
func (s *Store) Notifications() []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Stats is a small rollup consumed by the metrics layer.
type Stats struct {
	OpenSquawks      int
	ActiveDeferrals  int
	GroundedAircraft int
	ActiveAlerts     int
	OverallMTTRHours float64
}

// Stats returns current gauge values.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		ActiveAlerts:     len(s.notifications),
		OverallMTTRHours: s.mttr.Overall,
	}
	for i := range s.squawks {
		if s.squawks[i].Deferral != nil {
			st.ActiveDeferrals++
		}
		if s.squawks[i].Status == constants.SquawkOpen {
			st.OpenSquawks++
		}
	}
	for i := range s.availability {
		if s.availability[i].Status == constants.AircraftGrounded {
			st.GroundedAircraft++
		}
	}
	return st
}
