package store

import "hangar-next/mxops/internal/models/entities"

// Snapshot is the whole canonical state, read or written in one piece.
// Derived views are recomputed on restore rather than persisted.
type Snapshot struct {
	Squawks          []entities.Squawk          `json:"squawks"`
	WorkOrders       []entities.WorkOrder       `json:"workOrders"`
	Technicians      []entities.Technician      `json:"technicians"`
	VacationRequests []entities.VacationRequest `json:"vacationRequests"`
}

// Snapshot returns a deep copy of the canonical collections under one lock
// acquisition, so persistence never observes a half-applied mutation.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Squawks:          make([]entities.Squawk, len(s.squawks)),
		WorkOrders:       make([]entities.WorkOrder, len(s.workOrders)),
		Technicians:      make([]entities.Technician, len(s.technicians)),
		VacationRequests: make([]entities.VacationRequest, len(s.vacationRequests)),
	}
	for i, sq := range s.squawks {
		snap.Squawks[i] = sq.Clone()
	}
	for i, wo := range s.workOrders {
		snap.WorkOrders[i] = wo.Clone()
	}
	for i, t := range s.technicians {
		snap.Technicians[i] = t.Clone()
	}
	for i, v := range s.vacationRequests {
		snap.VacationRequests[i] = v.Clone()
	}
	return snap
}

// Restore replaces the canonical collections wholesale and recomputes every
// derived view. Stored invariants are re-checked; a corrupt snapshot fails
// loudly rather than loading.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	squawks := make([]entities.Squawk, len(snap.Squawks))
	for i, sq := range snap.Squawks {
		checkSquawkInvariants(sq)
		squawks[i] = sq.Clone()
	}
	workOrders := make([]entities.WorkOrder, len(snap.WorkOrders))
	for i, wo := range snap.WorkOrders {
		checkWorkOrderInvariants(wo)
		workOrders[i] = wo.Clone()
	}
	technicians := make([]entities.Technician, len(snap.Technicians))
	for i, t := range snap.Technicians {
		technicians[i] = t.Clone()
	}
	vacations := make([]entities.VacationRequest, len(snap.VacationRequests))
	for i, v := range snap.VacationRequests {
		checkVacationInvariants(v)
		vacations[i] = v.Clone()
	}

	s.squawks = squawks
	s.workOrders = workOrders
	s.technicians = technicians
	s.vacationRequests = vacations
	s.recompute()
}
