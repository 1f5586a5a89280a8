package store

import (
	"fmt"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// TechnicianDraft carries the caller-supplied fields for a new roster entry.
type TechnicianDraft struct {
	Name   string
	Role   constants.TechRole
	Email  string
	Status constants.TechStatus
	Skills []string
	Shift  constants.Shift
}

func (d TechnicianDraft) validate() error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if _, err := constants.ParseTechRole(string(d.Role)); err != nil {
		return &ValidationError{Field: "role", Reason: err.Error()}
	}
	if _, err := constants.ParseShift(string(d.Shift)); err != nil {
		return &ValidationError{Field: "shift", Reason: err.Error()}
	}
	switch d.Status {
	case constants.TechOnShift, constants.TechOffShift:
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", d.Status)}
	}
	return nil
}

// AddTechnician adds a roster entry.
func (s *Store) AddTechnician(draft TechnicianDraft) (entities.Technician, error) {
	if err := draft.validate(); err != nil {
		return entities.Technician{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := entities.Technician{
		ID:     newID("TECH"),
		Name:   draft.Name,
		Role:   draft.Role,
		Email:  draft.Email,
		Status: draft.Status,
		Skills: append([]string(nil), draft.Skills...),
		Shift:  draft.Shift,
	}
	s.technicians = append(s.technicians, t)
	return t.Clone(), nil
}

// TechnicianUpdate is a partial update; nil fields are left untouched.
type TechnicianUpdate struct {
	Name   *string
	Role   *constants.TechRole
	Email  *string
	Status *constants.TechStatus
	Skills *[]string
	Shift  *constants.Shift
}

// UpdateTechnician applies a partial update to a roster entry.
func (s *Store) UpdateTechnician(id string, upd TechnicianUpdate) (entities.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findTechnician(id)
	if !ok {
		return entities.Technician{}, &NotFoundError{Entity: "technician", ID: id}
	}
	next := s.technicians[i].Clone()

	if upd.Name != nil {
		if *upd.Name == "" {
			return entities.Technician{}, &ValidationError{Field: "name", Reason: "required"}
		}
		next.Name = *upd.Name
	}
	if upd.Role != nil {
		if _, err := constants.ParseTechRole(string(*upd.Role)); err != nil {
			return entities.Technician{}, &ValidationError{Field: "role", Reason: err.Error()}
		}
		next.Role = *upd.Role
	}
	if upd.Email != nil {
		next.Email = *upd.Email
	}
	if upd.Status != nil {
		switch *upd.Status {
		case constants.TechOnShift, constants.TechOffShift:
		default:
			return entities.Technician{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", *upd.Status)}
		}
		next.Status = *upd.Status
	}
	if upd.Skills != nil {
		next.Skills = append([]string(nil), (*upd.Skills)...)
	}
	if upd.Shift != nil {
		if _, err := constants.ParseShift(string(*upd.Shift)); err != nil {
			return entities.Technician{}, &ValidationError{Field: "shift", Reason: err.Error()}
		}
		next.Shift = *upd.Shift
	}

	updated := make([]entities.Technician, len(s.technicians))
	copy(updated, s.technicians)
	updated[i] = next
	s.technicians = updated
	return next.Clone(), nil
}

// RemoveTechnician drops a roster entry. Work order assignment lists keep
// the ID; they are historical records.
func (s *Store) RemoveTechnician(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findTechnician(id)
	if !ok {
		return &NotFoundError{Entity: "technician", ID: id}
	}
	updated := make([]entities.Technician, 0, len(s.technicians)-1)
	updated = append(updated, s.technicians[:i]...)
	updated = append(updated, s.technicians[i+1:]...)
	s.technicians = updated
	return nil
}

// AssignTechnicianToJob puts a technician on a work order. Assigning twice
// is a no-op. The technician moves on-shift with the order as current job,
// and the order's lifecycle advances to assigned when it has not passed it.
func (s *Store) AssignTechnicianToJob(technicianID, workOrderID, actor string) (entities.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti, ok := s.findTechnician(technicianID)
	if !ok {
		return entities.WorkOrder{}, &NotFoundError{Entity: "technician", ID: technicianID}
	}
	wi, ok := s.findWorkOrder(workOrderID)
	if !ok {
		return entities.WorkOrder{}, &NotFoundError{Entity: "work order", ID: workOrderID}
	}
	cur := s.workOrders[wi]
	if !cur.IsOpen() {
		return entities.WorkOrder{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("work order is %s", cur.Status)}
	}

	for _, assigned := range cur.AssignedTo {
		if assigned == technicianID {
			return cur.Clone(), nil
		}
	}

	now := s.now()
	next := cur.Clone()
	next.AssignedTo = append(next.AssignedTo, technicianID)
	next.Lifecycle = advanceIfForward(next.Lifecycle, constants.StageAssigned, actor,
		fmt.Sprintf("Assigned to %s", s.technicians[ti].Name), now)
	next.UpdatedAt = now

	tech := s.technicians[ti].Clone()
	tech.Status = constants.TechOnShift
	tech.CurrentJobID = next.ID

	workOrders := make([]entities.WorkOrder, len(s.workOrders))
	copy(workOrders, s.workOrders)
	workOrders[wi] = next
	s.workOrders = workOrders

	technicians := make([]entities.Technician, len(s.technicians))
	copy(technicians, s.technicians)
	technicians[ti] = tech
	s.technicians = technicians

	s.recompute()
	return next.Clone(), nil
}

// TechLoadByID computes the live load for one technician: active work
// orders (assigned or in-progress) against the fixed capacity.
func (s *Store) TechLoadByID(id string) (entities.TechLoad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.findTechnician(id); !ok {
		return entities.TechLoad{}, &NotFoundError{Entity: "technician", ID: id}
	}
	return s.techLoad(id), nil
}

// TechLoads computes the load for the whole roster.
func (s *Store) TechLoads() []entities.TechLoad {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.TechLoad, len(s.technicians))
	for i, t := range s.technicians {
		out[i] = s.techLoad(t.ID)
	}
	return out
}

func (s *Store) techLoad(id string) entities.TechLoad {
	active := 0
	for i := range s.workOrders {
		if !s.workOrders[i].IsActive() {
			continue
		}
		for _, assigned := range s.workOrders[i].AssignedTo {
			if assigned == id {
				active++
				break
			}
		}
	}
	return entities.TechLoad{
		TechnicianID: id,
		ActiveTasks:  active,
		Capacity:     constants.TechCapacity,
		Level:        capacityLevel(active, constants.TechCapacity),
	}
}

// capacityLevel buckets utilization: under 60% is fine, 100% and over is
// overloaded, in between warns.
func capacityLevel(active, capacity int) constants.CapacityLevel {
	ratio := float64(active) / float64(capacity)
	switch {
	case ratio >= 1:
		return constants.CapacityOverloaded
	case ratio >= 0.6:
		return constants.CapacityWarning
	}
	return constants.CapacityOK
}
