package entities

import "hangar-next/mxops/internal/constants"

// Technician is a user-managed CRUD entity. CurrentJobID is advisory; the
// work order's AssignedTo set owns the assignment.
type Technician struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Role         constants.TechRole   `json:"role"`
	Email        string               `json:"email"`
	Status       constants.TechStatus `json:"status"`
	Skills       []string             `json:"skills"`
	Shift        constants.Shift      `json:"shift"`
	CurrentJobID string               `json:"currentJobId,omitempty"`
}

// Clone returns a deep copy of the technician.
func (t Technician) Clone() Technician {
	out := t
	out.Skills = append([]string(nil), t.Skills...)
	return out
}

// TechLoad is the capacity view for one technician.
type TechLoad struct {
	TechnicianID string                  `json:"technicianId"`
	ActiveTasks  int                     `json:"activeTasks"`
	Capacity     int                     `json:"capacity"`
	Level        constants.CapacityLevel `json:"level"`
}
