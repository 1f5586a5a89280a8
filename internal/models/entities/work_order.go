package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// WorkOrder is a unit of maintenance work, possibly resolving one or more
// linked squawks. AssignedTo is the authoritative assignment record; a
// technician's CurrentJobID is only a derived display pointer.
type WorkOrder struct {
	ID             string                    `json:"id"`
	Title          string                    `json:"title"`
	Description    string                    `json:"description,omitempty"`
	Aircraft       string                    `json:"aircraft"`
	TailNumber     string                    `json:"tailNumber"`
	Priority       constants.Priority        `json:"priority"`
	Status         constants.WorkOrderStatus `json:"status"`
	Type           constants.WorkOrderType   `json:"type"`
	Category       constants.WOCategory      `json:"category"`
	AssignedTo     []string                  `json:"assignedTo"`
	AssignedShift  constants.Shift           `json:"assignedShift,omitempty"`
	EstimatedHours float64                   `json:"estimatedHours"`
	DueDate        time.Time                 `json:"dueDate"`
	StartDate      *time.Time                `json:"startDate,omitempty"`
	CompletedDate  *time.Time                `json:"completedDate,omitempty"`
	LinkedSquawks  []string                  `json:"linkedSquawks"`
	Lifecycle      LifecycleStage            `json:"lifecycleStage"`
	CreatedBy      string                    `json:"createdBy"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
	Location       string                    `json:"location,omitempty"`
	Notes          string                    `json:"notes,omitempty"`
}

// Clone returns a deep copy of the work order.
func (w WorkOrder) Clone() WorkOrder {
	out := w
	out.Lifecycle = w.Lifecycle.Clone()
	out.AssignedTo = append([]string(nil), w.AssignedTo...)
	out.LinkedSquawks = append([]string(nil), w.LinkedSquawks...)
	if w.StartDate != nil {
		t := *w.StartDate
		out.StartDate = &t
	}
	if w.CompletedDate != nil {
		t := *w.CompletedDate
		out.CompletedDate = &t
	}
	return out
}

// IsActive reports whether the order counts toward a technician's load.
func (w WorkOrder) IsActive() bool {
	return w.Status == constants.WorkOrderAssigned || w.Status == constants.WorkOrderInProgress
}

// IsOpen reports whether the order is still subject to due-date alerts.
func (w WorkOrder) IsOpen() bool {
	return w.Status != constants.WorkOrderCompleted && w.Status != constants.WorkOrderCancelled
}
