package store

import (
	"fmt"
	"strings"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// WorkOrderDraft carries the caller-supplied fields for a new work order.
type WorkOrderDraft struct {
	Title          string
	Description    string
	Aircraft       string
	TailNumber     string
	Priority       constants.Priority
	Type           constants.WorkOrderType
	Category       constants.WOCategory
	AssignedTo     []string
	AssignedShift  constants.Shift
	EstimatedHours float64
	DueDate        time.Time
	LinkedSquawks  []string
	CreatedBy      string
	Location       string
	Notes          string
}

func (d WorkOrderDraft) validate() error {
	switch {
	case d.Title == "":
		return &ValidationError{Field: "title", Reason: "required"}
	case d.TailNumber == "":
		return &ValidationError{Field: "tailNumber", Reason: "required"}
	case d.CreatedBy == "":
		return &ValidationError{Field: "createdBy", Reason: "required"}
	case d.DueDate.IsZero():
		return &ValidationError{Field: "dueDate", Reason: "required"}
	case d.EstimatedHours < 0:
		return &ValidationError{Field: "estimatedHours", Reason: "must not be negative"}
	}
	if _, err := constants.ParsePriority(string(d.Priority)); err != nil {
		return &ValidationError{Field: "priority", Reason: err.Error()}
	}
	if _, err := constants.ParseWorkOrderType(string(d.Type)); err != nil {
		return &ValidationError{Field: "type", Reason: err.Error()}
	}
	if _, err := constants.ParseWOCategory(string(d.Category)); err != nil {
		return &ValidationError{Field: "category", Reason: err.Error()}
	}
	return nil
}

// AddWorkOrder creates a work order and advances any linked squawks to the
// wo-created stage.
func (s *Store) AddWorkOrder(draft WorkOrderDraft) (entities.WorkOrder, error) {
	if err := draft.validate(); err != nil {
		return entities.WorkOrder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sqID := range draft.LinkedSquawks {
		if _, ok := s.findSquawk(sqID); !ok {
			return entities.WorkOrder{}, &NotFoundError{Entity: "squawk", ID: sqID}
		}
	}

	now := s.now()
	wo := entities.WorkOrder{
		ID:             newID("WO"),
		Title:          draft.Title,
		Description:    draft.Description,
		Aircraft:       draft.Aircraft,
		TailNumber:     draft.TailNumber,
		Priority:       draft.Priority,
		Status:         constants.WorkOrderAssigned,
		Type:           draft.Type,
		Category:       draft.Category,
		AssignedTo:     append([]string(nil), draft.AssignedTo...),
		AssignedShift:  draft.AssignedShift,
		EstimatedHours: draft.EstimatedHours,
		DueDate:        draft.DueDate,
		LinkedSquawks:  append([]string(nil), draft.LinkedSquawks...),
		Lifecycle:      newLifecycle(constants.StageWOCreated, draft.CreatedBy, now),
		CreatedBy:      draft.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
		Location:       draft.Location,
		Notes:          draft.Notes,
	}

	updated := make([]entities.Squawk, len(s.squawks))
	copy(updated, s.squawks)
	for _, sqID := range wo.LinkedSquawks {
		i, _ := s.findSquawk(sqID)
		next := updated[i].Clone()
		next.WorkOrderID = wo.ID
		next.Lifecycle = advanceIfForward(next.Lifecycle, constants.StageWOCreated, draft.CreatedBy,
			fmt.Sprintf("Work order %s created", wo.ID), now)
		updated[i] = next
	}

	s.squawks = updated
	s.workOrders = append(s.workOrders, wo)
	s.recompute()
	return wo.Clone(), nil
}

// CreateWorkOrderFromSquawks combines several squawks into one work order,
// inheriting the highest linked priority and the first squawk's tail.
func (s *Store) CreateWorkOrderFromSquawks(squawkIDs []string, title, createdBy string, estimatedHours float64, dueDate time.Time) (entities.WorkOrder, error) {
	if len(squawkIDs) == 0 {
		return entities.WorkOrder{}, &ValidationError{Field: "squawkIds", Reason: "at least one squawk required"}
	}

	s.mu.RLock()
	linked := make([]entities.Squawk, 0, len(squawkIDs))
	for _, id := range squawkIDs {
		i, ok := s.findSquawk(id)
		if !ok {
			s.mu.RUnlock()
			return entities.WorkOrder{}, &NotFoundError{Entity: "squawk", ID: id}
		}
		linked = append(linked, s.squawks[i])
	}
	s.mu.RUnlock()

	descriptions := make([]string, len(linked))
	priority := constants.PriorityLow
	for i, sq := range linked {
		descriptions[i] = fmt.Sprintf("[%s] %s", sq.ID, sq.Description)
		if priorityRank(sq.Priority) > priorityRank(priority) {
			priority = sq.Priority
		}
	}

	if title == "" {
		title = fmt.Sprintf("Combined Work Order - %d squawks", len(linked))
	}
	if estimatedHours == 0 {
		estimatedHours = float64(len(linked)) * 2
	}
	if dueDate.IsZero() {
		dueDate = s.now().Add(7 * day)
	}

	return s.AddWorkOrder(WorkOrderDraft{
		Title:          title,
		Description:    strings.Join(descriptions, "\n\n"),
		Aircraft:       linked[0].AircraftTail,
		TailNumber:     linked[0].AircraftTail,
		Priority:       priority,
		Type:           constants.WOUnscheduled,
		Category:       constants.WOCategoryMinor,
		EstimatedHours: estimatedHours,
		DueDate:        dueDate,
		LinkedSquawks:  squawkIDs,
		CreatedBy:      createdBy,
	})
}

func priorityRank(p constants.Priority) int {
	switch p {
	case constants.PriorityCritical:
		return 3
	case constants.PriorityHigh:
		return 2
	case constants.PriorityMedium:
		return 1
	}
	return 0
}

// WorkOrderUpdate is a partial update; nil fields are left untouched.
type WorkOrderUpdate struct {
	Title          *string
	Description    *string
	Priority       *constants.Priority
	Status         *constants.WorkOrderStatus
	Type           *constants.WorkOrderType
	Category       *constants.WOCategory
	EstimatedHours *float64
	DueDate        *time.Time
	Location       *string
	Notes          *string
	Stage          *constants.Stage
	StageNotes     string
}

// UpdateWorkOrder applies a partial update. Moving to in-progress stamps
// the start date; moving to completed stamps the completion date, advances
// the lifecycle terminally and closes the linked squawks. Completed and
// cancelled orders accept no further updates.
func (s *Store) UpdateWorkOrder(id string, upd WorkOrderUpdate, actor string) (entities.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findWorkOrder(id)
	if !ok {
		return entities.WorkOrder{}, &NotFoundError{Entity: "work order", ID: id}
	}
	cur := s.workOrders[i]
	if !cur.IsOpen() {
		return entities.WorkOrder{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("work order is %s", cur.Status)}
	}

	now := s.now()
	next := cur.Clone()

	if upd.Title != nil {
		if *upd.Title == "" {
			return entities.WorkOrder{}, &ValidationError{Field: "title", Reason: "required"}
		}
		next.Title = *upd.Title
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.Priority != nil {
		if _, err := constants.ParsePriority(string(*upd.Priority)); err != nil {
			return entities.WorkOrder{}, &ValidationError{Field: "priority", Reason: err.Error()}
		}
		next.Priority = *upd.Priority
	}
	if upd.Type != nil {
		if _, err := constants.ParseWorkOrderType(string(*upd.Type)); err != nil {
			return entities.WorkOrder{}, &ValidationError{Field: "type", Reason: err.Error()}
		}
		next.Type = *upd.Type
	}
	if upd.Category != nil {
		if _, err := constants.ParseWOCategory(string(*upd.Category)); err != nil {
			return entities.WorkOrder{}, &ValidationError{Field: "category", Reason: err.Error()}
		}
		next.Category = *upd.Category
	}
	if upd.EstimatedHours != nil {
		if *upd.EstimatedHours < 0 {
			return entities.WorkOrder{}, &ValidationError{Field: "estimatedHours", Reason: "must not be negative"}
		}
		next.EstimatedHours = *upd.EstimatedHours
	}
	if upd.DueDate != nil {
		next.DueDate = *upd.DueDate
	}
	if upd.Location != nil {
		next.Location = *upd.Location
	}
	if upd.Notes != nil {
		next.Notes = *upd.Notes
	}

	if upd.Stage != nil {
		// Deferral is a squawk-side decision; a work order never enters
		// the deferred branch.
		if *upd.Stage == constants.StageDeferred {
			return entities.WorkOrder{}, &ValidationError{Field: "stage", Reason: "work orders cannot be deferred"}
		}
		ls, err := advanceLifecycle(next.Lifecycle, *upd.Stage, actor, upd.StageNotes, now)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		next.Lifecycle = ls
	}

	closeLinked := false
	if upd.Status != nil && *upd.Status != cur.Status {
		if _, err := constants.ParseWorkOrderStatus(string(*upd.Status)); err != nil {
			return entities.WorkOrder{}, &ValidationError{Field: "status", Reason: err.Error()}
		}
		switch *upd.Status {
		case constants.WorkOrderInProgress:
			if next.StartDate == nil {
				next.StartDate = &now
			}
			next.Lifecycle = advanceIfForward(next.Lifecycle, constants.StageInProgress, actor, "", now)
		case constants.WorkOrderCompleted:
			completed := now
			if next.StartDate != nil && completed.Before(*next.StartDate) {
				panic(fmt.Sprintf("invariant broken: work order %s completing before its start", next.ID))
			}
			next.CompletedDate = &completed
			if !terminalStage(next.Lifecycle.Current) {
				ls, err := advanceLifecycle(next.Lifecycle, constants.StageCompleted, actor, "", now)
				if err != nil {
					return entities.WorkOrder{}, err
				}
				next.Lifecycle = ls
			}
			closeLinked = true
		}
		next.Status = *upd.Status
	}

	next.UpdatedAt = now
	checkWorkOrderInvariants(next)

	updated := make([]entities.WorkOrder, len(s.workOrders))
	copy(updated, s.workOrders)
	updated[i] = next
	s.workOrders = updated

	if closeLinked {
		s.closeLinkedSquawks(next, actor, now)
	}

	s.recompute()
	return next.Clone(), nil
}

// closeLinkedSquawks closes every still-open squawk a completed work order
// resolves. Deferred squawks stay deferred; clearing a deferral is an
// explicit decision.
func (s *Store) closeLinkedSquawks(wo entities.WorkOrder, actor string, now time.Time) {
	if len(wo.LinkedSquawks) == 0 {
		return
	}
	updated := make([]entities.Squawk, len(s.squawks))
	copy(updated, s.squawks)
	for _, sqID := range wo.LinkedSquawks {
		i, ok := s.findSquawk(sqID)
		if !ok {
			continue
		}
		sq := updated[i]
		if sq.Status != constants.SquawkOpen {
			continue
		}
		next := sq.Clone()
		next.Lifecycle = advanceIfForward(next.Lifecycle, constants.StageCompleted, actor,
			fmt.Sprintf("Resolved by work order %s", wo.ID), now)
		if !terminalStage(next.Lifecycle.Current) {
			continue
		}
		next.Status = constants.SquawkClosed
		next.ClosedBy = actor
		next.ClosedAt = &now
		checkSquawkInvariants(next)
		updated[i] = next
	}
	s.squawks = updated
}

func checkWorkOrderInvariants(wo entities.WorkOrder) {
	if wo.Status == constants.WorkOrderCompleted && wo.CompletedDate == nil {
		panic(fmt.Sprintf("invariant broken: completed work order %s without completion date", wo.ID))
	}
	if wo.StartDate != nil && wo.CompletedDate != nil && wo.CompletedDate.Before(*wo.StartDate) {
		panic(fmt.Sprintf("invariant broken: work order %s completed before start", wo.ID))
	}
}
