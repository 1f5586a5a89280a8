package services

import (
	"context"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// WorkOrderService fronts work order creation, updates and technician
// assignment.
type WorkOrderService struct {
	store *store.Store
	books *Bookkeeper
}

func NewWorkOrderService(st *store.Store, books *Bookkeeper) *WorkOrderService {
	return &WorkOrderService{
		store: st,
		books: books,
	}
}

func (s *WorkOrderService) ListWorkOrders() []entities.WorkOrder {
	return s.store.WorkOrders()
}

func (s *WorkOrderService) GetWorkOrder(id string) (entities.WorkOrder, error) {
	return s.store.WorkOrder(id)
}

func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, req dtos.CreateWorkOrderReq) (entities.WorkOrder, error) {
	var due time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			return entities.WorkOrder{}, &store.ValidationError{Field: "dueDate", Reason: "invalid date format"}
		}
		due = parsed
	}

	wo, err := s.store.AddWorkOrder(store.WorkOrderDraft{
		Title:          req.Title,
		Description:    req.Description,
		Aircraft:       req.Aircraft,
		TailNumber:     req.TailNumber,
		Priority:       constants.Priority(req.Priority),
		Type:           constants.WorkOrderType(req.Type),
		Category:       constants.WOCategory(req.Category),
		AssignedTo:     req.AssignedTo,
		AssignedShift:  constants.Shift(req.AssignedShift),
		EstimatedHours: req.EstimatedHours,
		DueDate:        due,
		LinkedSquawks:  req.LinkedSquawks,
		CreatedBy:      req.CreatedBy,
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	s.books.RecordMutation(ctx, "work_order", "create", req.CreatedBy)
	s.books.ArchiveLifecycle(ctx, "work_order", wo.ID, wo.Lifecycle)
	return wo, nil
}

// CreateFromSquawks rolls several open squawks into a single work order.
func (s *WorkOrderService) CreateFromSquawks(ctx context.Context, req dtos.CreateFromSquawksReq) (entities.WorkOrder, error) {
	var due time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			return entities.WorkOrder{}, &store.ValidationError{Field: "dueDate", Reason: "invalid date format"}
		}
		due = parsed
	}

	wo, err := s.store.CreateWorkOrderFromSquawks(req.SquawkIDs, req.Title, req.CreatedBy, req.EstimatedHours, due)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	s.books.RecordMutation(ctx, "work_order", "create_from_squawks", req.CreatedBy)
	s.books.ArchiveLifecycle(ctx, "work_order", wo.ID, wo.Lifecycle)
	return wo, nil
}

func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, id string, req dtos.UpdateWorkOrderReq) (entities.WorkOrder, error) {
	upd := store.WorkOrderUpdate{
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		Location:       req.Location,
		Notes:          req.Notes,
		StageNotes:     req.StageNotes,
	}
	if req.Priority != nil {
		p := constants.Priority(*req.Priority)
		upd.Priority = &p
	}
	if req.Status != nil {
		st := constants.WorkOrderStatus(*req.Status)
		upd.Status = &st
	}
	if req.Type != nil {
		t := constants.WorkOrderType(*req.Type)
		upd.Type = &t
	}
	if req.Category != nil {
		c := constants.WOCategory(*req.Category)
		upd.Category = &c
	}
	if req.Stage != nil {
		stage := constants.Stage(*req.Stage)
		upd.Stage = &stage
	}
	if req.DueDate != nil {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return entities.WorkOrder{}, &store.ValidationError{Field: "dueDate", Reason: "invalid date format"}
		}
		upd.DueDate = &parsed
	}

	wo, err := s.store.UpdateWorkOrder(id, upd, req.UpdatedBy)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	s.books.RecordMutation(ctx, "work_order", "update", req.UpdatedBy)
	s.books.ArchiveLifecycle(ctx, "work_order", wo.ID, wo.Lifecycle)
	return wo, nil
}

func (s *WorkOrderService) AssignTechnician(ctx context.Context, workOrderID string, req dtos.AssignTechnicianReq) (entities.WorkOrder, error) {
	wo, err := s.store.AssignTechnicianToJob(req.TechnicianID, workOrderID, req.AssignedBy)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	s.books.RecordMutation(ctx, "work_order", "assign", req.AssignedBy)
	s.books.ArchiveLifecycle(ctx, "work_order", wo.ID, wo.Lifecycle)
	return wo, nil
}
