package services

import (
	"context"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// ResourceService manages the technician roster and the per-technician
// workload view.
type ResourceService struct {
	store *store.Store
	books *Bookkeeper
}

func NewResourceService(st *store.Store, books *Bookkeeper) *ResourceService {
	return &ResourceService{
		store: st,
		books: books,
	}
}

func (s *ResourceService) ListTechnicians() []entities.Technician {
	return s.store.Technicians()
}

func (s *ResourceService) CreateTechnician(ctx context.Context, req dtos.CreateTechnicianReq) (entities.Technician, error) {
	status := constants.TechStatus(req.Status)
	if req.Status == "" {
		status = constants.TechOffShift
	}
	tech, err := s.store.AddTechnician(store.TechnicianDraft{
		Name:   req.Name,
		Role:   constants.TechRole(req.Role),
		Email:  req.Email,
		Status: status,
		Skills: req.Skills,
		Shift:  constants.Shift(req.Shift),
	})
	if err != nil {
		return entities.Technician{}, err
	}
	s.books.RecordMutation(ctx, "technician", "create", req.Name)
	return tech, nil
}

func (s *ResourceService) UpdateTechnician(ctx context.Context, id string, req dtos.UpdateTechnicianReq) (entities.Technician, error) {
	upd := store.TechnicianUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Skills: req.Skills,
	}
	if req.Role != nil {
		role := constants.TechRole(*req.Role)
		upd.Role = &role
	}
	if req.Status != nil {
		status := constants.TechStatus(*req.Status)
		upd.Status = &status
	}
	if req.Shift != nil {
		shift := constants.Shift(*req.Shift)
		upd.Shift = &shift
	}

	tech, err := s.store.UpdateTechnician(id, upd)
	if err != nil {
		return entities.Technician{}, err
	}
	s.books.RecordMutation(ctx, "technician", "update", id)
	return tech, nil
}

func (s *ResourceService) RemoveTechnician(ctx context.Context, id string) error {
	if err := s.store.RemoveTechnician(id); err != nil {
		return err
	}
	s.books.RecordMutation(ctx, "technician", "remove", id)
	return nil
}

func (s *ResourceService) TechnicianLoad(id string) (entities.TechLoad, error) {
	return s.store.TechLoadByID(id)
}

// TechnicianLoads returns the full roster with workload, cached briefly
// since the dispatch board polls it.
func (s *ResourceService) TechnicianLoads() ([]dtos.TechLoadView, error) {
	key := string(constants.CachePrefixTechLoad) + "all"
	cached, err := s.books.cache.GetOrSet(key, 30*time.Second, func() (any, error) {
		techs := s.store.Technicians()
		views := make([]dtos.TechLoadView, 0, len(techs))
		for _, tech := range techs {
			load, err := s.store.TechLoadByID(tech.ID)
			if err != nil {
				continue
			}
			views = append(views, dtos.TechLoadView{
				Technician: tech,
				Load:       load,
			})
		}
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	views, ok := cached.([]dtos.TechLoadView)
	if !ok {
		// Redis round-trips lose the concrete type; rebuild from the store.
		techs := s.store.Technicians()
		views = make([]dtos.TechLoadView, 0, len(techs))
		for _, tech := range techs {
			load, loadErr := s.store.TechLoadByID(tech.ID)
			if loadErr != nil {
				continue
			}
			views = append(views, dtos.TechLoadView{Technician: tech, Load: load})
		}
	}
	return views, nil
}
