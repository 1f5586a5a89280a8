package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/models/dtos"
)

// ListTechnicians handles GET /api/v1/technicians
func (h *Handlers) ListTechnicians() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		techs := h.deps.Services.Resources.ListTechnicians()
		common.RespondSuccess(w, initTime, "Technicians fetched", techs)
	}
}

// CreateTechnician handles POST /api/v1/technicians
func (h *Handlers) CreateTechnician() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateTechnicianReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		tech, err := h.deps.Services.Resources.CreateTechnician(r.Context(), req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician added", tech, http.StatusCreated)
	}
}

// UpdateTechnician handles PATCH /api/v1/technicians/{id}
func (h *Handlers) UpdateTechnician() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.UpdateTechnicianReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		tech, err := h.deps.Services.Resources.UpdateTechnician(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician updated", tech)
	}
}

// RemoveTechnician handles DELETE /api/v1/technicians/{id}
func (h *Handlers) RemoveTechnician() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		if err := h.deps.Services.Resources.RemoveTechnician(r.Context(), id); err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician removed", nil)
	}
}

// GetTechnicianLoad handles GET /api/v1/technicians/{id}/load
func (h *Handlers) GetTechnicianLoad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		load, err := h.deps.Services.Resources.TechnicianLoad(id)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician load fetched", load)
	}
}

// ListTechnicianLoads handles GET /api/v1/technicians/loads
func (h *Handlers) ListTechnicianLoads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		views, err := h.deps.Services.Resources.TechnicianLoads()
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician loads fetched", views)
	}
}
