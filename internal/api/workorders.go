package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
)

// ListWorkOrders handles GET /api/v1/workorders
func (h *Handlers) ListWorkOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		orders := h.deps.Services.WorkOrders.ListWorkOrders()
		common.RespondSuccess(w, initTime, "Work orders fetched", orders)
	}
}

// GetWorkOrder handles GET /api/v1/workorders/{id}
func (h *Handlers) GetWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		wo, err := h.deps.Services.WorkOrders.GetWorkOrder(id)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Work order fetched", wo)
	}
}

// CreateWorkOrder handles POST /api/v1/workorders
func (h *Handlers) CreateWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateWorkOrderReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		wo, err := h.deps.Services.WorkOrders.CreateWorkOrder(r.Context(), req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Work order created", wo, http.StatusCreated)
	}
}

// CreateWorkOrderFromSquawks handles POST /api/v1/workorders/from-squawks
func (h *Handlers) CreateWorkOrderFromSquawks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateFromSquawksReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		wo, err := h.deps.Services.WorkOrders.CreateFromSquawks(r.Context(), req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Work order created from squawks", wo, http.StatusCreated)
	}
}

// UpdateWorkOrder handles PATCH /api/v1/workorders/{id}
func (h *Handlers) UpdateWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.UpdateWorkOrderReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		wo, err := h.deps.Services.WorkOrders.UpdateWorkOrder(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Work order updated", wo)
	}
}

// AssignTechnician handles POST /api/v1/workorders/{id}/assign/{techId}.
// The body is optional; it only carries the assigning actor.
func (h *Handlers) AssignTechnician() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.AssignTechnicianReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			common.RespondError(w, initTime, nil, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		req.TechnicianID = chi.URLParam(r, "techId")

		wo, err := h.deps.Services.WorkOrders.AssignTechnician(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Technician assigned", wo)
	}
}
