package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/models/dtos"
)

// ListVacationRequests handles GET /api/v1/vacations
func (h *Handlers) ListVacationRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		requests := h.deps.Services.Vacations.ListRequests()
		common.RespondSuccess(w, initTime, "Vacation requests fetched", requests)
	}
}

// SubmitVacationRequest handles POST /api/v1/vacations
func (h *Handlers) SubmitVacationRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateVacationReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		vr, err := h.deps.Services.Vacations.SubmitRequest(r.Context(), req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vacation request submitted", vr, http.StatusCreated)
	}
}

// DecideVacationRequest handles POST /api/v1/vacations/{id}/decision
func (h *Handlers) DecideVacationRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.VacationDecisionReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		vr, err := h.deps.Services.Vacations.Decide(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Decision recorded", vr)
	}
}
