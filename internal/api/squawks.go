package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/models/dtos"
)

// ListSquawks handles GET /api/v1/squawks
func (h *Handlers) ListSquawks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		squawks := h.deps.Services.Maintenance.ListSquawks()
		common.RespondSuccess(w, initTime, "Squawks fetched", squawks)
	}
}

// GetSquawk handles GET /api/v1/squawks/{id}
func (h *Handlers) GetSquawk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		sq, err := h.deps.Services.Maintenance.GetSquawk(id)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Squawk fetched", sq)
	}
}

// CreateSquawk handles POST /api/v1/squawks
func (h *Handlers) CreateSquawk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateSquawkReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		sq, err := h.deps.Services.Maintenance.CreateSquawk(r.Context(), req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Squawk reported", sq, http.StatusCreated)
	}
}

// UpdateSquawk handles PATCH /api/v1/squawks/{id}
func (h *Handlers) UpdateSquawk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.UpdateSquawkReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		sq, err := h.deps.Services.Maintenance.UpdateSquawk(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Squawk updated", sq)
	}
}

// DeferSquawk handles POST /api/v1/squawks/{id}/defer
func (h *Handlers) DeferSquawk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.CreateDeferralReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		sq, err := h.deps.Services.Maintenance.CreateDeferral(r.Context(), id, req)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Squawk deferred", sq, http.StatusCreated)
	}
}

// ExtendDeferral handles POST /api/v1/squawks/{id}/defer/extend
func (h *Handlers) ExtendDeferral() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.DeferralActionReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		sq, err := h.deps.Services.Maintenance.ExtendDeferral(r.Context(), id, req.PerformedBy)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Deferral extended", sq)
	}
}

// ClearDeferral handles POST /api/v1/squawks/{id}/defer/clear
func (h *Handlers) ClearDeferral() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.DeferralActionReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		sq, err := h.deps.Services.Maintenance.ClearDeferral(r.Context(), id, req.PerformedBy)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Deferral cleared", sq)
	}
}

// ListDeferrals handles GET /api/v1/deferrals
func (h *Handlers) ListDeferrals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		views := h.deps.Services.Maintenance.ListDeferrals()
		common.RespondSuccess(w, initTime, "Deferrals fetched", views)
	}
}

// PreviewDeferralExpiry handles GET /api/v1/deferrals/expiry/{category}
func (h *Handlers) PreviewDeferralExpiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		category := chi.URLParam(r, "category")

		preview, err := h.deps.Services.Maintenance.PreviewExpiry(category, 0)
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Expiry preview", preview)
	}
}
