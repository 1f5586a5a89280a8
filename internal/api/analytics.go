package api

import (
	"net/http"
	"time"

	"hangar-next/mxops/internal/common"
)

// GetAvailability handles GET /api/v1/availability
func (h *Handlers) GetAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := h.deps.Services.Analytics.Availability()
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Fleet availability fetched", resp)
	}
}

// GetMTTR handles GET /api/v1/analytics/mttr
func (h *Handlers) GetMTTR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := h.deps.Services.Analytics.MTTR()
		if err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "MTTR metrics fetched", data)
	}
}

// RefreshState handles POST /api/v1/state/refresh. Time-driven effects
// (deferral expiry, overdue escalation) only move when this or a mutation
// runs; an external scheduler is expected to hit it periodically.
func (h *Handlers) RefreshState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		h.deps.Services.Analytics.Refresh()
		common.RespondSuccess(w, initTime, "State recomputed", nil)
	}
}
