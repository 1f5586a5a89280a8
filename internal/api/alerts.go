package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/models/dtos"
)

// ListAlerts handles GET /api/v1/alerts
func (h *Handlers) ListAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		alerts := h.deps.Services.Alerts.ListAlerts()
		common.RespondSuccess(w, initTime, "Alerts fetched", alerts)
	}
}

// MarkAlertRead handles POST /api/v1/alerts/{id}/read
func (h *Handlers) MarkAlertRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.MarkAlertReadReq
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		if err := h.deps.Services.Alerts.MarkRead(r.Context(), id, req.Read); err != nil {
			respondStoreError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Alert marker updated", nil)
	}
}
