package api

import (
	"net/http"
	"time"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/store"
)

// respondStoreError maps store errors to HTTP status codes: validation
// failures are the caller's fault, missing entities are 404 and rejected
// transitions are conflicts with current state.
func respondStoreError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case store.IsValidation(err):
		common.RespondError(w, initTime, err, err.Error(), http.StatusBadRequest)
	case store.IsNotFound(err):
		common.RespondError(w, initTime, err, err.Error(), http.StatusNotFound)
	case store.IsInvalidTransition(err), store.IsInvalidStage(err):
		common.RespondError(w, initTime, err, err.Error(), http.StatusConflict)
	default:
		common.RespondError(w, initTime, err, "An unexpected error occurred", http.StatusInternalServerError)
	}
}
