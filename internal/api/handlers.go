package api

import (
	"encoding/json"
	"net/http"
	"time"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/constants"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// decodeBody unmarshals the request body into dst, responding with a 400
// on malformed JSON. Returns false when the caller should bail out.
func decodeBody(w http.ResponseWriter, r *http.Request, initTime time.Time, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.RespondError(w, initTime, nil, constants.MsgInvalidPayload, http.StatusBadRequest)
		return false
	}
	return true
}
