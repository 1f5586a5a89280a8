package api

import (
	"encoding/json"
	"net/http"
	"time"

	"hangar-next/mxops/internal/db"
	"hangar-next/mxops/internal/models/dtos"
)

const version = "1.0.0"

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		if db.DB != nil {
			if err := db.DB.Ping(); err != nil {
				status = "degraded"
			}
		}

		resp := dtos.HealthCheckResponse{
			Status:  status,
			Uptime:  time.Since(upSince).Round(time.Second).String(),
			Version: version,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
