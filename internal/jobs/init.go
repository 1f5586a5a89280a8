package jobs

import (
	"context"
	"os"
	"time"

	"hangar-next/mxops/internal/logging"
	"hangar-next/mxops/internal/services"
)

// InitializeJobs initializes background jobs. The scheduled refresh is
// opt-in through REFRESH_INTERVAL (a Go duration, e.g. "60s"); without it
// the engine only recomputes on mutations and explicit refresh calls.
func InitializeJobs(ctx context.Context, analytics *services.AnalyticsService) *RefreshJob {
	refreshJob := NewRefreshJob(analytics)

	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			logging.Warn("Invalid REFRESH_INTERVAL, scheduled refresh disabled", "value", raw)
			return refreshJob
		}
		go refreshJob.RunScheduled(ctx, interval)
		logging.Info("Scheduled state refresh enabled", "interval", interval.String())
	}

	return refreshJob
}
