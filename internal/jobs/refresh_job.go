package jobs

import (
	"context"
	"log"
	"time"

	"hangar-next/mxops/internal/services"
)

// RefreshJob re-invokes the wall-clock recomputation on a schedule.
// Deferral expiry and overdue escalation only move when something calls
// the refresh; this job is that something when no external scheduler is
// wired up.
type RefreshJob struct {
	analytics *services.AnalyticsService
}

// NewRefreshJob creates a new refresh job instance
func NewRefreshJob(analytics *services.AnalyticsService) *RefreshJob {
	return &RefreshJob{
		analytics: analytics,
	}
}

// Run executes one refresh pass.
func (j *RefreshJob) Run(ctx context.Context) error {
	start := time.Now()
	j.analytics.Refresh()
	log.Printf("[RefreshJob] State recomputed in %s", time.Since(start))
	return nil
}

// RunScheduled runs the job on a fixed interval until the context is done.
func (j *RefreshJob) RunScheduled(ctx context.Context, interval time.Duration) {
	log.Printf("[RefreshJob] Scheduled refresh started, interval %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[RefreshJob] Scheduled refresh stopped")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				log.Printf("[RefreshJob] Refresh failed: %v", err)
			}
		}
	}
}
