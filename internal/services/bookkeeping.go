package services

import (
	"context"
	"time"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/db/repositories"
	"hangar-next/mxops/internal/logging"
	"hangar-next/mxops/internal/metrics"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// Bookkeeper carries the cross-cutting work every mutation triggers:
// cache invalidation, metric updates, snapshot persistence and the
// lifecycle audit trail. Services call it after the store accepts a change.
type Bookkeeper struct {
	store     *store.Store
	cache     common.CacheInterface
	metrics   *metrics.MetricsRegistry
	snapshots *repositories.SnapshotRepository
	audit     *repositories.AuditRepository
}

func NewBookkeeper(
	st *store.Store,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	snapshots *repositories.SnapshotRepository,
	audit *repositories.AuditRepository,
) *Bookkeeper {
	return &Bookkeeper{
		store:     st,
		cache:     cache,
		metrics:   metricsReg,
		snapshots: snapshots,
		audit:     audit,
	}
}

// RecordMutation updates counters and gauges, drops derived caches and
// persists a snapshot. Persistence failures are logged, never surfaced:
// the in-memory store already holds the accepted change.
func (b *Bookkeeper) RecordMutation(ctx context.Context, entity, operation, actor string) {
	if b.metrics != nil {
		b.metrics.MutationsTotal.WithLabelValues(entity, operation).Inc()
	}
	b.invalidateDerived()
	b.syncGauges()
	b.persistSnapshot(ctx, actor)
}

func (b *Bookkeeper) invalidateDerived() {
	b.cache.Delete(string(constants.CachePrefixAvailability) + "fleet")
	b.cache.Delete(string(constants.CachePrefixMTTR) + "overall")
	b.cache.Delete(string(constants.CachePrefixAlerts) + "all")
	b.cache.Delete(string(constants.CachePrefixTechLoad) + "all")
}

func (b *Bookkeeper) syncGauges() {
	if b.metrics == nil {
		return
	}
	st := b.store.Stats()
	b.metrics.OpenSquawks.Set(float64(st.OpenSquawks))
	b.metrics.ActiveDeferrals.Set(float64(st.ActiveDeferrals))
	b.metrics.GroundedAircraft.Set(float64(st.GroundedAircraft))
	b.metrics.ActiveAlerts.Set(float64(st.ActiveAlerts))
	b.metrics.OverallMTTRHours.Set(st.OverallMTTRHours)
}

func (b *Bookkeeper) persistSnapshot(ctx context.Context, actor string) {
	if b.snapshots == nil {
		return
	}
	if err := b.snapshots.Save(ctx, b.store.Snapshot(), actor); err != nil {
		logging.Error("Snapshot persistence failed", "error", err.Error())
		return
	}
	if err := b.snapshots.Prune(ctx, 20); err != nil {
		logging.Warn("Snapshot pruning failed", "error", err.Error())
	}
}

// ArchiveLifecycle pushes an entity's full stage history to the audit
// table. Already archived transitions are skipped server-side, so the
// whole history can be re-submitted after every change.
func (b *Bookkeeper) ArchiveLifecycle(ctx context.Context, entityType, entityID string, lc entities.LifecycleStage) {
	if b.audit == nil {
		return
	}
	for _, ev := range lc.History {
		row := &repositories.AuditRow{
			EntityType:  entityType,
			EntityID:    entityID,
			Stage:       string(ev.Stage),
			PerformedBy: ev.PerformedBy,
			Notes:       ev.Notes,
			OccurredAt:  ev.Timestamp,
		}
		if err := b.audit.Record(ctx, row); err != nil {
			logging.Warn("Lifecycle audit write failed",
				"entity_type", entityType,
				"entity_id", entityID,
				"error", err.Error(),
			)
			return
		}
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
