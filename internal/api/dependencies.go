package api

import (
	"context"
	"os"

	"hangar-next/mxops/internal/common"
	"hangar-next/mxops/internal/db"
	"hangar-next/mxops/internal/db/repositories"
	"hangar-next/mxops/internal/logging"
	"hangar-next/mxops/internal/metrics"
	"hangar-next/mxops/internal/services"
	"hangar-next/mxops/internal/store"
)

type Repositories struct {
	Snapshots *repositories.SnapshotRepository
	Audit     *repositories.AuditRepository
}

type Services struct {
	Cache       common.CacheInterface
	Maintenance *services.MaintenanceService
	WorkOrders  *services.WorkOrderService
	Resources   *services.ResourceService
	Vacations   *services.VacationService
	Analytics   *services.AnalyticsService
	Alerts      *services.AlertService
}

type Dependencies struct {
	Store    *store.Store
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires the engine together: the in-memory store, the
// cache backend, the optional persistence repositories and the service
// layer on top. Redis and Postgres are opt-in; the engine runs complete
// without either.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	st := store.New()

	cacheSvc := initCache(metricsReg)

	repos := &Repositories{}
	if db.ORMDB != nil {
		repos.Snapshots = repositories.NewSnapshotRepository(db.ORMDB)
	}
	if db.DB != nil {
		repos.Audit = repositories.NewAuditRepository(db.DB)
		if err := repos.Audit.EnsureSchema(context.Background()); err != nil {
			logging.Warn("Audit schema setup failed, lifecycle archiving disabled", "error", err.Error())
			repos.Audit = nil
		}
	}

	// Resume from the latest snapshot when one exists.
	if repos.Snapshots != nil {
		snap, found, err := repos.Snapshots.LoadLatest(context.Background())
		if err != nil {
			logging.Error("Snapshot load failed, starting empty", "error", err.Error())
		} else if found {
			st.Restore(snap)
			logging.Info("State restored from snapshot",
				"squawks", len(snap.Squawks),
				"work_orders", len(snap.WorkOrders),
				"technicians", len(snap.Technicians),
			)
		}
	}

	books := services.NewBookkeeper(st, cacheSvc, metricsReg, repos.Snapshots, repos.Audit)

	svcs := &Services{
		Cache:       cacheSvc,
		Maintenance: services.NewMaintenanceService(st, books),
		WorkOrders:  services.NewWorkOrderService(st, books),
		Resources:   services.NewResourceService(st, books),
		Vacations:   services.NewVacationService(st, books),
		Analytics:   services.NewAnalyticsService(st, books),
		Alerts:      services.NewAlertService(st, books),
	}

	return &Dependencies{
		Store:    st,
		Repo:     repos,
		Services: svcs,
	}, nil
}

func initCache(metricsReg *metrics.MetricsRegistry) common.CacheInterface {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err == nil {
			logging.Info("Using Redis cache backend")
			return redisCache.WithMetrics(metricsReg)
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	return common.NewCacheService(60, 600).WithMetrics(metricsReg)
}
