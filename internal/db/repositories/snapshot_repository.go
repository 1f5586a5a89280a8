package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	gormModels "hangar-next/mxops/internal/models/gorm"
	"hangar-next/mxops/internal/store"
)

type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new GORM-based snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save persists a whole-state snapshot as a new row.
func (r *SnapshotRepository) Save(ctx context.Context, snap store.Snapshot, savedBy string) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	row := gormModels.StateSnapshot{
		Payload: payload,
		SavedBy: savedBy,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadLatest returns the newest stored snapshot, or false when none exists.
func (r *SnapshotRepository) LoadLatest(ctx context.Context) (store.Snapshot, bool, error) {
	var row gormModels.StateSnapshot
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, true, nil
}

// Prune keeps the newest keep rows and drops the rest.
func (r *SnapshotRepository) Prune(ctx context.Context, keep int) error {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&gormModels.StateSnapshot{}).
		Order("created_at DESC").
		Offset(keep).
		Pluck("id", &ids).Error
	if err != nil {
		return fmt.Errorf("failed to list stale snapshots: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&gormModels.StateSnapshot{}, ids).Error; err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}
