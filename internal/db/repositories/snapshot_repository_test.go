package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hangar-next/mxops/internal/constants"
	gormModels "hangar-next/mxops/internal/models/gorm"
	"hangar-next/mxops/internal/models/entities"
	"hangar-next/mxops/internal/store"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.StateSnapshot{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func sampleSnapshot(t *testing.T) store.Snapshot {
	t.Helper()
	s := store.New()
	if _, err := s.AddSquawk(store.SquawkDraft{
		AircraftTail: "N123AB",
		ReportedBy:   "J. Pilot",
		Description:  "Hydraulic leak at left main gear",
		ATAChapter:   "32",
		Priority:     constants.PriorityHigh,
		SquawkType:   constants.SquawkPostflight,
		Category:     constants.CategoryMechanical,
	}); err != nil {
		t.Fatalf("AddSquawk failed: %v", err)
	}
	return s.Snapshot()
}

func TestSnapshotSaveAndLoadLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	snap := sampleSnapshot(t)
	if err := repo.Save(ctx, snap, "system"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, found, err := repo.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a snapshot to be found")
	}
	if len(loaded.Squawks) != 1 {
		t.Fatalf("Expected 1 squawk in snapshot, got %d", len(loaded.Squawks))
	}
	if loaded.Squawks[0].AircraftTail != "N123AB" {
		t.Errorf("Expected tail N123AB, got %s", loaded.Squawks[0].AircraftTail)
	}

	// The restored snapshot drives a working store.
	restored := store.New()
	restored.Restore(loaded)
	avail := restored.Availability()
	if len(avail) != 1 || avail[0].Status != constants.AircraftAvailable {
		t.Errorf("Expected recomputed availability, got %+v", avail)
	}
}

func TestLoadLatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	_, found, err := repo.LoadLatest(context.Background())
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if found {
		t.Error("Expected no snapshot in empty database")
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, store.Snapshot{
			Technicians: []entities.Technician{{ID: "TECH-1", Name: "A. Mechanic"}},
		}, "system"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	var count int64
	if err := db.Model(&gormModels.StateSnapshot{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 snapshots after prune, got %d", count)
	}
}
