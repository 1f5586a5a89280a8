package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// AuditRow is one archived lifecycle transition.
type AuditRow struct {
	EntityType  string    `db:"entity_type"`
	EntityID    string    `db:"entity_id"`
	Stage       string    `db:"stage"`
	PerformedBy string    `db:"performed_by"`
	Notes       string    `db:"notes"`
	OccurredAt  time.Time `db:"occurred_at"`
}

// AuditRepository archives lifecycle history to Postgres, independent of
// the live snapshot, so the trail survives snapshot pruning.
type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

const auditSchema = `
	CREATE TABLE IF NOT EXISTS lifecycle_audit (
		id BIGSERIAL PRIMARY KEY,
		entity_type VARCHAR(20) NOT NULL,
		entity_id VARCHAR(100) NOT NULL,
		stage VARCHAR(30) NOT NULL,
		performed_by VARCHAR(100) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL,
		UNIQUE (entity_type, entity_id, stage, occurred_at)
	)
`

// EnsureSchema creates the audit table when absent.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, auditSchema)
	return err
}

// Record archives one transition. Replays of an already archived event are
// ignored so the archiver can re-submit whole histories safely.
func (r *AuditRepository) Record(ctx context.Context, row *AuditRow) error {
	const query = `
		INSERT INTO lifecycle_audit (entity_type, entity_id, stage, performed_by, notes, occurred_at)
		VALUES (:entity_type, :entity_id, :stage, :performed_by, :notes, :occurred_at)
		ON CONFLICT (entity_type, entity_id, stage, occurred_at) DO NOTHING
	`

	_, err := r.db.NamedExecContext(ctx, query, row)
	return err
}

// History returns the archived trail for one entity, oldest first.
func (r *AuditRepository) History(ctx context.Context, entityType, entityID string) ([]AuditRow, error) {
	const query = `
		SELECT entity_type, entity_id, stage, performed_by, notes, occurred_at
		FROM lifecycle_audit
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY occurred_at ASC
	`

	var rows []AuditRow
	if err := r.db.SelectContext(ctx, &rows, query, entityType, entityID); err != nil {
		return nil, err
	}
	return rows, nil
}
