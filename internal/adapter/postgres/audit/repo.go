// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO audit_log (id, action, entity_type, entity_id, actor, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const deleteOlderThanSQL = `DELETE FROM audit_log WHERE created_at < $1`

const listByEntitySQL = `
SELECT id, action, entity_type, entity_id, actor, changes, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns it with id and timestamp set.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		record.ID, string(record.Action), string(record.EntityType), record.EntityID,
		record.Actor, changesJSON, record.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return record, nil
}

// Log creates an audit record without returning it.
// Satisfies survey.auditLogger and response.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// DeleteOlderThan removes records created before threshold and reports how
// many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOlderThanSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete old audit_records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		var (
			rec         domain.AuditRecord
			action      string
			entity      string
			changesJSON []byte
		)
		if err := rows.Scan(&rec.ID, &action, &entity, &rec.EntityID, &rec.Actor, &changesJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.Action = domain.AuditAction(action)
		rec.EntityType = domain.EntityType(entity)

		if len(changesJSON) > 0 {
			changes := make(map[string]any)
			if err := json.Unmarshal(changesJSON, &changes); err != nil {
				return nil, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
			}
			rec.Changes = changes
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}

	return records, nil
}
