// Package store implements the optional persistence behind the pipeline:
// Postgres generation history, Redis result caching and Elasticsearch audit
// indexing. All of it is best-effort from the pipeline's point of view.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/models"
)

const insertGeneration = `
	INSERT INTO generations (id, tool_id, inputs, is_structured, title_count, error, duration_ms, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const selectRecent = `
	SELECT id, tool_id, inputs, is_structured, title_count, error, duration_ms, created_at
	FROM generations
	WHERE tool_id = $1
	ORDER BY created_at DESC
	LIMIT $2`

// History persists generation records to Postgres.
type History struct {
	db  *sql.DB
	log logger.Logger
}

// NewHistory creates a history store on an open database handle.
func NewHistory(db *sql.DB, log logger.Logger) *History {
	return &History{db: db, log: log.With(map[string]interface{}{"component": "history"})}
}

// Record inserts one generation record.
func (h *History) Record(ctx context.Context, rec models.GenerationRecord) error {
	inputs, err := json.Marshal(rec.Inputs)
	if err != nil {
		return errors.NewHistoryWriteFailedError(err)
	}

	_, err = h.db.ExecContext(ctx, insertGeneration,
		rec.ID,
		rec.ToolID,
		inputs,
		rec.IsStructured,
		rec.TitleCount,
		rec.Error,
		rec.Duration.Milliseconds(),
		rec.CreatedAt,
	)
	if err != nil {
		return errors.NewHistoryWriteFailedError(err)
	}
	return nil
}

// Recent returns the newest records for a tool, newest first.
func (h *History) Recent(ctx context.Context, toolID string, limit int) ([]models.GenerationRecord, error) {
	rows, err := h.db.QueryContext(ctx, selectRecent, toolID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.GenerationRecord
	for rows.Next() {
		var rec models.GenerationRecord
		var inputs []byte
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.ToolID, &inputs, &rec.IsStructured, &rec.TitleCount, &rec.Error, &durationMs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		if len(inputs) > 0 {
			if err := json.Unmarshal(inputs, &rec.Inputs); err != nil {
				h.log.Warn("malformed inputs column", map[string]interface{}{"id": rec.ID, "error": err.Error()})
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
