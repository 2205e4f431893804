// Package events persists refresh run history to SQLite.
package events

import (
	"database/sql"
	"fmt"
	"time"
)

// Schema creates the refresh history table.
const Schema = `
CREATE TABLE IF NOT EXISTS refreshes (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	entry_count INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_refreshes_started ON refreshes(started_at);
`

// RefreshRecord describes one completed refresh run.
type RefreshRecord struct {
	ID         int64     `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	EntryCount int       `json:"entry_count"`
	Error      string    `json:"error,omitempty"`
}

// RefreshLog persists refresh runs.
type RefreshLog struct {
	db *sql.DB
}

// NewRefreshLog creates a refresh log.
func NewRefreshLog(db *sql.DB) *RefreshLog {
	return &RefreshLog{db: db}
}

// Append persists a record and returns its ID.
func (l *RefreshLog) Append(r RefreshRecord) (int64, error) {
	result, err := l.db.Exec(`
		INSERT INTO refreshes (started_at, finished_at, entry_count, error)
		VALUES (?, ?, ?, ?)`,
		r.StartedAt, r.FinishedAt, r.EntryCount, r.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("insert refresh: %w", err)
	}
	return result.LastInsertId()
}

// Recent returns the latest records, newest first.
func (l *RefreshLog) Recent(limit int) ([]RefreshRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT id, started_at, finished_at, entry_count, error
		FROM refreshes
		ORDER BY id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query refreshes: %w", err)
	}
	defer rows.Close()

	var records []RefreshRecord
	for rows.Next() {
		var r RefreshRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.EntryCount, &r.Error); err != nil {
			return nil, fmt.Errorf("scan refresh: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Prune removes records older than the given duration.
func (l *RefreshLog) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := l.db.Exec(`DELETE FROM refreshes WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune refreshes: %w", err)
	}
	return result.RowsAffected()
}
