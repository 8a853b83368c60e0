package config

import (
	"context"
	"database/sql"
	"time"
)

// Schema for the settle_targets table.
const Schema = `
CREATE TABLE IF NOT EXISTS settle_targets (
	id         TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	selector   TEXT NOT NULL,
	timeout_ms INTEGER DEFAULT 30000,
	debug      INTEGER DEFAULT 0,
	status     TEXT DEFAULT 'active',
	updated_at INTEGER NOT NULL
);
`

// LoadTargets reads all active targets from the database.
func LoadTargets(ctx context.Context, db *sql.DB) ([]TargetConfig, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, url, selector, timeout_ms, debug
		FROM settle_targets
		WHERE status = 'active'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []TargetConfig
	for rows.Next() {
		var t TargetConfig
		var timeoutMs int64
		var debugInt int

		if err := rows.Scan(&t.ID, &t.URL, &t.Selector, &timeoutMs, &debugInt); err != nil {
			return nil, err
		}

		t.Timeout = time.Duration(timeoutMs) * time.Millisecond
		t.Debug = debugInt != 0
		targets = append(targets, t)
	}
	return targets, rows.Err()
}
