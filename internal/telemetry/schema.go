package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/ledmeter/internal/errors"
)

const insertSnapshotSQL = `
    INSERT INTO snapshots (
        timestamp, source, raw, smoothed, lit_count, peak
    ) VALUES (?, ?, ?, ?, ?, ?)
`

func initSchema(db *sql.DB) error {
	errFactory := errors.New()

	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            timestamp INTEGER NOT NULL,
            source TEXT NOT NULL,
            raw REAL NOT NULL,
            smoothed REAL NOT NULL,
            lit_count INTEGER NOT NULL,
            peak INTEGER NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_snapshots_timestamp ON snapshots(timestamp);
    `)
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	return nil
}
