package telemetry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/ledmeter/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCollectorIsNoop(t *testing.T) {
	collector, err := telemetry.NewService(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	err = collector.Record(context.Background(), &telemetry.Snapshot{})
	assert.NoError(t, err)
	assert.NoError(t, collector.Close())
}

func TestInvalidConfig(t *testing.T) {
	_, err := telemetry.NewService(telemetry.Config{
		Enabled:      true,
		DBPath:       "",
		BatchSize:    64,
		BatchTimeout: 5,
	})
	require.Error(t, err)
}

func TestRecordAndFlushOnClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")

	cfg := telemetry.DefaultConfig()
	cfg.Enabled = true
	cfg.DBPath = dbPath

	collector, err := telemetry.NewService(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		err := collector.Record(ctx, &telemetry.Snapshot{
			Timestamp: time.Now(),
			Source:    "cpu",
			Raw:       float64(i) * 10,
			Smoothed:  float64(i) * 9,
			LitCount:  i,
			Peak:      i,
		})
		require.NoError(t, err)
	}
	require.NoError(t, collector.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 3, count, "buffered snapshots must be flushed on close")
}
