package telemetry

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Snapshot captures one tick of the visualization pipeline.
type Snapshot struct {
	Timestamp time.Time
	Source    string
	Raw       float64
	Smoothed  float64
	LitCount  int
	Peak      int
}
