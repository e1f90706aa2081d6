// Package store defines the run catalog: audit records of past packaging
// runs and their integrity statistics.
package store

import (
	"context"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
)

// Store persists packaging-run records.
type Store interface {
	Close() error

	RecordRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is the audit record of one pipeline run.
type Run struct {
	ID                string
	StartedAt         time.Time
	FinishedAt        time.Time
	TotalBefore       int
	TotalAfter        int
	DuplicatesRemoved int
	CategoryCounts    map[category.Category]int
	FileCounts        map[string]int
}
