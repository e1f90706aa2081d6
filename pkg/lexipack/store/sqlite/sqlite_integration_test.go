package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteIntegrationRoundTrip tests basic record and retrieve.
func TestSQLiteIntegrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	run := store.Run{
		ID:                "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		StartedAt:         time.Date(2024, 3, 15, 10, 0, 0, 123456000, time.UTC),
		FinishedAt:        time.Date(2024, 3, 15, 10, 0, 2, 0, time.UTC),
		TotalBefore:       6,
		TotalAfter:        5,
		DuplicatesRemoved: 1,
		CategoryCounts: map[category.Category]int{
			category.Political: 3,
			category.Others:    2,
		},
		FileCounts: map[string]int{"a.txt": 3, "b.txt": 3},
	}

	if err := st.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	got, found, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !found {
		t.Fatal("run should be found")
	}

	if !got.StartedAt.Equal(run.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, run.StartedAt)
	}
	if got.TotalBefore != 6 || got.TotalAfter != 5 || got.DuplicatesRemoved != 1 {
		t.Errorf("totals = %+v", got)
	}
	if got.CategoryCounts[category.Political] != 3 {
		t.Errorf("CategoryCounts = %v", got.CategoryCounts)
	}
	if got.FileCounts["b.txt"] != 3 {
		t.Errorf("FileCounts = %v", got.FileCounts)
	}
}

// TestSQLiteIntegrationMissing tests the not-found path.
func TestSQLiteIntegrationMissing(t *testing.T) {
	st := openTestStore(t)

	_, found, err := st.GetRun(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if found {
		t.Error("missing run should report found=false")
	}
}

// TestSQLiteIntegrationListRuns tests ordering and limit.
func TestSQLiteIntegrationListRuns(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := store.Run{
			ID:         fmt.Sprintf("01ARZ3NDEKTSV4RRFFQ69G5FA%d", i),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			TotalAfter: i,
		}
		if err := st.RecordRun(ctx, run); err != nil {
			t.Fatalf("RecordRun %d: %v", i, err)
		}
	}

	runs, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2", len(runs))
	}
	if runs[0].TotalAfter != 2 || runs[1].TotalAfter != 1 {
		t.Errorf("runs should be newest first, got %v then %v", runs[0].ID, runs[1].ID)
	}
}

// TestSQLiteIntegrationDuplicateID verifies the primary key constraint.
func TestSQLiteIntegrationDuplicateID(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	run := store.Run{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", StartedAt: time.Now(), FinishedAt: time.Now()}
	if err := st.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := st.RecordRun(ctx, run); err == nil {
		t.Error("recording the same run ID twice should fail")
	}
}

// TestSQLiteIntegrationReopen verifies the catalog survives process restarts.
func TestSQLiteIntegrationReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	run := store.Run{
		ID:             "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		StartedAt:      time.Now().UTC(),
		FinishedAt:     time.Now().UTC(),
		TotalAfter:     5,
		CategoryCounts: map[category.Category]int{category.Gambling: 5},
	}
	if err := st.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st2, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	got, found, err := st2.GetRun(ctx, run.ID)
	if err != nil || !found {
		t.Fatalf("GetRun after reopen: found=%v err=%v", found, err)
	}
	if got.CategoryCounts[category.Gambling] != 5 {
		t.Errorf("CategoryCounts = %v", got.CategoryCounts)
	}
}
