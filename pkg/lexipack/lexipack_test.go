package lexipack

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/artifact"
	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/internalerr"
	"github.com/cognicore/lexipack/pkg/lexipack/store/memstore"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"政治词库.txt": "习近平\n共产党\n# 注释行\n民主\n",
		"色情词库.txt": "某某内容\n习近平\n",
		"misc.txt": "测试词汇,示例,www.example.com",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPipelineRun(t *testing.T) {
	srcDir := writeSources(t)
	outDir := filepath.Join(t.TempDir(), "out")

	p := New(Options{Now: func() time.Time { return fixedTime }})
	res, err := p.Run(context.Background(), srcDir, outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 习近平 appears twice: once under the political hint, once under the
	// porn hint. Priority keeps it political.
	if res.Stats.TotalBefore != 8 || res.Stats.TotalAfter != 7 {
		t.Errorf("totals = %d/%d, want 8/7", res.Stats.TotalBefore, res.Stats.TotalAfter)
	}
	if res.Document.TotalCount != 7 {
		t.Errorf("TotalCount = %d", res.Document.TotalCount)
	}
	if res.Document.LastUpdateDate != "2024/03/15" {
		t.Errorf("LastUpdateDate = %q", res.Document.LastUpdateDate)
	}
	if res.Stats.CategoryCounts[category.Political] != 3 {
		t.Errorf("political = %d, want 3", res.Stats.CategoryCounts[category.Political])
	}
	if res.Stats.CategoryCounts[category.Pornographic] != 1 {
		t.Errorf("pornographic = %d, want 1", res.Stats.CategoryCounts[category.Pornographic])
	}
	if res.Stats.CategoryCounts[category.Advertising] != 1 {
		t.Errorf("advertising = %d, want 1", res.Stats.CategoryCounts[category.Advertising])
	}
	if res.RunID != "" {
		t.Errorf("RunID = %q, want empty without a catalog", res.RunID)
	}

	for _, name := range []string{
		JSONName, CompactName, GzipName, WordListName, CombinedName,
		StatsName, ReadmeName, "political.txt", "pornographic.txt",
		"advertising.txt", "others.txt",
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "gambling.txt")); !os.IsNotExist(err) {
		t.Error("empty categories should not produce files")
	}
}

func TestPipelineArtifactsEquivalent(t *testing.T) {
	srcDir := writeSources(t)
	outDir := filepath.Join(t.TempDir(), "out")

	p := New(Options{Now: func() time.Time { return fixedTime }})
	if _, err := p.Run(context.Background(), srcDir, outDir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	pretty, err := artifact.Load(filepath.Join(outDir, JSONName))
	if err != nil {
		t.Fatalf("load pretty: %v", err)
	}
	compact, err := artifact.Load(filepath.Join(outDir, CompactName))
	if err != nil {
		t.Fatalf("load compact: %v", err)
	}
	gz, err := artifact.Load(filepath.Join(outDir, GzipName))
	if err != nil {
		t.Fatalf("load gzip: %v", err)
	}

	if !artifact.Equivalent(pretty, compact) || !artifact.Equivalent(pretty, gz) {
		t.Error("all three artifacts must carry the same word set")
	}
	if err := pretty.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestPipelineEmptyCorpus(t *testing.T) {
	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "empty.txt"), []byte("# 只有注释\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "out")

	p := New(Options{})
	_, err := p.Run(context.Background(), srcDir, outDir)
	if !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Fatalf("err = %v, want ErrEmptyCorpus", err)
	}

	// Fatal before any write: the output directory must not exist.
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("empty corpus must not produce partial output")
	}
}

func TestPipelineMissingSourceDir(t *testing.T) {
	p := New(Options{})
	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "absent"), t.TempDir())
	if !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Fatalf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestPipelineCatalogRecording(t *testing.T) {
	srcDir := writeSources(t)
	outDir := filepath.Join(t.TempDir(), "out")
	catalog := memstore.New()

	p := New(Options{Catalog: catalog, Now: func() time.Time { return fixedTime }})
	res, err := p.Run(context.Background(), srcDir, outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.RunID == "" {
		t.Fatal("RunID should be set when a catalog is configured")
	}

	run, found, err := catalog.GetRun(context.Background(), res.RunID)
	if err != nil || !found {
		t.Fatalf("GetRun: found=%v err=%v", found, err)
	}
	if run.TotalAfter != res.Stats.TotalAfter {
		t.Errorf("catalog TotalAfter = %d, want %d", run.TotalAfter, res.Stats.TotalAfter)
	}
	if run.FileCounts["misc.txt"] != 3 {
		t.Errorf("FileCounts = %v", run.FileCounts)
	}
}

func TestPipelineExpectedWarnings(t *testing.T) {
	srcDir := writeSources(t)
	outDir := filepath.Join(t.TempDir(), "out")

	p := New(Options{
		Expected: map[category.Category]int{category.Political: 100},
		Now:      func() time.Time { return fixedTime },
	})
	res, err := p.Run(context.Background(), srcDir, outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.ExpectedWarnings) != 1 || !strings.Contains(res.ExpectedWarnings[0], "political") {
		t.Errorf("ExpectedWarnings = %v", res.ExpectedWarnings)
	}
}

func TestPipelineSkipsUndecodableFile(t *testing.T) {
	srcDir := writeSources(t)
	if err := os.WriteFile(filepath.Join(srcDir, "broken.txt"), []byte{0x81, 0x20, 0xff, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "out")

	p := New(Options{Now: func() time.Time { return fixedTime }})
	res, err := p.Run(context.Background(), srcDir, outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "broken.txt") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if res.Stats.TotalAfter != 7 {
		t.Errorf("TotalAfter = %d, bad file should be skipped", res.Stats.TotalAfter)
	}
}
