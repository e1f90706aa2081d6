// Package lexipack wires the classification-and-merge pipeline end to
// end: source word lists in, verified distribution artifacts out.
package lexipack

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexipack/pkg/lexipack/artifact"
	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/internalerr"
	"github.com/cognicore/lexipack/pkg/lexipack/merge"
	"github.com/cognicore/lexipack/pkg/lexipack/report"
	"github.com/cognicore/lexipack/pkg/lexipack/stats"
	"github.com/cognicore/lexipack/pkg/lexipack/store"
)

// Artifact file names, matching the published distribution layout.
const (
	JSONName     = "merged_sensitive_words.json"
	CompactName  = "merged_sensitive_words_compressed.json"
	GzipName     = "merged_sensitive_words_compressed.json.gz"
	WordListName = "merged_sensitive_words.txt"
	CombinedName = "complete_sensitive_words.txt"
	StatsName    = "statistics.txt"
	ReadmeName   = "README.md"
)

// Pipeline is the batch packaging pipeline. A run either completes or
// aborts on the first fatal error; no output is written for an empty
// corpus.
type Pipeline struct {
	merger   *merge.Merger
	expected map[category.Category]int
	catalog  store.Store
	now      func() time.Time
	entropy  *ulid.MonotonicEntropy
}

// Options configures a Pipeline.
type Options struct {
	Merger   *merge.Merger
	Expected map[category.Category]int
	Catalog  store.Store      // optional run catalog
	Now      func() time.Time // optional clock override for reproducible output
}

// New creates a Pipeline with the given dependencies.
func New(opts Options) *Pipeline {
	m := opts.Merger
	if m == nil {
		m = merge.NewMerger(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		merger:   m,
		expected: opts.Expected,
		catalog:  opts.Catalog,
		now:      now,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// RunResult summarizes one completed run.
type RunResult struct {
	RunID            string
	Stats            stats.Statistics
	Document         artifact.Document
	Warnings         []string
	ExpectedWarnings []string
}

// Run merges srcDir, writes all artifacts under outDir and verifies them.
func (p *Pipeline) Run(ctx context.Context, srcDir, outDir string) (*RunResult, error) {
	started := p.now()

	res := p.merger.MergeDir(srcDir)
	if res.Corpus.Len() == 0 {
		return nil, fmt.Errorf("%w: directory %s", internalerr.ErrEmptyCorpus, srcDir)
	}

	st := stats.Build(res)
	doc := artifact.NewDocument(res.Corpus, started)
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if err := p.writeArtifacts(outDir, res.Corpus, doc, st, started); err != nil {
		return nil, err
	}
	if err := verifyArtifacts(outDir, doc); err != nil {
		return nil, err
	}

	out := &RunResult{
		Stats:            st,
		Document:         doc,
		Warnings:         res.Warnings,
		ExpectedWarnings: report.CheckExpected(st, p.expected),
	}

	if p.catalog != nil {
		out.RunID = ulid.MustNew(ulid.Timestamp(started), p.entropy).String()
		run := store.Run{
			ID:                out.RunID,
			StartedAt:         started,
			FinishedAt:        p.now(),
			TotalBefore:       st.TotalBefore,
			TotalAfter:        st.TotalAfter,
			DuplicatesRemoved: st.DuplicatesRemoved,
			CategoryCounts:    st.CategoryCounts,
			FileCounts:        st.FileCounts,
		}
		if err := p.catalog.RecordRun(ctx, run); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
	}

	return out, nil
}

func (p *Pipeline) writeArtifacts(outDir string, corpus *merge.Corpus, doc artifact.Document, st stats.Statistics, now time.Time) error {
	if err := artifact.WriteCategoryFiles(outDir, corpus); err != nil {
		return err
	}
	if err := artifact.WritePretty(filepath.Join(outDir, JSONName), doc); err != nil {
		return err
	}
	if err := artifact.WriteCompact(filepath.Join(outDir, CompactName), doc); err != nil {
		return err
	}
	if err := artifact.WriteGzip(filepath.Join(outDir, GzipName), doc); err != nil {
		return err
	}
	if err := artifact.WriteWordList(filepath.Join(outDir, WordListName), doc.Words, now); err != nil {
		return err
	}
	if err := artifact.WriteCombinedText(filepath.Join(outDir, CombinedName), corpus, now); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, StatsName),
		[]byte(report.Statistics(st, doc.Words, now)), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, ReadmeName),
		[]byte(report.Readme(st, now)), 0o644)
}

// verifyArtifacts re-reads the three JSON artifacts and enforces the
// content-equivalence contract between them.
func verifyArtifacts(outDir string, want artifact.Document) error {
	for _, name := range []string{JSONName, CompactName, GzipName} {
		path := filepath.Join(outDir, name)
		data, err := artifact.ReadRaw(path)
		if err != nil {
			return err
		}
		if err := artifact.ValidateRaw(data); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		got, err := artifact.Load(path)
		if err != nil {
			return err
		}
		if !artifact.Equivalent(want, got) {
			return fmt.Errorf("%w: %s word set differs from corpus", internalerr.ErrValidation, name)
		}
	}
	return nil
}
