// Command lexipack runs the full packaging pipeline: it merges and
// classifies the source word lists, writes the categorized text files and
// JSON artifacts, and verifies them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"

	"github.com/cognicore/lexipack/pkg/lexipack"
	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/classify"
	"github.com/cognicore/lexipack/pkg/lexipack/config"
	"github.com/cognicore/lexipack/pkg/lexipack/merge"
	"github.com/cognicore/lexipack/pkg/lexipack/store"
	"github.com/cognicore/lexipack/pkg/lexipack/store/sqlite"
)

var (
	infoColor    = color.New(color.FgCyan).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
)

func main() {
	var (
		src      = flag.String("src", "Vocabulary", "Directory of source word lists")
		out      = flag.String("out", "classified_vocabulary", "Output directory for artifacts")
		rules    = flag.String("rules", "", "Optional YAML rule table (defaults to built-in rules)")
		expected = flag.String("expected", "", "Optional YAML expected category counts")
		catalog  = flag.String("catalog", "", "Optional SQLite run catalog path")
		date     = flag.String("date", "", "Override artifact date (YYYY/MM/DD) for reproducible output")
	)
	flag.Parse()

	loader := config.Loader{RulesPath: *rules, ExpectedPath: *expected}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	opts := lexipack.Options{
		Merger:   merge.NewMerger(classify.New(components.Ruleset)),
		Expected: components.Expected,
	}

	if *date != "" {
		fixed, err := time.Parse("2006/01/02", *date)
		if err != nil {
			log.Fatalf("parse -date: %v", err)
		}
		opts.Now = func() time.Time { return fixed }
	}

	ctx := context.Background()

	var cat store.Store
	if *catalog != "" {
		cat, err = sqlite.Open(ctx, *catalog)
		if err != nil {
			log.Fatalf("open catalog %s: %v", *catalog, err)
		}
		defer cat.Close()
		opts.Catalog = cat
	}

	pipeline := lexipack.New(opts)

	fmt.Printf("%s merging word lists from %s\n", infoColor("==>"), *src)
	result, err := pipeline.Run(ctx, *src, *out)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	for _, w := range result.Warnings {
		log.Printf("%s %s", warnColor("warning:"), w)
	}
	for _, w := range result.ExpectedWarnings {
		log.Printf("%s count drift: %s", warnColor("warning:"), w)
	}

	st := result.Stats
	fmt.Printf("%s %d raw words -> %d distinct (%d duplicates removed, %.1f%%)\n",
		successColor("==>"), st.TotalBefore, st.TotalAfter, st.DuplicatesRemoved, st.DedupRate())
	for _, c := range category.All() {
		fmt.Printf("    %-12s %6d (%.1f%%)\n", c, st.CategoryCounts[c], st.CategoryPercent(c))
	}
	if result.RunID != "" {
		fmt.Printf("%s run %s recorded in %s\n", successColor("==>"), result.RunID, *catalog)
	}
	fmt.Printf("%s artifacts written to %s\n", successColor("==>"), *out)
}
