// Command lexivalidate checks the integrity of published JSON artifacts:
// structure, declared counts, and content equivalence between the pretty,
// compact and gzip variants.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cognicore/lexipack/pkg/lexipack"
	"github.com/cognicore/lexipack/pkg/lexipack/artifact"
)

func main() {
	dir := flag.String("dir", ".", "Directory containing the JSON artifacts")
	flag.Parse()

	names := []string{lexipack.JSONName, lexipack.CompactName, lexipack.GzipName}

	failed := false
	docs := make(map[string]artifact.Document)

	for _, name := range names {
		path := filepath.Join(*dir, name)
		data, err := artifact.ReadRaw(path)
		if err != nil {
			log.Printf("FAIL %s: %v", name, err)
			failed = true
			continue
		}
		if err := artifact.ValidateRaw(data); err != nil {
			log.Printf("FAIL %s: %v", name, err)
			failed = true
			continue
		}
		doc, err := artifact.Load(path)
		if err != nil {
			log.Printf("FAIL %s: %v", name, err)
			failed = true
			continue
		}
		docs[name] = doc
		fmt.Printf("OK   %s: %d words, updated %s\n", name, doc.TotalCount, doc.LastUpdateDate)
	}

	// Pairwise content comparison across the variants that loaded.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, okA := docs[names[i]]
			b, okB := docs[names[j]]
			if !okA || !okB {
				continue
			}
			if !artifact.Equivalent(a, b) {
				log.Printf("FAIL %s vs %s: word sets differ", names[i], names[j])
				failed = true
			} else {
				fmt.Printf("OK   %s == %s\n", names[i], names[j])
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
