// Package merge reads all source word lists, reconciles per-word
// classification using filename hints and pattern matching, and produces
// the deduplicated, categorized corpus.
package merge

import (
	"fmt"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/classify"
)

// Merger runs one classification-and-merge pass. State is owned
// exclusively by the pass; the merger itself is reusable.
type Merger struct {
	classifier *classify.Classifier
}

// NewMerger creates a Merger over the given classifier. A nil classifier
// falls back to the built-in rules.
func NewMerger(c *classify.Classifier) *Merger {
	if c == nil {
		c = classify.New(nil)
	}
	return &Merger{classifier: c}
}

// Result holds the corpus together with the bookkeeping the statistics
// builder needs. Warnings record recovered per-file failures.
type Result struct {
	Corpus     *Corpus
	FileCounts map[string]int
	FileOrder  []string
	Warnings   []string
}

// MergeSources merges in-memory sources in the order given. Results are
// order-independent except for which occurrence counts as first-seen on
// true ties, where the category is identical either way.
func (m *Merger) MergeSources(sources []Source) *Result {
	res := &Result{
		Corpus:     NewCorpus(),
		FileCounts: make(map[string]int, len(sources)),
	}

	for _, src := range sources {
		hint := classify.HintFor(src.Name)
		tokens := Tokenize(src.Content)

		res.FileCounts[src.Name] = len(tokens)
		res.FileOrder = append(res.FileOrder, src.Name)

		for _, word := range tokens {
			res.Corpus.Observe(word, m.candidate(word, hint))
		}
	}
	return res
}

// candidate picks the category proposed for one occurrence of a word: the
// file hint when it is one of the three strong hint categories, otherwise
// the word's own pattern classification.
func (m *Merger) candidate(word string, hint category.Category) category.Category {
	switch hint {
	case category.Political, category.Pornographic, category.Violent:
		return hint
	default:
		return m.classifier.Classify(word)
	}
}

// MergeDir reads every usable file under dir and merges them. Unreadable
// or undecodable files are skipped with a warning; a missing or empty
// directory produces an empty result, which the caller must treat as
// fatal before writing any output.
func (m *Merger) MergeDir(dir string) *Result {
	paths := ListSources(dir)

	var sources []Source
	var warnings []string
	for _, path := range paths {
		src, err := ReadSource(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}
		sources = append(sources, src)
	}

	res := m.MergeSources(sources)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}
