package merge

import (
	"sort"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
)

// Corpus is the deduplicated word → category assignment produced by one
// merge run. Word identity is exact string equality; no case or Unicode
// normalization is applied.
type Corpus struct {
	assigned map[string]category.Category
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{assigned: make(map[string]category.Category)}
}

// Observe records a candidate classification for a word. A new word takes
// the candidate; an existing word keeps whichever category has the higher
// priority, with ties keeping the first-seen assignment.
func (c *Corpus) Observe(word string, candidate category.Category) {
	existing, ok := c.assigned[word]
	if !ok {
		c.assigned[word] = candidate
		return
	}
	if candidate.Priority() > existing.Priority() {
		c.assigned[word] = candidate
	}
}

// Len returns the number of distinct words.
func (c *Corpus) Len() int {
	return len(c.assigned)
}

// Category returns the word's assigned category.
func (c *Corpus) Category(word string) (category.Category, bool) {
	cat, ok := c.assigned[word]
	return cat, ok
}

// Words returns every distinct word in code-point order.
func (c *Corpus) Words() []string {
	words := make([]string, 0, len(c.assigned))
	for w := range c.assigned {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ByCategory inverts the corpus into six disjoint, sorted word sets whose
// union is the full word set.
func (c *Corpus) ByCategory() map[category.Category][]string {
	sets := make(map[category.Category][]string, len(category.All()))
	for word, cat := range c.assigned {
		sets[cat] = append(sets[cat], word)
	}
	for cat := range sets {
		sort.Strings(sets[cat])
	}
	return sets
}

// CategoryCounts returns the number of words per category.
func (c *Corpus) CategoryCounts() map[category.Category]int {
	counts := make(map[category.Category]int)
	for _, cat := range c.assigned {
		counts[cat]++
	}
	return counts
}
