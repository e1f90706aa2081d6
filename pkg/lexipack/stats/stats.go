// Package stats derives the integrity statistics for a finalized corpus.
package stats

import (
	"sort"
	"unicode/utf8"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/merge"
)

// Statistics is a read-only snapshot of counts computed once after the
// corpus is finalized.
type Statistics struct {
	TotalBefore       int
	TotalAfter        int
	DuplicatesRemoved int
	FileCounts        map[string]int
	CategoryCounts    map[category.Category]int
}

// Build computes the statistics for a merge result.
func Build(res *merge.Result) Statistics {
	totalBefore := 0
	for _, n := range res.FileCounts {
		totalBefore += n
	}

	return Statistics{
		TotalBefore:       totalBefore,
		TotalAfter:        res.Corpus.Len(),
		DuplicatesRemoved: totalBefore - res.Corpus.Len(),
		FileCounts:        res.FileCounts,
		CategoryCounts:    res.Corpus.CategoryCounts(),
	}
}

// DedupRate returns the share of raw tokens removed as duplicates, as a
// percentage. Zero input yields zero.
func (s Statistics) DedupRate() float64 {
	if s.TotalBefore == 0 {
		return 0
	}
	return float64(s.DuplicatesRemoved) / float64(s.TotalBefore) * 100
}

// CategoryPercent returns a category's share of the deduplicated corpus,
// as a percentage.
func (s Statistics) CategoryPercent(cat category.Category) float64 {
	if s.TotalAfter == 0 {
		return 0
	}
	return float64(s.CategoryCounts[cat]) / float64(s.TotalAfter) * 100
}

// LengthBucket is one entry of the word-length histogram.
type LengthBucket struct {
	Length int
	Count  int
}

// LengthHistogram buckets words by rune length in ascending length order.
func LengthHistogram(words []string) []LengthBucket {
	counts := make(map[int]int)
	for _, w := range words {
		counts[utf8.RuneCountInString(w)]++
	}

	buckets := make([]LengthBucket, 0, len(counts))
	for length, count := range counts {
		buckets = append(buckets, LengthBucket{Length: length, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Length < buckets[j].Length })
	return buckets
}
