// Package artifact builds, serializes and validates the distribution
// artifacts: per-category text files, the combined JSON document and its
// compact and gzip variants.
package artifact

import (
	"fmt"
	"time"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/internalerr"
	"github.com/cognicore/lexipack/pkg/lexipack/merge"
)

// DefaultDescription is embedded in the combined JSON document.
const DefaultDescription = "合并后的敏感词库，包含政治类、色情类、暴力类、赌博类、广告类等多种类型的敏感词汇"

// Document is the combined JSON distribution artifact.
type Document struct {
	LastUpdateDate string            `json:"lastUpdateDate"`
	TotalCount     int               `json:"totalCount"`
	Description    string            `json:"description,omitempty"`
	Categories     map[string]string `json:"categories,omitempty"`
	Words          []string          `json:"words"`
}

// NewDocument builds the combined document from a finalized corpus. The
// timestamp is passed in so repeated runs over identical input stay
// byte-identical.
func NewDocument(corpus *merge.Corpus, now time.Time) Document {
	words := corpus.Words()
	return Document{
		LastUpdateDate: now.Format("2006/01/02"),
		TotalCount:     len(words),
		Description:    DefaultDescription,
		Categories:     category.Labels(),
		Words:          words,
	}
}

// Validate checks the document's internal consistency. Any mismatch is a
// fatal validation failure; it is never silently corrected.
func (d Document) Validate() error {
	if d.LastUpdateDate == "" {
		return fmt.Errorf("%w: lastUpdateDate is empty", internalerr.ErrValidation)
	}
	if d.TotalCount != len(d.Words) {
		return fmt.Errorf("%w: totalCount is %d but words has %d entries",
			internalerr.ErrValidation, d.TotalCount, len(d.Words))
	}

	seen := make(map[string]struct{}, len(d.Words))
	for i, w := range d.Words {
		if w == "" {
			return fmt.Errorf("%w: empty word at index %d", internalerr.ErrValidation, i)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: duplicate word %q", internalerr.ErrValidation, w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

// Equivalent reports whether two documents carry the same word set. This
// is the contract between the pretty, compact and gzip artifacts.
func Equivalent(a, b Document) bool {
	if len(a.Words) != len(b.Words) {
		return false
	}
	set := make(map[string]struct{}, len(a.Words))
	for _, w := range a.Words {
		set[w] = struct{}{}
	}
	for _, w := range b.Words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
