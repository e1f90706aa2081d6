// Package classify assigns a single word to a category and infers a
// dominant category from a source file's name.
package classify

import (
	"strings"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/patterns"
)

// order is the fixed first-match precedence for single-word
// classification. It is distinct from category.Priority, which is only
// consulted during merge conflict resolution; the two happen to rank the
// categories identically and a test asserts they stay that way.
var order = []category.Category{
	category.Political,
	category.Pornographic,
	category.Violent,
	category.Gambling,
	category.Advertising,
}

// Classifier classifies individual words against a shared Ruleset.
type Classifier struct {
	rules *patterns.Ruleset
}

// New creates a Classifier over the given rules. A nil ruleset falls back
// to the built-in defaults.
func New(rules *patterns.Ruleset) *Classifier {
	if rules == nil {
		rules = patterns.Default()
	}
	return &Classifier{rules: rules}
}

// Classify returns the first category whose rules match the word,
// or Others when nothing matches. Empty input is filtered upstream by the
// merger and never reaches this function.
func (c *Classifier) Classify(word string) category.Category {
	for _, cat := range order {
		if c.rules.Matches(word, cat) {
			return cat
		}
	}
	return category.Others
}

// hint pairs a filename marker with the category it signals. ASCII
// markers are checked against the lowercased filename; Chinese markers
// are exact substrings.
type hint struct {
	marker string
	ascii  bool
	cat    category.Category
}

// Hint order matters: the first marker found wins. 贪腐 and 民生 map to
// political because corruption and livelihood lists are political in
// practice.
var hints = []hint{
	{"色情", false, category.Pornographic},
	{"porn", true, category.Pornographic},
	{"暴恐", false, category.Violent},
	{"暴力", false, category.Violent},
	{"violent", true, category.Violent},
	{"反动", false, category.Political},
	{"政治", false, category.Political},
	{"political", true, category.Political},
	{"贪腐", false, category.Political},
	{"民生", false, category.Political},
	{"赌", false, category.Gambling},
	{"gambling", true, category.Gambling},
	{"广告", false, category.Advertising},
	{"ad", true, category.Advertising},
}

// HintFor maps a source filename to its a-priori dominant category,
// defaulting to Others. Total: every filename resolves to something.
func HintFor(filename string) category.Category {
	lower := strings.ToLower(filename)
	for _, h := range hints {
		if h.ascii {
			if strings.Contains(lower, h.marker) {
				return h.cat
			}
		} else if strings.Contains(filename, h.marker) {
			return h.cat
		}
	}
	return category.Others
}
