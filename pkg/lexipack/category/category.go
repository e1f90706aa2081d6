// Package category defines the closed set of sensitive-word categories
// and the total priority order used for merge conflict resolution.
package category

import "fmt"

// Category is one of the six sensitive-word classes. The zero value is
// Others so an uninitialized category never silently outranks a real one.
type Category int

const (
	Others Category = iota
	Advertising
	Gambling
	Violent
	Pornographic
	Political
)

// All returns every category in descending priority order.
func All() []Category {
	return []Category{Political, Pornographic, Violent, Gambling, Advertising, Others}
}

// Priority returns the rank used to resolve conflicting classifications.
// Higher wins: political=6, pornographic=5, violent=4, gambling=3,
// advertising=2, others=1.
func (c Category) Priority() int {
	switch c {
	case Political:
		return 6
	case Pornographic:
		return 5
	case Violent:
		return 4
	case Gambling:
		return 3
	case Advertising:
		return 2
	default:
		return 1
	}
}

// String returns the ASCII name used for file names and JSON keys.
func (c Category) String() string {
	switch c {
	case Political:
		return "political"
	case Pornographic:
		return "pornographic"
	case Violent:
		return "violent"
	case Gambling:
		return "gambling"
	case Advertising:
		return "advertising"
	default:
		return "others"
	}
}

// Label returns the Chinese display name.
func (c Category) Label() string {
	switch c {
	case Political:
		return "政治类"
	case Pornographic:
		return "色情类"
	case Violent:
		return "暴力类"
	case Gambling:
		return "赌博类"
	case Advertising:
		return "广告类"
	default:
		return "其他类"
	}
}

// Level is the recommended moderation action for a category.
type Level string

const (
	LevelBlock  Level = "BLOCK"
	LevelWarn   Level = "WARN"
	LevelReview Level = "REVIEW"
)

// Level returns the moderation level attached to the category in the
// packaged artifacts.
func (c Category) Level() Level {
	switch c {
	case Political, Pornographic, Violent, Gambling:
		return LevelBlock
	case Advertising:
		return LevelWarn
	default:
		return LevelReview
	}
}

// Parse maps an ASCII category name to its Category.
func Parse(name string) (Category, error) {
	for _, c := range All() {
		if c.String() == name {
			return c, nil
		}
	}
	return Others, fmt.Errorf("unknown category %q", name)
}

// Labels returns the name → Chinese label map embedded in the combined
// JSON document.
func Labels() map[string]string {
	labels := make(map[string]string, len(All()))
	for _, c := range All() {
		labels[c.String()] = c.Label()
	}
	return labels
}
