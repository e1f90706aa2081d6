package config

import (
	"fmt"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/classify"
	"github.com/cognicore/lexipack/pkg/lexipack/patterns"
)

// Loader reads all configuration files and constructs initialized
// components. Empty paths mean defaults.
type Loader struct {
	RulesPath    string
	ExpectedPath string
}

// Components holds everything the pipeline needs from configuration.
type Components struct {
	Ruleset    *patterns.Ruleset
	Classifier *classify.Classifier
	Expected   map[category.Category]int
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.RulesPath != "" {
		rules, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		rs, err := patterns.New(rules.Exprs())
		if err != nil {
			return nil, fmt.Errorf("compile rules: %w", err)
		}
		comp.Ruleset = rs
	} else {
		comp.Ruleset = patterns.Default()
	}
	comp.Classifier = classify.New(comp.Ruleset)

	if l.ExpectedPath != "" {
		expected, err := LoadExpected(l.ExpectedPath)
		if err != nil {
			return nil, fmt.Errorf("load expected counts: %w", err)
		}
		comp.Expected = expected
	}

	return comp, nil
}
