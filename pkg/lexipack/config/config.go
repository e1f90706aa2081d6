// Package config loads optional YAML configuration for the pipeline.
// Absent files fall back to the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/internalerr"
)

// Rules is the on-disk shape of a custom rule table: category name →
// ordered list of regular expressions.
type Rules struct {
	Political    []string `yaml:"political"`
	Pornographic []string `yaml:"pornographic"`
	Violent      []string `yaml:"violent"`
	Gambling     []string `yaml:"gambling"`
	Advertising  []string `yaml:"advertising"`
}

// LoadRules loads a rule table from a YAML file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	return &r, nil
}

// Exprs converts the loaded table into the form the pattern matcher
// consumes.
func (r *Rules) Exprs() map[category.Category][]string {
	return map[category.Category][]string{
		category.Political:    r.Political,
		category.Pornographic: r.Pornographic,
		category.Violent:      r.Violent,
		category.Gambling:     r.Gambling,
		category.Advertising:  r.Advertising,
	}
}

// Expected is the on-disk shape of externally supplied per-category
// expected counts, used for drift warnings.
type Expected struct {
	Counts map[string]int `yaml:"counts"`
}

// LoadExpected loads expected category counts from a YAML file.
func LoadExpected(path string) (map[category.Category]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var e Expected
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	counts := make(map[category.Category]int, len(e.Counts))
	for name, n := range e.Counts {
		cat, err := category.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
		}
		counts[cat] = n
	}
	return counts, nil
}
