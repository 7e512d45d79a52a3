// Package taxonomy holds the classification policy used by entity
// extraction: the keyword lists of the three categories, override mappings for
// polysemous terms, false positives, synonym folding and the confidence policy.
//
// A Taxonomy is plain configuration data. Callers construct one with Default or
// Load and inject it into the classifier; nothing in this package keeps global
// mutable state.
package taxonomy

import (
	"errors"
	"fmt"
	"os"
	"portal/pkg/domain"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Override forces Term into Category whenever Phrase occurs in the text.
type Override struct {
	Phrase   string          `yaml:"phrase"`
	Term     string          `yaml:"term"`
	Category domain.Category `yaml:"category"`
}

// Limits caps the number of terms kept per category. Extra matches are
// dropped silently.
type Limits struct {
	Technologies  int `yaml:"technologies"`
	Domains       int `yaml:"domains"`
	Methodologies int `yaml:"methodologies"`
}

// For returns the limit for the given category.
func (l Limits) For(c domain.Category) int {
	switch c {
	case domain.CategoryTechnology:
		return l.Technologies
	case domain.CategoryDomain:
		return l.Domains
	case domain.CategoryMethodology:
		return l.Methodologies
	default:
		return 0
	}
}

// ConfidenceTier maps a minimum number of matched terms to a confidence score.
type ConfidenceTier struct {
	MinMatches int     `yaml:"minMatches"`
	Score      float64 `yaml:"score"`
}

// Taxonomy is the complete classification policy.
type Taxonomy struct {
	Technologies  []string `yaml:"technologies"`
	Domains       []string `yaml:"domains"`
	Methodologies []string `yaml:"methodologies"`

	Overrides []Override `yaml:"overrides"`
	// FalsePositives are dropped when they match a term exactly (case-insensitive).
	FalsePositives []string `yaml:"falsePositives"`
	// InstitutionMarkers drop any normalized term containing them.
	InstitutionMarkers []string `yaml:"institutionMarkers"`
	// Synonyms folds lower-cased raw spellings into one display string.
	Synonyms map[string]string `yaml:"synonyms"`
	// TypeHints maps categories to substrings of provider type tags.
	TypeHints map[domain.Category][]string `yaml:"typeHints"`

	Limits Limits `yaml:"limits"`
	// ConfidenceTiers must be ordered by MinMatches, highest first.
	ConfidenceTiers []ConfidenceTier `yaml:"confidenceTiers"`
	// FloorConfidence is used when no tier matches.
	FloorConfidence float64 `yaml:"floorConfidence"`
	// ProviderConfidenceCap bounds the averaged provider confidence.
	ProviderConfidenceCap float64 `yaml:"providerConfidenceCap"`
}

// Keywords returns the keyword list of the given category.
func (t *Taxonomy) Keywords(c domain.Category) []string {
	switch c {
	case domain.CategoryTechnology:
		return t.Technologies
	case domain.CategoryDomain:
		return t.Domains
	case domain.CategoryMethodology:
		return t.Methodologies
	default:
		return nil
	}
}

// Confidence maps a match count onto the configured tiers.
func (t *Taxonomy) Confidence(matches int) float64 {
	for _, tier := range t.ConfidenceTiers {
		if matches >= tier.MinMatches {
			return tier.Score
		}
	}

	return t.FloorConfidence
}

func validCategory(c domain.Category) bool {
	for _, known := range domain.Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// Validate checks the taxonomy for internal consistency.
func (t *Taxonomy) Validate() error {
	var errs []error

	for _, c := range domain.Categories() {
		if t.Limits.For(c) <= 0 {
			errs = append(errs, fmt.Errorf("limit for %s must be positive", c))
		}
		for i, kw := range t.Keywords(c) {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Errorf("%s keyword %d is empty", c, i))
			}
		}
	}
	for i, o := range t.Overrides {
		if strings.TrimSpace(o.Phrase) == "" || strings.TrimSpace(o.Term) == "" {
			errs = append(errs, fmt.Errorf("override %d needs both phrase and term", i))
		}
		if !validCategory(o.Category) {
			errs = append(errs, fmt.Errorf("override %d has unknown category %q", i, o.Category))
		}
	}
	for c := range t.TypeHints {
		if !validCategory(c) {
			errs = append(errs, fmt.Errorf("type hints for unknown category %q", c))
		}
	}
	if !sort.SliceIsSorted(t.ConfidenceTiers, func(i, j int) bool {
		return t.ConfidenceTiers[i].MinMatches > t.ConfidenceTiers[j].MinMatches
	}) {
		errs = append(errs, errors.New("confidence tiers must be ordered by minMatches, highest first"))
	}
	for _, tier := range t.ConfidenceTiers {
		if tier.Score < 0 || tier.Score > 1 {
			errs = append(errs, fmt.Errorf("confidence tier score %v out of [0,1]", tier.Score))
		}
	}
	if t.FloorConfidence < 0 || t.FloorConfidence > 1 {
		errs = append(errs, fmt.Errorf("floor confidence %v out of [0,1]", t.FloorConfidence))
	}
	if t.ProviderConfidenceCap <= 0 || t.ProviderConfidenceCap > 1 {
		errs = append(errs, fmt.Errorf("provider confidence cap %v out of (0,1]", t.ProviderConfidenceCap))
	}

	return errors.Join(errs...)
}

// Load reads a YAML taxonomy file on top of the default taxonomy. Lists and
// scalars present in the file replace the defaults; synonym and type hint
// maps are merged key by key.
func Load(path string) (*Taxonomy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read taxonomy file: %w", err)
	}

	return Parse(b)
}

// Parse decodes a YAML taxonomy document on top of the default taxonomy.
func Parse(b []byte) (*Taxonomy, error) {
	t := Default()
	if err := yaml.Unmarshal(b, t); err != nil {
		return nil, fmt.Errorf("could not decode taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}

	return t, nil
}
