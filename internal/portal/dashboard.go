package portal

import (
	"context"
	"fmt"
	"portal/pkg/domain"
	"portal/pkg/extraction"
)

// Dashboard aggregates abstract counts and the most frequent entities of
// approved abstracts.
type Dashboard struct {
	Counts        map[domain.AbstractStatus]int64 `json:"counts"`
	Total         int64                           `json:"total"`
	Technologies  []extraction.TermCount          `json:"technologies"`
	Domains       []extraction.TermCount          `json:"domains"`
	Methodologies []extraction.TermCount          `json:"methodologies"`
}

func (p portal) Dashboard(ctx context.Context) (*Dashboard, error) {
	counts, err := p.storage.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count abstracts: %w", err)
	}

	corpus, err := p.storage.EntitiesByStatus(ctx, domain.AbstractStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("could not get approved entities: %w", err)
	}

	out := &Dashboard{Counts: make(map[domain.AbstractStatus]int64, len(counts))}
	for status, n := range counts {
		out.Counts[status] = n
		out.Total += n
	}

	freq := p.classifier.Normalizer().CountTerms(corpus)
	out.Technologies = freq.Top(domain.CategoryTechnology, p.options.TopTerms)
	out.Domains = freq.Top(domain.CategoryDomain, p.options.TopTerms)
	out.Methodologies = freq.Top(domain.CategoryMethodology, p.options.TopTerms)

	return out, nil
}
