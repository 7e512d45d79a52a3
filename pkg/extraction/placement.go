package extraction

import (
	"portal/pkg/domain"
	"portal/pkg/taxonomy"
	"strings"
)

// placement is an ordered term→category mapping. A term lives in exactly one
// category; assigning it elsewhere moves it to the end of the new category.
type placement struct {
	byKey map[string]domain.Category
	lists map[domain.Category][]string
}

func newPlacement() *placement {
	return &placement{
		byKey: make(map[string]domain.Category),
		lists: make(map[domain.Category][]string, len(domain.Categories())),
	}
}

func termKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func (p *placement) assign(term string, c domain.Category) {
	key := termKey(term)
	if key == "" {
		return
	}
	if cur, ok := p.byKey[key]; ok {
		if cur == c {
			return
		}
		p.remove(key, cur)
	}
	p.byKey[key] = c
	p.lists[c] = append(p.lists[c], term)
}

func (p *placement) remove(key string, c domain.Category) {
	list := p.lists[c]
	for i, t := range list {
		if termKey(t) == key {
			p.lists[c] = append(list[:i:i], list[i+1:]...)

			break
		}
	}
	delete(p.byKey, key)
}

// dropKeys removes every term whose lower-cased key is in keys.
func (p *placement) dropKeys(keys map[string]struct{}) {
	for key, c := range p.byKey {
		if _, ok := keys[key]; ok {
			p.remove(key, c)
		}
	}
}

func (p *placement) count() int {
	return len(p.byKey)
}

// materialize copies the placement into ExtractedEntities, truncating each
// category to its limit. Categories without terms are empty, never nil.
func (p *placement) materialize(limits taxonomy.Limits, confidence float64) domain.ExtractedEntities {
	take := func(c domain.Category) []string {
		list := p.lists[c]
		if limit := limits.For(c); len(list) > limit {
			list = list[:limit]
		}
		out := make([]string, len(list))
		copy(out, list)

		return out
	}

	return domain.ExtractedEntities{
		Technologies:  take(domain.CategoryTechnology),
		Domains:       take(domain.CategoryDomain),
		Methodologies: take(domain.CategoryMethodology),
		Confidence:    confidence,
	}
}
