package extraction

import (
	"portal/pkg/domain"
	"portal/pkg/taxonomy"
	"strings"
)

type keyword struct {
	term  string
	lower string
}

type override struct {
	phrase   string
	term     string
	category domain.Category
}

// Classifier is the offline keyword classifier. It is safe for concurrent use.
type Classifier struct {
	taxonomy       *taxonomy.Taxonomy
	keywords       map[domain.Category][]keyword
	overrides      []override
	falsePositives map[string]struct{}
}

// NewClassifier prepares the lower-cased lookup tables of t.
func NewClassifier(t *taxonomy.Taxonomy) *Classifier {
	c := &Classifier{
		taxonomy:       t,
		keywords:       make(map[domain.Category][]keyword, len(domain.Categories())),
		falsePositives: make(map[string]struct{}, len(t.FalsePositives)),
	}
	for _, cat := range domain.Categories() {
		for _, term := range t.Keywords(cat) {
			c.keywords[cat] = append(c.keywords[cat], keyword{term: term, lower: termKey(term)})
		}
	}
	for _, o := range t.Overrides {
		c.overrides = append(c.overrides, override{phrase: termKey(o.Phrase), term: o.Term, category: o.Category})
	}
	for _, fp := range t.FalsePositives {
		c.falsePositives[termKey(fp)] = struct{}{}
	}

	return c
}

// Corpus joins body text and keywords into the single search text used for
// matching and for provider requests.
func Corpus(text string, keywords []string) string {
	parts := make([]string, 0, len(keywords)+1)
	if s := strings.TrimSpace(text); s != "" {
		parts = append(parts, s)
	}
	for _, kw := range keywords {
		if s := strings.TrimSpace(kw); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " ")
}

// Classify tags text and keywords against the taxonomy.
//
// Raw keyword matches are placed first, in category order, and override
// phrases second; the last placement of a term wins, so every term ends up in
// exactly one category. False positives are dropped before scoring and each
// category is truncated to its limit afterwards.
func (c *Classifier) Classify(text string, keywords []string) domain.ExtractedEntities {
	corpus := strings.ToLower(Corpus(text, keywords))

	p := newPlacement()
	if corpus != "" {
		for _, cat := range domain.Categories() {
			for _, kw := range c.keywords[cat] {
				if strings.Contains(corpus, kw.lower) {
					p.assign(kw.term, cat)
				}
			}
		}
		for _, o := range c.overrides {
			if strings.Contains(corpus, o.phrase) {
				p.assign(o.term, o.category)
			}
		}
	}
	p.dropKeys(c.falsePositives)

	return p.materialize(c.taxonomy.Limits, c.taxonomy.Confidence(p.count()))
}
