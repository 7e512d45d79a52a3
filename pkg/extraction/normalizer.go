package extraction

import (
	"portal/pkg/domain"
	"portal/pkg/taxonomy"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// minTermLength is the shortest term the normalizer keeps, in runes.
const minTermLength = 3

// Normalizer canonicalises raw terms so that different spellings of the same
// entity fold into one display string. It is safe for concurrent use.
type Normalizer struct {
	falsePositives map[string]struct{}
	markers        []string
	synonyms       map[string]string
	// canonical maps the lower-cased spelling of every taxonomy term and
	// synonym target to its display form so normalization is idempotent.
	canonical map[string]string
	limits    taxonomy.Limits
}

// NewNormalizer builds a Normalizer from the false positives, institution
// markers, synonyms and keyword spellings of t.
func NewNormalizer(t *taxonomy.Taxonomy) *Normalizer {
	n := &Normalizer{
		falsePositives: make(map[string]struct{}, len(t.FalsePositives)),
		synonyms:       make(map[string]string, len(t.Synonyms)),
		canonical:      make(map[string]string),
		limits:         t.Limits,
	}
	for _, fp := range t.FalsePositives {
		n.falsePositives[termKey(fp)] = struct{}{}
	}
	for _, m := range t.InstitutionMarkers {
		if m = termKey(m); m != "" {
			n.markers = append(n.markers, m)
		}
	}
	for raw, canonical := range t.Synonyms {
		n.synonyms[termKey(raw)] = canonical
		n.canonical[termKey(canonical)] = canonical
	}
	for _, c := range domain.Categories() {
		for _, term := range t.Keywords(c) {
			n.canonical[termKey(term)] = term
		}
	}
	for _, o := range t.Overrides {
		n.canonical[termKey(o.Term)] = o.Term
	}

	return n
}

// clean applies NFKC, strips control characters and collapses whitespace.
func clean(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// Normalize returns the display form of term, or false when the term must be
// dropped: it is shorter than three characters, is a false positive or names
// an institution. Synonyms fold to their target and known taxonomy terms keep
// their taxonomy spelling; anything else gets each word capitalised.
func (n *Normalizer) Normalize(term string) (string, bool) {
	cleaned := clean(term)
	if utf8.RuneCountInString(cleaned) < minTermLength {
		return "", false
	}

	key := strings.ToLower(cleaned)
	if _, ok := n.falsePositives[key]; ok {
		return "", false
	}
	for _, m := range n.markers {
		if strings.Contains(key, m) {
			return "", false
		}
	}
	if canonical, ok := n.synonyms[key]; ok {
		return canonical, true
	}
	if canonical, ok := n.canonical[key]; ok {
		return canonical, true
	}

	// a Caser keeps state and must not be shared between goroutines
	return cases.Title(language.English, cases.NoLower).String(cleaned), true
}

// Canonicalize brings entities produced outside the classifiers into the
// same shape the classifiers emit. Every term goes through Normalize and is
// dropped when Normalize rejects it. Each term is then placed in a single
// category, where the last placement in category order wins. Finally every
// category is truncated to its limit. Confidence and RawEntities are kept.
func (n *Normalizer) Canonicalize(e domain.ExtractedEntities) domain.ExtractedEntities {
	p := newPlacement()
	for _, c := range domain.Categories() {
		for _, raw := range e.Terms(c) {
			if term, ok := n.Normalize(raw); ok {
				p.assign(term, c)
			}
		}
	}

	out := p.materialize(n.limits, e.Confidence)
	out.RawEntities = e.RawEntities

	return out
}

// TermCount is the number of abstracts mentioning a normalized term.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TermFrequencies holds per-category term counts, most frequent first.
type TermFrequencies map[domain.Category][]TermCount

// Top returns at most n entries of the given category.
func (f TermFrequencies) Top(c domain.Category, n int) []TermCount {
	list := f[c]
	if n >= 0 && len(list) > n {
		list = list[:n]
	}

	return list
}

// CountTerms folds every term of every ExtractedEntities through Normalize and
// counts, per category, how many entries mention it. A term is counted at
// most once per entry and category. Ties are ordered alphabetically.
func (n *Normalizer) CountTerms(corpus []domain.ExtractedEntities) TermFrequencies {
	counts := make(map[domain.Category]map[string]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		counts[c] = make(map[string]int)
	}

	for _, e := range corpus {
		for _, c := range domain.Categories() {
			seen := make(map[string]struct{})
			for _, raw := range e.Terms(c) {
				term, ok := n.Normalize(raw)
				if !ok {
					continue
				}
				if _, dup := seen[term]; dup {
					continue
				}
				seen[term] = struct{}{}
				counts[c][term]++
			}
		}
	}

	out := make(TermFrequencies, len(counts))
	for c, byTerm := range counts {
		list := make([]TermCount, 0, len(byTerm))
		for term, count := range byTerm {
			list = append(list, TermCount{Term: term, Count: count})
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Count != list[j].Count {
				return list[i].Count > list[j].Count
			}

			return list[i].Term < list[j].Term
		})
		out[c] = list
	}

	return out
}
