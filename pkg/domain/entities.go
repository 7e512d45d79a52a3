package domain

// Category is one of the three entity buckets produced by extraction.
type Category string

const (
	CategoryTechnology  Category = "technology"
	CategoryDomain      Category = "domain"
	CategoryMethodology Category = "methodology"
)

// Categories lists every category in classification order. Order matters:
// keyword lists are matched in this order and ties go to the earlier bucket.
func Categories() []Category {
	return []Category{CategoryTechnology, CategoryDomain, CategoryMethodology}
}

// Annotation is a single entity spotted by the external annotation provider.
type Annotation struct {
	Spot       string   `json:"spot"`
	Label      string   `json:"label"`
	Title      string   `json:"title,omitempty"`
	URI        string   `json:"uri,omitempty"`
	Abstract   string   `json:"abstract,omitempty"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Types      []string `json:"types,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Confidence float64  `json:"confidence"`
}

// Name returns the best human-readable name the provider gave for the entity.
func (a Annotation) Name() string {
	switch {
	case a.Label != "":
		return a.Label
	case a.Title != "":
		return a.Title
	default:
		return a.Spot
	}
}

// ExtractedEntities is the result of tagging one abstract. A term appears in
// at most one of the three lists.
type ExtractedEntities struct {
	Technologies  []string `json:"technologies"`
	Domains       []string `json:"domains"`
	Methodologies []string `json:"methodologies"`
	// Confidence is a heuristic score in [0,1], not a calibrated probability.
	Confidence float64 `json:"confidence"`
	// RawEntities holds the provider annotations the result was built from.
	// It is empty when the local classifier produced the result.
	RawEntities []Annotation `json:"rawEntities,omitempty"`
}

// Terms returns the terms placed in the given category.
func (e ExtractedEntities) Terms(c Category) []string {
	switch c {
	case CategoryTechnology:
		return e.Technologies
	case CategoryDomain:
		return e.Domains
	case CategoryMethodology:
		return e.Methodologies
	default:
		return nil
	}
}

// Total returns the number of terms across all categories.
func (e ExtractedEntities) Total() int {
	return len(e.Technologies) + len(e.Domains) + len(e.Methodologies)
}
