package taxonomy_test

import (
	"os"
	"path/filepath"
	"portal/pkg/domain"
	"portal/pkg/taxonomy"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, taxonomy.Default().Validate())
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := taxonomy.Default()
	a.Technologies[0] = "changed"
	a.Synonyms["iot"] = "changed"

	b := taxonomy.Default()
	require.Equal(t, "Machine Learning", b.Technologies[0])
	require.Equal(t, "Internet of Things", b.Synonyms["iot"])
}

func TestConfidence_Tiers(t *testing.T) {
	tx := taxonomy.Default()
	tests := []struct {
		matches int
		want    float64
	}{
		{0, 0.50},
		{2, 0.50},
		{3, 0.65},
		{4, 0.65},
		{5, 0.75},
		{6, 0.75},
		{7, 0.85},
		{9, 0.85},
		{10, 0.95},
		{42, 0.95},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, tx.Confidence(tt.matches), 1e-9, "matches=%d", tt.matches)
	}
}

func TestLimits_For(t *testing.T) {
	l := taxonomy.Default().Limits
	require.Equal(t, 8, l.For(domain.CategoryTechnology))
	require.Equal(t, 6, l.For(domain.CategoryDomain))
	require.Equal(t, 5, l.For(domain.CategoryMethodology))
	require.Equal(t, 0, l.For("unknown"))
}

func TestParse_OverlaysDefaults(t *testing.T) {
	doc := []byte(`
technologies: ["Rust", "WebAssembly"]
synonyms:
  wasm: WebAssembly
limits:
  technologies: 3
  domains: 6
  methodologies: 5
`)
	tx, err := taxonomy.Parse(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"Rust", "WebAssembly"}, tx.Technologies)
	require.Equal(t, 3, tx.Limits.Technologies)
	require.Equal(t, "WebAssembly", tx.Synonyms["wasm"])
	// untouched defaults are kept
	require.Equal(t, "Internet of Things", tx.Synonyms["iot"])
	require.NotEmpty(t, tx.Domains)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown override category": `overrides: [{phrase: "x", term: "X", category: "nonsense"}]`,
		"zero limit":                `limits: {technologies: 0, domains: 6, methodologies: 5}`,
		"unordered tiers":           `confidenceTiers: [{minMatches: 3, score: 0.6}, {minMatches: 10, score: 0.9}]`,
		"score out of range":        `floorConfidence: 1.5`,
		"malformed yaml":            `technologies: [`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := taxonomy.Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yml")
	require.NoError(t, os.WriteFile(path, []byte(`falsePositives: ["foo"]`), 0o600))

	tx, err := taxonomy.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"foo"}, tx.FalsePositives)

	_, err = taxonomy.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
