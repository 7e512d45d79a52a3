// Package extraction tags abstract text with technologies, domains and
// methodologies.
//
// Three pieces work together:
//   - Classifier matches text against the keyword lists of a taxonomy.Taxonomy,
//     resolves polysemous terms through the override table and scores the result
//     by match count. It is pure and never fails.
//   - Normalizer canonicalises raw terms for display and counting.
//   - ProviderClassifier asks an external annotator.Client first, reclassifies
//     its annotations with the same heuristics and falls back to the Classifier
//     on any provider failure or empty result.
package extraction
