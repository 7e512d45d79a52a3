// Package annotator defines the contract for remote entity-annotation
// providers used to enrich abstract classification.
package annotator

import (
	"context"
	"portal/pkg/domain"
	"time"
)

// Quota describes the request allowance reported by the provider.
type Quota struct {
	Units     float64   // Units is the cost of the last request.
	Remaining float64   // Remaining is how many units are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets. Zero when the provider sent no quota.
}

// Exhausted reports whether the quota is known to be used up at now.
func (q Quota) Exhausted(now time.Time) bool {
	if q.ResetAt.IsZero() || q.Remaining > 0 {
		return false
	}

	return now.Before(q.ResetAt)
}

// Client annotates free text with named entities.
//
//go:generate mockgen -package mockannotator -source=interface.go -destination=mock/mockannotator.go *
type Client interface {
	// Annotate sends text to the provider and returns the entities it found
	// with a confidence of at least minConfidence, plus the quota reported by
	// the provider.
	Annotate(ctx context.Context, text string, minConfidence float64) ([]domain.Annotation, Quota, error)
}
