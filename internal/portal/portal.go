// Package portal implements the research abstract portal: previewing entity
// extraction, submitting and reviewing abstracts, background re-extraction and
// the dashboard aggregates.
package portal

import (
	"context"
	"fmt"
	"portal/internal/config"
	"portal/pkg/domain"
	"portal/pkg/extraction"
	"portal/pkg/serrors"
	"portal/pkg/storage"
	"portal/pkg/textract"
	"strings"
	"time"
)

// Options configure how extraction jobs are enqueued and how lists are paged.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing an extraction job before marking it failed.
	MaxAttempts int
	// UniquePeriod is the window in which a second extraction job for the same
	// abstract is skipped.
	UniquePeriod time.Duration
	// MaxUploadBytes limits the size of documents passed to ExtractDocument.
	MaxUploadBytes int64
	// TopTerms is the number of terms per category reported by Dashboard.
	TopTerms int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Worker.MaxAttempts,
		UniquePeriod:   cfg.Worker.UniquePeriod,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		TopTerms:       defaultTopTerms,
	}
}

const (
	defaultTopTerms  = 10
	defaultPageLimit = 20
	maxPageLimit     = 100
	activityLimit    = 50
)

// ExtractResult is the outcome of a preview extraction.
type ExtractResult struct {
	// Text is the plain text read from an uploaded document. It is empty for
	// text previews.
	Text     string                   `json:"text,omitempty"`
	Entities domain.ExtractedEntities `json:"entities"`
	Source   extraction.Source        `json:"source"`
}

// portal is the concrete implementation of the Portal interface.
type portal struct {
	options    Options
	storage    storage.Storage
	classifier *extraction.ProviderClassifier
}

func (p portal) Extract(ctx context.Context, text string, keywords []string) (*ExtractResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "text is required")
	}

	entities, source := p.classifier.ClassifyWithSource(ctx, text, cleanList(keywords))

	return &ExtractResult{Entities: entities, Source: source}, nil
}

// ExtractDocument reads the text of an uploaded PDF, HTML, Markdown or plain
// text document and classifies it.
func (p portal) ExtractDocument(ctx context.Context,
	contentType string,
	data []byte,
	keywords []string) (*ExtractResult, error) {
	if p.options.MaxUploadBytes > 0 && int64(len(data)) > p.options.MaxUploadBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "document exceeds %d bytes", p.options.MaxUploadBytes)
	}

	text, err := textract.Extract(ctx, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("could not read document: %w", err)
	}
	if text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "document contains no text")
	}

	entities, source := p.classifier.ClassifyWithSource(ctx, text, cleanList(keywords))

	return &ExtractResult{Text: text, Entities: entities, Source: source}, nil
}

// Profile returns the profile of the given user or a not-found error.
func (p portal) Profile(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	profile, err := p.storage.ProfileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return profile, nil
}

// UpsertProfile validates and stores a profile. An empty role defaults to student.
func (p portal) UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	profile.Email = strings.TrimSpace(profile.Email)
	profile.FullName = textract.Clean(profile.FullName)
	if profile.Role == "" {
		profile.Role = domain.RoleStudent
	}

	switch {
	case profile.ID == domain.UserID{}:
		return nil, serrors.With(serrors.ErrBadRequest, "profile id is required")
	case !validEmail(profile.Email):
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email %q", profile.Email)
	case !profile.Role.Valid():
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role %q", profile.Role)
	}

	stored, err := p.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("could not upsert profile: %w", err)
	}

	return stored, nil
}

// New creates a new Portal backed by the provided storage and classifier and
// configured with the given options.
func New(storage storage.Storage, classifier *extraction.ProviderClassifier, options Options) Portal {
	if options.TopTerms <= 0 {
		options.TopTerms = defaultTopTerms
	}

	return &portal{
		options:    options,
		storage:    storage,
		classifier: classifier,
	}
}
