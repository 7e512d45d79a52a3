package portal

import (
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"portal/pkg/textract"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength    = 300
	maxBodyLength     = 20000
	maxKeywords       = 15
	maxAuthors        = 20
	maxFeedbackLength = 5000
)

// SubmitRequest carries a new abstract. Entities is optional; when it is nil
// an extraction job is enqueued.
type SubmitRequest struct {
	Title      string                    `json:"title"`
	Authors    []string                  `json:"authors"`
	Department string                    `json:"department"`
	Body       string                    `json:"body"`
	Keywords   []string                  `json:"keywords"`
	Entities   *domain.ExtractedEntities `json:"entities,omitempty"`
}

// normalize trims the request fields and validates them.
func (r *SubmitRequest) normalize() error {
	r.Title = textract.Clean(r.Title)
	r.Department = textract.Clean(r.Department)
	r.Body = strings.TrimSpace(r.Body)
	r.Authors = cleanList(r.Authors)
	r.Keywords = cleanList(r.Keywords)

	switch {
	case r.Title == "":
		return serrors.With(serrors.ErrBadRequest, "title is required")
	case utf8.RuneCountInString(r.Title) > maxTitleLength:
		return serrors.With(serrors.ErrBadRequest, "title must be at most %d characters", maxTitleLength)
	case r.Body == "":
		return serrors.With(serrors.ErrBadRequest, "body is required")
	case utf8.RuneCountInString(r.Body) > maxBodyLength:
		return serrors.With(serrors.ErrBadRequest, "body must be at most %d characters", maxBodyLength)
	case len(r.Keywords) > maxKeywords:
		return serrors.With(serrors.ErrBadRequest, "at most %d keywords are allowed", maxKeywords)
	case len(r.Authors) > maxAuthors:
		return serrors.With(serrors.ErrBadRequest, "at most %d authors are allowed", maxAuthors)
	}

	if r.Entities != nil && (r.Entities.Confidence < 0 || r.Entities.Confidence > 1) {
		return serrors.With(serrors.ErrBadRequest, "entity confidence must be between 0 and 1")
	}

	return nil
}

// ReviewRequest carries a reviewer's decision.
type ReviewRequest struct {
	Decision domain.AbstractStatus `json:"decision"`
	Feedback string                `json:"feedback"`
}

func (r *ReviewRequest) normalize() error {
	r.Feedback = strings.TrimSpace(r.Feedback)

	switch r.Decision {
	case domain.AbstractStatusUnderReview, domain.AbstractStatusApproved:
	case domain.AbstractStatusRejected:
		if r.Feedback == "" {
			return serrors.With(serrors.ErrBadRequest, "feedback is required when rejecting")
		}
	default:
		return serrors.With(serrors.ErrBadRequest, "invalid decision %q", r.Decision)
	}

	if utf8.RuneCountInString(r.Feedback) > maxFeedbackLength {
		return serrors.With(serrors.ErrBadRequest, "feedback must be at most %d characters", maxFeedbackLength)
	}

	return nil
}

// ListRequest filters a page of abstracts. Cursor is the RFC3339 timestamp
// returned with the previous page.
type ListRequest struct {
	Status domain.AbstractStatus
	Mine   bool
	Cursor string
	Limit  uint
}

// cleanList trims every entry, drops blanks and removes case-insensitive
// duplicates while keeping the first spelling.
func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		v = textract.Clean(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}

func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')

	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\n") && strings.Count(s, "@") == 1
}
