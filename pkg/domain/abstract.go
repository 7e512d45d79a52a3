package domain

import (
	"time"

	"github.com/google/uuid"
)

// AbstractID uniquely identifies a submitted abstract.
type AbstractID uuid.UUID

// String returns the canonical textual form of the ID.
func (id AbstractID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id AbstractID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *AbstractID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseAbstractID parses a UUID string into a AbstractID.
func ParseAbstractID(s string) (AbstractID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return AbstractID{}, err
	}

	return AbstractID(u), nil
}

// AbstractStatus represents the review lifecycle state of an abstract.
type AbstractStatus string

const (
	// AbstractStatusPending indicates the abstract was submitted and awaits review.
	AbstractStatusPending AbstractStatus = "pending"
	// AbstractStatusUnderReview indicates a reviewer has picked the abstract up.
	AbstractStatusUnderReview AbstractStatus = "under_review"
	// AbstractStatusApproved indicates the abstract is published.
	AbstractStatusApproved AbstractStatus = "approved"
	// AbstractStatusRejected indicates the abstract was declined; Review.Feedback explains why.
	AbstractStatusRejected AbstractStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AbstractStatus) Valid() bool {
	switch s {
	case AbstractStatusPending, AbstractStatusUnderReview, AbstractStatusApproved, AbstractStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a reviewer may move an abstract from s to next.
// Approved and rejected abstracts are final.
func (s AbstractStatus) CanTransitionTo(next AbstractStatus) bool {
	switch s {
	case AbstractStatusPending:
		return next == AbstractStatusUnderReview || next == AbstractStatusApproved || next == AbstractStatusRejected
	case AbstractStatusUnderReview:
		return next == AbstractStatusApproved || next == AbstractStatusRejected
	default:
		return false
	}
}

// Review holds the metadata of the last review decision.
type Review struct {
	ReviewerID UserID    `json:"reviewerId"`
	ReviewedAt time.Time `json:"reviewedAt"`
	Feedback   string    `json:"feedback,omitempty"`
}

// Abstract is a research summary submitted to the portal.
type Abstract struct {
	// ID is the unique identifier of the abstract.
	ID AbstractID `json:"id"`
	// AuthorID is the user who submitted the abstract and owns it.
	AuthorID UserID `json:"authorId"`

	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	Department string   `json:"department,omitempty"`
	Body       string   `json:"body"`
	// Keywords are the user-supplied keywords; they are part of the extraction corpus.
	Keywords []string `json:"keywords"`

	// Status is the current lifecycle state.
	Status AbstractStatus `json:"status"`
	// Entities is nil until extraction has run for the abstract.
	Entities *ExtractedEntities `json:"entities,omitempty"`
	// Review is nil until a reviewer acted on the abstract.
	Review *Review `json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the abstract was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
