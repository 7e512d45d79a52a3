package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction names an auditable action on an abstract.
type ActivityAction string

const (
	ActivitySubmitted   ActivityAction = "submitted"
	ActivityReviewed    ActivityAction = "reviewed"
	ActivityDeleted     ActivityAction = "deleted"
	ActivityReExtracted ActivityAction = "reextracted"
)

// ActivityLog is an append-only audit record.
type ActivityLog struct {
	ID         uuid.UUID      `json:"id"`
	UserID     UserID         `json:"userId"`
	AbstractID AbstractID     `json:"abstractId"`
	Action     ActivityAction `json:"action"`
	Details    string         `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
