package portal

import (
	"context"
	"portal/pkg/domain"
)

//go:generate mockgen -package mockportal -source=interface.go -destination=mock/mockportal.go *
type Portal interface {
	Extract(ctx context.Context, text string, keywords []string) (*ExtractResult, error)
	ExtractDocument(ctx context.Context, contentType string, data []byte, keywords []string) (*ExtractResult, error)

	Submit(ctx context.Context, caller domain.Profile, req SubmitRequest) (*domain.Abstract, error)
	Get(ctx context.Context, caller domain.Profile, ID domain.AbstractID) (*domain.Abstract, error)
	List(ctx context.Context, caller domain.Profile, req ListRequest) ([]domain.Abstract, string, error)
	Delete(ctx context.Context, caller domain.Profile, ID domain.AbstractID) error
	Review(ctx context.Context, caller domain.Profile, ID domain.AbstractID, req ReviewRequest) (*domain.Abstract, error)
	ReExtract(ctx context.Context, caller domain.Profile, ID domain.AbstractID) (*domain.Abstract, error)
	Activity(ctx context.Context, caller domain.Profile, ID domain.AbstractID) ([]domain.ActivityLog, error)
	ApplyExtraction(ctx context.Context, ID domain.AbstractID) (*domain.Abstract, error)

	Dashboard(ctx context.Context) (*Dashboard, error)

	Profile(ctx context.Context, ID domain.UserID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
}
