package portal

import (
	"context"
	"fmt"
	"portal/pkg/domain"
	"portal/pkg/logger"
	"portal/pkg/serrors"
	"portal/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Submit validates and stores a new pending abstract for the caller.
// Supplied entities are canonicalized like classifier output. When none are
// supplied, or none survive canonicalization, an extraction job is enqueued in
// the same transaction.
func (p portal) Submit(ctx context.Context, caller domain.Profile, req SubmitRequest) (*domain.Abstract, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	if req.Entities != nil {
		canonical := p.classifier.Normalizer().Canonicalize(*req.Entities)
		req.Entities = &canonical
		if canonical.Total() == 0 {
			req.Entities = nil
		}
	}

	var abstract *domain.Abstract
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreAbstract(ctx, domain.Abstract{
			AuthorID:   caller.ID,
			Title:      req.Title,
			Authors:    req.Authors,
			Department: req.Department,
			Body:       req.Body,
			Keywords:   req.Keywords,
			Status:     domain.AbstractStatusPending,
			Entities:   req.Entities,
		})
		if err != nil {
			return fmt.Errorf("could not store abstract: %w", err)
		}
		abstract = stored

		if err := tx.LogActivity(ctx, domain.ActivityLog{
			UserID:     caller.ID,
			AbstractID: stored.ID,
			Action:     domain.ActivitySubmitted,
		}); err != nil {
			return fmt.Errorf("could not log activity: %w", err)
		}

		if stored.Entities == nil {
			if _, err := tx.AddJob(ctx, p.extractionJob(stored.ID), nil); err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit abstract: %w", err)
	}

	logger.Info(ctx, "abstract submitted",
		zap.Stringer("abstractID", abstract.ID),
		zap.Bool("extractionQueued", abstract.Entities == nil))

	return abstract, nil
}

// Get returns an abstract visible to the caller. Approved abstracts are
// visible to everyone, others only to their author and reviewers.
func (p portal) Get(ctx context.Context, caller domain.Profile, id domain.AbstractID) (*domain.Abstract, error) {
	abstract, err := p.storage.AbstractByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get abstract: %w", err)
	}
	if abstract == nil || !canView(caller, abstract) {
		return nil, serrors.With(serrors.ErrNotFound, "abstract not found")
	}

	return abstract, nil
}

// List returns a page of abstracts and the cursor of the next page. Callers
// who cannot review only see their own abstracts or approved ones.
func (p portal) List(ctx context.Context, caller domain.Profile, req ListRequest) ([]domain.Abstract, string, error) {
	filter := storage.AbstractFilter{
		Status: req.Status,
		Limit:  req.Limit,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", req.Status)
	}
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if req.Cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, req.Cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		filter.Cursor = t
	}

	switch {
	case req.Mine:
		filter.AuthorID = &caller.ID
	case caller.Role.CanReview():
	case filter.Status == "" || filter.Status == domain.AbstractStatusApproved:
		filter.Status = domain.AbstractStatusApproved
	default:
		return nil, "", serrors.With(serrors.ErrForbidden, "only reviewers can list %s abstracts", req.Status)
	}

	page, err := p.storage.Abstracts(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("could not list abstracts: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Abstracts, next, nil
}

// Delete soft deletes an abstract. Authors may delete their own pending
// abstracts, admins may delete any.
func (p portal) Delete(ctx context.Context, caller domain.Profile, id domain.AbstractID) error {
	abstract, err := p.Get(ctx, caller, id)
	if err != nil {
		return err
	}

	owner := abstract.AuthorID == caller.ID
	switch {
	case caller.Role == domain.RoleAdmin:
	case owner && abstract.Status == domain.AbstractStatusPending:
	case owner:
		return serrors.With(serrors.ErrConflict, "only pending abstracts can be deleted")
	default:
		return serrors.With(serrors.ErrForbidden, "only the author or an admin can delete an abstract")
	}

	return p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteAbstract(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete abstract: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "abstract not found")
		}

		if err := tx.LogActivity(ctx, domain.ActivityLog{
			UserID:     caller.ID,
			AbstractID: id,
			Action:     domain.ActivityDeleted,
		}); err != nil {
			return fmt.Errorf("could not log activity: %w", err)
		}

		return nil
	})
}

// Review records a reviewer's decision. The update is guarded by the status
// the decision was made against so concurrent reviews cannot both win.
func (p portal) Review(ctx context.Context,
	caller domain.Profile,
	id domain.AbstractID,
	req ReviewRequest) (*domain.Abstract, error) {
	if !caller.Role.CanReview() {
		return nil, serrors.With(serrors.ErrForbidden, "only faculty and admins can review abstracts")
	}
	if err := req.normalize(); err != nil {
		return nil, err
	}

	var reviewed *domain.Abstract
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.AbstractByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get abstract: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "abstract not found")
		}
		if !current.Status.CanTransitionTo(req.Decision) {
			return serrors.With(serrors.ErrConflict, "cannot move abstract from %s to %s", current.Status, req.Decision)
		}

		updated, err := tx.UpdateAbstract(ctx, id, storage.AbstractUpdates{
			Status:       req.Decision,
			ExpectStatus: current.Status,
			Review: &domain.Review{
				ReviewerID: caller.ID,
				ReviewedAt: time.Now().UTC(),
				Feedback:   req.Feedback,
			},
		})
		if err != nil {
			return fmt.Errorf("could not update abstract: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "abstract was changed by another review")
		}
		reviewed = updated

		if err := tx.LogActivity(ctx, domain.ActivityLog{
			UserID:     caller.ID,
			AbstractID: id,
			Action:     domain.ActivityReviewed,
			Details:    string(req.Decision),
		}); err != nil {
			return fmt.Errorf("could not log activity: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not review abstract: %w", err)
	}

	return reviewed, nil
}

// ReExtract enqueues a new extraction job for an abstract the caller owns or
// reviews. A job that is already queued for the abstract is reused.
func (p portal) ReExtract(ctx context.Context, caller domain.Profile, id domain.AbstractID) (*domain.Abstract, error) {
	abstract, err := p.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if abstract.AuthorID != caller.ID && !caller.Role.CanReview() {
		return nil, serrors.With(serrors.ErrForbidden, "only the author or a reviewer can re-extract entities")
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		added, err := tx.AddJob(ctx, p.extractionJob(id), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if !added {
			logger.Debug(ctx, "extraction job already queued", zap.Stringer("abstractID", id))

			return nil
		}

		if err := tx.LogActivity(ctx, domain.ActivityLog{
			UserID:     caller.ID,
			AbstractID: id,
			Action:     domain.ActivityReExtracted,
		}); err != nil {
			return fmt.Errorf("could not log activity: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not re-extract abstract: %w", err)
	}

	return abstract, nil
}

// Activity returns the latest activity of an abstract visible to the caller.
func (p portal) Activity(ctx context.Context, caller domain.Profile, id domain.AbstractID) ([]domain.ActivityLog, error) {
	if _, err := p.Get(ctx, caller, id); err != nil {
		return nil, err
	}

	logs, err := p.storage.AbstractActivity(ctx, id, activityLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get abstract activity: %w", err)
	}

	return logs, nil
}

// ApplyExtraction classifies an abstract with the annotation provider, falling
// back to the local classifier, and stores the entities. It is called by the
// background worker. The body and keywords are classified exactly as Extract
// previews them; the title is not part of the corpus.
func (p portal) ApplyExtraction(ctx context.Context, id domain.AbstractID) (*domain.Abstract, error) {
	abstract, err := p.storage.AbstractByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get abstract: %w", err)
	}
	if abstract == nil {
		return nil, serrors.With(serrors.ErrNotFound, "abstract not found")
	}

	entities, source := p.classifier.ClassifyWithSource(ctx, abstract.Body, abstract.Keywords)

	updated, err := p.storage.UpdateAbstract(ctx, id, storage.AbstractUpdates{Entities: &entities})
	if err != nil {
		return nil, fmt.Errorf("could not store extracted entities: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "abstract not found")
	}

	logger.Info(ctx, "entities extracted",
		zap.Stringer("abstractID", id),
		zap.String("source", string(source)),
		zap.Int("terms", entities.Total()),
		zap.Float64("confidence", entities.Confidence))

	return updated, nil
}

func (p portal) extractionJob(id domain.AbstractID) ExtractEntitiesArgs {
	return ExtractEntitiesArgs{
		AbstractID:      id,
		maxAttempts:     p.options.MaxAttempts,
		uniqueJobPeriod: p.options.UniquePeriod,
	}
}

func canView(caller domain.Profile, abstract *domain.Abstract) bool {
	return abstract.Status == domain.AbstractStatusApproved ||
		abstract.AuthorID == caller.ID ||
		caller.Role.CanReview()
}
