package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/workpulse/workpulse-api/internal/core/domain"
	"github.com/workpulse/workpulse-api/internal/core/ports"
	"github.com/workpulse/workpulse-api/internal/core/privacy"
)

// DedupChecker abstracts the snapshot idempotency store (Redis). Agents retry
// failed posts, so the batch pipeline must tolerate the same snapshot twice.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, employeeID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, employeeID, status string, ts time.Time) error
}

// ActivityService records and lists monitoring snapshots.
type ActivityService struct {
	repo      ports.ActivityRepository
	dedup     DedupChecker
	pageLimit int
	log       zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, pageLimit int, log zerolog.Logger) *ActivityService {
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &ActivityService{repo: repo, dedup: dedup, pageLimit: pageLimit, log: log}
}

// Record persists a single snapshot on behalf of the authenticated caller.
// The employee identifier comes from the verified identity, never from the
// request payload.
func (s *ActivityService) Record(ctx context.Context, in ports.SnapshotInput) (*domain.Activity, error) {
	activity, err := s.build(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		s.log.Error().Err(err).Str("employee_id", activity.EmployeeID).Msg("failed to insert activity")
		return nil, err
	}

	s.log.Info().
		Str("employee_id", activity.EmployeeID).
		Str("status", string(activity.Status)).
		Msg("activity recorded")
	return activity, nil
}

// Ingest persists one snapshot from the batch pipeline. Duplicate snapshots
// (same employee, status and capture minute) are skipped; a dedup store
// failure is non-fatal and the snapshot is processed anyway.
func (s *ActivityService) Ingest(ctx context.Context, in ports.SnapshotInput) error {
	activity, err := s.build(in)
	if err != nil {
		return err
	}

	ts := in.ReportedAt
	if ts.IsZero() {
		ts = activity.CreatedAt
	}

	isDup, err := s.dedup.IsDuplicate(ctx, activity.EmployeeID, string(activity.Status), ts)
	if err != nil {
		s.log.Warn().Err(err).Str("employee_id", activity.EmployeeID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().
			Str("employee_id", activity.EmployeeID).
			Str("status", string(activity.Status)).
			Msg("duplicate snapshot skipped")
		return nil
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return fmt.Errorf("ingest snapshot: %w", err)
	}

	// Marked only after the insert succeeded: a failed insert must leave the
	// key unset so the agent's retry is processed, not swallowed.
	if markErr := s.dedup.Mark(ctx, activity.EmployeeID, string(activity.Status), ts); markErr != nil {
		s.log.Warn().Err(markErr).Str("employee_id", activity.EmployeeID).Msg("failed to set dedup key")
	}
	return nil
}

// List returns the caller's visibility-filtered page, newest first. The scope
// narrows the store query; the pure filter is applied again on the result so
// the guarantee does not depend on the repository implementation.
func (s *ActivityService) List(ctx context.Context, ident domain.Identity, requestedEmployee string) ([]domain.Activity, error) {
	scope := domain.ScopeFor(ident, requestedEmployee)
	if scope.Empty {
		return []domain.Activity{}, nil
	}

	activities, err := s.repo.ListRecent(ctx, scope, s.pageLimit)
	if err != nil {
		return nil, err
	}
	return domain.VisibleActivitiesScoped(ident, activities, requestedEmployee), nil
}

func (s *ActivityService) build(in ports.SnapshotInput) (*domain.Activity, error) {
	employeeID := in.Identity.Email
	if employeeID == "" {
		employeeID = in.Identity.ID
	}
	if employeeID == "" {
		return nil, domain.ErrForbidden
	}

	status := domain.ActivityStatus(in.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	title, masked := privacy.Mask(in.WindowTitle)

	return &domain.Activity{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Status:      status,
		WindowTitle: title,
		IsPrivate:   in.IsPrivate || masked,
		Source:      in.Source,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
