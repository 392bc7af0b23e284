package ports

import (
	"context"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// ActivityRepository defines persistence operations for monitoring snapshots.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// ListRecent returns up to limit activities newest-first. A scope with
	// EmployeeIDs narrows the query to those identifiers; an empty scope must
	// never reach the store.
	ListRecent(ctx context.Context, scope domain.ActivityScope, limit int) ([]domain.Activity, error)
}
