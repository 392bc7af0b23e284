package ports

import (
	"context"
	"time"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// SnapshotInput is the DTO passed from the transport layer for a single
// activity snapshot. The employee identifier is never taken from the wire;
// it is derived from the caller's verified identity.
type SnapshotInput struct {
	Identity    domain.Identity
	Status      string
	WindowTitle string
	IsPrivate   bool
	Source      string
	// ReportedAt is the agent-side capture time for batch items. Zero means
	// "now"; the stored CreatedAt is always assigned by the server.
	ReportedAt time.Time
}

// ActivityService records and lists monitoring snapshots.
type ActivityService interface {
	// Record synchronously persists one snapshot and returns it.
	Record(ctx context.Context, in SnapshotInput) (*domain.Activity, error)
	// Ingest persists one snapshot from the batch pipeline, skipping
	// duplicates reported by the dedup store.
	Ingest(ctx context.Context, in SnapshotInput) error
	// List returns the caller's visibility-filtered page, newest first.
	List(ctx context.Context, ident domain.Identity, requestedEmployee string) ([]domain.Activity, error)
}
