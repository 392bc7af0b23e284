package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workpulse/workpulse-api/internal/api/metrics"
)

const dedupTTL = 5 * time.Minute

// SnapshotDedup provides idempotency checks for the batch ingest pipeline.
// Agents post once a minute and retry on failure, so the same snapshot can
// arrive twice. Key format: snap:<employee_id>:<status>:<unix_minute>
type SnapshotDedup struct {
	client *redis.Client
}

// NewSnapshotDedup creates a SnapshotDedup wrapping the given Redis client.
func NewSnapshotDedup(client *redis.Client) *SnapshotDedup {
	return &SnapshotDedup{client: client}
}

// IsDuplicate reports whether this snapshot has already been ingested.
func (d *SnapshotDedup) IsDuplicate(ctx context.Context, employeeID, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(employeeID, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.SnapshotsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.SnapshotsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this snapshot has been ingested (expires after dedupTTL).
func (d *SnapshotDedup) Mark(ctx context.Context, employeeID, status string, ts time.Time) error {
	return d.client.Set(ctx, d.key(employeeID, status, ts), "1", dedupTTL).Err()
}

// key truncates the capture time to the minute: a retry of the same
// per-minute snapshot lands on the same key.
func (d *SnapshotDedup) key(employeeID, status string, ts time.Time) string {
	return fmt.Sprintf("snap:%s:%s:%d", employeeID, status, ts.Truncate(time.Minute).Unix())
}
