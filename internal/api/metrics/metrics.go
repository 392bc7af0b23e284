// Package metrics defines and registers all custom Prometheus metrics for the
// WorkPulse monitoring API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workpulse"

// ── Ingest metrics ────────────────────────────────────────────────────────────

// SnapshotsIngestedTotal counts snapshots that completed ingestion.
// Labels:
//   - status: the snapshot status ("Active", "Idle", "Suspicious")
//   - source: the reporting source (e.g. "agent")
var SnapshotsIngestedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_ingested_total",
		Help:      "Total number of activity snapshots successfully ingested.",
	},
	[]string{"status", "source"},
)

// IngestErrorsTotal counts snapshots that failed ingestion.
// Label:
//   - reason: short description of the failure (e.g. "process_failed", "invalid_status")
var IngestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_errors_total",
		Help:      "Total number of activity snapshots that failed ingestion.",
	},
	[]string{"reason"},
)

// SnapshotsDedupTotal counts deduplication decisions on the batch path.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new snapshot, ingested)
var SnapshotsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// IngestQueueDepth tracks the number of snapshots waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IngestQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingest_queue_depth",
		Help:      "Current number of snapshots pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// IngestDuration measures how long a single snapshot takes from dequeue to persistence.
// Label:
//   - status: the snapshot status, or "error" on failure
var IngestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingest_duration_seconds",
		Help:      "Duration of snapshot ingestion from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
