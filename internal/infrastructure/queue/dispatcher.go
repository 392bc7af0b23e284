package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/workpulse/workpulse-api/internal/api/metrics"
	"github.com/workpulse/workpulse-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes batched snapshots to a fixed set of workers using
// consistent hashing on the employee identifier, guaranteeing per-employee
// ingest ordering.
type Dispatcher struct {
	workers []chan ports.SnapshotInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SnapshotInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SnapshotInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a snapshot to the worker responsible for its employee.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.SnapshotInput) {
	idx := d.shardIndex(shardKey(in))
	d.workers[idx] <- in
	metrics.IngestQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple snapshots preserving per-employee ordering.
func (d *Dispatcher) EnqueueBatch(ins []ports.SnapshotInput) {
	for _, in := range ins {
		d.Enqueue(in)
	}
}

// shardKey mirrors the identity binding in the service layer: email first,
// id as fallback, so ordering holds for whichever form ends up stored.
func shardKey(in ports.SnapshotInput) string {
	if in.Identity.Email != "" {
		return in.Identity.Email
	}
	return in.Identity.ID
}

// shardIndex reduces the hash in uint32 space; converting to int first would
// go negative on 32-bit platforms for hashes above MaxInt32.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SnapshotInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.IngestQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))

			start := time.Now()
			if err := d.service.Ingest(ctx, in); err != nil {
				metrics.IngestErrorsTotal.WithLabelValues("process_failed").Inc()
				metrics.IngestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				d.log.Error().Err(err).
					Str("status", in.Status).
					Int("worker_id", id).
					Msg("snapshot ingest failed")
				continue
			}
			metrics.SnapshotsIngestedTotal.WithLabelValues(in.Status, in.Source).Inc()
			metrics.IngestDuration.WithLabelValues(in.Status).Observe(time.Since(start).Seconds())
		}
	}
}
