package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workpulse/workpulse-api/internal/core/domain"
	"github.com/workpulse/workpulse-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	orders map[string][]string // employee -> statuses in processing order
	done   chan struct{}
	want   int
	seen   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{
		orders: make(map[string][]string),
		done:   make(chan struct{}),
		want:   want,
	}
}

func (s *recordingService) Record(context.Context, ports.SnapshotInput) (*domain.Activity, error) {
	return nil, nil
}

func (s *recordingService) List(context.Context, domain.Identity, string) ([]domain.Activity, error) {
	return nil, nil
}

func (s *recordingService) Ingest(_ context.Context, in ports.SnapshotInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[in.Identity.Email] = append(s.orders[in.Identity.Email], in.Status)
	s.seen++
	if s.seen == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_PreservesPerEmployeeOrder(t *testing.T) {
	statuses := []string{"Active", "Idle", "Active", "Suspicious", "Idle"}
	employees := []string{"a@example.com", "b@example.com", "c@example.com"}

	svc := newRecordingService(len(statuses) * len(employees))
	d := NewDispatcher(3, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, st := range statuses {
		for _, emp := range employees {
			d.Enqueue(ports.SnapshotInput{
				Identity: domain.Identity{Email: emp, Role: domain.RoleUser},
				Status:   st,
				Source:   "agent",
			})
		}
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for ingestion")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, emp := range employees {
		got := svc.orders[emp]
		if len(got) != len(statuses) {
			t.Fatalf("%s: expected %d snapshots, got %d", emp, len(statuses), len(got))
		}
		for i, st := range statuses {
			if got[i] != st {
				t.Fatalf("%s: order violated at %d: got %q, want %q", emp, i, got[i], st)
			}
		}
	}
}

func TestDispatcher_ShardIndexInRange(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(0), zerolog.Nop())

	// FNV-1a("") is 0x811C9DC5, above MaxInt32; a signed conversion before
	// the modulo would make this index negative on 32-bit platforms.
	keys := []string{"", "a@example.com", "b@example.com", "u-42", "some-long-identifier@example.com"}
	for _, key := range keys {
		idx := d.shardIndex(key)
		if idx < 0 || idx >= len(d.workers) {
			t.Fatalf("shardIndex(%q) = %d, out of range [0,%d)", key, idx, len(d.workers))
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
