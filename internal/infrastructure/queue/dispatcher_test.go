package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimalapi/vehicles-api/internal/core/ports"
)

type recordingRecorder struct {
	mu    sync.Mutex
	marks []ports.LoginEvent
}

func (r *recordingRecorder) MarkLogin(_ context.Context, email string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks = append(r.marks, ports.LoginEvent{Email: email, At: at})
	return nil
}

func (r *recordingRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.marks)
}

func TestDispatcher_RecordsLoginEvents(t *testing.T) {
	recorder := &recordingRecorder{}
	d := NewDispatcher(2, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	now := time.Now().UTC()
	d.Record(ports.LoginEvent{Email: "administrator@minimalapi.com", At: now})
	d.Record(ports.LoginEvent{Email: "editor@minimalapi.com", At: now})

	deadline := time.After(2 * time.Second)
	for recorder.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 marks, got %d", recorder.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_ShardIsStablePerEmail(t *testing.T) {
	d := NewDispatcher(4, &recordingRecorder{}, zerolog.Nop())

	first := d.shardIndex("administrator@minimalapi.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("administrator@minimalapi.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingRecorder{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
