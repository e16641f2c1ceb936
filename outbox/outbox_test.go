package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink fails the first failN applies of each job, then succeeds.
type recordingSink struct {
	mu      sync.Mutex
	failN   int
	calls   int
	applied []Job
}

func (s *recordingSink) Apply(_ context.Context, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failN {
		return errors.New("store unavailable")
	}
	s.applied = append(s.applied, job)
	return nil
}

func (s *recordingSink) appliedJobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.applied...)
}

func newTestOutbox(sink Sink) *Outbox {
	o := New(sink)
	o.base = time.Millisecond
	return o
}

func TestOutbox_AppliesJobsInOrder(t *testing.T) {
	sink := &recordingSink{}
	o := newTestOutbox(sink)
	o.Start(context.Background())

	o.Enqueue(Job{Op: OpInsert, Entity: EntityTransactions, Key: "TRX-1"})
	o.Enqueue(Job{Op: OpUpdate, Entity: EntityTransactions, Key: "TRX-1"})
	o.Enqueue(Job{Op: OpInsert, Entity: EntityJournal, Key: "JRN-TRX-1"})
	o.Close()

	applied := sink.appliedJobs()
	require.Len(t, applied, 3)
	assert.Equal(t, OpInsert, applied[0].Op)
	assert.Equal(t, "TRX-1", applied[0].Key)
	assert.Equal(t, OpUpdate, applied[1].Op)
	assert.Equal(t, "JRN-TRX-1", applied[2].Key)
}

func TestOutbox_RetriesTransientFailure(t *testing.T) {
	sink := &recordingSink{failN: 2}
	o := newTestOutbox(sink)
	o.Start(context.Background())

	o.Enqueue(Job{Op: OpInsert, Entity: EntityMembers, Key: "USR-001"})
	o.Close()

	applied := sink.appliedJobs()
	require.Len(t, applied, 1, "job applied after transient failures")
	assert.Equal(t, "USR-001", applied[0].Key)
	assert.Equal(t, 3, sink.calls)
}

func TestOutbox_DropsJobAfterRetriesExhausted(t *testing.T) {
	sink := &recordingSink{failN: 100}
	o := newTestOutbox(sink)
	o.Start(context.Background())

	o.Enqueue(Job{Op: OpInsert, Entity: EntityMembers, Key: "USR-001"})
	o.Enqueue(Job{Op: OpInsert, Entity: EntityMembers, Key: "USR-002"})
	o.Close()

	assert.Empty(t, sink.appliedJobs(), "exhausted jobs are dropped, not reordered or requeued")
	assert.Equal(t, 12, sink.calls, "each job gets the initial attempt plus five retries")
}

func TestOutbox_EnqueueNeverBlocksWhenFull(t *testing.T) {
	sink := &recordingSink{}
	o := newTestOutbox(sink)
	// Worker not started, so the channel only ever fills.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(o.jobs)+10; i++ {
			o.Enqueue(Job{Op: OpInsert, Entity: EntityNews, Key: "NWS-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	o.Start(context.Background())
	o.Close()
	assert.Len(t, sink.appliedJobs(), cap(o.jobs), "overflow jobs dropped, queued jobs drained")
}
