// Package outbox mirrors in-memory mutations to the durable store without
// ever blocking the caller. A mutation commits locally first; the matching
// replication job is queued here and applied in order by a single worker
// with bounded retry. A job that exhausts its retries is logged and dropped;
// local state is never rolled back.
package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

// Job operations.
const (
	OpInsert  = "insert"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpReplace = "replace" // replace the whole entity set (imports, seeding)
)

// Entity names, matching the durable store's tables.
const (
	EntityMembers       = "members"
	EntityTransactions  = "transactions"
	EntityProducts      = "products"
	EntityJournal       = "journal"
	EntityNews          = "news"
	EntityNotifications = "notifications"
	EntitySettings      = "settings"
	EntitySHUConfig     = "shu_config"
)

// Job is one replication unit: apply Op to Entity. Value carries the record
// (or the full set for OpReplace); Key identifies the record for OpDelete.
type Job struct {
	Op     string
	Entity string
	Key    string
	Value  any
}

// Sink applies a job against the durable store.
type Sink interface {
	Apply(ctx context.Context, job Job) error
}

// Outbox is the replication queue. Enqueue never blocks; when the queue is
// full the job is counted as a replication failure and dropped.
type Outbox struct {
	sink    Sink
	jobs    chan Job
	wg      sync.WaitGroup
	retries uint64
	base    time.Duration
}

// New returns an outbox draining into sink. Call Start before enqueueing.
func New(sink Sink) *Outbox {
	return &Outbox{
		sink:    sink,
		jobs:    make(chan Job, 256),
		retries: 5,
		base:    100 * time.Millisecond,
	}
}

// Start launches the worker. The worker keeps draining until Close is
// called; ctx bounds each individual apply attempt chain.
func (o *Outbox) Start(ctx context.Context) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for job := range o.jobs {
			o.apply(ctx, job)
		}
	}()
}

// Close stops accepting jobs and waits for the queue to drain.
func (o *Outbox) Close() {
	close(o.jobs)
	o.wg.Wait()
}

// Enqueue queues one replication job. Never blocks.
func (o *Outbox) Enqueue(job Job) {
	select {
	case o.jobs <- job:
	default:
		slog.Warn("replication failure: outbox full, job dropped",
			"op", job.Op, "entity", job.Entity, "key", job.Key)
	}
}

func (o *Outbox) apply(ctx context.Context, job Job) {
	backoff := retry.WithMaxRetries(o.retries, retry.NewExponential(o.base))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := o.sink.Apply(ctx, job); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Warn("replication failure: job dropped after retries",
			"op", job.Op, "entity", job.Entity, "key", job.Key, "error", err)
	}
}
