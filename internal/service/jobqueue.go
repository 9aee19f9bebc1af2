package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/fsutil"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/metrics"
	"github.com/bnema/vidq/internal/port"
)

var ErrQueueRunning = errors.New("job queue is already running")

// QueueStats is a point-in-time view of the queue.
type QueueStats struct {
	Pending   int         `json:"pending"`
	Current   *domain.Job `json:"current"`
	Completed int64       `json:"completed"`
	Failed    int64       `json:"failed"`
}

// JobQueue runs jobs strictly one at a time in arrival order. Enqueue may be
// called from any goroutine; Run owns dispatch.
type JobQueue struct {
	catalog    port.Catalog
	transcoder port.Transcoder
	layout     domain.Layout
	events     EventPublisher

	mu      sync.Mutex
	pending []domain.Job
	notify  chan struct{}

	running   atomic.Bool
	current   atomic.Pointer[domain.Job]
	completed atomic.Int64
	failed    atomic.Int64
}

type jobResult struct {
	job      domain.Job
	err      error
	duration time.Duration
}

// NewJobQueue builds the queue and re-enqueues every resize the catalog
// still marks as processing, so work interrupted by a restart is resumed.
func NewJobQueue(
	catalog port.Catalog,
	transcoder port.Transcoder,
	layout domain.Layout,
	events EventPublisher,
) (*JobQueue, error) {
	q := &JobQueue{
		catalog:    catalog,
		transcoder: transcoder,
		layout:     layout,
		events:     events,
		notify:     make(chan struct{}, 1),
	}

	if err := catalog.Refresh(); err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}

	recovered := 0
	for _, v := range catalog.Videos() {
		for _, d := range v.PendingResizes() {
			q.Enqueue(domain.NewResizeJob(v.VideoID, d.Width, d.Height))
			recovered++
		}
	}
	if recovered > 0 {
		metrics.JobsRecovered.Add(float64(recovered))
		logger.Info.Printf("recovered %d unfinished resize jobs", recovered)
	}

	return q, nil
}

// Enqueue appends job to the tail. It never blocks.
func (q *JobQueue) Enqueue(job domain.Job) {
	q.mu.Lock()
	q.pending = append(q.pending, job)
	n := len(q.pending)
	q.mu.Unlock()

	metrics.QueuePending.Set(float64(n))
	q.publish(job, EventQueued, "")
	logger.Info.Printf("queued %s (%d pending)", logger.SanitizeForLog(job.String()), n)

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Dequeue removes and returns the head of the queue.
func (q *JobQueue) Dequeue() (domain.Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return domain.Job{}, false
	}
	job := q.pending[0]
	q.pending[0] = domain.Job{}
	q.pending = q.pending[1:]
	metrics.QueuePending.Set(float64(len(q.pending)))
	return job, true
}

// Pending returns a copy of the jobs waiting to run, head first.
func (q *JobQueue) Pending() []domain.Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.Job, len(q.pending))
	copy(out, q.pending)
	return out
}

func (q *JobQueue) Stats() QueueStats {
	q.mu.Lock()
	n := len(q.pending)
	q.mu.Unlock()

	return QueueStats{
		Pending:   n,
		Current:   q.current.Load(),
		Completed: q.completed.Load(),
		Failed:    q.failed.Load(),
	}
}

// Run dispatches jobs until ctx is cancelled. Only this goroutine decides
// whether a job is in flight, so at most one runs at any time. On
// cancellation the in-flight job is cancelled too and Run returns once it
// has wound down; jobs still pending are left to startup recovery.
func (q *JobQueue) Run(ctx context.Context) error {
	if !q.running.CompareAndSwap(false, true) {
		return ErrQueueRunning
	}
	defer q.running.Store(false)

	done := make(chan jobResult, 1)
	busy := false

	for {
		if !busy {
			if job, ok := q.Dequeue(); ok {
				busy = true
				q.start(ctx, job, done)
				continue
			}
		}

		select {
		case <-ctx.Done():
			if busy {
				q.finish(<-done)
			}
			logger.Info.Printf("job queue stopped with %d pending", len(q.Pending()))
			return nil
		case <-q.notify:
		case res := <-done:
			busy = false
			q.finish(res)
		}
	}
}

func (q *JobQueue) start(ctx context.Context, job domain.Job, done chan<- jobResult) {
	q.current.Store(&job)
	metrics.QueueBusy.Set(1)
	q.publish(job, EventStarted, "")
	logger.Info.Printf("starting %s", logger.SanitizeForLog(job.String()))

	go func() {
		started := time.Now()
		err := q.execute(ctx, job)
		done <- jobResult{job: job, err: err, duration: time.Since(started)}
	}()
}

func (q *JobQueue) finish(res jobResult) {
	q.current.Store(nil)
	metrics.QueueBusy.Set(0)
	metrics.JobDuration.WithLabelValues(string(res.job.Kind)).Observe(res.duration.Seconds())

	name := logger.SanitizeForLog(res.job.String())
	if res.err != nil {
		q.failed.Add(1)
		metrics.JobsTotal.WithLabelValues(string(res.job.Kind), EventFailed).Inc()
		q.publish(res.job, EventFailed, res.err.Error())
		logger.Error.Printf("%s failed after %s: %v", name, res.duration.Round(time.Millisecond), res.err)
		return
	}

	q.completed.Add(1)
	metrics.JobsTotal.WithLabelValues(string(res.job.Kind), EventDone).Inc()
	q.publish(res.job, EventDone, "")
	logger.Info.Printf("%s done in %s", name, res.duration.Round(time.Millisecond))
}

func (q *JobQueue) execute(ctx context.Context, job domain.Job) error {
	switch job.Kind {
	case domain.JobKindResize:
		return q.resize(ctx, job)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

// resize transcodes the original and flips the record to done. On failure
// the target is removed and the record is left processing; nothing retries
// it until the next startup.
func (q *JobQueue) resize(ctx context.Context, job domain.Job) error {
	if err := q.catalog.Refresh(); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	v, err := q.catalog.FindByVideoID(job.VideoID)
	if err != nil {
		return fmt.Errorf("find video: %w", err)
	}

	source := q.layout.OriginalPath(v)
	target := q.layout.ResizePath(v, job.Width, job.Height)

	if err := q.transcoder.Resize(ctx, source, target, job.Width, job.Height); err != nil {
		fsutil.DeleteFile(target)
		return fmt.Errorf("transcode: %w", err)
	}

	// Other processes may have written the catalog while the tool ran.
	if err := q.catalog.Refresh(); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	v, err = q.catalog.FindByVideoID(job.VideoID)
	if err != nil {
		return fmt.Errorf("find video after transcode: %w", err)
	}
	v.MarkResized(job.Width, job.Height)
	q.catalog.Put(v)
	if err := q.catalog.Save(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (q *JobQueue) publish(job domain.Job, status, message string) {
	if q.events == nil {
		return
	}
	q.events.Publish(job.VideoID, Event{
		VideoID: job.VideoID,
		Key:     job.Key(),
		Status:  status,
		Message: message,
	})
}

var _ port.Enqueuer = (*JobQueue)(nil)
