package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/metrics"
	"github.com/bnema/vidq/internal/port"
)

// ExitStatus describes how a worker ended. Signal is set when it was killed
// by a signal, in which case Code is -1.
type ExitStatus struct {
	Code   int
	Signal string
}

func (s ExitStatus) String() string {
	if s.Signal != "" {
		return "signal " + s.Signal
	}
	return fmt.Sprintf("exit code %d", s.Code)
}

// Worker is a running worker process as seen by the primary.
type Worker interface {
	PID() int
	// Submissions yields the jobs the worker sends. It is closed once no
	// process holds the worker's end of the channel, which can be later
	// than the worker's own exit.
	Submissions() <-chan domain.Job
	// Wait blocks until the worker has exited.
	Wait() ExitStatus
	// Stop asks the worker to terminate.
	Stop() error
}

type Spawner interface {
	Spawn(ctx context.Context, slot int) (Worker, error)
}

type RestartPolicy struct {
	// Backoff delays the restart of a slot that keeps crashing. Nil restarts
	// immediately.
	Backoff *Backoff
	// StableAfter is the uptime after which a slot's crash count is reset.
	StableAfter time.Duration
	// SpawnRetryDelay is the wait before retrying a failed spawn.
	SpawnRetryDelay time.Duration
}

func DefaultRestartPolicy() RestartPolicy {
	return RestartPolicy{
		StableAfter:     time.Minute,
		SpawnRetryDelay: time.Second,
	}
}

// Coordinator keeps a fixed-size pool of worker processes alive and relays
// their submissions to the job queue.
type Coordinator struct {
	spawner Spawner
	queue   port.Enqueuer
	size    int
	policy  RestartPolicy

	alive atomic.Int32
}

type slot struct {
	worker  Worker
	started time.Time
	crashes int
}

type workerExit struct {
	slot   int
	pid    int
	status ExitStatus
}

func NewCoordinator(spawner Spawner, queue port.Enqueuer, size int, policy RestartPolicy) *Coordinator {
	return &Coordinator{
		spawner: spawner,
		queue:   queue,
		size:    size,
		policy:  policy,
	}
}

// Size reports how many workers are currently running.
func (c *Coordinator) Size() int {
	return int(c.alive.Load())
}

// Run spawns the pool and replaces workers that exit until ctx is
// cancelled, then stops every worker and waits for them. Spawn failures are
// logged and retried, never returned.
func (c *Coordinator) Run(ctx context.Context) error {
	exits := make(chan workerExit)
	retry := make(chan int)
	slots := make(map[int]*slot, c.size)
	var watchers sync.WaitGroup

	spawn := func(n int) {
		s := slots[n]
		w, err := c.spawner.Spawn(ctx, n)
		if err != nil {
			metrics.WorkerSpawnErrors.Inc()
			logger.Error.Printf("spawn worker %d: %v (retrying in %s)", n, err, c.policy.SpawnRetryDelay)
			c.retryAfter(ctx, c.policy.SpawnRetryDelay, n, retry)
			return
		}

		s.worker = w
		s.started = time.Now()
		c.alive.Add(1)
		metrics.WorkersAlive.Set(float64(c.alive.Load()))
		logger.Info.Printf("worker %d started (pid %d)", n, w.PID())

		watchers.Add(1)
		go func() {
			defer watchers.Done()
			c.watch(ctx, n, w, exits)
		}()
	}

	for n := 1; n <= c.size; n++ {
		slots[n] = &slot{}
		spawn(n)
	}

	for {
		select {
		case <-ctx.Done():
			c.stopAll(slots)
			watchers.Wait()
			c.alive.Store(0)
			metrics.WorkersAlive.Set(0)
			logger.Info.Printf("all workers stopped")
			return nil

		case n := <-retry:
			spawn(n)

		case ex := <-exits:
			s := slots[ex.slot]
			s.worker = nil
			c.alive.Add(-1)
			metrics.WorkersAlive.Set(float64(c.alive.Load()))
			logger.Warn.Printf("worker %d (pid %d) died with %s, restarting", ex.slot, ex.pid, ex.status)

			if c.policy.StableAfter > 0 && time.Since(s.started) >= c.policy.StableAfter {
				s.crashes = 0
			}
			s.crashes++
			metrics.WorkerRestarts.Inc()

			var delay time.Duration
			if c.policy.Backoff != nil {
				delay = c.policy.Backoff.Duration(s.crashes)
			}
			if delay <= 0 {
				spawn(ex.slot)
				continue
			}
			logger.Info.Printf("worker %d restarts in %s", ex.slot, delay.Round(time.Millisecond))
			c.retryAfter(ctx, delay, ex.slot, retry)
		}
	}
}

// watch reports w's exit unless the pool is shutting down. The exit is
// reported as soon as the process is gone, whether or not its submission
// channel has been drained.
func (c *Coordinator) watch(ctx context.Context, n int, w Worker, exits chan<- workerExit) {
	go c.relay(w)

	status := w.Wait()
	select {
	case exits <- workerExit{slot: n, pid: w.PID(), status: status}:
	case <-ctx.Done():
		logger.Info.Printf("worker %d (pid %d) exited with %s", n, w.PID(), status)
	}
}

// relay forwards w's submissions to the queue until the channel closes,
// which may be after w itself has exited.
func (c *Coordinator) relay(w Worker) {
	for job := range w.Submissions() {
		metrics.SubmissionsTotal.Inc()
		c.queue.Enqueue(job)
	}
}

func (c *Coordinator) retryAfter(ctx context.Context, delay time.Duration, n int, retry chan<- int) {
	go func() {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return
		}
		select {
		case retry <- n:
		case <-ctx.Done():
		}
	}()
}

func (c *Coordinator) stopAll(slots map[int]*slot) {
	for n, s := range slots {
		if s.worker == nil {
			continue
		}
		if err := s.worker.Stop(); err != nil {
			logger.Warn.Printf("stop worker %d (pid %d): %v", n, s.worker.PID(), err)
		}
	}
}
