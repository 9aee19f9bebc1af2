package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job queue metrics
var (
	QueuePending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidq_queue_pending_jobs",
			Help: "Number of jobs waiting in the queue",
		},
	)

	QueueBusy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidq_queue_busy",
			Help: "Whether a job is currently running (1 = running, 0 = idle)",
		},
	)

	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidq_jobs_total",
			Help: "Total number of finished jobs",
		},
		[]string{"kind", "result"}, // result: "done", "failed"
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidq_job_duration_seconds",
			Help:    "Job run time in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"kind"},
	)

	JobsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidq_jobs_recovered_total",
			Help: "Total number of jobs re-enqueued from the catalog at startup",
		},
	)
)

// EventsDropped counts job events a slow subscriber missed.
var EventsDropped = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "vidq_events_dropped_total",
		Help: "Total number of job events dropped for slow subscribers",
	},
)

// Worker pool metrics
var (
	WorkersAlive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidq_workers_alive",
			Help: "Number of running worker processes",
		},
	)

	WorkerRestarts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidq_worker_restarts_total",
			Help: "Total number of worker processes replaced after an unexpected exit",
		},
	)

	WorkerSpawnErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidq_worker_spawn_errors_total",
			Help: "Total number of failed worker spawns",
		},
	)

	SubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidq_submissions_total",
			Help: "Total number of resize submissions received from workers",
		},
	)
)

// InitializeMetrics pre-populates label combinations so every series is
// exported from the first scrape.
func InitializeMetrics() {
	for _, result := range []string{"done", "failed"} {
		JobsTotal.WithLabelValues("resize", result)
	}
	JobDuration.WithLabelValues("resize")
}
