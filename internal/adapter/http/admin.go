package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/metrics"
	"github.com/bnema/vidq/internal/service"
)

// QueueStatus reports the primary's job queue state.
type QueueStatus interface {
	Stats() service.QueueStats
}

// PoolStatus reports how many worker processes are alive.
type PoolStatus interface {
	Size() int
}

type healthResponse struct {
	Status  string      `json:"status"`
	Pending int         `json:"pending"`
	Current *domain.Job `json:"current"`
	Workers int         `json:"workers"`
}

// NewAdminRouter serves the primary's operational endpoints: Prometheus
// metrics, a health summary and the job event stream. pool may be nil when
// no worker processes are spawned.
func NewAdminRouter(queue QueueStatus, pool PoolStatus, eventBus *service.EventBus) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler(queue, pool)).Methods(http.MethodGet)
	r.HandleFunc("/events", NewSSEHandler(eventBus).Events()).Methods(http.MethodGet)
	return r
}

func healthHandler(queue QueueStatus, pool PoolStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		stats := queue.Stats()
		resp := healthResponse{
			Status:  "ok",
			Pending: stats.Pending,
			Current: stats.Current,
		}
		if pool != nil {
			resp.Workers = pool.Size()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
