package service

import (
	"context"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/port"
)

// QueueSubmitter enqueues directly. It serves the API when the primary runs
// without worker processes.
type QueueSubmitter struct {
	queue port.Enqueuer
}

func NewQueueSubmitter(queue port.Enqueuer) *QueueSubmitter {
	return &QueueSubmitter{queue: queue}
}

func (s *QueueSubmitter) SubmitResize(_ context.Context, videoID string, width, height int) error {
	s.queue.Enqueue(domain.NewResizeJob(videoID, width, height))
	return nil
}

var _ port.Submitter = (*QueueSubmitter)(nil)
