package port

import (
	"context"

	"github.com/bnema/vidq/internal/domain"
)

// Submitter hands a resize to whichever process owns the job queue. It
// returns once the submission is handed off, never after the transcode.
type Submitter interface {
	SubmitResize(ctx context.Context, videoID string, width, height int) error
}

type Enqueuer interface {
	Enqueue(job domain.Job)
}
