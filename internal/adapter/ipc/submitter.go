package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/port"
	"github.com/google/uuid"
)

// Submitter is the worker side of the channel. Each message is written with
// a single Write, so concurrent handlers never interleave lines.
type Submitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSubmitter(w io.Writer) *Submitter {
	return &Submitter{w: w}
}

func (s *Submitter) SubmitResize(ctx context.Context, videoID string, width, height int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(ResizeData{VideoID: videoID, Width: width, Height: height})
	if err != nil {
		return fmt.Errorf("encode resize data: %w", err)
	}
	msg := Message{
		ID:   uuid.NewString(),
		Type: MessageNewResize,
		Data: data,
	}
	line, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(line); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	logger.Debug.Printf("sent %s %s", msg.Type, msg.ID)
	return nil
}

var _ port.Submitter = (*Submitter)(nil)
