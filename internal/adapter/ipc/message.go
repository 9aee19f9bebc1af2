// Package ipc carries resize submissions from worker processes to the
// primary as newline-delimited JSON over an inherited pipe.
package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/logger"
)

const MessageNewResize = "new-resize"

// Message is one line on the pipe. ID only correlates log lines between the
// worker and the primary.
type Message struct {
	ID   string          `json:"id"`
	Type string          `json:"messageType"`
	Data json.RawMessage `json:"data"`
}

type ResizeData struct {
	VideoID string `json:"videoId"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Receive decodes messages from r and passes each resize submission to
// handle until r reaches EOF. Malformed lines and unknown message types are
// logged and skipped.
func Receive(r io.Reader, handle func(domain.Job)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		job, err := decode(line)
		if err != nil {
			logger.Warn.Printf("dropping message: %v", err)
			continue
		}
		handle(job)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read submissions: %w", err)
	}
	return nil
}

func decode(line []byte) (domain.Job, error) {
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		return domain.Job{}, fmt.Errorf("decode message: %w", err)
	}

	switch msg.Type {
	case MessageNewResize:
		var data ResizeData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return domain.Job{}, fmt.Errorf("decode %s data of %s: %w", msg.Type, msg.ID, err)
		}
		if data.VideoID == "" || data.Width <= 0 || data.Height <= 0 {
			return domain.Job{}, fmt.Errorf("invalid %s message %s", msg.Type, msg.ID)
		}
		logger.Debug.Printf("received %s %s", msg.Type, msg.ID)
		return domain.NewResizeJob(data.VideoID, data.Width, data.Height), nil
	default:
		return domain.Job{}, fmt.Errorf("unknown message type %q", logger.SanitizeForLog(msg.Type))
	}
}
