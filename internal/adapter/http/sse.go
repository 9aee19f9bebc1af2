package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/service"
)

const keepAliveInterval = 15 * time.Second

type SSEHandler struct {
	eventBus *service.EventBus
}

func NewSSEHandler(eventBus *service.EventBus) *SSEHandler {
	return &SSEHandler{eventBus: eventBus}
}

// eventStream writes server-sent events and flushes after each one.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

func newEventStream(w http.ResponseWriter) *eventStream {
	f, _ := w.(http.Flusher)
	return &eventStream{w: w, flusher: f}
}

// send writes one numbered event. Each line of data gets its own data field.
func (s *eventStream) send(name, data string) {
	s.nextID++
	var b strings.Builder
	fmt.Fprintf(&b, "id: %d\nevent: %s\n", s.nextID, name)
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	s.write(b.String())
}

func (s *eventStream) comment(text string) {
	s.write(": " + text + "\n\n")
}

func (s *eventStream) write(chunk string) {
	_, _ = io.WriteString(s.w, chunk)
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// Events streams the job events of one video (?videoId=) until the client
// goes away. Each event is named after its status and carries the event as
// JSON.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID := r.URL.Query().Get("videoId")
		if videoID == "" {
			writeError(w, http.StatusBadRequest, "The videoId parameter is required.")
			return
		}

		ch, cancel := h.eventBus.Subscribe(videoID)
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		stream := newEventStream(w)
		stream.comment("keep-alive")

		ctx := r.Context()
		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				stream.comment("keep-alive")
			case event, ok := <-ch:
				if !ok {
					return
				}
				data, err := json.Marshal(event)
				if err != nil {
					logger.Error.Printf("encode event for %s: %v", logger.SanitizeForLog(videoID), err)
					continue
				}
				stream.send(event.Status, string(data))
			}
		}
	}
}
