package service

import (
	"sync"

	"github.com/bnema/vidq/internal/metrics"
)

// Job event statuses.
const (
	EventQueued  = "queued"
	EventStarted = "started"
	EventDone    = "done"
	EventFailed  = "failed"
)

const subscriberBuffer = 16

type Event struct {
	VideoID string `json:"videoId"`
	Key     string `json:"key"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type EventPublisher interface {
	Publish(videoID string, event Event)
}

// EventBus fans job events out to the subscribers of one video. A subscriber
// whose buffer is full misses the event; publishing never blocks.
type EventBus struct {
	mu     sync.RWMutex
	topics map[string]map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{topics: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers interest in videoID. The returned cancel func removes
// the subscription and closes the channel; calling it twice is harmless.
func (eb *EventBus) Subscribe(videoID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	eb.mu.Lock()
	subs, ok := eb.topics[videoID]
	if !ok {
		subs = make(map[chan Event]struct{})
		eb.topics[videoID] = subs
	}
	subs[ch] = struct{}{}
	eb.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { eb.remove(videoID, ch) })
	}
}

func (eb *EventBus) remove(videoID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.topics[videoID]
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(eb.topics, videoID)
	}
}

// Subscribers reports how many subscriptions videoID has.
func (eb *EventBus) Subscribers(videoID string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.topics[videoID])
}

func (eb *EventBus) Publish(videoID string, event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for ch := range eb.topics[videoID] {
		select {
		case ch <- event:
		default:
			metrics.EventsDropped.Inc()
		}
	}
}
