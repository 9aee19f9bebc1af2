package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishToSubscribers(t *testing.T) {
	eb := NewEventBus()
	a, cancelA := eb.Subscribe("ab12cd34")
	defer cancelA()
	b, cancelB := eb.Subscribe("ab12cd34")
	defer cancelB()
	other, cancelOther := eb.Subscribe("ef56ab78")
	defer cancelOther()

	assert.Equal(t, 2, eb.Subscribers("ab12cd34"))

	eb.Publish("ab12cd34", Event{VideoID: "ab12cd34", Key: "320x240", Status: EventDone})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventDone, ev.Status)
			assert.Equal(t, "320x240", ev.Key)
		default:
			t.Fatal("expected an event")
		}
	}
	assert.Empty(t, other)
}

func TestEventBus_Cancel(t *testing.T) {
	eb := NewEventBus()
	ch, cancel := eb.Subscribe("ab12cd34")

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
	assert.Zero(t, eb.Subscribers("ab12cd34"))
	assert.NotContains(t, eb.topics, "ab12cd34")

	// Publishing without subscribers is a no-op.
	eb.Publish("ab12cd34", Event{Status: EventQueued})
}

func TestEventBus_DropsWhenFull(t *testing.T) {
	eb := NewEventBus()
	ch, cancel := eb.Subscribe("ab12cd34")
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		eb.Publish("ab12cd34", Event{Status: EventQueued})
	}

	require.Len(t, ch, subscriberBuffer)
}
