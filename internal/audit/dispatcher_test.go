package audit

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *countingSink) Record(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherDeliversBeforeClose(t *testing.T) {
	sink := &countingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	actor := Actor{ID: "admin-1", Role: "admin"}
	d.Dispatch(EventFor(actor, "user_approved", "user", "u1", nil))
	d.Dispatch(EventFor(actor, "user_rejected", "user", "u2", nil))

	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "user_approved", sink.events[0].Action)
	assert.Equal(t, "user_rejected", sink.events[1].Action)
}

func TestNilDispatcherIsNoOp(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
	d.Close()
}

func TestEventFor(t *testing.T) {
	ev := EventFor(Actor{ID: "u1", Role: "doctor"}, "prescription_issued", "prescription", "rx1",
		map[string]string{"renewed_from": "rx0"})

	require.NotNil(t, ev.ActorID)
	assert.Equal(t, "u1", *ev.ActorID)
	assert.Equal(t, "doctor", ev.ActorRole)
	require.NotNil(t, ev.EntityID)
	assert.Equal(t, "rx1", *ev.EntityID)

	// Anonymous actors and missing entity ids stay nil.
	ev = EventFor(Actor{}, "noop", "user", "", nil)
	assert.Nil(t, ev.ActorID)
	assert.Nil(t, ev.EntityID)
}
