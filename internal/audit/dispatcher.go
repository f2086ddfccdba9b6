package audit

import "github.com/rs/zerolog"

type Actor struct {
	ID   string
	Role string
}

type Event struct {
	ActorID   *string
	ActorRole string
	Action    string
	Entity    string
	EntityID  *string
	Metadata  any
}

// Sink receives dispatched events. The gorm Logger is the production sink;
// tests plug in a counter.
type Sink interface {
	Record(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}
	log   zerolog.Logger
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			d.log.Warn().Err(err).Str("action", ev.Action).Msg("audit record failed")
		}
	}
	close(d.done)
}

// Dispatch never blocks a request: a full queue drops the event. A nil
// dispatcher is a no-op, which simplifies test wiring.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker to finish.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	<-d.done
}

// EventFor builds the common shape of a lifecycle audit event.
func EventFor(actor Actor, action string, entity string, entityID string, metadata any) Event {
	ev := Event{
		ActorRole: actor.Role,
		Action:    action,
		Entity:    entity,
		Metadata:  metadata,
	}
	if actor.ID != "" {
		id := actor.ID
		ev.ActorID = &id
	}
	if entityID != "" {
		eid := entityID
		ev.EntityID = &eid
	}
	return ev
}
