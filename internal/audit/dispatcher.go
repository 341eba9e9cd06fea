package audit

import (
	"context"
	"log"
	"sync"
)

type Event struct {
	UserID    *uint
	UserRole  string
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  any
}

const (
	ActionClientCreated = "client_created"
	ActionClientUpdated = "client_updated"
	ActionClientDeleted = "client_deleted"

	EntityClient = "client"
)

type Dispatcher struct {
	sink  Sink
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
