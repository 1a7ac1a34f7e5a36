package notif

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Publisher is the write side of the bus, the only part services see.
type Publisher interface {
	Publish(event Event)
}

type Observer interface {
	Update(event Event) error
	Name() string
}

type Subject interface {
	Publisher
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
}

// Bus is an in-process observer registry. The original store pushed query
// invalidations to the UI on every write; services publish an event per
// affected user after each successful mutation and delivery layers (the
// websocket hub) subscribe.
type Bus struct {
	mu        sync.RWMutex
	observers []Observer
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, observer)
}

func (b *Bus) Unsubscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, o := range b.observers {
		if o == observer {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every observer. Delivery failures are logged
// and dropped; the mutation that triggered the event has already committed.
func (b *Bus) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	observers := make([]Observer, len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	for _, o := range observers {
		if err := o.Update(event); err != nil {
			log.Warn("observer failed", "observer", o.Name(), "event", event.Type, "err", err)
		}
	}
}

// NopPublisher discards events; used where no delivery layer is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
