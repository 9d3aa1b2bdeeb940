package broker

import (
	"sync"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
)

// Subscriber interface allows pushing values to subscribers. A subscriber
// states the event types it wants, subscribing to events.All means every
// event.
type Subscriber interface {
	Push(evts ...events.Event)
	Types() []events.Type
	SetID(id int)
	ID() int
}

type subscription struct {
	Subscriber
}

// Broker - the base broker type. Everything runs in-process and in caller
// order: Send pushes to every matching subscriber before returning, which
// keeps the audit stream aligned with the single global operation ordering
// of the engines.
type Broker struct {
	log *logging.Logger
	cfg Config

	mu    sync.Mutex
	tSubs map[events.Type]map[int]*subscription
	subs  map[int]*subscription
	seqID int
}

// New creates a new base broker
func New(log *logging.Logger, cfg Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Broker{
		log:   log,
		cfg:   cfg,
		tSubs: map[events.Type]map[int]*subscription{},
		subs:  map[int]*subscription{},
	}
}

// Subscribe registers a subscriber for the types it declares and returns the
// key needed to unsubscribe it.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seqID++
	k := b.seqID
	s.SetID(k)
	sub := &subscription{Subscriber: s}
	b.subs[k] = sub
	for _, t := range s.Types() {
		if _, ok := b.tSubs[t]; !ok {
			b.tSubs[t] = map[int]*subscription{}
		}
		b.tSubs[t][k] = sub
	}
	return k
}

// SubscribeBatch registers a set of subscribers in one call.
func (b *Broker) SubscribeBatch(subs ...Subscriber) {
	for _, s := range subs {
		b.Subscribe(s)
	}
}

// Unsubscribe removes the subscriber registered under key k, a no-op for
// unknown keys.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[k]
	if !ok {
		return
	}
	for _, t := range sub.Types() {
		delete(b.tSubs[t], k)
	}
	delete(b.subs, k)
}

// Send pushes a single event to every matching subscriber.
func (b *Broker) Send(event events.Event) {
	b.SendBatch([]events.Event{event})
}

// SendBatch pushes a batch of events, preserving order.
func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, evt := range evts {
		if b.log.IsDebug() {
			b.log.Debug("sending event",
				logging.String("type", evt.Type().String()),
				logging.String("trace-id", evt.TraceID()),
			)
		}
		seen := map[int]struct{}{}
		for k, sub := range b.tSubs[evt.Type()] {
			seen[k] = struct{}{}
			sub.Push(evt)
		}
		for k, sub := range b.tSubs[events.All] {
			if _, ok := seen[k]; ok {
				continue
			}
			sub.Push(evt)
		}
	}
}
