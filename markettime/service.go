package markettime

import (
	"context"
	"sync"
	"time"

	"github.com/peerbid/marketplace/events"
)

// Broker send events
type Broker interface {
	Send(event events.Event)
}

// Svc distributes the authoritative marketplace time. Expiry is a logical
// timestamp comparison against this clock, never a scheduled event, so
// moving the clock is the only way time passes for the engines.
type Svc struct {
	config Config
	broker Broker

	mu          sync.Mutex
	currentTime time.Time
	listeners   []func(context.Context, time.Time)
}

func New(cfg Config, broker Broker) *Svc {
	return &Svc{
		config: cfg,
		broker: broker,
	}
}

// ReloadConf reload the configuration for the markettime service
func (s *Svc) ReloadConf(cfg Config) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

// SetTimeNow sets the current time, notifies every registered listener in
// registration order and emits a time update event.
func (s *Svc) SetTimeNow(ctx context.Context, t time.Time) {
	s.mu.Lock()
	s.currentTime = t
	listeners := s.listeners
	s.mu.Unlock()

	for _, f := range listeners {
		f(ctx, t)
	}
	s.broker.Send(events.NewTime(ctx, t.UnixNano()))
}

// GetTimeNow returns the last time set.
func (s *Svc) GetTimeNow() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTime
}

// NotifyOnTick registers callbacks invoked on every time update.
func (s *Svc) NotifyOnTick(callbacks ...func(context.Context, time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, callbacks...)
}
