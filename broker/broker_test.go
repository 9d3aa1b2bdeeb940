package broker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerbid/marketplace/broker"
	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
)

type stubSub struct {
	id    int
	types []events.Type
	got   []events.Event
}

func newStubSub(types ...events.Type) *stubSub {
	return &stubSub{types: types}
}

func (s *stubSub) Push(evts ...events.Event) { s.got = append(s.got, evts...) }
func (s *stubSub) Types() []events.Type      { return s.types }
func (s *stubSub) SetID(id int)              { s.id = id }
func (s *stubSub) ID() int                   { return s.id }

func getTestBroker(t *testing.T) *broker.Broker {
	t.Helper()
	return broker.New(logging.NewTestLogger(), broker.NewDefaultConfig())
}

func TestSendRoutesByType(t *testing.T) {
	b := getTestBroker(t)
	ctx := context.Background()

	timeSub := newStubSub(events.TimeUpdate)
	allSub := newStubSub(events.All)
	b.SubscribeBatch(timeSub, allSub)

	b.Send(events.NewTime(ctx, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).UnixNano()))

	require.Len(t, timeSub.got, 1)
	require.Len(t, allSub.got, 1)
	assert.Equal(t, events.TimeUpdate, timeSub.got[0].Type())
}

func TestAllSubscriberIsNotPushedTwice(t *testing.T) {
	b := getTestBroker(t)

	// subscribed both to the concrete type and the catch-all
	sub := newStubSub(events.TimeUpdate, events.All)
	b.Subscribe(sub)

	b.Send(events.NewTime(context.Background(), time.Now().UnixNano()))
	assert.Len(t, sub.got, 1)
}

func TestUnsubscribe(t *testing.T) {
	b := getTestBroker(t)

	sub := newStubSub(events.TimeUpdate)
	k := b.Subscribe(sub)
	b.Unsubscribe(k)
	// unknown key is a no-op
	b.Unsubscribe(k)

	b.Send(events.NewTime(context.Background(), time.Now().UnixNano()))
	assert.Empty(t, sub.got)
}

func TestSendBatchPreservesOrder(t *testing.T) {
	b := getTestBroker(t)
	ctx := context.Background()

	sub := newStubSub(events.All)
	b.Subscribe(sub)

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b.SendBatch([]events.Event{
		events.NewTime(ctx, t0.UnixNano()),
		events.NewTime(ctx, t0.Add(time.Second).UnixNano()),
		events.NewTime(ctx, t0.Add(2*time.Second).UnixNano()),
	})

	require.Len(t, sub.got, 3)
	for i, e := range sub.got {
		te, ok := e.(*events.Time)
		require.True(t, ok)
		assert.Equal(t, t0.Add(time.Duration(i)*time.Second).UnixNano(), te.UnixNano())
	}
}
