package events

import (
	"context"

	uuid "github.com/satori/go.uuid"
)

type Type int

// Event is the common surface of every audit event the core emits.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
}

const (
	// All event type -> used by subscribers to just receive all events, has
	// no actual corresponding event payload
	All Type = iota
	TimeUpdate
	BidCreatedEvent
	BidCancelledEvent
	BidAcceptedEvent
	OrderOpenedEvent
	OrderFinalizedEvent
	OrderCancelledEvent
	ListingStatusEvent
	CertificateMintedEvent
)

var eventStrings = map[Type]string{
	All:                    "ALL",
	TimeUpdate:             "TimeUpdate",
	BidCreatedEvent:        "BidCreated",
	BidCancelledEvent:      "BidCancelled",
	BidAcceptedEvent:       "BidAccepted",
	OrderOpenedEvent:       "OrderOpened",
	OrderFinalizedEvent:    "OrderFinalized",
	OrderCancelledEvent:    "OrderCancelled",
	ListingStatusEvent:     "ListingStatus",
	CertificateMintedEvent: "CertificateMinted",
}

// String get string representation of event type
func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

type traceIDKey struct{}

// WithTraceID returns a context carrying the given trace id, every event
// built from that context shares it.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

func traceIDFromContext(ctx context.Context) (context.Context, string) {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return ctx, id
	}
	id := uuid.NewV4().String()
	return WithTraceID(ctx, id), id
}

// Base common denominator all event-bus events share
type Base struct {
	ctx     context.Context
	traceID string
	et      Type
}

// A base event holds no data, so the constructor will not be called directly
func newBase(ctx context.Context, t Type) *Base {
	ctx, tID := traceIDFromContext(ctx)
	return &Base{
		ctx:     ctx,
		traceID: tID,
		et:      t,
	}
}

// TraceID returns the... traceID obviously
func (b Base) TraceID() string {
	return b.traceID
}

// Context returns context
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type
func (b Base) Type() Type {
	return b.et
}

// Time event carrying the new marketplace time.
type Time struct {
	*Base
	blockTime int64
}

func NewTime(ctx context.Context, unixNano int64) *Time {
	return &Time{
		Base:      newBase(ctx, TimeUpdate),
		blockTime: unixNano,
	}
}

func (t Time) UnixNano() int64 {
	return t.blockTime
}
