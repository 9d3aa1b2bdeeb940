package subscribers

import (
	"github.com/peerbid/marketplace/events"
)

// Base carries the subscriber bookkeeping the broker needs: the id it was
// registered under and the event types it wants.
type Base struct {
	id    int
	types []events.Type
}

func NewBase(types ...events.Type) *Base {
	return &Base{types: types}
}

// Types returns the event types this subscriber wants pushed.
func (b *Base) Types() []events.Type {
	return b.types
}

// SetID set the subscriber's id, called by the broker on subscribe.
func (b *Base) SetID(id int) {
	b.id = id
}

// ID returns the subscriber's id
func (b *Base) ID() int {
	return b.id
}
