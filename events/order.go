package events

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types"
)

// OrderOpened is emitted when acceptance creates (or overwrites) a pending
// settlement intent.
type OrderOpened struct {
	*Base
	order        *types.Order
	counterparty common.Address
}

func NewOrderOpened(ctx context.Context, order *types.Order, counterparty common.Address) *OrderOpened {
	return &OrderOpened{
		Base:         newBase(ctx, OrderOpenedEvent),
		order:        order.Clone(),
		counterparty: counterparty,
	}
}

func (e OrderOpened) Order() *types.Order {
	return e.order
}

func (e OrderOpened) Counterparty() common.Address {
	return e.counterparty
}

// OrderFinalized is emitted once an order is consumed by finalize. The
// escrow backend settles seller proceeds and fees off this event.
type OrderFinalized struct {
	*Base
	order         *types.Order
	counterparty  common.Address
	certificateID string
}

func NewOrderFinalized(ctx context.Context, order *types.Order, counterparty common.Address, certificateID string) *OrderFinalized {
	return &OrderFinalized{
		Base:          newBase(ctx, OrderFinalizedEvent),
		order:         order.Clone(),
		counterparty:  counterparty,
		certificateID: certificateID,
	}
}

func (e OrderFinalized) Order() *types.Order {
	return e.order
}

func (e OrderFinalized) Counterparty() common.Address {
	return e.counterparty
}

func (e OrderFinalized) CertificateID() string {
	return e.certificateID
}

// OrderCancelled is emitted by the operator-only escape hatch.
type OrderCancelled struct {
	*Base
	order        *types.Order
	counterparty common.Address
}

func NewOrderCancelled(ctx context.Context, order *types.Order, counterparty common.Address) *OrderCancelled {
	return &OrderCancelled{
		Base:         newBase(ctx, OrderCancelledEvent),
		order:        order.Clone(),
		counterparty: counterparty,
	}
}

func (e OrderCancelled) Order() *types.Order {
	return e.order
}

func (e OrderCancelled) Counterparty() common.Address {
	return e.counterparty
}
