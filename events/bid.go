package events

import (
	"context"

	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// BidCreated carries the full snapshot of a freshly placed or replaced bid.
type BidCreated struct {
	*Base
	bid *types.Bid
}

func NewBidCreated(ctx context.Context, bid *types.Bid) *BidCreated {
	return &BidCreated{
		Base: newBase(ctx, BidCreatedEvent),
		bid:  bid.Clone(),
	}
}

func (e BidCreated) Bid() *types.Bid {
	return e.bid
}

func (e BidCreated) IsParty(id string) bool {
	return e.bid.Bidder.Hex() == id
}

// BidCancelled is emitted for explicit cancels and for expiry removals
// alike, the two paths share the removal logic.
type BidCancelled struct {
	*Base
	bid     *types.Bid
	expired bool
}

func NewBidCancelled(ctx context.Context, bid *types.Bid, expired bool) *BidCancelled {
	return &BidCancelled{
		Base:    newBase(ctx, BidCancelledEvent),
		bid:     bid.Clone(),
		expired: expired,
	}
}

func (e BidCancelled) Bid() *types.Bid {
	return e.bid
}

func (e BidCancelled) Expired() bool {
	return e.expired
}

// BidAccepted records an acceptance: the bid, the price it cleared at (the
// uniform floor price for bulk acceptance, the bid price otherwise) and the
// fee taken.
type BidAccepted struct {
	*Base
	bid          *types.Bid
	clearedPrice *num.Uint
	fee          *num.Uint
}

func NewBidAccepted(ctx context.Context, bid *types.Bid, clearedPrice, fee *num.Uint) *BidAccepted {
	return &BidAccepted{
		Base:         newBase(ctx, BidAcceptedEvent),
		bid:          bid.Clone(),
		clearedPrice: clearedPrice.Clone(),
		fee:          fee.Clone(),
	}
}

func (e BidAccepted) Bid() *types.Bid {
	return e.bid
}

func (e BidAccepted) ClearedPrice() *num.Uint {
	return e.clearedPrice.Clone()
}

func (e BidAccepted) Fee() *num.Uint {
	return e.fee.Clone()
}
