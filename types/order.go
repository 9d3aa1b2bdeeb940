package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types/num"
)

// Order is a pending settlement intent created when a bid or fixed-price
// purchase is accepted. It is keyed by the listing plus the counterparty that
// must call finalize: the bidder for standard and fixed-price listings, the
// orderer for reverse auctions.
type Order struct {
	Orderer   common.Address
	Bidder    common.Address
	Asset     common.Address
	TokenID   *num.Uint
	Price     *num.Uint // net of the marketplace fee, baked in at acceptance
	ExpiresAt time.Time
}

func (o Order) Key() ListingKey {
	return NewListingKey(o.Asset, o.TokenID)
}

// Counterparty returns the side expected to call finalize for the given
// auction type.
func (o Order) Counterparty(t AuctionType) common.Address {
	if t == AuctionTypeReverse {
		return o.Orderer
	}
	return o.Bidder
}

func (o Order) Clone() *Order {
	cpy := o
	cpy.TokenID = o.TokenID.Clone()
	cpy.Price = o.Price.Clone()
	return &cpy
}

// OrderKey identifies a live order: one listing can hold one live order per
// counterparty at a time.
type OrderKey struct {
	ListingKey
	Counterparty common.Address
}

func NewOrderKey(asset common.Address, tokenID *num.Uint, counterparty common.Address) OrderKey {
	return OrderKey{
		ListingKey:   NewListingKey(asset, tokenID),
		Counterparty: counterparty,
	}
}
