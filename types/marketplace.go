package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types/num"
)

// AuctionType is how a listing sells: english auction, reverse auction, or
// fixed price in single or bulk-stock form. Numeric values are part of the
// persisted listing layout and must not be reordered.
type AuctionType int32

const (
	AuctionTypeReverse     AuctionType = 0
	AuctionTypeStandard    AuctionType = 1
	AuctionTypeFixedSingle AuctionType = 3
	AuctionTypeFixedBulk   AuctionType = 4
)

func (t AuctionType) String() string {
	switch t {
	case AuctionTypeReverse:
		return "REVERSE"
	case AuctionTypeStandard:
		return "STANDARD"
	case AuctionTypeFixedSingle:
		return "FIXED_SINGLE"
	case AuctionTypeFixedBulk:
		return "FIXED_BULK"
	default:
		return "UNKNOWN"
	}
}

// IsFixedPrice returns whether bids on this listing must match the listing
// price exactly.
func (t AuctionType) IsFixedPrice() bool {
	return t == AuctionTypeFixedSingle || t == AuctionTypeFixedBulk
}

// ListingStatus is the per-listing settlement state machine:
// OPEN -> PENDING -> {SUCCESS, CANCELLED}. FAIL is reserved, no transition
// produces it.
type ListingStatus int32

const (
	ListingStatusOpen ListingStatus = iota
	ListingStatusPending
	ListingStatusSuccess
	ListingStatusFail
	ListingStatusCancelled
)

func (s ListingStatus) String() string {
	switch s {
	case ListingStatusOpen:
		return "OPEN"
	case ListingStatusPending:
		return "PENDING"
	case ListingStatusSuccess:
		return "SUCCESS"
	case ListingStatusFail:
		return "FAIL"
	case ListingStatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// ListingKey identifies a listing by the asset contract and token id. The
// token id is held as a fixed 32 byte array so the key is comparable and can
// be used directly as a map key.
type ListingKey struct {
	Asset   common.Address
	TokenID [32]byte
}

func NewListingKey(asset common.Address, tokenID *num.Uint) ListingKey {
	return ListingKey{
		Asset:   asset,
		TokenID: tokenID.Bytes32(),
	}
}

func (k ListingKey) Token() *num.Uint {
	u, _ := UintFrom32(k.TokenID)
	return u
}

func (k ListingKey) String() string {
	return k.Asset.Hex() + "/" + k.Token().String()
}

// UintFrom32 rebuilds a num.Uint from its fixed 32 byte form.
func UintFrom32(b [32]byte) (*num.Uint, bool) {
	return num.UintFromString("0x"+common.Bytes2Hex(b[:]), 0)
}

// Listing is the read model the settlement engine consumes from the asset
// registry. The registry owns it, the core only pushes status transitions
// back.
type Listing struct {
	Asset       common.Address
	TokenID     *num.Uint
	Owner       common.Address
	Price       *num.Uint
	Stock       uint64
	Category    uint64
	Expiry      time.Time
	AuctionType AuctionType
	Status      ListingStatus
	CrossChain  bool
}

func (l Listing) Key() ListingKey {
	return NewListingKey(l.Asset, l.TokenID)
}
