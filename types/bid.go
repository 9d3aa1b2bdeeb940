package types

import (
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/peerbid/marketplace/types/num"
)

// Bid is a live offer on a listing. A bidder holds at most one live bid per
// listing; a locked bid is a bulk fixed-price bid already accepted but not
// yet swept into an order.
type Bid struct {
	ID          common.Hash
	Bidder      common.Address
	Asset       common.Address
	TokenID     *num.Uint
	Price       *num.Uint
	ExpiresAt   time.Time
	Fingerprint []byte
	Name        string
	Description string
	Image       string
	Locked      bool
}

func (b Bid) Key() ListingKey {
	return NewListingKey(b.Asset, b.TokenID)
}

func (b Bid) Clone() *Bid {
	cpy := b
	cpy.TokenID = b.TokenID.Clone()
	cpy.Price = b.Price.Clone()
	cpy.Fingerprint = append([]byte(nil), b.Fingerprint...)
	return &cpy
}

// BidSubmission carries the caller supplied parameters of a bid placement,
// the bid itself is built by the ledger once validated.
type BidSubmission struct {
	Bidder      common.Address
	Asset       common.Address
	TokenID     *num.Uint
	Price       *num.Uint
	Duration    time.Duration
	Fingerprint []byte
	Name        string
	Description string
	Image       string
}

// NewBidID derives a deterministic bid identifier from the submission
// content. A strictly monotonic per-listing sequence number is folded in so
// two submissions sharing every field can never collide.
func NewBidID(seq uint64, sub BidSubmission) common.Hash {
	var seqB [8]byte
	binary.BigEndian.PutUint64(seqB[:], seq)
	tokenID := sub.TokenID.Bytes32()
	price := sub.Price.Bytes32()
	var dur [8]byte
	binary.BigEndian.PutUint64(dur[:], uint64(sub.Duration))
	return crypto.Keccak256Hash(
		seqB[:],
		sub.Bidder.Bytes(),
		sub.Asset.Bytes(),
		tokenID[:],
		price[:],
		dur[:],
		sub.Fingerprint,
		[]byte(sub.Name),
		[]byte(sub.Description),
	)
}
