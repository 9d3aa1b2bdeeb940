package events

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types"
)

// ListingStatus is emitted alongside every status transition pushed to the
// asset registry.
type ListingStatus struct {
	*Base
	key    types.ListingKey
	status types.ListingStatus
}

func NewListingStatus(ctx context.Context, key types.ListingKey, status types.ListingStatus) *ListingStatus {
	return &ListingStatus{
		Base:   newBase(ctx, ListingStatusEvent),
		key:    key,
		status: status,
	}
}

func (e ListingStatus) Key() types.ListingKey {
	return e.key
}

func (e ListingStatus) Status() types.ListingStatus {
	return e.status
}

// CertificateMinted is emitted when finalize mints the proof-of-purchase
// token. Burned reports whether it was retired immediately, which is the
// case for cross-chain listings.
type CertificateMinted struct {
	*Base
	id     string
	owner  common.Address
	uri    string
	burned bool
}

func NewCertificateMinted(ctx context.Context, id string, owner common.Address, uri string, burned bool) *CertificateMinted {
	return &CertificateMinted{
		Base:   newBase(ctx, CertificateMintedEvent),
		id:     id,
		owner:  owner,
		uri:    uri,
		burned: burned,
	}
}

func (e CertificateMinted) ID() string {
	return e.id
}

func (e CertificateMinted) Owner() common.Address {
	return e.owner
}

func (e CertificateMinted) URI() string {
	return e.uri
}

func (e CertificateMinted) Burned() bool {
	return e.burned
}
