package types

import "errors"

// Every failure the core surfaces is one of these sentinels. All of them
// reject before any mutation: a failed call leaves every store untouched.
var (
	// validation
	ErrInvalidPrice     = errors.New("bid price must be a positive amount")
	ErrDurationTooShort = errors.New("bid duration below the minimum")
	ErrDurationTooLong  = errors.New("bid duration above the maximum")
	ErrSelfBid          = errors.New("asset owner cannot bid on their own listing")
	ErrWrongFixedPrice  = errors.New("bid price does not match the fixed listing price")
	ErrPriceBelowFloor  = errors.New("floor price is above the bid price")
	ErrBadFingerprint   = errors.New("composable asset fingerprint mismatch")
	ErrInvalidFeeCut    = errors.New("fee cut outside [0, 999999] parts per million")
	ErrBadAcceptPayload = errors.New("malformed acceptance payload")

	// not found
	ErrNoActiveBid = errors.New("no active bid for this bidder on this listing")
	ErrNoSuchBid   = errors.New("no bid with this id on this listing")
	ErrNoSuchOrder = errors.New("no open order for this counterparty on this listing")
	ErrNoListing   = errors.New("no listing registered for this asset")

	// authorization
	ErrWrongCaller   = errors.New("caller is not the settling side of this order")
	ErrNotAuthorized = errors.New("caller is not a marketplace operator")

	// state conflict
	ErrNotExpired        = errors.New("bid has not expired yet")
	ErrListingNotOpen    = errors.New("listing is not open")
	ErrListingNotPending = errors.New("listing is not pending settlement")
	ErrStockExhausted    = errors.New("listing stock already fully sold")
	ErrBidLocked         = errors.New("bid is locked for settlement")
)

// ErrorKind buckets the sentinels into the four failure classes callers can
// act on.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindStateConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not-found"
	case KindAuthorization:
		return "authorization"
	case KindStateConflict:
		return "state-conflict"
	default:
		return "unknown"
	}
}

// Kind classifies an error returned by the core. Wrapped errors are
// unwrapped on the way.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrDurationTooShort),
		errors.Is(err, ErrDurationTooLong),
		errors.Is(err, ErrSelfBid),
		errors.Is(err, ErrWrongFixedPrice),
		errors.Is(err, ErrPriceBelowFloor),
		errors.Is(err, ErrBadFingerprint),
		errors.Is(err, ErrInvalidFeeCut),
		errors.Is(err, ErrBadAcceptPayload):
		return KindValidation
	case errors.Is(err, ErrNoActiveBid),
		errors.Is(err, ErrNoSuchBid),
		errors.Is(err, ErrNoSuchOrder),
		errors.Is(err, ErrNoListing):
		return KindNotFound
	case errors.Is(err, ErrWrongCaller),
		errors.Is(err, ErrNotAuthorized):
		return KindAuthorization
	case errors.Is(err, ErrNotExpired),
		errors.Is(err, ErrListingNotOpen),
		errors.Is(err, ErrListingNotPending),
		errors.Is(err, ErrStockExhausted),
		errors.Is(err, ErrBidLocked):
		return KindStateConflict
	}
	return KindUnknown
}
