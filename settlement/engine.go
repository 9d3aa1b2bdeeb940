package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/peerbid/marketplace/bids"
	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/fee"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/metrics"
	"github.com/peerbid/marketplace/orders"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// Broker send events
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/peerbid/marketplace/settlement Broker
type Broker interface {
	Send(event events.Event)
}

// AssetRegistry is the listing surface the settlement engine consumes. The
// registry owns listing metadata; the engine reads parameters and pushes
// status transitions back.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_registry_mock.go -package mocks github.com/peerbid/marketplace/settlement AssetRegistry
type AssetRegistry interface {
	GetPrice(asset common.Address, tokenID *num.Uint) (*num.Uint, error)
	GetStock(asset common.Address, tokenID *num.Uint) (uint64, error)
	GetCategory(asset common.Address, tokenID *num.Uint) (uint64, error)
	GetAuctionType(asset common.Address, tokenID *num.Uint) (types.AuctionType, error)
	GetOwner(asset common.Address, tokenID *num.Uint) (common.Address, error)
	GetStatus(asset common.Address, tokenID *num.Uint) (types.ListingStatus, error)
	IsCrossChain(asset common.Address, tokenID *num.Uint) (bool, error)
	DecrementStock(asset common.Address, tokenID *num.Uint) (uint64, error)
	PushStatus(ctx context.Context, asset common.Address, tokenID *num.Uint, status types.ListingStatus, payload []byte) error
}

// CertificateMinter issues the proof-of-purchase token at finalize.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/certificate_minter_mock.go -package mocks github.com/peerbid/marketplace/settlement CertificateMinter
type CertificateMinter interface {
	Mint(ctx context.Context, to common.Address, uri string) (*num.Uint, error)
	Burn(ctx context.Context, id *num.Uint) error
}

// AssetVault moves the listed token into escrow custody. The calls either
// fully succeed or error, there is no partial transfer. Release is the
// compensation for TransferToEscrow when a later step of the same operation
// fails.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_vault_mock.go -package mocks github.com/peerbid/marketplace/settlement AssetVault
type AssetVault interface {
	TransferToEscrow(ctx context.Context, asset common.Address, tokenID *num.Uint, from common.Address) error
	Release(ctx context.Context, asset common.Address, tokenID *num.Uint) (common.Address, error)
}

// ComposableValidator checks the fingerprint of composable assets, whose
// value depends on the child tokens attached at bid time.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/composable_validator_mock.go -package mocks github.com/peerbid/marketplace/settlement ComposableValidator
type ComposableValidator interface {
	SupportsFingerprint(asset common.Address) bool
	VerifyFingerprint(asset common.Address, tokenID *num.Uint, fingerprint []byte) bool
}

// Engine orchestrates acceptance, finalization and cancellation across the
// bid ledger, the order ledger and the asset registry. Every operation runs
// to completion inside one per-listing critical section; validations and
// reads happen before any mutation so a failure leaves all three stores
// untouched.
type Engine struct {
	log    *logging.Logger
	cfg    Config
	broker Broker

	bids       *bids.Engine
	orders     *orders.Engine
	fees       *fee.Engine
	registry   AssetRegistry
	minter     CertificateMinter
	vault      AssetVault
	composable ComposableValidator

	// operator is the single privileged principal allowed on the admin
	// surface.
	operator common.Address

	lockMu sync.Mutex
	locks  map[types.ListingKey]*sync.Mutex

	timeMu      sync.Mutex
	currentTime time.Time
}

func New(
	log *logging.Logger,
	cfg Config,
	broker Broker,
	bidLedger *bids.Engine,
	orderLedger *orders.Engine,
	feeEngine *fee.Engine,
	reg AssetRegistry,
	minter CertificateMinter,
	vault AssetVault,
	composable ComposableValidator,
	operator common.Address,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:        log,
		cfg:        cfg,
		broker:     broker,
		bids:       bidLedger,
		orders:     orderLedger,
		fees:       feeEngine,
		registry:   reg,
		minter:     minter,
		vault:      vault,
		composable: composable,
		operator:   operator,
		locks:      map[types.ListingKey]*sync.Mutex{},
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the settlement engine
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.cfg = cfg
}

// OnTick moves the engine clock used for expiry sweeps.
func (e *Engine) OnTick(_ context.Context, t time.Time) {
	e.timeMu.Lock()
	e.currentTime = t
	e.timeMu.Unlock()
}

func (e *Engine) now() time.Time {
	e.timeMu.Lock()
	defer e.timeMu.Unlock()
	return e.currentTime
}

// lockListing serialises every mutating operation touching one listing,
// which is what keeps the swap-removal indices and the bid counter
// consistent on a multi-threaded runtime.
func (e *Engine) lockListing(key types.ListingKey) func() {
	e.lockMu.Lock()
	mu, ok := e.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[key] = mu
	}
	e.lockMu.Unlock()
	mu.Lock()
	return mu.Unlock
}

// PlaceBid validates a bid against the listing parameters and records it.
// Fixed-price listings settle at placement time: a single-unit listing is
// accepted immediately, a bulk listing decrements stock and goes pending
// once the stock hits zero.
func (e *Engine) PlaceBid(ctx context.Context, sub types.BidSubmission) (*types.Bid, error) {
	done := e.lockListing(types.NewListingKey(sub.Asset, sub.TokenID))
	defer done()

	status, err := e.registry.GetStatus(sub.Asset, sub.TokenID)
	if err != nil {
		return nil, err
	}
	if status != types.ListingStatusOpen {
		metrics.RejectInc(namedLogger, "listing-not-open")
		return nil, types.ErrListingNotOpen
	}
	auctionType, err := e.registry.GetAuctionType(sub.Asset, sub.TokenID)
	if err != nil {
		return nil, err
	}
	if auctionType.IsFixedPrice() {
		price, err := e.registry.GetPrice(sub.Asset, sub.TokenID)
		if err != nil {
			return nil, err
		}
		if sub.Price == nil || sub.Price.NEQ(price) {
			metrics.RejectInc(namedLogger, "wrong-fixed-price")
			return nil, types.ErrWrongFixedPrice
		}
	}
	if auctionType == types.AuctionTypeFixedBulk {
		stock, err := e.registry.GetStock(sub.Asset, sub.TokenID)
		if err != nil {
			return nil, err
		}
		if stock == 0 {
			metrics.RejectInc(namedLogger, "stock-exhausted")
			return nil, types.ErrStockExhausted
		}
	}

	bid, err := e.bids.Place(ctx, sub)
	if err != nil {
		return nil, err
	}
	metrics.OpInc(namedLogger, "place-bid")

	switch auctionType {
	case types.AuctionTypeFixedSingle:
		if err := e.settleFixedSingle(ctx, bid); err != nil {
			// unwind the placement, the listing stays untouched
			if _, rbErr := e.bids.Remove(bid.Asset, bid.TokenID, bid.ID); rbErr != nil {
				e.log.Error("failed to unwind fixed-price placement",
					logging.BidID(bid.ID.Hex()),
					logging.Error(rbErr),
				)
			}
			return nil, err
		}
	case types.AuctionTypeFixedBulk:
		if err := e.settleFixedBulk(ctx, bid); err != nil {
			if _, rbErr := e.bids.Remove(bid.Asset, bid.TokenID, bid.ID); rbErr != nil {
				e.log.Error("failed to unwind fixed-price placement",
					logging.BidID(bid.ID.Hex()),
					logging.Error(rbErr),
				)
			}
			return nil, err
		}
	}
	return bid, nil
}

// settleFixedSingle accepts a single-unit fixed-price purchase right away:
// the asset moves into escrow and the regular acceptance path runs with the
// freshly placed bid. A failed acceptance hands custody back.
func (e *Engine) settleFixedSingle(ctx context.Context, bid *types.Bid) error {
	seller, err := e.registry.GetOwner(bid.Asset, bid.TokenID)
	if err != nil {
		return err
	}
	if err := e.vault.TransferToEscrow(ctx, bid.Asset, bid.TokenID, seller); err != nil {
		return errors.Wrap(err, "escrow transfer failed")
	}
	if err := e.acceptStandard(ctx, bid.Asset, bid.TokenID, seller, bid.ID); err != nil {
		e.releaseEscrow(ctx, bid.Asset, bid.TokenID)
		return err
	}
	return nil
}

// settleFixedBulk books one unit of stock against the bid and locks it in.
// The listing only goes pending once the stock is exhausted; the last
// processed bid triggers the escrow transfer, which id it is carries no
// meaning. The stock decrement is the final step of either branch so a
// failure never consumes a unit without its matching locked bid.
func (e *Engine) settleFixedBulk(ctx context.Context, bid *types.Bid) error {
	stock, err := e.registry.GetStock(bid.Asset, bid.TokenID)
	if err != nil {
		return err
	}
	if stock == 0 {
		return types.ErrStockExhausted
	}
	if stock > 1 {
		if err := e.bids.Lock(bid.Asset, bid.TokenID, bid.ID); err != nil {
			return err
		}
		_, err := e.registry.DecrementStock(bid.Asset, bid.TokenID)
		return err
	}

	// last unit: every fallible external step runs before the stock and
	// status are touched
	seller, err := e.registry.GetOwner(bid.Asset, bid.TokenID)
	if err != nil {
		return err
	}
	if err := e.vault.TransferToEscrow(ctx, bid.Asset, bid.TokenID, seller); err != nil {
		return errors.Wrap(err, "escrow transfer failed")
	}
	if err := e.bids.Lock(bid.Asset, bid.TokenID, bid.ID); err != nil {
		e.releaseEscrow(ctx, bid.Asset, bid.TokenID)
		return err
	}
	if err := e.registry.PushStatus(ctx, bid.Asset, bid.TokenID, types.ListingStatusPending, bid.ID.Bytes()); err != nil {
		e.releaseEscrow(ctx, bid.Asset, bid.TokenID)
		return err
	}
	if _, err := e.registry.DecrementStock(bid.Asset, bid.TokenID); err != nil {
		// the stock was read as 1 inside this critical section, the
		// decrement cannot conflict; compensate anyway
		e.releaseEscrow(ctx, bid.Asset, bid.TokenID)
		if pushErr := e.registry.PushStatus(ctx, bid.Asset, bid.TokenID, types.ListingStatusOpen, nil); pushErr != nil {
			e.log.Error("failed to roll back listing status",
				logging.AssetID(bid.Asset.Hex(), bid.TokenID.String()),
				logging.Error(pushErr),
			)
		}
		return err
	}
	return nil
}

// releaseEscrow hands an escrowed asset back on a failed settlement step.
func (e *Engine) releaseEscrow(ctx context.Context, asset common.Address, tokenID *num.Uint) {
	if _, err := e.vault.Release(ctx, asset, tokenID); err != nil {
		e.log.Error("failed to release escrowed asset",
			logging.AssetID(asset.Hex(), tokenID.String()),
			logging.Error(err),
		)
	}
}

// OnAssetReceived is the single-entry acceptance hook invoked when the
// listed asset lands in escrow. The payload encoding selects the branch:
// empty for a bulk fixed-price stock exhaustion, up to 32 bytes for a bid id
// triggered accept, longer for a uniform-price bulk accept.
func (e *Engine) OnAssetReceived(ctx context.Context, asset common.Address, tokenID *num.Uint, seller common.Address, payload []byte) error {
	if len(payload) == 0 {
		done := e.lockListing(types.NewListingKey(asset, tokenID))
		defer done()
		return e.fixedBulkExhausted(ctx, asset, tokenID)
	}
	if len(payload) <= 32 {
		return e.AcceptStandard(ctx, asset, tokenID, seller, common.BytesToHash(payload))
	}
	floorPrice, bidIDs, err := DecodeBulkPayload(payload)
	if err != nil {
		return err
	}
	return e.AcceptBulkStandard(ctx, asset, tokenID, seller, floorPrice, bidIDs)
}

// fixedBulkExhausted transitions a sold-out bulk fixed-price listing to
// pending when the escrow transfer was triggered externally rather than by
// the last placement.
func (e *Engine) fixedBulkExhausted(ctx context.Context, asset common.Address, tokenID *num.Uint) error {
	auctionType, err := e.registry.GetAuctionType(asset, tokenID)
	if err != nil {
		return err
	}
	if auctionType != types.AuctionTypeFixedBulk {
		return types.ErrBadAcceptPayload
	}
	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return err
	}
	if status != types.ListingStatusOpen {
		return types.ErrListingNotOpen
	}
	stock, err := e.registry.GetStock(asset, tokenID)
	if err != nil {
		return err
	}
	if stock != 0 {
		return types.ErrStockExhausted
	}
	return e.registry.PushStatus(ctx, asset, tokenID, types.ListingStatusPending, nil)
}

// AcceptStandard settles a single accepted bid: the bid leaves the ledger,
// the fee is taken and an order opens for the settling counterparty.
func (e *Engine) AcceptStandard(ctx context.Context, asset common.Address, tokenID *num.Uint, seller common.Address, bidID common.Hash) error {
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()
	return e.acceptStandard(ctx, asset, tokenID, seller, bidID)
}

func (e *Engine) acceptStandard(ctx context.Context, asset common.Address, tokenID *num.Uint, seller common.Address, bidID common.Hash) error {
	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return err
	}
	if status != types.ListingStatusOpen {
		return types.ErrListingNotOpen
	}
	bid, err := e.bids.GetBidByID(asset, tokenID, bidID)
	if err != nil {
		return err
	}
	// defends against stale index reuse
	if bid.ID != bidID {
		return types.ErrNoSuchBid
	}
	if e.composable.SupportsFingerprint(asset) {
		if !e.composable.VerifyFingerprint(asset, tokenID, bid.Fingerprint) {
			return types.ErrBadFingerprint
		}
	}
	auctionType, err := e.registry.GetAuctionType(asset, tokenID)
	if err != nil {
		return err
	}
	category, err := e.registry.GetCategory(asset, tokenID)
	if err != nil {
		return err
	}
	feeAmount, net := e.fees.Calculate(bid.Price, category)

	removed, err := e.bids.Remove(asset, tokenID, bidID)
	if err != nil {
		return err
	}
	if err := e.registry.PushStatus(ctx, asset, tokenID, types.ListingStatusPending, bidID.Bytes()); err != nil {
		// the ledger mutation is rolled back, nothing happened
		e.bids.Reinstate(removed)
		return err
	}

	order := &types.Order{
		Orderer:   seller,
		Bidder:    bid.Bidder,
		Asset:     asset,
		TokenID:   tokenID.Clone(),
		Price:     net,
		ExpiresAt: bid.ExpiresAt,
	}
	e.orders.Open(ctx, order.Counterparty(auctionType), order)
	e.broker.Send(events.NewBidAccepted(ctx, bid, bid.Price, feeAmount))
	metrics.OpInc(namedLogger, "accept")

	e.log.Info("bid accepted",
		logging.AssetID(asset.Hex(), tokenID.String()),
		logging.BidID(bidID.Hex()),
		logging.String("bidder", bid.Bidder.Hex()),
	)
	return nil
}

// AcceptBulkStandard settles a caller supplied set of bids at one uniform
// clearing price. The floor price may not exceed any included bid's own
// price; a violation aborts the whole call before anything is mutated. The
// bid counter is reset afterwards, invalidating any bids the accepter left
// out.
func (e *Engine) AcceptBulkStandard(ctx context.Context, asset common.Address, tokenID *num.Uint, seller common.Address, floorPrice *num.Uint, bidIDs []common.Hash) error {
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()

	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return err
	}
	if status != types.ListingStatusOpen {
		return types.ErrListingNotOpen
	}
	auctionType, err := e.registry.GetAuctionType(asset, tokenID)
	if err != nil {
		return err
	}
	category, err := e.registry.GetCategory(asset, tokenID)
	if err != nil {
		return err
	}

	// validate every bid before touching anything
	accepted := make([]*types.Bid, 0, len(bidIDs))
	for _, id := range bidIDs {
		bid, err := e.bids.GetBidByID(asset, tokenID, id)
		if err != nil {
			return err
		}
		if floorPrice.GT(bid.Price) {
			// protects bidders from an accepter quoting below their offer
			return types.ErrPriceBelowFloor
		}
		accepted = append(accepted, bid)
	}

	fp := floorPrice.Bytes32()
	if err := e.registry.PushStatus(ctx, asset, tokenID, types.ListingStatusPending, fp[:]); err != nil {
		return err
	}

	feeAmount, net := e.fees.Calculate(floorPrice, category)
	for _, bid := range accepted {
		if _, err := e.bids.Remove(asset, tokenID, bid.ID); err != nil {
			// validated above inside the same critical section
			e.log.Error("bulk accept lost a validated bid",
				logging.BidID(bid.ID.Hex()),
				logging.Error(err),
			)
			continue
		}
		order := &types.Order{
			Orderer:   seller,
			Bidder:    bid.Bidder,
			Asset:     asset,
			TokenID:   tokenID.Clone(),
			Price:     net.Clone(),
			ExpiresAt: bid.ExpiresAt,
		}
		e.orders.Open(ctx, order.Counterparty(auctionType), order)
		e.broker.Send(events.NewBidAccepted(ctx, bid, floorPrice, feeAmount))
	}
	e.bids.Reset(asset, tokenID)
	metrics.OpInc(namedLogger, "accept-bulk")
	return nil
}

// Finalize consumes the pending order, mints the proof-of-purchase
// certificate to the settling party and reports success to the registry.
// For cross-chain listings the certificate is burned right away so no
// duplicate proof can be issued for the same sale.
func (e *Engine) Finalize(ctx context.Context, asset common.Address, tokenID *num.Uint, counterparty, caller common.Address, proofURI string) (*num.Uint, error) {
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()
	return e.finalize(ctx, asset, tokenID, counterparty, caller, proofURI)
}

// ForceFinalize is the operator override of Finalize, bypassing the
// settling-side caller check.
func (e *Engine) ForceFinalize(ctx context.Context, asset common.Address, tokenID *num.Uint, counterparty, caller common.Address, proofURI string) (*num.Uint, error) {
	if caller != e.operator {
		return nil, types.ErrNotAuthorized
	}
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()
	return e.finalize(ctx, asset, tokenID, counterparty, counterparty, proofURI)
}

func (e *Engine) finalize(ctx context.Context, asset common.Address, tokenID *num.Uint, counterparty, caller common.Address, proofURI string) (*num.Uint, error) {
	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return nil, err
	}
	if status != types.ListingStatusPending {
		return nil, types.ErrListingNotPending
	}
	auctionType, err := e.registry.GetAuctionType(asset, tokenID)
	if err != nil {
		return nil, err
	}
	crossChain, err := e.registry.IsCrossChain(asset, tokenID)
	if err != nil {
		return nil, err
	}

	order, err := e.orders.Finalize(asset, tokenID, counterparty, caller, auctionType)
	if err != nil {
		return nil, err
	}
	certID, err := e.minter.Mint(ctx, counterparty, proofURI)
	if err != nil {
		e.orders.Open(ctx, counterparty, order)
		return nil, errors.Wrap(err, "certificate mint failed")
	}
	if crossChain {
		if err := e.minter.Burn(ctx, certID); err != nil {
			e.orders.Open(ctx, counterparty, order)
			return nil, errors.Wrap(err, "certificate burn failed")
		}
	}
	certBytes := certID.Bytes32()
	if err := e.registry.PushStatus(ctx, asset, tokenID, types.ListingStatusSuccess, certBytes[:]); err != nil {
		e.orders.Open(ctx, counterparty, order)
		return nil, err
	}

	e.broker.Send(events.NewOrderFinalized(ctx, order, counterparty, certID.String()))
	e.broker.Send(events.NewCertificateMinted(ctx, certID.String(), counterparty, proofURI, crossChain))
	metrics.OpInc(namedLogger, "finalize")

	e.log.Info("order finalized",
		logging.AssetID(asset.Hex(), tokenID.String()),
		logging.String("counterparty", counterparty.Hex()),
		logging.String("certificate-id", certID.String()),
	)
	return certID, nil
}

// Cancel is the operator-only escape hatch deleting a pending order and
// reporting the listing cancelled. Neither transacting party can call it.
func (e *Engine) Cancel(ctx context.Context, asset common.Address, tokenID *num.Uint, counterparty, caller common.Address) error {
	if caller != e.operator {
		return types.ErrNotAuthorized
	}
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()

	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return err
	}
	if status != types.ListingStatusPending {
		return types.ErrListingNotPending
	}
	order, err := e.orders.Cancel(ctx, asset, tokenID, counterparty)
	if err != nil {
		return err
	}
	if err := e.registry.PushStatus(ctx, asset, tokenID, types.ListingStatusCancelled, nil); err != nil {
		e.orders.Open(ctx, counterparty, order)
		return err
	}
	metrics.OpInc(namedLogger, "cancel")
	return nil
}

// FixLockedBids is the administrative sweep turning the locked bids of a
// sold-out bulk fixed-price listing into orders, one per bidder, at the
// listing price minus fee.
func (e *Engine) FixLockedBids(ctx context.Context, asset common.Address, tokenID *num.Uint, seller, caller common.Address) error {
	if caller != e.operator {
		return types.ErrNotAuthorized
	}
	done := e.lockListing(types.NewListingKey(asset, tokenID))
	defer done()

	auctionType, err := e.registry.GetAuctionType(asset, tokenID)
	if err != nil {
		return err
	}
	if auctionType != types.AuctionTypeFixedBulk {
		return types.ErrBadAcceptPayload
	}
	status, err := e.registry.GetStatus(asset, tokenID)
	if err != nil {
		return err
	}
	if status != types.ListingStatusPending {
		return types.ErrListingNotPending
	}
	price, err := e.registry.GetPrice(asset, tokenID)
	if err != nil {
		return err
	}
	category, err := e.registry.GetCategory(asset, tokenID)
	if err != nil {
		return err
	}
	feeAmount, net := e.fees.Calculate(price, category)

	for _, bid := range e.bids.TakeLocked(asset, tokenID) {
		order := &types.Order{
			Orderer:   seller,
			Bidder:    bid.Bidder,
			Asset:     asset,
			TokenID:   tokenID.Clone(),
			Price:     net.Clone(),
			ExpiresAt: bid.ExpiresAt,
		}
		e.orders.Open(ctx, order.Counterparty(auctionType), order)
		e.broker.Send(events.NewBidAccepted(ctx, bid, price, feeAmount))
	}
	metrics.OpInc(namedLogger, "fix-locked-bids")
	return nil
}

// SweepExpiredBids is the operator batch removing expired bids. Each entry
// is independently atomic and reported in its own result, one bad entry
// never aborts the rest.
func (e *Engine) SweepExpiredBids(ctx context.Context, entries []bids.ExpiredBid, caller common.Address) ([]bids.SweepResult, error) {
	if caller != e.operator {
		return nil, types.ErrNotAuthorized
	}
	return e.bids.SweepExpired(ctx, entries, e.now()), nil
}

// SetCategoryCut updates the marketplace cut for a listing category,
// operator only.
func (e *Engine) SetCategoryCut(caller common.Address, category, cut uint64) error {
	if caller != e.operator {
		return types.ErrNotAuthorized
	}
	return e.fees.SetCategoryCut(category, cut)
}

// SetOperator hands the privileged principal over to a new address,
// operator only.
func (e *Engine) SetOperator(caller, operator common.Address) error {
	if caller != e.operator {
		return types.ErrNotAuthorized
	}
	e.operator = operator
	e.log.Info("operator updated", logging.String("operator", operator.Hex()))
	return nil
}
