package bids

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/metrics"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// Bid durations accepted at placement.
const (
	MinDuration = time.Minute
	MaxDuration = 182 * 24 * time.Hour
)

// Broker send events
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/peerbid/marketplace/bids Broker
type Broker interface {
	Send(event events.Event)
}

// OwnershipProvider resolves the current owner of a listed token, used to
// refuse self-bids.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ownership_provider_mock.go -package mocks github.com/peerbid/marketplace/bids OwnershipProvider
type OwnershipProvider interface {
	OwnerOf(asset common.Address, tokenID *num.Uint) (common.Address, error)
}

// arena is the per-listing dense bid store. Removal swaps the last element
// into the vacated slot and truncates; byID and byBidder are the
// back-references and every mutation of the three happens inside a single
// arena method so they cannot drift.
type arena struct {
	bids     []*types.Bid
	byID     map[common.Hash]int
	byBidder map[common.Address]common.Hash

	// counter tracks live bids, it is what bulk acceptance resets.
	counter uint64
	// seq only ever grows, it feeds the bid id derivation so identical
	// resubmissions still get distinct ids.
	seq uint64
}

func newArena() *arena {
	return &arena{
		byID:     map[common.Hash]int{},
		byBidder: map[common.Address]common.Hash{},
	}
}

// insert places a bid in the arena, reusing the slot of the bidder's
// previous live bid when there is one.
func (a *arena) insert(bid *types.Bid) (replaced *types.Bid) {
	if oldID, ok := a.byBidder[bid.Bidder]; ok {
		idx := a.byID[oldID]
		replaced = a.bids[idx]
		a.bids[idx] = bid
		delete(a.byID, oldID)
		a.byID[bid.ID] = idx
		a.byBidder[bid.Bidder] = bid.ID
		return replaced
	}
	a.byID[bid.ID] = len(a.bids)
	a.bids = append(a.bids, bid)
	a.byBidder[bid.Bidder] = bid.ID
	a.counter++
	metrics.LiveBidsAdd(1)
	return nil
}

// removeAt swap-removes the bid at idx and fixes both back-references.
func (a *arena) removeAt(idx int) *types.Bid {
	bid := a.bids[idx]
	last := len(a.bids) - 1
	if idx != last {
		moved := a.bids[last]
		a.bids[idx] = moved
		a.byID[moved.ID] = idx
	}
	a.bids[last] = nil
	a.bids = a.bids[:last]
	delete(a.byID, bid.ID)
	delete(a.byBidder, bid.Bidder)
	if a.counter > 0 {
		a.counter--
	}
	metrics.LiveBidsAdd(-1)
	return bid
}

func (a *arena) lookupByBidder(bidder common.Address) (*types.Bid, int, error) {
	id, ok := a.byBidder[bidder]
	if !ok {
		return nil, 0, types.ErrNoActiveBid
	}
	idx, ok := a.byID[id]
	if !ok || idx >= len(a.bids) || a.bids[idx].Bidder != bidder {
		// stale or removed slot
		return nil, 0, types.ErrNoActiveBid
	}
	return a.bids[idx], idx, nil
}

func (a *arena) lookupByID(id common.Hash) (*types.Bid, int, error) {
	idx, ok := a.byID[id]
	if !ok || idx >= len(a.bids) || a.bids[idx].ID != id {
		return nil, 0, types.ErrNoSuchBid
	}
	return a.bids[idx], idx, nil
}

// Engine is the bid ledger. It enforces at most one live bid per bidder per
// listing, repeat placement atomically retires the previous bid. All
// mutating calls are serialised, the settlement engine layers its own
// per-listing critical sections on top for multi-store operations.
type Engine struct {
	log       *logging.Logger
	cfg       Config
	broker    Broker
	ownership OwnershipProvider

	mu          sync.Mutex
	arenas      map[types.ListingKey]*arena
	currentTime time.Time
}

func New(log *logging.Logger, cfg Config, broker Broker, ownership OwnershipProvider) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:       log,
		cfg:       cfg,
		broker:    broker,
		ownership: ownership,
		arenas:    map[types.ListingKey]*arena{},
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the bid ledger
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

// OnTick moves the ledger clock, expiry checks compare against it.
func (e *Engine) OnTick(_ context.Context, t time.Time) {
	e.mu.Lock()
	e.currentTime = t
	e.mu.Unlock()
}

func (e *Engine) arena(key types.ListingKey) *arena {
	a, ok := e.arenas[key]
	if !ok {
		a = newArena()
		e.arenas[key] = a
	}
	return a
}

// Place validates and records a bid. A repeat bid from the same bidder on
// the same listing replaces the previous one in place, reusing its slot.
func (e *Engine) Place(ctx context.Context, sub types.BidSubmission) (*types.Bid, error) {
	if sub.Price == nil || sub.Price.IsZero() {
		return nil, types.ErrInvalidPrice
	}
	if sub.Duration < MinDuration {
		return nil, types.ErrDurationTooShort
	}
	if sub.Duration > MaxDuration {
		return nil, types.ErrDurationTooLong
	}
	owner, err := e.ownership.OwnerOf(sub.Asset, sub.TokenID)
	if err != nil {
		return nil, err
	}
	if owner == sub.Bidder {
		return nil, types.ErrSelfBid
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := types.NewListingKey(sub.Asset, sub.TokenID)
	a := e.arena(key)
	// a locked bid is an accepted purchase awaiting its order, it may not
	// be retired by replacement
	if cur, _, err := a.lookupByBidder(sub.Bidder); err == nil && cur.Locked {
		return nil, types.ErrBidLocked
	}
	a.seq++

	bid := &types.Bid{
		ID:          types.NewBidID(a.seq, sub),
		Bidder:      sub.Bidder,
		Asset:       sub.Asset,
		TokenID:     sub.TokenID.Clone(),
		Price:       sub.Price.Clone(),
		ExpiresAt:   e.currentTime.Add(sub.Duration),
		Fingerprint: append([]byte(nil), sub.Fingerprint...),
		Name:        sub.Name,
		Description: sub.Description,
		Image:       sub.Image,
	}

	if replaced := a.insert(bid); replaced != nil && e.log.IsDebug() {
		e.log.Debug("bid replaced",
			logging.AssetID(sub.Asset.Hex(), sub.TokenID.String()),
			logging.BidID(replaced.ID.Hex()),
		)
	}

	e.broker.Send(events.NewBidCreated(ctx, bid))
	return bid.Clone(), nil
}

// GetActiveBid returns the live bid a bidder holds on a listing.
func (e *Engine) GetActiveBid(asset common.Address, tokenID *num.Uint, bidder common.Address) (*types.Bid, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return nil, types.ErrNoActiveBid
	}
	bid, _, err := a.lookupByBidder(bidder)
	if err != nil {
		return nil, err
	}
	return bid.Clone(), nil
}

// GetBidByID returns the live bid with the given id on a listing.
func (e *Engine) GetBidByID(asset common.Address, tokenID *num.Uint, id common.Hash) (*types.Bid, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return nil, types.ErrNoSuchBid
	}
	bid, _, err := a.lookupByID(id)
	if err != nil {
		return nil, err
	}
	return bid.Clone(), nil
}

// Cancel removes a bidder's live bid from a listing.
func (e *Engine) Cancel(ctx context.Context, asset common.Address, tokenID *num.Uint, bidder common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return types.ErrNoActiveBid
	}
	_, idx, err := a.lookupByBidder(bidder)
	if err != nil {
		return err
	}
	bid := a.removeAt(idx)
	e.broker.Send(events.NewBidCancelled(ctx, bid, false))
	return nil
}

// RemoveIfExpired removes a bidder's live bid once its expiry has passed the
// supplied clock reading, otherwise it fails with ErrNotExpired.
func (e *Engine) RemoveIfExpired(ctx context.Context, asset common.Address, tokenID *num.Uint, bidder common.Address, now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return types.ErrNoActiveBid
	}
	bid, idx, err := a.lookupByBidder(bidder)
	if err != nil {
		return err
	}
	if !bid.ExpiresAt.Before(now) {
		return types.ErrNotExpired
	}
	a.removeAt(idx)
	e.broker.Send(events.NewBidCancelled(ctx, bid, true))
	return nil
}

// ExpiredBid identifies one entry of a batched expiry sweep.
type ExpiredBid struct {
	Asset   common.Address
	TokenID *num.Uint
	Bidder  common.Address
}

// SweepResult reports the outcome for a single sweep entry.
type SweepResult struct {
	Entry ExpiredBid
	Err   error
}

// SweepExpired processes a batch of expiry removals. Each entry is
// independently atomic: one failing entry is reported in its result and does
// not abort the rest of the batch.
func (e *Engine) SweepExpired(ctx context.Context, entries []ExpiredBid, now time.Time) []SweepResult {
	res := make([]SweepResult, 0, len(entries))
	for _, entry := range entries {
		err := e.RemoveIfExpired(ctx, entry.Asset, entry.TokenID, entry.Bidder, now)
		res = append(res, SweepResult{Entry: entry, Err: err})
	}
	return res
}

// Remove takes a live bid out of the ledger by id on behalf of the
// settlement engine, the bid is returned so acceptance can be built from it.
// No event is emitted here, acceptance has its own.
func (e *Engine) Remove(asset common.Address, tokenID *num.Uint, id common.Hash) (*types.Bid, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return nil, types.ErrNoSuchBid
	}
	_, idx, err := a.lookupByID(id)
	if err != nil {
		return nil, err
	}
	return a.removeAt(idx), nil
}

// Reinstate puts a bid removed by Remove back in place, it exists so the
// settlement engine can roll back a removal when a later step of the same
// operation fails.
func (e *Engine) Reinstate(bid *types.Bid) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a := e.arena(bid.Key())
	a.insert(bid)
}

// Lock flags a bid as accepted-but-retained. Bulk fixed-price acceptance
// intentionally defers removal so sibling bidders' slots are never clobbered
// mid-sale; locked bids are swept into orders by FixLockedBids.
func (e *Engine) Lock(asset common.Address, tokenID *num.Uint, id common.Hash) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return types.ErrNoSuchBid
	}
	bid, _, err := a.lookupByID(id)
	if err != nil {
		return err
	}
	bid.Locked = true
	return nil
}

// TakeLocked removes and returns every locked bid on a listing.
func (e *Engine) TakeLocked(asset common.Address, tokenID *num.Uint) []*types.Bid {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return nil
	}
	ids := make([]common.Hash, 0, len(a.bids))
	for _, b := range a.bids {
		if b.Locked {
			ids = append(ids, b.ID)
		}
	}
	taken := make([]*types.Bid, 0, len(ids))
	for _, id := range ids {
		if idx, ok := a.byID[id]; ok {
			taken = append(taken, a.removeAt(idx))
		}
	}
	return taken
}

// Reset drops every live bid on a listing and zeroes its counter. Bulk
// standard acceptance calls this after its loop, invalidating any bids the
// accepter left unprocessed. The id sequence is retained so future bids
// still get fresh ids.
func (e *Engine) Reset(asset common.Address, tokenID *num.Uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return
	}
	metrics.LiveBidsAdd(-float64(a.counter))
	a.bids = nil
	a.byID = map[common.Hash]int{}
	a.byBidder = map[common.Address]common.Hash{}
	a.counter = 0
}

// Counter returns the live bid count for a listing.
func (e *Engine) Counter(asset common.Address, tokenID *num.Uint) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arenas[types.NewListingKey(asset, tokenID)]
	if !ok {
		return 0
	}
	return a.counter
}
