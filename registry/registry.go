package registry

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// Broker send events
type Broker interface {
	Send(event events.Event)
}

// Store is an in-memory asset registry. The real registry is an external
// component; this implementation backs the daemon wiring and the tests, and
// is the reference for the registry surface the settlement engine consumes.
type Store struct {
	log    *logging.Logger
	broker Broker

	mu       sync.RWMutex
	listings map[types.ListingKey]*types.Listing
}

func New(log *logging.Logger, broker Broker) *Store {
	return &Store{
		log:      log.Named(namedLogger),
		broker:   broker,
		listings: map[types.ListingKey]*types.Listing{},
	}
}

// AddListing registers a listing. Listing CRUD is out of the core's scope so
// this takes the listing as-is.
func (s *Store) AddListing(l *types.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cpy := *l
	cpy.TokenID = l.TokenID.Clone()
	cpy.Price = l.Price.Clone()
	s.listings[l.Key()] = &cpy
}

func (s *Store) listing(asset common.Address, tokenID *num.Uint) (*types.Listing, error) {
	l, ok := s.listings[types.NewListingKey(asset, tokenID)]
	if !ok {
		return nil, types.ErrNoListing
	}
	return l, nil
}

func (s *Store) GetPrice(asset common.Address, tokenID *num.Uint) (*num.Uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return nil, err
	}
	return l.Price.Clone(), nil
}

func (s *Store) GetStock(asset common.Address, tokenID *num.Uint) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return 0, err
	}
	return l.Stock, nil
}

func (s *Store) GetCategory(asset common.Address, tokenID *num.Uint) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return 0, err
	}
	return l.Category, nil
}

func (s *Store) GetAuctionType(asset common.Address, tokenID *num.Uint) (types.AuctionType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return 0, err
	}
	return l.AuctionType, nil
}

func (s *Store) GetOwner(asset common.Address, tokenID *num.Uint) (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return l.Owner, nil
}

// OwnerOf aliases GetOwner so the store satisfies the bid ledger's
// ownership provider directly.
func (s *Store) OwnerOf(asset common.Address, tokenID *num.Uint) (common.Address, error) {
	return s.GetOwner(asset, tokenID)
}

func (s *Store) GetStatus(asset common.Address, tokenID *num.Uint) (types.ListingStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return 0, err
	}
	return l.Status, nil
}

func (s *Store) GetExpiry(asset common.Address, tokenID *num.Uint) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return time.Time{}, err
	}
	return l.Expiry, nil
}

func (s *Store) IsCrossChain(asset common.Address, tokenID *num.Uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return false, err
	}
	return l.CrossChain, nil
}

// DecrementStock takes one unit off a bulk listing's stock and returns what
// remains.
func (s *Store) DecrementStock(asset common.Address, tokenID *num.Uint) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return 0, err
	}
	if l.Stock == 0 {
		return 0, types.ErrStockExhausted
	}
	l.Stock--
	return l.Stock, nil
}

// PushStatus applies a status transition driven by the settlement engine.
// The payload is the settlement detail the registry records alongside the
// transition (accepted bid id, certificate id); this implementation only
// logs it.
func (s *Store) PushStatus(ctx context.Context, asset common.Address, tokenID *num.Uint, status types.ListingStatus, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.listing(asset, tokenID)
	if err != nil {
		return err
	}
	l.Status = status
	s.log.Info("listing status pushed",
		logging.AssetID(asset.Hex(), tokenID.String()),
		logging.String("status", status.String()),
		logging.Int("payload-bytes", len(payload)),
	)
	s.broker.Send(events.NewListingStatus(ctx, types.NewListingKey(asset, tokenID), status))
	return nil
}
