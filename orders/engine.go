package orders

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// Broker send events
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/peerbid/marketplace/orders Broker
type Broker interface {
	Send(event events.Event)
}

// Engine is the order ledger: pending settlement intents keyed by listing
// plus the counterparty expected to finalize. One live order per key, an
// order is consumed exactly once by finalize or cancel.
type Engine struct {
	log    *logging.Logger
	cfg    Config
	broker Broker

	mu     sync.Mutex
	orders map[types.OrderKey]*types.Order
}

func New(log *logging.Logger, cfg Config, broker Broker) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:    log,
		cfg:    cfg,
		broker: broker,
		orders: map[types.OrderKey]*types.Order{},
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the order ledger
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

// Open records a pending settlement intent. This is an unconditional
// upsert: acceptance is the trusted final step of the settlement engine and
// a second acceptance on the same key simply overwrites, creation is
// idempotent per key.
func (e *Engine) Open(ctx context.Context, counterparty common.Address, order *types.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := types.NewOrderKey(order.Asset, order.TokenID, counterparty)
	e.orders[key] = order.Clone()
	e.broker.Send(events.NewOrderOpened(ctx, order, counterparty))
}

// Get returns the live order at a key.
func (e *Engine) Get(asset common.Address, tokenID *num.Uint, counterparty common.Address) (*types.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders[types.NewOrderKey(asset, tokenID, counterparty)]
	if !ok {
		return nil, types.ErrNoSuchOrder
	}
	return order.Clone(), nil
}

// Finalize consumes the order at a key. The caller must be the settling side
// for the listing's auction type: the orderer for reverse auctions, the
// bidder otherwise.
func (e *Engine) Finalize(asset common.Address, tokenID *num.Uint, counterparty, caller common.Address, auctionType types.AuctionType) (*types.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := types.NewOrderKey(asset, tokenID, counterparty)
	order, ok := e.orders[key]
	if !ok {
		return nil, types.ErrNoSuchOrder
	}
	if order.Counterparty(auctionType) != caller {
		return nil, types.ErrWrongCaller
	}
	delete(e.orders, key)
	return order, nil
}

// Cancel deletes the order at a key. It fails with ErrNoSuchOrder when both
// participant fields are zero, which is what an absent entry looks like in
// the keyed store.
func (e *Engine) Cancel(ctx context.Context, asset common.Address, tokenID *num.Uint, counterparty common.Address) (*types.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := types.NewOrderKey(asset, tokenID, counterparty)
	order, ok := e.orders[key]
	if !ok || (order.Orderer == (common.Address{}) && order.Bidder == (common.Address{})) {
		return nil, types.ErrNoSuchOrder
	}
	delete(e.orders, key)
	e.broker.Send(events.NewOrderCancelled(ctx, order, counterparty))
	return order, nil
}
