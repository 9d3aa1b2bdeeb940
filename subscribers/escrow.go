package subscribers

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types/num"
)

// EscrowLedger is the settlement backend's view of value owed. The core
// never moves funds itself: finalized orders credit the seller's escrow
// balance and the fee account here, and a payment rail drains these
// balances out of band.
type EscrowLedger struct {
	*Base
	log *logging.Logger

	mu         sync.Mutex
	balances   map[common.Address]*num.Uint
	feeAccount *num.Uint
}

func NewEscrowLedger(log *logging.Logger) *EscrowLedger {
	return &EscrowLedger{
		Base:       NewBase(events.OrderFinalizedEvent, events.BidAcceptedEvent),
		log:        log.Named("escrow-ledger"),
		balances:   map[common.Address]*num.Uint{},
		feeAccount: num.UintZero(),
	}
}

// Push consumes the audit stream.
func (l *EscrowLedger) Push(evts ...events.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range evts {
		switch evt := e.(type) {
		case *events.OrderFinalized:
			order := evt.Order()
			l.credit(order.Orderer, order.Price)
			if l.log.IsDebug() {
				l.log.Debug("seller credited",
					logging.String("seller", order.Orderer.Hex()),
					logging.String("amount", order.Price.String()),
				)
			}
		case *events.BidAccepted:
			l.feeAccount.AddSum(evt.Fee())
		}
	}
}

func (l *EscrowLedger) credit(to common.Address, amount *num.Uint) {
	bal, ok := l.balances[to]
	if !ok {
		bal = num.UintZero()
		l.balances[to] = bal
	}
	bal.AddSum(amount)
}

// Balance returns the escrowed amount owed to a party.
func (l *EscrowLedger) Balance(party common.Address) *num.Uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[party]
	if !ok {
		return num.UintZero()
	}
	return bal.Clone()
}

// FeeBalance returns the accumulated marketplace fees.
func (l *EscrowLedger) FeeBalance() *num.Uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.feeAccount.Clone()
}

// Withdraw zeroes a party's balance and returns what was owed, modelling
// the payment rail draining escrow.
func (l *EscrowLedger) Withdraw(party common.Address) *num.Uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[party]
	if !ok {
		return num.UintZero()
	}
	delete(l.balances, party)
	return bal
}
