package subscribers_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/peerbid/marketplace/events"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/subscribers"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

var (
	seller = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	buyer  = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

func testOrder(price uint64) *types.Order {
	return &types.Order{
		Orderer:   seller,
		Bidder:    buyer,
		Asset:     common.HexToAddress("0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b"),
		TokenID:   num.NewUint(7),
		Price:     num.NewUint(price),
		ExpiresAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEscrowLedgerCreditsSellerOnFinalize(t *testing.T) {
	l := subscribers.NewEscrowLedger(logging.NewTestLogger())
	ctx := context.Background()

	l.Push(
		events.NewOrderFinalized(ctx, testOrder(950000), buyer, "1"),
		events.NewOrderFinalized(ctx, testOrder(950000), buyer, "2"),
	)
	assert.True(t, l.Balance(seller).EQUint64(1900000))
	assert.True(t, l.Balance(buyer).IsZero())
}

func TestEscrowLedgerAccumulatesFees(t *testing.T) {
	l := subscribers.NewEscrowLedger(logging.NewTestLogger())
	ctx := context.Background()

	bid := &types.Bid{
		ID:      common.HexToHash("0x01"),
		Bidder:  buyer,
		Asset:   common.HexToAddress("0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b"),
		TokenID: num.NewUint(7),
		Price:   num.NewUint(1000000),
	}
	l.Push(
		events.NewBidAccepted(ctx, bid, num.NewUint(1000000), num.NewUint(50000)),
		events.NewBidAccepted(ctx, bid, num.NewUint(1000000), num.NewUint(50000)),
	)
	assert.True(t, l.FeeBalance().EQUint64(100000))
}

func TestEscrowLedgerWithdraw(t *testing.T) {
	l := subscribers.NewEscrowLedger(logging.NewTestLogger())

	l.Push(events.NewOrderFinalized(context.Background(), testOrder(950000), buyer, "1"))
	assert.True(t, l.Withdraw(seller).EQUint64(950000))
	assert.True(t, l.Balance(seller).IsZero())
	assert.True(t, l.Withdraw(seller).IsZero())
}
