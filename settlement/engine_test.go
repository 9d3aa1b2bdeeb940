package settlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerbid/marketplace/bids"
	bmocks "github.com/peerbid/marketplace/bids/mocks"
	"github.com/peerbid/marketplace/certificates"
	"github.com/peerbid/marketplace/escrow"
	"github.com/peerbid/marketplace/fee"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/orders"
	"github.com/peerbid/marketplace/registry"
	"github.com/peerbid/marketplace/settlement"
	"github.com/peerbid/marketplace/settlement/mocks"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

var (
	testAsset = common.HexToAddress("0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b")
	testToken = num.NewUint(42)

	operator = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	seller   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	alice    = common.HexToAddress("0x0000000000000000000000000000000000000001")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000002")
	carol    = common.HexToAddress("0x0000000000000000000000000000000000000003")

	now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

type testEngine struct {
	*settlement.Engine
	ctrl   *gomock.Controller
	broker *mocks.MockBroker
	store  *registry.Store
	bids   *bids.Engine
	orders *orders.Engine
	fees   *fee.Engine
	minter *certificates.Minter
	vault  *escrow.Vault
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	log := logging.NewTestLogger()
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	store := registry.New(log, broker)
	minter := certificates.New(log)
	vault := escrow.NewVault(log)
	bidLedger := bids.New(log, bids.NewDefaultConfig(), broker, store)
	orderLedger := orders.New(log, orders.NewDefaultConfig(), broker)
	feeEngine := fee.New(log, fee.NewDefaultConfig())

	e := settlement.New(
		log, settlement.NewDefaultConfig(), broker,
		bidLedger, orderLedger, feeEngine,
		store, minter, vault, settlement.NoComposables{},
		operator,
	)
	ctx := context.Background()
	bidLedger.OnTick(ctx, now)
	e.OnTick(ctx, now)

	return &testEngine{
		Engine: e,
		ctrl:   ctrl,
		broker: broker,
		store:  store,
		bids:   bidLedger,
		orders: orderLedger,
		fees:   feeEngine,
		minter: minter,
		vault:  vault,
	}
}

func (te *testEngine) addListing(t *testing.T, auctionType types.AuctionType, price, stock uint64, crossChain bool) {
	t.Helper()
	te.store.AddListing(&types.Listing{
		Asset:       testAsset,
		TokenID:     testToken.Clone(),
		Owner:       seller,
		Price:       num.NewUint(price),
		Stock:       stock,
		Category:    1,
		AuctionType: auctionType,
		Status:      types.ListingStatusOpen,
		CrossChain:  crossChain,
	})
}

func (te *testEngine) placeBid(t *testing.T, bidder common.Address, price uint64) *types.Bid {
	t.Helper()
	bid, err := te.PlaceBid(context.Background(), types.BidSubmission{
		Bidder:   bidder,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(price),
		Duration: time.Hour,
	})
	require.NoError(t, err)
	return bid
}

func (te *testEngine) status(t *testing.T) types.ListingStatus {
	t.Helper()
	status, err := te.store.GetStatus(testAsset, testToken)
	require.NoError(t, err)
	return status
}

func TestStandardAuctionLifecycle(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	te.placeBid(t, alice, 1000000)
	winning := te.placeBid(t, bob, 1500000)

	require.NoError(t, te.AcceptStandard(ctx, testAsset, testToken, seller, winning.ID))
	assert.Equal(t, types.ListingStatusPending, te.status(t))

	// only the accepted bid leaves the ledger
	_, err := te.bids.GetBidByID(testAsset, testToken, winning.ID)
	assert.ErrorIs(t, err, types.ErrNoSuchBid)
	_, err = te.bids.GetActiveBid(testAsset, testToken, alice)
	assert.NoError(t, err)

	// standard auction: the bidder is the settling counterparty, the order
	// carries the net amount
	order, err := te.orders.Get(testAsset, testToken, bob)
	require.NoError(t, err)
	assert.Equal(t, seller, order.Orderer)
	assert.True(t, order.Price.EQUint64(1425000), "net: got %s", order.Price)

	certID, err := te.Finalize(ctx, testAsset, testToken, bob, bob, "ipfs://proof")
	require.NoError(t, err)
	assert.Equal(t, types.ListingStatusSuccess, te.status(t))

	holder, err := te.minter.OwnerOf(certID)
	require.NoError(t, err)
	assert.Equal(t, bob, holder)

	_, err = te.orders.Get(testAsset, testToken, bob)
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
}

func TestAcceptRequiresOpenListing(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	bid := te.placeBid(t, alice, 1000000)

	require.NoError(t, te.store.PushStatus(ctx, testAsset, testToken, types.ListingStatusPending, nil))
	err := te.AcceptStandard(ctx, testAsset, testToken, seller, bid.ID)
	assert.ErrorIs(t, err, types.ErrListingNotOpen)

	// rejected acceptance leaves the ledger untouched
	_, err = te.bids.GetBidByID(testAsset, testToken, bid.ID)
	assert.NoError(t, err)
}

func TestAcceptUnknownBid(t *testing.T) {
	te := getTestEngine(t)
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	te.placeBid(t, alice, 1000000)

	err := te.AcceptStandard(context.Background(), testAsset, testToken, seller, common.HexToHash("0xdead"))
	assert.ErrorIs(t, err, types.ErrNoSuchBid)
	assert.EqualValues(t, 1, te.bids.Counter(testAsset, testToken))
	assert.Equal(t, types.ListingStatusOpen, te.status(t))
}

func TestFixedSingleSettlesAtPlacement(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeFixedSingle, 1000000, 1, false)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	_, err := te.PlaceBid(ctx, types.BidSubmission{
		Bidder:   alice,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(999999),
		Duration: time.Hour,
	})
	assert.ErrorIs(t, err, types.ErrWrongFixedPrice)

	te.placeBid(t, alice, 1000000)
	assert.Equal(t, types.ListingStatusPending, te.status(t))
	assert.True(t, te.vault.Holds(testAsset, testToken))
	assert.EqualValues(t, 0, te.bids.Counter(testAsset, testToken))

	order, err := te.orders.Get(testAsset, testToken, alice)
	require.NoError(t, err)
	assert.True(t, order.Price.EQUint64(950000))
}

func TestFixedBulkLifecycle(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeFixedBulk, 1000000, 3, false)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	te.placeBid(t, alice, 1000000)
	assert.Equal(t, types.ListingStatusOpen, te.status(t))
	stock, err := te.store.GetStock(testAsset, testToken)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stock)

	te.placeBid(t, bob, 1000000)
	te.placeBid(t, carol, 1000000)

	// the last unit exhausts the stock, the listing goes pending and the
	// locked bids stay in the ledger until the sweep
	assert.Equal(t, types.ListingStatusPending, te.status(t))
	assert.True(t, te.vault.Holds(testAsset, testToken))
	assert.EqualValues(t, 3, te.bids.Counter(testAsset, testToken))

	_, err = te.PlaceBid(ctx, types.BidSubmission{
		Bidder:   operator,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(1000000),
		Duration: time.Hour,
	})
	assert.ErrorIs(t, err, types.ErrListingNotOpen)

	assert.ErrorIs(t, te.FixLockedBids(ctx, testAsset, testToken, seller, alice), types.ErrNotAuthorized)
	require.NoError(t, te.FixLockedBids(ctx, testAsset, testToken, seller, operator))
	assert.EqualValues(t, 0, te.bids.Counter(testAsset, testToken))

	for _, bidder := range []common.Address{alice, bob, carol} {
		order, err := te.orders.Get(testAsset, testToken, bidder)
		require.NoError(t, err)
		assert.True(t, order.Price.EQUint64(950000))
	}
}

func TestFixedBulkRepeatBidderKeepsLockedPurchase(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeFixedBulk, 1000000, 3, false)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	te.placeBid(t, alice, 1000000)

	// alice's first purchase is locked in, a repeat placement may not
	// retire it and must not consume another unit
	_, err := te.PlaceBid(ctx, types.BidSubmission{
		Bidder:   alice,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(1000000),
		Duration: time.Hour,
	})
	assert.ErrorIs(t, err, types.ErrBidLocked)
	stock, err := te.store.GetStock(testAsset, testToken)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stock)

	te.placeBid(t, bob, 1000000)
	te.placeBid(t, carol, 1000000)
	require.Equal(t, types.ListingStatusPending, te.status(t))

	// three units sold, three orders opened
	require.NoError(t, te.FixLockedBids(ctx, testAsset, testToken, seller, operator))
	for _, bidder := range []common.Address{alice, bob, carol} {
		_, err := te.orders.Get(testAsset, testToken, bidder)
		require.NoError(t, err)
	}
}

func TestFixedBulkFailedEscrowLeavesStockUntouched(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeFixedBulk, 1000000, 1, false)

	// occupy custody so the exhausting placement's escrow transfer fails
	require.NoError(t, te.vault.TransferToEscrow(ctx, testAsset, testToken, seller))

	_, err := te.PlaceBid(ctx, types.BidSubmission{
		Bidder:   alice,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(1000000),
		Duration: time.Hour,
	})
	assert.ErrorIs(t, err, escrow.ErrAlreadyInEscrow)

	// the failed placement consumed nothing: stock, status and ledger are
	// all untouched
	stock, err := te.store.GetStock(testAsset, testToken)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stock)
	assert.Equal(t, types.ListingStatusOpen, te.status(t))
	assert.EqualValues(t, 0, te.bids.Counter(testAsset, testToken))
}

func TestFixedSingleFailedAcceptReleasesEscrow(t *testing.T) {
	log := logging.NewTestLogger()
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	reg := mocks.NewMockAssetRegistry(ctrl)
	minter := mocks.NewMockCertificateMinter(ctrl)
	vault := escrow.NewVault(log)

	ownership := bmocks.NewMockOwnershipProvider(ctrl)
	ownership.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(seller, nil).AnyTimes()
	bidLedger := bids.New(log, bids.NewDefaultConfig(), broker, ownership)
	orderLedger := orders.New(log, orders.NewDefaultConfig(), broker)
	feeEngine := fee.New(log, fee.NewDefaultConfig())

	e := settlement.New(
		log, settlement.NewDefaultConfig(), broker,
		bidLedger, orderLedger, feeEngine,
		reg, minter, vault, settlement.NoComposables{},
		operator,
	)
	ctx := context.Background()
	bidLedger.OnTick(ctx, now)

	pushErr := errors.New("registry unavailable")
	reg.EXPECT().GetStatus(gomock.Any(), gomock.Any()).Return(types.ListingStatusOpen, nil).AnyTimes()
	reg.EXPECT().GetAuctionType(gomock.Any(), gomock.Any()).Return(types.AuctionTypeFixedSingle, nil).AnyTimes()
	reg.EXPECT().GetPrice(gomock.Any(), gomock.Any()).Return(num.NewUint(1000000), nil)
	reg.EXPECT().GetOwner(gomock.Any(), gomock.Any()).Return(seller, nil)
	reg.EXPECT().GetCategory(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	reg.EXPECT().PushStatus(gomock.Any(), gomock.Any(), gomock.Any(), types.ListingStatusPending, gomock.Any()).Return(pushErr)

	_, err := e.PlaceBid(ctx, types.BidSubmission{
		Bidder:   alice,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(1000000),
		Duration: time.Hour,
	})
	assert.ErrorIs(t, err, pushErr)

	// custody was handed back and the failed placement left nothing behind
	assert.False(t, vault.Holds(testAsset, testToken))
	assert.EqualValues(t, 0, bidLedger.Counter(testAsset, testToken))
	_, err = orderLedger.Get(testAsset, testToken, alice)
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
}

func TestBulkAcceptFloorGuard(t *testing.T) {
	te := getTestEngine(t)
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	aBid := te.placeBid(t, alice, 1000000)
	bBid := te.placeBid(t, bob, 1500000)

	// the floor exceeds alice's own offer, nothing may move
	err := te.AcceptBulkStandard(context.Background(), testAsset, testToken, seller,
		num.NewUint(1200000), []common.Hash{aBid.ID, bBid.ID})
	assert.ErrorIs(t, err, types.ErrPriceBelowFloor)

	assert.EqualValues(t, 2, te.bids.Counter(testAsset, testToken))
	assert.Equal(t, types.ListingStatusOpen, te.status(t))
	_, err = te.orders.Get(testAsset, testToken, alice)
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
}

func TestBulkAcceptClearsAtUniformPrice(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	te.placeBid(t, alice, 1000000)
	bBid := te.placeBid(t, bob, 1500000)
	cBid := te.placeBid(t, carol, 2000000)

	require.NoError(t, te.AcceptBulkStandard(ctx, testAsset, testToken, seller,
		num.NewUint(1000000), []common.Hash{bBid.ID, cBid.ID}))
	assert.Equal(t, types.ListingStatusPending, te.status(t))

	// both orders clear at the uniform net price regardless of bid price
	for _, bidder := range []common.Address{bob, carol} {
		order, err := te.orders.Get(testAsset, testToken, bidder)
		require.NoError(t, err)
		assert.True(t, order.Price.EQUint64(950000))
	}

	// the bid left out of the acceptance is invalidated by the reset
	assert.EqualValues(t, 0, te.bids.Counter(testAsset, testToken))
	_, err := te.bids.GetActiveBid(testAsset, testToken, alice)
	assert.ErrorIs(t, err, types.ErrNoActiveBid)
}

func TestFinalizeWithoutOrder(t *testing.T) {
	te := getTestEngine(t)
	te.store.AddListing(&types.Listing{
		Asset:       testAsset,
		TokenID:     testToken.Clone(),
		Owner:       seller,
		Price:       num.NewUint(1000000),
		Category:    1,
		AuctionType: types.AuctionTypeStandard,
		Status:      types.ListingStatusPending,
	})

	_, err := te.Finalize(context.Background(), testAsset, testToken, bob, bob, "ipfs://proof")
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
	assert.Equal(t, types.ListingStatusPending, te.status(t))
	_, err = te.minter.OwnerOf(num.NewUint(1))
	assert.ErrorIs(t, err, certificates.ErrNoSuchCertificate)
}

func TestFinalizeRequiresPendingListing(t *testing.T) {
	te := getTestEngine(t)
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)

	_, err := te.Finalize(context.Background(), testAsset, testToken, bob, bob, "ipfs://proof")
	assert.ErrorIs(t, err, types.ErrListingNotPending)
}

func TestCrossChainFinalizeBurnsCertificate(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, true)
	bid := te.placeBid(t, bob, 1500000)

	require.NoError(t, te.AcceptStandard(ctx, testAsset, testToken, seller, bid.ID))
	certID, err := te.Finalize(ctx, testAsset, testToken, bob, bob, "ipfs://proof")
	require.NoError(t, err)
	assert.Equal(t, types.ListingStatusSuccess, te.status(t))

	// burned right away, no duplicate proof can circulate
	_, err = te.minter.OwnerOf(certID)
	assert.ErrorIs(t, err, certificates.ErrNoSuchCertificate)
}

func TestForceFinalize(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	bid := te.placeBid(t, bob, 1500000)
	require.NoError(t, te.AcceptStandard(ctx, testAsset, testToken, seller, bid.ID))

	_, err := te.ForceFinalize(ctx, testAsset, testToken, bob, carol, "ipfs://proof")
	assert.ErrorIs(t, err, types.ErrNotAuthorized)

	certID, err := te.ForceFinalize(ctx, testAsset, testToken, bob, operator, "ipfs://proof")
	require.NoError(t, err)
	holder, err := te.minter.OwnerOf(certID)
	require.NoError(t, err)
	assert.Equal(t, bob, holder)
}

func TestCancelIsOperatorOnly(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	bid := te.placeBid(t, bob, 1500000)
	require.NoError(t, te.AcceptStandard(ctx, testAsset, testToken, seller, bid.ID))

	// neither transacting party may cancel
	assert.ErrorIs(t, te.Cancel(ctx, testAsset, testToken, bob, bob), types.ErrNotAuthorized)
	assert.ErrorIs(t, te.Cancel(ctx, testAsset, testToken, bob, seller), types.ErrNotAuthorized)

	require.NoError(t, te.Cancel(ctx, testAsset, testToken, bob, operator))
	assert.Equal(t, types.ListingStatusCancelled, te.status(t))
	_, err := te.orders.Get(testAsset, testToken, bob)
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
}

func TestOnAssetReceivedRouting(t *testing.T) {
	t.Run("bid id payload runs a standard accept", func(t *testing.T) {
		te := getTestEngine(t)
		te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
		bid := te.placeBid(t, bob, 1500000)

		err := te.OnAssetReceived(context.Background(), testAsset, testToken, seller,
			settlement.EncodeBidPayload(bid.ID))
		require.NoError(t, err)
		assert.Equal(t, types.ListingStatusPending, te.status(t))
	})

	t.Run("bulk payload runs a bulk accept", func(t *testing.T) {
		te := getTestEngine(t)
		te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
		aBid := te.placeBid(t, alice, 1000000)
		bBid := te.placeBid(t, bob, 1500000)

		payload := settlement.EncodeBulkPayload(num.NewUint(1000000), []common.Hash{aBid.ID, bBid.ID})
		err := te.OnAssetReceived(context.Background(), testAsset, testToken, seller, payload)
		require.NoError(t, err)
		assert.Equal(t, types.ListingStatusPending, te.status(t))
	})

	t.Run("empty payload only fits a sold out bulk listing", func(t *testing.T) {
		te := getTestEngine(t)
		te.addListing(t, types.AuctionTypeStandard, 0, 0, false)

		err := te.OnAssetReceived(context.Background(), testAsset, testToken, seller, nil)
		assert.ErrorIs(t, err, types.ErrBadAcceptPayload)
	})
}

func TestAdminSurface(t *testing.T) {
	te := getTestEngine(t)

	assert.ErrorIs(t, te.SetCategoryCut(alice, 1, 50000), types.ErrNotAuthorized)
	assert.ErrorIs(t, te.SetCategoryCut(operator, 1, fee.MaxCut+1), types.ErrInvalidFeeCut)
	require.NoError(t, te.SetCategoryCut(operator, 1, 50000))

	assert.ErrorIs(t, te.SetOperator(alice, alice), types.ErrNotAuthorized)
	require.NoError(t, te.SetOperator(operator, alice))
	// the old operator lost the admin surface on handover
	assert.ErrorIs(t, te.SetCategoryCut(operator, 1, 60000), types.ErrNotAuthorized)
	assert.NoError(t, te.SetCategoryCut(alice, 1, 60000))
}

func TestSweepExpiredBids(t *testing.T) {
	te := getTestEngine(t)
	ctx := context.Background()
	te.addListing(t, types.AuctionTypeStandard, 0, 0, false)
	te.placeBid(t, alice, 1000000)

	entries := []bids.ExpiredBid{{Asset: testAsset, TokenID: testToken, Bidder: alice}}
	_, err := te.SweepExpiredBids(ctx, entries, alice)
	assert.ErrorIs(t, err, types.ErrNotAuthorized)

	res, err := te.SweepExpiredBids(ctx, entries, operator)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.ErrorIs(t, res[0].Err, types.ErrNotExpired)

	te.OnTick(ctx, now.Add(2*time.Hour))
	res, err = te.SweepExpiredBids(ctx, entries, operator)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.NoError(t, res[0].Err)
	assert.EqualValues(t, 0, te.bids.Counter(testAsset, testToken))
}

func TestAcceptRollsBackWhenStatusPushFails(t *testing.T) {
	log := logging.NewTestLogger()
	ctrl := gomock.NewController(t)
	broker := mocks.NewMockBroker(ctrl)
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	reg := mocks.NewMockAssetRegistry(ctrl)
	minter := mocks.NewMockCertificateMinter(ctrl)
	vault := mocks.NewMockAssetVault(ctrl)

	ownership := bmocks.NewMockOwnershipProvider(ctrl)
	ownership.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(seller, nil).AnyTimes()
	bidLedger := bids.New(log, bids.NewDefaultConfig(), broker, ownership)
	orderLedger := orders.New(log, orders.NewDefaultConfig(), broker)
	feeEngine := fee.New(log, fee.NewDefaultConfig())

	e := settlement.New(
		log, settlement.NewDefaultConfig(), broker,
		bidLedger, orderLedger, feeEngine,
		reg, minter, vault, settlement.NoComposables{},
		operator,
	)
	ctx := context.Background()
	bidLedger.OnTick(ctx, now)

	bid, err := bidLedger.Place(ctx, types.BidSubmission{
		Bidder:   bob,
		Asset:    testAsset,
		TokenID:  testToken.Clone(),
		Price:    num.NewUint(1500000),
		Duration: time.Hour,
	})
	require.NoError(t, err)

	pushErr := errors.New("registry unavailable")
	reg.EXPECT().GetStatus(gomock.Any(), gomock.Any()).Return(types.ListingStatusOpen, nil)
	reg.EXPECT().GetAuctionType(gomock.Any(), gomock.Any()).Return(types.AuctionTypeStandard, nil)
	reg.EXPECT().GetCategory(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	reg.EXPECT().PushStatus(gomock.Any(), gomock.Any(), gomock.Any(), types.ListingStatusPending, gomock.Any()).Return(pushErr)

	err = e.AcceptStandard(ctx, testAsset, testToken, seller, bid.ID)
	assert.ErrorIs(t, err, pushErr)

	// the removal was compensated, the bid is live again and no order opened
	live, err := bidLedger.GetBidByID(testAsset, testToken, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, bob, live.Bidder)
	_, err = orderLedger.Get(testAsset, testToken, bob)
	assert.ErrorIs(t, err, types.ErrNoSuchOrder)
}
