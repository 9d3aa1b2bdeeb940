package escrow

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

const namedLogger = "escrow"

var (
	ErrAlreadyInEscrow = errors.New("asset already held in escrow")
	ErrNotInEscrow     = errors.New("asset not held in escrow")
)

// Vault is an in-memory record of asset custody. The actual token transfer
// mechanics belong to the asset standard and stay outside the core; the
// vault only tracks which listing's asset is currently escrowed and for
// whom.
type Vault struct {
	log *logging.Logger

	mu   sync.Mutex
	held map[types.ListingKey]common.Address // original owner
}

func NewVault(log *logging.Logger) *Vault {
	return &Vault{
		log:  log.Named(namedLogger),
		held: map[types.ListingKey]common.Address{},
	}
}

// TransferToEscrow takes custody of a listed token. The call fully succeeds
// or errors, matching the all-or-nothing model of the settlement engine.
func (v *Vault) TransferToEscrow(_ context.Context, asset common.Address, tokenID *num.Uint, from common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := types.NewListingKey(asset, tokenID)
	if _, ok := v.held[key]; ok {
		return ErrAlreadyInEscrow
	}
	v.held[key] = from
	v.log.Info("asset escrowed",
		logging.AssetID(asset.Hex(), tokenID.String()),
		logging.String("from", from.Hex()),
	)
	return nil
}

// Release hands custody back (cancellation) or on to the buyer (finalize).
func (v *Vault) Release(_ context.Context, asset common.Address, tokenID *num.Uint) (common.Address, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := types.NewListingKey(asset, tokenID)
	owner, ok := v.held[key]
	if !ok {
		return common.Address{}, ErrNotInEscrow
	}
	delete(v.held, key)
	return owner, nil
}

// Holds reports whether the listing's asset is currently escrowed.
func (v *Vault) Holds(asset common.Address, tokenID *num.Uint) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.held[types.NewListingKey(asset, tokenID)]
	return ok
}
