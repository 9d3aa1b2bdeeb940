package settlement

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types/num"
)

// NoComposables is the validator used when no composable asset standard is
// deployed: no asset declares fingerprint support, so no fingerprint is ever
// checked.
type NoComposables struct{}

func (NoComposables) SupportsFingerprint(common.Address) bool {
	return false
}

func (NoComposables) VerifyFingerprint(common.Address, *num.Uint, []byte) bool {
	return false
}
