package settlement

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// Acceptance hook payload layout. A payload of 32 bytes or fewer is a bare
// bid id. Anything longer is a bulk accept: a 32 byte floor price followed
// by one 32 byte bid id per accepted bid.

// EncodeBidPayload renders a bid id as an acceptance payload.
func EncodeBidPayload(id common.Hash) []byte {
	return id.Bytes()
}

// EncodeBulkPayload renders a uniform-price bulk acceptance payload.
func EncodeBulkPayload(floorPrice *num.Uint, bidIDs []common.Hash) []byte {
	fp := floorPrice.Bytes32()
	out := make([]byte, 0, 32*(len(bidIDs)+1))
	out = append(out, fp[:]...)
	for _, id := range bidIDs {
		out = append(out, id.Bytes()...)
	}
	return out
}

// DecodeBulkPayload parses a bulk acceptance payload back into the floor
// price and the bid id list.
func DecodeBulkPayload(payload []byte) (*num.Uint, []common.Hash, error) {
	if len(payload) <= 32 || len(payload)%32 != 0 {
		return nil, nil, types.ErrBadAcceptPayload
	}
	var fp [32]byte
	copy(fp[:], payload[:32])
	floorPrice, overflow := types.UintFrom32(fp)
	if overflow {
		return nil, nil, types.ErrBadAcceptPayload
	}
	ids := make([]common.Hash, 0, len(payload)/32-1)
	for off := 32; off < len(payload); off += 32 {
		ids = append(ids, common.BytesToHash(payload[off:off+32]))
	}
	return floorPrice, ids, nil
}
