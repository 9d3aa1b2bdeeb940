package certificates

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types/num"
)

const namedLogger = "certificates"

var (
	ErrNoSuchCertificate = errors.New("no certificate with this id")
)

// Minter is an in-memory proof-of-purchase token mint. Certificate ids are
// a plain monotonic counter, the first minted certificate gets id 1.
type Minter struct {
	log *logging.Logger

	mu     sync.Mutex
	nextID uint64
	owners map[uint64]common.Address
	uris   map[uint64]string
}

func New(log *logging.Logger) *Minter {
	return &Minter{
		log:    log.Named(namedLogger),
		owners: map[uint64]common.Address{},
		uris:   map[uint64]string{},
	}
}

// Mint issues a certificate to the settling party, carrying the proof URI
// supplied at finalize.
func (m *Minter) Mint(_ context.Context, to common.Address, uri string) (*num.Uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.owners[m.nextID] = to
	m.uris[m.nextID] = uri
	m.log.Info("certificate minted",
		logging.Uint64("certificate-id", m.nextID),
		logging.String("owner", to.Hex()),
	)
	return num.NewUint(m.nextID), nil
}

// Burn retires a certificate. Finalize burns immediately after minting for
// cross-chain listings so no duplicate proof can circulate for one sale.
func (m *Minter) Burn(_ context.Context, id *num.Uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := id.Uint64()
	if _, ok := m.owners[raw]; !ok {
		return ErrNoSuchCertificate
	}
	delete(m.owners, raw)
	delete(m.uris, raw)
	m.log.Info("certificate burned", logging.Uint64("certificate-id", raw))
	return nil
}

// OwnerOf returns the holder of a live certificate.
func (m *Minter) OwnerOf(id *num.Uint) (common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.owners[id.Uint64()]
	if !ok {
		return common.Address{}, ErrNoSuchCertificate
	}
	return owner, nil
}
