package fee

import (
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/types"
	"github.com/peerbid/marketplace/types/num"
)

// MaxCut is the highest category cut accepted, one part per million below
// the whole price.
const MaxCut uint64 = 999999

var million = num.NewUint(1000000)

// Engine holds the per-category marketplace cut and computes the fee split
// at acceptance time. The fee is baked into the order then, it is never
// recomputed at finalize.
type Engine struct {
	log *logging.Logger
	cfg Config

	// category id -> owner cut in parts per million
	cuts map[uint64]uint64
}

func New(log *logging.Logger, cfg Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:  log,
		cfg:  cfg,
		cuts: map[uint64]uint64{},
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the fee engine
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

// SetCategoryCut sets the owner cut for a listing category, in parts per
// million of the cleared price.
func (e *Engine) SetCategoryCut(category, cut uint64) error {
	if cut > MaxCut {
		return types.ErrInvalidFeeCut
	}
	e.cuts[category] = cut
	e.log.Info("category cut updated",
		logging.Uint64("category", category),
		logging.Uint64("cut-ppm", cut),
	)
	return nil
}

// CategoryCut returns the cut configured for a category, zero when unset.
func (e *Engine) CategoryCut(category uint64) uint64 {
	return e.cuts[category]
}

// Calculate splits a cleared price into the marketplace fee and the net
// amount owed to the seller: fee = floor(price * cut / 1e6).
func (e *Engine) Calculate(price *num.Uint, category uint64) (fee, net *num.Uint) {
	cut := num.NewUint(e.cuts[category])
	fee = num.UintZero().Mul(price, cut)
	fee.Div(fee, million)
	net = num.UintZero().Sub(price, fee)
	return fee, net
}
