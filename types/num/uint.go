package num

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Uint A wrapper for a big unsigned int
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the
// uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// Min returns the smallest of the 2 numbers
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// Max returns the largest of the 2 numbers
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// UintFromBig construct a new Uint with a big.Int
// returns true if overflow happened
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, overflow := uint256.FromBig(b)
	if overflow {
		return NewUint(0), true
	}
	return &Uint{*u}, false
}

// UintFromString created a new Uint from a string
// interpreted using the given base.
// A big.Int is used to read the string, so
// all errors related to big.Int parsing apply here.
// Will return true if an error/overflow happened.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return NewUint(0), true
	}
	return UintFromBig(b)
}

// Sum just removes the need to write num.NewUint(0).AddSum(x, y, z)
// so you can write num.Sum(x, y, z) instead, equivalent to x + y + z
func Sum(vals ...*Uint) *Uint {
	return NewUint(0).AddSum(vals...)
}

func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

func (z *Uint) SetUint64(val uint64) *Uint {
	z.u.SetUint64(val)
	return z
}

func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

// Bytes32 returns the value as a fixed 32 byte big-endian array.
func (z Uint) Bytes32() [32]byte {
	return z.u.Bytes32()
}

// Add will add x and y then store the result
// into z
// this is equivalent to:
// `z = x + y`
// z is returned for convenience, no
// new variable is created.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds multiple values at the same time to a given uint
// so x.AddSum(y, z) is equivalent to x + y + z
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub will subtract y from x then store the result
// into z
// this is equivalent to:
// `z = x - y`
// z is returned for convenience, no
// new variable is created.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// SubOverflow will subtract y from x then store the result
// into z
// True is returned if an overflow occurred.
func (z *Uint) SubOverflow(x, y *Uint) (*Uint, bool) {
	_, overflow := z.u.SubOverflow(&x.u, &y.u)
	return z, overflow
}

// Mul will multiply x and y then store the result
// into z
// this is equivalent to:
// `z = x * y`
// z is returned for convenience, no
// new variable is created.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div will divide x by y then store the result
// into z
// this is equivalent to:
// `z = x / y`
// z is returned for convenience, no
// new variable is created.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// LT will check if the value stored in z is
// lesser than oth
// this is equivalent to:
// `z < oth`
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE will check if the value stored in z is
// lesser than or equal to oth
// this is equivalent to:
// `z <= oth`
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ will check if the value stored in z is
// equal to oth
// this is equivalent to:
// `z == oth`
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// EQUint64 will check if the value stored in z is
// equal to oth
// this is equivalent to:
// `z == oth`
func (z Uint) EQUint64(oth uint64) bool {
	return z.u.Eq(uint256.NewInt(oth))
}

// NEQ will check if the value stored in z is
// different than oth
// this is equivalent to:
// `z != oth`
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT will check if the value stored in z is
// greater than oth
// this is equivalent to:
// `z > oth`
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTE will check if the value stored in z is
// greater than or equal to oth
// this is equivalent to:
// `z >= oth`
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero returns whether the value is 0.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Clone creates a copy of the Uint so it can be
// safely mutated without touching the original.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

func (z Uint) String() string {
	return z.u.ToBig().String()
}

func (z Uint) Hex() string {
	return z.u.Hex()
}
