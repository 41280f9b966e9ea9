package field

import (
	"errors"
	"math/big"
)

// ErrZeroInverse is the value Field.Inv panics with when a caller requests
// the modular inverse of zero.
var ErrZeroInverse = errors.New("field: zero has no inverse")

// Field is a prime field Z/orderZ. All arithmetic methods return a value
// canonicalized into [0, order). Comparison helpers Lt/Geq interpret values
// above order/2 as negative, matching the signed convention used by the
// Tonelli-Shanks square root and the Baby Jubjub point encoding.
type Field struct {
	Zero   *big.Int
	One    *big.Int
	NegOne *big.Int
	order  *big.Int
	half   *big.Int
}

// New constructs a Field of the given prime order.
func New(order *big.Int) *Field {
	o := new(big.Int).Set(order)
	return &Field{
		Zero:   big.NewInt(0),
		One:    big.NewInt(1),
		NegOne: new(big.Int).Sub(o, big.NewInt(1)),
		order:  o,
		half:   new(big.Int).Rsh(o, 1),
	}
}

// Order returns the field's modulus.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// E canonicalizes v into [0, order).
func (f *Field) E(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, f.order)
	if r.Sign() < 0 {
		r.Add(r, f.order)
	}
	return r
}

// Add returns (a+b) mod order.
func (f *Field) Add(a, b *big.Int) *big.Int {
	res := new(big.Int).Add(a, b)
	if res.Cmp(f.order) >= 0 {
		res.Sub(res, f.order)
	}
	return res
}

// Sub returns (a-b) mod order without going negative.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return new(big.Int).Sub(a, b)
	}
	res := new(big.Int).Sub(f.order, b)
	res.Add(res, a)
	return res
}

// Mul returns (a*b) mod order.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	res := new(big.Int).Mul(a, b)
	return res.Mod(res, f.order)
}

// Square returns (a*a) mod order.
func (f *Field) Square(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

// Neg returns -a mod order, keeping 0 fixed.
func (f *Field) Neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(f.order, a)
}

// Inv returns the modular inverse of a via the extended Euclidean algorithm.
// It panics with ErrZeroInverse when a is zero: an inverse of zero is a
// programmer error, not a recoverable validation failure.
func (f *Field) Inv(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		panic(ErrZeroInverse)
	}

	t := new(big.Int)
	r := new(big.Int).Set(f.order)
	newT := big.NewInt(1)
	newR := new(big.Int).Mod(a, f.order)

	q := new(big.Int)
	tmp := new(big.Int)
	for newR.Sign() != 0 {
		q.Div(r, newR)

		tmp.Mul(q, newT)
		tmp.Sub(t, tmp)
		t, newT = newT, new(big.Int).Set(tmp)

		tmp.Mul(q, newR)
		tmp.Sub(r, tmp)
		r, newR = newR, new(big.Int).Set(tmp)
	}

	if t.Sign() < 0 {
		t.Add(t, f.order)
	}
	return t
}

// Div returns a / b, i.e. a * Inv(b).
func (f *Field) Div(a, b *big.Int) *big.Int {
	return f.Mul(a, f.Inv(b))
}

// Eq reports whether a and b are the same canonical value.
func (f *Field) Eq(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

// IsZero reports whether a is the canonical zero.
func (f *Field) IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// signed reinterprets a value above half as negative, for Lt/Geq only; the
// canonical [0, order) representation is never altered.
func (f *Field) signed(a *big.Int) *big.Int {
	if a.Cmp(f.half) > 0 {
		return new(big.Int).Sub(a, f.order)
	}
	return new(big.Int).Set(a)
}

// Lt is the signed comparison a < b, treating values above order/2 as
// negative for the purpose of comparison only.
func (f *Field) Lt(a, b *big.Int) bool {
	return f.signed(a).Cmp(f.signed(b)) < 0
}

// Geq is the signed comparison a >= b (see Lt).
func (f *Field) Geq(a, b *big.Int) bool {
	return f.signed(a).Cmp(f.signed(b)) >= 0
}

// Pow computes base^exp mod order by square-and-multiply, scanning the bits
// of exp from high to low with the accumulator seeded to base (the MSB is
// consumed implicitly). A negative exponent inverts the base once and
// negates exp. Pow(_, 0) is always One.
func (f *Field) Pow(base, exp *big.Int) *big.Int {
	if IsZero(exp) {
		return new(big.Int).Set(f.One)
	}

	b := base
	e := exp
	if e.Sign() < 0 {
		b = f.Inv(base)
		e = new(big.Int).Neg(e)
	}

	bits := Bits(e)
	if len(bits) == 0 {
		return new(big.Int).Set(f.One)
	}

	res := new(big.Int).Set(b)
	for i := len(bits) - 2; i >= 0; i-- {
		res = f.Square(res)
		if bits[i] == 1 {
			res = f.Mul(res, b)
		}
	}
	return res
}
