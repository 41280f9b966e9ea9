// Package field implements arbitrary-precision scalar helpers and the prime
// field F_r used throughout the Baby Jubjub / EdDSA-Poseidon stack.
package field

import "math/big"

// IsZero reports whether a is the zero integer.
func IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// IsOdd reports whether a has its low bit set.
func IsOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}

// ShiftRight returns a arithmetic-shifted right by n bits (a >> n).
func ShiftRight(a *big.Int, n uint) *big.Int {
	return new(big.Int).Rsh(a, n)
}

// Mul returns a*b without any reduction.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Gt reports whether a > b.
func Gt(a, b *big.Int) bool {
	return a.Cmp(b) > 0
}

// Bits returns the little-endian (LSB first) bit sequence of n. The result
// is empty for n == 0 and never carries a trailing zero bit.
func Bits(n *big.Int) []uint8 {
	e := new(big.Int).Set(n)
	res := make([]uint8, 0, e.BitLen())
	for e.Sign() != 0 {
		if e.Bit(0) == 1 {
			res = append(res, 1)
		} else {
			res = append(res, 0)
		}
		e.Rsh(e, 1)
	}
	return res
}
