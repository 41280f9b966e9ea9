package babyjub

import (
	"math/big"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/field"
)

// Tonelli-Shanks parameters precomputed for the BN254 scalar field R. They
// are only valid for this specific modulus: sqrtS is the 2-adic valuation of
// R-1, sqrtZ is a fixed quadratic non-residue, and sqrtTM1D2 is (R-1)/2^sqrtS
// divided by 2 (used to seed the initial Tonelli-Shanks exponentiation).
const sqrtS = 28

var (
	sqrtZ     = mustBig("5978345932401256595026418116861078668372907927053715034645334559810731495452")
	sqrtTM1D2 = mustBig("40770029410420498293352137776570907027550720424234931066070132305055")
)

// TonelliShanks returns a square root of n modulo order, plus whether one
// exists. It is only correct for the specific order the package constants
// were derived for; it is not a general-purpose square-root routine.
func TonelliShanks(n, order *big.Int) (*big.Int, bool) {
	fr := field.New(order)

	if fr.IsZero(n) {
		return new(big.Int).Set(fr.Zero), true
	}

	w := fr.Pow(n, sqrtTM1D2)
	a0 := fr.Pow(fr.Mul(fr.Square(w), n), new(big.Int).Lsh(big.NewInt(1), sqrtS-1))

	if fr.Eq(a0, fr.NegOne) {
		return nil, false
	}

	v := sqrtS
	x := fr.Mul(n, w)
	b := fr.Mul(x, w)
	z := new(big.Int).Set(sqrtZ)

	for !fr.Eq(b, fr.One) {
		b2k := fr.Square(b)
		k := 1
		for !fr.Eq(b2k, fr.One) {
			b2k = fr.Square(b2k)
			k++
		}

		w = new(big.Int).Set(z)
		for i := 0; i < v-k-1; i++ {
			w = fr.Square(w)
		}

		z = fr.Square(w)
		b = fr.Mul(b, z)
		x = fr.Mul(x, w)
		v = k
	}

	if fr.Geq(x, fr.Zero) {
		return x, true
	}
	return fr.Neg(x), true
}
