// Package babyjub implements the Baby Jubjub twisted-Edwards curve over the
// BN254 scalar field: point addition, scalar multiplication, the curve
// membership test, and the compressed point encoding used throughout the
// EdDSA-Poseidon signature scheme.
package babyjub

import (
	"fmt"
	"math/big"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/field"
)

// R is the BN254 scalar-field prime. It is also the modulus of Fr.
var R, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Order is the order of the full Baby Jubjub group (cofactor 8 times the
// prime subgroup order).
var Order, _ = new(big.Int).SetString("21888242871839275222246405745257275088614511777268538073601725287587578984328", 10)

// SubOrder is the prime order of the large subgroup: Order / 8.
var SubOrder = field.ShiftRight(Order, 3)

// Fr is the prime field of order R that all curve arithmetic is performed
// over.
var Fr = field.New(R)

// A and D are the twisted-Edwards curve coefficients:
// A*x^2 + y^2 = 1 + D*x^2*y^2.
var (
	A = Fr.E(big.NewInt(168700))
	D = Fr.E(big.NewInt(168696))
)

// Point is an affine point (x, y) on the curve, or the identity (0, 1).
type Point struct {
	X *big.Int
	Y *big.Int
}

// Identity returns the curve's neutral element, (0, 1).
func Identity() Point {
	return Point{X: new(big.Int).Set(Fr.Zero), Y: new(big.Int).Set(Fr.One)}
}

// Base8 is the generator of the prime-order subgroup used by EdDSA-Poseidon.
var Base8 = Point{
	X: Fr.E(mustBig("5299619240641551281634865583518297030282874472190772894086521144482721001553")),
	Y: Fr.E(mustBig("16950150798460657717958625567821834550301663161624707787222815936182638968203")),
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("babyjub: invalid constant " + s)
	}
	return v
}

// Add computes the twisted-Edwards unified addition formula. It has no
// special case for the identity or for doubling; the divisions never
// encounter a zero denominator for on-curve inputs of this curve.
func Add(p1, p2 Point) Point {
	beta := Fr.Mul(p1.X, p2.Y)
	gamma := Fr.Mul(p1.Y, p2.X)
	delta := Fr.Mul(Fr.Sub(p1.Y, Fr.Mul(A, p1.X)), Fr.Add(p2.X, p2.Y))

	tau := Fr.Mul(beta, gamma)
	dtau := Fr.Mul(D, tau)

	x3 := Fr.Div(Fr.Add(beta, gamma), Fr.Add(Fr.One, dtau))
	y3 := Fr.Div(Fr.Add(delta, Fr.Sub(Fr.Mul(A, beta), gamma)), Fr.Sub(Fr.One, dtau))

	return Point{X: x3, Y: y3}
}

// MulScalar computes e*base by right-to-left double-and-add. Callers must
// pass a non-negative, already-reduced scalar.
func MulScalar(base Point, e *big.Int) Point {
	res := Identity()
	exp := base
	rem := new(big.Int).Set(e)

	for !field.IsZero(rem) {
		if field.IsOdd(rem) {
			res = Add(res, exp)
		}
		exp = Add(exp, exp)
		rem = field.ShiftRight(rem, 1)
	}
	return res
}

// InCurve reports whether p satisfies A*x^2 + y^2 == 1 + D*x^2*y^2 in Fr.
func InCurve(p Point) bool {
	x2 := Fr.Square(p.X)
	y2 := Fr.Square(p.Y)
	lhs := Fr.Add(Fr.Mul(A, x2), y2)
	rhs := Fr.Add(Fr.One, Fr.Mul(Fr.Mul(x2, y2), D))
	return Fr.Eq(lhs, rhs)
}

// InSubGroup reports whether p lies in the prime-order subgroup generated
// by Base8, i.e. p is on-curve and SubOrder*p is the identity.
func InSubGroup(p Point) bool {
	if !InCurve(p) {
		return false
	}
	r := MulScalar(p, SubOrder)
	return Fr.IsZero(r.X) && Fr.Eq(r.Y, Fr.One)
}

// Pack compresses p into its 32-byte little-endian encoding: y as 32 LE
// bytes with the sign of x folded into the top bit of the last byte.
func Pack(p Point) ([]byte, error) {
	buf, err := codec.LEBigIntToBytes(p.Y, 32)
	if err != nil {
		return nil, err
	}
	if Fr.Lt(p.X, Fr.Zero) {
		buf[31] |= 0x80
	}
	return buf, nil
}

// Unpack decompresses a 32-byte little-endian point encoding. It fails when
// y >= R or when (1 - y^2)/(A - D*y^2) has no square root in Fr.
func Unpack(buf []byte) (Point, error) {
	if len(buf) != 32 {
		return Point{}, fmt.Errorf("babyjub: packed point must be 32 bytes, got %d", len(buf))
	}
	work := make([]byte, 32)
	copy(work, buf)

	sign := work[31]&0x80 != 0
	work[31] &= 0x7f

	y := codec.LEBytesToBigInt(work)
	if y.Cmp(R) >= 0 {
		return Point{}, fmt.Errorf("babyjub: invalid point, y >= R")
	}

	y2 := Fr.Square(y)
	den := Fr.Sub(A, Fr.Mul(D, y2))
	num := Fr.Sub(Fr.One, y2)

	x, ok := TonelliShanks(Fr.Div(num, den), R)
	if !ok {
		return Point{}, fmt.Errorf("babyjub: invalid point, no square root for x^2")
	}
	if sign {
		x = Fr.Neg(x)
	}
	return Point{X: x, Y: y}, nil
}
