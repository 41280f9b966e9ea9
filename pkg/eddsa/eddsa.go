package eddsa

import (
	"fmt"
	"math/big"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/babyjub"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/field"
)

// prune clamps the low-order and high-order bits of a 32-byte buffer per
// RFC 8032: clear the bottom 3 bits of the first byte, clear the top bit and
// set the second-highest bit of the last byte. buf is modified in place.
func prune(buf []byte) {
	buf[0] &= 0xf8
	buf[31] &= 0x7f
	buf[31] |= 0x40
}

// DeriveSecretScalar derives the EdDSA secret scalar from a private key of
// arbitrary length: BLAKE-512, truncate and prune the first 32 bytes,
// interpret as a little-endian integer, strip the cofactor and reduce into
// the prime-order subgroup.
func DeriveSecretScalar(privateKey []byte) *big.Int {
	h := blake512Sum(privateKey)
	lower := make([]byte, 32)
	copy(lower, h[:32])
	prune(lower)

	s := codec.LEBytesToBigInt(lower)
	s = field.ShiftRight(s, 3)
	return new(big.Int).Mod(s, babyjub.SubOrder)
}

// DerivePublicKey derives the Baby Jubjub public key point for privateKey.
func DerivePublicKey(privateKey []byte) babyjub.Point {
	s := DeriveSecretScalar(privateKey)
	return babyjub.MulScalar(babyjub.Base8, s)
}

// challengeHash computes the Poseidon challenge hm = H(R8.x, R8.y, A.x,
// A.y, msgInt) shared by Sign and Verify.
func challengeHash(r8, a babyjub.Point, msgInt *big.Int) (*big.Int, error) {
	hm, err := poseidonHash(r8.X, r8.Y, a.X, a.Y, msgInt)
	if err != nil {
		return nil, fmt.Errorf("eddsa: poseidon challenge hash: %w", err)
	}
	return hm, nil
}

// Sign produces an EdDSA-Poseidon signature over message under privateKey.
//
// The final scalar S is reduced modulo the field prime babyjub.R rather
// than the subgroup order babyjub.SubOrder. This matches the contract this
// scheme was built to: it is non-standard (the canonical construction
// reduces mod the subgroup order) but preserved here for interop with
// signatures and verifiers already built against it. One consequence: the
// S this function returns can land at or above babyjub.SubOrder, in which
// case PackSignature will reject it even though Verify accepts it.
func Sign(privateKey, message []byte) (Signature, error) {
	h := blake512Sum(privateKey)

	lower := make([]byte, 32)
	copy(lower, h[:32])
	prune(lower)
	s := codec.LEBytesToBigInt(lower)

	a := babyjub.MulScalar(babyjub.Base8, field.ShiftRight(s, 3))

	msgInt := codec.LEBytesToBigInt(message)
	msgBuf, err := codec.LEBigIntToBytes(msgInt, 32)
	if err != nil {
		return Signature{}, fmt.Errorf("eddsa: message does not fit in 32 bytes: %w", err)
	}

	rSeed := append(append([]byte{}, h[32:64]...), msgBuf...)
	rBuf := blake512Sum(rSeed)
	r := babyjub.Fr.E(codec.LEBytesToBigInt(rBuf))

	r8 := babyjub.MulScalar(babyjub.Base8, r)

	hm, err := challengeHash(r8, a, msgInt)
	if err != nil {
		return Signature{}, err
	}

	sFinal := babyjub.Fr.Add(r, babyjub.Fr.Mul(hm, s))

	return Signature{R8: r8, S: sFinal}, nil
}

// Verify reports whether sig is a valid EdDSA-Poseidon signature over
// message under publicKey. It never returns an error: a malformed R8 or
// publicKey simply fails verification.
//
// The check is S·G == R8 + (8·hm)·pk: the cofactor 8 multiplies hm rather
// than clearing the cofactor out of pk. This is the verification contract
// this scheme was built against and must be preserved for compatibility
// even though it differs from the textbook EdDSA verification equation.
func Verify(message []byte, sig Signature, publicKey babyjub.Point) bool {
	if !babyjub.InCurve(sig.R8) || !babyjub.InCurve(publicKey) {
		return false
	}

	msgInt := codec.LEBytesToBigInt(message)
	hm, err := challengeHash(sig.R8, publicKey, msgInt)
	if err != nil {
		return false
	}

	left := babyjub.MulScalar(babyjub.Base8, sig.S)

	hm8 := new(big.Int).Mul(hm, big.NewInt(8))
	right := babyjub.Add(sig.R8, babyjub.MulScalar(publicKey, hm8))

	return babyjub.Fr.Eq(left.X, right.X) && babyjub.Fr.Eq(left.Y, right.Y)
}

// PackPublicKey compresses publicKey into its 32-byte wire form. It fails
// if publicKey is not on-curve.
func PackPublicKey(publicKey babyjub.Point) ([]byte, error) {
	if !babyjub.InCurve(publicKey) {
		return nil, fmt.Errorf("eddsa: invalid public key, not on curve")
	}
	return babyjub.Pack(publicKey)
}

// UnpackPublicKey decompresses a 32-byte wire-form public key.
func UnpackPublicKey(packed []byte) (babyjub.Point, error) {
	p, err := babyjub.Unpack(packed)
	if err != nil {
		return babyjub.Point{}, fmt.Errorf("eddsa: invalid public key: %w", err)
	}
	return p, nil
}
