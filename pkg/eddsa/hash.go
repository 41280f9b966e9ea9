package eddsa

import (
	"math/big"

	"github.com/dchest/blake512"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// blake512Sum returns the 64-byte BLAKE-512 digest of data.
func blake512Sum(data []byte) []byte {
	h := blake512.New()
	h.Write(data)
	return h.Sum(nil)
}

// poseidonHash hashes inputs with the Poseidon sponge parameterized for
// circom-compatible circuits. It is used both for the 5-element
// (R8.x, R8.y, A.x, A.y, msg) challenge hash and the 2-element identity
// commitment.
//
// The source this scheme was distilled from builds the 5-element challenge
// vector but feeds it to a Poseidon instance fixed at width 2, so only
// (R8.x, R8.y) ever reaches the hash. That does not match the canonical
// Semaphore/circomlib EdDSA-Poseidon construction, which hashes all five
// elements, so verifiers built against the real protocol would reject every
// signature produced this way. This package hashes all inputs it is given
// for that reason: challengeHash (eddsa.go) passes 5 elements for the
// challenge and the identity commitment passes 2 through Poseidon, and both
// are hashed in full.
func poseidonHash(inputs ...*big.Int) (*big.Int, error) {
	return poseidon.Hash(inputs)
}

// Poseidon exposes the same hash for callers outside this package, such as
// the identity commitment (a 2-element Poseidon hash of a public key).
func Poseidon(inputs ...*big.Int) (*big.Int, error) {
	return poseidonHash(inputs...)
}
