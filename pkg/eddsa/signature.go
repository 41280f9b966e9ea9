package eddsa

import (
	"fmt"
	"math/big"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/babyjub"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
)

// Signature is an EdDSA-Poseidon signature: a curve point R8 and a scalar S.
type Signature struct {
	R8 babyjub.Point
	S  *big.Int
}

// PackSignature encodes sig as 64 bytes: the compressed R8 point followed by
// S as 32 little-endian bytes. It rejects signatures whose R8 is off-curve
// or whose S is not below the subgroup order babyjub.SubOrder.
//
// Sign reduces S modulo the field prime (babyjub.R), not the subgroup order,
// so a signature fresh off Sign can legitimately fail this check; see
// Sign's doc comment.
func PackSignature(sig Signature) ([]byte, error) {
	if !babyjub.InCurve(sig.R8) {
		return nil, fmt.Errorf("eddsa: invalid signature, R8 is not on curve")
	}
	if sig.S.Cmp(babyjub.SubOrder) >= 0 {
		return nil, fmt.Errorf("eddsa: invalid signature, S >= subgroup order")
	}

	packedR8, err := babyjub.Pack(sig.R8)
	if err != nil {
		return nil, err
	}
	packedS, err := codec.LEBigIntToBytes(sig.S, 32)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 64)
	copy(out[:32], packedR8)
	copy(out[32:], packedS)
	return out, nil
}

// UnpackSignature decodes a 64-byte packed signature. It validates the
// length and that R8 unpacks to a valid curve point; it does not re-check
// S against the subgroup order.
func UnpackSignature(packed []byte) (Signature, error) {
	if len(packed) != 64 {
		return Signature{}, fmt.Errorf("eddsa: packed signature must be 64 bytes, got %d", len(packed))
	}

	r8, err := babyjub.Unpack(packed[:32])
	if err != nil {
		return Signature{}, fmt.Errorf("eddsa: invalid packed R8 in signature: %w", err)
	}
	s := codec.LEBytesToBigInt(packed[32:])

	return Signature{R8: r8, S: s}, nil
}
