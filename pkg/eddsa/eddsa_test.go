package eddsa

import (
	"math/big"
	"testing"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/babyjub"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
)

func TestDerivePublicKeyFromString(t *testing.T) {
	pub := DerivePublicKey([]byte("secret"))
	if !babyjub.InCurve(pub) {
		t.Error("derived public key must be on curve")
	}
}

func TestSignAndVerifyMessage(t *testing.T) {
	sk := []byte("secret")
	msgBuf, err := codec.LEBigIntToBytes(big.NewInt(2), 32)
	if err != nil {
		t.Fatalf("LEBigIntToBytes: %v", err)
	}

	pub := DerivePublicKey(sk)
	sig, err := Sign(sk, msgBuf)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(msgBuf, sig, pub) {
		t.Error("expected signature to verify")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	sk := []byte("secret")
	msgBuf, _ := codec.LEBigIntToBytes(big.NewInt(2), 32)
	pub := DerivePublicKey(sk)
	sig, err := Sign(sk, msgBuf)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := append([]byte{}, msgBuf...)
	tampered[0] ^= 0x01
	if Verify(tampered, sig, pub) {
		t.Error("expected verification to fail for a tampered message")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	sk := []byte("secret")
	msgBuf, _ := codec.LEBigIntToBytes(big.NewInt(2), 32)
	pub := DerivePublicKey(sk)
	sig, err := Sign(sk, msgBuf)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tamperedS := Signature{R8: sig.R8, S: new(big.Int).Add(sig.S, big.NewInt(1))}
	if Verify(msgBuf, tamperedS, pub) {
		t.Error("expected verification to fail for a tampered S")
	}
}

func TestVerifyRejectsOffCurvePoints(t *testing.T) {
	sk := []byte("secret")
	msgBuf, _ := codec.LEBigIntToBytes(big.NewInt(2), 32)

	offCurve := babyjub.Point{X: big.NewInt(0), Y: big.NewInt(3)}
	sig, err := Sign(sk, msgBuf)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if Verify(msgBuf, sig, offCurve) {
		t.Error("expected verification against an off-curve public key to fail")
	}

	badSig := Signature{R8: offCurve, S: sig.S}
	if Verify(msgBuf, badSig, DerivePublicKey(sk)) {
		t.Error("expected verification with an off-curve R8 to fail")
	}
}

func TestPackAndUnpackPublicKey(t *testing.T) {
	pub := DerivePublicKey([]byte("secret"))
	packed, err := PackPublicKey(pub)
	if err != nil {
		t.Fatalf("PackPublicKey: %v", err)
	}
	unpacked, err := UnpackPublicKey(packed)
	if err != nil {
		t.Fatalf("UnpackPublicKey: %v", err)
	}
	if unpacked.X.Cmp(pub.X) != 0 || unpacked.Y.Cmp(pub.Y) != 0 {
		t.Error("unpacked public key does not match original")
	}
}

func TestPublicKeyNotOnCurve(t *testing.T) {
	invalid := babyjub.Point{X: big.NewInt(0), Y: big.NewInt(3)}
	if _, err := PackPublicKey(invalid); err == nil {
		t.Error("expected error packing an off-curve public key")
	}
}

func TestUnpackSignatureInvalidLength(t *testing.T) {
	if _, err := UnpackSignature(make([]byte, 63)); err == nil {
		t.Error("expected error for a signature shorter than 64 bytes")
	}
}

func TestPackSignatureRejectsOffCurveR8(t *testing.T) {
	sk := []byte("secret")
	msgBuf, _ := codec.LEBigIntToBytes(big.NewInt(2), 32)
	sig, err := Sign(sk, msgBuf)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig.R8.Y = big.NewInt(3)
	if _, err := PackSignature(sig); err == nil {
		t.Error("expected error packing a signature with an off-curve R8")
	}
}
