package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/babyjub"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/eddsa"
)

// Identity bundles a private key with its derived secret scalar, public
// key, and commitment. Once constructed the derived fields never change;
// the private key is owned by the Identity, and every export produces an
// independent copy of its bytes.
type Identity struct {
	privateKey   []byte
	secretScalar *big.Int
	publicKey    babyjub.Point
	commitment   *big.Int
}

// New creates an identity from privateKey, or from 32 fresh random bytes
// when privateKey is nil. A supplied privateKey is adopted verbatim, even
// an empty slice: callers that want a fresh key must pass nil, not []byte{}.
func New(privateKey []byte) (*Identity, error) {
	sk := privateKey
	if sk == nil {
		sk = make([]byte, 32)
		if _, err := rand.Read(sk); err != nil {
			return nil, fmt.Errorf("identity: generating random private key: %w", err)
		}
	}

	secretScalar := eddsa.DeriveSecretScalar(sk)
	publicKey := eddsa.DerivePublicKey(sk)
	commitment, err := GenerateCommitment(publicKey)
	if err != nil {
		return nil, err
	}

	return &Identity{
		privateKey:   append([]byte{}, sk...),
		secretScalar: secretScalar,
		publicKey:    publicKey,
		commitment:   commitment,
	}, nil
}

// PrivateKey returns a copy of the identity's private key bytes.
func (id *Identity) PrivateKey() []byte {
	return append([]byte{}, id.privateKey...)
}

// SecretScalar returns the identity's derived EdDSA secret scalar.
func (id *Identity) SecretScalar() *big.Int {
	return new(big.Int).Set(id.secretScalar)
}

// PublicKey returns the identity's Baby Jubjub public key.
func (id *Identity) PublicKey() babyjub.Point {
	return id.publicKey
}

// Commitment returns the identity's Poseidon commitment.
func (id *Identity) Commitment() *big.Int {
	return new(big.Int).Set(id.commitment)
}

// Export encodes the private key as base64: as UTF-8 text when the bytes
// are valid UTF-8, otherwise as the raw bytes.
func (id *Identity) Export() string {
	if utf8.Valid(id.privateKey) {
		return codec.TextToBase64(string(id.privateKey))
	}
	return codec.BytesToBase64(id.privateKey)
}

// Import decodes a base64-encoded private key and constructs the identity
// it belongs to.
func Import(encoded string) (*Identity, error) {
	sk, err := codec.Base64ToBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("identity: importing: %w", err)
	}
	return New(sk)
}

// SignMessage signs message with the identity's private key.
func (id *Identity) SignMessage(message []byte) (eddsa.Signature, error) {
	return eddsa.Sign(id.privateKey, message)
}

// VerifySignature verifies sig over message against publicKey.
func VerifySignature(message []byte, sig eddsa.Signature, publicKey babyjub.Point) bool {
	return eddsa.Verify(message, sig, publicKey)
}

// GenerateCommitment computes the Poseidon commitment for a public key,
// mirroring the computation New performs when constructing an identity.
func GenerateCommitment(publicKey babyjub.Point) (*big.Int, error) {
	c, err := eddsa.Poseidon(publicKey.X, publicKey.Y)
	if err != nil {
		return nil, fmt.Errorf("identity: computing commitment: %w", err)
	}
	return c, nil
}
