// Package eddsa implements the EdDSA-Poseidon signature scheme over the Baby
// Jubjub curve: secret scalar derivation, key derivation, signing,
// verification, and the compact wire encodings for public keys and
// signatures.
package eddsa
