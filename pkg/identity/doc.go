// Package identity implements the Semaphore identity object: a private key,
// its derived EdDSA secret scalar and public key, and a Poseidon commitment,
// with base64 export/import and message signing/verification.
package identity
