// Package codec converts between big integers, fixed-size byte buffers, hex
// and base64 strings. Byte order is explicit everywhere: the Baby Jubjub /
// EdDSA-Poseidon stack is little-endian on the wire, but a big-endian pair is
// kept for symmetry and for callers working with big-endian protocols.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// LEBytesToBigInt interprets bytes as an unsigned little-endian integer. It
// is total: every byte slice, including the empty one, decodes to a value.
func LEBytesToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// LEBigIntToBytes encodes v as size little-endian bytes, zero-extending on
// the high-address side. It fails if v does not fit in size bytes.
func LEBigIntToBytes(v *big.Int, size int) ([]byte, error) {
	be := v.Bytes()
	if len(be) > size {
		return nil, fmt.Errorf("codec: size %d is too small, need at least %d bytes", size, len(be))
	}
	out := make([]byte, size)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out, nil
}

// BEBytesToBigInt interprets bytes as an unsigned big-endian integer.
func BEBytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BEBigIntToBytes encodes v as size big-endian bytes, zero-extending on the
// high-address side. It fails if v does not fit in size bytes.
func BEBigIntToBytes(v *big.Int, size int) ([]byte, error) {
	be := v.Bytes()
	if len(be) > size {
		return nil, fmt.Errorf("codec: size %d is too small, need at least %d bytes", size, len(be))
	}
	out := make([]byte, size-len(be))
	out = append(out, be...)
	return out, nil
}

// BigIntToHex renders v as lower-case, even-length hex without a prefix.
func BigIntToHex(v *big.Int) string {
	h := v.Text(16)
	if len(h)%2 != 0 {
		h = "0" + h
	}
	return h
}

// HexToBigInt parses a hex string, with an optional 0x/0X prefix, into a
// big.Int.
func HexToBigInt(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("codec: invalid hexadecimal string %q", s)
	}
	return v, nil
}

// BytesToHex renders b as lower-case hex without a prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string with an optional 0x/0X prefix, padding
// with a leading zero nibble when the string has odd length.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid hex: %w", err)
	}
	return b, nil
}

// BytesToBase64 encodes b using the standard padded alphabet.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes a standard padded base64 string.
func Base64ToBytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base64: %w", err)
	}
	return b, nil
}

// TextToBase64 encodes a UTF-8 string's bytes as standard base64.
func TextToBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64ToText decodes a standard base64 string and validates the result is
// UTF-8 text.
func Base64ToText(s string) (string, error) {
	b, err := Base64ToBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("codec: decoded bytes are not valid UTF-8")
	}
	return string(b), nil
}
