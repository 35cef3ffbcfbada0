// Package prover turns a pre-computed witness and a serialized Groth16
// proving key into a proof plus the extracted public signals, on the BN254
// curve. Witness values arrive as decimal strings or little-endian hex
// strings; proofs leave as a 128-byte compressed point encoding.
package prover

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// HexLELength is the exact number of hex characters in a little-endian
// encoded field element (32 bytes), not counting the optional 0x prefix.
const HexLELength = 2 * fr.Bytes

// DecimalToField parses s as an unsigned arbitrary-precision decimal integer
// and reduces it modulo the BN254 scalar field prime. Values at or above the
// modulus wrap around; that is field semantics, not an error.
func DecimalToField(s string) (fr.Element, error) {
	var e fr.Element
	if len(s) == 0 {
		return e, fmt.Errorf("%w: empty decimal string", ErrParse)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return e, fmt.Errorf("%w: invalid decimal string %q", ErrParse, s)
		}
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return e, fmt.Errorf("%w: invalid decimal string %q", ErrParse, s)
	}
	e.SetBigInt(bi)
	return e, nil
}

// HexLEToField parses s as 32 little-endian bytes encoded as exactly 64 hex
// characters, with an optional 0x or 0X prefix, and reduces the resulting
// 256-bit integer modulo the scalar field prime.
func HexLEToField(s string) (fr.Element, error) {
	var e fr.Element
	h := s
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if len(h) != HexLELength {
		return e, fmt.Errorf("%w: hex string %q must be %d characters, got %d", ErrParse, s, HexLELength, len(h))
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return e, fmt.Errorf("%w: invalid hex string %q: %v", ErrParse, s, err)
	}
	reverseBytes(b)
	e.SetBigInt(new(big.Int).SetBytes(b))
	return e, nil
}

// FieldToHexLE serializes f to exactly 64 lowercase hex characters encoding
// the canonical reduced value as 32 little-endian bytes, without prefix.
// It is the inverse of HexLEToField for values below the modulus.
func FieldToHexLE(f fr.Element) string {
	b := f.Bytes() // big-endian regular form
	reverseBytes(b[:])
	return hex.EncodeToString(b[:])
}

// FieldToDecimal returns the canonical reduced decimal representation of f.
func FieldToDecimal(f fr.Element) string {
	return f.BigInt(new(big.Int)).String()
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
