package prover

import (
	"encoding/hex"
	"fmt"
	"strings"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// CompressedProofSize is the size of a serialized proof: the three proof
// points in compressed form, A (G1, 32 bytes), B (G2, 64 bytes) and
// C (G1, 32 bytes).
const CompressedProofSize = curve.SizeOfG1AffineCompressed +
	curve.SizeOfG2AffineCompressed +
	curve.SizeOfG1AffineCompressed

// ProofData holds the three Groth16 proof points. Its only transport
// encoding is the fixed 128-byte compressed form.
type ProofData struct {
	Ar  curve.G1Affine
	Bs  curve.G2Affine
	Krs curve.G1Affine
}

// MarshalCompressed serializes the proof as Ar ‖ Bs ‖ Krs in compressed
// point encoding, exactly CompressedProofSize bytes.
func (p *ProofData) MarshalCompressed() []byte {
	out := make([]byte, 0, CompressedProofSize)
	ar := p.Ar.Bytes()
	bs := p.Bs.Bytes()
	krs := p.Krs.Bytes()
	out = append(out, ar[:]...)
	out = append(out, bs[:]...)
	out = append(out, krs[:]...)
	return out
}

// UnmarshalCompressed is the inverse of MarshalCompressed. Points are
// validated (curve membership and subgroup checks) during decoding.
func (p *ProofData) UnmarshalCompressed(b []byte) error {
	if len(b) != CompressedProofSize {
		return fmt.Errorf("%w: proof must be %d bytes, got %d", ErrParse, CompressedProofSize, len(b))
	}
	offset := 0
	n, err := p.Ar.SetBytes(b[offset:])
	if err != nil {
		return fmt.Errorf("%w: invalid proof point A: %v", ErrParse, err)
	}
	offset += n
	n, err = p.Bs.SetBytes(b[offset:])
	if err != nil {
		return fmt.Errorf("%w: invalid proof point B: %v", ErrParse, err)
	}
	offset += n
	if _, err = p.Krs.SetBytes(b[offset:]); err != nil {
		return fmt.Errorf("%w: invalid proof point C: %v", ErrParse, err)
	}
	return nil
}

// decodeProofHex parses a hex transport string (optional 0x prefix) into a
// ProofData.
func decodeProofHex(s string) (*ProofData, error) {
	h := s
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid proof hex: %v", ErrParse, err)
	}
	var p ProofData
	if err := p.UnmarshalCompressed(b); err != nil {
		return nil, err
	}
	return &p, nil
}
