package prover

import (
	"encoding/hex"
	"fmt"
	"os"
)

// Prover orchestrates one proving call: key loading, witness assembly, the
// shape check against the key, proof generation and output extraction. A
// Prover holds no mutable state, so a single value may serve concurrent
// calls.
type Prover struct {
	backend Backend
}

// New returns a Prover over the given backend. A nil backend selects the
// gnark BN254 implementation.
func New(backend Backend) *Prover {
	if backend == nil {
		backend = GnarkBackend{}
	}
	return &Prover{backend: backend}
}

// GenerateProof proves over a decimal-encoded witness. The result carries
// the proof as 256 lowercase hex characters and each of the first
// numPublicSignals witness elements as unprefixed little-endian hex.
func (p *Prover) GenerateProof(numPublicSignals int, witnessDecimal []string, provingKey []byte) (*ProofResult, error) {
	return p.generate(numPublicSignals, witnessDecimal, provingKey, EncodingDecimal, false)
}

// GenerateProofHex proves over a little-endian hex witness. This is the
// legacy surface: proof and public signals in the result carry a 0x prefix.
func (p *Prover) GenerateProofHex(numPublicSignals int, witnessHexLE []string, provingKey []byte) (*ProofResult, error) {
	return p.generate(numPublicSignals, witnessHexLE, provingKey, EncodingHexLE, true)
}

func (p *Prover) generate(numPublicSignals int, raw []string, provingKey []byte, enc Encoding, prefixed bool) (*ProofResult, error) {
	w, err := AssembleWitness(raw, numPublicSignals, enc)
	if err != nil {
		return nil, err
	}
	key, err := p.backend.LoadKey(provingKey)
	if err != nil {
		return nil, err
	}
	assignment := NewAssignment(w)
	if err := assignment.CheckShape(key); err != nil {
		return nil, err
	}
	proof, err := p.backend.Prove(key, assignment)
	if err != nil {
		return nil, err
	}

	proofHex := hex.EncodeToString(proof.MarshalCompressed())
	signals := make([]string, 0, w.NumPublicSignals())
	for _, e := range w.PublicSignals() {
		signals = append(signals, withPrefix(FieldToHexLE(e), prefixed))
	}
	return &ProofResult{
		Proof:         withPrefix(proofHex, prefixed),
		PublicSignals: signals,
	}, nil
}

// GenerateProofFromFile proves over a little-endian hex witness with the key
// bundle read from disk, and returns only the raw compressed proof bytes.
// The public/secret split is taken from the key's wire counts, so no public
// signal count is supplied and no signals are extracted.
func (p *Prover) GenerateProofFromFile(witnessHexLE []string, provingKeyPath string) ([]byte, error) {
	keyBytes, err := os.ReadFile(provingKeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read proving key: %v", ErrKey, err)
	}
	key, err := p.backend.LoadKey(keyBytes)
	if err != nil {
		return nil, err
	}
	elements, err := parseElements(witnessHexLE, EncodingHexLE)
	if err != nil {
		return nil, err
	}
	nbPublic := key.NbPublicWires()
	if len(elements) != nbPublic+key.NbSecretWires() {
		return nil, fmt.Errorf("%w: witness has %d elements, circuit expects %d + %d",
			ErrWitnessShape, len(elements), nbPublic, key.NbSecretWires())
	}
	assignment := &Assignment{Public: elements[:nbPublic], Secret: elements[nbPublic:]}
	proof, err := p.backend.Prove(key, assignment)
	if err != nil {
		return nil, err
	}
	return proof.MarshalCompressed(), nil
}

// Package-level entry points over the gnark backend.

// GenerateProof proves over a decimal-encoded witness with the gnark backend.
func GenerateProof(numPublicSignals int, witnessDecimal []string, provingKey []byte) (*ProofResult, error) {
	return New(nil).GenerateProof(numPublicSignals, witnessDecimal, provingKey)
}

// GenerateProofHex proves over a little-endian hex witness with the gnark
// backend.
func GenerateProofHex(numPublicSignals int, witnessHexLE []string, provingKey []byte) (*ProofResult, error) {
	return New(nil).GenerateProofHex(numPublicSignals, witnessHexLE, provingKey)
}

// GenerateProofFromFile proves with the key bundle at provingKeyPath and
// returns the raw compressed proof bytes.
func GenerateProofFromFile(witnessHexLE []string, provingKeyPath string) ([]byte, error) {
	return New(nil).GenerateProofFromFile(witnessHexLE, provingKeyPath)
}

func withPrefix(h string, prefixed bool) string {
	if prefixed {
		return "0x" + h
	}
	return h
}
