package prover

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyProofRejectsMalformedProof(t *testing.T) {
	err := VerifyProof("not-hex", []byte("vk"), []string{"1"})
	assert.ErrorIs(t, err, ErrParse)

	err = VerifyProof("abcd", []byte("vk"), []string{"1"})
	assert.ErrorIs(t, err, ErrParse)
}

func TestVerifyProofRejectsMalformedVerifyingKey(t *testing.T) {
	proofHex := hex.EncodeToString(generatorProof().MarshalCompressed())
	err := VerifyProof(proofHex, []byte("invalid content"), []string{"1"})
	assert.ErrorIs(t, err, ErrKey)
	assert.Contains(t, err.Error(), "failed to deserialize verifying key")
}

func TestVerifyProofRejectsMalformedSignals(t *testing.T) {
	proofHex := hex.EncodeToString(generatorProof().MarshalCompressed())
	err := VerifyProof(proofHex, []byte("vk"), nil)
	// Key parse happens before signal parse; use a valid-looking vk failure
	// to pin ordering, then check the signal path directly.
	assert.ErrorIs(t, err, ErrKey)

	_, perr := parsePublicSignal("12x4")
	assert.ErrorIs(t, perr, ErrParse)
	_, perr = parsePublicSignal("0x1234")
	assert.ErrorIs(t, perr, ErrParse)
}
