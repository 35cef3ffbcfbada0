package prover

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
)

// VerifyProof checks a proof produced by this package against a gnark
// verifying key. Public signals are accepted in either encoding: strings
// with a 0x prefix are read as little-endian hex, anything else as decimal.
func VerifyProof(proofHex string, verifyingKey []byte, publicSignals []string) error {
	proofData, err := decodeProofHex(proofHex)
	if err != nil {
		return err
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(verifyingKey)); err != nil {
		return fmt.Errorf("%w: failed to deserialize verifying key: %v", ErrKey, err)
	}

	elements := make([]fr.Element, len(publicSignals))
	for i, s := range publicSignals {
		e, err := parsePublicSignal(s)
		if err != nil {
			return fmt.Errorf("public signal %d: %w", i, err)
		}
		elements[i] = e
	}
	public, err := publicWitness(elements)
	if err != nil {
		return fmt.Errorf("%w: failed to build public witness: %v", ErrSerialization, err)
	}

	proof := &groth16_bn254.Proof{Ar: proofData.Ar, Bs: proofData.Bs, Krs: proofData.Krs}
	if err := groth16.Verify(proof, vk, public); err != nil {
		return fmt.Errorf("%w: proof verification failed: %v", ErrProving, err)
	}
	return nil
}

func parsePublicSignal(s string) (fr.Element, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return HexLEToField(s)
	}
	return DecimalToField(s)
}

func publicWitness(elements []fr.Element) (witness.Witness, error) {
	values := make(chan any, len(elements))
	for _, e := range elements {
		values <- e
	}
	close(values)

	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	if err := w.Fill(len(elements), 0, values); err != nil {
		return nil, err
	}
	return w, nil
}
