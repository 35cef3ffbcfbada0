package prover

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
)

// GnarkBackend is the production Backend, proving with gnark's BN254 Groth16
// implementation. Blinding randomness comes from crypto/rand inside
// groth16.Prove on every call; there is no seeding surface, so proofs are
// never deterministic in this backend.
type GnarkBackend struct{}

// gnarkKey bundles the constraint system together with the proving key. The
// serialized form is the R1CS followed by the proving key on a single
// stream, each with its own gnark framing; both are self-delimiting.
type gnarkKey struct {
	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
}

// NbPublicWires reports the circuit's public input count without the
// constant-one wire, which gnark stores as Public[0].
func (k *gnarkKey) NbPublicWires() int { return k.ccs.GetNbPublicVariables() - 1 }

func (k *gnarkKey) NbSecretWires() int { return k.ccs.GetNbSecretVariables() }

// LoadKey deserializes a proving key bundle produced at setup time.
func (GnarkBackend) LoadKey(b []byte) (Key, error) {
	r := bytes.NewReader(b)
	ccs := groth16.NewCS(ecc.BN254)
	if _, err := ccs.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: failed to deserialize proving key: %v", ErrKey, err)
	}
	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: failed to deserialize proving key: %v", ErrKey, err)
	}
	return &gnarkKey{ccs: ccs, pk: pk}, nil
}

// Prove builds the gnark witness from the assignment and runs the Groth16
// prover. The circuit's internal wires are solved by gnark from the input
// assignment.
func (GnarkBackend) Prove(key Key, a *Assignment) (*ProofData, error) {
	k, ok := key.(*gnarkKey)
	if !ok {
		return nil, fmt.Errorf("%w: key handle was not loaded by this backend (%T)", ErrProving, key)
	}
	w, err := a.gnarkWitness()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build witness: %v", ErrProving, err)
	}
	proof, err := groth16.Prove(k.ccs, k.pk, w)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate proof: %v", ErrProving, err)
	}
	bp, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected proof type %T", ErrSerialization, proof)
	}
	if len(bp.Commitments) != 0 {
		// The 128-byte transport format has no room for commitment points;
		// keys for commitment-using circuits are outside this contract.
		return nil, fmt.Errorf("%w: proof carries %d commitments", ErrSerialization, len(bp.Commitments))
	}
	return &ProofData{Ar: bp.Ar, Bs: bp.Bs, Krs: bp.Krs}, nil
}

// gnarkWitness materializes the assignment as a gnark witness, public
// elements first, then secret, matching witness.Fill ordering.
func (a *Assignment) gnarkWitness() (witness.Witness, error) {
	values := make(chan any, len(a.Public)+len(a.Secret))
	for _, e := range a.Public {
		values <- e
	}
	for _, e := range a.Secret {
		values <- e
	}
	close(values)

	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	if err := w.Fill(len(a.Public), len(a.Secret), values); err != nil {
		return nil, err
	}
	return w, nil
}
