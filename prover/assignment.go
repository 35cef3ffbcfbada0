package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Assignment is the ordered full wire assignment handed to the proving
// backend: public input wires first, then secret wires, excluding the
// constant-one wire (the primitive provides that itself). It is a pure
// data-shape bridge; the witness is trusted as already satisfying the
// circuit, so no constraints are re-derived here.
type Assignment struct {
	Public []fr.Element
	Secret []fr.Element
}

// NewAssignment splits an assembled witness into the public/secret layout
// the proving backend expects.
func NewAssignment(w *Witness) *Assignment {
	elements := w.Elements()
	return &Assignment{
		Public: elements[:w.NumPublicSignals()],
		Secret: elements[w.NumPublicSignals():],
	}
}

// CheckShape verifies that the assignment maps 1:1 onto the wire counts of
// the loaded proving key. A mismatch surfaces as a proving failure, not a
// validation failure: the witness itself is well-formed, it just belongs to
// a different circuit.
func (a *Assignment) CheckShape(key Key) error {
	if len(a.Public) != key.NbPublicWires() || len(a.Secret) != key.NbSecretWires() {
		return fmt.Errorf("%w: witness has %d public + %d secret elements, circuit expects %d + %d",
			ErrWitnessShape, len(a.Public), len(a.Secret), key.NbPublicWires(), key.NbSecretWires())
	}
	return nil
}
