package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Witness is an ordered, validated vector of field elements mirroring the
// circuit's input wires, with its first numPublic elements designated as
// public signals. It is immutable once assembled. The constant-one wire is
// not part of a Witness; the proving primitive injects it.
type Witness struct {
	elements  []fr.Element
	numPublic int
}

// AssembleWitness parses raw into a Witness using the declared encoding.
// Validation is fail-fast in this order: numPublicSignals must be positive,
// must be strictly smaller than the witness length (so at least one private
// element remains), and every element must parse. On the first failure no
// partial witness is returned.
func AssembleWitness(raw []string, numPublicSignals int, enc Encoding) (*Witness, error) {
	if numPublicSignals <= 0 {
		return nil, fmt.Errorf("%w: num_public_signals must be greater than 0", ErrValidation)
	}
	if numPublicSignals >= len(raw) {
		return nil, fmt.Errorf("%w: num_public_signals exceeds witness length (%d >= %d)",
			ErrValidation, numPublicSignals, len(raw))
	}
	elements, err := parseElements(raw, enc)
	if err != nil {
		return nil, err
	}
	return &Witness{elements: elements, numPublic: numPublicSignals}, nil
}

func parseElements(raw []string, enc Encoding) ([]fr.Element, error) {
	parse := DecimalToField
	if enc == EncodingHexLE {
		parse = HexLEToField
	}
	elements := make([]fr.Element, len(raw))
	for i, s := range raw {
		e, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("witness element %d: %w", i, err)
		}
		elements[i] = e
	}
	return elements, nil
}

// Len returns the total number of witness elements.
func (w *Witness) Len() int { return len(w.elements) }

// NumPublicSignals returns the validated public signal count.
func (w *Witness) NumPublicSignals() int { return w.numPublic }

// Elements returns a copy of the full ordered witness vector.
func (w *Witness) Elements() []fr.Element {
	out := make([]fr.Element, len(w.elements))
	copy(out, w.elements)
	return out
}

// PublicSignals returns a copy of the first NumPublicSignals elements.
func (w *Witness) PublicSignals() []fr.Element {
	out := make([]fr.Element, w.numPublic)
	copy(out, w.elements[:w.numPublic])
	return out
}
