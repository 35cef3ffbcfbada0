package prover

// Key is an opaque handle over deserialized proving material. Wire counts
// exclude the constant-one wire.
type Key interface {
	NbPublicWires() int
	NbSecretWires() int
}

// Backend abstracts the Groth16 proving primitive as an injected capability,
// so the pipeline can be exercised against a fake without linking curve
// arithmetic into unit tests. The backend owns its source of randomness;
// production implementations must draw blinding factors from a
// cryptographically secure source on every call.
type Backend interface {
	// LoadKey deserializes an opaque proving key blob into a handle.
	LoadKey(b []byte) (Key, error)

	// Prove runs the Groth16 proving algorithm over the assignment.
	Prove(key Key, a *Assignment) (*ProofData, error)
}
