package prover

// Encoding selects the textual representation of witness elements. The two
// encodings are never mixed within a single call.
type Encoding int

const (
	// EncodingDecimal is an unsigned arbitrary-precision decimal string.
	EncodingDecimal Encoding = iota
	// EncodingHexLE is 32 little-endian bytes as 64 hex characters with an
	// optional 0x prefix.
	EncodingHexLE
)

func (e Encoding) String() string {
	switch e {
	case EncodingDecimal:
		return "decimal"
	case EncodingHexLE:
		return "hex-le"
	default:
		return "unknown"
	}
}

// WitnessInput is the JSON request consumed by the CLI and the boundary
// adapters: the full ordered witness plus the number of leading public
// signals.
type WitnessInput struct {
	Witness          []string `json:"witness"`
	NumPublicSignals int      `json:"num_public_signals,omitempty"`
}

// ProofResult is the output record of a proving call: the hex-encoded
// compressed proof and one hex string per public signal. Whether the hex
// strings carry a 0x prefix depends on which entry point produced them.
type ProofResult struct {
	Proof         string   `json:"proof"`
	PublicSignals []string `json:"publicSignals"`
}
