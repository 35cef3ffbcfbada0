package prover

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWitnessInputJSON parses a witness request document. Both forms
// are accepted: an object {"witness": [...], "num_public_signals": n} and a
// bare JSON array of witness strings (the legacy WASM input, which carries
// the signal count out of band).
func UnmarshalWitnessInputJSON(data []byte) (*WitnessInput, error) {
	var input WitnessInput
	if err := json.Unmarshal(data, &input); err == nil && input.Witness != nil {
		return &input, nil
	}
	var witness []string
	if err := json.Unmarshal(data, &witness); err != nil {
		return nil, fmt.Errorf("%w: failed to parse witness JSON: %v", ErrParse, err)
	}
	return &WitnessInput{Witness: witness}, nil
}

// UnmarshalProofResultJSON parses a proof record as produced by the proving
// entry points.
func UnmarshalProofResultJSON(data []byte) (*ProofResult, error) {
	var result ProofResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse proof JSON: %v", ErrParse, err)
	}
	return &result, nil
}
