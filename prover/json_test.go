package prover

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWitnessInputJSONObjectForm(t *testing.T) {
	data := []byte(`{"witness": ["1", "2", "3"], "num_public_signals": 2}`)
	input, err := UnmarshalWitnessInputJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, input.Witness)
	assert.Equal(t, 2, input.NumPublicSignals)
}

func TestUnmarshalWitnessInputJSONArrayForm(t *testing.T) {
	data := []byte(`["0x01", "0x02"]`)
	input, err := UnmarshalWitnessInputJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x01", "0x02"}, input.Witness)
	assert.Zero(t, input.NumPublicSignals)
}

func TestUnmarshalWitnessInputJSONMalformed(t *testing.T) {
	for _, data := range []string{``, `{`, `42`, `{"witness": "not-an-array"}`} {
		_, err := UnmarshalWitnessInputJSON([]byte(data))
		assert.ErrorIs(t, err, ErrParse, "input %q", data)
		assert.Contains(t, err.Error(), "failed to parse witness JSON")
	}
}

func TestProofResultJSONShape(t *testing.T) {
	result := &ProofResult{Proof: "0xabcd", PublicSignals: []string{"0x01", "0x02"}}
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "proof")
	assert.Contains(t, raw, "publicSignals")

	back, err := UnmarshalProofResultJSON(data)
	require.NoError(t, err)
	assert.Equal(t, result, back)
}
