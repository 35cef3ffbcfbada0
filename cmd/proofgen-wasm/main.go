//go:build js && wasm

// Command proofgen-wasm exposes the proving pipeline to a JavaScript host.
//
// Registered globals:
//
//	generateProof(witnessJSON, provingKey, numPublicSignals)
//	  witnessJSON:      JSON array of little-endian hex witness values
//	  provingKey:       Uint8Array with the proving key bundle
//	  numPublicSignals: number
//	  returns {proof, publicSignals} on success, {error} on failure
package main

import (
	"syscall/js"

	"github.com/orbinum/groth16-prover/prover"
)

func main() {
	js.Global().Set("generateProof", js.FuncOf(generateProof))
	// Keep the runtime alive; calls arrive through the registered funcs.
	select {}
}

func generateProof(_ js.Value, args []js.Value) any {
	if len(args) != 3 {
		return errorResult("generateProof expects (witnessJSON, provingKey, numPublicSignals)")
	}

	input, err := prover.UnmarshalWitnessInputJSON([]byte(args[0].String()))
	if err != nil {
		return errorResult(err.Error())
	}
	keyBytes := make([]byte, args[1].Get("length").Int())
	js.CopyBytesToGo(keyBytes, args[1])
	numPublicSignals := args[2].Int()

	result, err := prover.GenerateProofHex(numPublicSignals, input.Witness, keyBytes)
	if err != nil {
		return errorResult(err.Error())
	}

	signals := make([]any, len(result.PublicSignals))
	for i, s := range result.PublicSignals {
		signals[i] = s
	}
	return map[string]any{
		"proof":         result.Proof,
		"publicSignals": signals,
	}
}

func errorResult(msg string) map[string]any {
	return map[string]any{"error": msg}
}
