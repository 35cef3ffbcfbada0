// Package main builds as a C archive/shared library exposing the proving
// pipeline over a C ABI (build with -buildmode=c-archive or c-shared).
package main

/*
#include <stdlib.h>

// Result struct for Groth16 proof generation.
// On success: proof (and public_signals, when requested) are set, error is NULL.
// On failure: error is set, the other fields are NULL.
typedef struct {
    char *proof;          // hex-encoded 128-byte compressed proof
    char *public_signals; // JSON array of hex public signals, or NULL
    char *error;          // error message or NULL on success
} C_ProofResult;
*/
import "C"

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"unsafe"

	"github.com/orbinum/groth16-prover/prover"
)

func newResult() *C.C_ProofResult {
	result := (*C.C_ProofResult)(C.malloc(C.size_t(unsafe.Sizeof(C.C_ProofResult{}))))
	result.proof = nil
	result.public_signals = nil
	result.error = nil
	return result
}

// prover_generate_proof proves over a little-endian hex witness with the key
// bundle read from proving_key_path, returning only the proof. The
// public/secret split is derived from the key.
//
//export prover_generate_proof
func prover_generate_proof(witness_json, proving_key_path *C.char) *C.C_ProofResult {
	result := newResult()

	input, err := prover.UnmarshalWitnessInputJSON([]byte(C.GoString(witness_json)))
	if err != nil {
		result.error = C.CString(err.Error())
		return result
	}
	proof, err := prover.GenerateProofFromFile(input.Witness, C.GoString(proving_key_path))
	if err != nil {
		result.error = C.CString(err.Error())
		return result
	}
	result.proof = C.CString(hex.EncodeToString(proof))
	return result
}

// prover_generate_proof_full proves over a little-endian hex witness with
// the key bundle read from proving_key_path and also extracts the first
// num_public_signals witness elements as public signals.
//
//export prover_generate_proof_full
func prover_generate_proof_full(witness_json, proving_key_path *C.char, num_public_signals C.int) *C.C_ProofResult {
	result := newResult()

	input, err := prover.UnmarshalWitnessInputJSON([]byte(C.GoString(witness_json)))
	if err != nil {
		result.error = C.CString(err.Error())
		return result
	}
	keyBytes, err := os.ReadFile(C.GoString(proving_key_path))
	if err != nil {
		result.error = C.CString(fmt.Sprintf("failed to read proving key: %v", err))
		return result
	}
	out, err := prover.GenerateProofHex(int(num_public_signals), input.Witness, keyBytes)
	if err != nil {
		result.error = C.CString(err.Error())
		return result
	}
	signals, err := json.Marshal(out.PublicSignals)
	if err != nil {
		result.error = C.CString(fmt.Sprintf("failed to serialize public signals: %v", err))
		return result
	}
	result.proof = C.CString(out.Proof)
	result.public_signals = C.CString(string(signals))
	return result
}

// prover_verify_proof checks a proof (hex) against a verifying key file and
// a JSON array of public signals. Returns NULL when the proof is valid, an
// error message otherwise.
//
//export prover_verify_proof
func prover_verify_proof(proof_hex, verifying_key_path, public_signals_json *C.char) *C.char {
	vkBytes, err := os.ReadFile(C.GoString(verifying_key_path))
	if err != nil {
		return C.CString(fmt.Sprintf("failed to read verifying key: %v", err))
	}
	var signals []string
	if err := json.Unmarshal([]byte(C.GoString(public_signals_json)), &signals); err != nil {
		return C.CString(fmt.Sprintf("failed to parse public signals: %v", err))
	}
	if err := prover.VerifyProof(C.GoString(proof_hex), vkBytes, signals); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

//export prover_free_proof_result
func prover_free_proof_result(r *C.C_ProofResult) {
	if r == nil {
		return
	}
	if r.proof != nil {
		C.free(unsafe.Pointer(r.proof))
	}
	if r.public_signals != nil {
		C.free(unsafe.Pointer(r.public_signals))
	}
	if r.error != nil {
		C.free(unsafe.Pointer(r.error))
	}
	C.free(unsafe.Pointer(r))
}

//export prover_free_string
func prover_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func main() {} // required for c-archive build mode
