package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"

	"github.com/orbinum/groth16-prover/prover"
)

var (
	witnessFile string
	keyFile     string
	outFile     string
	numPublic   int
	hexWitness  bool
)

// proofOutput is the CLI's JSON record. The snake_case signal key matches
// the original command-line tool; the library surface uses publicSignals.
type proofOutput struct {
	Proof         string   `json:"proof"`
	PublicSignals []string `json:"public_signals"`
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate a Groth16 proof from a witness file and a proving key bundle",
	Args:  cobra.NoArgs,
	RunE:  runProve,
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringVar(&witnessFile, "witness", "", "Witness JSON file: an array of values, or {witness, num_public_signals}.")
	proveCmd.Flags().StringVar(&keyFile, "key", "", "Proving key bundle file (.ark).")
	proveCmd.Flags().StringVar(&outFile, "out", "", "Output file for the proof JSON (default stdout).")
	proveCmd.Flags().IntVar(&numPublic, "num-public", 0, "Number of public signals; overrides the witness file field.")
	proveCmd.Flags().BoolVar(&hexWitness, "hex", false, "Witness values are little-endian hex instead of decimal.")
	proveCmd.MarkFlagRequired("witness")
	proveCmd.MarkFlagRequired("key")
}

func runProve(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	log := logger.Logger()

	witnessData, err := os.ReadFile(witnessFile)
	if err != nil {
		return fmt.Errorf("failed to read witness file: %w", err)
	}
	input, err := prover.UnmarshalWitnessInputJSON(witnessData)
	if err != nil {
		return err
	}
	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("failed to read proving key: %w", err)
	}

	// The flag wins over the witness file field. There is no default count:
	// a missing value fails validation rather than guessing the circuit.
	count := input.NumPublicSignals
	if numPublic > 0 {
		count = numPublic
	}

	log.Debug().
		Int("witnessElements", len(input.Witness)).
		Int("numPublicSignals", count).
		Bool("hex", hexWitness).
		Msg("generating proof")

	var result *prover.ProofResult
	if hexWitness {
		result, err = prover.GenerateProofHex(count, input.Witness, keyBytes)
	} else {
		result, err = prover.GenerateProof(count, input.Witness, keyBytes)
	}
	if err != nil {
		return err
	}

	log.Info().
		Int("proofBytes", prover.CompressedProofSize).
		Int("publicSignals", len(result.PublicSignals)).
		Msg("proof generated")

	out, err := json.Marshal(proofOutput{Proof: result.Proof, PublicSignals: result.PublicSignals})
	if err != nil {
		return err
	}
	if outFile == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(outFile, out, 0o644)
}
