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
	proofFile string
	vkFile    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a generated proof against a verifying key",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "Proof JSON file as written by the prove command.")
	verifyCmd.Flags().StringVar(&vkFile, "vk", "", "Verifying key file.")
	verifyCmd.MarkFlagRequired("proof")
	verifyCmd.MarkFlagRequired("vk")
}

// proofInput accepts both signal key spellings: the CLI's snake_case and the
// library's publicSignals.
type proofInput struct {
	Proof              string   `json:"proof"`
	PublicSignals      []string `json:"publicSignals"`
	PublicSignalsSnake []string `json:"public_signals"`
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	log := logger.Logger()

	proofData, err := os.ReadFile(proofFile)
	if err != nil {
		return fmt.Errorf("failed to read proof file: %w", err)
	}
	var input proofInput
	if err := json.Unmarshal(proofData, &input); err != nil {
		return fmt.Errorf("failed to parse proof JSON: %w", err)
	}
	signals := input.PublicSignals
	if signals == nil {
		signals = input.PublicSignalsSnake
	}

	vkBytes, err := os.ReadFile(vkFile)
	if err != nil {
		return fmt.Errorf("failed to read verifying key: %w", err)
	}

	if err := prover.VerifyProof(input.Proof, vkBytes, signals); err != nil {
		return err
	}
	log.Info().Int("publicSignals", len(signals)).Msg("proof is valid")
	return nil
}
