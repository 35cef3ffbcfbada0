package prover

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Every failure wraps exactly one of
// these sentinels, so callers can classify with errors.Is instead of matching
// on message text. The detail string carried alongside keeps the legacy
// human-readable wording for logging.
var (
	// ErrParse reports a malformed witness element or input document
	// (bad characters, wrong length, invalid JSON).
	ErrParse = errors.New("witness parse error")

	// ErrValidation reports an invalid num_public_signals value relative to
	// the witness length.
	ErrValidation = errors.New("witness validation error")

	// ErrKey reports proving material that could not be read or deserialized.
	ErrKey = errors.New("proving key error")

	// ErrProving reports that the proving primitive rejected the assignment.
	ErrProving = errors.New("proof generation error")

	// ErrSerialization reports an internal failure producing output. It is a
	// defect indicator, not a normal failure mode.
	ErrSerialization = errors.New("output serialization error")
)

// ErrWitnessShape reports that the assembled witness cannot be mapped 1:1
// onto the wire count the proving key expects. It is a proving failure:
// errors.Is(err, ErrProving) also holds.
var ErrWitnessShape = fmt.Errorf("%w: witness shape mismatch", ErrProving)
