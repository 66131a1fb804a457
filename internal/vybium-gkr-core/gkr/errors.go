package gkr

import (
	"fmt"

	"github.com/vybium/vybium-gkr-core/field"
)

// MalformedProof is returned when a GkrBatchProof's internal shape is
// inconsistent (mismatched layer counts, missing masks).
type MalformedProof struct {
	Reason string
}

func (e *MalformedProof) Error() string { return fmt.Sprintf("gkr: malformed proof: %s", e.Reason) }

// NumInstancesMismatch is returned when the proof carries a different number
// of circuit instances than the verifier was asked to check.
type NumInstancesMismatch struct {
	Given, Expected int
}

func (e *NumInstancesMismatch) Error() string {
	return fmt.Sprintf("gkr: expected %d instances, proof has %d", e.Expected, e.Given)
}

// InvalidMask is returned when a layer's mask does not have the column count
// its kind requires.
type InvalidMask struct {
	Instance, InstanceLayer int
}

func (e *InvalidMask) Error() string {
	return fmt.Sprintf("gkr: invalid mask at instance %d, layer %d", e.Instance, e.InstanceLayer)
}

// InvalidSumcheck wraps a sum-check failure encountered while verifying a
// particular circuit layer.
type InvalidSumcheck struct {
	Layer  int
	Source error
}

func (e *InvalidSumcheck) Error() string {
	return fmt.Sprintf("gkr: layer %d sumcheck failed: %v", e.Layer, e.Source)
}

func (e *InvalidSumcheck) Unwrap() error { return e.Source }

// CircuitCheckFailure is returned when the sum-check's final claim disagrees
// with the gate evaluated on the extracted mask.
type CircuitCheckFailure struct {
	Layer           int
	Claim, Computed field.E
}

func (e *CircuitCheckFailure) Error() string {
	return fmt.Sprintf("gkr: layer %d circuit check failed: claim %s, computed %s", e.Layer, e.Claim, e.Computed)
}
