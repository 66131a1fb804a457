package sumcheck

import (
	"fmt"

	"github.com/vybium/vybium-gkr-core/field"
)

// DegreeTooHigh is returned when a round polynomial exceeds the maximum
// allowed degree of 3.
type DegreeTooHigh struct {
	Round int
}

func (e *DegreeTooHigh) Error() string {
	return fmt.Sprintf("sumcheck: round %d polynomial exceeds degree 3", e.Round)
}

// SumMismatch is returned when a round polynomial's endpoint sum disagrees
// with the running claim.
type SumMismatch struct {
	Round    int
	Claim    field.E
	Computed field.E
}

func (e *SumMismatch) Error() string {
	return fmt.Sprintf("sumcheck: round %d sum mismatch: claim %s, computed %s", e.Round, e.Claim, e.Computed)
}
