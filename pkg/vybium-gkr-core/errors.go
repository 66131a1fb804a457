package vybiumgkrcore

import (
	"github.com/vybium/vybium-gkr-core/gkr"
	"github.com/vybium/vybium-gkr-core/merkle"
	"github.com/vybium/vybium-gkr-core/sumcheck"
)

// Type aliases so a caller can errors.As against the public package without
// reaching into internal/ directly.

type (
	SumDegreeTooHigh = sumcheck.DegreeTooHigh
	SumMismatch      = sumcheck.SumMismatch

	GkrMalformedProof       = gkr.MalformedProof
	GkrNumInstancesMismatch = gkr.NumInstancesMismatch
	GkrInvalidMask          = gkr.InvalidMask
	GkrInvalidSumcheck      = gkr.InvalidSumcheck
	GkrCircuitCheckFailure  = gkr.CircuitCheckFailure

	MerkleWitnessTooShort      = merkle.WitnessTooShort
	MerkleWitnessTooLong       = merkle.WitnessTooLong
	MerkleTooFewQueriedValues  = merkle.TooFewQueriedValues
	MerkleTooManyQueriedValues = merkle.TooManyQueriedValues
	MerkleRootMismatch         = merkle.RootMismatch
)
