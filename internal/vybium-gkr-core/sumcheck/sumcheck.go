package sumcheck

import (
	"fmt"

	"github.com/vybium/vybium-gkr-core/channel"
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
)

// Proof is an ordered sequence of round polynomials, one per variable, each
// of degree at most 3.
type Proof []poly.UPoly[field.E]

var halfE = field.FromF(field.FromU32(2)).Inverse()

// ProveBatch runs the batched sum-check protocol over oracles that may have
// different variable counts, combining their per-round polynomials with
// powers of lambda. It returns the proof, the verifier's challenge
// assignment, the fully-folded oracles, and their final claims.
func ProveBatch(claims []field.E, oracles []Oracle, lambda field.E, transcript *channel.Transcript) (Proof, []field.E, []Oracle, []field.E, error) {
	k := len(claims)
	if k == 0 {
		return nil, nil, nil, nil, fmt.Errorf("sumcheck: prove_batch requires at least one oracle")
	}
	if len(oracles) != k {
		return nil, nil, nil, nil, fmt.Errorf("sumcheck: claims and oracles length mismatch: %d vs %d", k, len(oracles))
	}

	n := 0
	for _, o := range oracles {
		if o.NVariables() > n {
			n = o.NVariables()
		}
	}

	curClaims := make([]field.E, k)
	for i, c := range claims {
		ni := oracles[i].NVariables()
		if ni < n {
			shift := uint64(1) << uint(n-ni)
			curClaims[i] = c.Mul(field.FromF(field.FromU64(shift)))
		} else {
			curClaims[i] = c
		}
	}

	curOracles := make([]Oracle, k)
	copy(curOracles, oracles)

	proof := make(Proof, n)
	assignment := make([]field.E, n)

	for j := 0; j < n; j++ {
		nRemaining := n - j
		roundPolys := make([]poly.UPoly[field.E], k)

		for i := range oracles {
			ni := curOracles[i].NVariables()
			var p poly.UPoly[field.E]
			if ni == nRemaining {
				p = curOracles[i].SumAsPolyInFirstVariable(curClaims[i])
			} else {
				p = poly.NewUPoly([]field.E{curClaims[i].Mul(halfE)})
			}

			if p.Degree() > 3 {
				return nil, nil, nil, nil, &DegreeTooHigh{Round: j}
			}
			s := p.EvalAt(field.EZero()).Add(p.EvalAt(field.EOne()))
			if !s.Equals(curClaims[i]) {
				return nil, nil, nil, nil, &SumMismatch{Round: j, Claim: curClaims[i], Computed: s}
			}
			roundPolys[i] = p
		}

		combined := roundPolys[k-1]
		for i := k - 2; i >= 0; i-- {
			combined = combined.ScalarMul(lambda).Add(roundPolys[i])
		}
		proof[j] = combined

		transcript.MixFelts(combined.Coeffs())
		c := transcript.DrawFelt()
		assignment[j] = c

		for i := range oracles {
			ni := curOracles[i].NVariables()
			curClaims[i] = roundPolys[i].EvalAt(c)
			if ni == nRemaining {
				curOracles[i] = curOracles[i].FixFirstVariable(c)
			}
		}
	}

	return proof, assignment, curOracles, curClaims, nil
}

// PartiallyVerify checks a sum-check proof against a running claim,
// returning the challenge assignment and the final claim the caller must
// still check against the oracle evaluated at that assignment.
func PartiallyVerify(claim field.E, proof Proof, transcript *channel.Transcript) ([]field.E, field.E, error) {
	assignment := make([]field.E, 0, len(proof))
	for j, rj := range proof {
		if rj.Degree() > 3 {
			return nil, field.E{}, &DegreeTooHigh{Round: j}
		}
		s := rj.EvalAt(field.EZero()).Add(rj.EvalAt(field.EOne()))
		if !s.Equals(claim) {
			return nil, field.E{}, &SumMismatch{Round: j, Claim: claim, Computed: s}
		}
		transcript.MixFelts(rj.Coeffs())
		c := transcript.DrawFelt()
		claim = rj.EvalAt(c)
		assignment = append(assignment, c)
	}
	return assignment, claim, nil
}
