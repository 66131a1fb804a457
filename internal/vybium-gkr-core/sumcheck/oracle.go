// Package sumcheck implements the batched multilinear sum-check prover and
// verifier that the GKR engine runs once per circuit layer.
package sumcheck

import (
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
)

// Oracle is a multivariate polynomial over the boolean hypercube that the
// sum-check protocol can interrogate one variable at a time.
type Oracle interface {
	// NVariables returns the number of free variables remaining.
	NVariables() int
	// SumAsPolyInFirstVariable returns f(x0) = sum over the remaining
	// hypercube of g(x0, ...), satisfying f(0)+f(1) == claim.
	SumAsPolyInFirstVariable(claim field.E) poly.UPoly[field.E]
	// FixFirstVariable returns g(c, ...), an oracle over one fewer variable.
	FixFirstVariable(c field.E) Oracle
}

// MLEOracle is the simplest Oracle: the multivariate polynomial it
// represents is exactly the MLE's own evaluation table.
type MLEOracle struct {
	MLE poly.MLE[field.E]
}

func (o MLEOracle) NVariables() int { return o.MLE.NVariables() }

func (o MLEOracle) SumAsPolyInFirstVariable(claim field.E) poly.UPoly[field.E] {
	half := o.MLE.Len() / 2
	var sumLo, sumHi field.E
	for i := 0; i < half; i++ {
		sumLo = sumLo.Add(o.MLE.At(i))
		sumHi = sumHi.Add(o.MLE.At(i + half))
	}
	// f(0) = sumLo, f(1) = sumHi; the MLE is linear in its first variable so
	// this degree-1 polynomial is exact.
	return poly.NewUPoly([]field.E{sumLo, sumHi.Sub(sumLo)})
}

func (o MLEOracle) FixFirstVariable(c field.E) Oracle {
	return MLEOracle{MLE: poly.FixFirstVariable(o.MLE, c)}
}
