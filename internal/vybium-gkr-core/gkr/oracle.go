package gkr

import (
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
	"github.com/vybium/vybium-gkr-core/sumcheck"
)

// points lists the four distinct challenges used to reconstruct each
// degree-at-most-3 round polynomial by interpolation. Any four distinct
// field elements work; these are simply the smallest.
var points = [4]field.E{
	field.EZero(),
	field.EOne(),
	field.FromF(field.FromU32(2)),
	field.FromF(field.FromU32(3)),
}

// Oracle is the sum-check oracle induced by a GKR layer: summing it over the
// boolean hypercube of its n_variables reproduces the claim a layer's
// sum-check run reduces to the input layer's claim.
//
// Construction fixes the layer's own first variable to 0 and to 1,
// producing two column sets (firstHalf, secondHalf) each over n_variables =
// layer.NVariables()-1 variables; the oracle's value at a point x is
// eq(prefix++x, y) * gate(firstHalf(x), secondHalf(x)).
//
// Rather than the constant-work-per-round eq table and root-finding
// correction an optimized implementation would use, this oracle
// recomputes eq(.,y) from scratch at each of the four interpolation points
// every round. The two approaches compute the identical polynomial; the
// direct approach trades the asymptotic speedup for an implementation with
// far fewer places to get the bookkeeping wrong.
type Oracle struct {
	kind       Kind
	firstHalf  []poly.MLE[field.E]
	secondHalf []poly.MLE[field.E]
	y          []field.E
	lambda     field.E
	prefix     []field.E
}

// NewOracle builds the sum-check oracle for layer, to be checked against y
// (the out-of-domain point the previous round reduced to) combining
// numerator and denominator claims (for LogUp layers) with lambda.
func NewOracle(layer Layer, y []field.E, lambda field.E) Oracle {
	if layer.NVariables() == 0 {
		panic("gkr: NewOracle called on an output layer")
	}
	var firstHalf, secondHalf []poly.MLE[field.E]
	switch layer.Kind {
	case GrandProduct:
		firstHalf = []poly.MLE[field.E]{poly.FixFirstVariable(layer.Data, field.EZero())}
		secondHalf = []poly.MLE[field.E]{poly.FixFirstVariable(layer.Data, field.EOne())}
	case LogUpGeneric:
		firstHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(layer.NumeratorsE, field.EZero()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EZero()),
		}
		secondHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(layer.NumeratorsE, field.EOne()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EOne()),
		}
	case LogUpMultiplicities:
		numE := embedMLE(layer.NumeratorsF)
		firstHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(numE, field.EZero()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EZero()),
		}
		secondHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(numE, field.EOne()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EOne()),
		}
	case LogUpSingles:
		ones := onesMLE(layer.DenominatorsE.NVariables())
		firstHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(ones, field.EZero()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EZero()),
		}
		secondHalf = []poly.MLE[field.E]{
			poly.FixFirstVariable(ones, field.EOne()),
			poly.FixFirstVariable(layer.DenominatorsE, field.EOne()),
		}
	}
	yCopy := make([]field.E, len(y))
	copy(yCopy, y)
	return Oracle{kind: normalizedKind(layer.Kind), firstHalf: firstHalf, secondHalf: secondHalf, y: yCopy, lambda: lambda}
}

func (o Oracle) NVariables() int { return o.firstHalf[0].NVariables() }

// decodeBits returns the numBits-long, MSB-first bit decomposition of idx as
// field elements, matching the MLE's bit-reversed-pairing index convention.
func decodeBits(idx, numBits int) []field.E {
	out := make([]field.E, numBits)
	for b := 0; b < numBits; b++ {
		shift := numBits - 1 - b
		if (idx>>uint(shift))&1 == 1 {
			out[b] = field.EOne()
		} else {
			out[b] = field.EZero()
		}
	}
	return out
}

func (o Oracle) evalColumns(t field.E) ([]poly.MLE[field.E], []poly.MLE[field.E]) {
	folded0 := make([]poly.MLE[field.E], len(o.firstHalf))
	folded1 := make([]poly.MLE[field.E], len(o.secondHalf))
	for i := range o.firstHalf {
		folded0[i] = poly.FixFirstVariable(o.firstHalf[i], t)
		folded1[i] = poly.FixFirstVariable(o.secondHalf[i], t)
	}
	return folded0, folded1
}

func (o Oracle) valueAt(t field.E) field.E {
	folded0, folded1 := o.evalColumns(t)
	k := o.NVariables() - 1
	size := 1 << uint(k)
	sum := field.EZero()
	fullPrefix := make([]field.E, len(o.prefix)+1+k)
	copy(fullPrefix, o.prefix)
	fullPrefix[len(o.prefix)] = t
	for i := 0; i < size; i++ {
		v0 := make([]field.E, len(folded0))
		v1 := make([]field.E, len(folded1))
		for c := range folded0 {
			v0[c] = folded0[c].At(i)
			v1[c] = folded1[c].At(i)
		}
		gateVal := gateScalar(o.kind, v0, v1, o.lambda)
		rest := decodeBits(i, k)
		copy(fullPrefix[len(o.prefix)+1:], rest)
		eqVal := poly.Eq(fullPrefix, o.y, field.EOne())
		sum = sum.Add(eqVal.Mul(gateVal))
	}
	return sum
}

// SumAsPolyInFirstVariable reconstructs the degree-at-most-3 round
// polynomial by evaluating the oracle's true sum at four points and
// interpolating. Calling this on a fully-folded (0-variable) oracle is a
// caller bug -- there is no "first variable" left to sum over -- and panics
// rather than silently returning a degenerate polynomial.
func (o Oracle) SumAsPolyInFirstVariable(claim field.E) poly.UPoly[field.E] {
	if o.NVariables() == 0 {
		panic("gkr: SumAsPolyInFirstVariable called on a fully-folded oracle")
	}
	ys := make([]field.E, len(points))
	for i, t := range points {
		ys[i] = o.valueAt(t)
	}
	p, err := poly.InterpolateLagrange(points[:], ys)
	if err != nil {
		panic(err)
	}
	return p
}

// FixFirstVariable folds the oracle's columns by c and records c in the
// prefix used to reconstruct eq(.,y) in later rounds.
func (o Oracle) FixFirstVariable(c field.E) sumcheck.Oracle {
	newFirst := make([]poly.MLE[field.E], len(o.firstHalf))
	newSecond := make([]poly.MLE[field.E], len(o.secondHalf))
	for i := range o.firstHalf {
		newFirst[i] = poly.FixFirstVariable(o.firstHalf[i], c)
		newSecond[i] = poly.FixFirstVariable(o.secondHalf[i], c)
	}
	newPrefix := make([]field.E, len(o.prefix)+1)
	copy(newPrefix, o.prefix)
	newPrefix[len(o.prefix)] = c
	return Oracle{kind: o.kind, firstHalf: newFirst, secondHalf: newSecond, y: o.y, lambda: o.lambda, prefix: newPrefix}
}

// ExtractMask reads off the layer's mask once the oracle has been folded
// down to zero variables: the surviving single value per column in
// firstHalf/secondHalf is exactly the column's evaluation at the two points
// of the line the sum-check assignment lies on.
func (o Oracle) ExtractMask() Mask {
	if o.NVariables() != 0 {
		panic("gkr: ExtractMask called before the oracle is fully folded")
	}
	columns := make([][2]field.E, len(o.firstHalf))
	for i := range o.firstHalf {
		columns[i] = [2]field.E{o.firstHalf[i].At(0), o.secondHalf[i].At(0)}
	}
	return Mask{Columns: columns}
}
