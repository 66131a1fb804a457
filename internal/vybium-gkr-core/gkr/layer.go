// Package gkr implements the layered-circuit batch prover and verifier that
// reduces an output-layer claim to an input-layer claim via one sum-check
// run per layer.
package gkr

import (
	"fmt"

	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
)

// Kind tags which gate a Layer's columns are combined with when stepping
// toward the next (smaller) layer.
type Kind int

const (
	GrandProduct Kind = iota
	LogUpGeneric
	LogUpMultiplicities
	LogUpSingles
)

// Layer is one level of a GKR circuit. Exactly the fields matching Kind are
// populated.
type Layer struct {
	Kind          Kind
	Data          poly.MLE[field.E] // GrandProduct
	NumeratorsE   poly.MLE[field.E] // LogUpGeneric
	DenominatorsE poly.MLE[field.E] // LogUpGeneric, LogUpMultiplicities, LogUpSingles
	NumeratorsF   poly.MLE[field.F] // LogUpMultiplicities
}

// NVariables returns the layer's shared variable count.
func (l Layer) NVariables() int {
	switch l.Kind {
	case GrandProduct:
		return l.Data.NVariables()
	case LogUpGeneric:
		return l.NumeratorsE.NVariables()
	case LogUpMultiplicities:
		return l.NumeratorsF.NVariables()
	case LogUpSingles:
		return l.DenominatorsE.NVariables()
	default:
		panic(fmt.Sprintf("gkr: unknown layer kind %d", l.Kind))
	}
}

// NextLayer computes the layer with one fewer variable by combining each
// half-pair via the layer's gate. Panics if n_variables == 0.
func (l Layer) NextLayer() Layer {
	if l.NVariables() == 0 {
		panic("gkr: NextLayer called on an output layer")
	}
	switch l.Kind {
	case GrandProduct:
		return Layer{Kind: GrandProduct, Data: reduceGrandProduct(l.Data)}
	case LogUpGeneric:
		num, den := reduceLogUp(l.NumeratorsE, l.DenominatorsE)
		return Layer{Kind: LogUpGeneric, NumeratorsE: num, DenominatorsE: den}
	case LogUpMultiplicities:
		numE := embedMLE(l.NumeratorsF)
		num, den := reduceLogUp(numE, l.DenominatorsE)
		return Layer{Kind: LogUpGeneric, NumeratorsE: num, DenominatorsE: den}
	case LogUpSingles:
		ones := onesMLE(l.DenominatorsE.NVariables())
		num, den := reduceLogUp(ones, l.DenominatorsE)
		return Layer{Kind: LogUpGeneric, NumeratorsE: num, DenominatorsE: den}
	default:
		panic(fmt.Sprintf("gkr: unknown layer kind %d", l.Kind))
	}
}

// TryIntoOutputLayerValues returns the layer's output values. Panics unless
// n_variables == 0.
func (l Layer) TryIntoOutputLayerValues() []field.E {
	if l.NVariables() != 0 {
		panic("gkr: TryIntoOutputLayerValues called on a non-output layer")
	}
	switch l.Kind {
	case GrandProduct:
		return []field.E{l.Data.At(0)}
	case LogUpGeneric:
		return []field.E{l.NumeratorsE.At(0), l.DenominatorsE.At(0)}
	case LogUpSingles:
		return []field.E{field.EOne(), l.DenominatorsE.At(0)}
	case LogUpMultiplicities:
		return []field.E{field.FromF(l.NumeratorsF.At(0)), l.DenominatorsE.At(0)}
	default:
		panic(fmt.Sprintf("gkr: unknown layer kind %d", l.Kind))
	}
}

func reduceGrandProduct(data poly.MLE[field.E]) poly.MLE[field.E] {
	m := data.Len() / 2
	out := make([]field.E, m)
	for i := 0; i < m; i++ {
		out[i] = data.At(i).Mul(data.At(i + m))
	}
	return poly.NewMLE(out)
}

func reduceLogUp(num, den poly.MLE[field.E]) (poly.MLE[field.E], poly.MLE[field.E]) {
	m := num.Len() / 2
	outNum := make([]field.E, m)
	outDen := make([]field.E, m)
	for i := 0; i < m; i++ {
		n0, n1 := num.At(i), num.At(i+m)
		d0, d1 := den.At(i), den.At(i+m)
		outNum[i] = n0.Mul(d1).Add(d0.Mul(n1))
		outDen[i] = d0.Mul(d1)
	}
	return poly.NewMLE(outNum), poly.NewMLE(outDen)
}

func embedMLE(m poly.MLE[field.F]) poly.MLE[field.E] {
	out := make([]field.E, m.Len())
	for i := range out {
		out[i] = field.FromF(m.At(i))
	}
	return poly.NewMLE(out)
}

func onesMLE(nVariables int) poly.MLE[field.E] {
	out := make([]field.E, 1<<uint(nVariables))
	for i := range out {
		out[i] = field.EOne()
	}
	return poly.NewMLE(out)
}

// Mask holds, for each of a layer's columns, the pair of evaluations at the
// two points of the line the sum-check challenges converged to.
type Mask struct {
	Columns [][2]field.E
}
