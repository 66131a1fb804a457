package poly

import "fmt"

// MLE is a multilinear extension of a function {0,1}^n -> T, stored as its
// 2^n evaluations over the boolean hypercube in bit-reversed order: entry i
// holds the evaluation at the point whose bits are the reverse of i's low n
// bits. Bit-reversed storage means fixing the first variable pairs entry i
// with entry i+len/2, a single contiguous scan rather than a stride-2 one.
type MLE[T Ring[T]] struct {
	evals []T
}

// NewMLE wraps evals (already in bit-reversed order) as an MLE. len(evals)
// must be a power of two.
func NewMLE[T Ring[T]](evals []T) MLE[T] {
	if len(evals)&(len(evals)-1) != 0 {
		panic(fmt.Sprintf("poly: MLE length %d is not a power of two", len(evals)))
	}
	out := make([]T, len(evals))
	copy(out, evals)
	return MLE[T]{evals: out}
}

// Evals returns the underlying bit-reversed evaluation table.
func (m MLE[T]) Evals() []T { return m.evals }

// NVariables returns n, where the MLE has 2^n evaluations.
func (m MLE[T]) NVariables() int {
	n := 0
	for size := len(m.evals); size > 1; size >>= 1 {
		n++
	}
	return n
}

// Len returns the number of evaluations, 2^NVariables.
func (m MLE[T]) Len() int { return len(m.evals) }

// At returns the evaluation at bit-reversed index i.
func (m MLE[T]) At(i int) T { return m.evals[i] }

// FixFirstVariable folds the MLE's first variable to t, halving the number
// of variables: the returned MLE's evaluation at index i is
// fold_mle_evals(t, m[i], m[i+m]) where m = len(evals)/2.
func FixFirstVariable[T Ring[T]](m MLE[T], t T) MLE[T] {
	half := len(m.evals) / 2
	out := make([]T, half)
	for i := 0; i < half; i++ {
		lo := m.evals[i]
		hi := m.evals[i+half]
		out[i] = lo.Add(t.Mul(hi.Sub(lo)))
	}
	return MLE[T]{evals: out}
}

// EvalAtPoint evaluates the MLE at an arbitrary point in T^n by repeated
// FixFirstVariable, returning the final scalar. len(point) must equal
// NVariables.
func (m MLE[T]) EvalAtPoint(point []T) T {
	if len(point) != m.NVariables() {
		panic(fmt.Sprintf("poly: EvalAtPoint expected %d coordinates, got %d", m.NVariables(), len(point)))
	}
	cur := m
	for _, t := range point {
		cur = FixFirstVariable(cur, t)
	}
	if len(cur.evals) != 1 {
		panic("poly: EvalAtPoint did not converge to a single value")
	}
	return cur.evals[0]
}

// Eq returns the multilinear extension of the equality function,
// eq(x, y) = prod_i (x_i*y_i + (1-x_i)*(1-y_i)), evaluated at the given
// points. len(x) must equal len(y); a length-0 input returns the
// multiplicative identity behavior of an empty product, represented by the
// caller-supplied one value to avoid requiring a static "one" on T.
func Eq[T Ring[T]](x, y []T, one T) T {
	if len(x) != len(y) {
		panic(fmt.Sprintf("poly: Eq expects equal-length inputs, got %d and %d", len(x), len(y)))
	}
	result := one
	for i := range x {
		xi, yi := x[i], y[i]
		term := xi.Mul(yi).Add(one.Sub(xi).Mul(one.Sub(yi)))
		result = result.Mul(term)
	}
	return result
}
