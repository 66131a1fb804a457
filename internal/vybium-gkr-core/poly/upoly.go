package poly

import "fmt"

// UPoly is a univariate polynomial over a Ring T, stored as coefficients in
// increasing order of degree. The zero polynomial is represented as an
// empty slice; a nonzero polynomial never carries trailing zero
// coefficients.
type UPoly[T Ring[T]] struct {
	coeffs []T
}

// NewUPoly builds a UPoly from coefficients in increasing degree order,
// trimming trailing zero coefficients.
func NewUPoly[T Ring[T]](coeffs []T) UPoly[T] {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	out := make([]T, n)
	copy(out, coeffs[:n])
	return UPoly[T]{coeffs: out}
}

// Coeffs returns the polynomial's coefficients in increasing degree order.
func (p UPoly[T]) Coeffs() []T { return p.coeffs }

// Degree returns the polynomial's degree. The zero polynomial has degree 0,
// matching the convention that an empty coefficient slice still denotes a
// degree-0 (constant) polynomial.
func (p UPoly[T]) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p UPoly[T]) IsZero() bool { return len(p.coeffs) == 0 }

// EvalAt evaluates p at x via Horner's method.
func (p UPoly[T]) EvalAt(x T) T {
	var result T
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// Add returns p + q.
func (p UPoly[T]) Add(q UPoly[T]) UPoly[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		var a, b T
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i] = a.Add(b)
	}
	return NewUPoly(out)
}

// Sub returns p - q.
func (p UPoly[T]) Sub(q UPoly[T]) UPoly[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		var a, b T
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i] = a.Sub(b)
	}
	return NewUPoly(out)
}

// Neg returns -p.
func (p UPoly[T]) Neg() UPoly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}
	return UPoly[T]{coeffs: out}
}

// Mul returns p * q.
func (p UPoly[T]) Mul(q UPoly[T]) UPoly[T] {
	if p.IsZero() || q.IsZero() {
		return UPoly[T]{}
	}
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewUPoly(out)
}

// ScalarMul returns p scaled by c.
func (p UPoly[T]) ScalarMul(c T) UPoly[T] {
	out := make([]T, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return NewUPoly(out)
}

// InterpolationDuplicate is returned when InterpolateLagrange is given two
// sample points that share the same x-coordinate.
type InterpolationDuplicate struct {
	X any
}

func (e *InterpolationDuplicate) Error() string {
	return fmt.Sprintf("poly: duplicate x-coordinate %v in interpolation points", e.X)
}

// InterpolateLagrange returns the unique polynomial of degree < len(xs) that
// passes through each (xs[i], ys[i]). xs must not contain duplicates.
func InterpolateLagrange[T Ring[T]](xs, ys []T) (UPoly[T], error) {
	if len(xs) != len(ys) {
		return UPoly[T]{}, fmt.Errorf("poly: interpolation requires equal length x and y slices, got %d and %d", len(xs), len(ys))
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equals(xs[j]) {
				return UPoly[T]{}, &InterpolationDuplicate{X: xs[i]}
			}
		}
	}

	result := UPoly[T]{}
	for i := range xs {
		// Build the Lagrange basis polynomial l_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j).
		basis := NewUPoly([]T{ys[i]})
		for j := range xs {
			if i == j {
				continue
			}
			denom := xs[i].Sub(xs[j]).Inverse()
			// (x - x_j) * denom as a degree-1 polynomial: coeffs [-x_j*denom, denom].
			linear := NewUPoly([]T{xs[j].Neg().Mul(denom), denom})
			basis = basis.Mul(linear)
		}
		result = result.Add(basis)
	}
	return result, nil
}
