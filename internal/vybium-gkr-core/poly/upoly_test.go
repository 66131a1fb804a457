package poly

import (
	"testing"

	"github.com/vybium/vybium-gkr-core/field"
)

func f(v uint32) field.F { return field.FromU32(v) }

func TestUPolyEvalAt(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := NewUPoly([]field.F{f(1), f(2), f(3)})
	got := p.EvalAt(f(2))
	want := f(1 + 2*2 + 3*4)
	if !got.Equals(want) {
		t.Errorf("EvalAt(2) = %d, expected %d", got.Value(), want.Value())
	}
}

func TestUPolyTrimsTrailingZeros(t *testing.T) {
	p := NewUPoly([]field.F{f(1), f(2), f(0), f(0)})
	if p.Degree() != 1 {
		t.Errorf("expected degree 1 after trimming, got %d", p.Degree())
	}
	if len(p.Coeffs()) != 2 {
		t.Errorf("expected 2 coefficients after trimming, got %d", len(p.Coeffs()))
	}
}

func TestUPolyZeroDegree(t *testing.T) {
	zero := NewUPoly[field.F](nil)
	if zero.Degree() != 0 {
		t.Errorf("zero polynomial should report degree 0, got %d", zero.Degree())
	}
	if !zero.IsZero() {
		t.Errorf("expected IsZero true")
	}
}

func TestUPolyAddSubMul(t *testing.T) {
	p := NewUPoly([]field.F{f(1), f(2)})
	q := NewUPoly([]field.F{f(3), f(4), f(5)})

	sum := p.Add(q)
	for _, x := range []field.F{f(0), f(1), f(2), f(10)} {
		if !sum.EvalAt(x).Equals(p.EvalAt(x).Add(q.EvalAt(x))) {
			t.Errorf("(p+q)(%d) mismatch", x.Value())
		}
	}

	diff := p.Sub(q)
	for _, x := range []field.F{f(0), f(1), f(7)} {
		if !diff.EvalAt(x).Equals(p.EvalAt(x).Sub(q.EvalAt(x))) {
			t.Errorf("(p-q)(%d) mismatch", x.Value())
		}
	}

	prod := p.Mul(q)
	for _, x := range []field.F{f(0), f(1), f(3)} {
		if !prod.EvalAt(x).Equals(p.EvalAt(x).Mul(q.EvalAt(x))) {
			t.Errorf("(p*q)(%d) mismatch", x.Value())
		}
	}
}

func TestInterpolateLagrangeRoundtrip(t *testing.T) {
	xs := []field.F{f(0), f(1), f(2), f(3)}
	original := NewUPoly([]field.F{f(5), f(0), f(7), f(1)})

	ys := make([]field.F, len(xs))
	for i, x := range xs {
		ys[i] = original.EvalAt(x)
	}

	interpolated, err := InterpolateLagrange(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, x := range xs {
		if !interpolated.EvalAt(x).Equals(original.EvalAt(x)) {
			t.Errorf("interpolated(%d) mismatch", x.Value())
		}
	}
}

func TestInterpolateLagrangeDuplicateXFails(t *testing.T) {
	xs := []field.F{f(0), f(1), f(1)}
	ys := []field.F{f(5), f(6), f(7)}
	_, err := InterpolateLagrange(xs, ys)
	if err == nil {
		t.Fatalf("expected InterpolationDuplicate error")
	}
	if _, ok := err.(*InterpolationDuplicate); !ok {
		t.Errorf("expected *InterpolationDuplicate, got %T", err)
	}
}
