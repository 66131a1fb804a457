package field

import "testing"

func TestFArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b F
		want F
		op   func(a, b F) F
	}{
		{"add", FromU32(5), FromU32(7), FromU32(12), F.Add},
		{"add wraps", FromU32(P - 1), FromU32(2), FromU32(1), F.Add},
		{"sub", FromU32(7), FromU32(5), FromU32(2), F.Sub},
		{"sub wraps", FromU32(1), FromU32(2), FromU32(P - 1), F.Sub},
		{"mul", FromU32(6), FromU32(7), FromU32(42), F.Mul},
		{"mul wraps", FromU32(P - 1), FromU32(P - 1), FromU32(1), F.Mul},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.a, tt.b)
			if !got.Equals(tt.want) {
				t.Errorf("got %d, expected %d", got.Value(), tt.want.Value())
			}
		})
	}
}

func TestFNeg(t *testing.T) {
	a := FromU32(5)
	if !a.Add(a.Neg()).IsZero() {
		t.Errorf("a + (-a) should be zero")
	}
	if !Zero().Neg().IsZero() {
		t.Errorf("-0 should be zero")
	}
}

func TestFInverse(t *testing.T) {
	for _, v := range []uint32{1, 2, 3, 12345, P - 1} {
		a := FromU32(v)
		inv := a.Inverse()
		if !a.Mul(inv).Equals(One()) {
			t.Errorf("a * a^-1 != 1 for a=%d", v)
		}
	}
}

func TestFInverseZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic inverting zero")
		}
	}()
	Zero().Inverse()
}

func TestFPow(t *testing.T) {
	a := FromU32(3)
	if !a.Pow(0).Equals(One()) {
		t.Errorf("a^0 should be 1")
	}
	if !a.Pow(1).Equals(a) {
		t.Errorf("a^1 should be a")
	}
	if !a.Pow(4).Equals(a.Mul(a).Mul(a).Mul(a)) {
		t.Errorf("a^4 mismatch")
	}
}

func TestEArithmeticRoundtrip(t *testing.T) {
	a := E{CM31{FromU32(3), FromU32(5)}, CM31{FromU32(7), FromU32(11)}}
	b := E{CM31{FromU32(13), FromU32(2)}, CM31{FromU32(1), FromU32(9)}}

	sum := a.Add(b)
	if !sum.Sub(b).Equals(a) {
		t.Errorf("(a+b)-b != a")
	}

	prod := a.Mul(b)
	if !prod.IsZero() && a.IsZero() {
		t.Errorf("unreachable")
	}
}

func TestEInverse(t *testing.T) {
	a := E{CM31{FromU32(3), FromU32(5)}, CM31{FromU32(7), FromU32(11)}}
	inv := a.Inverse()
	prod := a.Mul(inv)
	if !prod.Equals(EOne()) {
		t.Errorf("a * a^-1 != 1, got %+v", prod)
	}
}

func TestEFromFEmbedding(t *testing.T) {
	a := FromU32(42)
	e := FromF(a)
	if !e.ToF().Equals(a) {
		t.Errorf("embedding roundtrip failed")
	}
}

func TestEInverseZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic inverting zero")
		}
	}()
	EZero().Inverse()
}
