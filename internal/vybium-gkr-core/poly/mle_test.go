package poly

import (
	"testing"

	"github.com/vybium/vybium-gkr-core/field"
)

// TestMLESumMatchesSpecScenario checks the concrete 2-variable MLE [1,2,3,4]
// sum-check scenario: the sum of all evaluations over the boolean
// hypercube is 10.
func TestMLESumMatchesSpecScenario(t *testing.T) {
	m := NewMLE([]field.F{f(1), f(2), f(3), f(4)})
	sum := field.Zero()
	for i := 0; i < m.Len(); i++ {
		sum = sum.Add(m.At(i))
	}
	if !sum.Equals(f(10)) {
		t.Errorf("sum = %d, expected 10", sum.Value())
	}
}

func TestMLEFixFirstVariableHalvesLength(t *testing.T) {
	m := NewMLE([]field.F{f(1), f(2), f(3), f(4)})
	fixed := FixFirstVariable(m, f(0))
	if fixed.Len() != 2 {
		t.Errorf("expected length 2 after fixing one variable, got %d", fixed.Len())
	}
}

func TestMLEFixFirstVariableAtBoundary(t *testing.T) {
	m := NewMLE([]field.F{f(1), f(2), f(3), f(4)})

	at0 := FixFirstVariable(m, field.Zero())
	if !at0.At(0).Equals(f(1)) || !at0.At(1).Equals(f(2)) {
		t.Errorf("fixing first variable to 0 should return the first half")
	}

	at1 := FixFirstVariable(m, field.One())
	if !at1.At(0).Equals(f(3)) || !at1.At(1).Equals(f(4)) {
		t.Errorf("fixing first variable to 1 should return the second half")
	}
}

func TestMLEEvalAtPointMatchesDirectEval(t *testing.T) {
	m := NewMLE([]field.F{f(1), f(2), f(3), f(4)})
	// Evaluating at a boolean point should match the table entry directly.
	for i := 0; i < 4; i++ {
		b0 := field.FromU32(uint32(i & 1))
		b1 := field.FromU32(uint32((i >> 1) & 1))
		got := m.EvalAtPoint([]field.F{b1, b0})
		if !got.Equals(m.At(i)) {
			t.Errorf("EvalAtPoint mismatch at boolean index %d: got %d want %d", i, got.Value(), m.At(i).Value())
		}
	}
}

func TestMLESingleElement(t *testing.T) {
	m := NewMLE([]field.F{f(42)})
	if m.NVariables() != 0 {
		t.Errorf("single-element MLE should have 0 variables, got %d", m.NVariables())
	}
	if !m.EvalAtPoint(nil).Equals(f(42)) {
		t.Errorf("single-element MLE should evaluate to its only entry")
	}
}

func TestEqBooleanPoints(t *testing.T) {
	one := field.One()
	zero := field.Zero()

	if !Eq([]field.F{zero, one}, []field.F{zero, one}, one).Equals(one) {
		t.Errorf("eq(x,x) should be 1")
	}
	if !Eq([]field.F{zero, one}, []field.F{one, one}, one).IsZero() {
		t.Errorf("eq should vanish when inputs differ on a boolean coordinate")
	}
}

func TestEqEmptyInputIsOne(t *testing.T) {
	got := Eq[field.F](nil, nil, field.One())
	if !got.Equals(field.One()) {
		t.Errorf("eq of empty slices should be the multiplicative identity")
	}
}
