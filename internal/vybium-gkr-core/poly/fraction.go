package poly

import "github.com/vybium/vybium-gkr-core/field"

// Fraction represents Numerator/Denominator without performing the
// division, so that the LogUp lookup argument can accumulate many such
// terms with a single batched inversion at the end instead of one inversion
// per term.
type Fraction struct {
	Numerator, Denominator field.E
}

// NewReciprocal returns the fraction 1/denominator.
func NewReciprocal(denominator field.E) Fraction {
	return Fraction{Numerator: field.EOne(), Denominator: denominator}
}

// Add returns a + b = (a.Num*b.Den + b.Num*a.Den) / (a.Den*b.Den), the
// standard fraction-addition rule, never reducing to a common factor.
func (a Fraction) Add(b Fraction) Fraction {
	return Fraction{
		Numerator:   a.Numerator.Mul(b.Denominator).Add(b.Numerator.Mul(a.Denominator)),
		Denominator: a.Denominator.Mul(b.Denominator),
	}
}

// Neg returns -a.
func (a Fraction) Neg() Fraction {
	return Fraction{Numerator: a.Numerator.Neg(), Denominator: a.Denominator}
}

// Sub returns a - b.
func (a Fraction) Sub(b Fraction) Fraction {
	return a.Add(b.Neg())
}

// Mul returns a*b.
func (a Fraction) Mul(b Fraction) Fraction {
	return Fraction{
		Numerator:   a.Numerator.Mul(b.Numerator),
		Denominator: a.Denominator.Mul(b.Denominator),
	}
}

// Eval collapses the fraction to a single field element via division.
func (a Fraction) Eval() field.E {
	return a.Numerator.Mul(a.Denominator.Inverse())
}

// IsZero reports whether the fraction's numerator vanishes (the fraction
// itself, not its denominator, which the LogUp argument ensures is never
// zero for well-formed lookups).
func (a Fraction) IsZero() bool {
	return a.Numerator.IsZero()
}
