package field

import "fmt"

// CM31 is the quadratic extension F[i]/(i^2+1), a stepping stone to QM31.
type CM31 struct {
	A, B F // a + b*i
}

// CM31Zero is the additive identity of CM31.
func CM31Zero() CM31 { return CM31{Zero(), Zero()} }

// CM31One is the multiplicative identity of CM31.
func CM31One() CM31 { return CM31{One(), Zero()} }

// CM31FromF embeds a base-field element into CM31.
func CM31FromF(a F) CM31 { return CM31{a, Zero()} }

func (x CM31) IsZero() bool { return x.A.IsZero() && x.B.IsZero() }

func (x CM31) Equals(y CM31) bool { return x.A.Equals(y.A) && x.B.Equals(y.B) }

func (x CM31) Add(y CM31) CM31 { return CM31{x.A.Add(y.A), x.B.Add(y.B)} }

func (x CM31) Sub(y CM31) CM31 { return CM31{x.A.Sub(y.A), x.B.Sub(y.B)} }

func (x CM31) Neg() CM31 { return CM31{x.A.Neg(), x.B.Neg()} }

func (x CM31) Mul(y CM31) CM31 {
	return CM31{
		x.A.Mul(y.A).Sub(x.B.Mul(y.B)),
		x.A.Mul(y.B).Add(x.B.Mul(y.A)),
	}
}

func (x CM31) MulF(c F) CM31 { return CM31{x.A.Mul(c), x.B.Mul(c)} }

// Conjugate returns a - b*i.
func (x CM31) Conjugate() CM31 { return CM31{x.A, x.B.Neg()} }

// Norm returns a^2 + b^2, always in the base field.
func (x CM31) Norm() F { return x.A.Square().Add(x.B.Square()) }

// Inverse returns x^-1, panicking if x is zero.
func (x CM31) Inverse() CM31 {
	if x.IsZero() {
		panic("field: cannot invert zero")
	}
	normInv := x.Norm().Inverse()
	return x.Conjugate().MulF(normInv)
}

// E is the secure field QM31 = CM31[u]/(u^2 - (2+i)), the degree-4
// extension of F used for Fiat-Shamir challenges and out-of-domain claims.
type E struct {
	C0, C1 CM31 // c0 + c1*u
}

// qm31R is u^2 = 2 + i.
var qm31R = CM31{FromU32(2), One()}

// EZero is the additive identity of E.
func EZero() E { return E{CM31Zero(), CM31Zero()} }

// EOne is the multiplicative identity of E.
func EOne() E { return E{CM31One(), CM31Zero()} }

// FromF embeds a base-field element into E.
func FromF(a F) E { return E{CM31FromF(a), CM31Zero()} }

// FromCM31 embeds a CM31 element into E.
func FromCM31(c CM31) E { return E{c, CM31Zero()} }

func (x E) IsZero() bool { return x.C0.IsZero() && x.C1.IsZero() }

func (x E) Equals(y E) bool { return x.C0.Equals(y.C0) && x.C1.Equals(y.C1) }

func (x E) Add(y E) E { return E{x.C0.Add(y.C0), x.C1.Add(y.C1)} }

func (x E) Sub(y E) E { return E{x.C0.Sub(y.C0), x.C1.Sub(y.C1)} }

func (x E) Neg() E { return E{x.C0.Neg(), x.C1.Neg()} }

func (x E) Mul(y E) E {
	return E{
		x.C0.Mul(y.C0).Add(x.C1.Mul(y.C1).Mul(qm31R)),
		x.C0.Mul(y.C1).Add(x.C1.Mul(y.C0)),
	}
}

// MulF scales x by a base-field element.
func (x E) MulF(c F) E { return E{x.C0.MulF(c), x.C1.MulF(c)} }

// MulCM31 scales x by a CM31 element.
func (x E) MulCM31(c CM31) E { return E{x.C0.Mul(c), x.C1.Mul(c)} }

// Square returns x^2.
func (x E) Square() E { return x.Mul(x) }

// conjugate returns c0 - c1*u, the nontrivial Galois conjugate fixing CM31.
func (x E) conjugate() E { return E{x.C0, x.C1.Neg()} }

// Inverse returns x^-1, panicking if x is zero.
func (x E) Inverse() E {
	if x.IsZero() {
		panic("field: cannot invert zero")
	}
	// (c0+c1 u)(c0-c1 u) = c0^2 - c1^2 u^2 = c0^2 - c1^2*R, a CM31 element.
	norm := x.C0.Mul(x.C0).Sub(x.C1.Mul(x.C1).Mul(qm31R))
	normInv := norm.Inverse()
	conj := x.conjugate()
	return E{conj.C0.Mul(normInv), conj.C1.Mul(normInv)}
}

// Sub1 returns x - 1.
func (x E) Sub1() E { return x.Sub(EOne()) }

// Double returns x + x.
func (x E) Double() E { return x.Add(x) }

// String returns a debug representation of x as its four base-field limbs.
func (x E) String() string {
	return fmt.Sprintf("(%s + %s*i + (%s + %s*i)*u)", x.C0.A, x.C0.B, x.C1.A, x.C1.B)
}

// ToF attempts to collapse x to a base-field element, for contexts where
// the caller knows (or asserts) x came from FromF. Panics otherwise.
func (x E) ToF() F {
	if !x.C0.B.IsZero() || !x.C1.IsZero() {
		panic("field: E value is not a base-field element")
	}
	return x.C0.A
}
