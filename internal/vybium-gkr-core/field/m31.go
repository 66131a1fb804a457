// Package field implements the base field F = GF(2^31 - 1) used throughout
// the sum-check and GKR engines, and its degree-4 extension E = QM31 used
// for Fiat-Shamir challenges and for the secure-field values the protocols
// reason about.
package field

import "strconv"

// P is the Mersenne31 prime, 2^31 - 1.
const P uint32 = 2147483647

// F is an element of GF(P), always kept canonically reduced into [0, P).
type F struct {
	v uint32
}

// Zero is the additive identity of F.
func Zero() F { return F{0} }

// One is the multiplicative identity of F.
func One() F { return F{1} }

// FromU32 reduces x modulo P.
func FromU32(x uint32) F {
	return F{x % P}
}

// FromU64 reduces a 64-bit value modulo P.
func FromU64(x uint64) F {
	return F{uint32(x % uint64(P))}
}

// Value returns the canonical uint32 representative in [0, P).
func (a F) Value() uint32 { return a.v }

// IsZero reports whether a is the additive identity.
func (a F) IsZero() bool { return a.v == 0 }

// Equals reports whether a and b represent the same field element.
func (a F) Equals(b F) bool { return a.v == b.v }

// Add returns a + b mod P.
func (a F) Add(b F) F {
	s := a.v + b.v
	if s >= P {
		s -= P
	}
	return F{s}
}

// Sub returns a - b mod P.
func (a F) Sub(b F) F {
	if a.v >= b.v {
		return F{a.v - b.v}
	}
	return F{P - (b.v - a.v)}
}

// Neg returns -a mod P.
func (a F) Neg() F {
	if a.v == 0 {
		return a
	}
	return F{P - a.v}
}

// Mul returns a * b mod P, reducing the 64-bit product via the Mersenne
// shortcut (x mod (2^31-1) == (x & P) + (x >> 31), folded until < P).
func (a F) Mul(b F) F {
	return F{reduceMersenne(uint64(a.v) * uint64(b.v))}
}

func reduceMersenne(x uint64) uint32 {
	for x > uint64(P) {
		x = (x & uint64(P)) + (x >> 31)
	}
	if x == uint64(P) {
		return 0
	}
	return uint32(x)
}

// Square returns a^2 mod P.
func (a F) Square() F { return a.Mul(a) }

// Pow returns a^n mod P via square-and-multiply.
func (a F) Pow(n uint64) F {
	result := One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Inverse returns a^-1 mod P via Fermat's little theorem (a^(P-2)).
// Inverting zero panics: callers must check IsZero first, per the field
// contract used by the sum-check and GKR engines.
func (a F) Inverse() F {
	if a.IsZero() {
		panic("field: cannot invert zero")
	}
	return a.Pow(uint64(P - 2))
}

// Double returns a + a.
func (a F) Double() F { return a.Add(a) }

// String returns the canonical decimal representation of a.
func (a F) String() string {
	return strconv.FormatUint(uint64(a.v), 10)
}
