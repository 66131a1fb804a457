// Package bigfield provides an arbitrary-precision prime field, used as the
// scalar domain for the Poseidon Merkle hasher (a field distinct from, and
// much larger than, the M31 field the sum-check and GKR engines compute
// over).
package bigfield

import (
	"fmt"
	"math/big"
)

// Field represents a finite field with modular arithmetic operations.
type Field struct {
	modulus *big.Int
}

// Element represents an element in the finite field.
type Element struct {
	field *Field
	value *big.Int
}

// NewField creates a new finite field with the given modulus.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 2")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// Modulus returns the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// NewElement creates a new field element from a big.Int.
func (f *Field) NewElement(value *big.Int) *Element {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &Element{field: f, value: normalized}
}

// NewElementFromInt64 creates a new field element from an int64.
func (f *Field) NewElementFromInt64(value int64) *Element {
	return f.NewElement(big.NewInt(value))
}

// Zero returns the additive identity.
func (f *Field) Zero() *Element {
	return &Element{field: f, value: big.NewInt(0)}
}

// One returns the multiplicative identity.
func (f *Field) One() *Element {
	return &Element{field: f, value: big.NewInt(1)}
}

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// Big returns the value as a big.Int.
func (e *Element) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

// Field returns the field this element belongs to.
func (e *Element) Field() *Field {
	return e.field
}

// Add performs field addition.
func (e *Element) Add(other *Element) *Element {
	if !e.field.Equals(other.field) {
		panic("bigfield: cannot add elements from different fields")
	}
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub performs field subtraction.
func (e *Element) Sub(other *Element) *Element {
	if !e.field.Equals(other.field) {
		panic("bigfield: cannot subtract elements from different fields")
	}
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Mul performs field multiplication.
func (e *Element) Mul(other *Element) *Element {
	if !e.field.Equals(other.field) {
		panic("bigfield: cannot multiply elements from different fields")
	}
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Inv computes the multiplicative inverse via the extended Euclidean algorithm.
func (e *Element) Inv() (*Element, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("bigfield: cannot invert zero")
	}

	gcd, x, y := new(big.Int), new(big.Int), new(big.Int)
	gcd.GCD(x, y, e.value, e.field.modulus)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("bigfield: inverse does not exist")
	}
	if x.Sign() < 0 {
		x.Add(x, e.field.modulus)
	}
	return e.field.NewElement(x), nil
}

// Div performs field division (multiplication by the inverse).
func (e *Element) Div(other *Element) (*Element, error) {
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("bigfield: division failed: %w", err)
	}
	return e.Mul(inv), nil
}

// Equal reports whether two elements hold the same value in the same field.
func (e *Element) Equal(other *Element) bool {
	if !e.field.Equals(other.field) {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether the element is zero.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOne reports whether the element is one.
func (e *Element) IsOne() bool {
	return e.value.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of the element.
func (e *Element) String() string {
	return e.value.String()
}

// Bytes returns the big-endian byte representation of the element, padded
// to the byte length of the field modulus.
func (e *Element) Bytes() []byte {
	width := (e.field.modulus.BitLen() + 7) / 8
	out := make([]byte, width)
	e.value.FillBytes(out)
	return out
}
