// Package poly provides univariate and multilinear polynomials generic over
// any ring the sum-check and GKR engines need to compute over: the base
// field F and its secure extension E.
package poly

// Ring is the minimal arithmetic contract UPoly and MLE require from their
// coefficient/evaluation type. Both field.F and field.E satisfy it; their Go
// zero value is the additive identity, which UPoly and MLE rely on for
// padding and truncation.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Inverse() T
	IsZero() bool
	Equals(T) bool
}
