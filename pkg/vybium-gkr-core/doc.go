// Package vybiumgkrcore is the public, stable surface over the sum-check,
// GKR, and Merkle vector-commitment engines implemented under internal/.
//
// # Quick start
//
//	cfg := vybiumgkrcore.DefaultConfig()
//	transcript := channel.New()
//	proof, artifact := gkr.ProveInstance(transcript, inputLayer)
//
// # Architecture
//
// - pkg/vybium-gkr-core/: public API (this package) — typed errors and
//   configuration only, no protocol logic of its own.
// - internal/vybium-gkr-core/: the field, polynomial, sum-check, GKR, and
//   Merkle engines. Callers reach them directly (they are the whole point
//   of this module); this package exists so a caller that only wants the
//   error taxonomy and configuration defaults does not need to import five
//   separate internal packages to get them.
//
// Implementation details under internal/ can change without breaking
// whatever depends on the exported names here.
package vybiumgkrcore
