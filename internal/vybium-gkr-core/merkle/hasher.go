// Package merkle implements the heterogeneous-column vector commitment
// scheme: a single Merkle tree committing many columns of differing
// power-of-two lengths, with multiple interchangeable hash backends.
package merkle

import "github.com/vybium/vybium-gkr-core/field"

// Hash is a 32-byte node digest. All MerkleHasher implementations, whatever
// their native output width, are required to produce one so the prover and
// verifier can be written once against a single digest type.
type Hash [32]byte

// IsZero reports whether h is the all-zero digest.
func (h Hash) IsZero() bool { return h == Hash{} }

// MerkleHasher commits a tree node from its two children (absent at the
// leaf layer) and the column values stored at that node.
type MerkleHasher interface {
	HashNode(children *[2]Hash, columnValues []field.F) Hash
}
