package merkle

import (
	"github.com/vybium/vybium-gkr-core/field"
)

// Verifier checks decommitments against a committed root without holding
// the underlying columns.
type Verifier struct {
	hasher       MerkleHasher
	root         Hash
	columnCounts map[int]int
	maxLogSize   int
}

// NewVerifier builds a Verifier for a tree committed over columns with the
// given per-column log-sizes.
func NewVerifier(hasher MerkleHasher, root Hash, columnLogSizes []int) *Verifier {
	counts := map[int]int{}
	maxLogSize := 0
	for _, l := range columnLogSizes {
		counts[l]++
		if l > maxLogSize {
			maxLogSize = l
		}
	}
	return &Verifier{hasher: hasher, root: root, columnCounts: counts, maxLogSize: maxLogSize}
}

// Verify replays the prover's traversal, recomputing exactly the nodes the
// decommitment makes reachable, and checks the result against the
// committed root.
func (v *Verifier) Verify(queriesPerLogSize map[int][]int, queriedValues []field.F, decommitment Decommitment) error {
	hashWitness := decommitment.HashWitness
	columnWitness := decommitment.ColumnWitness
	hi, ci, vi := 0, 0, 0

	prevVisited := map[int]bool{}
	prevComputed := map[int]Hash{}

	for l := v.maxLogSize; l >= 0; l-- {
		direct := toSortedSet(queriesPerLogSize[l])
		visited := parentSet(prevVisited, direct, l == v.maxLogSize)

		curComputed := map[int]Hash{}
		numCols := v.columnCounts[l]

		for _, p := range visited {
			var childrenPtr *[2]Hash
			if l < v.maxLogSize {
				var children [2]Hash
				for k, child := range []int{2 * p, 2*p + 1} {
					if h, ok := prevComputed[child]; ok {
						children[k] = h
						continue
					}
					if hi >= len(hashWitness) {
						return &WitnessTooShort{Kind: "hash_witness"}
					}
					children[k] = hashWitness[hi]
					hi++
				}
				childrenPtr = &children
			}

			var values []field.F
			if direct[p] {
				if vi+numCols > len(queriedValues) {
					return &TooFewQueriedValues{}
				}
				values = queriedValues[vi : vi+numCols]
				vi += numCols
			} else {
				if ci+numCols > len(columnWitness) {
					return &WitnessTooShort{Kind: "column_witness"}
				}
				values = columnWitness[ci : ci+numCols]
				ci += numCols
			}

			curComputed[p] = v.hasher.HashNode(childrenPtr, values)
		}

		newPrevVisited := make(map[int]bool, len(visited))
		for _, p := range visited {
			newPrevVisited[p] = true
		}
		prevVisited = newPrevVisited
		prevComputed = curComputed
	}

	if hi != len(hashWitness) {
		return &WitnessTooLong{Kind: "hash_witness"}
	}
	if ci != len(columnWitness) {
		return &WitnessTooLong{Kind: "column_witness"}
	}
	if vi != len(queriedValues) {
		return &TooManyQueriedValues{}
	}

	root, ok := prevComputed[0]
	if !ok || root != v.root {
		return &RootMismatch{}
	}
	return nil
}
