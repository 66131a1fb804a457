package merkle

import (
	"fmt"
	"sort"

	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/utils"
)

// Decommitment holds the two ordered witness lists a verifier needs to
// rebuild the visited nodes it cannot reconstruct from the column values it
// directly queried.
type Decommitment struct {
	HashWitness   []Hash
	ColumnWitness []field.F
}

// Prover commits a set of power-of-two-length columns over F into a single
// layered Merkle tree, and answers decommitment queries against it.
type Prover struct {
	hasher MerkleHasher
	// layers[l] holds the 2^l node hashes at log-size l; layers[0] is the
	// root layer, layers[maxLogSize] the leaf layer.
	layers [][]Hash
	// columnsByLogSize[l] holds, in commit order, the columns whose length
	// is 2^l.
	columnsByLogSize map[int][][]field.F
	maxLogSize       int
}

// Commit builds the tree over columns. Each column's length must be a
// power of two. An empty column set produces a single-node tree hashing
// (nil, nil).
func Commit(hasher MerkleHasher, columns [][]field.F) (*Prover, error) {
	byLogSize := map[int][][]field.F{}
	maxLogSize := 0
	for i, col := range columns {
		logSize := utils.Log2(len(col))
		if len(col) == 0 || logSize < 0 {
			return nil, fmt.Errorf("merkle: column %d has non-power-of-two length %d", i, len(col))
		}
		byLogSize[logSize] = append(byLogSize[logSize], col)
		if logSize > maxLogSize {
			maxLogSize = logSize
		}
	}

	layers := make([][]Hash, maxLogSize+1)
	leafCols := byLogSize[maxLogSize]
	leaves := make([]Hash, 1<<uint(maxLogSize))
	for i := range leaves {
		leaves[i] = hasher.HashNode(nil, valuesAt(leafCols, i))
	}
	layers[maxLogSize] = leaves

	for l := maxLogSize - 1; l >= 0; l-- {
		cols := byLogSize[l]
		nodes := make([]Hash, 1<<uint(l))
		child := layers[l+1]
		for i := range nodes {
			children := [2]Hash{child[2*i], child[2*i+1]}
			nodes[i] = hasher.HashNode(&children, valuesAt(cols, i))
		}
		layers[l] = nodes
	}

	return &Prover{
		hasher:           hasher,
		layers:           layers,
		columnsByLogSize: byLogSize,
		maxLogSize:       maxLogSize,
	}, nil
}

func valuesAt(cols [][]field.F, i int) []field.F {
	if len(cols) == 0 {
		return nil
	}
	out := make([]field.F, len(cols))
	for j, col := range cols {
		out[j] = col[i]
	}
	return out
}

// Root returns the committed root hash.
func (p *Prover) Root() Hash {
	return p.layers[0][0]
}

// Decommit answers queriesPerLogSize (log-size -> set of requested node
// indices at that log-size) with the column values at those indices plus
// the minimal witness the verifier needs to recompute every node on the
// path to the root.
func (p *Prover) Decommit(queriesPerLogSize map[int][]int) ([]field.F, Decommitment) {
	var queriedValues []field.F
	var hashWitness []Hash
	var columnWitness []field.F

	prevVisited := map[int]bool{}

	for l := p.maxLogSize; l >= 0; l-- {
		direct := toSortedSet(queriesPerLogSize[l])
		visited := parentSet(prevVisited, direct, l == p.maxLogSize)

		cols := p.columnsByLogSize[l]
		for _, p2 := range visited {
			if l < p.maxLogSize {
				for _, child := range []int{2 * p2, 2*p2 + 1} {
					if !prevVisited[child] {
						hashWitness = append(hashWitness, p.layers[l+1][child])
					}
				}
			}
			values := valuesAt(cols, p2)
			if direct[p2] {
				queriedValues = append(queriedValues, values...)
			} else {
				columnWitness = append(columnWitness, values...)
			}
		}

		newPrevVisited := map[int]bool{}
		for _, v := range visited {
			newPrevVisited[v] = true
		}
		prevVisited = newPrevVisited
	}

	return queriedValues, Decommitment{HashWitness: hashWitness, ColumnWitness: columnWitness}
}

func toSortedSet(indices []int) map[int]bool {
	set := map[int]bool{}
	for _, i := range indices {
		set[i] = true
	}
	return set
}

// parentSet computes the ascending, deduplicated set of parent indices
// implied by prevVisited (indices visited in the deeper, child layer) union
// direct (indices directly queried at the current layer). At the leaf
// layer there is no child layer, so only direct applies.
func parentSet(prevVisited map[int]bool, direct map[int]bool, isLeafLayer bool) []int {
	set := map[int]bool{}
	if !isLeafLayer {
		for c := range prevVisited {
			set[c/2] = true
		}
	}
	for d := range direct {
		set[d] = true
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
