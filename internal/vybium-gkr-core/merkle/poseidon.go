package merkle

import (
	"math/big"

	"github.com/vybium/vybium-gkr-core/bigfield"
	"github.com/vybium/vybium-gkr-core/field"
)

// starknetFieldModulus is the 252-bit prime 2^251 + 17*2^192 + 1 used by the
// Starknet/Cairo field, the standard 252-bit field Poseidon is specified
// over.
var starknetFieldModulus = func() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 251)
	term := new(big.Int).Lsh(big.NewInt(17), 192)
	m.Add(m, term)
	m.Add(m, big.NewInt(1))
	return m
}()

// elementsPerWord is the number of 31-bit base-field limbs packed into a
// single 252-bit Poseidon input word.
const elementsPerWord = 8

// PoseidonHasher is a MerkleHasher over the 252-bit Starknet field. Column
// values are packed 8-per-word, most-significant limb first, with the final
// partial word zero-padded in its low limbs.
type PoseidonHasher struct {
	field    *bigfield.Field
	poseidon *bigfield.Poseidon
}

// NewPoseidonHasher builds a PoseidonHasher with 128-bit-security defaults
// sized to the 252-bit field.
func NewPoseidonHasher() *PoseidonHasher {
	f, err := bigfield.NewField(starknetFieldModulus)
	if err != nil {
		panic(err)
	}
	p, err := bigfield.NewPoseidon(f, nil)
	if err != nil {
		panic(err)
	}
	return &PoseidonHasher{field: f, poseidon: p}
}

func (h *PoseidonHasher) HashNode(children *[2]Hash, columnValues []field.F) Hash {
	var inputs []*bigfield.Element
	if children != nil {
		inputs = append(inputs, h.elementFromHash(children[0]), h.elementFromHash(children[1]))
	}
	inputs = append(inputs, packColumns(h.field, columnValues)...)

	result := h.poseidon.Hash(inputs)
	return h.hashFromElement(result)
}

func (h *PoseidonHasher) elementFromHash(digest Hash) *bigfield.Element {
	return h.field.NewElement(new(big.Int).SetBytes(digest[:]))
}

func (h *PoseidonHasher) hashFromElement(e *bigfield.Element) Hash {
	var out Hash
	b := e.Bytes()
	// Element.Bytes is padded to the field's byte width (32 bytes for a
	// 252-bit modulus); copy right-aligned into the fixed digest.
	copy(out[32-len(b):], b)
	return out
}

// packColumns groups columnValues into 252-bit words of elementsPerWord
// base-field limbs each, most-significant limb first, zero-padding the
// final partial word.
func packColumns(f *bigfield.Field, columnValues []field.F) []*bigfield.Element {
	if len(columnValues) == 0 {
		return nil
	}
	numWords := (len(columnValues) + elementsPerWord - 1) / elementsPerWord
	words := make([]*bigfield.Element, numWords)
	for w := 0; w < numWords; w++ {
		acc := new(big.Int)
		for i := 0; i < elementsPerWord; i++ {
			idx := w*elementsPerWord + i
			acc.Lsh(acc, 31)
			if idx < len(columnValues) {
				acc.Or(acc, big.NewInt(int64(columnValues[idx].Value())))
			}
		}
		words[w] = f.NewElement(acc)
	}
	return words
}
