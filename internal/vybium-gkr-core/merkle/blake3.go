package merkle

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/vybium/vybium-gkr-core/field"
)

// Blake3Hasher is a MerkleHasher backed by github.com/zeebo/blake3.
type Blake3Hasher struct{}

func (Blake3Hasher) HashNode(children *[2]Hash, columnValues []field.F) Hash {
	h := blake3.New()
	if children != nil {
		h.Write(children[0][:])
		h.Write(children[1][:])
	}
	var buf [4]byte
	for _, v := range columnValues {
		binary.LittleEndian.PutUint32(buf[:], v.Value())
		h.Write(buf[:])
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
