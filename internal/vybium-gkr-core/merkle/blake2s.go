package merkle

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2s"

	"github.com/vybium/vybium-gkr-core/field"
)

// Blake2sHasher is a MerkleHasher backed by golang.org/x/crypto/blake2s.
// Children, when present, are hashed first; then each column value is
// appended as its little-endian uint32 representative.
type Blake2sHasher struct{}

func (Blake2sHasher) HashNode(children *[2]Hash, columnValues []field.F) Hash {
	h, _ := blake2s.New256(nil)
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
