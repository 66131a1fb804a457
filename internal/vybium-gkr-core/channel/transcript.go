// Package channel implements the Fiat-Shamir transcript the sum-check and
// GKR provers/verifiers thread through their protocols.
package channel

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-gkr-core/field"
)

// Transcript is a Fiat-Shamir channel over the secure field E. Every mix
// folds its input into the running state; every draw re-hashes the state
// before extracting a challenge, so drawing twice in a row never repeats a
// value and the sequence of operations is fully determined by program
// order.
type Transcript struct {
	state []byte
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{state: make([]byte, 32)}
}

// MixFelts folds a slice of secure-field elements into the transcript.
func (t *Transcript) MixFelts(felts []field.E) {
	for _, f := range felts {
		t.absorb(feltBytes(f))
	}
}

// MixU32s folds a slice of uint32s into the transcript.
func (t *Transcript) MixU32s(values []uint32) {
	buf := make([]byte, 4)
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf, v)
		t.absorb(buf)
	}
}

// MixU64 folds a single uint64 into the transcript.
func (t *Transcript) MixU64(v uint64) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	t.absorb(buf)
}

// MixBytes folds raw bytes into the transcript, for committing hashes
// (Merkle roots) and other opaque digests.
func (t *Transcript) MixBytes(data []byte) {
	t.absorb(data)
}

func (t *Transcript) absorb(data []byte) {
	h := sha3.New256()
	h.Write(t.state)
	h.Write(data)
	t.state = h.Sum(nil)
}

// DrawFelt draws a single deterministic secure-field challenge.
func (t *Transcript) DrawFelt() field.E {
	t.state = sha3Sum(t.state)
	return feltFromBytes(t.state)
}

// DrawFelts draws n deterministic secure-field challenges.
func (t *Transcript) DrawFelts(n int) []field.E {
	out := make([]field.E, n)
	for i := range out {
		out[i] = t.DrawFelt()
	}
	return out
}

// DrawRandomBytes draws n pseudorandom bytes, re-hashing the state as many
// times as needed.
func (t *Transcript) DrawRandomBytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		t.state = sha3Sum(t.state)
		out = append(out, t.state...)
	}
	return out[:n]
}

func sha3Sum(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}

// feltBytes serializes a secure-field element as 4 little-endian uint32
// limbs, in the order (C0.A, C0.B, C1.A, C1.B).
func feltBytes(f field.E) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], f.C0.A.Value())
	binary.LittleEndian.PutUint32(buf[4:8], f.C0.B.Value())
	binary.LittleEndian.PutUint32(buf[8:12], f.C1.A.Value())
	binary.LittleEndian.PutUint32(buf[12:16], f.C1.B.Value())
	return buf
}

// feltFromBytes derives a secure-field element from a 32-byte hash by
// reducing four consecutive 8-byte windows modulo P.
func feltFromBytes(digest []byte) field.E {
	a := field.FromU64(binary.LittleEndian.Uint64(digest[0:8]))
	b := field.FromU64(binary.LittleEndian.Uint64(digest[8:16]))
	c := field.FromU64(binary.LittleEndian.Uint64(digest[16:24]))
	d := field.FromU64(binary.LittleEndian.Uint64(digest[24:32]))
	return field.E{C0: field.CM31{A: a, B: b}, C1: field.CM31{A: c, B: d}}
}
