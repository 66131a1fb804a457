package vybiumgkrcore

import (
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/gkr"
	"github.com/vybium/vybium-gkr-core/merkle"
)

// HasherKind selects which MerkleHasher backend a Config builds.
type HasherKind int

const (
	HasherBlake2s HasherKind = iota
	HasherBlake3
	HasherPoseidon
)

// Config collects the choices a caller makes once per proof system
// instantiation: which hash backend commits witness columns, and whether
// GKR batching draws its combination scalar from the shared transcript (the
// sound default) or a fixed value (useful for reproducible tests).
type Config struct {
	Hasher HasherKind
	// FixedBatchingLambda, when non-nil, is used in place of a
	// transcript-drawn scalar when combining a layer's numerator and
	// denominator claims. Leave nil in production: a fixed lambda lets an
	// adversary who knows it forge a layer's combined claim.
	FixedBatchingLambda *uint32
}

// DefaultConfig returns the configuration GKR and the Merkle commitment
// layer use unless a caller overrides it: Blake2s hashing and a
// transcript-drawn batching scalar.
func DefaultConfig() Config {
	return Config{Hasher: HasherBlake2s}
}

// BuildHasher constructs the MerkleHasher the config selects.
func (c Config) BuildHasher() merkle.MerkleHasher {
	switch c.Hasher {
	case HasherBlake3:
		return merkle.Blake3Hasher{}
	case HasherPoseidon:
		return merkle.NewPoseidonHasher()
	default:
		return merkle.Blake2sHasher{}
	}
}

// LambdaSource returns gkr.DrawnLambda, unless FixedBatchingLambda is set,
// in which case it returns a gkr.LambdaSource pinned to that value. Pass
// the result to the gkr package's *WithLambda functions (ProveInstance,
// VerifyInstance, ProveBatch, VerifyBatch all have transcript-drawn
// defaults; only the *WithLambda variants consult this).
func (c Config) LambdaSource() gkr.LambdaSource {
	if c.FixedBatchingLambda == nil {
		return gkr.DrawnLambda
	}
	return gkr.FixedLambda(field.FromF(field.FromU32(*c.FixedBatchingLambda)))
}
