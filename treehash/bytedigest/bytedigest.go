// Package bytedigest implements the digest contract over byte-oriented
// hashes. Internal nodes concatenate their children's bytes in order and
// hash the result with SHA3-256 by default.
//
// The leaf side of the contract is not implemented: a canonical byte
// encoding for (position, element) pairs has not been fixed yet, and
// inventing one here would silently commit every tree built on this backend
// to it. DigestLeaf therefore always fails with ErrLeafDigestUnimplemented.
// Configurations in this package suit trees whose leaves are hashed
// elsewhere, or callers prepared to handle the error.
package bytedigest

import (
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/physalialabs/primitives/treehash"
)

const (
	// Size is the byte length of every node hash in this package.
	Size = 32

	// TreeArity is the children count of the default configuration.
	TreeArity = 3
)

// ErrLeafDigestUnimplemented signals that no leaf encoding has been fixed
// for the byte backend. It is the only value DigestLeaf ever produces.
var ErrLeafDigestUnimplemented = errors.New("leaf digest scheme not implemented")

var (
	_ treehash.DigestAlgorithm[string, uint64, Hash] = Hasher[string, uint64]{}
	_ treehash.DigestAlgorithm[string, uint64, Hash] = PairHasher[string, uint64]{}
)

// Hash is a node value: a fixed-size byte digest. The zero value is the
// empty hash.
type Hash [Size]byte

// Bytes returns the digest as a byte slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// Options configures a Hasher.
type Options struct {
	// NewHash constructs the base hash applied to the concatenated
	// children. It must produce Size-byte digests.
	NewHash func() hash.Hash
}

// Option configures a Hasher.
type Option func(*Options)

// WithHash overrides the base hash. The supplied constructor must produce
// Size-byte digests.
func WithHash(newHash func() hash.Hash) Option {
	return func(o *Options) {
		o.NewHash = newHash
	}
}

// Hasher hashes the ordered concatenation of its children's bytes. It
// accepts any children count; the tree engine owns arity discipline.
// Construct with New.
type Hasher[E treehash.Element, I treehash.Index] struct {
	newHash func() hash.Hash
}

// New returns a byte hasher, SHA3-256 based unless overridden.
func New[E treehash.Element, I treehash.Index](opts ...Option) Hasher[E, I] {
	options := Options{NewHash: sha3.New256}
	for _, opt := range opts {
		opt(&options)
	}
	return Hasher[E, I]{newHash: options.NewHash}
}

// Arity returns the children count of the default tree configuration.
func (h Hasher[E, I]) Arity() int { return TreeArity }

// Digest hashes the in-order concatenation of the children's bytes.
func (h Hasher[E, I]) Digest(children []Hash) (Hash, error) {
	hh := h.newHash()
	for _, c := range children {
		hh.Write(c[:])
	}
	var out Hash
	copy(out[:], hh.Sum(nil))
	return out, nil
}

// DigestLeaf always fails: the leaf encoding for this backend is not
// fixed. It never returns a plausible hash.
func (h Hasher[E, I]) DigestLeaf(pos I, _ E) (Hash, error) {
	return Hash{}, fmt.Errorf("%w: position %v", ErrLeafDigestUnimplemented, pos)
}

// Config is the byte-hash tree configuration: SHA3-256 nodes, uint64
// positions, three children per node.
func Config[E treehash.Element](opts ...Option) treehash.Config[E, uint64, Hash] {
	return treehash.NewConfig[E, uint64, Hash]("byte-merkle", New[E, uint64](opts...))
}
