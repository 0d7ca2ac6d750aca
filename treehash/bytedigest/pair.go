package bytedigest

import (
	"crypto/sha256"
	"fmt"

	"github.com/prysmaticlabs/gohashtree"

	"github.com/physalialabs/primitives/treehash"
)

// PairHasher hashes two children with SHA-256 over their 64-byte
// concatenation, the schema the vectorized batch path is fixed to. Like
// Hasher it has no leaf encoding; DigestLeaf always fails. The zero value
// is ready to use.
type PairHasher[E treehash.Element, I treehash.Index] struct{}

// Arity returns the children count per internal node.
func (PairHasher[E, I]) Arity() int { return 2 }

// Digest hashes the concatenation of exactly two children.
func (PairHasher[E, I]) Digest(children []Hash) (Hash, error) {
	if len(children) != 2 {
		return Hash{}, fmt.Errorf("%w: got: %v, want: %v",
			treehash.ErrInvalidChildCount, len(children), 2)
	}
	var buf [2 * Size]byte
	copy(buf[:Size], children[0][:])
	copy(buf[Size:], children[1][:])
	return sha256.Sum256(buf[:]), nil
}

// DigestLeaf always fails: the leaf encoding for this backend is not
// fixed. It never returns a plausible hash.
func (PairHasher[E, I]) DigestLeaf(pos I, _ E) (Hash, error) {
	return Hash{}, fmt.Errorf("%w: position %v", ErrLeafDigestUnimplemented, pos)
}

// DigestPairs digests consecutive child pairs in one vectorized pass:
// result i is the digest of children 2i and 2i+1, byte-identical to the
// scalar Digest. The children count must be even.
func (PairHasher[E, I]) DigestPairs(children []Hash) ([]Hash, error) {
	if len(children)%2 != 0 {
		return nil, fmt.Errorf("%w: got: %v, want a multiple of: %v",
			treehash.ErrInvalidChildCount, len(children), 2)
	}
	chunks := make([][32]byte, len(children))
	for i, c := range children {
		chunks[i] = c
	}
	digests := make([][32]byte, len(children)/2)
	if err := gohashtree.Hash(digests, chunks); err != nil {
		return nil, fmt.Errorf("vectorized digest failed: %w", err)
	}
	out := make([]Hash, len(digests))
	for i, d := range digests {
		out[i] = d
	}
	return out, nil
}

// PairConfig is the binary byte-hash tree configuration: SHA-256 nodes,
// uint64 positions, two children per node.
func PairConfig[E treehash.Element]() treehash.Config[E, uint64, Hash] {
	return treehash.NewConfig[E, uint64, Hash]("byte-pair", PairHasher[E, uint64]{})
}
