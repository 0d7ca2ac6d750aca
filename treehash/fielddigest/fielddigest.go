// Package fielddigest implements the digest contract with an algebraic
// sponge over the bn254 scalar field. Children and leaf values are field
// elements; the sponge absorbs exactly Rate elements per permutation and
// emits the first squeezed element as the parent hash.
//
// Leaf digests absorb [position, element, 0]: the position encoded as a
// field element, the leaf value, and a zero padding the two-slot payload to
// the rate. The trailing zero is what separates leaves from internal nodes,
// so integrators must keep zero out of the last child slot of internal
// nodes, or use leaf values that cannot collide with child hashes.
package fielddigest

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/iden3/go-iden3-crypto/poseidon"

	"github.com/physalialabs/primitives/treehash"
)

// Rate is the number of field elements absorbed per sponge permutation and
// the children count of every tree configuration in this package.
const Rate = 3

// Position constrains the index types this backend can encode into the
// field. BigIndex positions at or above the field modulus are reduced, so
// index sensitivity holds only below it.
type Position interface {
	uint64 | treehash.BigIndex
}

var (
	_ treehash.DigestAlgorithm[fr.Element, uint64, fr.Element]            = Hasher[uint64]{}
	_ treehash.DigestAlgorithm[fr.Element, treehash.BigIndex, fr.Element] = Hasher[treehash.BigIndex]{}
	_ treehash.DigestAlgorithm[Interval, uint64, fr.Element]              = IntervalHasher[uint64]{}
)

// Hasher is the sponge digest algorithm for trees holding single field
// elements at the leaves. The zero value is ready to use.
type Hasher[I Position] struct{}

// Arity returns the fixed number of children per internal node.
func (Hasher[I]) Arity() int { return Rate }

// Digest sponges exactly Rate child hashes into a parent hash.
func (Hasher[I]) Digest(children []fr.Element) (fr.Element, error) {
	if len(children) != Rate {
		return fr.Element{}, fmt.Errorf("%w: got: %v, want: %v",
			treehash.ErrInvalidChildCount, len(children), Rate)
	}
	return sponge(children)
}

// DigestLeaf sponges [position, element, 0].
func (Hasher[I]) DigestLeaf(pos I, elem fr.Element) (fr.Element, error) {
	var pad fr.Element
	return sponge([]fr.Element{fieldFromPosition(pos), elem, pad})
}

// MustDigestLeaf is a wrapper around DigestLeaf that panics if an error is
// encountered. Leaf digests cannot fail on well-formed field elements.
func (h Hasher[I]) MustDigestLeaf(pos I, elem fr.Element) fr.Element {
	res, err := h.DigestLeaf(pos, elem)
	if err != nil {
		panic(err)
	}
	return res
}

// Interval is a closed range of field elements. Interval trees store one
// per leaf; order and disjointness of the ranges are the tree engine's
// concern, not the digest's.
type Interval struct {
	Lo fr.Element
	Hi fr.Element
}

// IntervalHasher is the sponge digest algorithm for trees holding intervals
// at the leaves. The zero value is ready to use.
type IntervalHasher[I Position] struct{}

// Arity returns the fixed number of children per internal node.
func (IntervalHasher[I]) Arity() int { return Rate }

// Digest sponges exactly Rate child hashes into a parent hash.
func (IntervalHasher[I]) Digest(children []fr.Element) (fr.Element, error) {
	if len(children) != Rate {
		return fr.Element{}, fmt.Errorf("%w: got: %v, want: %v",
			treehash.ErrInvalidChildCount, len(children), Rate)
	}
	return sponge(children)
}

// DigestLeaf sponges [position, lo, hi]. The interval fills the rate, so no
// padding element is involved.
func (IntervalHasher[I]) DigestLeaf(pos I, elem Interval) (fr.Element, error) {
	return sponge([]fr.Element{fieldFromPosition(pos), elem.Lo, elem.Hi})
}

// MerkleConfig is the dense tree configuration: uint64 positions and one
// field element per leaf.
func MerkleConfig() treehash.Config[fr.Element, uint64, fr.Element] {
	return treehash.NewConfig[fr.Element, uint64, fr.Element]("field-merkle", Hasher[uint64]{})
}

// SparseConfig addresses leaves by arbitrary-precision positions.
func SparseConfig() treehash.Config[fr.Element, treehash.BigIndex, fr.Element] {
	return treehash.NewConfig[fr.Element, treehash.BigIndex, fr.Element]("field-sparse", Hasher[treehash.BigIndex]{})
}

// IntervalConfig stores a closed range per leaf.
func IntervalConfig() treehash.Config[Interval, uint64, fr.Element] {
	return treehash.NewConfig[Interval, uint64, fr.Element]("field-interval", IntervalHasher[uint64]{})
}

func sponge(data []fr.Element) (fr.Element, error) {
	inputs := make([]*big.Int, len(data))
	for i := range data {
		inputs[i] = new(big.Int)
		data[i].BigInt(inputs[i])
	}
	out, err := poseidon.Hash(inputs)
	if err != nil {
		return fr.Element{}, fmt.Errorf("sponge permutation failed: %w", err)
	}
	var h fr.Element
	h.SetBigInt(out)
	return h, nil
}

func fieldFromPosition[I Position](pos I) fr.Element {
	var f fr.Element
	switch p := any(pos).(type) {
	case uint64:
		f.SetUint64(p)
	case treehash.BigIndex:
		f.SetBigInt(p.BigInt())
	}
	return f
}
