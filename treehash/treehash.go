package treehash

import "errors"

// ErrInvalidChildCount signals a children slice whose length does not match
// the algorithm's fixed arity.
var ErrInvalidChildCount = errors.New("invalid number of children")

// Element is the contract a leaf value satisfies: structural equality and
// cheap duplication. Plain value types provide both through Go value
// semantics; types carrying pointers or slices do not belong here.
type Element interface{ comparable }

// Index is the contract a leaf position satisfies. Machine integers are the
// common case; BigIndex covers sparse trees addressed by positions beyond
// the uint64 range.
type Index interface{ comparable }

// NodeValue is the contract a node hash satisfies: equality comparison and a
// default "empty" value, which is the Go zero value. Concrete node types
// additionally expose a byte or field view for further hashing, but that
// view is a backend concern and not part of the contract.
type NodeValue interface{ comparable }

// DigestAlgorithm is the hashing strategy injected into a tree engine. The
// engine calls Digest on every internal node and DigestLeaf on every leaf;
// it owns all structure, storage and traversal itself.
//
// Digest is defined for exactly Arity children. Implementations may reject
// other lengths with ErrInvalidChildCount; callers must not rely on any
// particular behavior for them.
//
// DigestLeaf and Digest must be domain separated: no leaf hash may be
// constructible as an internal-node hash of any children vector, and vice
// versa. Each backend documents how (and under which caller obligations) it
// maintains this.
type DigestAlgorithm[E Element, I Index, H NodeValue] interface {
	// Arity returns the fixed number of children per internal node.
	Arity() int

	// Digest compresses an ordered run of child hashes into a parent hash.
	Digest(children []H) (H, error)

	// DigestLeaf hashes a leaf's position and value into a leaf hash.
	DigestLeaf(pos I, elem E) (H, error)
}

// Config is a pure composition of a digest algorithm with the fixed tree
// shape a tree engine consumes. It introduces no hashing behavior of its
// own; backends export named constructors so callers pick configurations
// by name instead of wiring digests manually.
type Config[E Element, I Index, H NodeValue] struct {
	name string
	alg  DigestAlgorithm[E, I, H]
}

// NewConfig composes a named tree configuration from a digest algorithm.
func NewConfig[E Element, I Index, H NodeValue](name string, alg DigestAlgorithm[E, I, H]) Config[E, I, H] {
	return Config[E, I, H]{name: name, alg: alg}
}

// Name identifies the configuration.
func (c Config[E, I, H]) Name() string { return c.name }

// Arity returns the fixed number of children per internal node.
func (c Config[E, I, H]) Arity() int { return c.alg.Arity() }

// Algorithm returns the digest strategy to inject into the tree engine.
func (c Config[E, I, H]) Algorithm() DigestAlgorithm[E, I, H] { return c.alg }

// EmptyHash returns the default node value for absent subtrees.
func (c Config[E, I, H]) EmptyHash() H {
	var empty H
	return empty
}
