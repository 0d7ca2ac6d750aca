// Package treehash defines the hashing strategy an authenticated tree engine
// is parameterized by:
//   - DigestAlgorithm turns an ordered run of child hashes into a parent
//     hash and a (position, element) pair into a leaf hash.
//   - Element, Index and NodeValue are the capability contracts leaf
//     values, positions and node hashes satisfy.
//   - Config composes an algorithm with its fixed arity into a named,
//     ready to inject tree configuration.
//
// Every operation in this package and its backends is a pure function over
// immutable inputs. Calls are safe to issue concurrently from any number of
// goroutines with no coordination, which BatchDigester exploits to hash
// whole tree levels in parallel.
package treehash
