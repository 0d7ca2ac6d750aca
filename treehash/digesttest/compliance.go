// Package digesttest provides a reusable compliance suite for digest
// algorithm implementations. Backend test packages hand it their algorithm
// plus deterministic value factories and it asserts the properties every
// backend must satisfy.
package digesttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/physalialabs/primitives/treehash"
)

// Vocabulary supplies the concrete values a compliance run hashes.
// Factories must be deterministic and must return pairwise distinct values.
type Vocabulary[E treehash.Element, I treehash.Index, H treehash.NodeValue] struct {
	// Algorithm is the implementation under test.
	Algorithm treehash.DigestAlgorithm[E, I, H]

	// Positions returns n distinct leaf positions.
	Positions func(n int) []I

	// Elements returns n distinct leaf elements.
	Elements func(n int) []E

	// Hashes returns n distinct node values usable as children.
	Hashes func(n int) []H

	// LeafDigestImplemented is false for backends whose leaf digest is
	// deliberately unimplemented. The leaf subtests then assert the loud
	// failure instead of the hashing properties.
	LeafDigestImplemented bool
}

// TestCompliance runs the property subtests every digest algorithm must
// pass.
func TestCompliance[E treehash.Element, I treehash.Index, H treehash.NodeValue](t *testing.T, v Vocabulary[E, I, H]) {
	t.Run("digest is deterministic", func(t *testing.T) {
		t.Parallel()

		children := v.Hashes(v.Algorithm.Arity())

		d1, err := v.Algorithm.Digest(children)
		require.NoError(t, err)
		d2, err := v.Algorithm.Digest(children)
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("digest respects child order", func(t *testing.T) {
		t.Parallel()

		children := v.Hashes(v.Algorithm.Arity())
		swapped := make([]H, len(children))
		copy(swapped, children)
		swapped[0], swapped[1] = swapped[1], swapped[0]

		d1, err := v.Algorithm.Digest(children)
		require.NoError(t, err)
		d2, err := v.Algorithm.Digest(swapped)
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("digest respects children", func(t *testing.T) {
		t.Parallel()

		arity := v.Algorithm.Arity()
		hashes := v.Hashes(arity + 1)
		altered := make([]H, arity)
		copy(altered, hashes[:arity])
		altered[0] = hashes[arity]

		d1, err := v.Algorithm.Digest(hashes[:arity])
		require.NoError(t, err)
		d2, err := v.Algorithm.Digest(altered)
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("digest is not the empty value", func(t *testing.T) {
		t.Parallel()

		d, err := v.Algorithm.Digest(v.Hashes(v.Algorithm.Arity()))
		require.NoError(t, err)

		var empty H
		require.NotEqual(t, empty, d)
	})

	if !v.LeafDigestImplemented {
		t.Run("leaf digest fails loudly", func(t *testing.T) {
			t.Parallel()

			d, err := v.Algorithm.DigestLeaf(v.Positions(1)[0], v.Elements(1)[0])
			require.Error(t, err)

			// The error must never come with a plausible hash.
			var empty H
			require.Equal(t, empty, d)
		})
		return
	}

	t.Run("leaf digest is deterministic", func(t *testing.T) {
		t.Parallel()

		pos := v.Positions(1)[0]
		elem := v.Elements(1)[0]

		d1, err := v.Algorithm.DigestLeaf(pos, elem)
		require.NoError(t, err)
		d2, err := v.Algorithm.DigestLeaf(pos, elem)
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("leaf digest respects position", func(t *testing.T) {
		t.Parallel()

		positions := v.Positions(2)
		elem := v.Elements(1)[0]

		d1, err := v.Algorithm.DigestLeaf(positions[0], elem)
		require.NoError(t, err)
		d2, err := v.Algorithm.DigestLeaf(positions[1], elem)
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("leaf digest respects element", func(t *testing.T) {
		t.Parallel()

		pos := v.Positions(1)[0]
		elems := v.Elements(2)

		d1, err := v.Algorithm.DigestLeaf(pos, elems[0])
		require.NoError(t, err)
		d2, err := v.Algorithm.DigestLeaf(pos, elems[1])
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("leaf digest is not the empty value", func(t *testing.T) {
		t.Parallel()

		d, err := v.Algorithm.DigestLeaf(v.Positions(1)[0], v.Elements(1)[0])
		require.NoError(t, err)

		var empty H
		require.NotEqual(t, empty, d)
	})
}
