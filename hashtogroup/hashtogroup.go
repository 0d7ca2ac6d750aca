package hashtogroup

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrIncompleteCurve signals a curve configuration missing a field the
// default map needs.
var ErrIncompleteCurve = errors.New("incomplete curve configuration")

// Curve configures hash-to-group for one short-Weierstrass group. The
// point type P is the curve library's affine representation; the function
// fields adapt the library to the default map. A Curve is a value and can
// be copied freely.
type Curve[P any] struct {
	// Name identifies the configuration in errors and test output.
	Name string

	// FieldModulus is the prime modulus of the base field that x
	// coordinates are sampled from.
	FieldModulus *big.Int

	// PointFromX recovers the point with the given x coordinate, picking
	// the candidate whose y is lexicographically largest iff greatestY is
	// set. It reports false when no point has that x coordinate.
	PointFromX func(x *big.Int, greatestY bool) (P, bool)

	// ClearCofactor multiplies a curve point into the prime-order
	// subgroup.
	ClearCofactor func(P) P

	// Map, when set, replaces the default sampling map entirely. The slot
	// exists for constant-time constructions; both shipped configurations
	// leave it nil.
	Map func(data, context []byte) (P, error)
}

// HashToGroup maps data to an element of the prime-order subgroup,
// deterministically in data and context. Distinct contexts give
// independent mappings of the same data.
//
// Unless Map overrides it, the mapping seeds a sampler from (data,
// context) and repeats { draw x, draw a sign bit, recover the point } until
// recovery succeeds, then clears the cofactor. About half of all x draws
// recover no point, so two rounds are expected; the loop terminates with
// overwhelming probability but runs in input-dependent time, so the default
// map is not constant time.
func (c Curve[P]) HashToGroup(data, context []byte) (P, error) {
	if c.Map != nil {
		return c.Map(data, context)
	}
	if c.FieldModulus == nil || c.PointFromX == nil || c.ClearCofactor == nil {
		var zero P
		return zero, fmt.Errorf("%w: %s", ErrIncompleteCurve, c.Name)
	}

	sampler := NewSampler(Seed(data, context))
	for {
		x := sampler.Uniform(c.FieldModulus)
		greatestY := sampler.Bit()
		point, ok := c.PointFromX(x, greatestY)
		if !ok {
			continue
		}
		return c.ClearCofactor(point), nil
	}
}
