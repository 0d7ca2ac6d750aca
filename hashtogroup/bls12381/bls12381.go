// Package bls12381 configures hash-to-group for the BLS12-381 G1 group.
package bls12381

import (
	"math/big"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/physalialabs/primitives/hashtogroup"
)

var (
	// b in y^2 = x^3 + b.
	bCoeff = newFieldElement(4)

	// G1 cofactor, (x-1)^2 / 3 for the curve parameter x.
	cofactor = mustHex("396c8c005555e1568c00aaab0000aaab")
)

// Curve returns the G1 configuration, for callers composing their own curve
// consumers.
func Curve() hashtogroup.Curve[bls.G1Affine] {
	// TODO: offer a constant-time simplified-SWU Map alongside the
	// default sampling map.
	return hashtogroup.Curve[bls.G1Affine]{
		Name:          "BLS12-381 G1",
		FieldModulus:  fp.Modulus(),
		PointFromX:    pointFromX,
		ClearCofactor: clearCofactor,
	}
}

// HashToGroup maps data to a G1 point, deterministically in data and
// context.
func HashToGroup(data, context []byte) (bls.G1Affine, error) {
	return Curve().HashToGroup(data, context)
}

func pointFromX(x *big.Int, greatestY bool) (bls.G1Affine, bool) {
	var xe, y2, y fp.Element
	xe.SetBigInt(x)
	y2.Square(&xe)
	y2.Mul(&y2, &xe)
	y2.Add(&y2, &bCoeff)
	if y.Sqrt(&y2) == nil {
		return bls.G1Affine{}, false
	}
	if y.LexicographicallyLargest() != greatestY {
		y.Neg(&y)
	}
	return bls.G1Affine{X: xe, Y: y}, true
}

// clearCofactor multiplies by the full cofactor constant with plain
// double-and-add: GLV scalar multiplication assumes a subgroup point,
// which the input is not yet, and effective-cofactor shortcuts land on a
// different subgroup element than the constant itself.
func clearCofactor(p bls.G1Affine) bls.G1Affine {
	var q, acc bls.G1Jac
	q.FromAffine(&p)
	acc.Set(&q)
	for i := cofactor.BitLen() - 2; i >= 0; i-- {
		acc.DoubleAssign()
		if cofactor.Bit(i) == 1 {
			acc.AddAssign(&q)
		}
	}
	var out bls.G1Affine
	out.FromJacobian(&acc)
	return out
}

func newFieldElement(v uint64) fp.Element {
	var e fp.Element
	e.SetUint64(v)
	return e
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("malformed hex constant: " + s)
	}
	return v
}
