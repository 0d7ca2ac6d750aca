package treehash

import (
	"fmt"
	"math/big"
)

// BigIndex is an arbitrary-precision leaf position for sparse trees keyed
// beyond the uint64 range. The representation is the minimal big-endian
// encoding of the value held in an immutable string, so indices compare and
// copy like any other value type. Zero is the empty string under both
// constructors.
type BigIndex string

// NewBigIndex returns the index for a machine-integer position.
func NewBigIndex(v uint64) BigIndex {
	return BigIndex(new(big.Int).SetUint64(v).Bytes())
}

// BigIndexFromBigInt returns the index for an arbitrary-precision position.
// It panics on negative values; tree positions are unsigned.
func BigIndexFromBigInt(v *big.Int) BigIndex {
	if v.Sign() < 0 {
		panic(fmt.Sprintf("treehash: negative index %s", v))
	}
	return BigIndex(v.Bytes())
}

// BigInt returns the position as a fresh big integer.
func (i BigIndex) BigInt() *big.Int {
	return new(big.Int).SetBytes([]byte(i))
}

// Bytes returns the minimal big-endian encoding of the position.
func (i BigIndex) Bytes() []byte {
	return []byte(i)
}

// String returns the decimal value of the position.
func (i BigIndex) String() string {
	return i.BigInt().String()
}
