package treehash

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigIndexString(t *testing.T) {
	beyondMachine := new(big.Int).Lsh(big.NewInt(1), 80)

	tests := []struct {
		name string
		idx  BigIndex
		want string
	}{
		{"zero", NewBigIndex(0), "0"},
		{"small", NewBigIndex(42), "42"},
		{"max machine", NewBigIndex(math.MaxUint64), "18446744073709551615"},
		{"beyond machine", BigIndexFromBigInt(beyondMachine), "1208925819614629174706176"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.idx.String())
		})
	}
}

func TestBigIndexConstructorsAgree(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
	}{
		{"zero", 0},
		{"one", 1},
		{"two bytes", 0x0102},
		{"max machine", math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromMachine := NewBigIndex(tt.v)
			fromBig := BigIndexFromBigInt(new(big.Int).SetUint64(tt.v))

			// Identical values must be identical indices, whichever
			// constructor produced them.
			assert.Equal(t, fromMachine, fromBig)
			assert.Equal(t, tt.v, fromMachine.BigInt().Uint64())
		})
	}
}

func TestBigIndexBytesMinimal(t *testing.T) {
	assert.Empty(t, NewBigIndex(0).Bytes())
	assert.Equal(t, []byte{0x01, 0x02}, NewBigIndex(0x0102).Bytes())
	assert.Equal(t, []byte{0xff}, NewBigIndex(0xff).Bytes())
}

func TestBigIndexRoundtrip(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	idx := BigIndexFromBigInt(v)
	assert.Equal(t, 0, v.Cmp(idx.BigInt()))
	assert.Equal(t, idx, BigIndexFromBigInt(idx.BigInt()))
}

func TestBigIndexComparable(t *testing.T) {
	seen := map[BigIndex]int{
		NewBigIndex(1): 1,
		NewBigIndex(2): 2,
	}
	assert.Equal(t, 1, seen[BigIndexFromBigInt(big.NewInt(1))])
	assert.Equal(t, 2, seen[NewBigIndex(2)])
}

func TestBigIndexNegative(t *testing.T) {
	require.Panics(t, func() {
		BigIndexFromBigInt(big.NewInt(-1))
	})
}
