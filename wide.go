package binfield

import (
	"math/bits"

	"github.com/pd0mz/go-binfield/internal/invariants"
	"lukechampine.com/uint128"
)

const wideBits = 128

// MulWide is Mul with a 128-bit output word.
func MulWide[I Word](word I, mat []I) uint128.Uint128 {
	invariants.CheckRows(len(mat), 0, wideBits)
	return accumRowsWide(word, uint128.Zero, mat, Dot[I])
}

// MulSystematicWide is MulSystematic with a 128-bit output word.
func MulSystematicWide[I Word](word I, mat []I) uint128.Uint128 {
	invariants.CheckRows(len(mat), bits.Len64(uint64(word)), wideBits)
	return accumRowsWide(word, uint128.From64(uint64(word)), mat, Dot[I])
}

// Mul128 is Mul for 128-bit vectors and rows.
func Mul128(word uint128.Uint128, mat []uint128.Uint128) uint128.Uint128 {
	invariants.CheckRows(len(mat), 0, wideBits)
	return accumRowsWide(word, uint128.Zero, mat, Dot128)
}

// MulSystematic128 is MulSystematic for 128-bit vectors and rows.
func MulSystematic128(word uint128.Uint128, mat []uint128.Uint128) uint128.Uint128 {
	invariants.CheckRows(len(mat), word.Len(), wideBits)
	return accumRowsWide(word, word, mat, Dot128)
}

// Dot128 returns the GF(2) inner product of two 128-bit words.
func Dot128(a, b uint128.Uint128) uint8 {
	return uint8(a.And(b).OnesCount() & 1)
}

// accumRowsWide is accumRows for a 128-bit accumulator.
func accumRowsWide[I any](word I, accum uint128.Uint128, mat []I, dot func(a, b I) uint8) uint128.Uint128 {
	for _, row := range mat {
		accum = accum.Lsh(1).Or64(uint64(dot(word, row)))
	}
	return accum
}
