package binfield

import (
	"math/bits"

	"github.com/pd0mz/go-binfield/internal/invariants"
	"golang.org/x/exp/constraints"
)

// Word is any fixed-width unsigned integer used as a packed bit vector.
type Word interface {
	constraints.Unsigned
}

// Mul computes vM^T, where v is the given word and M the matrix made of the
// given rows. The dot product with mat[0] ends up in bit len(mat)-1 of the
// result and the dot product with the last row in bit 0.
//
// The caller must make sure len(mat) does not exceed the bit width of O;
// excess leading bits are shifted out of the result without notice.
func Mul[O, I Word](word I, mat []I) O {
	invariants.CheckRows(len(mat), 0, width[O]())
	return accumRows(word, O(0), mat)
}

// MulSystematic computes [v | vM^T], where v is the given word and M the
// matrix made of the given rows: the word itself followed by the parity bits
// Mul would return.
//
// The caller must make sure the significant bits of word plus len(mat) do
// not exceed the bit width of O; excess leading bits are shifted out of the
// result without notice.
func MulSystematic[O, I Word](word I, mat []I) O {
	invariants.CheckRows(len(mat), bits.Len64(uint64(word)), width[O]())
	return accumRows(word, O(word), mat)
}

// Dot returns the GF(2) inner product of a and b, that is the parity of
// a AND b.
func Dot[I Word](a, b I) uint8 {
	return uint8(bits.OnesCount64(uint64(a&b)) & 1)
}

// accumRows computes the dot product of word with each row of mat, shifting
// each resulting bit into the LSB of the accumulator.
func accumRows[O, I Word](word I, accum O, mat []I) O {
	for _, row := range mat {
		accum = accum<<1 | O(Dot(word, row))
	}
	return accum
}

// width returns the number of bits in W.
func width[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}
