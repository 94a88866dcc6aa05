// Package binfield implements vector-matrix multiplication over the binary
// field GF(2), the building block of linear error correcting codes.
//
// The routines compute vM^T = Mv^T of a 1xM binary vector v with an NxM
// binary matrix M, using GF(2) addition (XOR) and multiplication (AND). The
// vector and every matrix row are packed into unsigned words, bit i holding
// coordinate i, so the vector size is bounded by the word size. The N result
// bits are packed into an output word with the first row's bit the most
// significant.
//
// Multiplying the vector 1010 by the matrix
//
//	1 1 1 1
//	0 0 1 0
//	1 0 0 0
//	0 1 0 1
//	0 0 1 0
//	1 0 1 0
//
// yields the parity bits 011010 with Mul, or the systematic codeword
// 1010011010 with MulSystematic, which places the vector in front of the
// parity bits.
//
// Input and output word types are independent type parameters, so a 16-bit
// data word can produce a 32-bit codeword. Outputs wider than 64 bits are
// served by MulWide and friends using uint128.Uint128.
//
// None of the routines check their arguments. If the result does not fit the
// output word, the most significant bits are silently shifted out. Building
// with the "invariants" build tag turns such overflows into panics.
package binfield
