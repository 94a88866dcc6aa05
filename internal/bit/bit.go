// Package bit is an unpacked, one byte per bit, model of GF(2) vectors and
// matrices. It is slow and obvious, and serves as the reference the packed
// routines are checked against.
package bit

type Bit byte

func (b *Bit) Flip() {
	(*b) ^= 0x01
}

// Bits is a binary vector, most significant bit first.
type Bits []Bit

// FromWord unpacks the low n bits of w, most significant first.
func FromWord(w uint64, n int) Bits {
	var o = make(Bits, n)
	for i := 0; i < n; i++ {
		if w&(1<<uint(n-1-i)) != 0 {
			o[i] = 1
		}
	}
	return o
}

// Word packs bits back into a word, the last bit being the LSB. Bits beyond
// the 64th from the end are shifted out.
func (bits Bits) Word() uint64 {
	var w uint64
	for _, b := range bits {
		w = w<<1 | uint64(b&1)
	}
	return w
}

func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i, b := range bits {
		if b != other[i] {
			return false
		}
	}
	return true
}

func (bits Bits) String() string {
	var s = make([]byte, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

// Dot is the GF(2) inner product: the XOR of the pairwise AND of both
// vectors. The vectors are aligned on their last bit.
func (bits Bits) Dot(other Bits) Bit {
	var sum Bit
	for i, j := len(bits)-1, len(other)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		sum ^= bits[i] & other[j]
	}
	return sum
}

// Mul multiplies v by the transpose of the matrix whose rows are given,
// yielding one bit per row in row order.
func Mul(v Bits, rows []Bits) Bits {
	var o = make(Bits, len(rows))
	for i, row := range rows {
		o[i] = v.Dot(row)
	}
	return o
}

// Concat returns a new vector holding a followed by b.
func Concat(a, b Bits) Bits {
	var o = make(Bits, 0, len(a)+len(b))
	o = append(o, a...)
	return append(o, b...)
}
