package dna

import "math"

// ReadNat decodes a natural number from the reader: one bit per symbol,
// least-significant bit first, C = 1, I and F = 0, terminated by a P
// which is also consumed. It returns ErrShortDNA if the sequence ends
// before the terminator.
//
// Values beyond 62 bits saturate at MaxInt rather than overflowing. No
// physical DNA can be indexed or skipped that far, so every consumer's
// out-of-range behavior is preserved, and decoding still consumes the
// full encoding.
func ReadNat(r *Reader) (int, error) {
	n := 0
	for shift := 0; ; shift++ {
		b, ok := r.Next()
		if !ok {
			return 0, ErrShortDNA
		}
		switch b {
		case P:
			return n, nil
		case C:
			if shift < 62 {
				n |= 1 << shift
			} else {
				n = math.MaxInt
			}
		case I, F:
			// zero bit
		default:
			return 0, ErrAlphabet
		}
	}
}

// AppendNat appends the nat encoding of n to dst and returns the
// extended slice: I and C bits least-significant first, then the P
// terminator. AppendNat(dst, 0) appends just "P".
func AppendNat(dst []byte, n int) []byte {
	for ; n > 0; n >>= 1 {
		if n&1 == 0 {
			dst = append(dst, I)
		} else {
			dst = append(dst, C)
		}
	}
	return append(dst, P)
}

// Asnat returns the nat encoding of n.
func Asnat(n int) []byte {
	return AppendNat(nil, n)
}
