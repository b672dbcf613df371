package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. It is equivalent to bytes.Index tuned
// for four-symbol DNA haystacks.
//
// Strategy: pick the rarest base in the needle and hop between its
// occurrences, verifying the full needle at each candidate. On hardware
// where IndexByte is not vector-accelerated the candidate hops lose to
// a single-pass SWAR scan over the needle's first two bytes, so the
// fallback takes that path instead.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}
	if hasAVX2 {
		return memmemRare(haystack, needle)
	}
	return memmemSWAR(haystack, needle)
}

// memmemRare hops between occurrences of the needle's rarest base.
func memmemRare(haystack, needle []byte) int {
	rare, rareIdx := selectRareByte(needle)
	// The rare byte of any match lies in this window.
	from := rareIdx
	limit := len(haystack) - len(needle) + rareIdx
	for from <= limit {
		p := memchr(haystack[from:limit+1], rare)
		if p < 0 {
			return -1
		}
		start := from + p - rareIdx
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		from += p + 1
	}
	return -1
}

// memmemSWAR scans for the needle's leading two bytes eight positions
// per step, verifying the remainder on each hit.
func memmemSWAR(haystack, needle []byte) int {
	const (
		lo = 0x0101010101010101
		hi = 0x8080808080808080
	)
	b0 := uint64(needle[0]) * lo
	b1 := uint64(needle[1]) * lo
	last := len(haystack) - len(needle)

	i := 0
	for ; i+9 <= len(haystack); i += 8 {
		v0 := binary.LittleEndian.Uint64(haystack[i:]) ^ b0
		v1 := binary.LittleEndian.Uint64(haystack[i+1:]) ^ b1
		m := ((v0 - lo) &^ v0) & ((v1 - lo) &^ v1) & hi
		for m != 0 {
			start := i + bits.TrailingZeros64(m)/8
			if start <= last && bytes.Equal(haystack[start:start+len(needle)], needle) {
				return start
			}
			m &= m - 1
		}
	}
	for ; i <= last; i++ {
		if haystack[i] == needle[0] && bytes.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
