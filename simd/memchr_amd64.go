//go:build amd64

package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 gates the candidate-hopping strategy in Memmem. With AVX2 the
// runtime's IndexByte runs at memory bandwidth and chaining short
// candidate hops through it stays cheap; without it a single-pass SWAR
// scan wins on the four-symbol alphabet.
var hasAVX2 = cpu.X86.HasAVX2

// memchr on amd64 defers to the runtime's vectorized IndexByte.
func memchr(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}
