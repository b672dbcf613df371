// Package simd provides the byte-search primitives behind the
// interpreter's Search pattern element.
//
// The haystack is DNA over the four-symbol alphabet {I, C, F, P}, which
// changes the usual trade-offs: every byte of the haystack is one of
// four values, so single-byte candidate scans produce far more false
// positives than they would on text. The package compensates with a
// rare-base heuristic (see frequencies.go) and falls back to a portable
// SWAR scan where the runtime's vectorized IndexByte is not worth
// chaining candidate hops on.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	return memchr(haystack, needle)
}
