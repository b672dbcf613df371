// Package dna provides the symbol sequence underlying the Endo
// DNA-to-RNA interpreter.
//
// A sequence is an immutable rope over the four-letter ICFP base
// alphabet {I, C, F, P}. The interpreter's inner loop discards a parsed
// prefix and splices a freshly built prefix on every step, over strings
// that reach hundreds of megabytes, so the rope is tuned for:
//   - O(log n) prefix drop, slice and concatenation
//   - storage sharing between a sequence and its slices
//   - cheap sequential reads through Reader and Iter cursors
//
// The package also carries the symbol-level codecs the interpreter
// language is built from: the LSB-first "nat" integer encoding, the
// shifted "consts" string literal encoding, and the quote/protect
// escape transform.
package dna

import "errors"

// Base symbols. A sequence never contains anything else.
const (
	I byte = 'I'
	C byte = 'C'
	F byte = 'F'
	P byte = 'P'
)

// Common sequence errors.
var (
	// ErrAlphabet indicates a symbol outside {I, C, F, P}.
	ErrAlphabet = errors.New("dna: symbol outside base alphabet")

	// ErrShortDNA indicates the sequence ended inside a required encoding,
	// e.g. a nat with no terminating P.
	ErrShortDNA = errors.New("dna: unexpected end of sequence")
)

// IsBase reports whether b is one of the four base symbols.
func IsBase(b byte) bool {
	switch b {
	case I, C, F, P:
		return true
	}
	return false
}

// Validate returns ErrAlphabet if p contains a non-base symbol.
func Validate(p []byte) error {
	for _, b := range p {
		if !IsBase(b) {
			return ErrAlphabet
		}
	}
	return nil
}
