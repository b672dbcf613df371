package simd

// baseRank orders the four bases from rarest to most common as observed
// in Endo-style DNA. Instruction encodings are I-heavy (every escape
// and every group marker spends Is), C carries the one-bits of every
// nat, and F and P are comparatively rare, P rarest since it only
// terminates nats and encodes escaped Ps. The rare-byte heuristic picks
// the needle byte with the lowest rank, which minimizes candidate
// positions per haystack byte.
//
// Bytes outside the alphabet never occur in a valid sequence; they get
// the best rank so a corrupt needle fails fast instead of scanning on a
// common base.
var baseRank = [256]uint8{
	'P': 1,
	'F': 2,
	'C': 3,
	'I': 4,
}

// selectRareByte returns the lowest-ranked byte in needle and its
// offset. needle must be non-empty.
func selectRareByte(needle []byte) (b byte, idx int) {
	b, idx = needle[0], 0
	for i := 1; i < len(needle); i++ {
		if baseRank[needle[i]] < baseRank[b] {
			b, idx = needle[i], i
		}
	}
	return b, idx
}
