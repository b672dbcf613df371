package dna

// ReadConsts decodes a base-string literal from the reader. Each source
// symbol shifts down the alphabet: C decodes to I, F to C, P to F, and
// the pair IC decodes to P. Decoding stops at the first prefix that
// matches no rule, including a lone trailing I, and the non-matching
// symbols are left unconsumed. Running out of input is not an error;
// the literal decoded so far is returned.
func ReadConsts(r *Reader) []byte {
	var out []byte
	for {
		b, ok := r.Peek(0)
		if !ok {
			return out
		}
		switch b {
		case C:
			out = append(out, I)
		case F:
			out = append(out, C)
		case P:
			out = append(out, F)
		case I:
			next, ok := r.Peek(1)
			if !ok || next != C {
				return out
			}
			r.Next()
			out = append(out, P)
		default:
			return out
		}
		r.Next()
	}
}
