package dna

// Quote escapes every symbol of s one level: I becomes C, C becomes F,
// F becomes P, and P becomes the pair IC. The result is one symbol
// longer than s for every P in s. A non-base symbol is an invariant
// violation and returns ErrAlphabet.
func Quote(s *Seq) (*Seq, error) {
	var b Builder
	it := s.Iter()
	for ch := it.Chunk(); ch != nil; ch = it.NextChunk() {
		for _, c := range ch {
			switch c {
			case I:
				b.WriteByte(C)
			case C:
				b.WriteByte(F)
			case F:
				b.WriteByte(P)
			case P:
				b.WriteByte(I)
				b.WriteByte(C)
			default:
				return nil, ErrAlphabet
			}
		}
	}
	return b.Seq(), nil
}

// Protect applies Quote level times to s. Protect(0, s) returns s
// itself. The loop is iterative: protection levels in real DNA reach
// values that would overflow any call stack.
func Protect(level int, s *Seq) (*Seq, error) {
	if s.Len() == 0 {
		// Quoting the empty sequence is the identity; real DNA leans on
		// this with protection levels in the millions.
		return s, nil
	}
	for ; level > 0; level-- {
		q, err := Quote(s)
		if err != nil {
			return nil, err
		}
		s = q
	}
	return s, nil
}
