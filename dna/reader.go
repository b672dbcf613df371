package dna

// Reader is a consuming cursor used by the pattern and template
// parsers. It reads the sequence symbol by symbol and counts what it
// has consumed; the interpreter drops the consumed prefix from the DNA
// once per step rather than once per symbol.
type Reader struct {
	s        *Seq
	it       *Iter
	consumed int
}

// Reader returns a cursor positioned at the start of the sequence.
func (s *Seq) Reader() *Reader {
	return &Reader{s: s, it: s.Iter()}
}

// Next returns the next symbol and consumes it, or ok == false at the
// end of the sequence.
func (r *Reader) Next() (b byte, ok bool) {
	b, ok = r.it.ReadByte()
	if ok {
		r.consumed++
	}
	return b, ok
}

// Peek returns the symbol k positions ahead of the cursor without
// consuming anything. k must be small; it is 0 or 1 everywhere in the
// interpreter.
func (r *Reader) Peek(k int) (b byte, ok bool) {
	if ch := r.it.Chunk(); k < len(ch) {
		return ch[k], true
	}
	i := r.consumed + k
	if i >= r.s.Len() {
		return 0, false
	}
	return r.s.At(i), true
}

// ReadFull consumes exactly len(p) symbols into p. It reports false,
// leaving p partially filled, if the sequence ends first.
func (r *Reader) ReadFull(p []byte) bool {
	for i := range p {
		b, ok := r.Next()
		if !ok {
			return false
		}
		p[i] = b
	}
	return true
}

// Consumed returns the number of symbols consumed so far.
func (r *Reader) Consumed() int { return r.consumed }
