package dna

// Iter is a forward cursor over the leaves of a sequence. It exposes
// the underlying chunks directly so scanning code (substring search,
// quoting, output dumps) can run flat-slice inner loops instead of
// paying a tree descent per symbol.
//
// An Iter is never invalidated, since sequences are immutable, but it
// is a one-shot forward cursor; create a new one to rewind.
type Iter struct {
	stack []*node
	rest  []byte
}

// Iter returns a cursor positioned at the start of the sequence.
func (s *Seq) Iter() *Iter { return s.IterAt(0) }

// IterAt returns a cursor positioned at index i. i == Len() yields an
// exhausted cursor.
func (s *Seq) IterAt(i int) *Iter {
	if i < 0 || i > s.Len() {
		panic("dna: iterator index out of range")
	}
	it := &Iter{}
	n := s.root
	for n != nil && !n.isLeaf() {
		if ll := n.left.length; i < ll {
			it.stack = append(it.stack, n.right)
			n = n.left
		} else {
			i -= ll
			n = n.right
		}
	}
	if n != nil {
		it.rest = n.leaf[i:]
	}
	return it
}

// Chunk returns the unread portion of the current leaf, advancing to
// the next leaf if the current one is exhausted. It returns nil at the
// end of the sequence.
func (it *Iter) Chunk() []byte {
	for len(it.rest) == 0 {
		if len(it.stack) == 0 {
			return nil
		}
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		for !n.isLeaf() {
			it.stack = append(it.stack, n.right)
			n = n.left
		}
		it.rest = n.leaf
	}
	return it.rest
}

// NextChunk discards the rest of the current leaf and returns the next
// one, or nil at the end of the sequence.
func (it *Iter) NextChunk() []byte {
	it.rest = nil
	return it.Chunk()
}

// Discard consumes n symbols, reporting false if the sequence ends
// first. Skipping within the current leaf is O(1); only leaf
// boundaries cost anything.
func (it *Iter) Discard(n int) bool {
	for n > 0 {
		ch := it.Chunk()
		if ch == nil {
			return false
		}
		if n < len(ch) {
			it.rest = ch[n:]
			return true
		}
		n -= len(ch)
		it.rest = nil
	}
	return true
}

// ReadByte returns the next symbol, or ok == false at the end of the
// sequence.
func (it *Iter) ReadByte() (b byte, ok bool) {
	ch := it.Chunk()
	if ch == nil {
		return 0, false
	}
	it.rest = ch[1:]
	return ch[0], true
}
