package machine

import "github.com/coregx/endo/dna"

// match executes pat against d from the front. On success it returns
// the capture environment and the cursor position just past the
// matched region. On failure (ok == false) the step is abandoned:
// captures are discarded and the caller leaves the DNA as the parsers
// left it: no cursor-based slicing, no splice.
//
// Captures are slices of d and share its storage; closing a group costs
// O(log n), never a copy.
func (e *Engine) match(pat []pitem, d *dna.Seq) (env []*dna.Seq, end int, ok bool) {
	var (
		i     int
		opens []int
		it    = d.Iter()
	)
	for _, p := range pat {
		switch p.kind {
		case pBase:
			b, more := it.ReadByte()
			if !more || b != p.base {
				return nil, 0, false
			}
			i++
		case pSkip:
			if p.n > d.Len()-i {
				return nil, 0, false
			}
			it.Discard(p.n)
			i += p.n
		case pSearch:
			m := e.search(d, i, p.lit)
			if m < 0 {
				return nil, 0, false
			}
			i = m
			it = d.IterAt(i)
		case pOpen:
			opens = append(opens, i)
		case pClose:
			o := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			env = append(env, d.Slice(o, i))
		}
	}
	return env, i, true
}

// replace expands tmpl against the capture environment and appends
// suffix, producing the next generation of the DNA. Adjacent literal
// symbols batch into shared buffers through the builder; captures and
// the suffix splice in as ropes.
func (e *Engine) replace(tmpl []titem, env []*dna.Seq, suffix *dna.Seq) (*dna.Seq, error) {
	var b dna.Builder
	for _, t := range tmpl {
		switch t.kind {
		case tBase:
			b.WriteByte(t.base)
		case tRef:
			if t.n >= len(env) {
				// An out-of-range reference emits nothing.
				continue
			}
			prot, err := e.protect(t.level, env[t.n])
			if err != nil {
				return nil, err
			}
			b.Append(prot)
		case tRefLen:
			n := 0
			if t.n < len(env) {
				n = env[t.n].Len()
			}
			b.Write(dna.Asnat(n))
		}
	}
	b.Append(suffix)
	return b.Seq(), nil
}

// protect is dna.Protect with the engine's splice limit applied after
// every quote level.
func (e *Engine) protect(level int, s *dna.Seq) (*dna.Seq, error) {
	if level == 0 || s.Len() == 0 {
		return s, nil
	}
	max := e.config.MaxSpliceLen
	for ; level > 0; level-- {
		q, err := dna.Quote(s)
		if err != nil {
			return nil, &FaultError{Op: "protect", Err: err}
		}
		s = q
		if max > 0 && s.Len() > max {
			return nil, &FaultError{Op: "protect", Err: ErrSpliceLimit}
		}
	}
	return s, nil
}
