package machine

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/simd"
)

// searcher finds a fixed needle in one contiguous chunk. The rope walk
// in search stitches chunk boundaries, so implementations only ever see
// flat slices.
type searcher interface {
	find(chunk []byte) int
}

// memmemSearcher is the default: the simd package's rare-base Memmem.
type memmemSearcher []byte

func (s memmemSearcher) find(chunk []byte) int {
	return simd.Memmem(chunk, s)
}

// acSearcher wraps a compiled Aho-Corasick automaton for long needles.
// Compilation is paid once per distinct needle; real Endo DNA reuses a
// small set of long markers throughout a run, so the engine caches
// these.
type acSearcher struct {
	auto *ahocorasick.Automaton
}

func (s *acSearcher) find(chunk []byte) int {
	m := s.auto.Find(chunk, 0)
	if m == nil {
		return -1
	}
	return m.Start
}

// searcherFor selects and, for long needles, caches the searcher for a
// needle.
func (e *Engine) searcherFor(needle []byte) searcher {
	if len(needle) < e.config.LongNeedleLen {
		return memmemSearcher(needle)
	}
	key := string(needle)
	if s, ok := e.searchers[key]; ok {
		e.stats.SearcherCacheHits++
		return s
	}
	var s searcher = memmemSearcher(needle)
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(needle)
	if auto, err := builder.Build(); err == nil {
		s = &acSearcher{auto: auto}
	}
	if len(e.searchers) >= e.config.SearcherCacheSize {
		// Full: drop the lot. Recurring needles recompile on their next
		// use; this is the same wholesale eviction the lazy DFA state
		// cache uses.
		e.searchers = make(map[string]searcher)
	}
	e.searchers[key] = s
	return s
}

// search scans d for the first occurrence of needle starting at or
// after from, inclusive. It returns the index just past the occurrence,
// or -1 if there is none before the end of the sequence.
//
// The scan walks the rope leaf by leaf, running the searcher over each
// flat chunk and stitching leaf boundaries with a needle-length window,
// so nothing is flattened and no allocation scales with the haystack.
func (e *Engine) search(d *dna.Seq, from int, needle []byte) int {
	q := len(needle)
	if q == 0 {
		return from
	}
	if q > d.Len()-from {
		return -1
	}
	e.stats.Searches++
	s := e.searcherFor(needle)

	var (
		it       = d.IterAt(from)
		pos      = from // absolute index of the current chunk's first byte
		carry    []byte // last q-1 bytes before pos
		boundary []byte // scratch for the stitched window
	)
	for ch := it.Chunk(); ch != nil; ch = it.NextChunk() {
		if len(carry) > 0 {
			// A match may straddle the leaf boundary: search the carried
			// tail stitched to this chunk's head. Only matches starting
			// inside the tail are new; later ones will be found in the
			// chunk scan.
			head := q - 1
			if head > len(ch) {
				head = len(ch)
			}
			boundary = append(append(boundary[:0], carry...), ch[:head]...)
			if idx := s.find(boundary); idx >= 0 && idx < len(carry) {
				return pos - len(carry) + idx + q
			}
		}
		if idx := s.find(ch); idx >= 0 {
			return pos + idx + q
		}
		if len(ch) >= q-1 {
			carry = append(carry[:0], ch[len(ch)-(q-1):]...)
		} else {
			carry = append(carry, ch...)
			if over := len(carry) - (q - 1); over > 0 {
				copy(carry, carry[over:])
				carry = carry[:q-1]
			}
		}
		pos += len(ch)
	}
	return -1
}
