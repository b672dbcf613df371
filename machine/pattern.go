package machine

import (
	"errors"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/rna"
)

// pkind discriminates pattern elements.
type pkind uint8

const (
	pBase   pkind = iota // match one literal symbol
	pSkip                // advance the cursor n symbols
	pSearch              // advance past the first occurrence of a literal
	pOpen                // push the cursor onto the group stack
	pClose               // pop the group stack, record a capture
)

// pitem is one element of a pattern program. Patterns are linear: no
// alternation, no repetition, so a flat slice is the whole compiled
// form.
type pitem struct {
	kind pkind
	base byte   // pBase
	n    int    // pSkip
	lit  []byte // pSearch
}

// parsePattern consumes a pattern program from r, emitting any RNA
// commands embedded in it. It returns ErrFinished when the DNA ends
// inside a required prefix, the clean end of the whole run, and a
// FaultError only for states the language leaves undefined.
//
// The encoding, dispatched on a 1-3 symbol prefix:
//
//	C, F, P  literal base (shifted down one: C encodes I, and so on)
//	IC       literal P
//	IP       skip, nat-encoded distance
//	IF       search; one symbol is discarded before the consts literal,
//	         a quirk the puzzle specification defines and we preserve
//	IIP      open group
//	IIC, IIF close group, or end of pattern at outer level
//	III      emit the next seven symbols as RNA
func (e *Engine) parsePattern(r *dna.Reader) ([]pitem, error) {
	var (
		items  []pitem
		level  int
		rnaBuf [rna.CommandLen]byte
	)
	for {
		b, ok := r.Next()
		if !ok {
			return nil, ErrFinished
		}
		switch b {
		case dna.C:
			items = append(items, pitem{kind: pBase, base: dna.I})
		case dna.F:
			items = append(items, pitem{kind: pBase, base: dna.C})
		case dna.P:
			items = append(items, pitem{kind: pBase, base: dna.F})
		case dna.I:
			b, ok = r.Next()
			if !ok {
				return nil, ErrFinished
			}
			switch b {
			case dna.C:
				items = append(items, pitem{kind: pBase, base: dna.P})
			case dna.P:
				n, err := dna.ReadNat(r)
				if err != nil {
					if errors.Is(err, dna.ErrShortDNA) {
						return nil, ErrFinished
					}
					return nil, &FaultError{Op: "pattern", Err: err}
				}
				items = append(items, pitem{kind: pSkip, n: n})
			case dna.F:
				if _, ok := r.Next(); !ok {
					return nil, ErrFinished
				}
				items = append(items, pitem{kind: pSearch, lit: dna.ReadConsts(r)})
			case dna.I:
				b, ok = r.Next()
				if !ok {
					return nil, ErrFinished
				}
				switch b {
				case dna.P:
					level++
					items = append(items, pitem{kind: pOpen})
				case dna.C, dna.F:
					if level == 0 {
						return items, nil
					}
					level--
					items = append(items, pitem{kind: pClose})
				case dna.I:
					if !r.ReadFull(rnaBuf[:]) {
						return nil, ErrFinished
					}
					if err := e.emit(rnaBuf[:]); err != nil {
						return nil, err
					}
				}
			}
		default:
			return nil, &FaultError{Op: "pattern", Err: dna.ErrAlphabet}
		}
	}
}
