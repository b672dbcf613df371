package machine

import (
	"errors"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/rna"
)

// tkind discriminates template elements.
type tkind uint8

const (
	tBase   tkind = iota // emit one literal symbol
	tRef                 // emit a capture, protected level times
	tRefLen              // emit the nat encoding of a capture's length
)

// titem is one element of a template program.
type titem struct {
	kind  tkind
	base  byte // tBase
	n     int  // capture index for tRef and tRefLen
	level int  // protection level for tRef
}

// parseTemplate consumes a template program from r, emitting any
// embedded RNA commands. Termination behavior matches parsePattern.
//
// The encoding:
//
//	C, F, P  literal base, shifted down one
//	IC       literal P
//	IF, IP   capture reference: nat protection level, then nat index
//	IIP      capture length, nat index
//	IIC, IIF end of template
//	III      emit the next seven symbols as RNA
func (e *Engine) parseTemplate(r *dna.Reader) ([]titem, error) {
	var (
		items  []titem
		rnaBuf [rna.CommandLen]byte
	)
	readNat := func() (int, error) {
		n, err := dna.ReadNat(r)
		if err != nil {
			if errors.Is(err, dna.ErrShortDNA) {
				return 0, ErrFinished
			}
			return 0, &FaultError{Op: "template", Err: err}
		}
		return n, nil
	}
	for {
		b, ok := r.Next()
		if !ok {
			return nil, ErrFinished
		}
		switch b {
		case dna.C:
			items = append(items, titem{kind: tBase, base: dna.I})
		case dna.F:
			items = append(items, titem{kind: tBase, base: dna.C})
		case dna.P:
			items = append(items, titem{kind: tBase, base: dna.F})
		case dna.I:
			b, ok = r.Next()
			if !ok {
				return nil, ErrFinished
			}
			switch b {
			case dna.C:
				items = append(items, titem{kind: tBase, base: dna.P})
			case dna.F, dna.P:
				level, err := readNat()
				if err != nil {
					return nil, err
				}
				n, err := readNat()
				if err != nil {
					return nil, err
				}
				items = append(items, titem{kind: tRef, n: n, level: level})
			case dna.I:
				b, ok = r.Next()
				if !ok {
					return nil, ErrFinished
				}
				switch b {
				case dna.C, dna.F:
					return items, nil
				case dna.P:
					n, err := readNat()
					if err != nil {
						return nil, err
					}
					items = append(items, titem{kind: tRefLen, n: n})
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
			return nil, &FaultError{Op: "template", Err: dna.ErrAlphabet}
		}
	}
}
