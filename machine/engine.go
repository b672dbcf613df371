package machine

import (
	"errors"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/rna"
)

// Engine drives the rewrite loop over one DNA sequence. It owns the
// sequence and the sink for the duration of a run and is not safe for
// concurrent use; the interpreter is single-threaded by design.
type Engine struct {
	seq       *dna.Seq
	sink      rna.Sink
	config    Config
	stats     Stats
	searchers map[string]searcher
}

// New returns an engine over seq with the default configuration.
func New(seq *dna.Seq, sink rna.Sink) *Engine {
	return NewWithConfig(seq, sink, DefaultConfig())
}

// NewWithConfig returns an engine with a custom configuration.
func NewWithConfig(seq *dna.Seq, sink rna.Sink, config Config) *Engine {
	return &Engine{
		seq:       seq,
		sink:      sink,
		config:    config,
		searchers: make(map[string]searcher),
	}
}

// DNA returns the current sequence. Between steps this is the whole
// interpreter state.
func (e *Engine) DNA() *dna.Seq { return e.seq }

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats { return e.stats }

// Step executes one rewrite step: parse a pattern, parse a template,
// match the pattern against the remaining DNA and splice the expanded
// template in front of the suffix. It returns ErrFinished on clean
// termination and a FaultError on undefined states; a failed match is
// neither: the step is abandoned, the parsed prefix stays consumed,
// and the next step proceeds.
func (e *Engine) Step() error {
	r := e.seq.Reader()
	pat, err := e.parsePattern(r)
	if err != nil {
		return err
	}
	tmpl, err := e.parseTemplate(r)
	if err != nil {
		return err
	}
	d := e.seq.DropPrefix(r.Consumed())

	env, end, ok := e.match(pat, d)
	if !ok {
		e.seq = d
		e.stats.MatchFailures++
	} else {
		next, err := e.replace(tmpl, env, d.DropPrefix(end))
		if err != nil {
			return err
		}
		e.seq = next
		e.stats.Matches++
	}
	e.stats.Steps++
	return nil
}

// Run executes steps until the DNA program terminates. It returns nil
// on clean termination, ErrStepLimit if Config.MaxSteps was reached
// first, and a FaultError otherwise.
func (e *Engine) Run() error {
	for {
		if e.config.MaxSteps > 0 && e.stats.Steps >= e.config.MaxSteps {
			return ErrStepLimit
		}
		if err := e.Step(); err != nil {
			if errors.Is(err, ErrFinished) {
				return nil
			}
			return err
		}
	}
}

// RunN executes up to n steps, so a host can interleave its own work
// (progress logging, a repaint) without changing any observable
// ordering. done reports clean termination.
func (e *Engine) RunN(n int) (done bool, err error) {
	for ; n > 0; n-- {
		if err := e.Step(); err != nil {
			if errors.Is(err, ErrFinished) {
				return true, nil
			}
			return false, err
		}
	}
	return false, nil
}

// emit pushes one RNA command and counts it. A sink failure is fatal to
// the run.
func (e *Engine) emit(cmd []byte) error {
	if err := e.sink.Push(cmd); err != nil {
		return &FaultError{Op: "rna", Err: err}
	}
	e.stats.RNA++
	return nil
}
