// Package endo executes Endo DNA programs from the ICFP 2007 contest:
// a self-modifying string rewriting system over the four-letter
// alphabet {I, C, F, P} that transforms a DNA string into a stream of
// seven-symbol RNA commands.
//
// Each rewrite step parses a pattern and a template off the front of
// the DNA, matches the pattern against the rest (capturing subranges),
// and splices the expanded template back in front. DNA strings reach
// hundreds of megabytes across billions of steps, so the interpreter
// runs on a rope sequence with O(log n) prefix drop and splice (package
// dna) and strategy-selected substring search (packages machine and
// simd).
//
// Basic usage:
//
//	var sink rna.List
//	ip, err := endo.New(genome, &sink)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ip.Run(); err != nil {
//	    log.Fatal(err)
//	}
//	// sink.Commands() is the emitted RNA, in order.
//
// The RNA stream feeds a renderer (not part of this module) that draws
// the contest's 600x600 image.
package endo

import (
	"bytes"
	"os"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/machine"
	"github.com/coregx/endo/rna"
)

// Interp is one interpreter run: a DNA sequence, a sink, and the
// rewrite engine over them. Not safe for concurrent use.
type Interp struct {
	engine *machine.Engine
	sink   rna.Sink
	config machine.Config
}

// New returns an interpreter over genome with the default
// configuration. genome is validated against the base alphabet and not
// copied; the caller must not modify it during the run.
func New(genome []byte, sink rna.Sink) (*Interp, error) {
	return NewWithConfig(genome, sink, machine.DefaultConfig())
}

// NewFromFile reads a genome from a file and returns an interpreter
// over it with the default configuration. The file holds base symbols
// with an optional trailing newline, the format the contest
// distributes.
func NewFromFile(path string, sink rna.Sink) (*Interp, error) {
	genome, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(bytes.TrimRight(genome, "\r\n"), sink)
}

// NewWithConfig returns an interpreter with a custom engine
// configuration.
func NewWithConfig(genome []byte, sink rna.Sink, config machine.Config) (*Interp, error) {
	seq, err := dna.FromBytes(genome)
	if err != nil {
		return nil, err
	}
	return &Interp{
		engine: machine.NewWithConfig(seq, sink, config),
		sink:   sink,
		config: config,
	}, nil
}

// WithPrefix splices a prefix in front of the genome; the contest
// distributed puzzle prefixes this way. Call it before the first step;
// it resets the engine.
func (ip *Interp) WithPrefix(prefix []byte) error {
	p, err := dna.FromBytes(prefix)
	if err != nil {
		return err
	}
	ip.engine = machine.NewWithConfig(p.Concat(ip.engine.DNA()), ip.sink, ip.config)
	return nil
}

// Run executes the program to completion. It returns nil on clean
// termination (the DNA program ended), machine.ErrStepLimit if the
// configured step cap was reached, and a machine.FaultError otherwise.
func (ip *Interp) Run() error {
	return ip.engine.Run()
}

// RunN executes up to n rewrite steps and reports whether the program
// terminated. Hosts can interleave progress reporting or a repaint
// freely: the RNA stream is identical across granularities.
func (ip *Interp) RunN(n int) (done bool, err error) {
	return ip.engine.RunN(n)
}

// Step executes a single rewrite step. It returns machine.ErrFinished
// on clean termination and a machine.FaultError on undefined states; a
// failed match is neither and the run continues.
func (ip *Interp) Step() error {
	return ip.engine.Step()
}

// DNA returns the current DNA sequence.
func (ip *Interp) DNA() *dna.Seq {
	return ip.engine.DNA()
}

// Stats returns a snapshot of the engine counters.
func (ip *Interp) Stats() machine.Stats {
	return ip.engine.Stats()
}

// Exec runs genome, with an optional prefix prepended, to completion
// and returns the final engine statistics. It is the one-call form of
// New, WithPrefix and Run.
func Exec(genome, prefix []byte, sink rna.Sink) (machine.Stats, error) {
	ip, err := New(genome, sink)
	if err != nil {
		return machine.Stats{}, err
	}
	if len(prefix) > 0 {
		if err := ip.WithPrefix(prefix); err != nil {
			return machine.Stats{}, err
		}
	}
	err = ip.Run()
	return ip.Stats(), err
}
