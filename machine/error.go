// Package machine implements the Endo DNA-to-RNA rewriting engine: the
// pattern and template parsers, the matcher with capture groups, the
// template substitution that rebuilds the DNA prefix, and the driver
// loop that iterates rewrite steps until the DNA program ends.
//
// The engine owns the DNA sequence and an rna.Sink for the duration of
// a run. Execution is single-threaded and deterministic: the n-th RNA
// command emitted for a given input is identical across runs and across
// any RunN granularity.
package machine

import (
	"errors"
	"fmt"
)

// Sentinel results of driving the engine.
var (
	// ErrFinished reports clean termination: a parser ran out of DNA
	// while reading a required prefix. The RNA emitted so far is the
	// complete output. This is the normal way a run ends.
	ErrFinished = errors.New("machine: finished")

	// ErrStepLimit reports that Run stopped at the configured MaxSteps
	// before the DNA program terminated.
	ErrStepLimit = errors.New("machine: step limit reached")

	// ErrSpliceLimit reports that a protected capture outgrew
	// Config.MaxSpliceLen during template expansion. Surfaced wrapped
	// in a FaultError.
	ErrSpliceLimit = errors.New("machine: protected capture exceeds splice limit")
)

// FaultError reports an unrecoverable fault: the interpreter reached a
// state the DNA language leaves undefined (a non-base symbol inside the
// sequence), a protected capture outgrew Config.MaxSpliceLen, or the
// RNA sink failed. The run terminates; only the RNA
// already emitted is valid.
type FaultError struct {
	Op  string // "pattern", "template", "protect", "rna"
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("machine: fault in %s: %v", e.Op, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }
