package machine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/endo/dna"
	"github.com/coregx/endo/rna"
)

func TestStepScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"skip_capture_splice",
			"IIPIPICPIICICIIFICCIFPPIICCFPC",
			"PICFC",
		},
		{
			"protected_reference",
			"IIPIPICPIICICIIFICCIFCCCPPIICCFPC",
			"PIICCFCFFPC",
		},
		{
			"capture_discarded",
			"IIPIPIICPIICIICCIICFCFC",
			"I",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := testEngine(t, tt.in)
			if err := e.Step(); err != nil {
				t.Fatalf("Step() error: %v", err)
			}
			if got := e.DNA().String(); got != tt.want {
				t.Errorf("DNA after step = %q, want %q", got, tt.want)
			}
			st := e.Stats()
			if st.Steps != 1 || st.Matches != 1 || st.MatchFailures != 0 {
				t.Errorf("stats = %+v", st)
			}
		})
	}
}

func TestStepMatchFailureKeepsParsedSuffix(t *testing.T) {
	// Pattern [Base(F)], empty template, remaining DNA "I": the match
	// fails, the parsed prefix stays consumed and nothing is spliced.
	e, _ := testEngine(t, "PIICIICI")
	if err := e.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if got := e.DNA().String(); got != "I" {
		t.Errorf("DNA after failed match = %q, want %q", got, "I")
	}
	st := e.Stats()
	if st.MatchFailures != 1 || st.Matches != 0 {
		t.Errorf("stats = %+v", st)
	}
}

func TestStepRNASurvivesMatchFailure(t *testing.T) {
	// RNA emitted while parsing is kept even though the step's match
	// fails afterwards.
	e, sink := testEngine(t, "IIIICFPICFPIICIICI")
	if err := e.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if sink.Len() != 1 || sink.Commands()[0] != "ICFPICF" {
		t.Errorf("RNA = %v, want [ICFPICF]", sink.Commands())
	}
	if e.Stats().MatchFailures != 1 {
		t.Errorf("stats = %+v", e.Stats())
	}
}

func TestRunTerminatesCleanly(t *testing.T) {
	// The second step runs out of DNA while parsing and the run ends.
	e, _ := testEngine(t, "IIPIPIICPIICIICCIICFCFC")
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if st := e.Stats(); st.Steps < 1 {
		t.Errorf("no steps executed: %+v", st)
	}
}

func TestRunStepLimit(t *testing.T) {
	// Empty pattern, empty template: every step trivially matches and
	// consumes six symbols. A hundred of them, capped at ten steps.
	cfg := DefaultConfig()
	cfg.MaxSteps = 10
	seq := dna.MustParse(strings.Repeat("IICIIC", 100))
	e := NewWithConfig(seq, &rna.List{}, cfg)
	if err := e.Run(); err != ErrStepLimit {
		t.Fatalf("Run() error = %v, want ErrStepLimit", err)
	}
	if e.Stats().Steps != 10 {
		t.Errorf("Steps = %d, want 10", e.Stats().Steps)
	}
}

func TestRunNMatchesRun(t *testing.T) {
	// Spec §5 determinism: the RNA stream and final DNA are identical
	// across yield granularities.
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		in := randomDNA(rng, 50+rng.Intn(500))

		cfg := DefaultConfig()
		cfg.MaxSpliceLen = 1 << 20 // random programs can ask for runaway protection

		runSink := &rna.List{}
		acfg := cfg
		acfg.MaxSteps = 200
		a := NewWithConfig(mustSeq(t, in), runSink, acfg)
		errA := a.Run()
		if errA == ErrStepLimit {
			errA = nil
		}

		stepSink := &rna.List{}
		b := NewWithConfig(mustSeq(t, in), stepSink, cfg)
		var errB error
		for i := 0; i < 200; i++ {
			done, err := b.RunN(1)
			if err != nil {
				errB = err
				break
			}
			if done {
				break
			}
		}

		if (errA == nil) != (errB == nil) {
			t.Fatalf("trial %d: Run err %v, RunN err %v", trial, errA, errB)
		}
		if runSink.Join() != stepSink.Join() {
			t.Fatalf("trial %d: RNA streams diverge", trial)
		}
		if a.DNA().String() != b.DNA().String() {
			t.Fatalf("trial %d: final DNA diverges", trial)
		}
	}
}

func mustSeq(t *testing.T, b []byte) *dna.Seq {
	t.Helper()
	s, err := dna.FromBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// TestRandomDNAInvariants drives random programs for a bounded number
// of steps and checks the interpreter's invariants at every step.
func TestRandomDNAInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 100; trial++ {
		in := randomDNA(rng, 30+rng.Intn(1000))
		sink := &rna.List{}
		cfg := DefaultConfig()
		cfg.MaxSpliceLen = 1 << 20
		e := NewWithConfig(mustSeq(t, in), sink, cfg)

		for step := 0; step < 100; step++ {
			err := e.Step()
			if err == ErrFinished {
				break
			}
			var fault *FaultError
			if errors.As(err, &fault) && errors.Is(err, ErrSpliceLimit) {
				// A random program ran into the splice limit; the run
				// terminates but everything emitted so far must still
				// satisfy the invariants.
				break
			}
			if err != nil {
				t.Fatalf("trial %d step %d: unexpected error %v", trial, step, err)
			}
			// The sequence holds only base symbols after every rewrite.
			if seqErr := dna.Validate(e.DNA().Bytes()); seqErr != nil {
				t.Fatalf("trial %d step %d: %v", trial, step, seqErr)
			}
			if e.DNA().Len() > 1<<20 {
				break
			}
		}
		// Every RNA command is exactly seven symbols of bases.
		for _, cmd := range sink.Commands() {
			if len(cmd) != rna.CommandLen {
				t.Fatalf("trial %d: RNA command %q has length %d", trial, cmd, len(cmd))
			}
			if err := dna.Validate([]byte(cmd)); err != nil {
				t.Fatalf("trial %d: RNA command %q: %v", trial, cmd, err)
			}
		}
	}
}

func BenchmarkStepSelfSustaining(b *testing.B) {
	// Pattern [Skip(0)], empty template: a minimal step that exercises
	// parser, matcher and splice without growing or shrinking the DNA
	// beyond the parsed prefix.
	var in []byte
	for i := 0; i < b.N+1; i++ {
		in = append(in, "IPPIICIIC"...)
	}
	seq, err := dna.FromBytes(in)
	if err != nil {
		b.Fatal(err)
	}
	var sink rna.Count
	e := New(seq, &sink)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
