package machine

// Config controls engine behavior. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// MaxSteps caps the number of rewrite steps Run will execute.
	// 0 means unlimited.
	// Default: 0
	MaxSteps int

	// LongNeedleLen is the needle length at which Search switches from
	// the Memmem primitive to a compiled Aho-Corasick automaton. Long
	// needles recur across steps in real Endo DNA, so compilation
	// amortizes through the searcher cache.
	// Default: 32
	LongNeedleLen int

	// MaxSpliceLen caps the length a protected capture may grow to
	// during template expansion. Quoting a sequence containing P grows
	// it, so a reference with a large protection level explodes
	// Fibonacci-fashion; this limit turns that into a fault instead of
	// an out-of-memory, the same role DeterminizationLimit plays for
	// pathological regex patterns.
	// 0 means unlimited.
	// Default: 0
	MaxSpliceLen int

	// SearcherCacheSize caps the number of compiled searchers kept per
	// engine. When the cache fills it is discarded wholesale, the same
	// policy the lazy DFA uses for its state cache: recurring needles
	// repopulate it immediately, degenerate DNA cannot grow it without
	// bound.
	// Default: 64
	SearcherCacheSize int
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		MaxSteps:          0,
		MaxSpliceLen:      0,
		LongNeedleLen:     32,
		SearcherCacheSize: 64,
	}
}
