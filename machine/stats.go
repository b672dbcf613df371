package machine

// Stats counts observable engine activity. Counters are plain ints:
// the engine is single-threaded by contract, so there is nothing to
// synchronize.
type Stats struct {
	// Steps is the number of completed rewrite steps, successful or not.
	Steps int

	// Matches is the number of steps whose pattern matched and whose
	// template was spliced in.
	Matches int

	// MatchFailures is the number of steps abandoned by a failing
	// Base, Skip or Search element. Not an error: the parsers' prefix
	// consumption stands and the run continues.
	MatchFailures int

	// RNA is the number of seven-symbol commands emitted.
	RNA int

	// Searches is the number of Search pattern elements that scanned the
	// DNA. An empty needle, or one longer than the remaining DNA, is
	// resolved without a scan and not counted.
	Searches int

	// SearcherCacheHits counts Search needles served by an already
	// compiled searcher.
	SearcherCacheHits int
}
