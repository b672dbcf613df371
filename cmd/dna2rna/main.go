// dna2rna executes an Endo DNA program and writes the emitted RNA
// stream: the seven-symbol commands concatenated with no delimiters,
// the format the contest's renderer consumes.
//
//	$ dna2rna endo.dna >endo.rna
//	$ dna2rna --prefix-file selfcheck.prefix -o out.rna endo.dna
//
// Exit status is 0 when the DNA program terminates cleanly (or the
// step cap is hit), non-zero on I/O failure or an interpreter fault.
// File output is written through a temporary and renamed into place on
// success, so a partial stream is never left where a complete one is
// expected.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	endo "github.com/coregx/endo"
	"github.com/coregx/endo/rna"
)

var (
	flagPrefix     string
	flagPrefixFile string
	flagOutput     string
	flagMaxSteps   int
	flagLogEvery   int
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "dna2rna [flags] <dna-file>",
	Short: "Execute an Endo DNA program and emit its RNA stream",
	Long: `Execute an Endo DNA program and emit its RNA stream.

The input file holds the genome: base symbols {I, C, F, P}, with an
optional trailing newline. A prefix (--prefix or --prefix-file) is
spliced verbatim in front of the genome before the first rewrite step,
which is how the contest distributes puzzle inputs.
`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", "", "prefix string spliced before the genome")
	rootCmd.Flags().StringVar(&flagPrefixFile, "prefix-file", "", "read the prefix from a file")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write RNA to a file instead of stdout")
	rootCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0, "stop after this many rewrite steps (0 = unlimited)")
	rootCmd.Flags().IntVar(&flagLogEvery, "log-every", 1_000_000, "log progress every N steps")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress logging")
	rootCmd.MarkFlagsMutuallyExclusive("prefix", "prefix-file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dna2rna:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if !flagQuiet {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting
	log := logger.Sugar()

	prefix := []byte(flagPrefix)
	if flagPrefixFile != "" {
		p, err := os.ReadFile(flagPrefixFile)
		if err != nil {
			return err
		}
		prefix = bytes.TrimRight(p, "\r\n")
	}

	out, finish, err := openOutput(flagOutput)
	if err != nil {
		return err
	}

	sink := rna.NewStream(out)
	runErr := execute(log, args[0], prefix, sink)
	if runErr != nil {
		return multierr.Append(runErr, finish(false))
	}
	if err := sink.Flush(); err != nil {
		return multierr.Append(err, finish(false))
	}
	return finish(true)
}

func execute(log *zap.SugaredLogger, dnaPath string, prefix []byte, sink rna.Sink) error {
	ip, err := endo.NewFromFile(dnaPath, sink)
	if err != nil {
		return fmt.Errorf("genome: %w", err)
	}
	if len(prefix) > 0 {
		if err := ip.WithPrefix(prefix); err != nil {
			return fmt.Errorf("prefix: %w", err)
		}
	}
	log.Infow("starting", "genome", ip.DNA().Len(), "prefix", len(prefix))

	for {
		n := flagLogEvery
		if flagMaxSteps > 0 {
			rem := flagMaxSteps - ip.Stats().Steps
			if rem <= 0 {
				st := ip.Stats()
				log.Infow("step cap reached", "steps", st.Steps, "rna", st.RNA)
				return nil
			}
			if rem < n {
				n = rem
			}
		}
		done, err := ip.RunN(n)
		st := ip.Stats()
		if err != nil {
			return err
		}
		if done {
			log.Infow("finished",
				"steps", st.Steps,
				"matches", st.Matches,
				"failures", st.MatchFailures,
				"rna", st.RNA,
				"dna", ip.DNA().Len(),
			)
			return nil
		}
		log.Infow("progress", "steps", st.Steps, "dna", ip.DNA().Len(), "rna", st.RNA)
	}
}

// openOutput returns the RNA destination and a finisher. For a file the
// stream goes to a temporary alongside it; finish(true) renames it into
// place and finish(false) removes it.
func openOutput(path string) (io.Writer, func(ok bool) error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func(bool) error { return nil }, nil
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, nil, err
	}
	finish := func(ok bool) error {
		if !ok {
			return multierr.Append(f.Close(), os.Remove(tmp))
		}
		if err := f.Close(); err != nil {
			return multierr.Append(err, os.Remove(tmp))
		}
		return os.Rename(tmp, path)
	}
	return f, finish, nil
}
