// Command verifier checks a matching file against a preference file and
// reports whether the matching is valid and stable.
//
// The exit status is 0 only for a valid and stable matching; an invalid or
// unstable matching, or any I/O or parse error, exits 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/internal/config"
	"github.com/katalvlaran/stablematch/internal/logging"
	"github.com/katalvlaran/stablematch/internal/report"
	"github.com/katalvlaran/stablematch/prefio"
	"github.com/katalvlaran/stablematch/stability"
)

// errRejected signals a completed check whose verdict was not valid and stable.
var errRejected = errors.New("matching rejected")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRejected):
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifier <preferences-file> <matching-file>",
		Short: "Check a matching for validity and stability",
		Long: `verifier checks that a matching is a perfect one-to-one assignment
consistent with the preference file, then looks for blocking pairs.

Each path is tried as given and then under the data directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(stderr, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}
			if cfg.File != "" {
				log.Debug().Str("file", cfg.File).Msg("config loaded")
			}

			return verify(stdout, log, cfg, args[0], args[1])
		},
	}
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(c, args); err != nil {
			c.SilenceUsage = false
			return err
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.SilenceUsage = false
		return err
	})
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	config.AddCommonFlags(fs)
	fs.String(config.FlagName(config.KeyOutput), config.Default().Output, "report format: text, json or yaml")
	fs.Int(config.FlagName(config.KeyWorkers), config.Default().Workers, "goroutines used for the blocking-pair scan")

	return cmd
}

func verify(stdout io.Writer, log zerolog.Logger, cfg *config.Config, prefArg, matchArg string) error {
	prefPath, err := prefio.Resolve(prefArg, cfg.DataDir)
	if err != nil {
		return err
	}
	matchPath, err := prefio.Resolve(matchArg, cfg.DataDir)
	if err != nil {
		return err
	}

	inst, err := prefio.LoadPreferences(prefPath)
	if err != nil {
		return err
	}
	pairs, err := prefio.LoadMatching(matchPath)
	if err != nil {
		return err
	}
	log.Debug().
		Str("preferences", prefPath).
		Str("matching", matchPath).
		Int("n", inst.N()).
		Int("pairs", len(pairs)).
		Msg("inputs loaded")

	start := time.Now()
	rep, err := stability.Verify(inst, stability.CandidateFromPairs(pairs), stability.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	log.Info().
		Str("verdict", rep.Verdict()).
		Int("violations", len(rep.Violations)).
		Int("blocking_pairs", len(rep.BlockingPairs)).
		Dur("elapsed", time.Since(start)).
		Msg("verification complete")

	if err := report.WriteVerification(stdout, cfg.Output, prefPath, matchPath, rep); err != nil {
		return err
	}
	if !rep.Valid || !rep.Stable {
		return errRejected
	}

	return nil
}
