// Command matcher computes the hospital-optimal stable matching for a
// preference file, printing the proposal trace and then one "hospital
// student" line per hospital.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/internal/config"
	"github.com/katalvlaran/stablematch/internal/logging"
	"github.com/katalvlaran/stablematch/internal/report"
	"github.com/katalvlaran/stablematch/prefio"
	"github.com/katalvlaran/stablematch/stability"
)

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
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verify bool
		queue  string
	)

	cmd := &cobra.Command{
		Use:   "matcher <preferences-file>",
		Short: "Compute the hospital-optimal stable matching",
		Long: `matcher runs hospital-proposing Gale-Shapley on a preference file.

While running it prints one trace line per proposal; afterwards it prints the
matching, one "hospital student" pair per line (1-based).`,
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

			return match(stdout, log, cfg, args[0], queue, verify)
		},
	}
	// stdout carries only the trace and matching
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	// usage only for argument errors
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.SilenceUsage = false
		return err
	})
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(c, args); err != nil {
			c.SilenceUsage = false
			return err
		}
		return nil
	}

	fs := cmd.Flags()
	config.AddCommonFlags(fs)
	fs.Bool(config.FlagName(config.KeyTrace), config.Default().Trace, "print one line per proposal while matching")
	fs.String(config.FlagName(config.KeyOutput), config.Default().Output, "format of the final matching: text, json or yaml")
	fs.BoolVar(&verify, "verify", false, "re-check the computed matching for validity and stability")
	fs.StringVar(&queue, "queue", galeshapley.FIFO.String(), "order in which free hospitals propose: fifo or lifo")

	return cmd
}

func match(stdout io.Writer, log zerolog.Logger, cfg *config.Config, arg, queue string, verify bool) error {
	discipline, err := parseQueue(queue)
	if err != nil {
		return err
	}

	path, err := prefio.Resolve(arg, cfg.DataDir)
	if err != nil {
		return err
	}
	inst, err := prefio.LoadPreferences(path)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("n", inst.N()).Msg("preferences loaded")

	opts := []galeshapley.Option{galeshapley.WithQueueDiscipline(discipline)}
	if cfg.Trace && cfg.Output == config.OutputText {
		opts = append(opts, galeshapley.WithOnPropose(report.Trace(stdout)))
	}

	start := time.Now()
	res, err := galeshapley.Match(inst, opts...)
	if err != nil {
		return err
	}
	log.Info().
		Int("proposals", res.Proposals).
		Dur("elapsed", time.Since(start)).
		Str("queue", discipline.String()).
		Msg("matching complete")

	if err := report.WriteAssignment(stdout, cfg.Output, res); err != nil {
		return err
	}

	if verify {
		rep, err := stability.VerifyMatching(inst, res.Matching, stability.WithWorkers(cfg.Workers))
		if err != nil {
			return err
		}
		if err := rep.Err(); err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		log.Info().Str("verdict", rep.Verdict()).Msg("self-check passed")
	}

	return nil
}

func parseQueue(s string) (galeshapley.QueueDiscipline, error) {
	switch s {
	case galeshapley.FIFO.String():
		return galeshapley.FIFO, nil
	case galeshapley.LIFO.String():
		return galeshapley.LIFO, nil
	default:
		return 0, fmt.Errorf("unknown queue discipline %q (want fifo or lifo)", s)
	}
}
