// Command prefgen writes a random, valid preference file of size N.
//
// The same N and --seed always produce the same file. With --out the file is
// written to that path (gzip-compressed when it ends in ".gz"); otherwise it
// goes to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/internal/config"
	"github.com/katalvlaran/stablematch/internal/logging"
	"github.com/katalvlaran/stablematch/prefio"
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
		seed int64
		out  string
	)

	cmd := &cobra.Command{
		Use:           "prefgen <n>",
		Short:         "Generate a random preference file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("size must be a non-negative integer, got %q", args[0])
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(stderr, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}

			inst, err := core.RandomInstance(n, seed)
			if err != nil {
				return err
			}

			if out == "" {
				return prefio.WritePreferences(stdout, inst)
			}
			w, err := prefio.Create(out)
			if err != nil {
				return err
			}
			if err := prefio.WritePreferences(w, inst); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			log.Info().Str("path", out).Int("n", n).Int64("seed", seed).Msg("preferences written")

			return nil
		},
	}
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(c, args); err != nil {
			c.SilenceUsage = false
			return err
		}
		return nil
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	config.AddCommonFlags(fs)
	fs.Int64Var(&seed, "seed", 1, "random seed; equal seeds give equal files")
	fs.StringVarP(&out, "out", "o", "", "output path (stdout if empty; .gz compresses)")

	return cmd
}
