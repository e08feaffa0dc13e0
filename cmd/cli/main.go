package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/QTest-hq/rtjunit/internal/config"
	"github.com/QTest-hq/rtjunit/internal/report"
)

var version = "dev"

const usage = "Usage: rtjunit <inputJson> <outputXml>"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks errors caused by how the command was invoked
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(stderr, uerr)
			fmt.Fprintln(stderr, usage)
			return exitUsage
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	return exitOK
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rtjunit <inputJson> <outputXml>",
		Short: "Convert red-team results to JUnit XML",
		Long: `rtjunit reads a promptfoo red-team result document and writes a JUnit XML
test suite with one testcase per evaluated case, for CI dashboards.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return &usageError{fmt.Errorf("expected 2 arguments, got %d", len(args))}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := report.Run(config.Default(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, summary.Discovery())
			fmt.Fprintln(out, summary.Wrote())
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}
