package main

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/testhelper/th"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thdemo",
		Short: "thdemo - example test program reporting through th",
		Long: `thdemo runs a fixed set of sample checks and reports each one as a
PASS or FAIL line on stderr.

Results are also written to the file named by TH_RESULTS_FILE, or by
--results-file, which takes precedence.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	resultsFile := cmd.Flags().String("results-file", "", "File to mirror report lines into (overrides TH_RESULTS_FILE)")
	parallel := cmd.Flags().Bool("parallel", false, "Run the sample checks concurrently")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if *debugLogging {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		r := th.New(&th.Options{
			Console: cmd.ErrOrStderr(),
			Logger:  logger,
		})
		defer func() {
			if err := r.Close(); err != nil {
				logger.Warn("closing results file", "error", err)
			}
		}()

		if *resultsFile == "" {
			r.InitFromEnvironment()
		} else if !r.SetResultsFile(*resultsFile) {
			return fmt.Errorf("unable to open results file %q", *resultsFile)
		}

		passed, total := runChecks(r, samples, *parallel)
		logger.Debug("checks finished", "passed", passed, "total", total)

		if passed != total {
			return &TestFailureError{Failed: total - passed, Total: total}
		}
		return nil
	}

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
