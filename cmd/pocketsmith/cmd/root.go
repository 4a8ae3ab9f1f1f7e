// Package cmd provides CLI commands for pocketsmith.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	cfgFile string
	debug   bool
}

// newRootCmd builds the full command tree. A fresh tree is built per
// invocation so tests can execute commands with captured output.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pocketsmith",
		Short: "Interact with the PocketSmith personal finance API",
		Long: `pocketsmith is a CLI for the PocketSmith personal finance API.

It prints API results as JSON on standard output and errors as JSON on
standard error. Write operations (create, update, delete, budget refresh)
are disabled unless POCKETSMITH_ALLOW_WRITES=true is set.

Example:
  pocketsmith me
  pocketsmith transactions list-by-user 123 --start-date 2024-01-01
  POCKETSMITH_ALLOW_WRITES=true pocketsmith transactions update 456 --payee "New Payee"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			logLevel := slog.LevelInfo
			if opts.debug {
				logLevel = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(newMeCmd(opts))
	rootCmd.AddCommand(newAuthCmd(opts))
	rootCmd.AddCommand(newTransactionsCmd(opts))
	rootCmd.AddCommand(newCategoriesCmd(opts))
	rootCmd.AddCommand(newLabelsCmd(opts))
	rootCmd.AddCommand(newBudgetCmd(opts))
	rootCmd.AddCommand(newAttachmentsCmd(opts))

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. This is called by
// main.main().
func Execute() int {
	return runCommand(newRootCmd())
}

// runCommand executes a built command tree, converting errors to a JSON
// payload on stderr and a non-zero exit code. The auth status probe prints
// its own failure payload to stdout, so its sentinel only sets the exit
// code.
func runCommand(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNotAuthenticated) {
			return 1
		}
		writeErrorJSON(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}
