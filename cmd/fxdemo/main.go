// Command fxdemo runs effect pipelines over image files.
//
// Usage:
//
//	fxdemo apply -p pipeline.yaml [--frames N] [--jobs N] [--out DIR] images...
//	fxdemo kinds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	var closeLog func() error

	root := &cobra.Command{
		Use:          "fxdemo",
		Short:        "Apply effect pipelines to images",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := setupLogging(cmd.ErrOrStderr(), flags.logLevel, flags.logFile)
			if err != nil {
				return err
			}
			closeLog = c
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if closeLog == nil {
				return nil
			}
			return closeLog()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")

	root.AddCommand(newApplyCmd())
	root.AddCommand(newKindsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
