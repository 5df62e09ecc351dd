// Package cmd wires the parsec command-line demo: a small cobra command
// tree exercising the library's run entry points, canonical error
// rendering, and leveled logging against real files.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

// Root builds the top-level `parsec` command and attaches its
// subcommands. Each invocation gets a fresh command tree with its own
// flag values, so tests can construct and run one independently; the
// logger whose level --verbose sets is package-level and shared.
func Root() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "parsec",
		Short:         "Inspect text against the parsec combinator primitives",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace each primitive's attempt at debug level")
	root.AddCommand(newCheckCommand())

	return root
}
