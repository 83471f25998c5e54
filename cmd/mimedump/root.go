// Command mimedump parses an RFC 5322 / MIME message and prints its part
// tree. Adapted from the teacher's cmd/guerrillad (root.go + serve.go): the
// same cobra root-plus-subcommand layout and persistent --verbose flag, but
// with the daemon's serve/SIGHUP-reload machinery replaced by a single
// one-shot dump command, since a parser library has no long-running state
// to reload.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mimedump",
	Short: "dump the structure of an RFC 5322 / MIME message",
	Long: `mimedump parses a message (from a file or stdin) into its header,
body, and attachment tree, and prints it as text or JSON.`,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print out more debug information")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("mimedump failed")
	}
}
