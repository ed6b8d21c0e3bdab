// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// logger is shared by all commands; its level is driven by --verbose.
var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "github-stats",
	Short: "A CLI tool to collect and compare GitHub user statistics.",
	Long: `github-stats fetches profiles, repositories and recent activity for one
or many GitHub users and derives comparative analytics: totals, per-user
comparisons, language distribution and a commit time series.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: .github-stats.yaml in CWD or $HOME)")
}
