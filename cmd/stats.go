// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devinvenable/github-stats/internal/config"
	"github.com/devinvenable/github-stats/internal/gateway"
	"github.com/devinvenable/github-stats/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats <login>...",
	Short: "Collects statistics for one or many GitHub users and outputs them as JSON",
	Long: `Fetches profile, repositories and recent activity for every given login,
aggregates the batch into comparison-ready analytics, and prints the full
result (per-user records, aggregate, chart colors) as JSON.

Per-user failures never abort the batch: failed users keep their slot in
every comparison array with zero values.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		session, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result := session.RunBatch(ctx, args)

		if warning := result.Aggregate.RateLimitWarning; warning != "" {
			color.New(color.FgYellow).Fprintln(os.Stderr, warning)
		}
		if result.Failed {
			color.New(color.FgRed).Fprintln(os.Stderr, result.Message)
		}

		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal result to JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))

		if result.Failed {
			os.Exit(1)
		}
	},
}

// newSession wires config, gateway and session for a command invocation.
func newSession(cmd *cobra.Command) (*usecase.Session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	fetcher, err := gateway.NewGitHubGateway(cfg.Token, cfg.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewSession(fetcher, logger), nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
