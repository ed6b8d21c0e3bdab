package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devinvenable/github-stats/internal/domain"
	"github.com/devinvenable/github-stats/internal/usecase"
)

// activityOutput is the JSON shape printed by the activity command.
type activityOutput struct {
	Login     string            `json:"login"`
	Series    domain.DateSeries `json:"series"`
	Languages map[string]int    `json:"languages"`
	CachedAt  time.Time         `json:"cached_at"`
}

var activityCmd = &cobra.Command{
	Use:   "activity <login>",
	Short: "Shows one user's commit series and language histogram, optionally date-restricted",
	Long: `Resolves a single user (served from the session cache when possible) and
prints the per-day commit series together with a language histogram.

With --from/--to, the series is restricted to the given calendar-day range
and the histogram is recomputed from repositories last updated in that
range. An inverted range yields empty output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		login := args[0]

		const inputDateLayout = "2006/01/02"
		var from, to time.Time
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		ranged := fromStr != "" || toStr != ""
		if ranged {
			var err error
			to = time.Now()
			if fromStr != "" {
				if from, err = time.ParseInLocation(inputDateLayout, fromStr, time.Local); err != nil {
					fmt.Fprintf(os.Stderr, "Invalid --from date format. Please use YYYY/MM/DD. Error: %v\n", err)
					os.Exit(1)
				}
			}
			if toStr != "" {
				if to, err = time.ParseInLocation(inputDateLayout, toStr, time.Local); err != nil {
					fmt.Fprintf(os.Stderr, "Invalid --to date format. Please use YYYY/MM/DD. Error: %v\n", err)
					os.Exit(1)
				}
			}
		}

		session, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		result := session.RunBatch(ctx, []string{login})
		entry, ok := session.Cache().Get(login)
		if !ok {
			message := result.Message
			if rec := result.Records[login]; rec != nil && rec.Err != "" {
				message = rec.Err
			}
			fmt.Fprintf(os.Stderr, "Failed to resolve %s: %s\n", login, message)
			os.Exit(1)
		}

		out := activityOutput{
			Login:     login,
			Series:    entry.CommitSeries,
			Languages: usecase.LanguageHistogram(entry.Repositories),
			CachedAt:  entry.CachedAt,
		}
		if ranged {
			out.Series = usecase.FilterSeriesByDate(entry.CommitSeries, from, to)
			out.Languages = usecase.FilterLanguagesByDate(entry.Repositories, from, to)
		}

		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal result to JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.Flags().String("from", "", "Start of the date range (YYYY/MM/DD)")
	activityCmd.Flags().String("to", "", "End of the date range (YYYY/MM/DD)")
}
