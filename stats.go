package main

import (
	"fmt"
	"time"

	"github.com/automoto/parrybound/storage"
	"github.com/spf13/cobra"
)

var flagLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recently completed runs",
	Long: `Display the most recently completed levels from the run history.

Examples:
  parrybound stats
  parrybound stats --limit 50`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	rows := [][]string{{"Date", "Level", "Deaths", "Score", "Time"}}
	for _, run := range runs {
		rows = append(rows, []string{
			run.CompletedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d. %s", run.Level+1, run.LevelName),
			fmt.Sprint(run.Deaths),
			fmt.Sprint(run.Score),
			run.Duration.Round(100 * time.Millisecond).String(),
		})
	}
	fmt.Println(renderTable(rows))
	return nil
}
