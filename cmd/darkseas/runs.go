package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

var (
	flagRunsProfile string
	flagRunsLimit   int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent voyages",
	Long: `Display the most recent runs of a profile, newest first.

Examples:
  darkseas runs
  darkseas runs --profile ahab --limit 20`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsProfile, "profile", legacy.DefaultProfile, "Legacy profile name")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening Legacy database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsProfile, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent voyages - %s\n", flagRunsProfile)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No voyages logged yet.")
		fmt.Println()
		fmt.Println("Run 'darkseas play' to put to sea.")
		return nil
	}

	// Print header
	fmt.Printf("  %-14s  %-9s  %7s  %6s  %8s  %s\n", "When", "Result", "Rescued", "Legacy", "Length", "Seed")
	fmt.Printf("  %-14s  %-9s  %7s  %6s  %8s  %s\n", "----", "------", "-------", "------", "------", "----")

	for _, r := range runs {
		length := time.Duration(r.Duration * float64(time.Second)).Round(time.Second)
		fmt.Printf("  %-14s  %-9s  %7d  %+6d  %8s  %d\n",
			humanize.Time(r.CreatedAt), r.Result, r.Rescued, r.PointsEarned, length, r.Seed)
	}
	return nil
}
