package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

var flagLegacyProfile string

var legacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Show Legacy Points and upgrades",
	Long: `Display a profile's Legacy Points, the upgrades it has fitted and the
full upgrade catalog.

Examples:
  darkseas legacy
  darkseas legacy --profile ahab
  darkseas legacy buy hull-plating`,
	Args: cobra.NoArgs,
	RunE: runLegacy,
}

var legacyBuyCmd = &cobra.Command{
	Use:   "buy <upgrade-id>",
	Short: "Buy an upgrade with Legacy Points",
	Args:  cobra.ExactArgs(1),
	RunE:  runLegacyBuy,
}

func init() {
	legacyCmd.PersistentFlags().StringVar(&flagLegacyProfile, "profile", legacy.DefaultProfile, "Legacy profile name")
	legacyCmd.AddCommand(legacyBuyCmd)
}

// openLedger opens the database and loads the profile's ledger.
func openLedger(cfg config.GameConfig) (*storage.Store, *legacy.Ledger, error) {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening Legacy database: %w", err)
	}
	return store, legacy.NewLedger(store, flagLegacyProfile, cfg.Legacy, nil), nil
}

func runLegacy(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	store, ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Legacy - %s\n", ledger.Profile())
	fmt.Println()
	fmt.Printf("Points: %s\n", humanize.Comma(int64(ledger.Points())))

	if stats, err := store.GetRunStats(ledger.Profile()); err == nil && stats.Runs > 0 {
		fmt.Printf("Voyages: %d (%d sank), %d rescued, best run %d, last sailed %s\n",
			stats.Runs, stats.Sank, stats.TotalRescued, stats.BestRescued, humanize.Time(stats.LastPlayed))
	}
	fmt.Println()

	// Print header
	fmt.Printf("  %-16s  %-6s  %5s  %-5s  %s\n", "Upgrade", "Type", "Cost", "Owned", "Description")
	fmt.Printf("  %-16s  %-6s  %5s  %-5s  %s\n", "-------", "----", "----", "-----", "-----------")

	for _, u := range cfg.Upgrades {
		owned := fmt.Sprintf("%d", ledger.Count(u.ID))
		if !u.Stackable && ledger.Count(u.ID) > 0 {
			owned = "max"
		}
		fmt.Printf("  %-16s  %-6s  %5d  %-5s  %s\n", u.ID, u.Type, u.LegacyCost, owned, u.Description)
	}

	fmt.Println()
	fmt.Println("Run 'darkseas legacy buy <upgrade>' to fit an upgrade.")
	return nil
}

func runLegacyBuy(_ *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	u, ok := cfg.Upgrade(args[0])
	if !ok {
		return fmt.Errorf("unknown upgrade %q (run 'darkseas legacy' to see the catalog)", args[0])
	}

	store, ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if !ledger.Purchase(u) {
		if !u.Stackable && ledger.Count(u.ID) > 0 {
			return fmt.Errorf("%s is already fitted", u.ID)
		}
		return fmt.Errorf("not enough Legacy for %s: have %d, need %d", u.ID, ledger.Points(), u.LegacyCost)
	}

	fmt.Printf("Fitted %s. %d Legacy Points left.\n", u.ID, ledger.Points())
	return nil
}
