package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dark-seas/internal/worldgen"
)

var seedCmd = &cobra.Command{
	Use:   "seed [text]",
	Short: "Print a patch seed",
	Long: `Print today's daily seed, or the seed a piece of text maps to.
Pass the result to 'darkseas play --seed' to sail that patch.

Examples:
  darkseas seed
  darkseas seed "north passage"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSeed,
}

func runSeed(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		now := time.Now()
		fmt.Printf("Daily seed for %s: %d\n", now.Format("2006-01-02"), worldgen.DailySeed(now))
		return
	}
	text := strings.TrimSpace(args[0])
	fmt.Printf("Seed for %q: %d\n", text, worldgen.SeedFromString(text))
}
