// darkseas is a terminal boat survival game: sail a dark, iced-over sea,
// pick up survivors and bring them back to the harbor.
//
// Usage:
//
//	darkseas play            - Put to sea
//	darkseas serve           - Start SSH server for remote play
//	darkseas legacy          - Show Legacy Points and upgrades
//	darkseas legacy buy <id> - Buy an upgrade
//	darkseas runs            - Show recent voyages
//	darkseas seed [text]     - Print a patch seed
//
// Global flags (also read from DARKSEAS_* environment variables):
//
//	--fps <rate>         - Simulation tick rate (default: 30)
//	--db <path>          - Database path (default: ~/.darkseas/legacy.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darkseas",
	Short: "Dark Seas - Rescue survivors from a frozen sea",
	Long: `Dark Seas is a terminal survival game. Steer a small boat through
drifting ice in the dark, hold position next to survivors to haul them
aboard, and bring them back to the harbor before the fuel runs out.

Delivered survivors earn Legacy Points that buy permanent boat upgrades.

Available commands:
  play     - Put to sea
  serve    - Start SSH server for remote play
  legacy   - Show and spend Legacy Points
  runs     - Show recent voyages
  seed     - Print a patch seed

Examples:
  darkseas play
  darkseas play --seed daily --difficulty hard
  darkseas serve --ssh :2222
  darkseas legacy buy lamp-lens`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initSettings)

	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 30, "Simulation tick rate (ticks per second)")
	flags.String("db", "~/.darkseas/legacy.db", "Path to Legacy database")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file")

	for _, name := range []string{"fps", "db", "log-level", "log-file"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(legacyCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(seedCmd)
}

// initSettings lets DARKSEAS_FPS, DARKSEAS_LOG_LEVEL and friends override defaults.
func initSettings() {
	viper.SetEnvPrefix("darkseas")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if path := viper.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}
