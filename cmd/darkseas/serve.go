package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/dark-seas/internal/platform/tui"
	"github.com/vovakirdan/dark-seas/internal/worldgen"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeSeed   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dark Seas SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH user name is a Legacy profile: points and upgrades follow the
name across connections. A profile can be at sea in one session at a time.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.darkseas/host_key

Examples:
  darkseas serve                           # Listen on :23234 with auto-generated key
  darkseas serve --ssh :2222               # Listen on port 2222
  darkseas serve --seed daily              # Everyone sails today's patch
  darkseas serve --db ./legacy.db          # Use specific database

Users can connect with:
  ssh ahab@localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSeed, "seed", "", "Patch seed for every session (random per run when empty)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "darkseas-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = viper.GetString("db")
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = viper.GetInt("fps")
	cfg.Game = game
	if flagServeSeed != "" {
		cfg.Seed = worldgen.ParseSeed(flagServeSeed, time.Now())
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Dark Seas SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
