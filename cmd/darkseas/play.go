package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/legacy"
	"github.com/vovakirdan/dark-seas/internal/platform/tui"
	"github.com/vovakirdan/dark-seas/internal/storage"
	"github.com/vovakirdan/dark-seas/internal/worldgen"
)

var (
	flagSeed       string
	flagConfig     string
	flagDifficulty string
	flagProfile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Put to sea",
	Long: `Open the harbor and start sailing.

Controls at sea:
  W/S or Up/Down     - Throttle
  A/D or Left/Right  - Steer
  E/Space (hold)     - Haul a survivor aboard
  Enter              - Dock and deliver (inside the harbor)
  X                  - Abandon the run
  P                  - Pause
  Q/Ctrl+C           - Quit

Seeds:
  (none)   - A new patch every run
  daily    - Today's patch, the same for everyone
  <number> - That exact patch
  <text>   - A patch derived from the text

Difficulty options:
  easy   - Less ice, shorter rescues, calmer wind
  normal - The default sea
  hard   - More ice, longer rescues, thirstier engine
  fixed  - No progression during a run

Examples:
  darkseas play
  darkseas play --seed daily
  darkseas play --difficulty hard --profile ishmael
  darkseas play --config ./my-sea.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Patch seed: number, text or \"daily\" (random when empty)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProfile, "profile", legacy.DefaultProfile, "Legacy profile name")
}

// loadGameConfig resolves --config and --difficulty.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.GameConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(io.Discard, "darkseas")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var seed int64
	if flagSeed != "" {
		seed = worldgen.ParseSeed(flagSeed, time.Now())
	}

	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open Legacy database: %v\n", err)
		// Continue without storage - progress is not kept
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting session", "profile", flagProfile, "seed", seed, "difficulty", flagDifficulty)

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: viper.GetInt("fps"),
			Seed:     seed,
		},
		Store:   store,
		Profile: flagProfile,
		Logger:  logger,
	})
}
