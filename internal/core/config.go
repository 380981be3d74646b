package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // Run seed; 0 means the platform layer picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Dt returns the fixed tick duration in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30
	}
	return 1 / float64(c.TickRate)
}

// GameState is reported by the simulation to the platform after every tick.
type GameState struct {
	Score    int    // Legacy points total
	GameOver bool   // Whether the current run is over (Debrief)
	Paused   bool   // Whether the simulation is paused
	Phase    string // Run phase name: Harbor, Expedition or Debrief
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
