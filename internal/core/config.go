package core

// RuntimeConfig contains the platform settings a game is started with.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in cells
	ScreenH  int    // Screen height in cells
	TickRate int    // Frames per second requested from the platform
	Seed     int64  // RNG seed for word selection (0 = time based)
	Player   string // Name results are recorded under
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Player:   "player",
	}
}

// RoundStats are the raw tallies of a finished round.
type RoundStats struct {
	TimeMs    int64 // Typed time in milliseconds
	Correct   int   // Correct keystrokes over all words
	Incorrect int   // Incorrect keystrokes over all words
}

// RoundResult is a scored round as shown on the game over screen.
type RoundResult struct {
	RoundStats
	Score    int
	Accuracy float64 // Displayed accuracy in percent
}
