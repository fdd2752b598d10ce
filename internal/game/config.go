package game

import "time"

// Default board and pacing parameters, matching the classic 640x480
// window divided into 20px cells at 20 frames per second.
const (
	DefaultWidth    = 32
	DefaultHeight   = 24
	DefaultTickRate = 20
)

// Config holds game configuration options.
type Config struct {
	// Board dimensions in cells.
	Width  int
	Height int

	// TickRate is the number of simulation ticks per second.
	TickRate int

	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a time-derived seed will be used.
	Seed int64
}

// withDefaults fills unset fields with the default values.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// seed returns the configured seed, or a time-derived one when unset.
func (c Config) seed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
