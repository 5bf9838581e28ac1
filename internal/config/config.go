// Package config provides YAML-based game configuration loading for
// tile48.
package config

import "fmt"

// Config contains all user-tunable settings for the game.
type Config struct {
	Spawn Spawn `yaml:"spawn"`
	Game  Game  `yaml:"game"`
	UI    UI    `yaml:"ui"`
}

// Spawn controls tile spawning after each effective move.
type Spawn struct {
	// FourProbability is the chance a spawned tile is a 4 instead of
	// a 2. Must be in [0, 1).
	FourProbability float64 `yaml:"four_probability"`
}

// Game controls gameplay features.
type Game struct {
	Undo     bool `yaml:"undo"`
	Autosave bool `yaml:"autosave"`
}

// UI controls presentation.
type UI struct {
	Bell       bool `yaml:"bell"`
	ColorTiles bool `yaml:"color_tiles"`
}

// Validate checks value ranges. Called after every load.
func (c Config) Validate() error {
	p := c.Spawn.FourProbability
	if p < 0 || p >= 1 {
		return fmt.Errorf("config: spawn.four_probability %v out of range [0, 1)", p)
	}
	return nil
}
