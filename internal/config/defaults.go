package config

import (
	_ "embed"
)

//go:embed defaults/tile48.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Spawn: Spawn{
			FourProbability: 0.1,
		},
		Game: Game{
			Undo:     true,
			Autosave: true,
		},
		UI: UI{
			Bell:       true,
			ColorTiles: true,
		},
	}
}
