package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"asa/pkg/interpreter"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "asa.toml"

type Settings struct {
	Verbose  bool `toml:"verbose"`
	NoColor  bool `toml:"no_color"`
	DumpTree bool `toml:"dump_tree"`
	MaxDepth int  `toml:"max_depth"`
}

// Default returns the settings used when no file exists
func Default() Settings {
	return Settings{MaxDepth: interpreter.DefaultMaxDepth}
}

// Load reads settings from path, or from DefaultFile when path is empty.
// A missing default file yields Default(); a missing explicit file and any
// decode failure are errors.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %q: %w", path, err)
	}

	return Decode(data)
}

// Decode parses TOML settings, filling unset fields from Default()
func Decode(data []byte) (Settings, error) {
	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	if settings.MaxDepth < 0 {
		return Settings{}, fmt.Errorf("parse settings: max_depth must not be negative, got %d", settings.MaxDepth)
	}

	return settings, nil
}
