package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vibelux/toolkit/pkg/errors"
)

// Config is the optional TOML configuration file. Flags override config
// values; config values override built-in defaults.
//
// Example:
//
//	output = "artifacts"
//
//	[loc]
//	extensions = [".ts", ".tsx", ".go"]
//	exclude = ["node_modules", "vendor"]
//	top = 20
type Config struct {
	// Output is the default directory for generated artifacts.
	Output string `toml:"output"`

	Loc LocConfig `toml:"loc"`
}

// LocConfig holds persistent line-counter filters.
type LocConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
	Top        int      `toml:"top"`
}

// loadConfig reads a config file. An empty path checks the default location
// (./vibelux.toml) and returns a zero config when absent; an explicit path
// must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "parse config %s", path)
	}
	return &cfg, nil
}

func defaultConfigPath() string {
	return filepath.Join(".", appName+".toml")
}
