package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds grammexctl's defaults, loadable from a TOML file and
// overridable by flags. Layering mirrors the config-then-flags pattern a
// small interpreter CLI uses: load what's on disk, then let the command
// line win.
type Config struct {
	Color       string `toml:"color"`        // "auto", "always", "never"
	HistoryFile string `toml:"history_file"` // readline history path, "" disables history
}

func defaultConfig() Config {
	return Config{Color: "auto", HistoryFile: ""}
}

// loadConfig reads path as TOML into a copy of defaultConfig(). A missing
// file is not an error: the caller runs with defaults plus whatever flags
// were passed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
