package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds defaults read from the optional config file. Flags override
// every field.
type config struct {
	// Sheet is the default workbook sheet name.
	Sheet string `yaml:"sheet"`
	// Format is the default stdout format (table, json, csv, tsv).
	Format string `yaml:"format"`
	// Pretty enables pretty-printed JSON by default.
	Pretty bool `yaml:"pretty"`
}

// loadConfig reads ~/.config/gridtab/config.yaml if present. A missing or
// unreadable file yields zero-value defaults; a malformed file is ignored
// the same way so a bad config never blocks the CLI.
func loadConfig() config {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "gridtab", "config.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}
	}
	return cfg
}
