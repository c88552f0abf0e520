// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// cliConfig holds the handful of settings an aigfm.ini file may override.
// None of them has a command-line flag; loadConfig reads them from the
// file alone.
type cliConfig struct {
	LogLevel  string `ini:"log_level"`
	OutputDir string `ini:"output_dir"`
}

// defaultConfig returns the settings used when no config file is given.
func defaultConfig() cliConfig {
	return cliConfig{LogLevel: "info", OutputDir: "."}
}

// loadConfig reads an INI file of the form:
//
//	[aigfm]
//	log_level = info
//	output_dir = .
//
// An empty path is not an error: loadConfig returns defaultConfig().
// A non-empty path that cannot be loaded or mapped (including a file that
// does not exist) returns an error.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return cfg, fmt.Errorf("aigfm: loading config %s: %w", path, err)
	}
	if err := f.Section("aigfm").MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("aigfm: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// parseLevel resolves a logrus level name, falling back to Info on an
// unrecognized value rather than failing the whole command.
func parseLevel(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
