// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// CLIConfig is the lmsconf view of [StructuredConfig]: where the options
// live, an optional database and the address of a running server.
type CLIConfig struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// Settings locates the option file and the override prefix.
	Settings Settings
	// DB is used only when it has a DSN.
	DB DB
	// Adapter is used by the remote commands.
	Adapter Adapter
}

// GetCLIConfig builds and validates the lmsconf config. overrides holds the
// values of the command-line flags; they take precedence over the JSON file
// and defaults but not over environ, matching the server. environ has the
// os.Environ form.
func GetCLIConfig(overrides *StructuredConfig, environ []string) (*CLIConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv(environ).
		withConfig(overrides).
		withJSON().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cliCfg := &CLIConfig{
		LogLevel: cfg.App.LogLevel,
		Settings: cfg.Settings,
		DB:       cfg.Storage.DB,
		Adapter:  cfg.Adapter,
	}

	return cliCfg, cliCfg.validate()
}
