// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can start the
// server: it needs a listen address and a database.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if err := validateDriver(cfg.Storage.DB.Driver); err != nil {
		return err
	}

	if cfg.Workers.ReloadInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the lmsconf view. The database is optional there, but
// reading options from it needs a DSN.
func (cfg *CLIConfig) validate() error {
	if cfg.Settings.File == "" && !cfg.Settings.FromDB && cfg.Settings.EnvPrefix == "" {
		return ErrInvalidSettingsConfigs
	}

	if cfg.Settings.FromDB && cfg.DB.DSN == "" {
		return fmt.Errorf("%w: reading options from database needs a DSN", ErrInvalidStorageConfigs)
	}

	if cfg.DB.DSN != "" {
		if err := validateDriver(cfg.DB.Driver); err != nil {
			return err
		}
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func validateDriver(driver string) error {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, driver)
	}
}
