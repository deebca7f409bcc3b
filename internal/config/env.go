// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a list of KEY=VALUE pairs in the form
// returned by os.Environ. Fields are matched by their `env` and `envPrefix`
// tags. The same environ is handed to the option resolver, so a tool started
// with an injected environment sees one consistent view of it.
func parseEnv(cfg any, environ []string) error {
	opts := env.Options{
		Environment: env.ToMap(environ),
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error reading config from environment: %w", err)
	}

	return nil
}
