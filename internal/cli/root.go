// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-lms/internal/adapter"
	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/models"
	"github.com/spf13/cobra"
)

// app holds what every lmsconf command shares. The constructors are fields
// so tests can swap the database and the server for fakes.
type app struct {
	buildInfo models.AppBuildInfo

	// overrides are filled from the persistent flags.
	overrides  config.StructuredConfig
	jsonOutput bool

	cfg *config.CLIConfig

	environ    func() []string
	newAdapter func(cfg config.Adapter, log *logger.Logger) (adapter.ServerAdapter, error)
	newDB      func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error)

	logger *logger.Logger
}

func newApp(buildInfo models.AppBuildInfo, log *logger.Logger) *app {
	return &app{
		buildInfo:  buildInfo,
		environ:    os.Environ,
		newAdapter: adapter.NewHTTPServerAdapter,
		newDB:      store.NewDB,
		logger:     log,
	}
}

// Execute runs lmsconf with the process arguments.
func Execute(buildInfo models.AppBuildInfo) error {
	return newRootCmd(newApp(buildInfo, logger.NewCLILogger("lmsconf"))).Execute()
}

// newRootCmd builds the lmsconf command tree around a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lmsconf",
		Short: "lmsconf reads LMS options the way the server resolves them",
		Long: `lmsconf resolves LMS options from the option file (INI or YAML), the
uiconfig table and LMS_<SECTION>__<KEY> environment variables, on top of the
compiled-in defaults.

Configuration can be provided via flags, environment variables or a JSON file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.overrides.Settings.File, "settings", "s", "", "option file, INI or YAML (default /etc/lms/lms.ini)")
	flags.StringVar(&a.overrides.Settings.EnvPrefix, "env-prefix", "", "environment prefix for option overrides (default LMS_)")
	flags.BoolVar(&a.overrides.Settings.FromDB, "from-db", false, "also read options from the uiconfig table")
	flags.StringVar(&a.overrides.Storage.DB.Driver, "driver", "", "database driver: postgres or sqlite")
	flags.StringVarP(&a.overrides.Storage.DB.DSN, "dsn", "d", "", "database connection string")
	flags.StringVar(&a.overrides.Adapter.HTTPAddress, "server", "", "LMS server address for remote commands")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "timeout", 0, "remote request timeout")
	flags.StringVarP(&a.overrides.JSONFilePath, "config", "c", "", "JSON config file")
	flags.StringVar(&a.overrides.App.LogLevel, "log-level", "", "log level for diagnostics on stderr")
	flags.BoolVar(&a.jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newGetCmd(a),
		newCheckCmd(a),
		newDumpCmd(a),
		newRemoteCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetCLIConfig(&a.overrides, a.environ())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg

	// the CLI stays at warn level unless asked otherwise
	if cmd.Flags().Changed("log-level") {
		if err = logger.SetGlobalLevel(a.overrides.App.LogLevel); err != nil {
			return err
		}
	}

	return nil
}

// settingsService builds the same option pipeline the server runs. The
// returned close func releases the database connection, if any.
func (a *app) settingsService(ctx context.Context) (service.SettingsService, func(), error) {
	var uiConfig store.UIConfigRepository
	closeFn := func() {}

	if a.cfg.Settings.FromDB {
		db, err := a.newDB(ctx, a.cfg.DB, a.logger)
		if err != nil {
			return nil, closeFn, fmt.Errorf("error connecting to database: %w", err)
		}
		uiConfig = store.NewUIConfigRepository(db, a.logger)
		closeFn = func() {
			if err := db.Close(); err != nil {
				a.logger.Err(err).Msg("error closing database")
			}
		}
	}

	return service.NewSettingsService(a.cfg.Settings, uiConfig, a.environ, a.logger), closeFn, nil
}

// commandContext bounds remote calls by the configured timeout on top of
// the command's own context.
func (a *app) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := a.cfg.Adapter.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(cmd.Context(), timeout)
}
