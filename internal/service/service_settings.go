// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/settings"
	"github.com/MKhiriev/go-lms/internal/settings/source"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
)

// settingsService assembles the operator options from, lowest to highest
// priority: the option file, the uiconfig table and the environment. The
// compiled-in defaults are merged underneath and never overwrite.
type settingsService struct {
	cfg       config.Settings
	uiConfig  store.UIConfigRepository
	validator validators.Validator
	environ   func() []string

	mu    sync.Mutex
	store *settings.Store

	logger *logger.Logger
}

// NewSettingsService builds a SettingsService. uiConfig may be nil, in which
// case the database layer is skipped. environ is usually os.Environ.
func NewSettingsService(cfg config.Settings, uiConfig store.UIConfigRepository, environ func() []string, logger *logger.Logger) SettingsService {
	if environ == nil {
		environ = func() []string { return nil }
	}

	return &settingsService{
		cfg:       cfg,
		uiConfig:  uiConfig,
		validator: validators.NewUIConfigOptionValidator(),
		environ:   environ,
		logger:    logger,
	}
}

func (s *settingsService) Load(ctx context.Context) (*settings.Store, error) {
	operator, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		s.store = settings.NewStore(operator, settings.Defaults(), s.logger)
	} else {
		s.store.Reload(operator, settings.Defaults())
	}

	s.logger.Info().
		Int("sections", len(operator)).
		Str("file", s.cfg.File).
		Bool("from_db", s.uiConfig != nil).
		Msg("settings loaded")

	return s.store, nil
}

func (s *settingsService) Reload(ctx context.Context) error {
	if s.Store() == nil {
		return ErrSettingsNotLoaded
	}

	_, err := s.Load(ctx)
	return err
}

func (s *settingsService) Store() *settings.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store
}

// Check resolves name against the current store. Before the first Load every
// name is false.
func (s *settingsService) Check(ctx context.Context, name string) bool {
	st := s.Store()
	if st == nil {
		logger.FromContext(ctx).Warn().Str("option", name).Msg("option checked before settings were loaded")
		return false
	}
	return st.Check(name)
}

// collect reads every configured layer and overlays them. A missing option
// file is not an error: defaults and the other layers still apply.
func (s *settingsService) collect(ctx context.Context) (settings.Tree, error) {
	log := logger.FromContext(ctx)
	tree := settings.Tree{}

	if s.cfg.File != "" {
		fileTree, err := source.LoadFile(s.cfg.File)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("file", s.cfg.File).Msg("option file not found, using defaults")
		case err != nil:
			log.Err(err).Str("func", "settingsService.collect").Str("file", s.cfg.File).Msg("error reading option file")
			return nil, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
		default:
			settings.Overlay(tree, fileTree)
		}
	}

	if s.uiConfig != nil {
		options, err := s.uiConfig.GetOptions(ctx)
		if err != nil {
			log.Err(err).Str("func", "settingsService.collect").Msg("error reading uiconfig")
			return nil, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
		}
		settings.Overlay(tree, source.FromOptions(s.validOptions(ctx, options)))
	}

	if s.cfg.EnvPrefix != "" {
		settings.Overlay(tree, source.FromEnv(s.cfg.EnvPrefix, s.environ()))
	}

	return tree, nil
}

// validOptions drops uiconfig rows whose names cannot be looked up.
func (s *settingsService) validOptions(ctx context.Context, options []models.UIConfigOption) []models.UIConfigOption {
	log := logger.FromContext(ctx)

	valid := make([]models.UIConfigOption, 0, len(options))
	for _, option := range options {
		if err := s.validator.Validate(ctx, option); err != nil {
			log.Warn().Err(err).
				Int64("id", option.ID).
				Str("section", option.Section).
				Str("var", option.Var).
				Msg("skipping invalid uiconfig row")
			continue
		}
		valid = append(valid, option)
	}
	return valid
}
