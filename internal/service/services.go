// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/store"
)

type Services struct {
	SettingsService   SettingsService
	InfoCenterService InfoCenterService
	AppInfoService    AppInfoService
}

// NewServices wires the services on top of storages. The option store is not
// loaded yet; call SettingsService.Load before serving.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var uiConfigRepository store.UIConfigRepository
	if cfg.Settings.FromDB {
		uiConfigRepository = storages.UIConfigRepository
	}

	settingsService := NewSettingsService(cfg.Settings, uiConfigRepository, os.Environ, logger)

	return &Services{
		SettingsService:   settingsService,
		InfoCenterService: NewInfoCenterService(storages.InfoCenterRepository, settingsService, logger),
		AppInfoService:    appInfoService,
	}, nil
}
