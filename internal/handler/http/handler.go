// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
)

// Handler serves the JSON API. Each route group is mounted only when the
// service behind it is present, so a partially wired handler answers 404 for
// the rest.
type Handler struct {
	settings   service.SettingsService
	infoCenter service.InfoCenterService
	appInfo    service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) (*Handler, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	h := &Handler{
		settings:   services.SettingsService,
		infoCenter: services.InfoCenterService,
		appInfo:    services.AppInfoService,
		logger:     logger,
	}

	logger.Info().
		Bool("version", h.appInfo != nil).
		Bool("config", h.settings != nil).
		Bool("infocenter", h.infoCenter != nil).
		Msg("http handler created")
	return h, nil
}
