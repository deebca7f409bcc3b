// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-lms/internal/settings"
	"github.com/MKhiriev/go-lms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsService owns the process-wide option store and rebuilds it from
// its sources on demand.
type SettingsService interface {
	// Load builds the store from all sources. Calling it again reloads.
	Load(ctx context.Context) (*settings.Store, error)
	// Reload rebuilds the store; on error the previous options stay active.
	Reload(ctx context.Context) error
	// Store returns the current store, nil before the first Load.
	Store() *settings.Store
	// Check resolves a qualified option name to a boolean.
	Check(ctx context.Context, name string) bool
}

// InfoCenterService serves the info center notice board.
type InfoCenterService interface {
	GetShortThread(ctx context.Context, topicID int64) (models.InfoCenterThread, error)
}

// AppInfoService reports information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
