// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	environ := []string{
		"CONFIG=/path/to/config.json",
		"APP_VERSION=1.2.3",
		"APP_LOG_LEVEL=debug",
		"SERVER_ADDRESS=localhost:8080",
		"SERVER_REQUEST_TIMEOUT=30s",
		"STORAGE_DB_DRIVER=sqlite",
		"STORAGE_DB_DATABASE_URI=file:lms.db",
		"SETTINGS_FILE=/etc/lms/lms.ini",
		"SETTINGS_ENV_PREFIX=LMSX_",
		"SETTINGS_FROM_DB=true",
		"ADAPTER_ADDRESS=http://lms.local:8080",
		"ADAPTER_REQUEST_TIMEOUT=5s",
		"WORKERS_RELOAD_INTERVAL=5m",
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, environ))

	want := StructuredConfig{
		JSONFilePath: "/path/to/config.json",
		App:          App{Version: "1.2.3", LogLevel: "debug"},
		Server:       Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Storage:      Storage{DB: DB{Driver: "sqlite", DSN: "file:lms.db"}},
		Settings:     Settings{File: "/etc/lms/lms.ini", EnvPrefix: "LMSX_", FromDB: true},
		Adapter:      Adapter{HTTPAddress: "http://lms.local:8080", RequestTimeout: 5 * time.Second},
		Workers:      Workers{ReloadInterval: 5 * time.Minute},
	}
	assert.Equal(t, want, *cfg)
}

func TestParseEnv_OnlyGivenEnvironIsRead(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "process:9999")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, []string{"SETTINGS_FILE=/etc/lms/lms.ini"}))

	assert.Equal(t, "/etc/lms/lms.ini", cfg.Settings.File)
	assert.Empty(t, cfg.Server.HTTPAddress, "process environment must not leak in")
}

func TestParseEnv_EmptyEnviron(t *testing.T) {
	for _, environ := range [][]string{nil, {}} {
		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg, environ))
		assert.Equal(t, StructuredConfig{}, *cfg)
	}
}

func TestParseEnv_IgnoresUnrelatedEntries(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"LMS_PHPUI__LANG=pl",
		"APP_VERSION=26.1",
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, environ))
	assert.Equal(t, "26.1", cfg.App.Version)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		pair string
	}{
		{name: "duration", pair: "WORKERS_RELOAD_INTERVAL=invalid_duration"},
		{name: "bool", pair: "SETTINGS_FROM_DB=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseEnv(&StructuredConfig{}, []string{tt.pair})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "environment")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"2h", 2 * time.Hour},
		{"45m", 45 * time.Minute},
		{"30s", 30 * time.Second},
		{"1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg, []string{"SERVER_REQUEST_TIMEOUT=" + tt.value}))
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}
