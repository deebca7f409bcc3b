// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrInvalidTopicID = errors.New("invalid info center topic id")

	ErrSettingsNotLoaded = errors.New("settings are not loaded")
	ErrLoadingSettings   = errors.New("error loading settings")
)
