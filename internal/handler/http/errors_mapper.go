// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParameter: http.StatusBadRequest,
	ErrEmptyOptionName:      http.StatusBadRequest,

	service.ErrInvalidTopicID:        http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrSettingsNotLoaded:     http.StatusServiceUnavailable,

	store.ErrTopicNotFound: http.StatusNotFound,
	store.ErrTemporary:     http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Server errors get a
// generic text so driver details never leave the process.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
