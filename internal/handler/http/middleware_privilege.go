// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
)

// hiddenBy answers 404 for every route of the group while the privilege
// option resolves to true. Superusers never have pages hidden since the
// resolver forces privileges.hide* options to false for them.
func (h *Handler) hiddenBy(option string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.settings.Check(r.Context(), option) {
				logger.FromRequest(r).Debug().Str("option", option).Msg("page hidden by privilege")
				http.NotFound(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
