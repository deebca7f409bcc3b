// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
	"github.com/go-chi/chi/v5"
)

// checkOption resolves a qualified option name to a boolean. Unknown and
// malformed names resolve to false like any other absent option.
func (h *Handler) checkOption(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeError(w, ErrEmptyOptionName)
		return
	}

	check := models.OptionCheck{
		Name:    name,
		Enabled: h.settings.Check(r.Context(), name),
	}

	if _, err := utils.WriteJSON(w, check, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.checkOption").Msg("error writing response")
	}
}
